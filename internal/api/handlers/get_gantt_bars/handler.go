package get_gantt_bars

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/gantt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/gantt - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetGanttBars(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /schedule/{date}/gantt - Failed to build gantt: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/{date}/gantt - Gantt built successfully: date=%s, bars=%d", dateStr, len(result.Bars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
