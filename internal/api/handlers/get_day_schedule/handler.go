package get_day_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
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

// Handle GET /api/v1/schedule
// Query params: date, name (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq, err := ToServiceRequest(q.Get("date"), q.Get("name"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule: date=%q, error=%v", q.Get("date"), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: date=%q, count=%d",
		q.Get("date"), len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
