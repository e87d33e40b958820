package get_upcoming

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

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

// Handle GET /api/v1/upcoming
// Query params: name (опционально). Точка отсчёта - текущее время сервера.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))

	result, err := h.service.GetUpcoming(r.Context(), &models.UpcomingRequest{NameFilter: name})
	if err != nil {
		h.logger.Error("GET /upcoming - Failed to get upcoming appointments: name=%q, error=%v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /upcoming - Upcoming appointments retrieved successfully: name=%q, count=%d",
		name, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
