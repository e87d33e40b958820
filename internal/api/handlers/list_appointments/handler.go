package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidParams  = "некорректные параметры запроса"
	msgInvalidPerPage = "perPage должен быть 10, 20 или 50"
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

// Handle GET /api/v1/appointments
// Query params: name, page, perPage (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	serviceReq, err := ToServiceRequest(q.Get("name"), q.Get("page"), q.Get("perPage"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid perPage: %d", serviceReq.PerPage)
			handlers.RespondBadRequest(w, msgInvalidPerPage)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments listed successfully: page=%d/%d, total=%d",
		result.Page, result.TotalPages, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
