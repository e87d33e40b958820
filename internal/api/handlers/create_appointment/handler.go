package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: name=%q, error=%v", req.Name, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))

		case errors.Is(err, createAppointment.ErrDuplicateClient),
			errors.Is(err, createAppointment.ErrSlotOverlap):
			h.logger.Warn("POST /appointments - Rejected: name=%q, date=%s, error=%v", req.Name, req.Date, err)
			handlers.RespondConflict(w, handlers.ConflictMessage(err))

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%d, name=%q, date=%s",
		result.ID, result.ClientName, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
