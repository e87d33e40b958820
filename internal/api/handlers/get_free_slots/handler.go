package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams = "duration и step должны быть положительными числами, free - true или false"
	msgInvalidSlots  = "некорректные параметры поиска свободного времени"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/free-slots
// Query params: duration, step (минуты, необязательные), free (true - только свободные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("duration"), query.Get("step"), query.Get("free"))
	if err != nil {
		h.logger.Warn("GET /schedule/{date}/free-slots - Invalid request: %v", err)
		if errors.Is(err, domain.ErrInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/{date}/free-slots - Invalid input: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidSlots)
		default:
			h.logger.Error("GET /schedule/{date}/free-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/free-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
