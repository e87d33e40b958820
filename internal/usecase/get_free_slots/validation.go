package get_free_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest проверяет запрос и подставляет значения по умолчанию из cfg
func validateRequest(req *Request, cfg domain.SlotsConfig) (domain.SlotsConfig, error) {
	if req == nil {
		return cfg, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidDate)
	}
	if req.DurationMinutes < 0 || req.StepMinutes < 0 {
		return cfg, fmt.Errorf("%w: duration and step must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes > 0 {
		cfg.SlotDurationMinutes = req.DurationMinutes
	}
	if req.StepMinutes > 0 {
		cfg.StepMinutes = req.StepMinutes
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return cfg, nil
}
