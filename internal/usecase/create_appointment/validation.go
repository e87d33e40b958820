package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest проверяет обязательные поля и собирает запись-кандидата
func validateRequest(req *Request) (*domain.Appointment, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyClientName)
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.StartTime) == "" {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EndTime) == "" {
		return nil, fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// start < end проверяется здесь же
	timeRange, err := domain.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	appt, err := domain.NewAppointment(req.ClientName, date, timeRange, req.Phone, req.Note)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return appt, nil
}
