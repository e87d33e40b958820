package domain

import "errors"

var (
	// ErrEmptyClientName возвращается, когда имя клиента не указано
	ErrEmptyClientName = errors.New("domain: client name is required")

	// ErrInvalidDate возвращается, когда дата не указана или не парсится
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidTimeRange возвращается, когда начало не строго раньше окончания
	ErrInvalidTimeRange = errors.New("domain: start time must be before end time")
)
