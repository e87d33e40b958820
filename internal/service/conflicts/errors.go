package conflicts

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrDuplicateClient возвращается, когда у клиента уже есть запись на эту дату
	ErrDuplicateClient = errors.New("conflicts: client already has an appointment on this date")

	// ErrOverlap возвращается, когда интервал пересекается с существующей записью
	ErrOverlap = errors.New("conflicts: time range overlaps an existing appointment")
)

// DuplicateClientError отказ из-за повторной записи клиента в тот же день
type DuplicateClientError struct {
	ClientName string
	Date       time.Time
}

func (e *DuplicateClientError) Error() string {
	return fmt.Sprintf("%v: %s on %s", ErrDuplicateClient, e.ClientName, e.Date.Format(domain.DateFormat))
}

func (e *DuplicateClientError) Unwrap() error {
	return ErrDuplicateClient
}

// OverlapError отказ из-за пересечения, Existing - первая конфликтующая запись в порядке хранилища
type OverlapError struct {
	Candidate *domain.Appointment
	Existing  *domain.Appointment
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: %s conflicts with %s", ErrOverlap, e.Candidate.Range, e.Existing.Label())
}

func (e *OverlapError) Unwrap() error {
	return ErrOverlap
}
