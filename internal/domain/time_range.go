package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TimeRange полуоткрытый интервал [Start, End) внутри одних суток
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange создаёт интервал с проверкой Start < End
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, fmt.Errorf("end: %w", err)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{Start: start, End: end}, nil
}

// ParseTimeRange парсит границы интервала из строк HH:MM
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeRange{}, fmt.Errorf("start: %w", err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeRange{}, fmt.Errorf("end: %w", err)
	}
	return NewTimeRange(s, e)
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Интервалы, которые только соприкасаются (10:00 конец одного и 10:00 начало другого), не пересекаются.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return !(r.End.Minutes() <= other.Start.Minutes() || r.Start.Minutes() >= other.End.Minutes())
}

// DurationMinutes длительность интервала в минутах
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// String возвращает интервал в виде "09:00-10:00"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
