package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Default slot search values
const (
	DefaultOpenTime                = types.TimeString("09:00")
	DefaultCloseTime               = types.TimeString("18:00")
	DefaultSlotDurationMinutes     = 60
	DefaultSlotStepMinutes         = 30
	DefaultMinBookingNoticeMinutes = 0
)

// ErrInvalidSlotsConfig возвращается при некорректных настройках поиска свободного времени
var ErrInvalidSlotsConfig = errors.New("domain: invalid slots config")

// SlotsConfig рабочие часы и сетка поиска свободного времени.
// Слоты строятся от OpenTime с шагом StepMinutes и не выходят за CloseTime.
type SlotsConfig struct {
	OpenTime                types.TimeString
	CloseTime               types.TimeString
	SlotDurationMinutes     int
	StepMinutes             int
	MinBookingNoticeMinutes int // для сегодняшней даты: насколько позже текущего момента может начинаться слот
}

// DefaultSlotsConfig настройки по умолчанию: 09:00-18:00, часовые слоты с шагом 30 минут
func DefaultSlotsConfig() SlotsConfig {
	return SlotsConfig{
		OpenTime:                DefaultOpenTime,
		CloseTime:               DefaultCloseTime,
		SlotDurationMinutes:     DefaultSlotDurationMinutes,
		StepMinutes:             DefaultSlotStepMinutes,
		MinBookingNoticeMinutes: DefaultMinBookingNoticeMinutes,
	}
}

// WorkingHours рабочий интервал дня
func (c SlotsConfig) WorkingHours() (TimeRange, error) {
	r, err := NewTimeRange(c.OpenTime, c.CloseTime)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: working hours: %w", ErrInvalidSlotsConfig, err)
	}
	return r, nil
}

// Validate проверяет рабочие часы и положительность длительности и шага
func (c SlotsConfig) Validate() error {
	if _, err := c.WorkingHours(); err != nil {
		return err
	}
	if c.SlotDurationMinutes <= 0 || c.SlotDurationMinutes >= MinutesPerDay {
		return fmt.Errorf("%w: slot duration %d", ErrInvalidSlotsConfig, c.SlotDurationMinutes)
	}
	if c.StepMinutes <= 0 || c.StepMinutes >= MinutesPerDay {
		return fmt.Errorf("%w: step %d", ErrInvalidSlotsConfig, c.StepMinutes)
	}
	if c.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: min notice %d", ErrInvalidSlotsConfig, c.MinBookingNoticeMinutes)
	}
	return nil
}

// FreeSlot кандидат на запись в сетке дня.
// BlockedBy заполнен, если слот пересекается с существующей записью.
type FreeSlot struct {
	Range     TimeRange
	BlockedBy *Appointment
}

// IsFree true, если слот не пересекается ни с одной записью
func (s FreeSlot) IsFree() bool {
	return s.BlockedBy == nil
}
