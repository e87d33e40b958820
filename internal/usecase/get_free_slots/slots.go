package get_free_slots

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots строит сетку слотов на день.
// Слоты идут от начала рабочего дня с шагом cfg.StepMinutes, слот не выходит за конец рабочего дня.
// Для сегодняшней даты остаются только слоты, начинающиеся не раньше now + MinBookingNoticeMinutes.
func generateTimeSlots(cfg domain.SlotsConfig, requestDate, now time.Time) ([]domain.TimeRange, error) {
	if isDateInPast(requestDate, now) {
		return []domain.TimeRange{}, nil
	}

	workingHours, err := cfg.WorkingHours()
	if err != nil {
		return nil, err
	}

	minStart := workingHours.Start.Minutes()
	if isSameDay(requestDate, now) {
		notBefore := types.NewTimeString(now).Minutes() + cfg.MinBookingNoticeMinutes
		if notBefore > minStart {
			minStart = notBefore
		}
	}

	slots := make([]domain.TimeRange, 0)
	current := workingHours.Start

	for current.IsBefore(workingHours.End) {
		slotEnd, err := current.AddMinutes(cfg.SlotDurationMinutes)
		if errors.Is(err, types.ErrTimeOutOfRange) {
			break
		}
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(workingHours.End) {
			break
		}

		if current.Minutes() >= minStart {
			slots = append(slots, domain.TimeRange{Start: current, End: slotEnd})
		}

		current, err = current.AddMinutes(cfg.StepMinutes)
		if errors.Is(err, types.ErrTimeOutOfRange) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// markBlocked сопоставляет каждому слоту первую пересекающуюся запись в порядке хранилища.
// Записи, которые только соприкасаются со слотом (конец одной = начало другой), его не занимают.
func markBlocked(slots []domain.TimeRange, dayAppointments []*domain.Appointment) []domain.FreeSlot {
	result := make([]domain.FreeSlot, len(slots))

	for i, slot := range slots {
		result[i] = domain.FreeSlot{Range: slot}
		for _, appt := range dayAppointments {
			if appt.Range.Overlaps(slot) {
				result[i].BlockedBy = appt
				break
			}
		}
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
