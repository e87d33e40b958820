package conflicts

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Verdict результат проверки кандидата
type Verdict string

const (
	Accepted                Verdict = "accepted"
	RejectedDuplicateClient Verdict = "rejected_duplicate_client"
	RejectedOverlap         Verdict = "rejected_overlap"
)

// Decision решение политики по кандидату
type Decision struct {
	Verdict   Verdict
	Candidate *domain.Appointment
	// Existing конфликтующая запись, nil для Accepted
	Existing *domain.Appointment
}

// IsAccepted возвращает true, если кандидата можно сохранить
func (d Decision) IsAccepted() bool {
	return d.Verdict == Accepted
}

// Err возвращает типизированную ошибку отказа, nil для Accepted
func (d Decision) Err() error {
	switch d.Verdict {
	case RejectedDuplicateClient:
		return &DuplicateClientError{ClientName: d.Candidate.ClientName, Date: d.Candidate.Date}
	case RejectedOverlap:
		return &OverlapError{Candidate: d.Candidate, Existing: d.Existing}
	default:
		return nil
	}
}

// Evaluate проверяет кандидата против записей на ту же дату.
// Сначала проверяется повторная запись клиента, затем пересечение интервалов.
// При нескольких пересечениях сообщается первое в порядке existing.
// Сравнение имён точное, с учётом регистра.
func Evaluate(candidate *domain.Appointment, existing []*domain.Appointment) Decision {
	sameDate := ExistingOnDate(existing, candidate.Date)

	for _, appt := range sameDate {
		if SameClient(appt.ClientName, candidate.ClientName) {
			return Decision{Verdict: RejectedDuplicateClient, Candidate: candidate, Existing: appt}
		}
	}

	for _, appt := range sameDate {
		if candidate.Range.Overlaps(appt.Range) {
			return Decision{Verdict: RejectedOverlap, Candidate: candidate, Existing: appt}
		}
	}

	return Decision{Verdict: Accepted, Candidate: candidate}
}

// ExistingOnDate оставляет записи на указанную дату, сохраняя порядок
func ExistingOnDate(all []*domain.Appointment, date time.Time) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(all))
	for _, appt := range all {
		if appt.IsOn(date) {
			result = append(result, appt)
		}
	}
	return result
}

// Without исключает запись с указанным ID (используется при редактировании)
func Without(all []*domain.Appointment, id int64) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(all))
	for _, appt := range all {
		if appt.ID != id {
			result = append(result, appt)
		}
	}
	return result
}

// SameClient сравнивает имена без учёта пробелов по краям
func SameClient(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
