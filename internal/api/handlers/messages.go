package handlers

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/conflicts"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidInput       = "некорректные данные записи"
	msgEmptyClientName    = "имя клиента обязательно"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgDuplicateClient    = "у клиента уже есть запись на эту дату"
	msgDuplicatePattern   = "у клиента %s уже есть запись на %s"
	msgOverlapWithPattern = "время пересекается с записью: %s"
)

// ValidationMessage текст ошибки валидации записи для клиента
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyClientName):
		return msgEmptyClientName
	case errors.Is(err, domain.ErrInvalidDate):
		return msgInvalidDate
	case errors.Is(err, types.ErrInvalidTimeFormat), errors.Is(err, types.ErrTimeOutOfRange):
		return msgInvalidTime
	case errors.Is(err, domain.ErrInvalidTimeRange):
		return msgInvalidTimeRange
	default:
		return msgInvalidInput
	}
}

// ConflictMessage текст отказа политики конфликтов.
// Для пересечения называет первую конфликтующую запись, для повтора - клиента и дату.
func ConflictMessage(err error) string {
	var overlap *conflicts.OverlapError
	if errors.As(err, &overlap) {
		return fmt.Sprintf(msgOverlapWithPattern, overlap.Existing.Label())
	}
	var dup *conflicts.DuplicateClientError
	if errors.As(err, &dup) {
		return fmt.Sprintf(msgDuplicatePattern, dup.ClientName, dup.Date.Format(domain.DateFormat))
	}
	return msgDuplicateClient
}
