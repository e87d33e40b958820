package get_free_slots

import (
	"errors"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

var errInvalidNumber = errors.New("invalid number")

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	Date  string     `json:"date"`
	Slots []FreeSlot `json:"slots"`
}

// FreeSlot модель временного слота
type FreeSlot struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Free            bool   `json:"free"`
	BlockedBy       string `json:"blockedBy,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]FreeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = FreeSlot{
			StartTime:       slot.StartTime.String(),
			EndTime:         slot.EndTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Free:            slot.Free,
			BlockedBy:       slot.BlockedBy,
		}
	}

	return &FreeSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из пути и query параметров
func ToUseCaseRequest(dateStr, durationStr, stepStr, freeStr string) (*getFreeSlots.Request, error) {
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := optionalInt(durationStr)
	if err != nil {
		return nil, err
	}
	step, err := optionalInt(stepStr)
	if err != nil {
		return nil, err
	}

	onlyFree := false
	if freeStr != "" {
		onlyFree, err = strconv.ParseBool(freeStr)
		if err != nil {
			return nil, errInvalidNumber
		}
	}

	return &getFreeSlots.Request{
		Date:            date,
		DurationMinutes: duration,
		StepMinutes:     step,
		OnlyFree:        onlyFree,
	}, nil
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, errInvalidNumber
	}
	return v, nil
}
