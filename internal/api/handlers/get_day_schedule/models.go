package get_day_schedule

import (
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису, пустая дата означает весь набор записей
func ToServiceRequest(dateStr, name string) (*models.DayScheduleRequest, error) {
	req := &models.DayScheduleRequest{NameFilter: strings.TrimSpace(name)}

	if strings.TrimSpace(dateStr) != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
