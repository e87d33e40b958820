package update_appointment

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// UpdateAppointmentRequest HTTP request model, все поля записи заменяются целиком
type UpdateAppointmentRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Note      string `json:"note"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateAppointmentRequest) ToServiceRequest() *models.UpdateAppointmentRequest {
	return &models.UpdateAppointmentRequest{
		ClientName: r.Name,
		Phone:      r.Phone,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Note:       r.Note,
	}
}
