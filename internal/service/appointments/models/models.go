package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// UpdateAppointmentRequest полная замена полей записи.
// Строки парсятся и валидируются сервисом.
type UpdateAppointmentRequest struct {
	ClientName string `json:"name"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`      // "2025-10-15"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "11:00"
	Note       string `json:"note"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	ClientName      string `json:"name"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:00"
	DurationMinutes int    `json:"durationMinutes"`
	Phone           string `json:"phone"`
	Note            string `json:"note"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		ClientName:      a.ClientName,
		Date:            a.DateString(),
		StartTime:       a.Range.Start.String(),
		EndTime:         a.Range.End.String(),
		DurationMinutes: a.Range.DurationMinutes(),
		Phone:           a.Phone,
		Note:            a.Note,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}

	for _, a := range appts {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
