package models

import (
	"time"

	apptModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Request модели

// DayScheduleRequest запрос расписания на день
type DayScheduleRequest struct {
	Date       *time.Time // nil - весь набор записей без сортировки
	NameFilter string     // фильтр таблицы, диаграмма строится по всему дню
}

// UpcomingRequest запрос предстоящих записей
type UpcomingRequest struct {
	Now        time.Time
	NameFilter string
}

// ListRequest запрос постраничного списка всех записей
type ListRequest struct {
	NameFilter string
	Page       int // с 1
	PerPage    int // 10, 20 или 50; 0 - по умолчанию
}

// Response модели

// GanttBar полоса диаграммы Ганта
type GanttBar struct {
	Row             int    `json:"row"`
	OffsetMinutes   int    `json:"offsetMinutes"`
	DurationMinutes int    `json:"durationMinutes"`
	Label           string `json:"label"`
	AppointmentID   int64  `json:"appointmentId"`
}

// GanttResponse диаграмма на день
type GanttResponse struct {
	Date        string     `json:"date"`
	AxisMinutes int        `json:"axisMinutes"`
	Bars        []GanttBar `json:"bars"`
}

// DayScheduleResponse расписание на день
type DayScheduleResponse struct {
	Date         *string                          `json:"date,omitempty"`
	Appointments []apptModels.AppointmentResponse `json:"appointments"`
	// Gantt пустой, если дата не указана
	Gantt *GanttResponse `json:"gantt,omitempty"`
}

// ListResponse страница списка записей
type ListResponse struct {
	Appointments []apptModels.AppointmentResponse `json:"appointments"`
	Page         int                              `json:"page"`
	PerPage      int                              `json:"perPage"`
	Total        int                              `json:"total"`
	TotalPages   int                              `json:"totalPages"`
}
