package get_free_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на поиск свободного времени
type Request struct {
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Длительность слота, 0 = из настроек
	StepMinutes     int       // Шаг сетки, 0 = из настроек
	OnlyFree        bool      // Вернуть только свободные слоты
}

// Response модель ответа со слотами дня
type Response struct {
	Date  time.Time
	Slots []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Free            bool
	BlockedBy       string // "Имя (09:00-10:00)" записи, занимающей слот
}
