package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи.
// Поля приходят как есть из формы, разбор и нормализация в usecase.
type Request struct {
	ClientName string // Имя клиента (обязательно)
	Phone      string // Телефон (опционально)
	Date       string // Дата "2025-10-15"
	StartTime  string // Время начала "10:00"
	EndTime    string // Время окончания "11:00"
	Note       string // Заметка (опционально, переводы строк заменяются пробелами)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID записи в хранилище
	ClientName      string           // Имя клиента
	Phone           string           // Телефон
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Note            string           // Заметка
}
