package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	LoadAll(ctx context.Context) ([]*domain.Appointment, error)
	AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учёт решений политики конфликтов
type MetricsRecorder interface {
	RecordBookingDecision(operation, verdict string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
