package xlsx

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository хранилище, изменения которого выгружаются автоматически
type AppointmentRepository interface {
	LoadAll(ctx context.Context) ([]*domain.Appointment, error)
	AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ReplaceAll(ctx context.Context, appts []*domain.Appointment) error
}

// MetricsRecorder учёт выгрузок
type MetricsRecorder interface {
	RecordExport(trigger string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
