package export_appointments

import (
	"context"
	"io"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ScheduleService interface {
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
}

type Exporter interface {
	Write(w io.Writer, appts []*domain.Appointment) error
}

type MetricsRecorder interface {
	RecordExport(trigger string, err error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
