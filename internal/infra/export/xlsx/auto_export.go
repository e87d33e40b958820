package xlsx

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const triggerAuto = "auto"

// AutoExportRepository обёртка хранилища, которая после каждого изменения
// перевыгружает весь набор записей в файл книги.
// Ошибка выгрузки только логируется и не отменяет изменение.
type AutoExportRepository struct {
	AppointmentRepository

	exporter *Exporter
	path     string
	metrics  MetricsRecorder
	logger   Logger
}

// NewAutoExportRepository оборачивает repo
func NewAutoExportRepository(repo AppointmentRepository, exporter *Exporter, path string, metrics MetricsRecorder, logger Logger) *AutoExportRepository {
	return &AutoExportRepository{
		AppointmentRepository: repo,
		exporter:              exporter,
		path:                  path,
		metrics:               metrics,
		logger:                logger,
	}
}

// AppendOne сохраняет запись и обновляет выгрузку
func (r *AutoExportRepository) AppendOne(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created, err := r.AppointmentRepository.AppendOne(ctx, appt)
	if err != nil {
		return nil, err
	}
	r.export(ctx)
	return created, nil
}

// ReplaceAll сохраняет набор и обновляет выгрузку
func (r *AutoExportRepository) ReplaceAll(ctx context.Context, appts []*domain.Appointment) error {
	if err := r.AppointmentRepository.ReplaceAll(ctx, appts); err != nil {
		return err
	}
	r.export(ctx)
	return nil
}

func (r *AutoExportRepository) export(ctx context.Context) {
	appts, err := r.AppointmentRepository.LoadAll(ctx)
	if err == nil {
		err = r.exporter.WriteFile(r.path, appts)
	}

	if r.metrics != nil {
		r.metrics.RecordExport(triggerAuto, err)
	}

	if err != nil {
		r.logger.Error("AutoExport: failed to export to %s: %v", r.path, err)
		return
	}
	r.logger.Info("AutoExport: exported %d appointments to %s", len(appts), r.path)
}
