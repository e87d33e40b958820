package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/conflicts"
)

const operationUpdate = "update"

// Service сервис изменения и удаления записей
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	all, err := s.appointmentRepo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("GetByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStorage, err)
	}

	idx := indexOf(all, id)
	if idx < 0 {
		s.logger.Warn("GetByID: appointment id=%d not found", id)
		return nil, ErrAppointmentNotFound
	}

	return models.FromDomainAppointment(all[idx]), nil
}

// Update полностью заменяет поля записи.
// Политика конфликтов проверяется заново без учёта самой редактируемой записи.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: appointment id=%d, name=%q, date=%s, time=%s-%s",
		id, req.ClientName, req.Date, req.StartTime, req.EndTime)

	candidate, err := toCandidate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}
	candidate.ID = id

	var (
		result   *domain.Appointment
		decision conflicts.Decision
	)

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		all, err := s.appointmentRepo.LoadAll(txCtx)
		if err != nil {
			s.logger.Error("Update: repository error: %v", err)
			return fmt.Errorf("%w: Update - load: %v", ErrStorage, err)
		}

		idx := indexOf(all, id)
		if idx < 0 {
			s.logger.Warn("Update: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}

		decision = conflicts.Evaluate(candidate, conflicts.Without(all, id))
		switch decision.Verdict {
		case conflicts.RejectedDuplicateClient:
			s.logger.Warn("Update: %q already booked on %s", candidate.ClientName, candidate.DateString())
			return fmt.Errorf("%w: %w", ErrDuplicateClient, decision.Err())
		case conflicts.RejectedOverlap:
			s.logger.Warn("Update: %s on %s overlaps %s", candidate.Range, candidate.DateString(), decision.Existing.Label())
			return fmt.Errorf("%w: %w", ErrSlotOverlap, decision.Err())
		}

		// запись остаётся на своём месте, чтобы не сдвигать позиции остальных
		all[idx] = candidate
		if err := s.appointmentRepo.ReplaceAll(txCtx, all); err != nil {
			s.logger.Error("Update: failed to replace appointments: %v", err)
			return fmt.Errorf("%w: Update - replace: %v", ErrStorage, err)
		}

		result = all[idx]
		return nil
	})

	if s.metrics != nil && decision.Candidate != nil {
		s.metrics.RecordBookingDecision(operationUpdate, string(decision.Verdict))
	}

	if err != nil {
		return nil, s.translateTxError("Update", err)
	}

	s.logger.Info("Update: successfully updated appointment id=%d", result.ID)
	return models.FromDomainAppointment(result), nil
}

// Delete удаляет запись без возможности восстановления.
// В файловом хранилище ID следующих записей сдвигаются на одну позицию.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: appointment id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		all, err := s.appointmentRepo.LoadAll(txCtx)
		if err != nil {
			s.logger.Error("Delete: repository error: %v", err)
			return fmt.Errorf("%w: Delete - load: %v", ErrStorage, err)
		}

		idx := indexOf(all, id)
		if idx < 0 {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}

		rest := make([]*domain.Appointment, 0, len(all)-1)
		rest = append(rest, all[:idx]...)
		rest = append(rest, all[idx+1:]...)

		if err := s.appointmentRepo.ReplaceAll(txCtx, rest); err != nil {
			s.logger.Error("Delete: failed to replace appointments: %v", err)
			return fmt.Errorf("%w: Delete - replace: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return s.translateTxError("Delete", err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// translateTxError пропускает ошибки сервиса как есть, остальное считает ошибкой хранилища
func (s *Service) translateTxError(op string, err error) error {
	switch {
	case errors.Is(err, ErrAppointmentNotFound),
		errors.Is(err, ErrDuplicateClient),
		errors.Is(err, ErrSlotOverlap),
		errors.Is(err, ErrStorage):
		return err
	default:
		s.logger.Error("%s: transaction failed: %v", op, err)
		return fmt.Errorf("%w: %s - transaction: %v", ErrStorage, op, err)
	}
}

func toCandidate(req *models.UpdateAppointmentRequest) (*domain.Appointment, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyClientName)
	}
	if strings.TrimSpace(req.StartTime) == "" || strings.TrimSpace(req.EndTime) == "" {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	timeRange, err := domain.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	appt, err := domain.NewAppointment(req.ClientName, date, timeRange, req.Phone, req.Note)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return appt, nil
}

func indexOf(all []*domain.Appointment, id int64) int {
	for i, a := range all {
		if a.ID == id {
			return i
		}
	}
	return -1
}
