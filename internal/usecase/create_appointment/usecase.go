package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/conflicts"
)

const operation = "create"

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Чтение, проверка конфликтов и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: name=%q, date=%s, time=%s-%s",
		req.ClientName, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация и нормализация входных данных
	candidate, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Appointment
		decision conflicts.Decision
	)

	// 2. Выполняем операции с хранилищем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем текущее состояние хранилища
		existing, err := uc.appointmentRepo.LoadAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load appointments: %v", err)
			return fmt.Errorf("%w: failed to load appointments: %v", ErrStorage, err)
		}

		// 2.2. Проверяем конфликты с записями на ту же дату
		decision = conflicts.Evaluate(candidate, existing)
		switch decision.Verdict {
		case conflicts.RejectedDuplicateClient:
			uc.logger.Warn("CreateAppointment: %q already booked on %s", candidate.ClientName, candidate.DateString())
			return fmt.Errorf("%w: %w", ErrDuplicateClient, decision.Err())
		case conflicts.RejectedOverlap:
			uc.logger.Warn("CreateAppointment: %s on %s overlaps %s",
				candidate.Range, candidate.DateString(), decision.Existing.Label())
			return fmt.Errorf("%w: %w", ErrSlotOverlap, decision.Err())
		}

		// 2.3. Сохраняем запись
		created, err := uc.appointmentRepo.AppendOne(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to append appointment: %v", err)
			return fmt.Errorf("%w: failed to append appointment: %v", ErrStorage, err)
		}

		result = created
		return nil
	})

	if uc.metrics != nil && decision.Candidate != nil {
		uc.metrics.RecordBookingDecision(operation, string(decision.Verdict))
	}

	if err != nil {
		if errors.Is(err, ErrDuplicateClient) || errors.Is(err, ErrSlotOverlap) || errors.Is(err, ErrStorage) {
			return nil, err
		}
		// ошибка самой транзакции
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ClientName:      result.ClientName,
		Phone:           result.Phone,
		Date:            result.Date,
		StartTime:       result.Range.Start,
		EndTime:         result.Range.End,
		DurationMinutes: result.Range.DurationMinutes(),
		Note:            result.Note,
	}, nil
}
