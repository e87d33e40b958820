package get_free_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/conflicts"
)

// UseCase поиск свободного времени на день
type UseCase struct {
	repo         AppointmentRepository
	config       domain.SlotsConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, config domain.SlotsConfig, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case поиска свободного времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и настройки сетки
	cfg, err := validateRequest(req, uc.config)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetFreeSlots: date=%s, duration=%d, step=%d",
		date.Format(domain.DateFormat), cfg.SlotDurationMinutes, cfg.StepMinutes)

	// 2. Генерируем сетку
	now := uc.timeProvider.Now()
	grid, err := generateTimeSlots(cfg, date, now)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 3. Получаем записи на эту дату
	all, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: GetFreeSlots - load: %v", ErrStorage, err)
	}
	dayAppointments := conflicts.ExistingOnDate(all, date)

	// 4. Отмечаем занятые слоты
	marked := markBlocked(grid, dayAppointments)

	slots := make([]Slot, 0, len(marked))
	for _, s := range marked {
		if req.OnlyFree && !s.IsFree() {
			continue
		}
		slot := Slot{
			StartTime:       s.Range.Start,
			EndTime:         s.Range.End,
			DurationMinutes: s.Range.DurationMinutes(),
			Free:            s.IsFree(),
		}
		if s.BlockedBy != nil {
			slot.BlockedBy = s.BlockedBy.Label()
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetFreeSlots: %d slots for %s (%d appointments on that day)",
		len(slots), date.Format(domain.DateFormat), len(dayAppointments))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}
