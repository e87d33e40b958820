package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// Service read-only представления над хранилищем записей
type Service struct {
	repo         AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetDaySchedule расписание на день, отсортированное по времени начала.
// Без даты возвращает весь набор записей без сортировки и без диаграммы.
// Фильтр по имени применяется к таблице, диаграмма строится по всем записям дня.
func (s *Service) GetDaySchedule(ctx context.Context, req *models.DayScheduleRequest) (*models.DayScheduleResponse, error) {
	if req.Date == nil {
		s.logger.Info("GetDaySchedule: no date, name=%q", req.NameFilter)
	} else {
		s.logger.Info("GetDaySchedule: date=%s, name=%q", req.Date.Format(domain.DateFormat), req.NameFilter)
	}

	all, err := s.load(ctx, "GetDaySchedule")
	if err != nil {
		return nil, err
	}

	day := DayView(all, req.Date)
	resp := &models.DayScheduleResponse{
		Appointments: apptModels.FromDomainAppointmentList(FilterByName(day, req.NameFilter)).Appointments,
	}

	if req.Date != nil {
		date := req.Date.Format(domain.DateFormat)
		resp.Date = &date
		resp.Gantt = toGanttResponse(date, GanttLayout(day))
	}

	s.logger.Info("GetDaySchedule: returned %d of %d appointments", len(resp.Appointments), len(day))
	return resp, nil
}

// GetGanttBars полосы диаграммы Ганта на дату
func (s *Service) GetGanttBars(ctx context.Context, date time.Time) (*models.GanttResponse, error) {
	s.logger.Info("GetGanttBars: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		s.logger.Warn("GetGanttBars: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	all, err := s.load(ctx, "GetGanttBars")
	if err != nil {
		return nil, err
	}

	bars := GanttLayout(DayView(all, &date))

	s.logger.Info("GetGanttBars: %d bars for date=%s", len(bars), date.Format(domain.DateFormat))
	return toGanttResponse(date.Format(domain.DateFormat), bars), nil
}

// GetUpcoming записи, которые ещё не закончились к req.Now.
// Нулевой req.Now заменяется текущим временем.
func (s *Service) GetUpcoming(ctx context.Context, req *models.UpcomingRequest) (*apptModels.AppointmentListResponse, error) {
	now := req.Now
	if now.IsZero() {
		now = s.timeProvider.Now()
	}
	s.logger.Info("GetUpcoming: now=%s, name=%q", now.Format(time.RFC3339), req.NameFilter)

	all, err := s.load(ctx, "GetUpcoming")
	if err != nil {
		return nil, err
	}

	upcoming := UpcomingView(all, now, req.NameFilter)

	s.logger.Info("GetUpcoming: %d upcoming of %d appointments", len(upcoming), len(all))
	return apptModels.FromDomainAppointmentList(upcoming), nil
}

// ListAppointments постраничный список всех записей по дате и времени начала
func (s *Service) ListAppointments(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	s.logger.Info("ListAppointments: name=%q, page=%d, perPage=%d", req.NameFilter, req.Page, req.PerPage)

	perPage := req.PerPage
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if !IsAllowedPerPage(perPage) {
		s.logger.Warn("ListAppointments: unsupported perPage=%d", req.PerPage)
		return nil, fmt.Errorf("%w: perPage must be one of %v", ErrInvalidInput, AllowedPerPage)
	}

	all, err := s.load(ctx, "ListAppointments")
	if err != nil {
		return nil, err
	}

	filtered := SortByDateStart(FilterByName(all, req.NameFilter))
	page := Paginate(filtered, req.Page, perPage)

	s.logger.Info("ListAppointments: page %d/%d, %d total", page.Page, page.TotalPages, page.Total)
	return &models.ListResponse{
		Appointments: apptModels.FromDomainAppointmentList(page.Items).Appointments,
		Page:         page.Page,
		PerPage:      page.PerPage,
		Total:        page.Total,
		TotalPages:   page.TotalPages,
	}, nil
}

// GetAll весь набор записей по дате и времени начала (для экспорта)
func (s *Service) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	all, err := s.load(ctx, "GetAll")
	if err != nil {
		return nil, err
	}
	return SortByDateStart(all), nil
}

func (s *Service) load(ctx context.Context, op string) ([]*domain.Appointment, error) {
	all, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Error("%s: failed to load appointments: %v", op, err)
		return nil, fmt.Errorf("%w: %s - load appointments: %v", ErrStorage, op, err)
	}
	return all, nil
}

func toGanttResponse(date string, bars []Bar) *models.GanttResponse {
	resp := &models.GanttResponse{
		Date:        date,
		AxisMinutes: DayMinutes,
		Bars:        make([]models.GanttBar, 0, len(bars)),
	}
	for _, b := range bars {
		resp.Bars = append(resp.Bars, models.GanttBar{
			Row:             b.Row,
			OffsetMinutes:   b.OffsetMinutes,
			DurationMinutes: b.DurationMinutes,
			Label:           b.Label,
			AppointmentID:   b.Appointment.ID,
		})
	}
	return resp
}
