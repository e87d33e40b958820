package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type fakeRepo struct {
	appts []*domain.Appointment
	err   error
	loads int
}

func (r *fakeRepo) LoadAll(_ context.Context) ([]*domain.Appointment, error) {
	r.loads++
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Appointment, len(r.appts))
	copy(result, r.appts)
	return result, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestService_GetDaySchedule(t *testing.T) {
	repo := &fakeRepo{appts: fixture(t)}
	svc := NewService(repo, logger.NewNop())

	t.Run("filtered table, unfiltered chart", func(t *testing.T) {
		resp, err := svc.GetDaySchedule(context.Background(), &models.DayScheduleRequest{Date: &jan5, NameFilter: "ann"})
		require.NoError(t, err)

		require.NotNil(t, resp.Date)
		assert.Equal(t, "2024-01-05", *resp.Date)
		require.Len(t, resp.Appointments, 2)
		assert.Equal(t, "Ann", resp.Appointments[0].ClientName)
		assert.Equal(t, "Annette", resp.Appointments[1].ClientName)

		require.NotNil(t, resp.Gantt)
		assert.Equal(t, DayMinutes, resp.Gantt.AxisMinutes)
		require.Len(t, resp.Gantt.Bars, 3)
		assert.Equal(t, "Bob (11:00-12:00)", resp.Gantt.Bars[1].Label)
		assert.Equal(t, int64(1), resp.Gantt.Bars[1].AppointmentID)
	})

	t.Run("no date", func(t *testing.T) {
		resp, err := svc.GetDaySchedule(context.Background(), &models.DayScheduleRequest{})
		require.NoError(t, err)
		assert.Nil(t, resp.Date)
		assert.Nil(t, resp.Gantt)
		assert.Len(t, resp.Appointments, 4)
	})
}

func TestService_GetGanttBars(t *testing.T) {
	svc := NewService(&fakeRepo{appts: fixture(t)}, logger.NewNop())

	resp, err := svc.GetGanttBars(context.Background(), jan6)
	require.NoError(t, err)
	require.Len(t, resp.Bars, 1)
	assert.Equal(t, models.GanttBar{Row: 0, OffsetMinutes: 480, DurationMinutes: 60, Label: "Cat (08:00-09:00)", AppointmentID: 0}, resp.Bars[0])

	_, err = svc.GetGanttBars(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetUpcoming(t *testing.T) {
	svc := NewService(&fakeRepo{appts: fixture(t)}, logger.NewNop()).
		WithTimeProvider(fixedTime{now: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)})

	// now берётся из TimeProvider
	resp, err := svc.GetUpcoming(context.Background(), &models.UpcomingRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 3)
	assert.Equal(t, "Bob", resp.Appointments[0].ClientName)
	assert.Equal(t, "Annette", resp.Appointments[1].ClientName)
	assert.Equal(t, "Cat", resp.Appointments[2].ClientName)

	resp, err = svc.GetUpcoming(context.Background(), &models.UpcomingRequest{
		Now:        time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		NameFilter: "c",
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Cat", resp.Appointments[0].ClientName)
}

func TestService_ListAppointments(t *testing.T) {
	svc := NewService(&fakeRepo{appts: fixture(t)}, logger.NewNop())

	resp, err := svc.ListAppointments(context.Background(), &models.ListRequest{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.PerPage)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Appointments, 4)
	assert.Equal(t, "Ann", resp.Appointments[0].ClientName)
	assert.Equal(t, "Cat", resp.Appointments[3].ClientName)

	_, err = svc.ListAppointments(context.Background(), &models.ListRequest{Page: 1, PerPage: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_StorageError(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk on fire")}
	svc := NewService(repo, logger.NewNop())

	_, err := svc.GetDaySchedule(context.Background(), &models.DayScheduleRequest{Date: &jan5})
	assert.ErrorIs(t, err, ErrStorage)

	_, err = svc.GetUpcoming(context.Background(), &models.UpcomingRequest{})
	assert.ErrorIs(t, err, ErrStorage)

	_, err = svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestService_ReloadsOnEveryCall(t *testing.T) {
	repo := &fakeRepo{appts: fixture(t)}
	svc := NewService(repo, logger.NewNop())

	_, _ = svc.GetAll(context.Background())
	_, _ = svc.GetGanttBars(context.Background(), jan5)
	assert.Equal(t, 2, repo.loads)
}
