package get_day_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type memoryRepo struct{ appts []*domain.Appointment }

func (r memoryRepo) LoadAll(context.Context) ([]*domain.Appointment, error) {
	return r.appts, nil
}

func mustAppt(t *testing.T, id int64, name, date, start, end string) *domain.Appointment {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	r, err := domain.ParseTimeRange(start, end)
	require.NoError(t, err)
	a, err := domain.NewAppointment(name, d, r, "", "")
	require.NoError(t, err)
	a.ID = id
	return a
}

func TestHandle(t *testing.T) {
	repo := memoryRepo{[]*domain.Appointment{
		mustAppt(t, 0, "Bob", "2024-01-05", "11:00", "12:00"),
		mustAppt(t, 1, "Ann", "2024-01-05", "09:00", "10:00"),
		mustAppt(t, 2, "Cat", "2024-01-06", "09:00", "10:00"),
	}}
	h := NewHandler(schedule.NewService(repo, logger.NewNop()), logger.NewNop())

	t.Run("day sorted with gantt", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=2024-01-05", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.DayScheduleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Appointments, 2)
		assert.Equal(t, "Ann", resp.Appointments[0].ClientName)
		require.NotNil(t, resp.Gantt)
		require.Len(t, resp.Gantt.Bars, 2)
		assert.Equal(t, 540, resp.Gantt.Bars[0].OffsetMinutes)
	})

	t.Run("name filter keeps full gantt", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=2024-01-05&name=BOB", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.DayScheduleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Appointments, 1)
		assert.Len(t, resp.Gantt.Bars, 2)
	})

	t.Run("no date returns everything", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedule", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.DayScheduleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Appointments, 3)
		assert.Nil(t, resp.Gantt)
		assert.Nil(t, resp.Date)
	})

	t.Run("bad date", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/schedule?date=yesterday", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
