package list_appointments

import (
	"context"
	"encoding/json"
	"fmt"
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

func newHandler(t *testing.T, n int) *Handler {
	t.Helper()
	var appts []*domain.Appointment
	for i := 0; i < n; i++ {
		date, err := domain.ParseDate(fmt.Sprintf("2024-01-%02d", i+1))
		require.NoError(t, err)
		r, err := domain.ParseTimeRange("09:00", "10:00")
		require.NoError(t, err)
		a, err := domain.NewAppointment(fmt.Sprintf("Client %d", i), date, r, "", "")
		require.NoError(t, err)
		a.ID = int64(i)
		appts = append(appts, a)
	}
	return NewHandler(schedule.NewService(memoryRepo{appts}, logger.NewNop()), logger.NewNop())
}

func TestHandle(t *testing.T) {
	h := newHandler(t, 25)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantPage   int
		wantItems  int
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantPage: 1, wantItems: 10},
		{name: "last page", query: "?page=3", wantStatus: http.StatusOK, wantPage: 3, wantItems: 5},
		{name: "page clamped", query: "?page=99&perPage=20", wantStatus: http.StatusOK, wantPage: 2, wantItems: 5},
		{name: "name filter", query: "?name=client%201", wantStatus: http.StatusOK, wantPage: 1, wantItems: 10},
		{name: "unsupported perPage", query: "?perPage=15", wantStatus: http.StatusBadRequest},
		{name: "non numeric page", query: "?page=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/appointments"+tt.query, nil))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp models.ListResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Len(t, resp.Appointments, tt.wantItems)
		})
	}
}
