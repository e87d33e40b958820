package get_gantt_bars

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type stubService struct{ gotDate time.Time }

func (s *stubService) GetGanttBars(_ context.Context, date time.Time) (*models.GanttResponse, error) {
	s.gotDate = date
	return &models.GanttResponse{
		Date:        date.Format("2006-01-02"),
		AxisMinutes: 1440,
		Bars:        []models.GanttBar{{Row: 0, OffsetMinutes: 540, DurationMinutes: 60, Label: "Ann (09:00-10:00)"}},
	}, nil
}

func request(h *Handler, date string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/"+date+"/gantt", nil)
	req = mux.SetURLVars(req, map[string]string{"date": date})
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, logger.NewNop())

	w := request(h, "2024-01-05")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), svc.gotDate)

	var resp models.GanttResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1440, resp.AxisMinutes)
	require.Len(t, resp.Bars, 1)
	assert.Equal(t, "Ann (09:00-10:00)", resp.Bars[0].Label)

	assert.Equal(t, http.StatusBadRequest, request(h, "2024-13-01").Code)
}
