package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	apptModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getFreeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func init() {
	color.NoColor = true
}

type harness struct {
	t    *testing.T
	dir  string
	file string
	now  time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPT_CONFIG", "")
	return &harness{
		t:    t,
		dir:  dir,
		file: filepath.Join(dir, "data.csv"),
		now:  time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	root := NewWithRuntime(&Runtime{Now: func() time.Time { return h.now }})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--file", h.file, "--log-file", filepath.Join(h.dir, "cli.log")))

	err := root.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestAddAndConflicts(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("add", "--name", "Ann", "--date", "2024-01-05", "--start", "09:00", "--end", "10:00")
	assert.Contains(t, out, "Booked #0 Ann on 2024-01-05 09:00-10:00")

	h.mustRun("add", "--name", "Bob", "--date", "2024-01-05", "--start", "10:00", "--end", "11:00")

	_, err := h.run("add", "--name", "Cat", "--date", "2024-01-05", "--start", "09:30", "--end", "10:30")
	assert.ErrorIs(t, err, createAppointmentUC.ErrSlotOverlap)

	_, err = h.run("add", "--name", "ann", "--date", "2024-01-05", "--start", "13:00", "--end", "14:00")
	assert.NoError(t, err, "client names are compared case-sensitively")

	_, err = h.run("add", "--name", "Ann", "--date", "2024-01-05", "--start", "15:00", "--end", "16:00")
	assert.ErrorIs(t, err, createAppointmentUC.ErrDuplicateClient)

	out, err = h.run("add", "--json", "--name", "Dan", "--date", "2024-01-05", "--start", "11:00", "--end", "10:00")
	assert.ErrorIs(t, err, createAppointmentUC.ErrInvalidInput)
	assert.Contains(t, out, `"error"`)
}

func TestViews(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Bob", "--date", "2024-01-05", "--start", "11:00", "--end", "12:00")
	h.mustRun("add", "--name", "Ann", "--date", "2024-01-05", "--start", "09:00", "--end", "10:00")
	h.mustRun("add", "--name", "Cat", "--date", "2024-01-06", "--start", "08:00", "--end", "09:00")

	t.Run("day", func(t *testing.T) {
		out := h.mustRun("day", "--on", "today", "--json")
		var resp models.DayScheduleResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Appointments, 2)
		assert.Equal(t, "Ann", resp.Appointments[0].ClientName)
		require.NotNil(t, resp.Gantt)
		assert.Equal(t, 540, resp.Gantt.Bars[0].OffsetMinutes)

		text := h.mustRun("day", "--on", "2024-01-05")
		assert.Contains(t, text, "Schedule 2024-01-05")
		assert.Contains(t, text, "Ann (09:00-10:00)")
	})

	t.Run("upcoming at 10:30 skips finished", func(t *testing.T) {
		out := h.mustRun("upcoming", "--json")
		var resp apptModels.AppointmentListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Appointments, 2)
		assert.Equal(t, "Bob", resp.Appointments[0].ClientName)
		assert.Equal(t, "Cat", resp.Appointments[1].ClientName)
	})

	t.Run("list", func(t *testing.T) {
		out := h.mustRun("list", "--json", "--name", "A")
		var resp models.ListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "Ann", resp.Appointments[0].ClientName)

		_, err := h.run("list", "--per-page", "7")
		assert.Error(t, err)
	})

	t.Run("gantt", func(t *testing.T) {
		out := h.mustRun("gantt", "--on", "2024-01-06", "--width", "24")
		assert.Contains(t, out, "Cat (08:00-09:00) |")

		_, err := h.run("gantt")
		assert.Error(t, err)
	})

	t.Run("free", func(t *testing.T) {
		out := h.mustRun("free", "--on", "today", "--json")
		var slots []getFreeSlotsUC.Slot
		require.NoError(t, json.Unmarshal([]byte(out), &slots))
		require.NotEmpty(t, slots)
		assert.Equal(t, types.TimeString("12:00"), slots[0].StartTime, "started and busy slots are skipped")
		assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1].StartTime)

		text := h.mustRun("free", "--on", "2024-01-05", "--all")
		assert.Contains(t, text, "busy: Bob (11:00-12:00)")

		_, err := h.run("free")
		assert.Error(t, err)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Ann", "--phone", "081", "--date", "2024-01-05", "--start", "09:00", "--end", "10:00")
	h.mustRun("add", "--name", "Bob", "--date", "2024-01-05", "--start", "11:00", "--end", "12:00")

	out := h.mustRun("update", "0", "--end", "11:00", "--json")
	var updated apptModels.AppointmentResponse
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "11:00", updated.EndTime)
	assert.Equal(t, "081", updated.Phone, "fields not given keep their values")

	_, err := h.run("update", "0", "--end", "11:30")
	assert.ErrorIs(t, err, appointments.ErrSlotOverlap)

	_, err = h.run("update", "x")
	assert.Error(t, err)

	h.mustRun("delete", "0")
	_, err = h.run("delete", "5")
	assert.ErrorIs(t, err, appointments.ErrAppointmentNotFound)

	out = h.mustRun("list", "--json")
	var resp models.ListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Bob", resp.Appointments[0].ClientName)
	assert.Equal(t, int64(0), resp.Appointments[0].ID)
}

func TestExport(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "--name", "Ann", "--date", "2024-01-05", "--start", "09:00", "--end", "10:00")
	h.mustRun("add", "--name", "Bob", "--date", "2024-02-01", "--start", "09:00", "--end", "10:00")

	path := filepath.Join(h.dir, "out", "book.xlsx")
	out := h.mustRun("export", "--out", path)
	assert.Contains(t, out, "Exported 2 appointments")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"2024_01", "2024_02"}, f.GetSheetList())
}
