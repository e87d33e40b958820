package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	r, err := ParseTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "valid", start: "09:00", end: "10:00"},
		{name: "one minute", start: "23:58", end: "23:59"},
		{name: "zero length", start: "10:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "inverted", start: "11:00", end: "10:00", wantErr: ErrInvalidTimeRange},
		{name: "unparsable start", start: "25:00", end: "10:00", wantErr: types.ErrInvalidTimeFormat},
		{name: "empty end", start: "09:00", end: "", wantErr: types.ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseTimeRange(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.TimeString(tt.start), r.Start)
			assert.Equal(t, types.TimeString(tt.end), r.End)
		})
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "identical", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:00", "10:00"}, want: true},
		{name: "partial at start", a: [2]string{"09:00", "10:00"}, b: [2]string{"08:30", "09:30"}, want: true},
		{name: "partial at end", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:30", "10:30"}, want: true},
		{name: "contains", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "contained", a: [2]string{"10:00", "11:00"}, b: [2]string{"09:00", "12:00"}, want: true},
		{name: "adjacent after", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "adjacent before", a: [2]string{"10:00", "11:00"}, b: [2]string{"09:00", "10:00"}, want: false},
		{name: "disjoint", a: [2]string{"09:00", "10:00"}, b: [2]string{"14:00", "15:00"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a[0], tt.a[1])
			b := mustRange(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, a.Overlaps(b))
			// пересечение симметрично
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestTimeRange_DurationAndString(t *testing.T) {
	r := mustRange(t, "09:15", "10:45")
	assert.Equal(t, 90, r.DurationMinutes())
	assert.Equal(t, "09:15-10:45", r.String())
}

func TestNewAppointment(t *testing.T) {
	date := time.Date(2024, 1, 5, 13, 45, 0, 0, time.Local)
	r := mustRange(t, "09:00", "10:00")

	appt, err := NewAppointment("  Ann ", date, r, " 0812345678 ", "first visit\nback pain\r\n")
	require.NoError(t, err)

	assert.Equal(t, "Ann", appt.ClientName)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), appt.Date)
	assert.Equal(t, "0812345678", appt.Phone)
	assert.Equal(t, "first visit back pain", appt.Note)
	assert.Equal(t, []string{"Ann", "2024-01-05", "09:00", "10:00", "0812345678", "first visit back pain"}, appt.Record())
	assert.Equal(t, "Ann (09:00-10:00)", appt.Label())

	_, err = NewAppointment("   ", date, r, "", "")
	assert.ErrorIs(t, err, ErrEmptyClientName)

	_, err = NewAppointment("Ann", time.Time{}, r, "", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewAppointment("Ann", date, TimeRange{Start: "10:00", End: "10:00"}, "", "")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewAppointment("Ann", date, TimeRange{Start: "garbage", End: "10:00"}, "", "")
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)

	_, err = NewAppointment("Ann", date, TimeRange{Start: "09:00", End: "24:30"}, "", "")
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestAppointment_Moments(t *testing.T) {
	appt, err := NewAppointment("Ann", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), mustRange(t, "09:00", "10:30"), "", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC), appt.EndAt(time.UTC))
	assert.True(t, appt.IsOn(time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)))
	assert.False(t, appt.IsOn(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.Format(DateFormat))

	_, err = ParseDate("29/02/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
