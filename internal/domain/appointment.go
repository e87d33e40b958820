package domain

import (
	"fmt"
	"strings"
	"time"
)

// Appointment запись клиента на приём.
// Пара (ClientName, Date) уникальна в хранилище: не больше одной записи клиента в день.
type Appointment struct {
	// ID идентификатор записи в хранилище.
	// Для файлового хранилища это номер строки (с 0), для SQL - первичный ключ.
	ID         int64
	ClientName string
	Date       time.Time // только дата, время 00:00 UTC
	Range      TimeRange
	Phone      string // может быть пустой строкой
	Note       string // переводы строк заменены пробелами
}

// NewAppointment нормализует поля и проверяет обязательные
func NewAppointment(clientName string, date time.Time, r TimeRange, phone, note string) (*Appointment, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	r, err := NewTimeRange(r.Start, r.End)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		ClientName: clientName,
		Date:       DateOnly(date),
		Range:      r,
		Phone:      strings.TrimSpace(phone),
		Note:       NormalizeNote(note),
	}, nil
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// DateOnly отбрасывает время и часовой пояс, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeNote заменяет переводы строк пробелами
func NormalizeNote(note string) string {
	note = strings.ReplaceAll(note, "\r\n", " ")
	note = strings.ReplaceAll(note, "\n", " ")
	note = strings.ReplaceAll(note, "\r", " ")
	return strings.TrimSpace(note)
}

// IsOn возвращает true, если запись на указанную календарную дату
func (a *Appointment) IsOn(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateString дата в формате YYYY-MM-DD
func (a *Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}

// EndAt момент окончания приёма в часовом поясе loc
func (a *Appointment) EndAt(loc *time.Location) time.Time {
	return a.Range.End.On(a.Date, loc)
}

// Record строка хранилища в порядке Columns
func (a *Appointment) Record() []string {
	return []string{
		a.ClientName,
		a.DateString(),
		a.Range.Start.String(),
		a.Range.End.String(),
		a.Phone,
		a.Note,
	}
}

// Label подпись записи на диаграмме: "Ann (09:00-10:00)"
func (a *Appointment) Label() string {
	return fmt.Sprintf("%s (%s)", a.ClientName, a.Range)
}

// Clone возвращает независимую копию записи
func (a *Appointment) Clone() *Appointment {
	c := *a
	return &c
}
