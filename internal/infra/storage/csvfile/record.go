package csvfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const utf8BOM = "\ufeff"

// Форматы, которые встречаются в файлах, отредактированных вручную или табличными редакторами
var (
	dateLayouts = []string{domain.DateFormat, "2006-01-02 15:04:05", "2006/01/02", "1/2/2006"}
	timeLayouts = []string{domain.TimeFormat, "15:04:05"}
)

// columnIndex позиции колонок схемы в заголовке файла, -1 если колонки нет
type columnIndex map[string]int

// mapHeader сопоставляет заголовок файла со схемой.
// Возвращает список отсутствующих необязательных колонок.
func mapHeader(header []string) (columnIndex, []string, error) {
	idx := make(columnIndex, len(domain.Columns))
	for _, col := range domain.Columns {
		idx[col] = -1
	}

	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, known := idx[name]; known {
			idx[name] = i
		}
	}

	for _, col := range domain.RequiredColumns {
		if idx[col] < 0 {
			return nil, nil, fmt.Errorf("%w: missing required column %q", ErrCorruptRecord, col)
		}
	}

	var missing []string
	for _, col := range domain.Columns {
		if idx[col] < 0 {
			missing = append(missing, col)
		}
	}

	return idx, missing, nil
}

// isCanonicalHeader true, если заголовок совпадает с domain.Columns буквально
func isCanonicalHeader(header []string) bool {
	if len(header) != len(domain.Columns) {
		return false
	}
	for i, col := range domain.Columns {
		if header[i] != col {
			return false
		}
	}
	return true
}

func (c columnIndex) get(record []string, col string) string {
	i := c[col]
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// parse собирает запись из строки файла
func (c columnIndex) parse(record []string) (*domain.Appointment, error) {
	date, err := parseDate(c.get(record, domain.ColumnDate))
	if err != nil {
		return nil, err
	}

	start, err := parseTime(c.get(record, domain.ColumnStartTime))
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := parseTime(c.get(record, domain.ColumnEndTime))
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	r, err := domain.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	return domain.NewAppointment(
		c.get(record, domain.ColumnName),
		date,
		r,
		c.get(record, domain.ColumnPhone),
		c.get(record, domain.ColumnNote),
	)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return domain.DateOnly(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

func parseTime(s string) (types.TimeString, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return types.NewTimeString(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", types.ErrInvalidTimeFormat, s)
}
