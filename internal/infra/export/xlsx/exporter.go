package xlsx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ContentType MIME тип книги xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// emptySheet имя листа книги без записей
const emptySheet = "appointments"

// SheetName имя листа для месяца записи: "2024_01"
func SheetName(a *domain.Appointment) string {
	return fmt.Sprintf("%d_%02d", a.Date.Year(), int(a.Date.Month()))
}

// Exporter выгрузка записей в книгу Excel, по листу на каждый месяц
type Exporter struct{}

// NewExporter создает экспортёр
func NewExporter() *Exporter {
	return &Exporter{}
}

// Write пишет книгу в w.
// Листы идут по возрастанию месяца, строки внутри листа по дате и времени начала.
// Колонки совпадают со схемой хранилища.
func (e *Exporter) Write(w io.Writer, appts []*domain.Appointment) error {
	f, err := e.build(appts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteWorkbook, err)
	}
	return nil
}

// WriteFile пишет книгу в файл через временный файл и переименование
func (e *Exporter) WriteFile(path string, appts []*domain.Appointment) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrWriteWorkbook, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteWorkbook, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := e.Write(tmp, appts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", ErrWriteWorkbook, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrWriteWorkbook, path, err)
	}
	return nil
}

func (e *Exporter) build(appts []*domain.Appointment) (*excelize.File, error) {
	groups := groupByMonth(appts)

	sheets := make([]string, 0, len(groups))
	for name := range groups {
		sheets = append(sheets, name)
	}
	sort.Strings(sheets)
	if len(sheets) == 0 {
		sheets = append(sheets, emptySheet)
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	for i, name := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				f.Close()
				return nil, fmt.Errorf("%w: rename sheet %s: %v", ErrBuildWorkbook, name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: add sheet %s: %v", ErrBuildWorkbook, name, err)
		}

		if err := writeSheet(f, name, groups[name]); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, appts []*domain.Appointment) error {
	header := make([]interface{}, 0, len(domain.Columns))
	for _, col := range domain.Columns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: write header on %s: %v", ErrBuildWorkbook, sheet, err)
	}

	for i, a := range appts {
		record := a.Record()
		row := make([]interface{}, 0, len(record))
		for _, v := range record {
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%w: write row %d on %s: %v", ErrBuildWorkbook, i+2, sheet, err)
		}
	}

	return nil
}

func groupByMonth(appts []*domain.Appointment) map[string][]*domain.Appointment {
	sorted := make([]*domain.Appointment, len(appts))
	copy(sorted, appts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Range.Start.IsBefore(sorted[j].Range.Start)
	})

	groups := make(map[string][]*domain.Appointment)
	for _, a := range sorted {
		name := SheetName(a)
		groups[name] = append(groups[name], a)
	}
	return groups
}
