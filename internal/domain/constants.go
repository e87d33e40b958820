package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay длина суток в минутах, ось диаграммы Ганта 0..MinutesPerDay
const MinutesPerDay = types.MinutesPerDay

// Колонки табличного хранилища в порядке хранения
const (
	ColumnName      = "Name"
	ColumnDate      = "Date"
	ColumnStartTime = "StartTime"
	ColumnEndTime   = "EndTime"
	ColumnPhone     = "Phone"
	ColumnNote      = "Note"
)

// Columns актуальная схема хранилища
var Columns = []string{
	ColumnName,
	ColumnDate,
	ColumnStartTime,
	ColumnEndTime,
	ColumnPhone,
	ColumnNote,
}

// RequiredColumns колонки, без которых запись не может быть прочитана.
// Phone и Note появились позже и при загрузке дозаполняются пустыми строками.
var RequiredColumns = []string{
	ColumnName,
	ColumnDate,
	ColumnStartTime,
	ColumnEndTime,
}
