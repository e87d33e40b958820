package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	apptModels "github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// noteWidth после этой ширины заметка обрезается
const noteWidth = 40

// Title печатает заголовок с количеством записей
func Title(w io.Writer, title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(w, title)
	switch count {
	case 1:
		_, _ = c.Fprintf(w, " - %d appointment\n", count)
	default:
		_, _ = c.Fprintf(w, " - %d appointments\n", count)
	}
}

// Appointments таблица записей
func Appointments(w io.Writer, items []apptModels.AppointmentResponse) {
	if len(items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = noteWidth
	tbl.AddRow(
		bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Date"),
		bold.Sprint("Start"), bold.Sprint("End"), bold.Sprint("Phone"), bold.Sprint("Note"),
	)
	for _, a := range items {
		tbl.AddRow(id.Sprint(a.ID), a.ClientName, a.Date, a.StartTime, a.EndTime, a.Phone, a.Note)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
}

// Appointment одна запись в виде "поле: значение"
func Appointment(w io.Writer, a *apptModels.AppointmentResponse) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), a.ID)
	tbl.AddRow(bold.Sprint("Name"), a.ClientName)
	tbl.AddRow(bold.Sprint("Date"), a.Date)
	tbl.AddRow(bold.Sprint("Time"), fmt.Sprintf("%s-%s (%d min)", a.StartTime, a.EndTime, a.DurationMinutes))
	tbl.AddRow(bold.Sprint("Phone"), a.Phone)
	tbl.AddRow(bold.Sprint("Note"), a.Note)
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}

// PageFooter строка с номером страницы
func PageFooter(w io.Writer, page *models.ListResponse) {
	_, _ = color.New(color.Faint).Fprintf(w, "page %d/%d, %d total, %d per page\n",
		page.Page, page.TotalPages, page.Total, page.PerPage)
}
