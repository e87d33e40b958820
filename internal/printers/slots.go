package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	getFreeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

// FreeSlots сетка дня: свободные слоты зелёным, занятые с подписью записи
func FreeSlots(w io.Writer, slots []getFreeSlots.Slot) {
	if len(slots) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " none\n\n")
		return
	}

	free := color.New(color.FgGreen)
	busy := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range slots {
		span := fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
		if s.Free {
			tbl.AddRow(free.Sprint(span), free.Sprint("free"))
			continue
		}
		tbl.AddRow(busy.Sprint(span), busy.Sprint("busy: "+s.BlockedBy))
	}

	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")
}
