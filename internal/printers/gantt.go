package printers

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// DefaultGanttWidth ширина шкалы в символах: 96 символов по 15 минут
const DefaultGanttWidth = 96

const (
	barRune   = '█'
	emptyRune = '·'
	hourStep  = 3
)

// GanttLines строки текстовой диаграммы Ганта без цвета.
// Первая строка - шкала часов, далее по строке на полосу в порядке Row.
func GanttLines(g *models.GanttResponse, width int) []string {
	if width <= 0 {
		width = DefaultGanttWidth
	}
	axis := g.AxisMinutes
	if axis <= 0 {
		axis = 24 * 60
	}

	labelWidth := 0
	for _, b := range g.Bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
	}

	lines := make([]string, 0, len(g.Bars)+1)
	lines = append(lines, strings.Repeat(" ", labelWidth)+" "+ruler(axis, width))

	for _, b := range g.Bars {
		from := b.OffsetMinutes * width / axis
		to := (b.OffsetMinutes + b.DurationMinutes) * width / axis
		if to <= from {
			to = from + 1
		}
		if to > width {
			to = width
		}

		cells := []rune(strings.Repeat(string(emptyRune), width))
		for i := from; i < to; i++ {
			cells[i] = barRune
		}

		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(b.Label))
		lines = append(lines, b.Label+pad+" |"+string(cells)+"|")
	}

	return lines
}

// Gantt печатает диаграмму, полосы выделены цветом
func Gantt(w io.Writer, g *models.GanttResponse, width int) {
	Title(w, "Gantt "+g.Date, len(g.Bars))
	if len(g.Bars) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " none\n\n")
		return
	}

	faint := color.New(color.Faint)
	bar := color.New(color.FgHiCyan)

	lines := GanttLines(g, width)
	_, _ = faint.Fprintln(w, lines[0])
	for _, line := range lines[1:] {
		line = strings.ReplaceAll(line, string(barRune), bar.Sprint(string(barRune)))
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintln(w, "")
}

// ruler шкала с подписью часа каждые hourStep часов
func ruler(axis, width int) string {
	cells := []rune(" " + strings.Repeat(" ", width) + " ")
	for h := 0; h*60 < axis; h += hourStep {
		col := 1 + h*60*width/axis
		for i, r := range fmt.Sprintf("%02d", h) {
			if col+i < len(cells) {
				cells[col+i] = r
			}
		}
	}
	return string(cells)
}
