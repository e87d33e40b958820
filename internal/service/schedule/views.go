package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DayMinutes длина оси диаграммы Ганта
const DayMinutes = domain.MinutesPerDay

// Размеры страницы списка записей
const (
	DefaultPerPage = 10
)

// AllowedPerPage допустимые размеры страницы
var AllowedPerPage = []int{10, 20, 50}

// Bar полоса диаграммы Ганта для одной записи
type Bar struct {
	Row             int    // позиция в отсортированном по началу списке дня
	OffsetMinutes   int    // start.hour*60 + start.minute
	DurationMinutes int    // end - start в минутах
	Label           string // "Ann (09:00-10:00)"
	Appointment     *domain.Appointment
}

// DayView записи на дату, отсортированные по времени начала.
// Для date == nil возвращается весь набор без фильтрации и сортировки.
func DayView(all []*domain.Appointment, date *time.Time) []*domain.Appointment {
	if date == nil {
		result := make([]*domain.Appointment, len(all))
		copy(result, all)
		return result
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range all {
		if a.IsOn(*date) {
			result = append(result, a)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Range.Start.IsBefore(result[j].Range.Start)
	})

	return result
}

// UpcomingView записи, которые ещё не закончились к моменту now.
// Запись, заканчивающаяся ровно в now, считается предстоящей.
// Время записей трактуется в часовом поясе now.
func UpcomingView(all []*domain.Appointment, now time.Time, filter string) []*domain.Appointment {
	result := make([]*domain.Appointment, 0)
	for _, a := range all {
		if a.EndAt(now.Location()).Before(now) {
			continue
		}
		result = append(result, a)
	}

	return SortByDateStart(FilterByName(result, filter))
}

// GanttLayout раскладывает записи дня в полосы диаграммы.
// Ожидает список, уже отсортированный DayView.
func GanttLayout(day []*domain.Appointment) []Bar {
	bars := make([]Bar, 0, len(day))
	for i, a := range day {
		bars = append(bars, Bar{
			Row:             i,
			OffsetMinutes:   a.Range.Start.Minutes(),
			DurationMinutes: a.Range.DurationMinutes(),
			Label:           a.Label(),
			Appointment:     a,
		})
	}
	return bars
}

// FilterByName оставляет записи, имя которых содержит filter без учёта регистра.
// Пустой фильтр пропускает все записи.
func FilterByName(appts []*domain.Appointment, filter string) []*domain.Appointment {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return appts
	}

	result := make([]*domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if strings.Contains(strings.ToLower(a.ClientName), filter) {
			result = append(result, a)
		}
	}
	return result
}

// SortByDateStart сортирует по дате, затем по времени начала (на месте, стабильно)
func SortByDateStart(appts []*domain.Appointment) []*domain.Appointment {
	sort.SliceStable(appts, func(i, j int) bool {
		if !appts[i].Date.Equal(appts[j].Date) {
			return appts[i].Date.Before(appts[j].Date)
		}
		return appts[i].Range.Start.IsBefore(appts[j].Range.Start)
	})
	return appts
}

// Page срез списка для одной страницы
type Page struct {
	Items      []*domain.Appointment
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// Paginate возвращает страницу page (с 1) размера perPage.
// Номер страницы приводится к диапазону [1, TotalPages], пустой список даёт одну пустую страницу.
func Paginate(appts []*domain.Appointment, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(appts)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	from := (page - 1) * perPage
	to := from + perPage
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}

	return Page{
		Items:      appts[from:to],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// IsAllowedPerPage проверяет размер страницы
func IsAllowedPerPage(perPage int) bool {
	for _, allowed := range AllowedPerPage {
		if perPage == allowed {
			return true
		}
	}
	return false
}
