package slot

import (
	"fmt"
	"slices"
	"time"
)

// Rules descreve as horas inteiras de atendimento por tipo de dia.
type Rules struct {
	Weekday  []int
	Saturday []int
}

var (
	morningHours   = []int{7, 8, 9, 10, 11}
	afternoonHours = []int{15, 16, 17, 18, 19, 20}
)

// DefaultRules: segunda a sexta 07–11 e 15–20, sábado 07–11, domingo fechado.
func DefaultRules() Rules {
	weekday := make([]int, 0, len(morningHours)+len(afternoonHours))
	weekday = append(weekday, morningHours...)
	weekday = append(weekday, afternoonHours...)

	saturday := make([]int, len(morningHours))
	copy(saturday, morningHours)

	return Rules{Weekday: weekday, Saturday: saturday}
}

func (r Rules) hoursFor(wd time.Weekday) []int {
	switch wd {
	case time.Sunday:
		return nil
	case time.Saturday:
		return sortedHours(r.Saturday)
	default:
		return sortedHours(r.Weekday)
	}
}

func sortedHours(hs []int) []int {
	out := slices.Clone(hs)
	slices.Sort(out)
	return slices.Compact(out)
}

// SlotsPerWeek é o total de slots de uma semana segunda–sábado.
func (r Rules) SlotsPerWeek() int {
	return 5*len(sortedHours(r.Weekday)) + len(sortedHours(r.Saturday))
}

// Generate produz o template de `weeks` semanas a partir da segunda-feira
// igual ou anterior a anchor. weeks < 1 gera template vazio.
func (r Rules) Generate(anchor time.Time, weeks int) Template {
	if weeks < 1 {
		return Template{}
	}

	monday := MondayOf(anchor)
	out := make(Template, 0, weeks*r.SlotsPerWeek())

	for week := 0; week < weeks; week++ {
		for day := 0; day < 6; day++ {
			date := monday.AddDate(0, 0, day+week*7)
			for _, h := range r.hoursFor(date.Weekday()) {
				out = append(out, Slot{
					Date: date,
					Time: fmt.Sprintf("%02d:00", h),
				})
			}
		}
	}

	return out
}

// Generate usa DefaultRules.
func Generate(anchor time.Time, weeks int) Template {
	return DefaultRules().Generate(anchor, weeks)
}
