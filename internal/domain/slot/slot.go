package slot

import (
	"slices"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Slot é uma unidade recorrente (data, hora) de capacidade agendável,
// independente de estar ocupada.
type Slot struct {
	Date time.Time `json:"date"`
	Time string    `json:"time"`
}

func (s Slot) IsWeekday() bool {
	wd := s.Date.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

func (s Slot) IsSaturday() bool {
	return s.Date.Weekday() == time.Saturday
}

// Key identifica o slot no formato "YYYY-MM-DD HH:MM".
func (s Slot) Key() string {
	return Key(s.Date, s.Time)
}

func Key(date time.Time, hhmm string) string {
	return date.Format(DateLayout) + " " + hhmm
}

// Template é a sequência ordenada (data asc, hora asc) de slots de um
// intervalo. É recalculado a cada leitura e nunca alterado.
type Template []Slot

// Days devolve as datas distintas do template, em ordem.
func (t Template) Days() []time.Time {
	var days []time.Time
	for i, s := range t {
		if i == 0 || !s.Date.Equal(t[i-1].Date) {
			days = append(days, s.Date)
		}
	}
	return days
}

// Times devolve os horários distintos do template, em ordem crescente.
func (t Template) Times() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range t {
		if !seen[s.Time] {
			seen[s.Time] = true
			out = append(out, s.Time)
		}
	}
	slices.Sort(out)
	return out
}

func (t Template) Contains(date time.Time, hhmm string) bool {
	key := Key(date, hhmm)
	for _, s := range t {
		if s.Key() == key {
			return true
		}
	}
	return false
}
