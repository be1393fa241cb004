package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

// Cell é um slot do template classificado como livre ou ocupado.
type Cell struct {
	Slot        slot.Slot    `json:"slot"`
	Status      Status       `json:"status"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

// Grid é o template cruzado com os turnos. Efêmera, pertence a quem pediu.
type Grid struct {
	cells []Cell
	index map[string]int
}

// DayOccupancy resume um dia da grade.
type DayOccupancy struct {
	Date     time.Time `json:"date"`
	Occupied int       `json:"occupied"`
	Total    int       `json:"total"`
}

// BuildGrid classifica cada slot do template. Sem turno: livre. Um turno:
// ocupado por ele. Vários: ocupado pelo de menor id, com um aviso
// duplicate_slot. Linhas com data ou hora ilegível ficam fora e viram aviso.
// warn pode ser nil.
func BuildGrid(tmpl slot.Template, appointments []Appointment, warn Collector) Grid {
	if warn == nil {
		warn = discard{}
	}

	inTemplate := make(map[string]bool, len(tmpl))
	for _, s := range tmpl {
		inTemplate[s.Key()] = true
	}

	bySlot := make(map[string][]Appointment)
	for _, ap := range appointments {
		d, err := NormalizeDate(ap.Date)
		if err != nil {
			warn.Warn(Warning{
				Kind:           WarningMalformedDate,
				Raw:            ap.Date,
				AppointmentIDs: []uint{ap.ID},
			})
			continue
		}

		t, err := NormalizeTime(ap.Time)
		if err != nil {
			warn.Warn(Warning{
				Kind:           WarningMalformedTime,
				Date:           d,
				Raw:            ap.Time,
				AppointmentIDs: []uint{ap.ID},
			})
			continue
		}

		norm := ap
		norm.Date = d
		norm.Time = t
		key := norm.key()

		if !inTemplate[key] {
			continue
		}

		if t != ap.Time {
			warn.Warn(Warning{
				Kind:           WarningCoercedTime,
				Date:           d,
				Time:           t,
				Raw:            ap.Time,
				AppointmentIDs: []uint{ap.ID},
			})
		}

		bySlot[key] = append(bySlot[key], norm)
	}

	g := Grid{
		cells: make([]Cell, 0, len(tmpl)),
		index: make(map[string]int, len(tmpl)),
	}

	for _, s := range tmpl {
		cell := Cell{Slot: s, Status: StatusFree}

		if matches := bySlot[s.Key()]; len(matches) > 0 {
			sort.SliceStable(matches, func(i, j int) bool {
				return matches[i].ID < matches[j].ID
			})

			winner := matches[0]
			cell.Status = StatusOccupied
			cell.Appointment = &winner

			if len(matches) > 1 {
				ids := make([]uint, len(matches))
				for i, m := range matches {
					ids[i] = m.ID
				}
				warn.Warn(Warning{
					Kind:           WarningDuplicateSlot,
					Date:           s.Date.Format(slot.DateLayout),
					Time:           s.Time,
					AppointmentIDs: ids,
				})
			}
		}

		g.index[s.Key()] = len(g.cells)
		g.cells = append(g.cells, cell)
	}

	return g
}

func (g Grid) Cells() []Cell {
	return g.cells
}

func (g Grid) Lookup(date time.Time, hhmm string) (Cell, bool) {
	i, ok := g.index[slot.Key(date, hhmm)]
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

func (g Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c.Status == StatusOccupied {
			n++
		}
	}
	return n
}

func (g Grid) Free() int {
	return len(g.cells) - g.Occupied()
}

// ByDay agrega a ocupação por data, na ordem do template.
func (g Grid) ByDay() []DayOccupancy {
	var out []DayOccupancy
	for _, c := range g.cells {
		if len(out) == 0 || !out[len(out)-1].Date.Equal(c.Slot.Date) {
			out = append(out, DayOccupancy{Date: c.Slot.Date})
		}
		day := &out[len(out)-1]
		day.Total++
		if c.Status == StatusOccupied {
			day.Occupied++
		}
	}
	return out
}
