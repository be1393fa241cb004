package dto

import (
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
)

type CellDTO struct {
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Status      string          `json:"status"`
	Label       string          `json:"label"`
	Appointment *AppointmentDTO `json:"appointment,omitempty"`
}

type DayDTO struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Occupied int    `json:"occupied"`
	Total    int    `json:"total"`
}

type GridDTO struct {
	Anchor   string           `json:"anchor"`
	Weeks    int              `json:"weeks"`
	Times    []string         `json:"times"`
	Days     []DayDTO         `json:"days"`
	Cells    []CellDTO        `json:"cells"`
	Occupied int              `json:"occupied"`
	Free     int              `json:"free"`
	Warnings []domain.Warning `json:"warnings"`
}

var weekdayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

func FromGrid(anchor string, weeks int, tmpl slot.Template, grid domain.Grid, warnings domain.Warnings) GridDTO {
	cells := make([]CellDTO, 0, len(grid.Cells()))
	for _, c := range grid.Cells() {
		cell := CellDTO{
			Date:   c.Slot.Date.Format(slot.DateLayout),
			Time:   c.Slot.Time,
			Status: string(c.Status),
			Label:  c.Status.Label(),
		}
		if c.Appointment != nil {
			ap := FromAppointment(*c.Appointment)
			cell.Appointment = &ap
		}
		cells = append(cells, cell)
	}

	byDay := grid.ByDay()
	days := make([]DayDTO, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, DayDTO{
			Date:     d.Date.Format(slot.DateLayout),
			Weekday:  weekdayNames[d.Date.Weekday()],
			Occupied: d.Occupied,
			Total:    d.Total,
		})
	}

	if warnings == nil {
		warnings = domain.Warnings{}
	}

	return GridDTO{
		Anchor:   anchor,
		Weeks:    weeks,
		Times:    tmpl.Times(),
		Days:     days,
		Cells:    cells,
		Occupied: grid.Occupied(),
		Free:     grid.Free(),
		Warnings: warnings,
	}
}
