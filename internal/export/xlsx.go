package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

const (
	SheetName   = "Turnos"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header não inclui o id.
var Header = []any{"Paciente", "Email", "Fecha", "Hora", "Observaciones"}

// WriteXLSX escreve uma planilha com todos os turnos por (fecha, hora).
func WriteXLSX(w io.Writer, appointments []appointment.Appointment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, ap := range appointment.Chronological(appointments) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{ap.PatientName, ap.Email, ap.Date, ap.Time, ap.Notes}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "E", "E", 40); err != nil {
		return err
	}

	return f.Write(w)
}

// FileName gera turnos-YYYYMMDD-HHMMSS.xlsx.
func FileName(now time.Time) string {
	return "turnos-" + now.Format("20060102-150405") + ".xlsx"
}
