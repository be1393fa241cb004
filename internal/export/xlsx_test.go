package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/turnera/internal/config"
	"github.com/BruksfildServices01/turnera/internal/domain/appointment"
)

func TestWriteXLSX_SheetHeaderAndOrder(t *testing.T) {
	aps := []appointment.Appointment{
		{ID: 1, PatientName: "Ana", Email: "ana@example.com", Date: "2024-06-11", Time: "09:00", Notes: "control"},
		{ID: 2, PatientName: "Beto", Date: "2024-06-10", Time: "15:00:00"},
		{ID: 3, PatientName: "Caro", Date: "2024-06-10", Time: "08:00"},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, aps); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}

	if strings.Join(rows[0], ",") != "Paciente,Email,Fecha,Hora,Observaciones" {
		t.Errorf("unexpected header %v", rows[0])
	}

	wantNames := []string{"Caro", "Beto", "Ana"}
	for i, name := range wantNames {
		if rows[i+1][0] != name {
			t.Errorf("row %d: got %s, want %s", i+1, rows[i+1][0], name)
		}
	}
	if rows[2][3] != "15:00" {
		t.Errorf("expected normalized time, got %q", rows[2][3])
	}
	if rows[3][4] != "control" {
		t.Errorf("expected notes column, got %v", rows[3])
	}
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header, got %d rows", len(rows))
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC))
	if got != "turnos-20240610-150405.xlsx" {
		t.Errorf("got %s", got)
	}
}

func TestUploader_Location(t *testing.T) {
	if _, err := NewUploader(config.S3Config{}); err == nil {
		t.Error("expected error without bucket")
	}

	u, err := NewUploader(config.S3Config{Bucket: "turnos", Region: "us-east-1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := u.Location("exports/x.xlsx"); got != "https://turnos.s3.us-east-1.amazonaws.com/exports/x.xlsx" {
		t.Errorf("aws location: %s", got)
	}

	u, err = NewUploader(config.S3Config{Bucket: "turnos", Region: "us-east-1", Endpoint: "http://localhost:9000/"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := u.Location("exports/x.xlsx"); got != "http://localhost:9000/turnos/exports/x.xlsx" {
		t.Errorf("endpoint location: %s", got)
	}

	key := ObjectKey("a.xlsx")
	if !strings.HasPrefix(key, "exports/") || !strings.HasSuffix(key, "-a.xlsx") {
		t.Errorf("unexpected key %s", key)
	}
}
