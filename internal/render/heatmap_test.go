package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// ---------- Helper ----------

func weekGrid(t *testing.T, aps []appointment.Appointment) (slot.Template, appointment.Grid) {
	t.Helper()

	anchor := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tmpl := slot.Generate(anchor, 1)
	return tmpl, appointment.BuildGrid(tmpl, aps, nil)
}

func cellCenter(col, row int) image.Point {
	r := cellRect(col, row)
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestHeatmap_DimensionsAndColors(t *testing.T) {
	tmpl, grid := weekGrid(t, []appointment.Appointment{
		{ID: 1, PatientName: "Ana", Date: "2024-06-10", Time: "09:00"},
	})

	img := Heatmap(tmpl, grid)

	b := img.Bounds()
	if b.Dx() != LabelWidth+6*CellWidth {
		t.Errorf("width: got %d", b.Dx())
	}
	if b.Dy() != HeaderHeight+11*CellHeight {
		t.Errorf("height: got %d", b.Dy())
	}

	// times: 07,08,09,10,11,15..20 → 09:00 é a linha 2
	p := cellCenter(0, 2)
	if got := img.RGBAAt(p.X, p.Y); got != ColorOccupied {
		t.Errorf("monday 09:00: got %v, want occupied", got)
	}

	p = cellCenter(0, 0)
	if got := img.RGBAAt(p.X, p.Y); got != ColorFree {
		t.Errorf("monday 07:00: got %v, want free", got)
	}

	// sábado (coluna 5) às 15:00 (linha 5) não existe no template
	p = cellCenter(5, 5)
	if got := img.RGBAAt(p.X, p.Y); got != ColorClosed {
		t.Errorf("saturday 15:00: got %v, want closed", got)
	}
}

func TestHeatmap_CellsKeepGapBorder(t *testing.T) {
	tmpl, grid := weekGrid(t, nil)
	img := Heatmap(tmpl, grid)

	r := cellRect(0, 0)
	if got := img.RGBAAt(r.Min.X-1, r.Min.Y-1); got == ColorFree {
		t.Error("gap pixel painted as a cell")
	}
	if got := img.RGBAAt(r.Min.X, r.Min.Y); got != ColorFree {
		t.Errorf("cell corner: got %v, want free", got)
	}
}

func TestEncode_PNG(t *testing.T) {
	tmpl, grid := weekGrid(t, nil)

	var buf bytes.Buffer
	if err := Encode(&buf, Heatmap(tmpl, grid), FormatPNG); err != nil {
		t.Fatalf("encode: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() == 0 {
		t.Error("empty image")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatPNG, "png": FormatPNG, " WEBP ": FormatWebP}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}

	if _, err := ParseFormat("gif"); !httperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	if FormatWebP.ContentType() != "image/webp" || FormatPNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
}
