package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// ===============================
// Layout
// ===============================

const (
	CellWidth    = 44
	CellHeight   = 18
	LabelWidth   = 48
	HeaderHeight = 32
	gap          = 1
)

var (
	ColorFree     = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	ColorOccupied = color.RGBA{0xe5, 0x39, 0x35, 0xff}
	ColorClosed   = color.RGBA{0xee, 0xee, 0xee, 0xff}
	colorBG       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText     = color.RGBA{0x21, 0x21, 0x21, 0xff}
)

var weekdayShort = [...]string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sa"}

// Heatmap desenha a grade: uma coluna por dia, uma linha por horário.
// Horários fora do template do dia (sábado à tarde) ficam cinza.
func Heatmap(tmpl slot.Template, grid appointment.Grid) *image.RGBA {
	days := tmpl.Days()
	times := tmpl.Times()

	w := LabelWidth + len(days)*CellWidth
	h := HeaderHeight + len(times)*CellHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{colorBG}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colorText),
		Face: basicfont.Face7x13,
	}

	for col, day := range days {
		x := LabelWidth + col*CellWidth
		label(d, x+4, 13, weekdayShort[day.Weekday()])
		label(d, x+4, 27, day.Format("02/01"))
	}

	for row, hhmm := range times {
		y := HeaderHeight + row*CellHeight
		label(d, 4, y+13, hhmm)

		for col, day := range days {
			c := ColorClosed
			if cell, ok := grid.Lookup(day, hhmm); ok {
				c = ColorFree
				if cell.Status == appointment.StatusOccupied {
					c = ColorOccupied
				}
			}
			draw.Draw(img, cellRect(col, row), &image.Uniform{c}, image.Point{}, draw.Src)
		}
	}

	return img
}

func label(d *font.Drawer, x, y int, s string) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// cellRect é a área pintada da célula (col, row), sem a borda de gap.
func cellRect(col, row int) image.Rectangle {
	x := LabelWidth + col*CellWidth
	y := HeaderHeight + row*CellHeight
	return image.Rect(x+gap, y+gap, x+CellWidth-gap, y+CellHeight-gap)
}

// ===============================
// Encoding
// ===============================

type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
)

// ParseFormat aceita png (padrão) ou webp.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", httperr.ErrValidation("format", "invalid_format", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatWebP {
		return "image/webp"
	}
	return "image/png"
}

func Encode(w io.Writer, img image.Image, f Format) error {
	if f == FormatWebP {
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	}
	return png.Encode(w, img)
}
