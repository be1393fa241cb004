package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/dto"
	"github.com/BruksfildServices01/turnera/internal/httperr"
	"github.com/BruksfildServices01/turnera/internal/httpresp"
	"github.com/BruksfildServices01/turnera/internal/render"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

type GridHandler struct {
	grid     *ucAppointment.GetWeekGrid
	timeline *ucAppointment.GetTimeline
}

func NewGridHandler(
	grid *ucAppointment.GetWeekGrid,
	timeline *ucAppointment.GetTimeline,
) *GridHandler {
	return &GridHandler{
		grid:     grid,
		timeline: timeline,
	}
}

func gridInput(c *gin.Context) (ucAppointment.GetWeekGridInput, error) {
	in := ucAppointment.GetWeekGridInput{Anchor: c.Query("anchor")}

	if raw := c.Query("weeks"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			return in, httperr.ErrValidation("weeks", "out_of_range", raw)
		}
		in.Weeks = n
	}
	return in, nil
}

// Grid devolve ?anchor=YYYY-MM-DD&weeks=N como JSON.
func (h *GridHandler) Grid(c *gin.Context) {
	in, err := gridInput(c)
	if err != nil {
		writeError(c, err, "failed_to_build_grid")
		return
	}

	out, err := h.grid.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_build_grid")
		return
	}

	httpresp.OK(c, dto.FromGrid(
		out.Anchor.Format(slot.DateLayout),
		out.Weeks,
		out.Template,
		out.Grid,
		out.Warnings,
	))
}

// Heatmap devolve a mesma grade como imagem (?format=png|webp).
func (h *GridHandler) Heatmap(c *gin.Context) {
	format, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		writeError(c, err, "failed_to_render_heatmap")
		return
	}

	in, err := gridInput(c)
	if err != nil {
		writeError(c, err, "failed_to_render_heatmap")
		return
	}

	out, err := h.grid.Execute(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, "failed_to_render_heatmap")
		return
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, render.Heatmap(out.Template, out.Grid), format); err != nil {
		writeError(c, err, "failed_to_render_heatmap")
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// Timeline devolve as barras do Gantt (?patient= para um paciente).
func (h *GridHandler) Timeline(c *gin.Context) {
	bars, err := h.timeline.Execute(c.Request.Context(), c.Query("patient"))
	if err != nil {
		writeError(c, err, "failed_to_build_timeline")
		return
	}

	httpresp.List(c, bars)
}
