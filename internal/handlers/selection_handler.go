package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turnera/internal/dto"
	"github.com/BruksfildServices01/turnera/internal/httperr"
	"github.com/BruksfildServices01/turnera/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

type SelectionHandler struct {
	selection *ucAppointment.ManageSelection
}

func NewSelectionHandler(selection *ucAppointment.ManageSelection) *SelectionHandler {
	return &SelectionHandler{selection: selection}
}

type SelectRequest struct {
	AppointmentID uint `json:"appointment_id" binding:"required"`
}

func selectionDTO(sel *ucAppointment.Selection) dto.SelectionDTO {
	out := dto.SelectionDTO{SessionID: sel.SessionID}
	if sel.Appointment != nil {
		ap := dto.FromAppointment(*sel.Appointment)
		out.Selected = true
		out.Appointment = &ap
	}
	return out
}

func (h *SelectionHandler) Get(c *gin.Context) {
	sel, err := h.selection.Get(c.Request.Context(), c.Param("sid"))
	if err != nil {
		writeError(c, err, "failed_to_get_selection")
		return
	}

	httpresp.OK(c, selectionDTO(sel))
}

func (h *SelectionHandler) Put(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	sel, err := h.selection.Select(c.Request.Context(), c.Param("sid"), req.AppointmentID)
	if err != nil {
		writeError(c, err, "failed_to_select_appointment")
		return
	}

	httpresp.OK(c, selectionDTO(sel))
}

func (h *SelectionHandler) Delete(c *gin.Context) {
	sid := c.Param("sid")
	if err := h.selection.Clear(c.Request.Context(), sid); err != nil {
		writeError(c, err, "failed_to_clear_selection")
		return
	}

	httpresp.OK(c, dto.SelectionDTO{SessionID: sid})
}
