package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turnera/internal/dto"
	"github.com/BruksfildServices01/turnera/internal/httperr"
	"github.com/BruksfildServices01/turnera/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create        *ucAppointment.CreateAppointment
	update        *ucAppointment.UpdateAppointment
	delete        *ucAppointment.DeleteAppointment
	get           *ucAppointment.GetAppointment
	list          *ucAppointment.ListAppointments
	listByDate    *ucAppointment.ListAppointmentsByDate
	listByPatient *ucAppointment.ListAppointmentsByPatient
	checkConflict *ucAppointment.CheckConflict
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByPatient *ucAppointment.ListAppointmentsByPatient,
	checkConflict *ucAppointment.CheckConflict,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:        create,
		update:        update,
		delete:        del,
		get:           get,
		list:          list,
		listByDate:    listByDate,
		listByPatient: listByPatient,
		checkConflict: checkConflict,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest não usa binding:"required": campos vazios chegam ao
// caso de uso e voltam como erro de validação por campo.
type AppointmentRequest struct {
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Notes       string `json:"notes"`
}

func (r AppointmentRequest) input() ucAppointment.AppointmentInput {
	return ucAppointment.AppointmentInput{
		PatientName: r.PatientName,
		Email:       r.Email,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, dto.AppointmentWriteDTO{
		Appointment: dto.FromAppointment(res.Appointment),
		Conflict:    res.Conflict,
	})
}

// ======================================================
// LIST
// ======================================================

// List aceita ?date=YYYY-MM-DD ou ?patient=Nome; sem filtros, todos.
func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	date, hasDate := c.GetQuery("date")
	patient, hasPatient := c.GetQuery("patient")

	var out []dto.AppointmentDTO

	switch {
	case hasDate:
		aps, err := h.listByDate.Execute(ctx, date)
		if err != nil {
			writeError(c, err, "failed_to_list_appointments")
			return
		}
		if hasPatient {
			filtered := aps[:0]
			for _, ap := range aps {
				if ap.PatientName == patient {
					filtered = append(filtered, ap)
				}
			}
			aps = filtered
		}
		out = dto.FromAppointments(aps)

	case hasPatient:
		aps, err := h.listByPatient.Execute(ctx, patient)
		if err != nil {
			writeError(c, err, "failed_to_list_appointments")
			return
		}
		out = dto.FromAppointments(aps)

	default:
		aps, err := h.list.Execute(ctx)
		if err != nil {
			writeError(c, err, "failed_to_list_appointments")
			return
		}
		out = dto.FromAppointments(aps)
	}

	httpresp.List(c, out)
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	res, err := h.update.Execute(c.Request.Context(), id, req.input())
	if err != nil {
		writeError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, dto.AppointmentWriteDTO{
		Appointment: dto.FromAppointment(res.Appointment),
		Conflict:    res.Conflict,
	})
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		writeError(c, err, "failed_to_delete_appointment")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// CONFLICT
// ======================================================

// Conflict responde ?date=&time=[&ignore=id] sem gravar nada.
func (h *AppointmentHandler) Conflict(c *gin.Context) {
	date := c.Query("date")
	hhmm := c.Query("time")

	var ignore []uint
	if raw := c.Query("ignore"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
			return
		}
		ignore = append(ignore, uint(id))
	}

	conflict, err := h.checkConflict.Execute(c.Request.Context(), date, hhmm, ignore...)
	if err != nil {
		writeError(c, err, "failed_to_check_conflict")
		return
	}

	httpresp.OK(c, dto.ConflictDTO{
		Date:     date,
		Time:     hhmm,
		Conflict: conflict,
	})
}
