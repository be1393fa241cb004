package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turnera/internal/httperr"
)

// ======================================================
// MENSAGENS
// ======================================================

var validationMessages = map[string]string{
	"patient_name": "El nombre del paciente es obligatorio.",
	"date":         "Fecha inválida. Use el formato AAAA-MM-DD.",
	"time":         "Hora inválida. Use el formato HH:MM.",
	"weeks":        "La cantidad de semanas debe estar entre 1 y 8.",
	"format":       "Formato no soportado. Use png o webp.",
	"session_id":   "Sesión inválida.",
	"entity_id":    "Identificador inválido.",
}

func validationMessage(ve httperr.ValidationError) string {
	if ve.Field == "email" {
		switch ve.Code {
		case "required":
			return "El email es obligatorio."
		case "invalid_email_domain":
			return "El dominio del email no existe."
		default:
			return "Email inválido."
		}
	}
	if msg, ok := validationMessages[ve.Field]; ok {
		return msg
	}
	return "Datos inválidos."
}

// writeError traduz os erros dos casos de uso para HTTP. Erros desconhecidos
// vão para c.Errors (o logger registra) e viram 500.
func writeError(c *gin.Context, err error, internalCode string) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.Invalid(c, ve, validationMessage(ve))
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, internalCode, "Error interno. Intente nuevamente.")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
