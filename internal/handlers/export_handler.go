package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turnera/internal/export"
	"github.com/BruksfildServices01/turnera/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

type ExportHandler struct {
	export *ucAppointment.ExportAppointments
}

func NewExportHandler(export *ucAppointment.ExportAppointments) *ExportHandler {
	return &ExportHandler{export: export}
}

// Download gera a planilha em memória antes de escrever, para poder
// responder erro em JSON.
func (h *ExportHandler) Download(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.export.Write(c.Request.Context(), &buf); err != nil {
		writeError(c, err, "failed_to_export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.export.FileName()+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *ExportHandler) Upload(c *gin.Context) {
	location, err := h.export.Upload(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_upload_export")
		return
	}

	httpresp.Created(c, gin.H{"location": location})
}
