package appointment

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/BruksfildServices01/turnera/internal/audit"
	domain "github.com/BruksfildServices01/turnera/internal/domain/appointment"
	"github.com/BruksfildServices01/turnera/internal/export"
	"github.com/BruksfildServices01/turnera/internal/httperr"
)

var ErrStorageNotConfigured = httperr.NewBusiness(
	"export_storage_not_configured",
	http.StatusServiceUnavailable,
	"El almacenamiento de exportaciones no está configurado.",
)

// Uploader é o armazenamento remoto das planilhas (S3).
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type ExportAppointments struct {
	repo     domain.Repository
	uploader Uploader
	audit    *audit.Dispatcher
	now      func() time.Time
}

// NewExportAppointments aceita uploader nil; nesse caso Upload devolve
// ErrStorageNotConfigured.
func NewExportAppointments(
	repo domain.Repository,
	uploader Uploader,
	audit *audit.Dispatcher,
	now func() time.Time,
) *ExportAppointments {
	return &ExportAppointments{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
		now:      now,
	}
}

// FileName é o nome sugerido para o download.
func (uc *ExportAppointments) FileName() string {
	return export.FileName(uc.now())
}

// Write escreve a planilha XLSX com todos os turnos.
func (uc *ExportAppointments) Write(
	ctx context.Context,
	w io.Writer,
) error {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}

	return export.WriteXLSX(w, appointments)
}

// Upload gera a planilha e envia ao armazenamento. Devolve a localização.
func (uc *ExportAppointments) Upload(
	ctx context.Context,
) (string, error) {

	if uc.uploader == nil {
		return "", ErrStorageNotConfigured
	}

	var buf bytes.Buffer
	if err := uc.Write(ctx, &buf); err != nil {
		return "", err
	}

	key := export.ObjectKey(uc.FileName())
	location, err := uc.uploader.Upload(ctx, key, export.ContentType, buf.Bytes())
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionExportUploaded,
		Entity:   audit.EntityExport,
		Metadata: map[string]any{"location": location},
	})

	return location, nil
}
