package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/turnera/internal/domain/slot"
	"github.com/BruksfildServices01/turnera/internal/httperr"
	"github.com/BruksfildServices01/turnera/internal/httpresp"
	"github.com/BruksfildServices01/turnera/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// auditLogFilter é a consulta de /api/audit-logs já interpretada.
// From e To são dias civis; To entra inteiro no intervalo.
type auditLogFilter struct {
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

func parseAuditLogFilter(c *gin.Context) (auditLogFilter, error) {
	f := auditLogFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   1,
		Limit:  auditDefaultLimit,
	}

	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		f.Page = n
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 && n <= auditMaxLimit {
		f.Limit = n
	}

	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return f, httperr.ErrValidation("entity_id", "invalid_id", raw)
		}
		v := uint(id)
		f.EntityID = &v
	}

	for _, b := range []struct {
		key string
		dst **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw := c.Query(b.key)
		if raw == "" {
			continue
		}
		d, err := slot.ParseDate(raw)
		if err != nil {
			return f, err
		}
		*b.dst = &d
	}

	return f, nil
}

func (f auditLogFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("entity_id = ?", *f.EntityID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.AddDate(0, 0, 1))
	}
	return q
}

// List pagina o rastro de auditoria, do mais novo para o mais antigo.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f, err := parseAuditLogFilter(c)
	if err != nil {
		writeError(c, err, "audit_list_failed")
		return
	}

	q := f.apply(h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "audit_count_failed", "Error al contar los registros de auditoría.")
		return
	}

	var logs []models.AuditLog
	err = q.Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "audit_list_failed", "Error al listar los registros de auditoría.")
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
