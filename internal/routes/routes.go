package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/turnera/internal/audit"
	"github.com/BruksfildServices01/turnera/internal/config"
	"github.com/BruksfildServices01/turnera/internal/handlers"
	infraRepo "github.com/BruksfildServices01/turnera/internal/infra/repository"
	"github.com/BruksfildServices01/turnera/internal/middleware"
	"github.com/BruksfildServices01/turnera/internal/session"
	"github.com/BruksfildServices01/turnera/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

// Deps são os singletons criados em main. Audit pode ser nil; Uploader nil
// desliga o upload de exportações.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      zerolog.Logger
	Audit    *audit.Dispatcher
	Sessions session.Store
	Uploader ucAppointment.Uploader
}

// NewEngine monta o gin com os middlewares globais, /health e a API.
func NewEngine(d Deps) *gin.Engine {
	r := gin.New()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Log),
		middleware.Logger(d.Log),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	sessions := d.Sessions
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}

	policy := ucAppointment.EmailPolicy{
		Required:    d.Config.EmailRequired,
		CheckDomain: d.Config.EmailCheckMX,
	}

	tz := d.Config.Timezone
	today := func() time.Time { return timezone.Today(tz) }
	now := func() time.Time { return timezone.NowIn(tz) }

	// ======================================================
	// 🧠 USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit, policy)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit, policy)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listAppointmentsByPatientUC := ucAppointment.NewListAppointmentsByPatient(appointmentRepo)
	checkConflictUC := ucAppointment.NewCheckConflict(appointmentRepo)

	// ======================================================
	// 🧠 USE CASES - GRADE / EXPORT / SELEÇÃO
	// ======================================================
	weekGridUC := ucAppointment.NewGetWeekGrid(appointmentRepo, today)
	timelineUC := ucAppointment.NewGetTimeline(appointmentRepo)
	exportUC := ucAppointment.NewExportAppointments(appointmentRepo, d.Uploader, d.Audit, now)
	selectionUC := ucAppointment.NewManageSelection(appointmentRepo, sessions)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		listAppointmentsByDateUC,
		listAppointmentsByPatientUC,
		checkConflictUC,
	)
	gridHandler := handlers.NewGridHandler(weekGridUC, timelineUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	selectionHandler := handlers.NewSelectionHandler(selectionUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/conflict", appointmentHandler.Conflict)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// GRADE
		// ------------------------------
		api.GET("/grid", gridHandler.Grid)
		api.GET("/grid/heatmap", gridHandler.Heatmap)
		api.GET("/timeline", gridHandler.Timeline)

		// ------------------------------
		// EXPORT
		// ------------------------------
		api.GET("/export.xlsx", exportHandler.Download)
		api.POST("/export", exportHandler.Upload)

		// ------------------------------
		// EDITOR
		// ------------------------------
		api.GET("/sessions/:sid/selection", selectionHandler.Get)
		api.PUT("/sessions/:sid/selection", selectionHandler.Put)
		api.DELETE("/sessions/:sid/selection", selectionHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
