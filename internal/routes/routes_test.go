package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/turnera/internal/audit"
	"github.com/BruksfildServices01/turnera/internal/config"
	"github.com/BruksfildServices01/turnera/internal/db"
	"github.com/BruksfildServices01/turnera/internal/models"
	"github.com/BruksfildServices01/turnera/internal/session"
)

// ---------- Helper ----------

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(config.DriverSQLite, filepath.Join(t.TempDir(), "turnos.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if _, err := db.NewMigrator(gdb).Up(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return Deps{
		DB: gdb,
		Config: &config.Config{
			Env:      "test",
			DBDriver: config.DriverSQLite,
			Timezone: "UTC",
		},
		Log:      zerolog.Nop(),
		Sessions: session.NewMemoryStore(),
	}
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

type apptJSON struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

type writeJSON struct {
	Appointment apptJSON `json:"appointment"`
	Conflict    bool     `json:"conflict"`
}

type listJSON struct {
	Data  []apptJSON `json:"data"`
	Total int        `json:"total"`
}

type errorJSON struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

func create(t *testing.T, r http.Handler, name, date, hhmm string) writeJSON {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/appointments", map[string]string{
		"patient_name": name,
		"date":         date,
		"time":         hhmm,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create %s: status %d body %s", name, w.Code, w.Body.String())
	}
	return decode[writeJSON](t, w)
}

// ---------- Tests ----------

func TestHealth(t *testing.T) {
	r := NewEngine(newTestDeps(t))

	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected health response %d %s", w.Code, w.Body.String())
	}
}

func TestAppointments_CreateWithConflictWarning(t *testing.T) {
	r := NewEngine(newTestDeps(t))

	first := create(t, r, "Ana", "2024-06-10", "9:00")
	if first.Conflict || first.Appointment.Time != "09:00" || first.Appointment.ID == 0 {
		t.Errorf("unexpected first response %+v", first)
	}

	second := create(t, r, "Beto", "2024-06-10", "09:00")
	if !second.Conflict {
		t.Error("expected conflict warning on second booking")
	}

	list := decode[listJSON](t, do(t, r, http.MethodGet, "/api/appointments", nil))
	if list.Total != 2 {
		t.Errorf("conflict must not block the write, got %d rows", list.Total)
	}
}

func TestAppointments_ValidationErrors(t *testing.T) {
	r := NewEngine(newTestDeps(t))

	cases := []struct {
		body  map[string]string
		field string
		code  string
	}{
		{map[string]string{"patient_name": "Ana", "date": "2024-06-10", "time": "garbage"}, "time", "invalid_time"},
		{map[string]string{"patient_name": "Ana", "date": "2024-06-10"}, "time", "invalid_time"},
		{map[string]string{"patient_name": "", "date": "2024-06-10", "time": "09:00"}, "patient_name", "required"},
		{map[string]string{"patient_name": "Ana", "date": "10-06-2024", "time": "09:00"}, "date", "invalid_date"},
		{map[string]string{"patient_name": "Ana", "email": "nope", "date": "2024-06-10", "time": "09:00"}, "email", "invalid_email"},
	}

	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/api/appointments", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%v: expected 400, got %d", tc.body, w.Code)
			continue
		}
		e := decode[errorJSON](t, w)
		if e.Field != tc.field || e.Code != tc.code || e.Message == "" {
			t.Errorf("%v: unexpected error %+v", tc.body, e)
		}
	}

	w := do(t, r, http.MethodPost, "/api/appointments", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body: expected 400, got %d", w.Code)
	}
}

func TestAppointments_EmailRequiredByConfig(t *testing.T) {
	d := newTestDeps(t)
	d.Config.EmailRequired = true
	r := NewEngine(d)

	w := do(t, r, http.MethodPost, "/api/appointments", map[string]string{
		"patient_name": "Ana", "date": "2024-06-10", "time": "09:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if e := decode[errorJSON](t, w); e.Field != "email" || e.Code != "required" {
		t.Errorf("unexpected error %+v", e)
	}
}

func TestAppointments_GetUpdateDelete(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	id := create(t, r, "Ana", "2024-06-10", "09:00").Appointment.ID
	path := "/api/appointments/" + itoa(id)

	got := decode[apptJSON](t, do(t, r, http.MethodGet, path, nil))
	if got.PatientName != "Ana" {
		t.Errorf("get: unexpected %+v", got)
	}

	w := do(t, r, http.MethodPut, path, map[string]string{
		"patient_name": "Ana", "date": "2024-06-11", "time": "10:00:00", "notes": "control",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d %s", w.Code, w.Body.String())
	}
	upd := decode[writeJSON](t, w)
	if upd.Appointment.Time != "10:00" || upd.Appointment.Date != "2024-06-11" || upd.Conflict {
		t.Errorf("update: unexpected %+v", upd)
	}

	if w := do(t, r, http.MethodDelete, path, nil); w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", w.Code)
	}
	if e := decode[errorJSON](t, w); e.Code != "appointment_not_found" {
		t.Errorf("unexpected error code %q", e.Code)
	}
	if w := do(t, r, http.MethodDelete, path, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/appointments/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: expected 400, got %d", w.Code)
	}
}

func TestAppointments_Filters(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	create(t, r, "Ana", "2024-06-10", "09:00")
	create(t, r, "Ana", "2024-06-10", "08:00")
	create(t, r, "Beto", "2024-06-11", "07:00")

	byDate := decode[listJSON](t, do(t, r, http.MethodGet, "/api/appointments?date=2024-06-10", nil))
	if byDate.Total != 2 || byDate.Data[0].Time != "08:00" || byDate.Data[1].Time != "09:00" {
		t.Errorf("by date: unexpected %+v", byDate)
	}

	byPatient := decode[listJSON](t, do(t, r, http.MethodGet, "/api/appointments?patient=Beto", nil))
	if byPatient.Total != 1 || byPatient.Data[0].PatientName != "Beto" {
		t.Errorf("by patient: unexpected %+v", byPatient)
	}

	both := decode[listJSON](t, do(t, r, http.MethodGet, "/api/appointments?date=2024-06-11&patient=Ana", nil))
	if both.Total != 0 || both.Data == nil {
		t.Errorf("combined: expected empty list, got %+v", both)
	}

	if w := do(t, r, http.MethodGet, "/api/appointments?date=manana", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad date: expected 400, got %d", w.Code)
	}
}

func TestAppointments_ConflictEndpoint(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	id := create(t, r, "Ana", "2024-06-10", "09:00").Appointment.ID

	type conflictJSON struct {
		Conflict bool `json:"conflict"`
	}

	c := decode[conflictJSON](t, do(t, r, http.MethodGet, "/api/appointments/conflict?date=2024-06-10&time=09:00", nil))
	if !c.Conflict {
		t.Error("expected conflict")
	}

	c = decode[conflictJSON](t, do(t, r, http.MethodGet, "/api/appointments/conflict?date=2024-06-10&time=09:00&ignore="+itoa(id), nil))
	if c.Conflict {
		t.Error("ignored id should not conflict")
	}

	if w := do(t, r, http.MethodGet, "/api/appointments/conflict?date=2024-06-10&time=x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad time: expected 400, got %d", w.Code)
	}
}

func TestGrid_JSONWithWarnings(t *testing.T) {
	d := newTestDeps(t)
	r := NewEngine(d)

	create(t, r, "Ana", "2024-06-10", "09:00")
	// linhas legadas gravadas direto na tabela
	legacy := []models.Appointment{
		{Paciente: "Beto", Fecha: "2024-06-10", Hora: "09:00:00"},
		{Paciente: "Caro", Fecha: "2024-06-11", Hora: "sin hora"},
	}
	if err := d.DB.Create(&legacy).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	type gridJSON struct {
		Anchor   string `json:"anchor"`
		Weeks    int    `json:"weeks"`
		Occupied int    `json:"occupied"`
		Free     int    `json:"free"`
		Cells    []struct {
			Date        string    `json:"date"`
			Time        string    `json:"time"`
			Status      string    `json:"status"`
			Appointment *apptJSON `json:"appointment"`
		} `json:"cells"`
		Warnings []struct {
			Kind           string `json:"kind"`
			AppointmentIDs []uint `json:"appointment_ids"`
		} `json:"warnings"`
	}

	w := do(t, r, http.MethodGet, "/api/grid?anchor=2024-06-12&weeks=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d %s", w.Code, w.Body.String())
	}
	g := decode[gridJSON](t, w)

	if len(g.Cells) != 60 || g.Occupied != 1 || g.Free != 59 || g.Weeks != 1 {
		t.Errorf("unexpected grid summary: cells=%d occupied=%d free=%d weeks=%d", len(g.Cells), g.Occupied, g.Free, g.Weeks)
	}
	if g.Cells[0].Date != "2024-06-10" || g.Cells[0].Time != "07:00" {
		t.Errorf("grid should start on monday 07:00, got %s %s", g.Cells[0].Date, g.Cells[0].Time)
	}
	for _, c := range g.Cells {
		if c.Status == "occupied" && (c.Appointment == nil || c.Appointment.PatientName != "Ana") {
			t.Errorf("lowest id should win, got %+v", c.Appointment)
		}
	}

	kinds := map[string]int{}
	for _, wr := range g.Warnings {
		kinds[wr.Kind]++
	}
	if kinds["duplicate_slot"] != 1 || kinds["malformed_time"] != 1 {
		t.Errorf("unexpected warnings %+v", g.Warnings)
	}

	if w := do(t, r, http.MethodGet, "/api/grid?weeks=9", nil); w.Code != http.StatusBadRequest {
		t.Errorf("weeks=9: expected 400, got %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/grid?weeks=dos", nil); w.Code != http.StatusBadRequest {
		t.Errorf("weeks=dos: expected 400, got %d", w.Code)
	}

	def := decode[gridJSON](t, do(t, r, http.MethodGet, "/api/grid", nil))
	if def.Weeks != 2 || len(def.Cells) != 120 {
		t.Errorf("default grid: weeks=%d cells=%d", def.Weeks, len(def.Cells))
	}
}

func TestGrid_Heatmap(t *testing.T) {
	r := NewEngine(newTestDeps(t))

	w := do(t, r, http.MethodGet, "/api/grid/heatmap?anchor=2024-06-10&weeks=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	if _, err := png.Decode(w.Body); err != nil {
		t.Errorf("decode png: %v", err)
	}

	if w := do(t, r, http.MethodGet, "/api/grid/heatmap?format=gif", nil); w.Code != http.StatusBadRequest {
		t.Errorf("gif: expected 400, got %d", w.Code)
	}
}

func TestTimeline(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	create(t, r, "Ana", "2024-06-10", "09:00")
	create(t, r, "Beto", "2024-06-10", "08:00")

	type timelineJSON struct {
		Data []struct {
			Label string `json:"label"`
		} `json:"data"`
		Total int `json:"total"`
	}

	tl := decode[timelineJSON](t, do(t, r, http.MethodGet, "/api/timeline", nil))
	if tl.Total != 2 || tl.Data[0].Label != "Beto - 08:00" {
		t.Errorf("unexpected timeline %+v", tl)
	}

	tl = decode[timelineJSON](t, do(t, r, http.MethodGet, "/api/timeline?patient=Ana", nil))
	if tl.Total != 1 || tl.Data[0].Label != "Ana - 09:00" {
		t.Errorf("unexpected patient timeline %+v", tl)
	}
}

func TestExport(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	create(t, r, "Ana", "2024-06-10", "09:00")

	w := do(t, r, http.MethodGet, "/api/export.xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="turnos-`) {
		t.Errorf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}

	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Turnos")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Ana" {
		t.Errorf("unexpected rows %v", rows)
	}

	w = do(t, r, http.MethodPost, "/api/export", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("upload without storage: expected 503, got %d", w.Code)
	}
}

func TestSelection(t *testing.T) {
	r := NewEngine(newTestDeps(t))
	id := create(t, r, "Ana", "2024-06-10", "09:00").Appointment.ID

	type selJSON struct {
		Selected    bool      `json:"selected"`
		Appointment *apptJSON `json:"appointment"`
	}

	s := decode[selJSON](t, do(t, r, http.MethodGet, "/api/sessions/abc/selection", nil))
	if s.Selected {
		t.Error("expected empty selection")
	}

	if w := do(t, r, http.MethodPut, "/api/sessions/abc/selection", map[string]uint{"appointment_id": 999}); w.Code != http.StatusNotFound {
		t.Errorf("unknown appointment: expected 404, got %d", w.Code)
	}

	w := do(t, r, http.MethodPut, "/api/sessions/abc/selection", map[string]uint{"appointment_id": id})
	if w.Code != http.StatusOK {
		t.Fatalf("select: status %d %s", w.Code, w.Body.String())
	}

	s = decode[selJSON](t, do(t, r, http.MethodGet, "/api/sessions/abc/selection", nil))
	if !s.Selected || s.Appointment == nil || s.Appointment.ID != id {
		t.Errorf("unexpected selection %+v", s)
	}

	if w := do(t, r, http.MethodDelete, "/api/sessions/abc/selection", nil); w.Code != http.StatusOK {
		t.Errorf("clear: expected 200, got %d", w.Code)
	}
	s = decode[selJSON](t, do(t, r, http.MethodGet, "/api/sessions/abc/selection", nil))
	if s.Selected {
		t.Error("selection should be cleared")
	}
}

func TestAuditLogs(t *testing.T) {
	d := newTestDeps(t)
	d.Audit = audit.NewDispatcher(zerolog.Nop(), audit.New(d.DB))
	r := NewEngine(d)

	create(t, r, "Ana", "2024-06-10", "09:00")
	d.Audit.Close()

	type logsJSON struct {
		Total int64             `json:"total"`
		Logs  []models.AuditLog `json:"data"`
	}

	l := decode[logsJSON](t, do(t, r, http.MethodGet, "/api/audit-logs?action=appointment.created", nil))
	if l.Total != 1 || len(l.Logs) != 1 || l.Logs[0].Entity != "appointment" {
		t.Errorf("unexpected audit logs %+v", l)
	}

	l = decode[logsJSON](t, do(t, r, http.MethodGet, "/api/audit-logs?action=appointment.deleted", nil))
	if l.Total != 0 {
		t.Errorf("expected no deleted events, got %d", l.Total)
	}

	if w := do(t, r, http.MethodGet, "/api/audit-logs?from=ayer", nil); w.Code != http.StatusBadRequest {
		t.Errorf("malformed from: expected 400, got %d", w.Code)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
