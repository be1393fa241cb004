package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	dbpkg "github.com/BruksfildServices01/turnera/internal/db"
	"github.com/BruksfildServices01/turnera/internal/export"
)

// ---------- Helper ----------

func findCmd(t *testing.T, root *cobra.Command, args ...string) *cobra.Command {
	t.Helper()

	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		t.Fatalf("command %v not found: %v", args, err)
	}
	return cmd
}

func sqliteEnv(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "turnos.db")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", path)
	t.Setenv("CLINIC_TIMEZONE", "")
	t.Setenv("S3_BUCKET", "")
	return path
}

func TestRootCmd_Tree(t *testing.T) {
	root := newRootCmd()

	for _, args := range [][]string{
		{"serve"},
		{"migrate", "up"},
		{"migrate", "status"},
		{"export"},
	} {
		findCmd(t, root, args...)
	}

	up := findCmd(t, root, "migrate", "up")
	if f := up.Flags().Lookup("to"); f == nil || f.DefValue != "0" {
		t.Errorf("migrate up: expected --to flag defaulting to 0, got %+v", f)
	}

	exp := findCmd(t, root, "export")
	for _, name := range []string{"out", "upload"} {
		if exp.Flags().Lookup(name) == nil {
			t.Errorf("export: missing --%s flag", name)
		}
	}
}

func TestNewLogger_NilConfig(t *testing.T) {
	l := newLogger(nil)
	l.Debug().Msg("logger without config")
}

func TestMigrateUp_AppliesAll(t *testing.T) {
	path := sqliteEnv(t)

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "up"})
	if err := root.Execute(); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	db, err := dbpkg.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer dbpkg.Close(db)

	statuses, err := dbpkg.NewMigrator(db).Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, s := range statuses {
		if !s.Applied {
			t.Errorf("migration %d (%s) not applied", s.Version, s.Name)
		}
	}
}

func TestExport_WritesFile(t *testing.T) {
	sqliteEnv(t)
	out := filepath.Join(t.TempDir(), "turnos.xlsx")

	root := newRootCmd()
	root.SetArgs([]string{"export", "--out", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	x, err := excelize.OpenReader(f)
	if err != nil {
		t.Fatalf("read xlsx: %v", err)
	}
	defer x.Close()
	rows, err := x.GetRows(export.SheetName)
	if err != nil || len(rows) != 1 {
		t.Errorf("expected only the header row, got %v (%v)", rows, err)
	}
}

func TestExport_UploadWithoutBucketFails(t *testing.T) {
	sqliteEnv(t)

	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"export", "--upload"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error without S3_BUCKET")
	}
}
