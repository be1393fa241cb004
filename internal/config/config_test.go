package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("EMAIL_REQUIRED", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("CLINIC_TIMEZONE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DBDriver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.DBDriver)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Addr())
	}
	if cfg.EmailRequired {
		t.Error("email must be optional by default")
	}
	if cfg.S3.Enabled() {
		t.Error("S3 must be disabled without a bucket")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/turnos")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("EMAIL_REQUIRED", "true")
	t.Setenv("S3_BUCKET", "exports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.DBDriver)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Addr())
	}
	if !cfg.EmailRequired {
		t.Error("expected email required")
	}
	if !cfg.S3.Enabled() {
		t.Error("expected S3 enabled")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CLINIC_TIMEZONE", "Mars/Olympus")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestGetBool_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	if !getBool("SOME_FLAG", true) {
		t.Error("expected default on unparsable bool")
	}
}
