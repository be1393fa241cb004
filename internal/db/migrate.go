package db

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/turnera/internal/models"
)

// Migration é um passo versionado do esquema.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// MigrationStatus indica se uma migração já foi aplicada.
type MigrationStatus struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

type schemaMigration struct {
	Version   int    `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"size:255;not null"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrations é o histórico do esquema. Bancos criados pela versão antiga já
// têm turnos, às vezes sem email; os passos só criam o que falta.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create_turnos",
		Up: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&models.Appointment{}) {
				return nil
			}
			return tx.Migrator().CreateTable(&models.Appointment{})
		},
	},
	{
		Version: 2,
		Name:    "add_turnos_email",
		Up: func(tx *gorm.DB) error {
			return addMissingColumns(tx, &models.Appointment{}, "Email")
		},
	},
	{
		Version: 3,
		Name:    "add_turnos_timestamps",
		Up: func(tx *gorm.DB) error {
			return addMissingColumns(tx, &models.Appointment{}, "CreatedAt", "UpdatedAt")
		},
	},
	{
		Version: 4,
		Name:    "create_audit_logs",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.AuditLog{})
		},
	},
}

func addMissingColumns(tx *gorm.DB, model any, fields ...string) error {
	m := tx.Migrator()
	for _, f := range fields {
		if m.HasColumn(model, f) {
			continue
		}
		if err := m.AddColumn(model, f); err != nil {
			return fmt.Errorf("add column %s: %w", f, err)
		}
	}
	return nil
}

type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

// NewMigrator usa Migrations quando nenhuma lista é passada.
func NewMigrator(db *gorm.DB, migrations ...Migration) *Migrator {
	if len(migrations) == 0 {
		migrations = Migrations
	}

	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Version < sorted[j].Version
	})

	return &Migrator{db: db, migrations: sorted}
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[int]schemaMigration, error) {
	var rows []schemaMigration
	if err := m.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query applied versions: %w", err)
	}

	out := make(map[int]schemaMigration, len(rows))
	for _, r := range rows {
		out[r.Version] = r
	}
	return out, nil
}

// Up aplica todas as migrações pendentes. Devolve quantas aplicou.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	return m.UpTo(ctx, 0)
}

// UpTo aplica as pendentes até targetVersion (0 = todas), cada uma na sua
// transação.
func (m *Migrator) UpTo(ctx context.Context, targetVersion int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if targetVersion > 0 && mig.Version > targetVersion {
			break
		}
		if _, ok := applied[mig.Version]; ok {
			continue
		}

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{
				Version:   mig.Version,
				Name:      mig.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return count, fmt.Errorf("apply migration %d (%s): %w", mig.Version, mig.Name, err)
		}
		count++
	}

	return count, nil
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MigrationStatus, 0, len(m.migrations))
	for _, mig := range m.migrations {
		st := MigrationStatus{Version: mig.Version, Name: mig.Name}
		if row, ok := applied[mig.Version]; ok {
			at := row.AppliedAt
			st.Applied = true
			st.AppliedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}
