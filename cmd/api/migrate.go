package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/turnera/internal/config"
	dbpkg "github.com/BruksfildServices01/turnera/internal/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := cmd.Flags().GetInt("to")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := dbpkg.Open(cfg.DBDriver, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer dbpkg.Close(db)

			count, err := dbpkg.NewMigrator(db).UpTo(context.Background(), target)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().Int("to", 0, "Stop after this version (0 = all)")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := dbpkg.Open(cfg.DBDriver, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer dbpkg.Close(db)

			statuses, err := dbpkg.NewMigrator(db).Status(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-30s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ------------------------------ ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Printf("%-10d %-30s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}
