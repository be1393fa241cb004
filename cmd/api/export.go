package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/turnera/internal/audit"
	"github.com/BruksfildServices01/turnera/internal/config"
	dbpkg "github.com/BruksfildServices01/turnera/internal/db"
	"github.com/BruksfildServices01/turnera/internal/export"
	infraRepo "github.com/BruksfildServices01/turnera/internal/infra/repository"
	"github.com/BruksfildServices01/turnera/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/turnera/internal/usecase/appointment"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all appointments to an XLSX file (or upload to S3)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			upload, _ := cmd.Flags().GetBool("upload")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			db, _, err := dbpkg.NewDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer dbpkg.Close(db)

			var (
				uploader   ucAppointment.Uploader
				dispatcher *audit.Dispatcher
			)
			if upload {
				u, err := export.NewUploader(cfg.S3)
				if err != nil {
					return err
				}
				uploader = u

				dispatcher = audit.NewDispatcher(newLogger(cfg), audit.New(db))
				defer dispatcher.Close()
			}

			uc := ucAppointment.NewExportAppointments(
				infraRepo.NewAppointmentGormRepository(db),
				uploader,
				dispatcher,
				func() time.Time { return timezone.NowIn(cfg.Timezone) },
			)

			if upload {
				location, err := uc.Upload(ctx)
				if err != nil {
					return err
				}
				fmt.Println(location)
				return nil
			}

			if out == "" {
				out = uc.FileName()
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := uc.Write(ctx, f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Printf("Exported appointments to %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output file (default turnos-YYYYMMDD-HHMMSS.xlsx)")
	cmd.Flags().Bool("upload", false, "Upload to the configured S3 bucket instead of writing a file")

	return cmd
}
