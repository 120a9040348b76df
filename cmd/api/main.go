// @title Hospital Intake
// @version 1.0
// @description Alta de pacientes con campos personalizados, captura KYC y receta.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "hospital-intake/internal/adapters/storage/postgres"
	"hospital-intake/internal/config"
	"hospital-intake/internal/platform/logger"
	"hospital-intake/internal/router"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital-intake",
		Short:        "Alta de pacientes, campos personalizados, KYC y receta",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func runServer(cfg *config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		File:   cfg.LogFile,
	})

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Env,
			Release:     cfg.AppName,
			Debug:       cfg.IsDev(),
		}); err != nil {
			return fmt.Errorf("sentry init: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	var db *sql.DB
	if cfg.UsesPostgres() {
		opened, err := pg.Open(cfg.DBDSN, cfg.DBMaxConns)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer opened.Close()
		db = opened

		if cfg.MigrateOnRun {
			applied, err := pg.NewMigrator(db).Up(context.Background())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied", map[string]any{"count": len(applied), "names": applied})
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{DB: db, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de Postgres (embebidas en el binario)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openFromConfig()
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := pg.NewMigrator(db).Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			for _, name := range applied {
				fmt.Printf("applied %s\n", name)
			}
			fmt.Printf("Applied %d migration(s).\n", len(applied))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Muestra qué migraciones están aplicadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openFromConfig()
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := pg.NewMigrator(db).Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-30s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status, appliedAt := "pending", ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-30s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	})

	return cmd
}

func openFromConfig() (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.UsesPostgres() {
		return nil, errors.New("DB_DSN is required for migrations")
	}
	return pg.Open(cfg.DBDSN, cfg.DBMaxConns)
}
