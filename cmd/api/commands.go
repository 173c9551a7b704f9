package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sqls "pet-care-tracker/internal/adapters/storage/sqlstore"
	"pet-care-tracker/internal/config"
	"pet-care-tracker/internal/domain/sessions"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "api",
		Short:         "Pet care tracker HTTP API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "archivo .env opcional")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica migraciones pendientes y termina",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := load(envFile)
			if err != nil {
				return err
			}
			if cfg.DB.Driver == config.DriverMemory {
				return errors.New("migrate: DB_DRIVER memory no tiene migraciones")
			}
			if err := sqls.Migrate(nil, cfg.DB.Driver, cfg.DB.DSN); err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"driver": cfg.DB.Driver})
			return nil
		},
	}

	root.AddCommand(serve, migrateCmd)
	// sin subcomando => serve
	root.RunE = serve.RunE
	return root
}

func load(envFile string) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return cfg, log, nil
}

func runServe(parent context.Context, envFile string) error {
	cfg, log, err := load(envFile)
	if err != nil {
		return err
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var db *sqlx.DB
	if cfg.DB.Driver != config.DriverMemory {
		if cfg.DB.Migrate {
			if err := sqls.Migrate(nil, cfg.DB.Driver, cfg.DB.DSN); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		db, err = sqls.Open(cfg.DB.Driver, cfg.DB.DSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()
	}

	app, err := router.New(router.Options{
		Logger:        log,
		DB:            db,
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
		CookieSecure:  cfg.Session.CookieSecure,
	})
	if err != nil {
		return err
	}

	jobs := cron.New()
	if _, err := sessions.SchedulePurge(jobs, cfg.Session.PurgeSchedule, app.Sessions); err != nil {
		return fmt.Errorf("schedule session purge: %w", err)
	}
	jobs.Start()
	defer jobs.Stop()

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.DB.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
