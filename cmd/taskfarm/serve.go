package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/taskfarm/internal/bootstrap"
	"github.com/osse101/taskfarm/internal/config"
	"github.com/osse101/taskfarm/internal/crop"
	"github.com/osse101/taskfarm/internal/eventlog"
	"github.com/osse101/taskfarm/internal/farm"
	"github.com/osse101/taskfarm/internal/handler"
	"github.com/osse101/taskfarm/internal/scheduler"
	"github.com/osse101/taskfarm/internal/server"
	"github.com/osse101/taskfarm/internal/session"
	"github.com/osse101/taskfarm/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host farm sessions over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := bootstrap.SetupLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := crop.LoadCatalog(ctx, cfg.CropCatalogPath)
	if err != nil {
		return err
	}

	bus, hub, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	stopEvents := func() {
		_ = bus.Shutdown(context.Background())
		hub.Stop()
	}

	repo, dbPool, err := bootstrap.InitializeEventLog(ctx, cfg)
	if err != nil {
		stopEvents()
		return err
	}
	eventLogSvc := eventlog.NewService(repo)

	if err := bootstrap.RegisterEventHandlers(bus, bootstrap.Subscribers{
		EventLog: eventLogSvc,
		Hub:      hub,
	}); err != nil {
		stopEvents()
		return err
	}

	manager := session.NewManager(catalog, cfg.SessionCacheSize, cfg.SessionTTL,
		farm.WithGridSize(cfg.GridSize),
		farm.WithStartingBalance(cfg.StartingBalance),
		farm.WithBus(bus),
	)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(bootstrap.JobNameTick, cfg.TickInterval, session.NewTickJob(manager))
	sched.Schedule(bootstrap.JobNameEventCleanup, bootstrap.EventCleanupInterval, eventlog.NewCleanupJob(eventLogSvc, cfg.EventRetentionDays))
	log.Info(bootstrap.LogMsgJobsScheduled, "tick_interval", cfg.TickInterval, "workers", cfg.WorkerCount)

	deps := server.Dependencies{
		Sessions: manager,
		Catalog:  catalog,
		EventLog: eventLogSvc,
		Hub:      hub,
	}
	components := bootstrap.ShutdownComponents{
		Scheduler: sched,
		Pool:      pool,
		Sessions:  manager,
		Events:    bus,
		Hub:       hub,
	}
	// Guard against a typed nil inside the interfaces
	if dbPool != nil {
		deps.Ready = []handler.Pinger{dbPool}
		components.DB = dbPool
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, deps)
	components.Server = srv

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	return err
}
