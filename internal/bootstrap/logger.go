package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/taskfarm/internal/config"
	"github.com/osse101/taskfarm/internal/logger"
)

// SetupLogger initializes the process-wide slog logger from configuration
// and reports the loaded settings and any configuration warnings.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Source locations only help during development
	addSource := cfg.Environment == logger.EnvironmentDev

	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	l.Info(LogMsgStartingTaskfarm,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"grid_size", cfg.GridSize,
		"starting_balance", cfg.StartingBalance,
		"tick_interval", cfg.TickInterval,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"crop_catalog", cfg.CropCatalogPath,
		"database", cfg.DatabaseURL != "")

	for _, warning := range cfg.Warnings() {
		l.Warn(LogMsgConfigWarning, "warning", warning)
	}

	return l
}
