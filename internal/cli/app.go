// Package cli wires the configuration, logging and window store shared by
// the dumbtop commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bnema/dumbtop/internal/application/usecase"
	"github.com/bnema/dumbtop/internal/cli/styles"
	"github.com/bnema/dumbtop/internal/domain/build"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/logging"
)

const logFileName = "dumbtop.log"

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager // nil when the config could not be loaded
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// Options selects how the app logs.
type Options struct {
	// LogToStderr is off while the desktop owns the terminal.
	LogToStderr bool
}

// NewApp loads the configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	theme := styles.NewTheme(cfg)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DUMBTOP_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	format := "console"
	if cfg.Logging.Format == config.LogFormatJSON {
		format = "json"
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			Path:          filepath.Join(cfg.Logging.LogDir, logFileName),
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: opts.LogToStderr,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	} else {
		mgr.SetLogger(logger.With().Str("component", "config").Logger())
		logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")
	}

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      theme,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewWindowStore creates an empty store placing windows per the current config.
func (a *App) NewWindowStore() *usecase.WindowStore {
	return usecase.NewWindowStore(uuid.NewString, WindowDefaults(a.Config))
}

// loadConfig loads configuration from standard locations, falling back to
// defaults. The manager is nil when it could not be created or loaded.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
