// Package config loads, validates and watches the dumbtop configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/dumbtop/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// DUMBTOP_WINDOWS_CASCADE_STEP and friends are picked up by AutomaticEnv.
	v.SetEnvPrefix("DUMBTOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DUMBTOP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTOP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTOP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTOP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
		log:       logging.NewFromEnv(),
	}, nil
}

// SetLogger replaces the logger used for reload events.
func (m *Manager) SetLogger(log zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch LogFormat(strings.ToLower(string(config.Logging.Format))) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	case "", LogFormatText, "console":
		config.Logging.Format = LogFormatText
	}

	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}

	switch MCPTransport(strings.ToLower(string(config.MCP.Transport))) {
	case "", MCPTransportStdio:
		config.MCP.Transport = MCPTransportStdio
	case MCPTransportHTTP, "streamable-http":
		config.MCP.Transport = MCPTransportHTTP
	}

	config.Desktop.Icons = normalizeKinds(config.Desktop.Icons)
	config.Taskbar.Pinned = normalizeKinds(config.Taskbar.Pinned)
}

func normalizeKinds(kinds []string) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Desktop.Icons = append([]string(nil), m.config.Desktop.Icons...)
	configCopy.Taskbar.Pinned = append([]string(nil), m.config.Taskbar.Pinned...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and their JSON schema next to each other.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(m.configDir, "config.schema.json")); err != nil {
		return err
	}

	m.log.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setWindowsDefaults(defaults)
	m.setDisplayDefaults(defaults)
	m.setDesktopDefaults(defaults)
	m.setTaskbarDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setMCPDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", string(defaults.Logging.Format))
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setWindowsDefaults(defaults *Config) {
	m.viper.SetDefault("windows.origin_x", defaults.Windows.OriginX)
	m.viper.SetDefault("windows.origin_y", defaults.Windows.OriginY)
	m.viper.SetDefault("windows.cascade_step", defaults.Windows.CascadeStep)
	m.viper.SetDefault("windows.default_width", defaults.Windows.DefaultWidth)
	m.viper.SetDefault("windows.default_height", defaults.Windows.DefaultHeight)
	m.viper.SetDefault("windows.min_width", defaults.Windows.MinWidth)
	m.viper.SetDefault("windows.min_height", defaults.Windows.MinHeight)
	m.viper.SetDefault("windows.visible_margin_x", defaults.Windows.VisibleMarginX)
	m.viper.SetDefault("windows.visible_margin_y", defaults.Windows.VisibleMarginY)
}

func (m *Manager) setDisplayDefaults(defaults *Config) {
	m.viper.SetDefault("display.cell_width_px", defaults.Display.CellWidthPx)
	m.viper.SetDefault("display.cell_height_px", defaults.Display.CellHeightPx)
	m.viper.SetDefault("display.mouse", defaults.Display.Mouse)
	m.viper.SetDefault("display.alt_screen", defaults.Display.AltScreen)
	m.viper.SetDefault("display.tick_interval_ms", defaults.Display.TickIntervalMs)
}

func (m *Manager) setDesktopDefaults(defaults *Config) {
	m.viper.SetDefault("desktop.icons", defaults.Desktop.Icons)
	m.viper.SetDefault("desktop.double_click_ms", defaults.Desktop.DoubleClickMs)
}

func (m *Manager) setTaskbarDefaults(defaults *Config) {
	m.viper.SetDefault("taskbar.pinned", defaults.Taskbar.Pinned)
	m.viper.SetDefault("taskbar.clock_format", defaults.Taskbar.ClockFormat)
	m.viper.SetDefault("taskbar.date_format", defaults.Taskbar.DateFormat)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}

func (m *Manager) setMCPDefaults(defaults *Config) {
	m.viper.SetDefault("mcp.transport", string(defaults.MCP.Transport))
	m.viper.SetDefault("mcp.addr", defaults.MCP.Addr)
	m.viper.SetDefault("mcp.viewport_width", defaults.MCP.ViewportWidth)
	m.viper.SetDefault("mcp.viewport_height", defaults.MCP.ViewportHeight)
}
