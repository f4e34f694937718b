package config

// Config represents the complete configuration for dumbtop.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Windows controls where new windows open and how small they may get.
	Windows WindowsConfig `mapstructure:"windows" yaml:"windows" toml:"windows" json:"windows"`
	// Display maps terminal cells onto desktop pixels.
	Display DisplayConfig `mapstructure:"display" yaml:"display" toml:"display" json:"display"`
	Desktop DesktopConfig `mapstructure:"desktop" yaml:"desktop" toml:"desktop" json:"desktop"`
	Taskbar TaskbarConfig `mapstructure:"taskbar" yaml:"taskbar" toml:"taskbar" json:"taskbar"`
	// Appearance holds the colors of the desktop and its apps.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// MCP exposes the desktop to automation clients.
	MCP MCPConfig `mapstructure:"mcp" yaml:"mcp" toml:"mcp" json:"mcp"`
}

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string    `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format LogFormat `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// WindowsConfig holds window placement and size limits, in desktop pixels.
type WindowsConfig struct {
	OriginX       int `mapstructure:"origin_x" yaml:"origin_x" toml:"origin_x" json:"origin_x"`
	OriginY       int `mapstructure:"origin_y" yaml:"origin_y" toml:"origin_y" json:"origin_y"`
	CascadeStep   int `mapstructure:"cascade_step" yaml:"cascade_step" toml:"cascade_step" json:"cascade_step"`
	DefaultWidth  int `mapstructure:"default_width" yaml:"default_width" toml:"default_width" json:"default_width"`
	DefaultHeight int `mapstructure:"default_height" yaml:"default_height" toml:"default_height" json:"default_height"`
	MinWidth      int `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width"`
	MinHeight     int `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height"`
	// VisibleMarginX and VisibleMarginY keep part of a dragged window on screen.
	VisibleMarginX int `mapstructure:"visible_margin_x" yaml:"visible_margin_x" toml:"visible_margin_x" json:"visible_margin_x"`
	VisibleMarginY int `mapstructure:"visible_margin_y" yaml:"visible_margin_y" toml:"visible_margin_y" json:"visible_margin_y"`
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	CellWidthPx  int  `mapstructure:"cell_width_px" yaml:"cell_width_px" toml:"cell_width_px" json:"cell_width_px"`
	CellHeightPx int  `mapstructure:"cell_height_px" yaml:"cell_height_px" toml:"cell_height_px" json:"cell_height_px"`
	Mouse        bool `mapstructure:"mouse" yaml:"mouse" toml:"mouse" json:"mouse"`
	AltScreen    bool `mapstructure:"alt_screen" yaml:"alt_screen" toml:"alt_screen" json:"alt_screen"`
	// TickIntervalMs drives animated apps such as the shooter and the music player.
	TickIntervalMs int `mapstructure:"tick_interval_ms" yaml:"tick_interval_ms" toml:"tick_interval_ms" json:"tick_interval_ms"`
}

// DesktopConfig holds desktop icon preferences.
type DesktopConfig struct {
	Icons         []string `mapstructure:"icons" yaml:"icons" toml:"icons" json:"icons"`
	DoubleClickMs int      `mapstructure:"double_click_ms" yaml:"double_click_ms" toml:"double_click_ms" json:"double_click_ms"`
}

// TaskbarConfig holds taskbar preferences. Formats are Go time layouts.
type TaskbarConfig struct {
	Pinned      []string `mapstructure:"pinned" yaml:"pinned" toml:"pinned" json:"pinned"`
	ClockFormat string   `mapstructure:"clock_format" yaml:"clock_format" toml:"clock_format" json:"clock_format"`
	DateFormat  string   `mapstructure:"date_format" yaml:"date_format" toml:"date_format" json:"date_format"`
}

// AppearanceConfig holds UI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds the semantic colors for the desktop.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// MCPTransport selects how the MCP server is reached.
type MCPTransport string

const (
	MCPTransportStdio MCPTransport = "stdio"
	MCPTransportHTTP  MCPTransport = "http"
)

// MCPConfig controls the automation server.
type MCPConfig struct {
	Transport MCPTransport `mapstructure:"transport" yaml:"transport" toml:"transport" json:"transport"`
	Addr      string       `mapstructure:"addr" yaml:"addr" toml:"addr" json:"addr"`
	// ViewportWidth and ViewportHeight bound move/resize requests when no terminal is attached.
	ViewportWidth  int `mapstructure:"viewport_width" yaml:"viewport_width" toml:"viewport_width" json:"viewport_width"`
	ViewportHeight int `mapstructure:"viewport_height" yaml:"viewport_height" toml:"viewport_height" json:"viewport_height"`
}
