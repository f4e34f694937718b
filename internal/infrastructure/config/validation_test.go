package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"default below minimum", func(c *Config) { c.Windows.DefaultWidth = 100 }, "windows.default_width"},
		{"negative cascade", func(c *Config) { c.Windows.CascadeStep = -1 }, "windows.cascade_step"},
		{"cell size", func(c *Config) { c.Display.CellHeightPx = 0 }, "display.cell_width_px"},
		{"tick interval", func(c *Config) { c.Display.TickIntervalMs = 5 }, "display.tick_interval_ms"},
		{"double click", func(c *Config) { c.Desktop.DoubleClickMs = 10 }, "desktop.double_click_ms"},
		{"unknown icon", func(c *Config) { c.Desktop.Icons = []string{"solitaire"} }, "desktop.icons"},
		{"clock layout", func(c *Config) { c.Taskbar.ClockFormat = "hh:mm" }, "taskbar.clock_format"},
		{"palette", func(c *Config) { c.Appearance.Palette.Border = "grey" }, "appearance.palette.border"},
		{"mcp transport", func(c *Config) { c.MCP.Transport = "carrier-pigeon" }, "mcp.transport"},
		{"mcp http addr", func(c *Config) {
			c.MCP.Transport = MCPTransportHTTP
			c.MCP.Addr = ""
		}, "mcp.addr"},
		{"mcp viewport", func(c *Config) { c.MCP.ViewportWidth = 0 }, "mcp.viewport_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Display.CellWidthPx = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:\n  - logging.level")
	assert.Contains(t, err.Error(), "\n  - display.cell_width_px")
}
