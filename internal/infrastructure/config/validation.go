package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/dumbtop/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateWindows(config)...)
	validationErrors = append(validationErrors, validateDisplay(config)...)
	validationErrors = append(validationErrors, validateDesktop(config)...)
	validationErrors = append(validationErrors, validateTaskbar(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateMCP(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			"logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case LogFormatText, LogFormatJSON:
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: text, json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateWindows(config *Config) []string {
	var validationErrors []string
	w := config.Windows
	if w.OriginX < 0 || w.OriginY < 0 {
		validationErrors = append(validationErrors, "windows.origin_x and windows.origin_y must be non-negative")
	}
	if w.CascadeStep < 0 {
		validationErrors = append(validationErrors, "windows.cascade_step must be non-negative")
	}
	if w.MinWidth < 1 || w.MinHeight < 1 {
		validationErrors = append(validationErrors, "windows.min_width and windows.min_height must be positive")
	}
	if w.DefaultWidth < w.MinWidth || w.DefaultHeight < w.MinHeight {
		validationErrors = append(validationErrors, "windows.default_width/default_height must not be below the minimum size")
	}
	if w.VisibleMarginX < 0 || w.VisibleMarginY < 0 {
		validationErrors = append(validationErrors, "windows.visible_margin_x and windows.visible_margin_y must be non-negative")
	}
	return validationErrors
}

func validateDisplay(config *Config) []string {
	var validationErrors []string
	if config.Display.CellWidthPx < 1 || config.Display.CellHeightPx < 1 {
		validationErrors = append(validationErrors, "display.cell_width_px and display.cell_height_px must be positive")
	}
	if config.Display.TickIntervalMs < 10 || config.Display.TickIntervalMs > 1000 {
		validationErrors = append(validationErrors, "display.tick_interval_ms must be between 10 and 1000")
	}
	return validationErrors
}

func validateDesktop(config *Config) []string {
	validationErrors := domainvalidation.ValidateAppKinds("desktop.icons", config.Desktop.Icons)
	if config.Desktop.DoubleClickMs < 50 || config.Desktop.DoubleClickMs > 5000 {
		validationErrors = append(validationErrors, "desktop.double_click_ms must be between 50 and 5000")
	}
	return validationErrors
}

func validateTaskbar(config *Config) []string {
	validationErrors := domainvalidation.ValidateAppKinds("taskbar.pinned", config.Taskbar.Pinned)
	validationErrors = append(validationErrors,
		domainvalidation.ValidateTimeLayout("taskbar.clock_format", config.Taskbar.ClockFormat)...)
	validationErrors = append(validationErrors,
		domainvalidation.ValidateTimeLayout("taskbar.date_format", config.Taskbar.DateFormat)...)
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePaletteHex("appearance.palette",
		domainvalidation.NamedColor{Name: "background", Value: p.Background},
		domainvalidation.NamedColor{Name: "surface", Value: p.Surface},
		domainvalidation.NamedColor{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.NamedColor{Name: "text", Value: p.Text},
		domainvalidation.NamedColor{Name: "muted", Value: p.Muted},
		domainvalidation.NamedColor{Name: "accent", Value: p.Accent},
		domainvalidation.NamedColor{Name: "border", Value: p.Border},
	)
}

func validateMCP(config *Config) []string {
	var validationErrors []string
	switch config.MCP.Transport {
	case MCPTransportStdio:
	case MCPTransportHTTP:
		if strings.TrimSpace(config.MCP.Addr) == "" {
			validationErrors = append(validationErrors, "mcp.addr is required when mcp.transport is http")
		}
	default:
		validationErrors = append(validationErrors, "mcp.transport must be one of: stdio, http")
	}
	if config.MCP.ViewportWidth < 1 || config.MCP.ViewportHeight < 1 {
		validationErrors = append(validationErrors, "mcp.viewport_width and mcp.viewport_height must be positive")
	}
	return validationErrors
}
