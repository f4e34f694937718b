package config

import (
	"os"
	"path/filepath"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

const (
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 3
	defaultMaxLogAgeDays  = 7
	defaultOrigin         = 100
	defaultCascadeStep    = 20
	defaultWindowWidth    = 800
	defaultWindowHeight   = 600
	defaultMinWidth       = 320
	defaultMinHeight      = 240
	defaultMarginX        = 100
	defaultMarginY        = 50
	defaultCellWidthPx    = 8
	defaultCellHeightPx   = 16
	defaultTickMs         = 100
	defaultDoubleClickMs  = 400
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

func getDefaultLogDir() string {
	if logDir, err := GetLogDir(); err == nil {
		return logDir
	}
	return filepath.Join(os.TempDir(), appName, "logs")
}

// DefaultDarkPalette returns the built-in desktop palette.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

func defaultIcons() []string {
	return []string{
		string(entity.AppNotepad),
		string(entity.AppFileExplorer),
		string(entity.AppBrowser),
		string(entity.AppTerminal),
		string(entity.AppSettings),
	}
}

func defaultPinned() []string {
	kinds := entity.AllAppKinds()
	pinned := make([]string, len(kinds))
	for i, k := range kinds {
		pinned[i] = string(k)
	}
	return pinned
}

// DefaultConfig returns the default configuration values for dumbtop.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        LogFormatText,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
		Windows: WindowsConfig{
			OriginX:        defaultOrigin,
			OriginY:        defaultOrigin,
			CascadeStep:    defaultCascadeStep,
			DefaultWidth:   defaultWindowWidth,
			DefaultHeight:  defaultWindowHeight,
			MinWidth:       defaultMinWidth,
			MinHeight:      defaultMinHeight,
			VisibleMarginX: defaultMarginX,
			VisibleMarginY: defaultMarginY,
		},
		Display: DisplayConfig{
			CellWidthPx:    defaultCellWidthPx,
			CellHeightPx:   defaultCellHeightPx,
			Mouse:          true,
			AltScreen:      true,
			TickIntervalMs: defaultTickMs,
		},
		Desktop: DesktopConfig{
			Icons:         defaultIcons(),
			DoubleClickMs: defaultDoubleClickMs,
		},
		Taskbar: TaskbarConfig{
			Pinned:      defaultPinned(),
			ClockFormat: "15:04",
			DateFormat:  "Jan 2",
		},
		Appearance: AppearanceConfig{
			Palette: DefaultDarkPalette(),
		},
		MCP: MCPConfig{
			Transport:      MCPTransportStdio,
			Addr:           "127.0.0.1:8765",
			ViewportWidth:  defaultViewportWidth,
			ViewportHeight: defaultViewportHeight,
		},
	}
}
