package cli

import (
	"time"

	"github.com/bnema/dumbtop/internal/application/usecase"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/infrastructure/mcp"
	"github.com/bnema/dumbtop/internal/ui/desktop"
	"github.com/bnema/dumbtop/internal/ui/frame"
	"github.com/bnema/dumbtop/internal/ui/shell"
	"github.com/bnema/dumbtop/internal/ui/theme"
)

// WindowDefaults maps the [windows] section onto store placement.
func WindowDefaults(cfg *config.Config) usecase.WindowDefaults {
	w := cfg.Windows
	return usecase.WindowDefaults{
		Origin:      entity.Point{X: w.OriginX, Y: w.OriginY},
		CascadeStep: w.CascadeStep,
		Size:        entity.Size{Width: w.DefaultWidth, Height: w.DefaultHeight},
	}
}

// Constraints maps the [windows] limits onto frame constraints.
func Constraints(cfg *config.Config) frame.Constraints {
	w := cfg.Windows
	return frame.Constraints{
		MinWidth:       w.MinWidth,
		MinHeight:      w.MinHeight,
		VisibleMarginX: w.VisibleMarginX,
		VisibleMarginY: w.VisibleMarginY,
	}
}

// ShellOptions maps the [desktop] and [taskbar] sections onto the chrome.
// Unknown kinds were rejected by validation, so they are skipped here.
func ShellOptions(cfg *config.Config) shell.Options {
	return shell.Options{
		DesktopIcons: parseKinds(cfg.Desktop.Icons),
		Pinned:       parseKinds(cfg.Taskbar.Pinned),
		DoubleClick:  time.Duration(cfg.Desktop.DoubleClickMs) * time.Millisecond,
		ClockFormat:  cfg.Taskbar.ClockFormat,
		DateFormat:   cfg.Taskbar.DateFormat,
	}
}

// DesktopOptions maps the [display] section onto the desktop model.
func DesktopOptions(cfg *config.Config) desktop.Options {
	return desktop.Options{
		CellWidth:    cfg.Display.CellWidthPx,
		CellHeight:   cfg.Display.CellHeightPx,
		Constraints:  Constraints(cfg),
		TickInterval: time.Duration(cfg.Display.TickIntervalMs) * time.Millisecond,
	}
}

// Settings bundles everything a running desktop picks up on reload.
func Settings(cfg *config.Config) desktop.SettingsMsg {
	return desktop.SettingsMsg{
		Styles:  theme.New(cfg),
		Shell:   ShellOptions(cfg),
		Options: DesktopOptions(cfg),
	}
}

// MCPOptions maps the [mcp] section onto the tool server. The viewport is
// the headless one; a running desktop replaces it with the terminal's.
func MCPOptions(cfg *config.Config, version string) mcp.Options {
	return mcp.Options{
		Name:        "dumbtop",
		Version:     version,
		Viewport:    entity.Size{Width: cfg.MCP.ViewportWidth, Height: cfg.MCP.ViewportHeight},
		Constraints: Constraints(cfg),
	}
}

func parseKinds(names []string) []entity.AppKind {
	kinds := make([]entity.AppKind, 0, len(names))
	for _, name := range names {
		if kind, err := entity.ParseAppKind(name); err == nil {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
