package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/ui/desktop"
	"github.com/bnema/dumbtop/internal/ui/frame"
	"github.com/bnema/dumbtop/internal/ui/shell"
)

func TestDefaultsMatchBuiltIns(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, frame.DefaultConstraints(), Constraints(cfg))
	assert.Equal(t, shell.DefaultOptions(), ShellOptions(cfg))
	assert.Equal(t, desktop.DefaultOptions(), DesktopOptions(cfg))

	defaults := WindowDefaults(cfg)
	assert.Equal(t, entity.Point{X: 100, Y: 100}, defaults.Origin)
	assert.Equal(t, 20, defaults.CascadeStep)
	assert.Equal(t, entity.Size{Width: 800, Height: 600}, defaults.Size)
}

func TestShellOptions_SkipsUnknownKinds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Desktop.Icons = []string{"terminal", "solitaire", "notepad"}
	cfg.Desktop.DoubleClickMs = 250
	cfg.Taskbar.Pinned = nil

	opts := ShellOptions(cfg)
	assert.Equal(t, []entity.AppKind{entity.AppTerminal, entity.AppNotepad}, opts.DesktopIcons)
	assert.Empty(t, opts.Pinned)
	assert.Equal(t, 250*time.Millisecond, opts.DoubleClick)
}

func TestSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.CellWidthPx = 10
	cfg.Windows.MinWidth = 400

	msg := Settings(cfg)
	assert.NotNil(t, msg.Styles)
	assert.Equal(t, 10, msg.Options.CellWidth)
	assert.Equal(t, 400, msg.Options.Constraints.MinWidth)
}

func TestMCPOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MCP.ViewportWidth = 1920
	cfg.MCP.ViewportHeight = 1080

	opts := MCPOptions(cfg, "v1.2.3")
	assert.Equal(t, "dumbtop", opts.Name)
	assert.Equal(t, "v1.2.3", opts.Version)
	assert.Equal(t, entity.Size{Width: 1920, Height: 1080}, opts.Viewport)
	assert.Equal(t, Constraints(cfg), opts.Constraints)
}
