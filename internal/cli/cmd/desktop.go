package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbtop/internal/cli"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/infrastructure/clock"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/infrastructure/mcp"
	"github.com/bnema/dumbtop/internal/logging"
	"github.com/bnema/dumbtop/internal/ui/desktop"
	"github.com/bnema/dumbtop/internal/ui/frame"
	"github.com/bnema/dumbtop/internal/ui/shell"
)

var (
	desktopMCPAddr string
	desktopNoMouse bool
)

func init() {
	rootCmd.Flags().StringVar(&desktopMCPAddr, "mcp-addr", "",
		"also serve the MCP window tools over streamable HTTP on this address (e.g. 127.0.0.1:8765)")
	rootCmd.Flags().BoolVar(&desktopNoMouse, "no-mouse", false, "disable mouse reporting")
}

// runDesktop runs the desktop until it is shut down from the power menu,
// ctrl+c or a signal.
func runDesktop(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	log := logging.FromContext(gctx)

	store := app.NewWindowStore()
	settings := cli.Settings(cfg)
	sh := shell.New(store, clock.System{}, settings.Shell)
	model := desktop.New(logging.WithComponent(gctx, "desktop"), store, sh, settings.Styles, settings.Options)

	var tools *mcp.Server
	if desktopMCPAddr != "" {
		tools = mcp.NewServer(gctx, store, cli.MCPOptions(cfg, app.BuildInfo.Version))
	}

	p, unsubscribe := desktop.NewProgram(gctx, model, desktop.ProgramOptions{
		AltScreen: cfg.Display.AltScreen,
		Mouse:     cfg.Display.Mouse && !desktopNoMouse,
		OnViewport: func(viewport entity.Size, c frame.Constraints) {
			if tools != nil {
				tools.SetGeometry(viewport, c)
			}
		},
	})
	defer unsubscribe()

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(next *config.Config) {
			store.SetDefaults(cli.WindowDefaults(next))
			p.Send(cli.Settings(next))
			log.Info().Msg("configuration reloaded")
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	g.Go(func() error {
		// Leaving the desktop stops everything else.
		defer cancel()
		log.Info().Msg("desktop started")
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run desktop: %w", err)
		}
		log.Info().Msg("desktop stopped")
		return nil
	})

	if tools != nil {
		g.Go(func() error {
			return tools.ServeHTTP(gctx, desktopMCPAddr)
		})
	}

	return g.Wait()
}
