package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtop/internal/cli"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
	"github.com/bnema/dumbtop/internal/infrastructure/mcp"
	"github.com/bnema/dumbtop/internal/logging"
)

var (
	mcpTransport string
	mcpAddr      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the window tools without a terminal desktop",
	Long: `Run a headless desktop and expose it as Model Context Protocol tools.

Agents can list apps, open, focus, minimize, maximize, move, resize and close
windows. Move and resize requests are bounded by the [mcp] viewport.

Examples:
  dumbtop mcp                                  # stdio, for MCP clients that spawn servers
  dumbtop mcp --transport http --addr :8765    # streamable HTTP`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVarP(&mcpTransport, "transport", "t", "", "stdio or http (default from config)")
	mcpCmd.Flags().StringVar(&mcpAddr, "addr", "", "listen address for the http transport (default from config)")
}

func runMCP(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	transport := cfg.MCP.Transport
	if mcpTransport != "" {
		transport = config.MCPTransport(mcpTransport)
	}
	addr := cfg.MCP.Addr
	if mcpAddr != "" {
		addr = mcpAddr
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := app.NewWindowStore()
	server := mcp.NewServer(ctx, store, cli.MCPOptions(cfg, app.BuildInfo.Version))

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(next *config.Config) {
			store.SetDefaults(cli.WindowDefaults(next))
			server.SetGeometry(
				entity.Size{Width: next.MCP.ViewportWidth, Height: next.MCP.ViewportHeight},
				cli.Constraints(next),
			)
		})
		if err := app.Manager.Watch(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	switch transport {
	case config.MCPTransportStdio:
		return server.ServeStdio()
	case config.MCPTransportHTTP:
		return server.ServeHTTP(ctx, addr)
	default:
		return fmt.Errorf("unsupported transport %q (use: stdio, http)", transport)
	}
}
