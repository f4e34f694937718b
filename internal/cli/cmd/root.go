// Package cmd provides Cobra CLI commands for dumbtop.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtop/internal/cli"
	"github.com/bnema/dumbtop/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	verbose   bool
	rootCmd   = &cobra.Command{
		Use:   "dumbtop",
		Short: "A dumb desktop in your terminal",
		Long: `Dumbtop - a toy desktop environment that runs in a terminal.

Windows, a taskbar, a start menu and desktop icons, drawn with box characters
and driven by mouse or keyboard.

Features:
  - Draggable, resizable windows with minimize, maximize and close
  - Taskbar with pinned apps, open windows and a clock
  - Start menu with fuzzy app search and a power menu
  - Built-in toy apps: notepad, file explorer, browser, terminal, settings,
    a shooter game, a music player and a pixel-art editor
  - MCP tools so agents can open and arrange windows
  - Live configuration reload

Run 'dumbtop' to start the desktop, or explore the subcommands for the app
catalog, configuration and the headless MCP server.`,
		SilenceUsage: true,
		RunE:         runDesktop,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				// The desktop owns the terminal.
				LogToStderr: verbose && cmd.HasParent(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also log to stderr (ignored by the desktop)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
