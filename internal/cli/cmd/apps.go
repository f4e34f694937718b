package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtop/internal/cli/styles"
	"github.com/bnema/dumbtop/internal/domain/entity"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List the built-in apps",
	Long:  `Show every app kind with its title, and whether it sits on the desktop or the taskbar.`,
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
}

func runApps(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	rows := make([]styles.AppRow, 0, len(entity.AllApps()))
	for _, a := range entity.AllApps() {
		rows = append(rows, styles.AppRow{
			App:       a,
			OnDesktop: slices.Contains(app.Config.Desktop.Icons, a.Kind.String()),
			Pinned:    slices.Contains(app.Config.Taskbar.Pinned, a.Kind.String()),
		})
	}

	fmt.Println(styles.RenderApps(app.Theme, rows))
	return nil
}
