package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbtop/internal/cli/styles"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, print and initialize the TOML configuration and its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration in use, after defaults and DUMBTOP_* environment overrides.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write every setting with its default value to the config file.

An existing file is only replaced after confirmation.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long:  `Write config.schema.json so editors with TOML language servers can validate and complete settings.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "overwrite without confirmation")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(configFile)
	fmt.Println(renderer.RenderPath(configFile, statErr == nil))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := config.EncodeTOML(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); statErr == nil && !configYes {
		ok, confirmErr := confirm(app.Theme, "Replace your config with the defaults?")
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			fmt.Println(renderer.RenderKept(configFile))
			return nil
		}
	}

	if err := config.EnsureDirectories(); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), configFile); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderWritten("default configuration", configFile))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	schemaFile, err := config.GetSchemaFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := config.EnsureDirectories(); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	if err := config.WriteSchemaFile(schemaFile); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderWritten("JSON schema", schemaFile))
	return nil
}

// confirmModel runs a ConfirmModel as a standalone program.
type confirmModel struct {
	confirm styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd {
	return m.confirm.Init()
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		m.confirm.Canceled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View() + "\n"
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{confirm: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, errors.New("confirm: unexpected model")
	}
	return m.confirm.Result(), nil
}
