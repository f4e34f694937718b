package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := r.theme.Subtle.Render("not created yet, defaults apply")
	if exists {
		status = r.theme.SuccessStyle.Render("present")
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		iconStyle.Render(IconInfo),
		status,
	)
}

// RenderWritten renders the success message after writing a file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(what),
		r.theme.Subtle.Render(path),
	)
}

// RenderKept renders the message shown when an existing file is left alone.
func (r *ConfigRenderer) RenderKept(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Kept %s\n",
		iconStyle.Render(IconFile),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
