package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// AppsTableColumns returns columns for the app catalog table.
func AppsTableColumns() []table.Column {
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Kind", Width: 14},
		{Title: "Title", Width: 16},
		{Title: "Desktop", Width: 8},
		{Title: "Pinned", Width: 8},
	}
}

// AppRow is one line of the app catalog.
type AppRow struct {
	App       entity.App
	OnDesktop bool
	Pinned    bool
}

// ToRow converts to table.Row.
func (a AppRow) ToRow() table.Row {
	return table.Row{a.App.Glyph, a.App.Kind.String(), a.App.Title, checkmark(a.OnDesktop), checkmark(a.Pinned)}
}

// RenderApps renders the catalog as a static table.
func RenderApps(theme *Theme, apps []AppRow) string {
	rows := make([]table.Row, 0, len(apps))
	width := 0
	columns := AppsTableColumns()
	for _, c := range columns {
		width += c.Width + 2
	}
	for _, a := range apps {
		rows = append(rows, a.ToRow())
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows)+2)
	return t.View()
}

func checkmark(ok bool) string {
	if ok {
		return IconCheck
	}
	return ""
}
