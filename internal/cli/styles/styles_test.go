package styles_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtop/internal/cli/styles"
	"github.com/bnema/dumbtop/internal/domain/build"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/infrastructure/config"
)

func newTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestNewTheme_FallsBackToDefaultPalette(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Equal(t, config.DefaultDarkPalette().Accent, string(theme.Accent))

	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff00ff"
	assert.Equal(t, "#ff00ff", string(styles.NewTheme(cfg).Accent))
}

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(newTheme()).Render(build.Info{
		Version:   "v0.3.0",
		Commit:    "abc1234",
		BuildDate: "2026-01-02",
		GoVersion: "go1.25.3",
	})

	for _, want := range []string{"v0.3.0", "abc1234", "2026-01-02", "go1.25.3", build.RepoURL(), "bnema"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderApps(t *testing.T) {
	rows := make([]styles.AppRow, 0, len(entity.AllApps()))
	for _, a := range entity.AllApps() {
		rows = append(rows, styles.AppRow{App: a, Pinned: a.Kind == entity.AppTerminal})
	}

	out := styles.RenderApps(newTheme(), rows)
	assert.Contains(t, out, "Kind")
	for _, a := range entity.AllApps() {
		assert.Contains(t, out, a.Kind.String())
	}
}

func TestAppRow_ToRow(t *testing.T) {
	app, ok := entity.LookupApp(entity.AppNotepad)
	require.True(t, ok)

	row := styles.AppRow{App: app, OnDesktop: true}.ToRow()
	require.Len(t, row, len(styles.AppsTableColumns()))
	assert.Equal(t, "notepad", row[1])
	assert.Equal(t, styles.IconCheck, row[3])
	assert.Empty(t, row[4])
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(newTheme())

	assert.Contains(t, r.RenderPath("/tmp/dumbtop/config.toml", false), "defaults apply")
	assert.Contains(t, r.RenderPath("/tmp/dumbtop/config.toml", true), "present")
	assert.Contains(t, r.RenderWritten("JSON schema", "/tmp/dumbtop/config.schema.json"), "config.schema.json")
	assert.Contains(t, r.RenderKept("/tmp/dumbtop/config.toml"), "config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		done bool
		want bool
	}{
		{
			name: "defaults to no",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			done: true,
			want: false,
		},
		{
			name: "y then enter",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}, {Type: tea.KeyEnter}},
			done: true,
			want: true,
		},
		{
			name: "right then left",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyLeft}, {Type: tea.KeyEnter}},
			done: true,
			want: false,
		},
		{
			name: "escape cancels",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}, {Type: tea.KeyEsc}},
			done: true,
			want: false,
		},
		{
			name: "selection alone is not done",
			keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}},
			done: false,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := styles.NewConfirm(newTheme(), "Replace?")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			assert.Equal(t, tt.done, m.Done())
			assert.Equal(t, tt.want, m.Result())
			assert.Contains(t, m.View(), "Replace?")
		})
	}
}
