package shell

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	portmocks "github.com/bnema/dumbtop/internal/application/port/mocks"
	"github.com/bnema/dumbtop/internal/application/usecase"
	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/ui/shell/mocks"
)

type fakeTime struct {
	now time.Time
}

func (f *fakeTime) advance(d time.Duration) { f.now = f.now.Add(d) }

func newClock(t *testing.T, ft *fakeTime) *portmocks.MockClock {
	clock := portmocks.NewMockClock(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return ft.now }).Maybe()
	return clock
}

func TestShell_DesktopIconDoubleClickOpens(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	ft := &fakeTime{now: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)}
	s := New(windows, newClock(t, ft), DefaultOptions())

	windows.EXPECT().Open(gomock.Any(), entity.AppNotepad, "Notepad").Return(entity.WindowID("w1")).Times(1)

	id, opened := s.ClickDesktopIcon(ctx, entity.AppNotepad)
	assert.False(t, opened)
	assert.Empty(t, id)
	assert.Equal(t, entity.AppNotepad, s.SelectedIcon())

	ft.advance(150 * time.Millisecond)
	id, opened = s.ClickDesktopIcon(ctx, entity.AppNotepad)
	assert.True(t, opened)
	assert.Equal(t, entity.WindowID("w1"), id)

	// a third click starts a new pair
	ft.advance(50 * time.Millisecond)
	_, opened = s.ClickDesktopIcon(ctx, entity.AppNotepad)
	assert.False(t, opened)
}

func TestShell_DesktopIconSlowClicksDoNotOpen(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	ft := &fakeTime{now: time.Now()}
	s := New(windows, newClock(t, ft), DefaultOptions())

	windows.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ClickDesktopIcon(ctx, entity.AppTerminal)
	ft.advance(time.Second)
	_, opened := s.ClickDesktopIcon(ctx, entity.AppTerminal)
	assert.False(t, opened)

	// different icons never pair up
	s.ClickDesktopIcon(ctx, entity.AppBrowser)
	_, opened = s.ClickDesktopIcon(ctx, entity.AppSettings)
	assert.False(t, opened)
}

func TestShell_ActivateDesktopIcon(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())

	windows.EXPECT().Open(gomock.Any(), entity.AppFileExplorer, "File Explorer").Return(entity.WindowID("w1"))

	assert.Equal(t, entity.WindowID("w1"), s.ActivateDesktopIcon(ctx, entity.AppFileExplorer))
}

func TestShell_LaunchPinned(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())

	windows.EXPECT().Open(gomock.Any(), entity.AppShooterGame, "Space Invaders").Return(entity.WindowID("game"))

	assert.Equal(t, entity.WindowID("game"), s.LaunchPinned(ctx, entity.AppShooterGame))
}

func TestShell_ClickTaskbarWindowToggles(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())
	s.ToggleStartMenu()

	windows.EXPECT().Toggle(gomock.Any(), entity.WindowID("w1")).Return(true)

	assert.True(t, s.ClickTaskbarWindow(ctx, "w1"))
	assert.False(t, s.StartMenuOpen())
}

func TestShell_LaunchFromStartMenuClosesMenu(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())

	s.ToggleStartMenu()
	s.TogglePowerMenu()
	require.True(t, s.StartMenuOpen())
	require.True(t, s.PowerMenuOpen())

	windows.EXPECT().Open(gomock.Any(), entity.AppPixelArt, "Pixel Art").Return(entity.WindowID("art"))

	assert.Equal(t, entity.WindowID("art"), s.LaunchFromStartMenu(ctx, entity.AppPixelArt))
	assert.False(t, s.StartMenuOpen())
	assert.False(t, s.PowerMenuOpen())
}

func TestShell_MenuToggles(t *testing.T) {
	s := New(nil, nil, DefaultOptions())

	s.TogglePowerMenu()
	assert.False(t, s.PowerMenuOpen(), "power menu lives inside the start menu")

	s.ToggleStartMenu()
	s.TogglePowerMenu()
	assert.True(t, s.PowerMenuOpen())

	s.ToggleStartMenu()
	assert.False(t, s.StartMenuOpen())
	assert.False(t, s.PowerMenuOpen())
}

func TestShell_ChoosePower(t *testing.T) {
	s := New(nil, nil, DefaultOptions())
	s.ToggleStartMenu()
	s.TogglePowerMenu()

	assert.Equal(t, PowerShutdown, s.ChoosePower(context.Background(), PowerShutdown))
	assert.False(t, s.StartMenuOpen())
	assert.False(t, s.PowerMenuOpen())

	a, err := ParsePowerAction("restart")
	require.NoError(t, err)
	assert.Equal(t, PowerRestart, a)

	_, err = ParsePowerAction("hibernate")
	assert.ErrorIs(t, err, ErrUnknownPowerAction)
	assert.Equal(t, "Shut down", PowerShutdown.Label())
}

func TestShell_TaskbarEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())

	windows.EXPECT().Snapshot().Return(entity.Snapshot{
		Revision: 3,
		Windows: entity.WindowList{
			{ID: "a", Kind: entity.AppNotepad, Title: "Notepad", Minimized: true},
			{ID: "b", Kind: entity.AppMusicPlayer, Title: "Music Player", Focused: true},
		},
	})

	entries := s.TaskbarEntries()

	require.Len(t, entries, 2)
	assert.Equal(t, entity.WindowID("a"), entries[0].ID)
	assert.True(t, entries[0].Minimized)
	assert.Equal(t, "✎", entries[0].Glyph)
	assert.True(t, entries[1].Focused)
	assert.Equal(t, "♪", entries[1].Glyph)
}

func TestShell_CycleFocus(t *testing.T) {
	ctx := context.Background()
	store := usecase.NewWindowStore(func() string { return "w" }, usecase.DefaultWindowDefaults())
	s := New(store, newClock(t, &fakeTime{}), DefaultOptions())

	a := store.Open(ctx, entity.AppNotepad, "A")
	b := store.Open(ctx, entity.AppNotepad, "B")
	c := store.Open(ctx, entity.AppNotepad, "C")
	store.Minimize(ctx, b)
	store.Focus(ctx, c)

	id, ok := s.CycleFocus(ctx)
	require.True(t, ok)
	assert.Equal(t, a, id, "wraps around and skips the minimized window")

	id, ok = s.CycleFocus(ctx)
	require.True(t, ok)
	assert.Equal(t, c, id)

	store.Minimize(ctx, a)
	store.Minimize(ctx, c)
	id, ok = s.CycleFocus(ctx)
	require.True(t, ok)
	assert.Equal(t, a, id, "restores a minimized window when nothing is focused")
}

func TestShell_CycleFocus_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, nil, DefaultOptions())

	windows.EXPECT().Snapshot().Return(entity.Snapshot{})

	_, ok := s.CycleFocus(context.Background())
	assert.False(t, ok)
}

func TestShell_SearchApps(t *testing.T) {
	s := New(nil, nil, DefaultOptions())

	assert.Len(t, s.SearchApps(""), 8)

	found := s.SearchApps("note")
	require.NotEmpty(t, found)
	assert.Equal(t, entity.AppNotepad, found[0].Kind)

	found = s.SearchApps("invaders")
	require.NotEmpty(t, found)
	assert.Equal(t, entity.AppShooterGame, found[0].Kind)

	assert.Empty(t, s.SearchApps("zzzz"))
}

func TestShell_ClockText(t *testing.T) {
	ft := &fakeTime{now: time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)}
	s := New(nil, newClock(t, ft), DefaultOptions())

	assert.Equal(t, "09:05", s.ClockText())
	assert.Equal(t, "Mar 7", s.DateText())
}

func TestShell_DesktopIconsAndPinned(t *testing.T) {
	opts := DefaultOptions()
	opts.Pinned = []entity.AppKind{entity.AppTerminal, "bogus", entity.AppBrowser}
	s := New(nil, nil, opts)

	icons := s.DesktopIcons()
	require.Len(t, icons, 5)
	assert.Equal(t, entity.AppNotepad, icons[0].Kind)

	pinned := s.PinnedApps()
	require.Len(t, pinned, 2)
	assert.Equal(t, entity.AppTerminal, pinned[0].Kind)
	assert.Equal(t, entity.AppBrowser, pinned[1].Kind)
	assert.Len(t, s.Recommended(), 2)
}

func TestShell_SelectDesktopIconResetsClickPairing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	windows := mocks.NewMockWindowIntents(ctrl)
	s := New(windows, newClock(t, &fakeTime{}), DefaultOptions())

	windows.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ClickDesktopIcon(ctx, entity.AppBrowser)
	s.SelectDesktopIcon(entity.AppBrowser)
	assert.Equal(t, entity.AppBrowser, s.SelectedIcon())

	_, opened := s.ClickDesktopIcon(ctx, entity.AppBrowser)
	assert.False(t, opened)
}
