package apps

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

type track struct {
	Title    string
	Artist   string
	Duration time.Duration
	Color    lipgloss.Color
}

var musicTracks = []track{
	{Title: "Night Drive", Artist: "Synthwave Collective", Duration: 3*time.Minute + 45*time.Second, Color: "#ff6b6b"},
	{Title: "Digital Dreams", Artist: "Neon Waves", Duration: 4*time.Minute + 20*time.Second, Color: "#4ecdc4"},
	{Title: "Cyber City", Artist: "Future Bass", Duration: 3*time.Minute + 15*time.Second, Color: "#45b7d1"},
}

// Rows of the player layout, relative to the content area.
const (
	musicArtRows     = 3
	musicControlsRow = 9
	musicVolumeRow   = 10
	musicPlaylistRow = 12
)

// MusicPlayer plays a fixed playlist. Nothing is decoded; playback only
// advances the position.
type MusicPlayer struct {
	current  int
	playing  bool
	position time.Duration
	volume   int
}

func NewMusicPlayer() *MusicPlayer {
	return &MusicPlayer{volume: 80}
}

// Current returns the selected track title.
func (m *MusicPlayer) Current() string { return musicTracks[m.current].Title }

// Playing reports whether playback is running.
func (m *MusicPlayer) Playing() bool { return m.playing }

// Position returns the playback position in the current track.
func (m *MusicPlayer) Position() time.Duration { return m.position }

// Volume returns the volume in percent.
func (m *MusicPlayer) Volume() int { return m.volume }

func (m *MusicPlayer) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, "Groove Player", p)

	t := musicTracks[m.current]
	art := p.Normal.WithBg(t.Color)
	r.FillRect(2, 2, 12, musicArtRows, ' ', art)
	r.Set(7, 3, '♫', art.WithFg("#ffffff"))

	r.Text(16, 2, t.Title, p.Accent)
	r.Text(16, 3, t.Artist, p.Muted)

	barWidth := max(0, r.Width()-4)
	filled := 0
	if t.Duration > 0 {
		filled = int(int64(barWidth) * int64(m.position) / int64(t.Duration))
	}
	r.Text(2, 6, strings.Repeat("━", filled), p.Accent)
	r.Text(2+filled, 6, strings.Repeat("─", barWidth-filled), p.Muted)
	r.Text(2, 7, formatTrackTime(m.position), p.Muted)
	total := formatTrackTime(t.Duration)
	r.Text(r.Width()-2-len(total), 7, total, p.Muted)

	play := "⏵"
	if m.playing {
		play = "⏸"
	}
	r.Text(2, musicControlsRow, "⏮   "+play+"   ⏭", p.Normal)
	r.Text(2, musicVolumeRow, fmt.Sprintf("Vol %3d%% %s", m.volume, strings.Repeat("▮", m.volume/10)), p.Muted)

	r.Text(2, musicPlaylistRow-1, "Playlist", p.Accent)
	for i, tr := range musicTracks {
		style := p.Normal
		if i == m.current {
			style = p.Selected
		}
		line := fmt.Sprintf("%-18s %-22s %s", tr.Title, tr.Artist, formatTrackTime(tr.Duration))
		r.FillRect(1, musicPlaylistRow+i, r.Width()-2, 1, ' ', style)
		r.Text(2, musicPlaylistRow+i, line, style)
	}
}

func (m *MusicPlayer) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "p":
		m.playing = !m.playing
	case "n", "right":
		m.Next()
	case "b", "left":
		m.Prev()
	case "+", "=", "up":
		m.volume = min(100, m.volume+5)
	case "-", "down":
		m.volume = max(0, m.volume-5)
	default:
		return false
	}
	return true
}

// HandleClick drives the transport buttons and the playlist.
func (m *MusicPlayer) HandleClick(x, y int) bool {
	switch {
	case y == musicControlsRow && x >= 2 && x <= 3:
		m.Prev()
	case y == musicControlsRow && x >= 6 && x <= 7:
		m.playing = !m.playing
	case y == musicControlsRow && x >= 10 && x <= 11:
		m.Next()
	case y >= musicPlaylistRow && y < musicPlaylistRow+len(musicTracks):
		m.current = y - musicPlaylistRow
		m.position = 0
		m.playing = true
	default:
		return false
	}
	return true
}

// Next moves to the following track, wrapping around.
func (m *MusicPlayer) Next() {
	m.current = (m.current + 1) % len(musicTracks)
	m.position = 0
}

// Prev moves to the previous track, wrapping around.
func (m *MusicPlayer) Prev() {
	m.current = (m.current - 1 + len(musicTracks)) % len(musicTracks)
	m.position = 0
}

// Tick advances playback and moves on when a track ends.
func (m *MusicPlayer) Tick(elapsed time.Duration) bool {
	if !m.playing {
		return false
	}
	m.position += elapsed
	if m.position >= musicTracks[m.current].Duration {
		m.Next()
	}
	return true
}

func formatTrackTime(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
