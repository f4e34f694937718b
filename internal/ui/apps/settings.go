package apps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

type settingKind int

const (
	settingStatic settingKind = iota
	settingToggle
	settingSlider
)

type setting struct {
	Section string
	Label   string
	Kind    settingKind
	On      bool
	Level   int
	Text    string
}

func (s setting) value() string {
	switch s.Kind {
	case settingToggle:
		if s.On {
			return "On"
		}
		return "Off"
	case settingSlider:
		return fmt.Sprintf("%d%%", s.Level)
	default:
		return s.Text
	}
}

type settingsCategory struct {
	Name        string
	Description string
	Items       []setting
}

func defaultSettingsCategories() []settingsCategory {
	return []settingsCategory{
		{Name: "System", Description: "Display, sound, notifications, power", Items: []setting{
			{Section: "Display", Label: "Brightness", Kind: settingSlider, Level: 80},
			{Section: "Display", Label: "Night light", Text: "Off"},
			{Section: "Sound", Label: "Volume", Kind: settingSlider, Level: 70},
			{Section: "Power & battery", Label: "Battery saver", Kind: settingToggle},
			{Section: "Power & battery", Label: "Power mode", Text: "Balanced"},
		}},
		{Name: "Personalization", Description: "Background, colors, themes", Items: []setting{
			{Section: "Colors", Label: "Choose your mode", Text: "Dark"},
			{Section: "Colors", Label: "Accent color", Text: "#0078d4"},
			{Section: "Colors", Label: "Transparency effects", Kind: settingToggle, On: true},
		}},
		{Name: "Accounts", Description: "Your accounts, sync settings", Items: []setting{
			{Section: "Your info", Label: "User", Text: "Local account"},
			{Section: "Sync your settings", Label: "Sync settings", Kind: settingToggle},
		}},
		{Name: "Privacy & security", Description: "Location, camera, microphone", Items: []setting{
			{Section: "Location", Label: "Location services", Kind: settingToggle, On: true},
			{Section: "App permissions", Label: "Camera", Kind: settingToggle},
			{Section: "App permissions", Label: "Microphone", Kind: settingToggle},
		}},
		{Name: "Apps", Description: "Uninstall, default apps", Items: []setting{
			{Section: "Installed apps", Label: "Microsoft Edge", Text: "Installed"},
			{Section: "Installed apps", Label: "Windows Terminal", Text: "Installed"},
		}},
		{Name: "Network & internet", Description: "Wi-Fi, Ethernet, VPN", Items: []setting{
			{Section: "Wi-Fi", Label: "Wi-Fi", Kind: settingToggle, On: true},
			{Section: "VPN", Label: "VPN", Kind: settingToggle},
		}},
		{Name: "Gaming", Description: "Game mode, graphics, Xbox", Items: []setting{
			{Section: "Game Mode", Label: "Game Mode", Kind: settingToggle, On: true},
			{Section: "Game Bar", Label: "Game Bar", Kind: settingToggle, On: true},
		}},
	}
}

const settingsSidebarWidth = 26

// Settings is a two pane settings browser. Tab moves between the category
// list and the selected panel; typing in the list filters categories.
type Settings struct {
	categories []settingsCategory
	search     string
	active     int // Index into categories
	item       int
	inPanel    bool
}

func NewSettings() *Settings {
	return &Settings{categories: defaultSettingsCategories()}
}

// Active returns the selected category name.
func (s *Settings) Active() string {
	return s.categories[s.active].Name
}

// Value returns the displayed value of a setting in the active category.
func (s *Settings) Value(label string) (string, bool) {
	for _, it := range s.categories[s.active].Items {
		if it.Label == label {
			return it.value(), true
		}
	}
	return "", false
}

func (s *Settings) visible() []int {
	term := strings.ToLower(s.search)
	idx := make([]int, 0, len(s.categories))
	for i, c := range s.categories {
		if term == "" ||
			strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Description), term) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (s *Settings) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	search := s.search
	if search == "" {
		search = "Find a setting"
	}
	header(r, 0, "Settings   ⌕ "+search, p)

	side := r.Sub(0, 2, settingsSidebarWidth, r.Height()-2)
	for row, i := range s.visible() {
		style := p.Normal
		if i == s.active {
			style = p.Selected
		}
		side.FillRect(0, row*2, side.Width(), 1, ' ', style)
		side.Text(1, row*2, s.categories[i].Name, style)
		side.Text(2, row*2+1, s.categories[i].Description, p.Muted)
	}

	panel := r.Sub(settingsSidebarWidth+1, 2, r.Width()-settingsSidebarWidth-1, r.Height()-2)
	cat := s.categories[s.active]
	panel.Text(0, 0, cat.Name, p.Accent)
	panel.Text(0, 1, cat.Description, p.Muted)
	y, section := 3, ""
	for i, it := range cat.Items {
		if it.Section != section {
			section = it.Section
			if y > 3 {
				y++
			}
			panel.Text(0, y, section, p.Accent)
			y++
		}
		style := p.Normal
		if s.inPanel && i == s.item {
			style = p.Selected
		}
		line := fmt.Sprintf("%-24s %s", it.Label, it.value())
		if it.Kind == settingSlider {
			filled := it.Level / 10
			line += "  " + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		}
		panel.Text(1, y, line, style)
		y++
	}
}

func (s *Settings) HandleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyTab {
		s.inPanel = !s.inPanel
		s.item = 0
		return true
	}
	if s.inPanel {
		return s.panelKey(msg)
	}
	return s.sidebarKey(msg)
}

func (s *Settings) sidebarKey(msg tea.KeyMsg) bool {
	visible := s.visible()
	pos := 0
	for i, idx := range visible {
		if idx == s.active {
			pos = i
		}
	}
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown:
		if len(visible) == 0 {
			return true
		}
		if msg.Type == tea.KeyUp {
			pos--
		} else {
			pos++
		}
		s.active = visible[clampIndex(pos, len(visible))]
	case tea.KeyEnter:
		s.inPanel = true
		s.item = 0
	case tea.KeyBackspace:
		if rs := []rune(s.search); len(rs) > 0 {
			s.search = string(rs[:len(rs)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		s.search += string(msg.Runes)
		if v := s.visible(); len(v) > 0 {
			s.active = v[0]
		}
	default:
		return false
	}
	return true
}

func (s *Settings) panelKey(msg tea.KeyMsg) bool {
	items := s.categories[s.active].Items
	if len(items) == 0 {
		return false
	}
	it := &items[s.item]
	switch msg.String() {
	case "up", "k":
		s.item = clampIndex(s.item-1, len(items))
	case "down", "j":
		s.item = clampIndex(s.item+1, len(items))
	case "left", "h":
		if it.Kind == settingSlider {
			it.Level = max(0, it.Level-5)
		}
	case "right", "l":
		if it.Kind == settingSlider {
			it.Level = min(100, it.Level+5)
		}
	case " ", "enter":
		if it.Kind == settingToggle {
			it.On = !it.On
		}
	case "esc":
		s.inPanel = false
	default:
		return false
	}
	return true
}

// HandleClick selects a category from the sidebar.
func (s *Settings) HandleClick(x, y int) bool {
	if x >= settingsSidebarWidth || y < 2 {
		return false
	}
	row := (y - 2) / 2
	visible := s.visible()
	if row >= len(visible) {
		return false
	}
	s.active = visible[row]
	s.inPanel = false
	return true
}
