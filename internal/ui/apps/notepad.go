package apps

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

var notepadMenu = []string{"File", "Edit", "Format", "View", "Help"}

// Notepad is a plain multi-line text editor.
type Notepad struct {
	lines [][]rune
	row   int
	col   int
	top   int // First visible line
}

// NewNotepad creates an empty document.
func NewNotepad() *Notepad {
	return &Notepad{lines: [][]rune{{}}}
}

// Text returns the document.
func (n *Notepad) Text() string {
	parts := make([]string, len(n.lines))
	for i, l := range n.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// Cursor returns the cursor line and column.
func (n *Notepad) Cursor() (row, col int) { return n.row, n.col }

func (n *Notepad) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, strings.Join(notepadMenu, "  "), p)

	body := r.Sub(0, 1, r.Width(), r.Height()-1)
	if n.row < n.top {
		n.top = n.row
	}
	if body.Height() > 0 && n.row >= n.top+body.Height() {
		n.top = n.row - body.Height() + 1
	}

	if len(n.lines) == 1 && len(n.lines[0]) == 0 {
		body.Text(2, 0, "Start typing...", p.Muted)
	}

	for y := 0; y < body.Height() && n.top+y < len(n.lines); y++ {
		line := n.lines[n.top+y]
		offset := max(0, n.col-body.Width()+3)
		if n.top+y != n.row {
			offset = 0
		}
		body.Text(1-offset, y, string(line), p.Normal)
		if n.top+y == n.row {
			cursor := ' '
			if n.col < len(line) {
				cursor = line[n.col]
			}
			body.Set(1+n.col-offset, y, cursor, p.Selected)
		}
	}
}

func (n *Notepad) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		n.insert(msg.Runes)
	case tea.KeyTab:
		n.insert([]rune("    "))
	case tea.KeyEnter:
		line := n.lines[n.row]
		rest := append([]rune(nil), line[n.col:]...)
		n.lines[n.row] = line[:n.col]
		n.lines = append(n.lines[:n.row+1], append([][]rune{rest}, n.lines[n.row+1:]...)...)
		n.row++
		n.col = 0
	case tea.KeyBackspace:
		n.backspace()
	case tea.KeyDelete:
		line := n.lines[n.row]
		switch {
		case n.col < len(line):
			n.lines[n.row] = append(line[:n.col], line[n.col+1:]...)
		case n.row+1 < len(n.lines):
			n.lines[n.row] = append(line, n.lines[n.row+1]...)
			n.lines = append(n.lines[:n.row+1], n.lines[n.row+2:]...)
		}
	case tea.KeyLeft:
		if n.col > 0 {
			n.col--
		} else if n.row > 0 {
			n.row--
			n.col = len(n.lines[n.row])
		}
	case tea.KeyRight:
		if n.col < len(n.lines[n.row]) {
			n.col++
		} else if n.row+1 < len(n.lines) {
			n.row++
			n.col = 0
		}
	case tea.KeyUp:
		if n.row > 0 {
			n.row--
			n.col = min(n.col, len(n.lines[n.row]))
		}
	case tea.KeyDown:
		if n.row+1 < len(n.lines) {
			n.row++
			n.col = min(n.col, len(n.lines[n.row]))
		}
	case tea.KeyHome:
		n.col = 0
	case tea.KeyEnd:
		n.col = len(n.lines[n.row])
	default:
		return false
	}
	return true
}

func (n *Notepad) insert(rs []rune) {
	if len(rs) == 0 {
		rs = []rune{' '}
	}
	line := n.lines[n.row]
	next := make([]rune, 0, len(line)+len(rs))
	next = append(next, line[:n.col]...)
	next = append(next, rs...)
	next = append(next, line[n.col:]...)
	n.lines[n.row] = next
	n.col += len(rs)
}

func (n *Notepad) backspace() {
	if n.col > 0 {
		line := n.lines[n.row]
		n.lines[n.row] = append(line[:n.col-1], line[n.col:]...)
		n.col--
		return
	}
	if n.row == 0 {
		return
	}
	prev := n.lines[n.row-1]
	n.col = len(prev)
	n.lines[n.row-1] = append(prev, n.lines[n.row]...)
	n.lines = append(n.lines[:n.row], n.lines[n.row+1:]...)
	n.row--
}
