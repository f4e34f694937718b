package apps

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

const terminalPrompt = `C:\Users\User>`

// Terminal echoes commands into a scrollback. Nothing is executed.
type Terminal struct {
	input      textinput.Model
	scrollback []string
}

// NewTerminal creates a terminal showing the banner.
func NewTerminal() *Terminal {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Type commands here..."
	in.CharLimit = 256
	in.Focus()

	return &Terminal{
		input: in,
		scrollback: []string{
			"Microsoft Windows [Version 10.0.22621.2428]",
			"(c) Microsoft Corporation. All rights reserved.",
			"",
		},
	}
}

// Scrollback returns every line printed so far.
func (t *Terminal) Scrollback() []string {
	return append([]string(nil), t.scrollback...)
}

func (t *Terminal) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, "Windows Terminal", p)

	body := r.Sub(0, 1, r.Width(), r.Height()-1)
	if body.Height() == 0 {
		return
	}
	visible := t.scrollback
	if len(visible) > body.Height()-1 {
		visible = visible[len(visible)-(body.Height()-1):]
	}
	for y, line := range visible {
		body.Text(1, y, line, p.Normal)
	}

	y := len(visible)
	x := 1 + body.Text(1, y, terminalPrompt, p.Normal)
	value := t.input.Value()
	if value == "" {
		body.Text(x+1, y, t.input.Placeholder, p.Muted)
	}
	body.Text(x, y, value, p.Normal)
	pos := t.input.Position()
	cursor := ' '
	if runes := []rune(value); pos < len(runes) {
		cursor = runes[pos]
	}
	body.Set(x+pos, y, cursor, p.Selected)
}

func (t *Terminal) HandleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEnter {
		t.run(strings.TrimSpace(t.input.Value()))
		t.input.Reset()
		return true
	}
	t.input, _ = t.input.Update(msg)
	return true
}

func (t *Terminal) run(command string) {
	t.scrollback = append(t.scrollback, terminalPrompt+command)
	switch strings.ToLower(command) {
	case "":
	case "cls", "clear":
		t.scrollback = nil
	case "help":
		t.scrollback = append(t.scrollback, "Supported: help, cls, echo, ver, whoami")
	case "ver":
		t.scrollback = append(t.scrollback, "Microsoft Windows [Version 10.0.22621.2428]")
	case "whoami":
		t.scrollback = append(t.scrollback, `desktop\user`)
	default:
		if rest, ok := strings.CutPrefix(command, "echo "); ok {
			t.scrollback = append(t.scrollback, rest)
			break
		}
		name, _, _ := strings.Cut(command, " ")
		t.scrollback = append(t.scrollback,
			fmt.Sprintf("'%s' is not recognized as an internal or external command,", name),
			"operable program or batch file.",
		)
	}
	t.scrollback = append(t.scrollback, "")
}
