package apps

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

// The playfield is a 100x100 unit square scaled onto the content area.
const (
	shooterStep       = 100 * time.Millisecond
	shooterRows       = 3
	shooterCols       = 8
	shooterPlayerY    = 90
	shooterBulletY    = 85
	shooterBulletStep = 5
	shooterHitX       = 5
	shooterHitY       = 4
	shooterPoints     = 100
	shooterMarchEvery = 3 // Ticks between alien moves
)

type alien struct {
	X, Y  int
	Alive bool
}

type bullet struct {
	X, Y int
}

// Shooter is a small space invaders game driven by Tick.
type Shooter struct {
	player  int
	aliens  []alien
	bullets []bullet
	score   int
	dir     int
	ticks   int
	pending time.Duration
	won     bool
	lost    bool
}

func NewShooter() *Shooter {
	s := &Shooter{}
	s.reset()
	return s
}

func (s *Shooter) reset() {
	s.player = 50
	s.bullets = nil
	s.score = 0
	s.dir = 1
	s.ticks = 0
	s.pending = 0
	s.won, s.lost = false, false
	s.aliens = make([]alien, 0, shooterRows*shooterCols)
	for row := 0; row < shooterRows; row++ {
		for col := 0; col < shooterCols; col++ {
			s.aliens = append(s.aliens, alien{X: 10 + col*10, Y: 10 + row*8, Alive: true})
		}
	}
}

// Score returns the current score.
func (s *Shooter) Score() int { return s.score }

// Over reports whether the round ended, and whether it was won.
func (s *Shooter) Over() (over, won bool) { return s.won || s.lost, s.won }

func (s *Shooter) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, fmt.Sprintf("SCORE: %d", s.score), p)
	r.Text(1, r.Height()-1, "CONTROLS: ← → ARROWS | SPACE TO SHOOT", p.Muted)

	field := r.Sub(0, 1, r.Width(), r.Height()-2)
	w, h := field.Width(), field.Height()
	if w == 0 || h == 0 {
		return
	}
	at := func(x, y int) (int, int) { return x * (w - 1) / 100, y * (h - 1) / 100 }

	for _, a := range s.aliens {
		if a.Alive {
			x, y := at(a.X, a.Y)
			field.Text(x-1, y, "▼▼▼", p.Accent)
		}
	}
	for _, b := range s.bullets {
		x, y := at(b.X, b.Y)
		field.Set(x, y, '|', p.Normal)
	}
	x, y := at(s.player, shooterPlayerY)
	field.Text(x-1, y, "▲▲▲", p.Selected)

	switch {
	case s.won:
		msg := "YOU WIN!  press r to play again"
		field.Text((w-len(msg))/2, h/2, msg, p.Accent)
	case s.lost:
		msg := "GAME OVER  press r to play again"
		field.Text((w-len(msg))/2, h/2, msg, p.Accent)
	}
}

func (s *Shooter) HandleKey(msg tea.KeyMsg) bool {
	if msg.String() == "r" {
		s.reset()
		return true
	}
	if s.won || s.lost {
		return false
	}
	switch msg.String() {
	case "left", "h":
		s.player = max(10, s.player-20)
	case "right", "l":
		s.player = min(90, s.player+20)
	case " ":
		s.bullets = append(s.bullets, bullet{X: s.player, Y: shooterBulletY})
	default:
		return false
	}
	return true
}

// Tick advances the game one step per 100ms of elapsed time.
func (s *Shooter) Tick(elapsed time.Duration) bool {
	if s.won || s.lost {
		return false
	}
	s.pending += elapsed
	changed := false
	for s.pending >= shooterStep && !s.won && !s.lost {
		s.pending -= shooterStep
		s.step()
		changed = true
	}
	return changed
}

func (s *Shooter) step() {
	s.ticks++

	live := s.bullets[:0]
	for _, b := range s.bullets {
		b.Y -= shooterBulletStep
		if b.Y > 0 {
			live = append(live, b)
		}
	}
	s.bullets = live

	if s.ticks%shooterMarchEvery == 0 {
		s.march()
	}

	remaining := s.bullets[:0]
	for _, b := range s.bullets {
		if !s.hit(b) {
			remaining = append(remaining, b)
		}
	}
	s.bullets = remaining

	alive := 0
	for _, a := range s.aliens {
		if a.Alive {
			alive++
			if a.Y >= shooterPlayerY-shooterHitY {
				s.lost = true
			}
		}
	}
	if alive == 0 {
		s.won = true
	}
}

// march moves the swarm sideways, stepping down when it reaches an edge.
func (s *Shooter) march() {
	minX, maxX := 100, 0
	for _, a := range s.aliens {
		if a.Alive {
			minX, maxX = min(minX, a.X), max(maxX, a.X)
		}
	}
	down := 0
	if (s.dir > 0 && maxX >= 95) || (s.dir < 0 && minX <= 5) {
		s.dir = -s.dir
		down = 2
	}
	for i := range s.aliens {
		if down > 0 {
			s.aliens[i].Y += down
		} else {
			s.aliens[i].X += s.dir
		}
	}
}

func (s *Shooter) hit(b bullet) bool {
	for i, a := range s.aliens {
		if a.Alive && abs(b.X-a.X) < shooterHitX && abs(b.Y-a.Y) < shooterHitY {
			s.aliens[i].Alive = false
			s.score += shooterPoints
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
