package apps

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

const (
	pixelGrid     = 16
	pixelCellCols = 2 // Terminal columns per pixel
	pixelGridTop  = 3
	pixelGridLeft = 1
	pixelSwatchW  = 3
)

var pixelColors = []lipgloss.Color{
	"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57",
	"#ff9ff3", "#54a0ff", "#5f27cd", "#00d2d3", "#ff9f43",
	"#222f3e", "#c8d6e5", "#ffffff", "#000000",
}

// Header button columns, relative to the content area.
var (
	pixelClearButton = [2]int{20, 26}
	pixelSaveButton  = [2]int{28, 33}
)

// PixelArt is a 16x16 paint grid. Painting a pixel with its own colour
// clears it.
type PixelArt struct {
	pixels [pixelGrid][pixelGrid]lipgloss.Color
	color  int
	cx, cy int
	status string
}

func NewPixelArt() *PixelArt {
	return &PixelArt{}
}

// Color returns the active colour.
func (a *PixelArt) Color() lipgloss.Color { return pixelColors[a.color] }

// Pixel returns the colour at (x, y), empty when unpainted.
func (a *PixelArt) Pixel(x, y int) lipgloss.Color {
	if x < 0 || y < 0 || x >= pixelGrid || y >= pixelGrid {
		return ""
	}
	return a.pixels[y][x]
}

// Status returns the last toolbar message.
func (a *PixelArt) Status() string { return a.status }

func (a *PixelArt) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, "Pixel Art Studio", p)
	r.Text(pixelClearButton[0], 0, "[Clear]", p.Header)
	r.Text(pixelSaveButton[0], 0, "[Save]", p.Header)

	for i, c := range pixelColors {
		x := pixelGridLeft + i*pixelSwatchW
		r.FillRect(x, 1, pixelSwatchW-1, 1, ' ', p.Normal.WithBg(c))
		if i == a.color {
			r.Text(x, 2, "▔▔", p.Accent)
		}
	}

	empty := p.Muted
	for y := 0; y < pixelGrid; y++ {
		for x := 0; x < pixelGrid; x++ {
			col := pixelGridLeft + x*pixelCellCols
			row := pixelGridTop + y
			if c := a.pixels[y][x]; c != "" {
				r.FillRect(col, row, pixelCellCols, 1, ' ', p.Normal.WithBg(c))
			} else {
				r.Text(col, row, "··", empty)
			}
		}
	}
	cur := pixelGridLeft + a.cx*pixelCellCols
	r.Text(cur, pixelGridTop+a.cy, "[]", p.Selected)

	if a.status != "" {
		r.Text(1, pixelGridTop+pixelGrid+1, a.status, p.Muted)
	}
}

func (a *PixelArt) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		a.cy = clampIndex(a.cy-1, pixelGrid)
	case "down", "j":
		a.cy = clampIndex(a.cy+1, pixelGrid)
	case "left", "h":
		a.cx = clampIndex(a.cx-1, pixelGrid)
	case "right", "l":
		a.cx = clampIndex(a.cx+1, pixelGrid)
	case " ", "enter":
		a.paint(a.cx, a.cy)
	case "tab", "c":
		a.color = (a.color + 1) % len(pixelColors)
	case "x":
		a.Clear()
	case "s":
		a.Save()
	default:
		return false
	}
	return true
}

// HandleClick drives the toolbar, the palette and the grid.
func (a *PixelArt) HandleClick(x, y int) bool {
	switch {
	case y == 0 && x >= pixelClearButton[0] && x <= pixelClearButton[1]:
		a.Clear()
	case y == 0 && x >= pixelSaveButton[0] && x <= pixelSaveButton[1]:
		a.Save()
	case y == 1 && x >= pixelGridLeft:
		i := (x - pixelGridLeft) / pixelSwatchW
		if i >= len(pixelColors) {
			return false
		}
		a.color = i
	case y >= pixelGridTop && y < pixelGridTop+pixelGrid && x >= pixelGridLeft:
		px := (x - pixelGridLeft) / pixelCellCols
		if px >= pixelGrid {
			return false
		}
		a.cx, a.cy = px, y-pixelGridTop
		a.paint(a.cx, a.cy)
	default:
		return false
	}
	return true
}

// Clear erases every pixel.
func (a *PixelArt) Clear() {
	a.pixels = [pixelGrid][pixelGrid]lipgloss.Color{}
	a.status = "Canvas cleared"
}

// Save only reports; nothing is written to disk.
func (a *PixelArt) Save() {
	a.status = "Pixel art saved!"
}

func (a *PixelArt) paint(x, y int) {
	c := pixelColors[a.color]
	if a.pixels[y][x] == c {
		a.pixels[y][x] = ""
	} else {
		a.pixels[y][x] = c
	}
	a.status = ""
}
