package apps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbtop/internal/ui/canvas"
)

type explorerEntry struct {
	Name     string
	Folder   bool
	Modified string
	Size     string
}

type explorerPlace struct {
	Name   string
	Detail string
}

var (
	explorerQuickAccess = []explorerPlace{
		{Name: "Desktop", Detail: "15 items"},
		{Name: "Downloads", Detail: "128 items"},
		{Name: "Documents", Detail: "47 items"},
		{Name: "Pictures", Detail: "234 items"},
	}
	explorerDrives = []explorerPlace{
		{Name: "Windows (C:)", Detail: "125 GB free of 237 GB"},
		{Name: "Data (D:)", Detail: "458 GB free of 931 GB"},
	}
	explorerEntries = []explorerEntry{
		{Name: "3D Objects", Folder: true, Modified: "10/15/2023", Size: "-"},
		{Name: "Desktop", Folder: true, Modified: "Today", Size: "-"},
		{Name: "Documents", Folder: true, Modified: "Yesterday", Size: "-"},
		{Name: "Downloads", Folder: true, Modified: "Today", Size: "-"},
		{Name: "Music", Folder: true, Modified: "10/12/2023", Size: "-"},
		{Name: "Pictures", Folder: true, Modified: "Yesterday", Size: "-"},
		{Name: "Videos", Folder: true, Modified: "10/10/2023", Size: "-"},
		{Name: "Document.docx", Modified: "Today", Size: "15.2 KB"},
		{Name: "Budget.xlsx", Modified: "Yesterday", Size: "24.8 KB"},
		{Name: "Presentation.pptx", Modified: "2 days ago", Size: "1.2 MB"},
		{Name: "Photo.jpg", Modified: "3 days ago", Size: "4.5 MB"},
		{Name: "Notes.txt", Modified: "Today", Size: "2.1 KB"},
	}
)

const (
	explorerSidebarWidth = 24
	explorerListTop      = 3 // Rows above the first entry: path, command bar, column header
)

// FileExplorer browses a fixed mock folder tree.
type FileExplorer struct {
	path     []string
	selected int
	status   string
}

// NewFileExplorer opens at This PC > Desktop.
func NewFileExplorer() *FileExplorer {
	return &FileExplorer{path: []string{"This PC", "Desktop"}}
}

// Path returns the breadcrumb.
func (e *FileExplorer) Path() []string {
	return append([]string(nil), e.path...)
}

// Selected returns the highlighted entry name.
func (e *FileExplorer) Selected() string {
	return explorerEntries[e.selected].Name
}

func (e *FileExplorer) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, "← →  "+strings.Join(e.path, " › "), p)
	r.Text(1, 1, "⎘ Copy   ✂ Paste   + New folder   ≡ Sort", p.Muted)

	side := r.Sub(0, 2, explorerSidebarWidth, r.Height()-2)
	y := 0
	side.Text(1, y, "Quick access", p.Accent)
	y++
	for _, place := range explorerQuickAccess {
		style := p.Normal
		if e.inPath(place.Name) {
			style = p.Selected
		}
		side.Text(2, y, place.Name, style)
		side.Text(13, y, place.Detail, p.Muted)
		y++
	}
	y++
	side.Text(1, y, "This PC", p.Accent)
	y++
	for _, drive := range explorerDrives {
		side.Text(2, y, drive.Name, p.Normal)
		y++
		side.Text(3, y, drive.Detail, p.Muted)
		y++
	}

	list := r.Sub(explorerSidebarWidth, 2, r.Width()-explorerSidebarWidth, r.Height()-2)
	list.Text(1, 0, fmt.Sprintf("%-22s %-12s %s", "Name", "Modified", "Size"), p.Muted)
	for i, entry := range explorerEntries {
		style := p.Normal
		if i == e.selected {
			style = p.Selected
		}
		icon := "▫"
		if entry.Folder {
			icon = "▪"
		}
		row := fmt.Sprintf("%s %-20s %-12s %s", icon, entry.Name, entry.Modified, entry.Size)
		list.FillRect(0, i+1, list.Width(), 1, ' ', style)
		list.Text(1, i+1, row, style)
	}
	if e.status != "" {
		r.Text(1, r.Height()-1, e.status, p.Muted)
	}
}

func (e *FileExplorer) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		e.selected = clampIndex(e.selected-1, len(explorerEntries))
	case "down", "j":
		e.selected = clampIndex(e.selected+1, len(explorerEntries))
	case "enter":
		e.open(e.selected)
	case "backspace", "left":
		e.back()
	default:
		return false
	}
	return true
}

// HandleClick selects an entry; clicking the selected entry again opens it.
func (e *FileExplorer) HandleClick(x, y int) bool {
	row := y - explorerListTop
	if x >= explorerSidebarWidth && row >= 0 && row < len(explorerEntries) {
		if row == e.selected {
			e.open(row)
		} else {
			e.selected = row
		}
		return true
	}
	if y == 0 && x <= 2 {
		e.back()
		return true
	}
	side := y - 3
	if x < explorerSidebarWidth && side >= 0 && side < len(explorerQuickAccess) {
		e.path = []string{"This PC", explorerQuickAccess[side].Name}
		e.status = ""
		return true
	}
	return false
}

func (e *FileExplorer) open(i int) {
	entry := explorerEntries[i]
	if entry.Folder {
		e.path = append(e.path, entry.Name)
		e.selected = 0
		e.status = ""
		return
	}
	e.status = "Opening: " + entry.Name
}

func (e *FileExplorer) back() {
	if len(e.path) > 1 {
		e.path = e.path[:len(e.path)-1]
		e.selected = 0
		e.status = ""
	}
}

func (e *FileExplorer) inPath(name string) bool {
	for _, segment := range e.path {
		if segment == name {
			return true
		}
	}
	return false
}
