package apps

import "github.com/bnema/dumbtop/internal/ui/canvas"

const browserHome = "https://www.microsoft.com/edge"

// Browser shows a static welcome page.
type Browser struct{}

func NewBrowser() *Browser {
	return &Browser{}
}

func (b *Browser) Render(r *canvas.Region, p Palette) {
	r.Fill(' ', p.Normal)
	header(r, 0, "←  →  ↻  │ "+browserHome, p)

	mid := r.Height() / 2
	title := "Microsoft Edge"
	sub := "Welcome to the web browser"
	r.Text((r.Width()-len(title))/2, mid-1, title, p.Accent)
	r.Text((r.Width()-len(sub))/2, mid+1, sub, p.Muted)
}
