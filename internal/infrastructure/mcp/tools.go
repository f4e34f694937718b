package mcp

import (
	"context"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
	"github.com/bnema/dumbtop/internal/ui/frame"
)

type windowResult struct {
	ID         string `yaml:"id"`
	Kind       string `yaml:"kind"`
	Title      string `yaml:"title"`
	X          int    `yaml:"x"`
	Y          int    `yaml:"y"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	StackOrder int    `yaml:"stack_order"`
	Focused    bool   `yaml:"focused"`
	Minimized  bool   `yaml:"minimized"`
	Maximized  bool   `yaml:"maximized"`
}

func newWindowResult(w entity.Window) windowResult {
	return windowResult{
		ID:         string(w.ID),
		Kind:       w.Kind.String(),
		Title:      w.Title,
		X:          w.Position.X,
		Y:          w.Position.Y,
		Width:      w.Size.Width,
		Height:     w.Size.Height,
		StackOrder: w.StackOrder,
		Focused:    w.Focused,
		Minimized:  w.Minimized,
		Maximized:  w.Maximized,
	}
}

type listResult struct {
	Revision uint64         `yaml:"revision"`
	Windows  []windowResult `yaml:"windows"`
}

// changeResult reports a mutation. Unknown ids are not errors: the store
// ignores them and Changed is false.
type changeResult struct {
	Action  string        `yaml:"action"`
	ID      string        `yaml:"id"`
	Changed bool          `yaml:"changed"`
	Window  *windowResult `yaml:"window,omitempty"`
}

func toText(v any) (*mcpgo.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcpgo.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// withLogger gives a tool call the server's logger; transports hand over a bare context.
func (s *Server) withLogger(ctx context.Context) context.Context {
	return logging.WithContext(ctx, *logging.FromContext(s.ctx))
}

func (s *Server) changed(action string, id entity.WindowID, ok bool) (*mcpgo.CallToolResult, error) {
	result := changeResult{Action: action, ID: string(id), Changed: ok}
	if w, found := s.store.Get(id); found {
		view := newWindowResult(w)
		result.Window = &view
	}
	return toText(result)
}

func (s *Server) handleListWindows(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	snap := s.store.Snapshot()
	result := listResult{Revision: snap.Revision, Windows: make([]windowResult, 0, len(snap.Windows))}
	for _, w := range snap.Windows {
		result.Windows = append(result.Windows, newWindowResult(w))
	}
	return toText(result)
}

func (s *Server) handleListApps(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return toText(entity.AllApps())
}

func (s *Server) handleOpenWindow(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	name, err := request.RequireString("kind")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	kind, err := entity.ParseAppKind(name)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	title := request.GetString("title", entity.DefaultTitle(kind))

	id := s.store.Open(s.withLogger(ctx), kind, title)
	return s.changed("open", id, true)
}

func (s *Server) windowOp(action string, op func(context.Context, entity.WindowID) bool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcpgo.NewToolResultError(err.Error()), nil
		}
		wid := entity.WindowID(id)
		return s.changed(action, wid, op(s.withLogger(ctx), wid))
	}
}

func (s *Server) handleMoveWindow(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	x, err := request.RequireInt("x")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	y, err := request.RequireInt("y")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	wid := entity.WindowID(id)
	w, ok := s.store.Get(wid)
	if !ok || w.Maximized {
		return s.changed("move", wid, false)
	}

	viewport, c := s.geometry()
	pos := frame.ClampDrag(entity.Point{X: x, Y: y}, viewport, c)
	return s.changed("move", wid, s.store.UpdatePosition(s.withLogger(ctx), wid, pos))
}

func (s *Server) handleResizeWindow(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	width, err := request.RequireInt("width")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}
	height, err := request.RequireInt("height")
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	wid := entity.WindowID(id)
	w, ok := s.store.Get(wid)
	if !ok || w.Maximized {
		return s.changed("resize", wid, false)
	}

	_, c := s.geometry()
	delta := entity.Point{X: width - w.Size.Width, Y: height - w.Size.Height}
	_, size := frame.ApplyResize(entity.ResizeBottomRight, w.Position, w.Size, delta, c)
	return s.changed("resize", wid, s.store.UpdateSize(s.withLogger(ctx), wid, size))
}
