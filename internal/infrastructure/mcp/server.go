// Package mcp exposes the window store as Model Context Protocol tools so
// agents can drive the desktop. Tool results are YAML documents.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bnema/dumbtop/internal/domain/entity"
	"github.com/bnema/dumbtop/internal/logging"
	"github.com/bnema/dumbtop/internal/ui/frame"
)

// Store is the window store surface the tools operate on.
type Store interface {
	Snapshot() entity.Snapshot
	Get(id entity.WindowID) (entity.Window, bool)
	Open(ctx context.Context, kind entity.AppKind, title string) entity.WindowID
	Close(ctx context.Context, id entity.WindowID) bool
	Focus(ctx context.Context, id entity.WindowID) bool
	Minimize(ctx context.Context, id entity.WindowID) bool
	Maximize(ctx context.Context, id entity.WindowID) bool
	Toggle(ctx context.Context, id entity.WindowID) bool
	UpdatePosition(ctx context.Context, id entity.WindowID, pos entity.Point) bool
	UpdateSize(ctx context.Context, id entity.WindowID, size entity.Size) bool
}

// Options configures the tool server.
type Options struct {
	Name        string
	Version     string
	Viewport    entity.Size // Area move_window keeps windows reachable in
	Constraints frame.Constraints
}

// Server serves the window tools.
type Server struct {
	ctx   context.Context
	store Store

	mu   sync.Mutex
	opts Options

	mcp *mcpserver.MCPServer
}

// NewServer registers every tool. ctx carries the logger used by tool calls.
func NewServer(ctx context.Context, store Store, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "dumbtop"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		ctx:   logging.WithComponent(ctx, "mcp"),
		store: store,
		opts:  opts,
	}
	s.mcp = mcpserver.NewMCPServer(opts.Name, opts.Version)
	s.registerTools()
	return s
}

// SetGeometry replaces the viewport and constraints, e.g. after a config reload.
func (s *Server) SetGeometry(viewport entity.Size, c frame.Constraints) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Viewport = viewport
	s.opts.Constraints = c
}

func (s *Server) geometry() (entity.Size, frame.Constraints) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Viewport, s.opts.Constraints
}

// ServeStdio serves on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	logging.FromContext(s.ctx).Info().Msg("serving MCP over stdio")
	return mcpserver.ServeStdio(s.mcp)
}

// ServeHTTP serves the streamable HTTP transport on addr until ctx is done.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	log := logging.FromContext(s.ctx)
	httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving MCP over streamable HTTP")
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("mcp http server: %w", err)
	case <-ctx.Done():
		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		log.Info().Msg("MCP server stopped")
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcpgo.NewTool("list_windows",
			mcpgo.WithDescription("List every open window in opening order with its geometry and state"),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcpgo.NewTool("list_apps",
			mcpgo.WithDescription("List the app kinds that can be opened"),
		),
		s.handleListApps,
	)

	s.mcp.AddTool(
		mcpgo.NewTool("open_window",
			mcpgo.WithDescription("Open a new focused window for an app kind"),
			mcpgo.WithString("kind", mcpgo.Description("App kind, see list_apps"), mcpgo.Required()),
			mcpgo.WithString("title", mcpgo.Description("Window title (default: the app's title)")),
		),
		s.handleOpenWindow,
	)

	for _, t := range []struct {
		name, description string
		op                func(context.Context, entity.WindowID) bool
	}{
		{"close_window", "Close a window", s.store.Close},
		{"focus_window", "Raise and focus a window, restoring it if minimized", s.store.Focus},
		{"minimize_window", "Minimize a window; it loses focus", s.store.Minimize},
		{"maximize_window", "Toggle a window between maximized and its stored geometry", s.store.Maximize},
		{"toggle_window", "Act like its taskbar button: restore, minimize or focus", s.store.Toggle},
	} {
		s.mcp.AddTool(
			mcpgo.NewTool(t.name,
				mcpgo.WithDescription(t.description),
				mcpgo.WithString("id", mcpgo.Description("Window id"), mcpgo.Required()),
			),
			s.windowOp(t.name, t.op),
		)
	}

	s.mcp.AddTool(
		mcpgo.NewTool("move_window",
			mcpgo.WithDescription("Move a window's top-left corner, clamped so part of it stays on screen"),
			mcpgo.WithString("id", mcpgo.Description("Window id"), mcpgo.Required()),
			mcpgo.WithNumber("x", mcpgo.Description("Left edge in pixels"), mcpgo.Required()),
			mcpgo.WithNumber("y", mcpgo.Description("Top edge in pixels"), mcpgo.Required()),
		),
		s.handleMoveWindow,
	)

	s.mcp.AddTool(
		mcpgo.NewTool("resize_window",
			mcpgo.WithDescription("Resize a window from its bottom-right corner, never below the minimum size"),
			mcpgo.WithString("id", mcpgo.Description("Window id"), mcpgo.Required()),
			mcpgo.WithNumber("width", mcpgo.Description("Width in pixels"), mcpgo.Required()),
			mcpgo.WithNumber("height", mcpgo.Description("Height in pixels"), mcpgo.Required()),
		),
		s.handleResizeWindow,
	)
}
