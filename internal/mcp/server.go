// Package mcp exposes native window control as MCP tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winkit/window"
)

const (
	ServerName    = "winkit"
	ServerVersion = "0.1.0"
)

// Driver is the native capability surface the server needs: everything a
// window requires plus active-window lookup for adoption.
type Driver interface {
	window.Driver
	ActiveWindow() (window.Handle, error)
}

// managed is one window tracked by the server.
type managed struct {
	win     *window.Window
	adopted bool
}

// Server is the MCP server for window control. It owns the driver and every
// window opened through it; adopted windows are tracked but never destroyed.
type Server struct {
	mcpServer *mcpsdk.Server
	drv       Driver
	log       *slog.Logger

	// mu guards the registry; each window is still driven by one request
	// at a time.
	mu      sync.Mutex
	nextID  int
	windows map[int]*managed
}

// NewServer creates a new MCP server on drv. The logger may be nil.
func NewServer(drv Driver, log *slog.Logger) *Server {
	s := &Server{
		drv:     drv,
		log:     log,
		windows: make(map[int]*managed),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close destroys every owned window still in the registry.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.windows {
		m.win.Destroy()
		delete(s.windows, id)
	}
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Open a new native window with the given title, placement, size, and flags. Returns an id used by the other window tools. The window stays open until close_window or server shutdown.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "adopt_active_window",
		Description: "Wrap the currently focused window without taking ownership: the window can be inspected and mutated but close_window will not destroy it.",
	}, s.handleAdoptActiveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_info",
		Description: "Read a window's title, position, size, size constraints, and input grab state. Always re-reads from the native layer.",
	}, s.handleWindowInfo)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_geometry",
		Description: "Move and/or resize a window. Omitted fields keep their current value; x and y accept integers or the sentinels \"centered\" and \"unspecified\". Returns the resulting geometry.",
	}, s.handleSetGeometry)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_title",
		Description: "Set a window's title (UTF-8, may be empty).",
	}, s.handleSetTitle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_fullscreen",
		Description: "Switch a window between windowed, exclusive fullscreen, and desktop fullscreen. The platform may reject the transition; the window stays valid either way.",
	}, s.handleSetFullscreen)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window opened by open_window, destroying its native resource. Adopted windows are forgotten but left alive.",
	}, s.handleCloseWindow)
}

func (s *Server) handleOpenWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args OpenWindowInput) (*mcpsdk.CallToolResult, OpenWindowOutput, error) {
	x, err := parsePlacement(args.X)
	if err != nil {
		return nil, OpenWindowOutput{}, err
	}
	y, err := parsePlacement(args.Y)
	if err != nil {
		return nil, OpenWindowOutput{}, err
	}
	flags, err := window.ParseFlags(args.Flags)
	if err != nil {
		return nil, OpenWindowOutput{}, err
	}
	if args.Width <= 0 || args.Height <= 0 {
		return nil, OpenWindowOutput{}, fmt.Errorf("window size must be positive, got %dx%d", args.Width, args.Height)
	}

	win, err := window.Create(s.drv, args.Title, x, y, args.Width, args.Height, flags)
	if err != nil {
		return nil, OpenWindowOutput{}, err
	}

	id := s.track(win, false)
	if s.log != nil {
		s.log.Info("window opened", "id", id, "handle", win.Native(), "title", args.Title)
	}
	return nil, OpenWindowOutput{ID: id, Handle: uint32(win.Native())}, nil
}

func (s *Server) handleAdoptActiveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, _ struct{}) (*mcpsdk.CallToolResult, AdoptActiveWindowOutput, error) {
	h, err := s.drv.ActiveWindow()
	if err != nil {
		return nil, AdoptActiveWindowOutput{}, err
	}

	win := window.Adopt(s.drv, h)
	id := s.track(win, true)
	if s.log != nil {
		s.log.Info("window adopted", "id", id, "handle", h)
	}
	return nil, AdoptActiveWindowOutput{
		ID:     id,
		Handle: uint32(h),
		Title:  win.Title(),
	}, nil
}

func (s *Server) handleWindowInfo(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, WindowInfoOutput, error) {
	m, err := s.lookup(args.ID)
	if err != nil {
		return nil, WindowInfoOutput{}, err
	}

	pos := m.win.Position()
	size := m.win.Size()
	minSize := m.win.MinimumSize()
	maxSize := m.win.MaximumSize()
	return nil, WindowInfoOutput{
		ID:        args.ID,
		Handle:    uint32(m.win.Native()),
		Adopted:   m.adopted,
		Title:     m.win.Title(),
		X:         pos.X,
		Y:         pos.Y,
		Width:     size.X,
		Height:    size.Y,
		MinWidth:  minSize.X,
		MinHeight: minSize.Y,
		MaxWidth:  maxSize.X,
		MaxHeight: maxSize.Y,
		Grabbed:   m.win.Grab(),
	}, nil
}

func (s *Server) handleSetGeometry(_ context.Context, _ *mcpsdk.CallToolRequest, args SetGeometryInput) (*mcpsdk.CallToolResult, SetGeometryOutput, error) {
	m, err := s.lookup(args.ID)
	if err != nil {
		return nil, SetGeometryOutput{}, err
	}

	if args.Width != nil || args.Height != nil {
		size := m.win.Size()
		if args.Width != nil {
			size.X = *args.Width
		}
		if args.Height != nil {
			size.Y = *args.Height
		}
		m.win.SetSizePt(size)
	}

	if args.X != nil || args.Y != nil {
		var x, y window.Coord
		if args.X != nil {
			if x, err = parsePlacement(*args.X); err != nil {
				return nil, SetGeometryOutput{}, err
			}
		} else {
			x = window.At(m.win.Position().X)
		}
		if args.Y != nil {
			if y, err = parsePlacement(*args.Y); err != nil {
				return nil, SetGeometryOutput{}, err
			}
		} else {
			y = window.At(m.win.Position().Y)
		}
		m.win.SetPosition(x, y)
	}

	pos := m.win.Position()
	size := m.win.Size()
	return nil, SetGeometryOutput{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}, nil
}

func (s *Server) handleSetTitle(_ context.Context, _ *mcpsdk.CallToolRequest, args SetTitleInput) (*mcpsdk.CallToolResult, SetTitleOutput, error) {
	m, err := s.lookup(args.ID)
	if err != nil {
		return nil, SetTitleOutput{}, err
	}
	m.win.SetTitle(args.Title)
	return nil, SetTitleOutput{Title: m.win.Title()}, nil
}

func (s *Server) handleSetFullscreen(_ context.Context, _ *mcpsdk.CallToolRequest, args SetFullscreenInput) (*mcpsdk.CallToolResult, SetFullscreenOutput, error) {
	m, err := s.lookup(args.ID)
	if err != nil {
		return nil, SetFullscreenOutput{}, err
	}
	mode, err := parseFullscreenMode(args.Mode)
	if err != nil {
		return nil, SetFullscreenOutput{}, err
	}
	if err := m.win.SetFullscreen(mode); err != nil {
		return nil, SetFullscreenOutput{}, err
	}
	return nil, SetFullscreenOutput{Mode: mode.String()}, nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowRef) (*mcpsdk.CallToolResult, CloseWindowOutput, error) {
	s.mu.Lock()
	m, ok := s.windows[args.ID]
	if ok {
		delete(s.windows, args.ID)
	}
	s.mu.Unlock()
	if !ok {
		return nil, CloseWindowOutput{}, fmt.Errorf("unknown window id %d", args.ID)
	}

	// Destroy releases only owned resources; on adopted windows it just
	// empties the wrapper.
	m.win.Destroy()
	if s.log != nil {
		s.log.Info("window closed", "id", args.ID, "destroyed", !m.adopted)
	}
	return nil, CloseWindowOutput{Destroyed: !m.adopted}, nil
}

func (s *Server) track(win *window.Window, adopted bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.windows[s.nextID] = &managed{win: win, adopted: adopted}
	return s.nextID
}

func (s *Server) lookup(id int) (*managed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.windows[id]
	if !ok {
		return nil, fmt.Errorf("unknown window id %d", id)
	}
	return m, nil
}

// parsePlacement maps a tool argument to a tagged coordinate. Empty means
// unspecified.
func parsePlacement(s string) (window.Coord, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return window.Unspecified, nil
	case "centered":
		return window.Centered, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return window.Coord{}, fmt.Errorf("invalid placement %q: expected an integer, \"centered\", or \"unspecified\"", s)
	}
	return window.At(n), nil
}

func parseFullscreenMode(s string) (window.FullscreenMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "windowed":
		return window.FullscreenOff, nil
	case "fullscreen", "exclusive":
		return window.Fullscreen, nil
	case "fullscreen_desktop", "desktop":
		return window.FullscreenDesktop, nil
	}
	return 0, fmt.Errorf("invalid fullscreen mode %q: expected off, fullscreen, or fullscreen_desktop", s)
}
