package mcp

// OpenWindowInput is the input for the open_window tool.
type OpenWindowInput struct {
	Title  string   `json:"title,omitempty" jsonschema:"Window title (UTF-8, may be empty)"`
	X      string   `json:"x,omitempty" jsonschema:"X placement: an integer, \"centered\", or \"unspecified\" (default)"`
	Y      string   `json:"y,omitempty" jsonschema:"Y placement: an integer, \"centered\", or \"unspecified\" (default)"`
	Width  int      `json:"width" jsonschema:"required,Client area width in pixels (positive)"`
	Height int      `json:"height" jsonschema:"required,Client area height in pixels (positive)"`
	Flags  []string `json:"flags,omitempty" jsonschema:"Window flags: fullscreen, fullscreen_desktop, hidden, borderless, resizable, minimized, maximized, input_grabbed"`
}

// OpenWindowOutput is the output for the open_window tool.
type OpenWindowOutput struct {
	ID     int    `json:"id"`
	Handle uint32 `json:"handle"`
}

// AdoptActiveWindowOutput is the output for the adopt_active_window tool.
type AdoptActiveWindowOutput struct {
	ID     int    `json:"id"`
	Handle uint32 `json:"handle"`
	Title  string `json:"title"`
}

// WindowRef selects a window previously returned by open_window or
// adopt_active_window.
type WindowRef struct {
	ID int `json:"id" jsonschema:"required,Window id returned by open_window or adopt_active_window"`
}

// WindowInfoOutput is the output for the window_info tool.
type WindowInfoOutput struct {
	ID        int    `json:"id"`
	Handle    uint32 `json:"handle"`
	Adopted   bool   `json:"adopted"`
	Title     string `json:"title"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MinWidth  int    `json:"min_width"`
	MinHeight int    `json:"min_height"`
	MaxWidth  int    `json:"max_width"`
	MaxHeight int    `json:"max_height"`
	Grabbed   bool   `json:"grabbed"`
}

// SetGeometryInput is the input for the set_geometry tool. Omitted fields
// keep their current value.
type SetGeometryInput struct {
	ID     int     `json:"id" jsonschema:"required,Window id"`
	X      *string `json:"x,omitempty" jsonschema:"X placement: an integer, \"centered\", or \"unspecified\""`
	Y      *string `json:"y,omitempty" jsonschema:"Y placement: an integer, \"centered\", or \"unspecified\""`
	Width  *int    `json:"width,omitempty" jsonschema:"New client area width in pixels"`
	Height *int    `json:"height,omitempty" jsonschema:"New client area height in pixels"`
}

// SetGeometryOutput is the output for the set_geometry tool.
type SetGeometryOutput struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SetTitleInput is the input for the set_title tool.
type SetTitleInput struct {
	ID    int    `json:"id" jsonschema:"required,Window id"`
	Title string `json:"title" jsonschema:"required,New window title (UTF-8)"`
}

// SetTitleOutput is the output for the set_title tool.
type SetTitleOutput struct {
	Title string `json:"title"`
}

// SetFullscreenInput is the input for the set_fullscreen tool.
type SetFullscreenInput struct {
	ID   int    `json:"id" jsonschema:"required,Window id"`
	Mode string `json:"mode" jsonschema:"required,Fullscreen mode: off, fullscreen, or fullscreen_desktop"`
}

// SetFullscreenOutput is the output for the set_fullscreen tool.
type SetFullscreenOutput struct {
	Mode string `json:"mode"`
}

// CloseWindowOutput is the output for the close_window tool.
type CloseWindowOutput struct {
	// Destroyed is true when the native window was released; adopted
	// windows are only forgotten, never destroyed.
	Destroyed bool `json:"destroyed"`
}
