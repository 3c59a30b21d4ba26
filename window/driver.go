package window

import "github.com/1broseidon/winkit/geom"

// Handle is a platform-neutral identifier for one native window. The zero
// value marks an empty (moved-from or destroyed) handle and never refers to
// a real window.
type Handle uint32

// Driver abstracts the native windowing capability. It mirrors how such
// toolkits report failure: fallible calls return an ok status and leave a
// diagnostic readable via LastError until the next failing call overwrites
// it. Calls with no documented failure mode return their result directly.
//
// A Driver must be opened by the caller before any window is created or
// adopted through it and must outlive every window built on it. Window never
// opens or closes the driver.
type Driver interface {
	// CreateWindow requests a new native window. On failure it returns
	// ok=false and records a diagnostic; no partial window remains.
	CreateWindow(title string, x, y Coord, w, h int, flags Flags) (Handle, bool)
	// DestroyWindow releases the native window. Only ever called once per
	// handle by the owning Window.
	DestroyWindow(h Handle)

	Size(h Handle) geom.Point
	SetSize(h Handle, w, ht int)

	Title(h Handle) string
	SetTitle(h Handle, title string)

	Maximize(h Handle)
	Minimize(h Handle)
	Hide(h Handle)
	Show(h Handle)
	Restore(h Handle)
	Raise(h Handle)

	SetFullscreen(h Handle, mode FullscreenMode) bool

	Brightness(h Handle) float32
	SetBrightness(h Handle, brightness float32) bool

	Position(h Handle) geom.Point
	SetPosition(h Handle, x, y Coord)

	MinimumSize(h Handle) geom.Point
	SetMinimumSize(h Handle, w, ht int)
	MaximumSize(h Handle) geom.Point
	SetMaximumSize(h Handle, w, ht int)

	Grab(h Handle) bool
	SetGrab(h Handle, grabbed bool)

	// LastError returns the diagnostic recorded by the most recent failing
	// call. It is only meaningful immediately after a call reported failure.
	LastError() string
}
