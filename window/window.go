// Package window manages native GUI windows with exclusive, transferable
// ownership and uniform error translation.
//
// A Window wraps exactly one native window handle obtained from a Driver.
// Windows created via Create own their handle and release it exactly once in
// Destroy; windows wrapping a foreign handle via Adopt never release it.
// Ownership moves between instances with TakeFrom, after which the source is
// empty and all destructive operations on it are no-ops.
//
// A Window is not safe for concurrent use without external synchronization;
// every method is a synchronous bounded call into the native layer and no
// state is cached between calls.
package window

import "github.com/1broseidon/winkit/geom"

// noCopy flags copies of Window in go vet's copylocks check. Window moves,
// it never copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Window is an exclusive handle to one native window. The zero value is an
// empty window; use Create or Adopt.
type Window struct {
	noCopy noCopy

	drv  Driver
	h    Handle
	owns bool
}

// Create requests a new native window from drv. x and y may be literal
// coordinates or the Centered/Unspecified sentinels; w and h are the client
// area size in pixels. The returned window owns the native resource and
// releases it in Destroy. On failure no resource is retained.
func Create(drv Driver, title string, x, y Coord, w, h int, flags Flags) (*Window, error) {
	handle, ok := drv.CreateWindow(title, x, y, w, h, flags)
	if err := translate(drv, ok, KindCreation, "create"); err != nil {
		return nil, err
	}
	return &Window{drv: drv, h: handle, owns: true}, nil
}

// Adopt wraps an existing native handle without taking destruction
// responsibility: Destroy on the returned window never releases h. The
// handle must be non-zero and belong to drv; no validation is performed
// here.
func Adopt(drv Driver, h Handle) *Window {
	return &Window{drv: drv, h: h, owns: false}
}

// Destroy releases the native window if this instance owns it, exactly
// once. It is idempotent: calling it on an empty, moved-from, or adopted
// window is a no-op. The window is empty afterwards.
func (w *Window) Destroy() {
	if w.h != 0 && w.owns {
		w.drv.DestroyWindow(w.h)
	}
	w.h = 0
	w.owns = false
}

// TakeFrom transfers src's handle and ownership into w. Any resource w
// currently owns is destroyed first, so move-over-owned never leaks. src is
// empty afterwards and its Destroy becomes a no-op. TakeFrom(w) is a no-op.
func (w *Window) TakeFrom(src *Window) {
	if src == w {
		return
	}
	w.Destroy()
	w.drv = src.drv
	w.h = src.h
	w.owns = src.owns
	src.h = 0
	src.owns = false
}

// Release relinquishes ownership without destroying the native window and
// returns its handle. The window is empty afterwards; the caller is now
// responsible for the resource's lifetime.
func (w *Window) Release() Handle {
	h := w.h
	w.h = 0
	w.owns = false
	return h
}

// Native returns the underlying handle for read-only collaborators, e.g. a
// rendering surface binder. Destruction authority stays with w.
func (w *Window) Native() Handle {
	return w.h
}

// Valid reports whether the window still refers to a native resource.
func (w *Window) Valid() bool {
	return w.h != 0
}

// Size returns the current client area dimensions in pixels.
func (w *Window) Size() geom.Point {
	return w.drv.Size(w.h)
}

// Width returns the current client area width in pixels.
func (w *Window) Width() int {
	return w.drv.Size(w.h).X
}

// Height returns the current client area height in pixels.
func (w *Window) Height() int {
	return w.drv.Size(w.h).Y
}

// SetSize resizes the client area. Zero or negative dimensions are
// platform-defined.
func (w *Window) SetSize(width, height int) {
	w.drv.SetSize(w.h, width, height)
}

// SetSizePt resizes the client area to size.X by size.Y.
func (w *Window) SetSizePt(size geom.Point) {
	w.drv.SetSize(w.h, size.X, size.Y)
}

// Title returns the window title, or "" if none is set.
func (w *Window) Title() string {
	return w.drv.Title(w.h)
}

// SetTitle sets the window title. UTF-8, may be empty.
func (w *Window) SetTitle(title string) {
	w.drv.SetTitle(w.h, title)
}

// Maximize makes the window as large as possible.
func (w *Window) Maximize() {
	w.drv.Maximize(w.h)
}

// Minimize reduces the window to its iconic representation.
func (w *Window) Minimize() {
	w.drv.Minimize(w.h)
}

// Hide makes the window invisible.
func (w *Window) Hide() {
	w.drv.Hide(w.h)
}

// Show makes the window visible.
func (w *Window) Show() {
	w.drv.Show(w.h)
}

// Restore returns a minimized or maximized window to its previous size and
// position.
func (w *Window) Restore() {
	w.drv.Restore(w.h)
}

// Raise places the window above its siblings and requests input focus.
func (w *Window) Raise() {
	w.drv.Raise(w.h)
}

// SetFullscreen switches the window between windowed, exclusive fullscreen,
// and desktop fullscreen. The platform may reject the transition, in which
// case the window keeps its previous state and stays usable.
func (w *Window) SetFullscreen(mode FullscreenMode) error {
	ok := w.drv.SetFullscreen(w.h, mode)
	return translate(w.drv, ok, KindState, "set_fullscreen")
}

// Brightness returns the gamma multiplier of the display holding the
// window, nominally in [0.0, 1.0].
func (w *Window) Brightness() float32 {
	return w.drv.Brightness(w.h)
}

// SetBrightness sets the gamma multiplier of the display holding the
// window. Fails when the platform does not support gamma adjustment.
func (w *Window) SetBrightness(brightness float32) error {
	ok := w.drv.SetBrightness(w.h, brightness)
	return translate(w.drv, ok, KindState, "set_brightness")
}

// Position returns the window position in screen coordinates.
func (w *Window) Position() geom.Point {
	return w.drv.Position(w.h)
}

// SetPosition moves the window. x and y may be literal coordinates or the
// Centered/Unspecified sentinels.
func (w *Window) SetPosition(x, y Coord) {
	w.drv.SetPosition(w.h, x, y)
}

// SetPositionPt moves the window to literal coordinates pos.
func (w *Window) SetPositionPt(pos geom.Point) {
	w.drv.SetPosition(w.h, At(pos.X), At(pos.Y))
}

// MinimumSize returns the minimum client area size; 0 means no constraint.
func (w *Window) MinimumSize() geom.Point {
	return w.drv.MinimumSize(w.h)
}

// SetMinimumSize constrains the minimum client area size; 0 clears the
// constraint on that axis.
func (w *Window) SetMinimumSize(width, height int) {
	w.drv.SetMinimumSize(w.h, width, height)
}

// SetMinimumSizePt constrains the minimum client area size to size.X by
// size.Y.
func (w *Window) SetMinimumSizePt(size geom.Point) {
	w.drv.SetMinimumSize(w.h, size.X, size.Y)
}

// MaximumSize returns the maximum client area size; 0 means no constraint.
func (w *Window) MaximumSize() geom.Point {
	return w.drv.MaximumSize(w.h)
}

// SetMaximumSize constrains the maximum client area size; 0 clears the
// constraint on that axis.
func (w *Window) SetMaximumSize(width, height int) {
	w.drv.SetMaximumSize(w.h, width, height)
}

// SetMaximumSizePt constrains the maximum client area size to size.X by
// size.Y.
func (w *Window) SetMaximumSizePt(size geom.Point) {
	w.drv.SetMaximumSize(w.h, size.X, size.Y)
}

// Grab reports whether the window currently holds the input grab.
func (w *Window) Grab() bool {
	return w.drv.Grab(w.h)
}

// SetGrab confines input to the window (true) or releases it (false).
func (w *Window) SetGrab(grabbed bool) {
	w.drv.SetGrab(w.h, grabbed)
}
