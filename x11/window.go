package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winkit/geom"
	"github.com/1broseidon/winkit/window"
)

// _NET_WM_STATE actions.
const (
	stateRemove = 0
	stateAdd    = 1
)

// CreateWindow creates and (unless hidden) maps a top-level window. Hard
// failures during creation leave no window behind; post-map state requests
// are best effort, matching how X window managers treat them.
func (d *Driver) CreateWindow(title string, x, y window.Coord, w, h int, flags window.Flags) (window.Handle, bool) {
	if w <= 0 || h <= 0 {
		return 0, d.failf("invalid window size %dx%d", w, h)
	}

	win, err := xwindow.Generate(d.xu)
	if err != nil {
		return 0, d.fail(err)
	}

	screen := d.xu.Screen()
	px := x.Resolve(int(screen.WidthInPixels), w, 0)
	py := y.Resolve(int(screen.HeightInPixels), h, 0)

	err = win.CreateChecked(d.root, px, py, w, h,
		xproto.CwBackPixel|xproto.CwEventMask,
		screen.BlackPixel, xproto.EventMaskStructureNotify)
	if err != nil {
		return 0, d.fail(err)
	}
	handle := window.Handle(win.Id)

	d.SetTitle(handle, title)

	// Tell the WM explicit placement is intentional, or it will re-place
	// the window on map.
	if !x.IsUnspecified() || !y.IsUnspecified() {
		d.setPositionHint(win.Id, px, py)
	}
	if flags.Has(window.FlagBorderless) {
		d.setBorderless(win.Id)
	}
	if !flags.Has(window.FlagResizable) {
		d.lockSize(win.Id, w, h)
	}

	if !flags.Has(window.FlagHidden) {
		win.Map()
	}
	if flags.Has(window.FlagMaximized) {
		d.Maximize(handle)
	}
	if flags.Has(window.FlagMinimized) {
		d.Minimize(handle)
	}
	switch {
	case flags.Has(window.FlagFullscreen):
		d.SetFullscreen(handle, window.Fullscreen)
	case flags.Has(window.FlagFullscreenDesktop):
		d.SetFullscreen(handle, window.FullscreenDesktop)
	}
	if flags.Has(window.FlagInputGrabbed) {
		d.SetGrab(handle, true)
	}

	return handle, true
}

// DestroyWindow releases the native window. Called exactly once per handle
// by the owning window.
func (d *Driver) DestroyWindow(h window.Handle) {
	if d.grabbed == h {
		d.SetGrab(h, false)
	}
	xwindow.New(d.xu, xproto.Window(h)).Destroy()
}

// Size returns the current client area dimensions.
func (d *Driver) Size(h window.Handle) geom.Point {
	reply, err := xproto.GetGeometry(d.xu.Conn(), xproto.Drawable(h)).Reply()
	if err != nil {
		d.debug("size", err)
		return geom.Point{}
	}
	return geom.Pt(int(reply.Width), int(reply.Height))
}

// SetSize resizes the client area without moving the window.
func (d *Driver) SetSize(h window.Handle, w, ht int) {
	xwindow.New(d.xu, xproto.Window(h)).Resize(w, ht)
}

// Title returns the window title, preferring the EWMH name over the legacy
// ICCCM one.
func (d *Driver) Title(h window.Handle) string {
	win := xproto.Window(h)
	if title, err := ewmh.WmNameGet(d.xu, win); err == nil && title != "" {
		return title
	}
	if title, err := icccm.WmNameGet(d.xu, win); err == nil {
		return title
	}
	return ""
}

// SetTitle sets both the EWMH and ICCCM window names.
func (d *Driver) SetTitle(h window.Handle, title string) {
	win := xproto.Window(h)
	d.debug("set_title", ewmh.WmNameSet(d.xu, win, title))
	d.debug("set_title", icccm.WmNameSet(d.xu, win, title))
}

// Maximize requests both maximized states from the WM.
func (d *Driver) Maximize(h window.Handle) {
	win := xproto.Window(h)
	d.debug("maximize", ewmh.WmStateReq(d.xu, win, stateAdd, "_NET_WM_STATE_MAXIMIZED_VERT"))
	d.debug("maximize", ewmh.WmStateReq(d.xu, win, stateAdd, "_NET_WM_STATE_MAXIMIZED_HORZ"))
}

// Minimize iconifies the window via WM_CHANGE_STATE.
func (d *Driver) Minimize(h window.Handle) {
	conn := d.xu.Conn()
	reply, err := xproto.InternAtom(conn, false, uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		d.debug("minimize", err)
		return
	}

	const iconicState = 3
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(h),
		Type:   reply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}

	d.debug("minimize", xproto.SendEventChecked(
		conn,
		false,
		d.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check())
}

// Hide unmaps the window.
func (d *Driver) Hide(h window.Handle) {
	xwindow.New(d.xu, xproto.Window(h)).Unmap()
}

// Show maps the window.
func (d *Driver) Show(h window.Handle) {
	xwindow.New(d.xu, xproto.Window(h)).Map()
}

// Restore drops the maximized and hidden states and remaps the window.
func (d *Driver) Restore(h window.Handle) {
	win := xproto.Window(h)
	d.debug("restore", ewmh.WmStateReq(d.xu, win, stateRemove, "_NET_WM_STATE_MAXIMIZED_VERT"))
	d.debug("restore", ewmh.WmStateReq(d.xu, win, stateRemove, "_NET_WM_STATE_MAXIMIZED_HORZ"))
	d.debug("restore", ewmh.WmStateReq(d.xu, win, stateRemove, "_NET_WM_STATE_HIDDEN"))
	xwindow.New(d.xu, win).Map()
}

// Raise stacks the window above its siblings.
func (d *Driver) Raise(h window.Handle) {
	xwindow.New(d.xu, xproto.Window(h)).Stack(xproto.StackModeAbove)
}

// SetFullscreen switches the fullscreen state. Desktop mode first resizes
// the window to the bounds of its monitor.
func (d *Driver) SetFullscreen(h window.Handle, mode window.FullscreenMode) bool {
	win := xproto.Window(h)
	switch mode {
	case window.FullscreenOff:
		if err := ewmh.WmStateReq(d.xu, win, stateRemove, "_NET_WM_STATE_FULLSCREEN"); err != nil {
			return d.fail(err)
		}
	case window.Fullscreen, window.FullscreenDesktop:
		if mode == window.FullscreenDesktop {
			mon, err := d.monitorFor(h)
			if err != nil {
				return d.fail(err)
			}
			xwindow.New(d.xu, win).MoveResize(mon.x, mon.y, mon.width, mon.height)
		}
		if err := ewmh.WmStateReq(d.xu, win, stateAdd, "_NET_WM_STATE_FULLSCREEN"); err != nil {
			return d.fail(err)
		}
	default:
		return d.failf("unsupported fullscreen mode %d", mode)
	}
	return true
}

// Position returns the window position in root coordinates.
func (d *Driver) Position(h window.Handle) geom.Point {
	x, y, _, _, err := d.windowRect(xproto.Window(h))
	if err != nil {
		d.debug("position", err)
		return geom.Point{}
	}
	return geom.Pt(x, y)
}

// SetPosition moves the window, resolving placement sentinels against the
// screen and the current geometry.
func (d *Driver) SetPosition(h window.Handle, x, y window.Coord) {
	win := xproto.Window(h)
	curX, curY, w, ht, err := d.windowRect(win)
	if err != nil {
		d.debug("set_position", err)
		return
	}

	screen := d.xu.Screen()
	px := x.Resolve(int(screen.WidthInPixels), w, curX)
	py := y.Resolve(int(screen.HeightInPixels), ht, curY)
	xwindow.New(d.xu, win).Move(px, py)
}

// Grab reports whether the window holds the pointer grab.
func (d *Driver) Grab(h window.Handle) bool {
	return d.grabbed == h
}

// SetGrab acquires or releases the pointer grab, confining the pointer to
// the window while held.
func (d *Driver) SetGrab(h window.Handle, grabbed bool) {
	conn := d.xu.Conn()
	win := xproto.Window(h)

	if !grabbed {
		if d.grabbed == h {
			xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
			d.grabbed = 0
		}
		return
	}

	mask := uint16(xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskPointerMotion)
	reply, err := xproto.GrabPointer(conn, true, win, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		win, xproto.Cursor(0), xproto.TimeCurrentTime).Reply()
	if err != nil {
		d.debug("set_grab", err)
		return
	}
	if reply.Status != xproto.GrabStatusSuccess {
		d.debug("set_grab", grabStatusError(reply.Status))
		return
	}
	d.grabbed = h
}

// windowRect returns position in root coordinates plus size, accounting for
// reparenting window managers.
func (d *Driver) windowRect(win xproto.Window) (x, y, w, h int, err error) {
	conn := d.xu.Conn()

	geomReply, err := xproto.GetGeometry(conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	translate, err := xproto.TranslateCoordinates(conn, win, d.root, 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return int(translate.DstX), int(translate.DstY),
		int(geomReply.Width), int(geomReply.Height), nil
}
