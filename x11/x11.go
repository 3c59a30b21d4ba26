// Package x11 implements the native window driver on top of the X11
// protocol via xgb and xgbutil.
//
// A Driver wraps one X connection. Callers open it before creating or
// adopting windows and close it after the last window is gone; windows built
// on the driver never own the connection.
package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/winkit/window"
)

// Driver is the X11 implementation of window.Driver. It is not safe for
// concurrent use; callers serialize access the same way they serialize
// access to the windows built on it.
type Driver struct {
	xu   *xgbutil.XUtil
	root xproto.Window
	log  *slog.Logger

	// lastErr holds the diagnostic of the most recent failing call, read
	// back by the window layer's error translation.
	lastErr string

	// grabbed is the window currently holding the pointer grab, 0 if none.
	// X has no query for "who holds the grab", so the driver tracks it.
	grabbed window.Handle
}

var _ window.Driver = (*Driver)(nil)

// Option configures a Driver.
type Option func(*Driver)

// WithLogger routes debug diagnostics for calls the window layer treats as
// infallible. Without it those diagnostics are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(d *Driver) {
		d.log = log
	}
}

// Open connects to the X server. An empty display uses $DISPLAY.
func Open(display string, opts ...Option) (*Driver, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	d := &Driver{
		xu:   xu,
		root: xu.RootWin(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Close disconnects from the X server. All windows built on the driver must
// be gone first.
func (d *Driver) Close() {
	d.xu.Conn().Close()
}

// ActiveWindow returns the currently focused window, for adoption.
func (d *Driver) ActiveWindow() (window.Handle, error) {
	wid, err := ewmh.ActiveWindowGet(d.xu)
	if err != nil {
		return 0, fmt.Errorf("failed to query active window: %w", err)
	}
	if wid == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return window.Handle(wid), nil
}

// LastError returns the diagnostic recorded by the most recent failing call.
func (d *Driver) LastError() string {
	return d.lastErr
}

// fail records err as the current diagnostic and reports failure.
func (d *Driver) fail(err error) bool {
	d.lastErr = err.Error()
	return false
}

// failf is fail with a formatted diagnostic.
func (d *Driver) failf(format string, args ...any) bool {
	d.lastErr = fmt.Sprintf(format, args...)
	return false
}

// debug logs a failure of a call the window layer does not check.
func (d *Driver) debug(op string, err error) {
	if err != nil && d.log != nil {
		d.log.Debug("x11 call failed", "op", op, "error", err)
	}
}

func grabStatusError(status byte) error {
	switch status {
	case xproto.GrabStatusAlreadyGrabbed:
		return fmt.Errorf("pointer already grabbed")
	case xproto.GrabStatusInvalidTime:
		return fmt.Errorf("grab rejected: invalid time")
	case xproto.GrabStatusNotViewable:
		return fmt.Errorf("grab rejected: window not viewable")
	case xproto.GrabStatusFrozen:
		return fmt.Errorf("grab rejected: pointer frozen")
	}
	return fmt.Errorf("grab rejected: status %d", status)
}
