package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winkit/window"
)

// monitor is one active CRTC and its screen-space bounds.
type monitor struct {
	crtc   randr.Crtc
	x, y   int
	width  int
	height int
}

// monitors retrieves all active monitors using XRandR.
func (d *Driver) monitors() ([]monitor, error) {
	conn := d.xu.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(conn, d.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []monitor
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		monitors = append(monitors, monitor{
			crtc:   crtc,
			x:      int(info.X),
			y:      int(info.Y),
			width:  int(info.Width),
			height: int(info.Height),
		})
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no active monitors found")
	}
	return monitors, nil
}

// monitorFor returns the monitor containing the window's center, falling
// back to the first monitor.
func (d *Driver) monitorFor(h window.Handle) (monitor, error) {
	monitors, err := d.monitors()
	if err != nil {
		return monitor{}, err
	}

	x, y, w, ht, err := d.windowRect(xproto.Window(h))
	if err != nil {
		return monitors[0], nil
	}

	centerX := x + w/2
	centerY := y + ht/2
	for _, mon := range monitors {
		if centerX >= mon.x && centerX < mon.x+mon.width &&
			centerY >= mon.y && centerY < mon.y+mon.height {
			return mon, nil
		}
	}
	return monitors[0], nil
}
