package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/winkit/window"
)

// Brightness estimates the gamma multiplier of the monitor holding the
// window from the top of its current gamma ramp. Returns 1.0 when the ramp
// cannot be read.
func (d *Driver) Brightness(h window.Handle) float32 {
	mon, err := d.monitorFor(h)
	if err != nil {
		d.debug("brightness", err)
		return 1.0
	}

	gamma, err := randr.GetCrtcGamma(d.xu.Conn(), mon.crtc).Reply()
	if err != nil {
		d.debug("brightness", err)
		return 1.0
	}
	if gamma.Size == 0 || len(gamma.Red) == 0 {
		return 1.0
	}
	return float32(gamma.Red[len(gamma.Red)-1]) / 65535.0
}

// SetBrightness scales the gamma ramps of the monitor holding the window.
// The value is clamped to [0, 1]. Fails when the CRTC does not support
// gamma adjustment.
func (d *Driver) SetBrightness(h window.Handle, brightness float32) bool {
	mon, err := d.monitorFor(h)
	if err != nil {
		return d.fail(err)
	}
	conn := d.xu.Conn()

	sizeReply, err := randr.GetCrtcGammaSize(conn, mon.crtc).Reply()
	if err != nil {
		return d.fail(err)
	}
	if sizeReply.Size == 0 {
		return d.failf("gamma adjustment not supported on this display")
	}

	ramp := gammaRamp(int(sizeReply.Size), clamp01(brightness))
	err = randr.SetCrtcGammaChecked(conn, mon.crtc, sizeReply.Size, ramp, ramp, ramp).Check()
	if err != nil {
		return d.fail(fmt.Errorf("failed to set gamma: %w", err))
	}
	return true
}

// gammaRamp builds a linear ramp of the given size scaled by brightness.
func gammaRamp(size int, brightness float32) []uint16 {
	ramp := make([]uint16, size)
	if size == 1 {
		ramp[0] = uint16(65535 * brightness)
		return ramp
	}
	for i := range ramp {
		ramp[i] = uint16(float32(i) / float32(size-1) * 65535.0 * brightness)
	}
	return ramp
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
