package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"

	"github.com/1broseidon/winkit/geom"
	"github.com/1broseidon/winkit/window"
)

// MinimumSize returns the WM_NORMAL_HINTS minimum size, (0,0) when no
// constraint is set.
func (d *Driver) MinimumSize(h window.Handle) geom.Point {
	hints, err := icccm.WmNormalHintsGet(d.xu, xproto.Window(h))
	if err != nil || hints.Flags&icccm.SizeHintPMinSize == 0 {
		return geom.Point{}
	}
	return geom.Pt(int(hints.MinWidth), int(hints.MinHeight))
}

// SetMinimumSize sets the WM_NORMAL_HINTS minimum size; 0,0 clears the
// constraint.
func (d *Driver) SetMinimumSize(h window.Handle, w, ht int) {
	d.updateNormalHints(xproto.Window(h), func(hints *icccm.NormalHints) {
		if w <= 0 && ht <= 0 {
			hints.Flags &^= icccm.SizeHintPMinSize
			hints.MinWidth, hints.MinHeight = 0, 0
			return
		}
		hints.Flags |= icccm.SizeHintPMinSize
		hints.MinWidth, hints.MinHeight = uint(max(w, 0)), uint(max(ht, 0))
	})
}

// MaximumSize returns the WM_NORMAL_HINTS maximum size, (0,0) when no
// constraint is set.
func (d *Driver) MaximumSize(h window.Handle) geom.Point {
	hints, err := icccm.WmNormalHintsGet(d.xu, xproto.Window(h))
	if err != nil || hints.Flags&icccm.SizeHintPMaxSize == 0 {
		return geom.Point{}
	}
	return geom.Pt(int(hints.MaxWidth), int(hints.MaxHeight))
}

// SetMaximumSize sets the WM_NORMAL_HINTS maximum size; 0,0 clears the
// constraint.
func (d *Driver) SetMaximumSize(h window.Handle, w, ht int) {
	d.updateNormalHints(xproto.Window(h), func(hints *icccm.NormalHints) {
		if w <= 0 && ht <= 0 {
			hints.Flags &^= icccm.SizeHintPMaxSize
			hints.MaxWidth, hints.MaxHeight = 0, 0
			return
		}
		hints.Flags |= icccm.SizeHintPMaxSize
		hints.MaxWidth, hints.MaxHeight = uint(max(w, 0)), uint(max(ht, 0))
	})
}

// setPositionHint marks the window's placement as user-specified so the WM
// honors it instead of re-placing on map.
func (d *Driver) setPositionHint(win xproto.Window, x, y int) {
	d.updateNormalHints(win, func(hints *icccm.NormalHints) {
		hints.Flags |= icccm.SizeHintUSPosition
		hints.X, hints.Y = x, y
	})
}

// lockSize pins the minimum and maximum size to the current size, the X11
// idiom for a non-resizable window.
func (d *Driver) lockSize(win xproto.Window, w, ht int) {
	d.updateNormalHints(win, func(hints *icccm.NormalHints) {
		hints.Flags |= icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		hints.MinWidth, hints.MinHeight = uint(w), uint(ht)
		hints.MaxWidth, hints.MaxHeight = uint(w), uint(ht)
	})
}

// setBorderless asks the WM to draw no decorations, via Motif WM hints.
func (d *Driver) setBorderless(win xproto.Window) {
	hints := &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	}
	d.debug("set_borderless", motif.WmHintsSet(d.xu, win, hints))
}

// updateNormalHints applies a read-modify-write on WM_NORMAL_HINTS. A
// missing property starts from empty hints.
func (d *Driver) updateNormalHints(win xproto.Window, f func(*icccm.NormalHints)) {
	hints, err := icccm.WmNormalHintsGet(d.xu, win)
	if err != nil {
		hints = &icccm.NormalHints{}
	}
	f(hints)
	d.debug("set_normal_hints", icccm.WmNormalHintsSet(d.xu, win, hints))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
