package window

import (
	"errors"
	"strings"
	"testing"

	"github.com/1broseidon/winkit/geom"
)

const (
	fakeScreenW = 1920
	fakeScreenH = 1080
)

type fakeWindow struct {
	title      string
	w, h       int
	x, y       int
	minW, minH int
	maxW, maxH int
	fullscreen FullscreenMode
	hidden     bool
}

// fakeDriver is a counting native layer: it records every destroy call and
// injects failures with configurable diagnostics.
type fakeDriver struct {
	nextID  Handle
	windows map[Handle]*fakeWindow

	destroyed    []Handle
	destroyCalls map[Handle]int

	lastErr        string
	failCreate     string // non-empty: CreateWindow fails with this diagnostic
	failFullscreen string // non-empty: SetFullscreen fails with this diagnostic
	failBrightness string // non-empty: SetBrightness fails with this diagnostic

	brightness float32
	grabbed    Handle
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		windows:      make(map[Handle]*fakeWindow),
		destroyCalls: make(map[Handle]int),
		brightness:   1.0,
	}
}

func (d *fakeDriver) fail(msg string) bool {
	d.lastErr = msg
	return false
}

func (d *fakeDriver) CreateWindow(title string, x, y Coord, w, h int, flags Flags) (Handle, bool) {
	if d.failCreate != "" {
		return 0, d.fail(d.failCreate)
	}
	d.nextID++
	d.windows[d.nextID] = &fakeWindow{
		title:  title,
		w:      w,
		h:      h,
		x:      x.Resolve(fakeScreenW, w, 0),
		y:      y.Resolve(fakeScreenH, h, 0),
		hidden: flags.Has(FlagHidden),
	}
	return d.nextID, true
}

func (d *fakeDriver) DestroyWindow(h Handle) {
	d.destroyed = append(d.destroyed, h)
	d.destroyCalls[h]++
	delete(d.windows, h)
}

func (d *fakeDriver) Size(h Handle) geom.Point {
	fw := d.windows[h]
	return geom.Pt(fw.w, fw.h)
}

func (d *fakeDriver) SetSize(h Handle, w, ht int) {
	fw := d.windows[h]
	fw.w, fw.h = w, ht
}

func (d *fakeDriver) Title(h Handle) string {
	return d.windows[h].title
}

func (d *fakeDriver) SetTitle(h Handle, title string) {
	d.windows[h].title = title
}

func (d *fakeDriver) Maximize(h Handle) {
	fw := d.windows[h]
	fw.w, fw.h = fakeScreenW, fakeScreenH
}

func (d *fakeDriver) Minimize(h Handle) { d.windows[h].hidden = true }

func (d *fakeDriver) Hide(h Handle) { d.windows[h].hidden = true }

func (d *fakeDriver) Show(h Handle) { d.windows[h].hidden = false }

func (d *fakeDriver) Restore(h Handle) { d.windows[h].hidden = false }

func (d *fakeDriver) Raise(h Handle) {}

func (d *fakeDriver) SetFullscreen(h Handle, mode FullscreenMode) bool {
	if d.failFullscreen != "" {
		return d.fail(d.failFullscreen)
	}
	d.windows[h].fullscreen = mode
	return true
}

func (d *fakeDriver) Brightness(h Handle) float32 {
	return d.brightness
}

func (d *fakeDriver) SetBrightness(h Handle, brightness float32) bool {
	if d.failBrightness != "" {
		return d.fail(d.failBrightness)
	}
	d.brightness = brightness
	return true
}

func (d *fakeDriver) Position(h Handle) geom.Point {
	fw := d.windows[h]
	return geom.Pt(fw.x, fw.y)
}

func (d *fakeDriver) SetPosition(h Handle, x, y Coord) {
	fw := d.windows[h]
	fw.x = x.Resolve(fakeScreenW, fw.w, fw.x)
	fw.y = y.Resolve(fakeScreenH, fw.h, fw.y)
}

func (d *fakeDriver) MinimumSize(h Handle) geom.Point {
	fw := d.windows[h]
	return geom.Pt(fw.minW, fw.minH)
}

func (d *fakeDriver) SetMinimumSize(h Handle, w, ht int) {
	fw := d.windows[h]
	fw.minW, fw.minH = w, ht
}

func (d *fakeDriver) MaximumSize(h Handle) geom.Point {
	fw := d.windows[h]
	return geom.Pt(fw.maxW, fw.maxH)
}

func (d *fakeDriver) SetMaximumSize(h Handle, w, ht int) {
	fw := d.windows[h]
	fw.maxW, fw.maxH = w, ht
}

func (d *fakeDriver) Grab(h Handle) bool {
	return d.grabbed == h
}

func (d *fakeDriver) SetGrab(h Handle, grabbed bool) {
	if grabbed {
		d.grabbed = h
	} else if d.grabbed == h {
		d.grabbed = 0
	}
}

func (d *fakeDriver) LastError() string {
	return d.lastErr
}

var _ Driver = (*fakeDriver)(nil)

func mustCreate(t *testing.T, d *fakeDriver, title string) *Window {
	t.Helper()
	w, err := Create(d, title, Unspecified, Unspecified, 640, 480, 0)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return w
}

func TestCreate_ReturnsUsableHandle(t *testing.T) {
	d := newFakeDriver()
	w, err := Create(d, "main", At(10), At(20), 640, 480, FlagResizable)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !w.Valid() {
		t.Fatalf("expected valid window after create")
	}
	if got := w.Size(); got != geom.Pt(640, 480) {
		t.Fatalf("expected size (640,480), got %v", got)
	}
	if got := w.Position(); got != geom.Pt(10, 20) {
		t.Fatalf("expected position (10,20), got %v", got)
	}
	w.Destroy()
}

func TestCreate_FailureLeavesNoPartialState(t *testing.T) {
	d := newFakeDriver()
	d.failCreate = "no available video device"

	w, err := Create(d, "main", Centered, Centered, 640, 480, 0)
	if err == nil {
		t.Fatalf("expected creation error")
	}
	if w != nil {
		t.Fatalf("expected nil window on failed create, got %v", w)
	}
	if !errors.Is(err, ErrCreation) {
		t.Fatalf("expected ErrCreation match, got %v", err)
	}
	if errors.Is(err, ErrState) {
		t.Fatalf("creation failure must not match ErrState")
	}
	if !strings.Contains(err.Error(), "no available video device") {
		t.Fatalf("expected diagnostic in error, got %q", err.Error())
	}
	if len(d.windows) != 0 {
		t.Fatalf("expected no native window retained, got %d", len(d.windows))
	}
}

func TestCreate_CenteredSentinel(t *testing.T) {
	d := newFakeDriver()
	w, err := Create(d, "main", Centered, Centered, 640, 480, 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer w.Destroy()

	want := geom.Pt((fakeScreenW-640)/2, (fakeScreenH-480)/2)
	if got := w.Position(); got != want {
		t.Fatalf("expected centered position %v, got %v", want, got)
	}
}

func TestDestroy_ReleasesExactlyOnce(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	h := w.Native()

	w.Destroy()
	w.Destroy()
	w.Destroy()

	if got := d.destroyCalls[h]; got != 1 {
		t.Fatalf("expected exactly 1 destroy call, got %d", got)
	}
	if w.Valid() {
		t.Fatalf("expected window to be empty after destroy")
	}
}

func TestTakeFrom_SourceLosesOwnership(t *testing.T) {
	d := newFakeDriver()
	a := mustCreate(t, d, "main")
	h := a.Native()

	var b Window
	b.TakeFrom(a)

	if a.Valid() {
		t.Fatalf("expected source to be empty after move")
	}
	a.Destroy()
	if got := d.destroyCalls[h]; got != 0 {
		t.Fatalf("moved-from destroy must be a no-op, got %d destroy calls", got)
	}

	b.Destroy()
	if got := d.destroyCalls[h]; got != 1 {
		t.Fatalf("expected exactly 1 destroy call across both lifetimes, got %d", got)
	}
}

func TestTakeFrom_OverwriteDestroysHeldResourceFirst(t *testing.T) {
	d := newFakeDriver()
	a := mustCreate(t, d, "a")
	b := mustCreate(t, d, "b")
	ha, hb := a.Native(), b.Native()

	// Moving a into b must release b's prior resource immediately.
	b.TakeFrom(a)
	if len(d.destroyed) != 1 || d.destroyed[0] != hb {
		t.Fatalf("expected [%d] destroyed after move, got %v", hb, d.destroyed)
	}
	if b.Native() != ha {
		t.Fatalf("expected b to hold %d, got %d", ha, b.Native())
	}

	a.Destroy()
	b.Destroy()

	if len(d.destroyed) != 2 {
		t.Fatalf("expected 2 destroy calls total, got %v", d.destroyed)
	}
	if d.destroyed[1] != ha {
		t.Fatalf("expected %d destroyed at teardown, got %v", ha, d.destroyed)
	}
	if d.destroyCalls[ha] != 1 || d.destroyCalls[hb] != 1 {
		t.Fatalf("each resource must be destroyed exactly once, got %v", d.destroyCalls)
	}
}

func TestTakeFrom_SelfIsNoop(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	h := w.Native()

	w.TakeFrom(w)

	if !w.Valid() || w.Native() != h {
		t.Fatalf("self move must keep the handle, got %d", w.Native())
	}
	if len(d.destroyed) != 0 {
		t.Fatalf("self move must not destroy, got %v", d.destroyed)
	}
	w.Destroy()
}

func TestTakeFrom_PreservesAdoptedNonOwnership(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "foreign")
	h := w.Release() // keep the fake window alive, owned by "someone else"

	a := Adopt(d, h)
	var b Window
	b.TakeFrom(a)

	a.Destroy()
	b.Destroy()
	if len(d.destroyed) != 0 {
		t.Fatalf("moved adopted handle must never be destroyed, got %v", d.destroyed)
	}
}

func TestAdopt_NeverDestroys(t *testing.T) {
	d := newFakeDriver()
	owner := mustCreate(t, d, "owner")
	h := owner.Native()

	wrapper := Adopt(d, h)
	if !wrapper.Valid() || wrapper.Native() != h {
		t.Fatalf("expected wrapper around %d, got %d", h, wrapper.Native())
	}
	wrapper.SetTitle("renamed")
	wrapper.Destroy()

	if got := d.destroyCalls[h]; got != 0 {
		t.Fatalf("adopted window must not destroy, got %d destroy calls", got)
	}
	if got := owner.Title(); got != "renamed" {
		t.Fatalf("expected mutation through wrapper to stick, got %q", got)
	}
	owner.Destroy()
}

func TestRelease_TransfersWithoutDestroy(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	h := w.Native()

	got := w.Release()
	if got != h {
		t.Fatalf("expected released handle %d, got %d", h, got)
	}
	if w.Valid() {
		t.Fatalf("expected window to be empty after release")
	}
	w.Destroy()
	if len(d.destroyed) != 0 {
		t.Fatalf("release must suppress destruction, got %v", d.destroyed)
	}
}

func TestSetSize_GetSizeRoundTrip(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	w.SetSize(800, 600)
	if got := w.Size(); got != geom.Pt(800, 600) {
		t.Fatalf("expected (800,600), got %v", got)
	}
	if w.Width() != 800 || w.Height() != 600 {
		t.Fatalf("expected width/height 800/600, got %d/%d", w.Width(), w.Height())
	}

	w.SetSizePt(geom.Pt(1024, 768))
	if got := w.Size(); got != geom.Pt(1024, 768) {
		t.Fatalf("expected (1024,768), got %v", got)
	}
}

func TestSetTitle_UTF8RoundTrip(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	const title = "héllo"
	w.SetTitle(title)
	if got := w.Title(); got != title {
		t.Fatalf("expected title %q, got %q", title, got)
	}

	w.SetTitle("")
	if got := w.Title(); got != "" {
		t.Fatalf("expected empty title, got %q", got)
	}
}

func TestSetFullscreen_RejectionIsStateError(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	d.failFullscreen = "exclusive fullscreen not supported on this display"
	err := w.SetFullscreen(Fullscreen)
	if err == nil {
		t.Fatalf("expected state error")
	}
	if !errors.Is(err, ErrState) {
		t.Fatalf("expected ErrState match, got %v", err)
	}
	if !strings.Contains(err.Error(), "exclusive fullscreen not supported") {
		t.Fatalf("expected injected diagnostic, got %q", err.Error())
	}

	// The window is still valid and usable after a rejected transition.
	d.failFullscreen = ""
	if err := w.SetFullscreen(FullscreenDesktop); err != nil {
		t.Fatalf("expected fullscreen_desktop to succeed after rejection: %v", err)
	}
	w.SetTitle("still alive")
	if got := w.Title(); got != "still alive" {
		t.Fatalf("expected window usable after rejection, got title %q", got)
	}
}

func TestErrorDiagnostic_CapturedAtFailureSite(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	d.failFullscreen = "first diagnostic"
	err := w.SetFullscreen(Fullscreen)

	// A later failing call overwrites the driver's last-error text; the
	// earlier error keeps the text captured when it failed.
	d.failBrightness = "second diagnostic"
	_ = w.SetBrightness(0.5)

	var werr *Error
	if !errors.As(err, &werr) {
		t.Fatalf("expected *window.Error, got %T", err)
	}
	if werr.Detail != "first diagnostic" {
		t.Fatalf("expected diagnostic captured at failure, got %q", werr.Detail)
	}
}

func TestSetBrightness(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	if err := w.SetBrightness(0.25); err != nil {
		t.Fatalf("set brightness: %v", err)
	}
	if got := w.Brightness(); got != 0.25 {
		t.Fatalf("expected brightness 0.25, got %v", got)
	}

	d.failBrightness = "gamma adjustment not supported"
	err := w.SetBrightness(0.5)
	if !errors.Is(err, ErrState) {
		t.Fatalf("expected ErrState, got %v", err)
	}
}

func TestSetPosition_SentinelsAndLiterals(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	w.SetPosition(At(100), At(-50))
	if got := w.Position(); got != geom.Pt(100, -50) {
		t.Fatalf("expected (100,-50), got %v", got)
	}

	w.SetSize(640, 480)
	w.SetPosition(Centered, Unspecified)
	want := geom.Pt((fakeScreenW-640)/2, -50)
	if got := w.Position(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	w.SetPositionPt(geom.Pt(7, 9))
	if got := w.Position(); got != geom.Pt(7, 9) {
		t.Fatalf("expected (7,9), got %v", got)
	}
}

func TestMinimumMaximumSize(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	w.SetMinimumSize(320, 240)
	if got := w.MinimumSize(); got != geom.Pt(320, 240) {
		t.Fatalf("expected min (320,240), got %v", got)
	}

	w.SetMaximumSizePt(geom.Pt(1600, 1200))
	if got := w.MaximumSize(); got != geom.Pt(1600, 1200) {
		t.Fatalf("expected max (1600,1200), got %v", got)
	}

	// 0 clears the constraint.
	w.SetMinimumSize(0, 0)
	if got := w.MinimumSize(); got != geom.Pt(0, 0) {
		t.Fatalf("expected cleared min, got %v", got)
	}
}

func TestGrabRoundTrip(t *testing.T) {
	d := newFakeDriver()
	w := mustCreate(t, d, "main")
	defer w.Destroy()

	if w.Grab() {
		t.Fatalf("expected no grab initially")
	}
	w.SetGrab(true)
	if !w.Grab() {
		t.Fatalf("expected grab after SetGrab(true)")
	}
	w.SetGrab(false)
	if w.Grab() {
		t.Fatalf("expected no grab after SetGrab(false)")
	}
}
