package x11

import "testing"

func TestGammaRamp_FullBrightness(t *testing.T) {
	ramp := gammaRamp(256, 1.0)
	if len(ramp) != 256 {
		t.Fatalf("expected 256 entries, got %d", len(ramp))
	}
	if ramp[0] != 0 {
		t.Fatalf("expected ramp to start at 0, got %d", ramp[0])
	}
	if ramp[255] != 65535 {
		t.Fatalf("expected ramp to end at 65535, got %d", ramp[255])
	}
	for i := 1; i < len(ramp); i++ {
		if ramp[i] < ramp[i-1] {
			t.Fatalf("ramp not monotonic at %d: %d < %d", i, ramp[i], ramp[i-1])
		}
	}
}

func TestGammaRamp_Scaled(t *testing.T) {
	ramp := gammaRamp(256, 0.5)
	if got, want := ramp[255], uint16(65535/2); got < want-1 || got > want+1 {
		t.Fatalf("expected top of ramp near %d, got %d", want, got)
	}
}

func TestGammaRamp_SingleEntry(t *testing.T) {
	ramp := gammaRamp(1, 1.0)
	if len(ramp) != 1 || ramp[0] != 65535 {
		t.Fatalf("expected [65535], got %v", ramp)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in   float32
		want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.7, 0.7},
		{1, 1},
		{2.5, 1},
	}
	for _, tc := range cases {
		if got := clamp01(tc.in); got != tc.want {
			t.Fatalf("clamp01(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
