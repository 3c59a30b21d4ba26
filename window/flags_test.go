package window

import (
	"reflect"
	"testing"
)

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"resizable", "hidden", "input_grabbed"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := FlagResizable | FlagHidden | FlagInputGrabbed
	if f != want {
		t.Fatalf("expected %v, got %v", want, f)
	}
	if !f.Has(FlagHidden) {
		t.Fatalf("expected hidden to be set")
	}
	if f.Has(FlagBorderless) {
		t.Fatalf("expected borderless to be unset")
	}
}

func TestParseFlags_NormalizesInput(t *testing.T) {
	f, err := ParseFlags([]string{" Maximized ", "BORDERLESS"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f != FlagMaximized|FlagBorderless {
		t.Fatalf("expected maximized|borderless, got %v", f)
	}
}

func TestParseFlags_UnknownName(t *testing.T) {
	if _, err := ParseFlags([]string{"resizable", "translucent"}); err == nil {
		t.Fatalf("expected error for unknown flag name")
	}
}

func TestFlagNames_StableOrder(t *testing.T) {
	f := FlagInputGrabbed | FlagBorderless | FlagResizable
	want := []string{"borderless", "input_grabbed", "resizable"}
	if got := f.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlagsString(t *testing.T) {
	if got := Flags(0).String(); got != "none" {
		t.Fatalf("expected none, got %q", got)
	}
	if got := (FlagHidden | FlagResizable).String(); got != "hidden|resizable" {
		t.Fatalf("expected hidden|resizable, got %q", got)
	}
}

func TestFlagNameRoundTrip(t *testing.T) {
	for bit, name := range flagNames {
		parsed, err := ParseFlag(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if parsed != bit {
			t.Fatalf("expected %q to parse to %v, got %v", name, bit, parsed)
		}
	}
}
