package window

import (
	"fmt"
	"sort"
	"strings"
)

// Flags is a bitmask of presentation attributes applied at window creation.
// Bits are passed through to the driver opaquely; a driver ignores bits it
// cannot honor.
type Flags uint32

const (
	FlagFullscreen Flags = 1 << iota
	FlagFullscreenDesktop
	FlagHidden
	FlagBorderless
	FlagResizable
	FlagMinimized
	FlagMaximized
	FlagInputGrabbed
)

var flagNames = map[Flags]string{
	FlagFullscreen:        "fullscreen",
	FlagFullscreenDesktop: "fullscreen_desktop",
	FlagHidden:            "hidden",
	FlagBorderless:        "borderless",
	FlagResizable:         "resizable",
	FlagMinimized:         "minimized",
	FlagMaximized:         "maximized",
	FlagInputGrabbed:      "input_grabbed",
}

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Names returns the set flag names in stable order, for config and logs.
func (f Flags) Names() []string {
	names := make([]string, 0, len(flagNames))
	for bit, name := range flagNames {
		if f&bit != 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseFlag maps a single flag name to its bit.
func ParseFlag(name string) (Flags, error) {
	for bit, n := range flagNames {
		if n == name {
			return bit, nil
		}
	}
	return 0, fmt.Errorf("unknown window flag %q", name)
}

// ParseFlags combines the named flags into a bitmask.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, name := range names {
		bit, err := ParseFlag(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return 0, err
		}
		f |= bit
	}
	return f, nil
}

// FullscreenMode selects the fullscreen state requested via SetFullscreen.
type FullscreenMode uint32

const (
	// FullscreenOff returns the window to its windowed state.
	FullscreenOff FullscreenMode = 0
	// Fullscreen requests exclusive fullscreen at the window's size.
	Fullscreen FullscreenMode = FullscreenMode(FlagFullscreen)
	// FullscreenDesktop requests borderless fullscreen at the desktop size.
	FullscreenDesktop FullscreenMode = FullscreenMode(FlagFullscreenDesktop)
)

func (m FullscreenMode) String() string {
	switch m {
	case FullscreenOff:
		return "off"
	case Fullscreen:
		return "fullscreen"
	case FullscreenDesktop:
		return "fullscreen_desktop"
	}
	return fmt.Sprintf("FullscreenMode(%d)", uint32(m))
}
