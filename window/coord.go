package window

import "fmt"

type coordKind uint8

const (
	coordAt coordKind = iota
	coordCentered
	coordUnspecified
)

// Coord is one window coordinate: either a literal value or one of the two
// placement sentinels. Keeping the sentinels tagged rather than folded into
// the integer range leaves ordinary negative coordinates representable.
type Coord struct {
	value int
	kind  coordKind
}

// Centered asks the platform to center the window on this axis.
var Centered = Coord{kind: coordCentered}

// Unspecified leaves placement on this axis to the platform.
var Unspecified = Coord{kind: coordUnspecified}

// At is a literal coordinate.
func At(v int) Coord {
	return Coord{value: v}
}

// Value returns the literal coordinate and whether the Coord holds one;
// sentinel coords return ok=false.
func (c Coord) Value() (v int, ok bool) {
	return c.value, c.kind == coordAt
}

// IsCentered reports whether the coord is the centering sentinel.
func (c Coord) IsCentered() bool {
	return c.kind == coordCentered
}

// IsUnspecified reports whether the coord is the unspecified sentinel.
func (c Coord) IsUnspecified() bool {
	return c.kind == coordUnspecified
}

// Resolve returns the literal value, or centers within span using size when
// the coord is the centering sentinel, or def when unspecified.
func (c Coord) Resolve(span, size, def int) int {
	switch c.kind {
	case coordCentered:
		return (span - size) / 2
	case coordUnspecified:
		return def
	}
	return c.value
}

func (c Coord) String() string {
	switch c.kind {
	case coordCentered:
		return "centered"
	case coordUnspecified:
		return "unspecified"
	}
	return fmt.Sprintf("%d", c.value)
}
