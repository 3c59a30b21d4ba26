// Package geom provides small integer geometry value types shared by the
// window packages.
package geom

import "fmt"

// Point is an immutable pair of integer coordinates. Depending on context it
// carries a position (x, y) or a size (width, height). Negative and zero
// values are valid; several window operations use them as platform sentinels.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
