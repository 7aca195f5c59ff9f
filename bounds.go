package zoom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBounds is returned when bounds are built from anything other
// than exactly four values.
var ErrInvalidBounds = errors.New("zoom: bounds need exactly 4 values")

// Bounds is a mutable axis-aligned rectangle. The zero value is "untouched":
// it has never been assigned, which is distinct from a zero-size rectangle
// at the origin. The first Add on untouched bounds snaps to the input.
type Bounds struct {
	X, Y, Width, Height float64

	touched bool
}

// NewBounds returns touched bounds with the given geometry.
func NewBounds(x, y, width, height float64) Bounds {
	return Bounds{X: x, Y: y, Width: width, Height: height, touched: true}
}

// BoundsFromSlice builds touched bounds from [x, y, width, height].
func BoundsFromSlice(values []float64) (Bounds, error) {
	if len(values) != 4 {
		return Bounds{}, fmt.Errorf("%w, got %d", ErrInvalidBounds, len(values))
	}
	return NewBounds(values[0], values[1], values[2], values[3]), nil
}

// Touched reports whether the bounds have ever been assigned.
func (b Bounds) Touched() bool {
	return b.touched
}

// Empty reports whether both width and height are exactly zero. Untouched
// bounds and bounds touched at a single point are both empty.
func (b Bounds) Empty() bool {
	return b.Width == 0 && b.Height == 0
}

// Add grows b to include other. Adding untouched bounds is a no-op.
func (b *Bounds) Add(other Bounds) {
	if !other.touched {
		return
	}
	b.AddRect(other.X, other.Y, other.Width, other.Height)
}

// AddPoint grows b to include (x, y).
func (b *Bounds) AddPoint(x, y float64) {
	b.AddRect(x, y, 0, 0)
}

// AddRect grows b to include the rectangle. Untouched bounds take the
// rectangle as-is; touched bounds grow by min/max union and never shrink.
func (b *Bounds) AddRect(x, y, width, height float64) {
	if !b.touched {
		*b = NewBounds(x, y, width, height)
		return
	}
	minX := math.Min(x, b.X)
	minY := math.Min(y, b.Y)
	maxX := math.Max(b.X+b.Width, x+width)
	maxY := math.Max(b.Y+b.Height, y+height)
	b.X, b.Y = minX, minY
	b.Width, b.Height = maxX-minX, maxY-minY
}

// Contains reports whether (x, y) lies inside b using half-open intervals:
// the left and top edges are inside, the right and bottom edges are not.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// ContainsPoint is Contains for a Vec2.
func (b Bounds) ContainsPoint(p Vec2) bool {
	return b.Contains(p.X, p.Y)
}

// Intersects reports whether b and other overlap. Rectangles sharing only an
// edge intersect.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.X+other.Width < b.X ||
		other.X > b.X+b.Width ||
		other.Y+other.Height < b.Y ||
		other.Y > b.Y+b.Height)
}

// Equal compares geometry only; the touched flag is ignored.
func (b Bounds) Equal(other Bounds) bool {
	return b.X == other.X && b.Y == other.Y &&
		b.Width == other.Width && b.Height == other.Height
}

// Center returns the midpoint of b.
func (b Bounds) Center() Vec2 {
	return Vec2{b.X + b.Width/2, b.Y + b.Height/2}
}

// Max returns the bottom-right corner.
func (b Bounds) Max() Vec2 {
	return Vec2{b.X + b.Width, b.Y + b.Height}
}

func (b Bounds) String() string {
	if !b.touched {
		return "Bounds(untouched)"
	}
	return fmt.Sprintf("Bounds(%g, %g, %g, %g)", b.X, b.Y, b.Width, b.Height)
}
