package zoom

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrInvalidTransform is returned when a transform is built from anything
// other than exactly six coefficients.
var ErrInvalidTransform = errors.New("zoom: transform needs exactly 6 coefficients")

// ErrDegenerateTransform is matched (via errors.Is) by every
// DegenerateTransformError.
var ErrDegenerateTransform = errors.New("zoom: degenerate transform")

// DegenerateTransformError reports an attempt to invert a singular matrix.
type DegenerateTransformError struct {
	Transform   Transform
	Determinant float64
}

func (e *DegenerateTransformError) Error() string {
	return fmt.Sprintf("zoom: cannot invert %v (determinant %g)", e.Transform, e.Determinant)
}

// Is makes errors.Is(err, ErrDegenerateTransform) true.
func (e *DegenerateTransformError) Is(target error) bool {
	return target == ErrDegenerateTransform
}

// Transform is a 2D affine matrix stored as [a, b, c, d, e, f]:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// Transform is a value type. The mutating-style methods return the updated
// matrix so calls chain: Identity().TranslateBy(10, 0).ScaleBy(2).
type Transform [6]float64

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// NewTransform builds a transform from exactly six coefficients.
func NewTransform(values ...float64) (Transform, error) {
	if len(values) != 6 {
		return Transform{}, fmt.Errorf("%w, got %d", ErrInvalidTransform, len(values))
	}
	var t Transform
	copy(t[:], values)
	return t, nil
}

// ScaleBy multiplies the a and d coefficients by factor.
func (t Transform) ScaleBy(factor float64) Transform {
	t[0] *= factor
	t[3] *= factor
	return t
}

// TranslateBy adds (dx, dy) to the translation coefficients. The offset is
// expressed in the parent's coordinate space.
func (t Transform) TranslateBy(dx, dy float64) Transform {
	t[4] += dx
	t[5] += dy
	return t
}

// RotateBy right-multiplies a rotation of theta radians.
func (t Transform) RotateBy(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return t.Concat(Transform{cos, sin, -sin, cos, 0, 0})
}

// Concat returns t * other: other is applied first, then t.
func (t Transform) Concat(other Transform) Transform {
	return Transform{
		t[0]*other[0] + t[2]*other[1],
		t[1]*other[0] + t[3]*other[1],
		t[0]*other[2] + t[2]*other[3],
		t[1]*other[2] + t[3]*other[3],
		t[0]*other[4] + t[2]*other[5] + t[4],
		t[1]*other[4] + t[3]*other[5] + t[5],
	}
}

// Determinant returns ad - bc.
func (t Transform) Determinant() float64 {
	return t[0]*t[3] - t[1]*t[2]
}

// Invert returns the inverse matrix. A singular matrix yields a
// *DegenerateTransformError.
func (t Transform) Invert() (Transform, error) {
	det := t.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Transform{}, &DegenerateTransformError{Transform: t, Determinant: det}
	}
	return Transform{
		t[3] / det,
		-t[1] / det,
		-t[2] / det,
		t[0] / det,
		(t[2]*t[5] - t[3]*t[4]) / det,
		-(t[0]*t[5] - t[1]*t[4]) / det,
	}, nil
}

// Apply maps the point (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}

// ApplyPoint maps p.
func (t Transform) ApplyPoint(p Vec2) Vec2 {
	x, y := t.Apply(p.X, p.Y)
	return Vec2{x, y}
}

// ApplyBounds maps all four corners of b and returns their axis-aligned
// bounding box. Rotation is therefore approximated, never represented.
// Untouched bounds map to untouched bounds.
func (t Transform) ApplyBounds(b Bounds) Bounds {
	if !b.touched {
		return b
	}
	x0, y0 := t.Apply(b.X, b.Y)
	x1, y1 := t.Apply(b.X+b.Width, b.Y)
	x2, y2 := t.Apply(b.X+b.Width, b.Y+b.Height)
	x3, y3 := t.Apply(b.X, b.Y+b.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return NewBounds(minX, minY, maxX-minX, maxY-minY)
}

// Scale returns the magnitude of the unit vector (0, 1) after the linear part
// of t is applied. Unlike t[0] it stays meaningful under rotation.
func (t Transform) Scale() float64 {
	return math.Hypot(t[2], t[3])
}

// Offset returns the translation coefficients.
func (t Transform) Offset() Vec2 {
	return Vec2{t[4], t[5]}
}

// Equal reports whether both transforms have identical coefficients.
func (t Transform) Equal(other Transform) bool {
	return t == other
}

// ApproxEqual reports whether every coefficient differs by at most eps.
func (t Transform) ApproxEqual(other Transform, eps float64) bool {
	for i := range t {
		if math.Abs(t[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// GeoM converts t into an ebiten.GeoM.
func (t Transform) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])
	return m
}

func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", t[0], t[1], t[2], t[3], t[4], t[5])
}

// Lerp blends the six coefficients of t1 and t2 linearly. This is a naive
// blend, not a decomposition: large combined rotation and scale differences
// produce skewed intermediate frames.
func Lerp(t1, t2 Transform, ratio float64) Transform {
	switch ratio {
	case 0:
		return t1
	case 1:
		return t2
	}
	var out Transform
	for i := range out {
		out[i] = t1[i] + ratio*(t2[i]-t1[i])
	}
	return out
}
