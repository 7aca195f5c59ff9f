package zoom

import (
	"errors"
	"testing"
)

func TestBoundsZeroIsUntouched(t *testing.T) {
	var b Bounds
	if b.Touched() {
		t.Error("zero Bounds should be untouched")
	}
	if !b.Empty() {
		t.Error("zero Bounds should be empty")
	}
}

func TestBoundsFirstAddSnaps(t *testing.T) {
	var b Bounds
	b.AddRect(10, 20, 5, 5)
	if !b.Equal(NewBounds(10, 20, 5, 5)) {
		t.Errorf("b = %v, want (10,20,5,5)", b)
	}

	// A touched zero rect at the origin would have grown to include (0,0).
	z := NewBounds(0, 0, 0, 0)
	z.AddRect(10, 20, 5, 5)
	if !z.Equal(NewBounds(0, 0, 15, 25)) {
		t.Errorf("z = %v, want (0,0,15,25)", z)
	}
}

func TestBoundsAddUnion(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)
	b.Add(NewBounds(-5, 5, 10, 20))
	if !b.Equal(NewBounds(-5, 0, 15, 25)) {
		t.Errorf("b = %v", b)
	}
	b.Add(Bounds{})
	if !b.Equal(NewBounds(-5, 0, 15, 25)) {
		t.Errorf("adding untouched changed b to %v", b)
	}
}

func TestBoundsAddNeverShrinks(t *testing.T) {
	b := NewBounds(0, 0, 100, 100)
	b.AddRect(10, 10, 1, 1)
	if !b.Equal(NewBounds(0, 0, 100, 100)) {
		t.Errorf("b = %v", b)
	}
}

func TestBoundsContainsHalfOpen(t *testing.T) {
	b := NewBounds(0, 0, 10, 10)
	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{9.99, 9.99, true},
		{10, 5, false},
		{5, 10, false},
		{-0.01, 5, false},
	}
	for _, c := range cases {
		if got := b.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestBoundsIntersectsSharedEdge(t *testing.T) {
	a := NewBounds(0, 0, 10, 10)
	if !a.Intersects(NewBounds(10, 0, 5, 5)) {
		t.Error("edge-sharing bounds should intersect")
	}
	if a.Intersects(NewBounds(10.5, 0, 5, 5)) {
		t.Error("separated bounds should not intersect")
	}
}

func TestBoundsFromSlice(t *testing.T) {
	b, err := BoundsFromSlice([]float64{1, 2, 3, 4})
	if err != nil || !b.Equal(NewBounds(1, 2, 3, 4)) || !b.Touched() {
		t.Errorf("BoundsFromSlice = %v, %v", b, err)
	}
	if _, err := BoundsFromSlice([]float64{1, 2}); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("err = %v, want ErrInvalidBounds", err)
	}
}

func TestBoundsCenterMax(t *testing.T) {
	b := NewBounds(10, 20, 30, 40)
	if c := b.Center(); c != (Vec2{25, 40}) {
		t.Errorf("Center = %v", c)
	}
	if m := b.Max(); m != (Vec2{40, 60}) {
		t.Errorf("Max = %v", m)
	}
}
