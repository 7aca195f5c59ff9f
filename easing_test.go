package zoom

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEasingEndpointsExact(t *testing.T) {
	for _, name := range EasingNames() {
		e, ok := EasingByName(name)
		if !ok {
			t.Fatalf("EasingByName(%q) missing", name)
		}
		if got := e(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := e(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingNamesSortedAndComplete(t *testing.T) {
	names := EasingNames()
	if len(names) != len(easingsByName) {
		t.Fatalf("names = %d, map = %d", len(names), len(easingsByName))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	if _, ok := EasingByName("Linear"); !ok {
		t.Error("Linear should be registered")
	}
	if _, ok := EasingByName("Wobble"); ok {
		t.Error("unknown name resolved")
	}
}

func TestEasingMidpoints(t *testing.T) {
	if got := InOutQuad(0.5); got < 0.49 || got > 0.51 {
		t.Errorf("InOutQuad(0.5) = %v", got)
	}
	if got := InQuad(0.5); got < 0.24 || got > 0.26 {
		t.Errorf("InQuad(0.5) = %v", got)
	}
	if got := Linear(0.3); got != 0.3 {
		t.Errorf("Linear(0.3) = %v", got)
	}
}

func TestEasingFromTweenClamps(t *testing.T) {
	e := EasingFromTween(ease.OutBack)
	if e(-1) != 0 || e(2) != 1 {
		t.Errorf("out-of-range ratios not clamped: %v %v", e(-1), e(2))
	}
}

func TestEasingFromTweenFloat32Precision(t *testing.T) {
	e := EasingFromTween(ease.Linear)
	for _, x := range []float64{0.1, 0.3, 0.7} {
		if d := e(x) - x; d > 1e-6 || d < -1e-6 {
			t.Errorf("Linear(%v) = %v, off by more than float32 rounding", x, e(x))
		}
	}
	if e(0) != 0 || e(1) != 1 {
		t.Error("endpoints should stay exact")
	}
}
