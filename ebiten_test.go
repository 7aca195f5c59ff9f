package zoom

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestImageContextSaveRestore(t *testing.T) {
	img := ebiten.NewImage(16, 16)
	defer img.Deallocate()
	ctx := NewImageContext(img, nil)

	ctx.Save()
	ctx.Transform(Identity().ScaleBy(2))
	ctx.SetClipBounds(NewBounds(0, 0, 8, 8))
	ctx.SetLineWidth(3)
	if ctx.CurrentTransform() != Identity().ScaleBy(2) {
		t.Errorf("transform = %v", ctx.CurrentTransform())
	}
	ctx.Restore()

	if ctx.CurrentTransform() != Identity() {
		t.Errorf("transform after restore = %v", ctx.CurrentTransform())
	}
	if _, ok := ctx.ClipBounds(); ok {
		t.Error("clip survived restore")
	}
	// Unbalanced restore is a no-op.
	ctx.Restore()
}

func TestImageContextTransformConcatenates(t *testing.T) {
	img := ebiten.NewImage(4, 4)
	defer img.Deallocate()
	ctx := NewImageContext(img, nil)
	ctx.Transform(Identity().TranslateBy(10, 0))
	ctx.Transform(Identity().ScaleBy(2))
	x, _ := ctx.CurrentTransform().Apply(1, 0)
	assertNear(t, "x", x, 12)
}

func TestImageContextMeasureUsesFont(t *testing.T) {
	img := ebiten.NewImage(4, 4)
	defer img.Deallocate()
	ctx := NewImageContext(img, nil)
	w, h := ctx.MeasureText("zoom")
	fw, fh := DefaultFont().MeasureString("zoom")
	if w != fw || h != fh {
		t.Errorf("MeasureText = %v,%v want %v,%v", w, h, fw, fh)
	}
	if ctx.Target() != img {
		t.Error("Target mismatch")
	}
}
