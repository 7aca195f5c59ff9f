package zoom

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"zoomed", "zoomed"},
		{"after-click", "after-click"},
		{"frame.01", "frame.01"},
		{"card 3", "card_3"},
		{"a/b\\c", "a_b_c"},
		{"", "unlabeled"},
		{"  ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueuesAndRepaints(t *testing.T) {
	c, _ := newTestCanvas()
	c.Root().MarkPainted()
	c.Screenshot("a")
	c.Screenshot("b")
	if c.PendingScreenshots() != 2 {
		t.Fatalf("PendingScreenshots = %d, want 2", c.PendingScreenshots())
	}
	if c.screenshotQueue[0] != "a" || c.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v", c.screenshotQueue)
	}
	if !c.Root().NeedsPaint() {
		t.Error("Screenshot should force a repaint of the next frame")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 127, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := unpremultiply([]byte{255, 0, 0, 255, 0, 0, 255, 255}, 2, 1)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v", b)
	}
	r, _, _, _ := decoded.At(0, 0).RGBA()
	_, _, bl, _ := decoded.At(1, 0).RGBA()
	if r>>8 != 255 || bl>>8 != 255 {
		t.Errorf("pixels = %v %v", decoded.At(0, 0), decoded.At(1, 0))
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	img := unpremultiply(make([]byte, 4), 1, 1)
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := writePNG(path, img); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
