package zoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws an FPS/TPS readout in the top-left corner of the screen.
// The readout is redrawn into its own image at most every half second.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
		f.lastUpdate = 1
	}

	f.lastUpdate += 1 / float64(ebiten.TPS())
	if f.lastUpdate >= 0.5 {
		f.lastUpdate = 0
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
