package zoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Image is a node that draws an image at its origin, sized to the image.
// It paints nothing until an image is set.
type Image struct {
	*Node

	img *ebiten.Image
}

// NewImage creates an image node. img may be nil and set later.
func NewImage(name string, img *ebiten.Image) *Image {
	i := &Image{Node: NewNode(name)}
	i.Node.OnPaint = i.paint
	i.SetImage(img)
	return i
}

// LoadImageFile creates an image node from a PNG or JPEG file.
func LoadImageFile(name, path string) (*Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("zoom: load image %s: %w", path, err)
	}
	return NewImage(name, img), nil
}

// Image returns the drawn image, or nil.
func (i *Image) Image() *ebiten.Image { return i.img }

// SetImage replaces the image and resizes the bounds to match.
func (i *Image) SetImage(img *ebiten.Image) {
	i.img = img
	var b Bounds
	if img != nil {
		sz := img.Bounds().Size()
		b = NewBounds(0, 0, float64(sz.X), float64(sz.Y))
	}
	i.SetBounds(b)
	i.InvalidatePaint()
}

func (i *Image) paint(ctx Context, scale float64) bool {
	if i.img != nil {
		ctx.DrawImage(i.img, 0, 0)
	}
	return true
}
