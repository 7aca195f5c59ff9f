package zoom

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once: zoom is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// to draw solid rects and paths.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

type contextState struct {
	transform Transform
	fill      Color
	stroke    Color
	lineWidth float64
	clip      Bounds
	hasClip   bool
}

// ImageContext implements Context on an *ebiten.Image. Paths are built in
// device space as points are added, so transform changes between MoveTo
// and Fill behave like a browser canvas.
type ImageContext struct {
	target *ebiten.Image
	font   *Font

	state contextState
	stack []contextState

	path     *vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewImageContext wraps target. A nil font uses DefaultFont.
func NewImageContext(target *ebiten.Image, font *Font) *ImageContext {
	if font == nil {
		font = DefaultFont()
	}
	return &ImageContext{
		target: target,
		font:   font,
		path:   &vector.Path{},
		state: contextState{
			transform: Identity(),
			fill:      Color{0, 0, 0, 1},
			stroke:    Color{0, 0, 0, 1},
			lineWidth: 1,
		},
	}
}

// Target returns the image being drawn on.
func (c *ImageContext) Target() *ebiten.Image { return c.target }

// Clear resets the target to transparent.
func (c *ImageContext) Clear() { c.target.Clear() }

func (c *ImageContext) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageContext) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageContext) Transform(t Transform) {
	c.state.transform = c.state.transform.Concat(t)
}

// CurrentTransform returns the accumulated device transform.
func (c *ImageContext) CurrentTransform() Transform { return c.state.transform }

func (c *ImageContext) ClipBounds() (Bounds, bool) { return c.state.clip, c.state.hasClip }

func (c *ImageContext) SetClipBounds(b Bounds) {
	c.state.clip = b
	c.state.hasClip = true
}

func (c *ImageContext) SetFillColor(col Color)   { c.state.fill = col }
func (c *ImageContext) SetStrokeColor(col Color) { c.state.stroke = col }
func (c *ImageContext) SetLineWidth(w float64)   { c.state.lineWidth = w }

func (c *ImageContext) FillRect(x, y, width, height float64) {
	if width == 0 || height == 0 || c.state.fill.A == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.state.transform.GeoM())
	op.ColorScale.ScaleWithColor(c.state.fill.RGBA())
	c.target.DrawImage(ensureWhitePixel(), &op)
}

func (c *ImageContext) StrokeRect(x, y, width, height float64) {
	c.BeginPath()
	c.MoveTo(x, y)
	c.LineTo(x+width, y)
	c.LineTo(x+width, y+height)
	c.LineTo(x, y+height)
	c.ClosePath()
	c.Stroke()
}

func (c *ImageContext) BeginPath() {
	c.path = &vector.Path{}
}

func (c *ImageContext) MoveTo(x, y float64) {
	dx, dy := c.state.transform.Apply(x, y)
	c.path.MoveTo(float32(dx), float32(dy))
}

func (c *ImageContext) LineTo(x, y float64) {
	dx, dy := c.state.transform.Apply(x, y)
	c.path.LineTo(float32(dx), float32(dy))
}

func (c *ImageContext) ClosePath() {
	c.path.Close()
}

func (c *ImageContext) Fill() {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawPath(c.state.fill, ebiten.FillRuleNonZero)
}

func (c *ImageContext) Stroke() {
	opts := &vector.StrokeOptions{
		Width:    float32(c.state.lineWidth * c.state.transform.Scale()),
		LineJoin: vector.LineJoinMiter,
	}
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	c.drawPath(c.state.stroke, ebiten.FillRuleFillAll)
}

func (c *ImageContext) drawPath(col Color, rule ebiten.FillRule) {
	if len(c.indices) == 0 {
		return
	}
	rgba := col.RGBA()
	r := float32(rgba.R) / 255
	g := float32(rgba.G) / 255
	b := float32(rgba.B) / 255
	a := float32(rgba.A) / 255
	for i := range c.vertices {
		c.vertices[i].SrcX = 0.5
		c.vertices[i].SrcY = 0.5
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	c.target.DrawTriangles(c.vertices, c.indices, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func (c *ImageContext) FillText(s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.state.transform.GeoM())
	op.ColorScale.ScaleWithColor(c.state.fill.RGBA())
	op.LineSpacing = c.font.LineHeight()
	text.Draw(c.target, s, c.font.Face(), op)
}

func (c *ImageContext) MeasureText(s string) (width, height float64) {
	return c.font.MeasureString(s)
}

func (c *ImageContext) DrawImage(img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.state.transform.GeoM())
	op.Filter = ebiten.FilterLinear
	c.target.DrawImage(img, &op)
}

// --- ebiten.Game ---

// Update advances any script runner, processes input, runs the update func,
// and advances the scheduler.
func (c *Canvas) Update() error {
	if c.script != nil {
		c.script.step(c)
	}
	c.processInput()
	if c.updateFunc != nil {
		if err := c.updateFunc(); err != nil {
			return err
		}
	}
	sched := c.root.Scheduler()
	sched.Tick(sched.Now())
	return nil
}

// Draw repaints the offscreen buffer if the scene changed and copies it to
// screen every frame.
func (c *Canvas) Draw(screen *ebiten.Image) {
	if c.buffer == nil || c.buffer.Bounds().Dx() != c.width || c.buffer.Bounds().Dy() != c.height {
		if c.buffer != nil {
			c.buffer.Deallocate()
		}
		c.buffer = ebiten.NewImage(c.width, c.height)
		c.bufferCtx = NewImageContext(c.buffer, nil)
		c.root.needsPaint = true
	}
	c.Paint(c.bufferCtx)
	c.flushScreenshots(c.buffer)
	screen.DrawImage(c.buffer, nil)

	if c.ShowFPS {
		c.fps.draw(screen)
	}
}

// Layout tracks the window size.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	c.Resize(outsideWidth, outsideHeight)
	return c.width, c.height
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window; the camera viewport follows.
	Resizable bool
}

// Run opens a window and runs canvas as the game loop. It blocks until the
// window closes.
func Run(canvas *Canvas, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = canvas.Size()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	canvas.ShowFPS = canvas.ShowFPS || cfg.ShowFPS
	canvas.Resize(w, h)

	Logger().WithField("title", cfg.Title).Info("running")
	return ebiten.RunGame(canvas)
}
