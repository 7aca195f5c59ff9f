package zoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Canvas or Navigator, interaction events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge. NodeID and
// NodeName describe the deepest picked node, or the new focus for
// EventFocus; both are zero when nothing was picked.
type InteractionEvent struct {
	Type      EventType
	NodeID    uint32
	NodeName  string
	X, Y      float64
	Button    MouseButton
	Buttons   MouseButtons
	DeltaX    float64
	DeltaY    float64
	Modifiers KeyModifiers
	Picked    int // number of picked nodes
}

// Canvas hosts a scene on a fixed-size drawing surface: a root holding one
// layer and one camera viewing it. It tracks the picked set across pointer
// events to synthesize mouse-over and mouse-out, and repaints only when the
// tree reports a change.
//
// Canvas implements ebiten.Game; see Run.
type Canvas struct {
	// ClearColor fills the surface before each repaint.
	ClearColor Color
	// ShowFPS paints an FPS/TPS readout over the surface in Draw.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	root   *Root
	camera *Camera
	layer  *Layer
	store  EntityStore

	width, height int
	previous      []*Node
	updateFunc    func() error

	// Input state
	injectQueue []PointerEvent
	script      *ScriptRunner
	cursor      Vec2
	inside      bool
	pressed     MouseButtons // buttons pressed while inside the canvas

	// Render state
	buffer          *ebiten.Image
	bufferCtx       *ImageContext
	fps             fpsOverlay
	screenshotQueue []string
}

// NewCanvas creates a width x height canvas with a default root, layer, and
// camera, using DefaultConfig for everything else.
func NewCanvas(width, height int) *Canvas {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	return NewCanvasFromConfig(cfg)
}

// NewCanvasFromConfig creates a canvas sized and tuned by cfg. The root's
// scheduler polls at cfg.PollInterval against the wall clock.
func NewCanvasFromConfig(cfg Config) *Canvas {
	return newCanvas(cfg, NewRootWithScheduler(NewScheduler(cfg.PollInterval, time.Now)))
}

// NewCanvasWithRoot creates a canvas around an existing root, for hosts
// that supply their own scheduler clock.
func NewCanvasWithRoot(width, height int, root *Root) *Canvas {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	return newCanvas(cfg, root)
}

func newCanvas(cfg Config, root *Root) *Canvas {
	if cfg.Debug {
		SetDebugMode(true)
	}
	c := &Canvas{
		ClearColor: cfg.ClearColor,
		ShowFPS:    cfg.ShowFPS,
		root:       root,
		camera:     NewCamera(NewBounds(0, 0, float64(cfg.Width), float64(cfg.Height))),
		layer:      NewLayer("layer"),
		width:      cfg.Width,
		height:     cfg.Height,
	}
	root.AddChild(c.layer.Node)
	root.AddChild(c.camera.Node)
	c.camera.AddLayer(c.layer)
	Logger().WithFields(logrus.Fields{"width": cfg.Width, "height": cfg.Height}).Debug("canvas created")
	return c
}

// Root returns the canvas root.
func (c *Canvas) Root() *Root { return c.root }

// Camera returns the canvas camera.
func (c *Canvas) Camera() *Camera { return c.camera }

// Layer returns the default layer content is added to.
func (c *Canvas) Layer() *Layer { return c.layer }

// Size returns the surface size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Resize changes the surface size and the camera viewport with it.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.camera.SetViewport(NewBounds(0, 0, float64(width), float64(height)))
}

// SetUpdateFunc sets a callback run once per frame in Update, after input
// and before the scheduler ticks. An error it returns stops the game loop.
func (c *Canvas) SetUpdateFunc(fn func() error) {
	c.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (c *Canvas) SetEntityStore(store EntityStore) {
	c.store = store
}

// clearer is implemented by contexts that can reset their whole surface
// before the clear color is drawn.
type clearer interface {
	Clear()
}

// Paint repaints the scene onto ctx if anything changed since the last
// paint and reports whether it did.
func (c *Canvas) Paint(ctx Context) bool {
	if !c.root.NeedsPaint() {
		return false
	}

	var stats paintStats
	var t0 time.Time
	if globalDebug {
		activeStats = &stats
		t0 = time.Now()
	}

	if cl, ok := ctx.(clearer); ok {
		cl.Clear()
	}
	ctx.SetFillColor(c.ClearColor)
	ctx.FillRect(0, 0, float64(c.width), float64(c.height))
	c.camera.FullPaint(ctx, 1)
	c.root.MarkPainted()

	if globalDebug {
		activeStats = nil
		stats.paintTime = time.Since(t0)
		c.root.debugLog(stats)
	}
	return true
}

// PickedNodes returns the nodes under the canvas point (x, y).
func (c *Canvas) PickedNodes(x, y float64) []*Node {
	return c.camera.PickedNodes(x, y)
}

// HandlePointer picks the nodes under ev, sends mouse-out to nodes that
// left the picked set and mouse-over to nodes that joined it, then bubbles
// ev through the new set. Reports whether a listener consumed ev.
func (c *Canvas) HandlePointer(ev PointerEvent) bool {
	picked := c.camera.PickedNodes(ev.X, ev.Y)

	c.processMouseOvers(c.previous, picked, ev)

	consumed := Bubble(&Event{PointerEvent: ev, Picked: picked}, picked)
	c.previous = picked
	c.emit(ev, picked)
	return consumed
}

// PointerLeave sends mouse-out to every node picked by the previous event
// and forgets them.
func (c *Canvas) PointerLeave(ev PointerEvent) {
	ev.Type = EventMouseOut
	prev := c.previous
	c.previous = nil
	Bubble(&Event{PointerEvent: ev, Picked: prev}, prev)
	c.emit(ev, prev)
}

func (c *Canvas) processMouseOvers(old, picked []*Node, ev PointerEvent) {
	out := subtractNodes(old, picked)
	over := subtractNodes(picked, old)

	if len(out) > 0 {
		e := ev
		e.Type = EventMouseOut
		Bubble(&Event{PointerEvent: e, Picked: out}, out)
		c.emit(e, out)
	}
	if len(over) > 0 {
		e := ev
		e.Type = EventMouseOver
		Bubble(&Event{PointerEvent: e, Picked: over}, over)
		c.emit(e, over)
	}
}

// subtractNodes returns the nodes of a not present in b, in a's order.
func subtractNodes(a, b []*Node) []*Node {
	var out []*Node
	for _, n := range a {
		found := false
		for _, m := range b {
			if n == m {
				found = true
				break
			}
		}
		if !found {
			out = append(out, n)
		}
	}
	return out
}

// --- ECS bridge ---

func (c *Canvas) emit(ev PointerEvent, picked []*Node) {
	if c.store == nil {
		return
	}
	ie := InteractionEvent{
		Type:      ev.Type,
		X:         ev.X,
		Y:         ev.Y,
		Button:    ev.Button,
		Buttons:   ev.Buttons,
		DeltaX:    ev.DeltaX,
		DeltaY:    ev.DeltaY,
		Modifiers: ev.Modifiers,
		Picked:    len(picked),
	}
	if len(picked) > 0 {
		ie.NodeID = picked[0].ID
		ie.NodeName = picked[0].Name
	}
	c.store.EmitEvent(ie)
}
