package zoom

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Navigator turns pointer gestures into semantic zoom. Register it as a
// listener on the camera's layer (or any ancestor of the content) so it sees
// every event that reaches the layer:
//
//	nav := zoom.NewNavigator(canvas.Camera())
//	canvas.Layer().AddListener(nav)
//
// A click zooms one focusable level deeper, a right click zooms out, the
// wheel does either depending on direction, and dragging pans.
type Navigator struct {
	// ZoomDuration is how long each zoom animation takes.
	ZoomDuration time.Duration
	// Easing shapes zoom animations.
	Easing Easing
	// PanThreshold is the drag distance in pixels before panning starts.
	PanThreshold float64
	// ClickSlop is the largest drag in pixels still treated as a click.
	ClickSlop float64

	// OnFocus, if set, is called whenever a zoom to a new focus starts.
	OnFocus func(n *Node)

	camera *Camera
	layer  *Layer
	store  EntityStore

	lastFocus *Node
	locked    bool

	down         bool
	downPoint    Vec2
	downView     Transform
	dragDistance float64

	debounce *debouncer
}

// NewNavigator creates a navigator for camera using DefaultConfig tuning.
// The camera's first layer is the fallback focus. Zoom requests are
// debounced on the scheduler of the camera's Root; while the camera belongs
// to no Root they run immediately.
func NewNavigator(camera *Camera) *Navigator {
	n := &Navigator{camera: camera}
	if layers := camera.Layers(); len(layers) > 0 {
		n.layer = layers[0]
	}
	n.debounce = newDebouncer(n.scheduler, DefaultDebounce, n.ZoomToNow)
	n.ApplyConfig(DefaultConfig())
	return n
}

func (n *Navigator) scheduler() *Scheduler {
	if root := n.camera.Root(); root != nil {
		return root.Scheduler()
	}
	return nil
}

// ApplyConfig copies the navigator settings out of cfg.
func (n *Navigator) ApplyConfig(cfg Config) {
	n.ZoomDuration = cfg.ZoomDuration
	n.Easing = cfg.EasingFunc()
	n.PanThreshold = cfg.PanThreshold
	n.ClickSlop = cfg.ClickSlop
	n.debounce.wait = cfg.Debounce
}

// SetEntityStore forwards focus changes to store as EventFocus events.
func (n *Navigator) SetEntityStore(store EntityStore) {
	n.store = store
}

// Camera returns the navigated camera.
func (n *Navigator) Camera() *Camera { return n.camera }

// Layer returns the fallback focus.
func (n *Navigator) Layer() *Layer { return n.layer }

// Focus returns the node most recently zoomed to, or nil.
func (n *Navigator) Focus() *Node { return n.lastFocus }

// Lock suspends gesture handling, e.g. while a drawing tool owns the pointer.
func (n *Navigator) Lock() { n.locked = true }

// Unlock resumes gesture handling.
func (n *Navigator) Unlock() { n.locked = false }

// Locked reports whether gesture handling is suspended.
func (n *Navigator) Locked() bool { return n.locked }

// ZoomTo zooms to target, collapsing bursts: the first request of a burst
// runs now, and the last request of the burst runs once no request has
// arrived for the debounce interval. A nil target is the layer.
func (n *Navigator) ZoomTo(target *Node) {
	n.debounce.call(target)
}

// ZoomToNow animates the camera so target fills the viewport at its own
// scale, centered. A nil target is the layer.
func (n *Navigator) ZoomToNow(target *Node) {
	if target == nil {
		target = n.layerNode()
	}
	if target == nil {
		return
	}
	n.lastFocus = target

	view, err := n.viewFor(target)
	if err != nil {
		Logger().WithError(err).WithField("node", target.Name).Warn("cannot zoom to degenerate node")
		return
	}

	Logger().WithFields(logrus.Fields{
		"node":     target.Name,
		"duration": n.ZoomDuration,
	}).Debug("zoom")
	n.camera.AnimateViewToTransform(view, n.ZoomDuration, n.Easing)

	if n.OnFocus != nil {
		n.OnFocus(target)
	}
	if n.store != nil {
		n.store.EmitEvent(InteractionEvent{
			Type:     EventFocus,
			NodeID:   target.ID,
			NodeName: target.Name,
		})
	}
}

// viewFor maps target's global space so its full bounds sit centered in
// the camera viewport.
func (n *Navigator) viewFor(target *Node) (Transform, error) {
	inv, err := target.GlobalTransform().Invert()
	if err != nil {
		return Transform{}, err
	}
	fb := target.FullBounds()
	vp := n.camera.Viewport()
	return inv.TranslateBy(
		(vp.Width-fb.Width)/2-fb.X,
		(vp.Height-fb.Height)/2-fb.Y,
	), nil
}

// ZoomOut zooms to the parent of the current focus, or to the layer when
// there is no focus or the focus is already the layer.
func (n *Navigator) ZoomOut() {
	n.ZoomTo(n.zoomOutTarget())
}

func (n *Navigator) zoomOutTarget() *Node {
	layer := n.layerNode()
	f := n.lastFocus
	if f == nil || f == layer || f.Parent == nil || f.Parent.Type == NodeTypeRoot {
		return layer
	}
	return f.Parent
}

// FocusPath returns the focusable ancestors of target, including target
// itself, outermost first.
func (n *Navigator) FocusPath(target *Node) []*Node {
	var path []*Node
	for cur := target; cur != nil; cur = cur.Parent {
		if cur.Focusable {
			path = append(path, cur)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nextFocus picks the zoom-in target along path. With no prior focus it is
// the outermost focusable. Otherwise ancestors already zoomed further in
// than the current focus are skipped, and landing on the current focus
// advances one level deeper.
func (n *Navigator) nextFocus(path []*Node) *Node {
	if n.lastFocus == nil || n.lastFocus.Type == NodeTypeLayer {
		return path[0]
	}

	lastScale := n.lastFocus.GlobalTransform().Scale()
	var focus *Node
	for len(path) > 0 {
		focus = path[0]
		if focus.GlobalTransform().Scale() <= lastScale {
			break
		}
		path = path[1:]
	}
	if focus == n.lastFocus {
		if len(path) > 1 {
			return path[1]
		}
	}
	return focus
}

func (n *Navigator) layerNode() *Node {
	if n.layer == nil {
		return nil
	}
	return n.layer.Node
}

// --- Listener ---

// PointerDown records the gesture start.
func (n *Navigator) PointerDown(e *Event) bool {
	if n.locked {
		return false
	}
	n.down = true
	n.downView = n.camera.ViewTransform()
	n.downPoint = Vec2{e.X, e.Y}
	n.dragDistance = 0
	return false
}

// PointerMove pans while the primary button alone is held.
func (n *Navigator) PointerMove(e *Event) bool {
	if !n.down {
		return false
	}
	dx, dy := e.X-n.downPoint.X, e.Y-n.downPoint.Y
	dist := math.Hypot(dx, dy)
	n.dragDistance = math.Max(n.dragDistance, dist)

	if e.Buttons == ButtonsLeft && dist > n.PanThreshold {
		n.camera.SetViewTransform(n.downView.TranslateBy(dx, dy))
	}
	return false
}

// PointerUp ends the gesture, zooming unless it was a pan. It consumes the
// event only for the middle button, so a click also reaches other listeners.
func (n *Navigator) PointerUp(e *Event) bool {
	if n.locked {
		return false
	}
	n.down = false
	drag := n.dragDistance
	n.dragDistance = 0
	if drag > n.ClickSlop {
		return false
	}

	if e.Button == MouseButtonRight {
		n.ZoomOut()
		return true
	}

	path := n.FocusPath(firstPicked(e))
	if len(path) == 0 {
		n.ZoomTo(n.layerNode())
		return true
	}
	if n.lastFocus == nil || n.lastFocus.Type == NodeTypeLayer {
		n.ZoomTo(path[0])
		return true
	}
	n.ZoomTo(n.nextFocus(path))
	return e.Button == MouseButtonMiddle
}

// Wheel zooms in when scrolling up and out when scrolling down. Purely
// horizontal scrolling is ignored.
func (n *Navigator) Wheel(e *Event) bool {
	if n.locked || e.DeltaY == 0 {
		return false
	}
	if e.DeltaY > 0 {
		n.ZoomOut()
		return false
	}

	path := n.FocusPath(firstPicked(e))
	if len(path) == 0 {
		return true
	}
	n.ZoomTo(n.nextFocus(path))
	return true
}

func firstPicked(e *Event) *Node {
	if len(e.Picked) == 0 {
		return nil
	}
	return e.Picked[0]
}
