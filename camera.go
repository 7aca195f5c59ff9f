package zoom

import "time"

// Camera is a viewport onto one or more layers. It is a Node (so it can sit
// in the tree and carry screen-space children such as overlays) plus an
// ordered layer list and a view transform applied on top of the layers.
//
// The camera node's bounds are its viewport in canvas coordinates.
type Camera struct {
	*Node

	layers        []*Layer
	viewTransform Transform
}

// NewCamera creates a camera whose viewport is the given rectangle.
func NewCamera(viewport Bounds) *Camera {
	c := &Camera{
		Node:          newNode("camera", NodeTypeCamera),
		viewTransform: Identity(),
	}
	c.Node.bounds = viewport
	c.Node.handle = c
	c.Node.OnPaint = c.paint
	return c
}

// CameraOf returns the Camera wrapping n, or nil if n is not a camera node.
func CameraOf(n *Node) *Camera {
	if n == nil || n.Type != NodeTypeCamera {
		return nil
	}
	c, _ := n.handle.(*Camera)
	return c
}

// ViewTransform returns the transform applied to every layer.
func (c *Camera) ViewTransform() Transform {
	return c.viewTransform
}

// SetViewTransform replaces the view transform and marks the root for repaint.
func (c *Camera) SetViewTransform(t Transform) {
	c.viewTransform = t
	c.InvalidatePaint()
}

// Viewport returns the camera's screen-space rectangle.
func (c *Camera) Viewport() Bounds {
	return c.bounds
}

// SetViewport resizes the camera.
func (c *Camera) SetViewport(b Bounds) {
	c.SetBounds(b)
}

// Layers returns the attached layers in paint order. The returned slice
// MUST NOT be mutated by the caller.
func (c *Camera) Layers() []*Layer {
	return c.layers
}

// AddLayer appends layer to the paint order and registers the camera on it.
// Adding a layer twice is a no-op.
func (c *Camera) AddLayer(layer *Layer) {
	for _, l := range c.layers {
		if l == layer {
			return
		}
	}
	c.layers = append(c.layers, layer)
	layer.AddCamera(c)
	c.InvalidatePaint()
}

// RemoveLayer detaches layer from the camera's paint order and drops the
// camera from the layer's camera list.
func (c *Camera) RemoveLayer(layer *Layer) {
	for i, l := range c.layers {
		if l == layer {
			copy(c.layers[i:], c.layers[i+1:])
			c.layers[len(c.layers)-1] = nil
			c.layers = c.layers[:len(c.layers)-1]
			break
		}
	}
	layer.dropCamera(c)
	c.InvalidatePaint()
}

// ScreenToGlobal converts canvas coordinates to the layers' parent space.
func (c *Camera) ScreenToGlobal(sx, sy float64) (Vec2, error) {
	inv, err := c.viewTransform.Invert()
	if err != nil {
		return Vec2{}, err
	}
	return inv.ApplyPoint(Vec2{sx, sy}), nil
}

// GlobalToScreen converts layer-parent coordinates to canvas coordinates.
func (c *Camera) GlobalToScreen(gx, gy float64) Vec2 {
	return c.viewTransform.ApplyPoint(Vec2{gx, gy})
}

// VisibleBounds returns the axis-aligned bounding rect of the viewport
// mapped into layer-parent space. A degenerate view yields untouched bounds.
func (c *Camera) VisibleBounds() Bounds {
	inv, err := c.viewTransform.Invert()
	if err != nil {
		return Bounds{}
	}
	return inv.ApplyBounds(c.bounds)
}

// paint is the camera node's OnPaint: its own fill, then every layer under
// the view transform with clipping set to the visible region.
func (c *Camera) paint(ctx Context, scale float64) bool {
	if !c.FillColor.IsZero() && !c.bounds.Empty() {
		ctx.SetFillColor(c.FillColor)
		ctx.FillRect(c.bounds.X, c.bounds.Y, c.bounds.Width, c.bounds.Height)
	}

	ctx.Save()
	ctx.Transform(c.viewTransform)
	scale *= c.viewTransform.Scale()
	if visible := c.VisibleBounds(); visible.touched {
		ctx.SetClipBounds(visible)
	}
	for _, layer := range c.layers {
		layer.FullPaint(ctx, scale)
	}
	ctx.Restore()
	return true
}

// --- Picking ---

// PickedNodes returns the deepest nodes under the canvas point (x, y): first
// among the camera's own children in screen space, then within each layer
// in layer space. A layer with nothing under the point contributes itself.
// Camera nodes are never returned.
func (c *Camera) PickedNodes(x, y float64) []*Node {
	screen := Vec2{x, y}
	picked := pickNodes(c.Node, screen, nil)

	global, err := c.ScreenToGlobal(x, y)
	if err != nil {
		return picked
	}
	for _, layer := range c.layers {
		local, err := layer.ParentToLocal(global)
		if err != nil {
			continue
		}
		picked = pickNodes(layer.Node, local, picked)
	}
	return picked
}

// pickNodes appends the deepest descendants of parent whose full bounds
// contain p (given in parent's coordinates) to buf. When no child is hit,
// parent itself is appended unless it is a camera.
func pickNodes(parent *Node, p Vec2, buf []*Node) []*Node {
	start := len(buf)
	for _, child := range parent.children {
		if !child.Visible {
			continue
		}
		local, err := child.ParentToLocal(p)
		if err != nil {
			continue
		}
		if child.FullBounds().ContainsPoint(local) {
			buf = pickNodes(child, local, buf)
		}
	}
	if len(buf) == start && parent.Type != NodeTypeCamera {
		buf = append(buf, parent)
	}
	return buf
}

// --- Animation ---

// AnimateViewToTransform eases the view transform to target. A zero duration
// or a camera not attached to a root sets it immediately.
func (c *Camera) AnimateViewToTransform(target Transform, duration time.Duration, easing Easing) ActivityID {
	root := c.Root()
	if duration <= 0 || root == nil {
		c.SetViewTransform(target)
		return ActivityID{}
	}
	return root.Schedule(NewViewTransformActivity(c, target, duration, easing))
}
