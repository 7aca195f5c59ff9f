package zoom

import "github.com/hajimehoshi/ebiten/v2"

// Context is the 2D drawing surface nodes paint onto. It follows the
// immediate-mode canvas model: Save/Restore push and pop the current
// transform, styles, and clip bounds; Transform right-multiplies the current
// transform.
//
// ImageContext implements Context on an *ebiten.Image. Tests use a recording
// fake.
type Context interface {
	Save()
	Restore()
	Transform(t Transform)

	// ClipBounds returns the global-space region currently visible, if any.
	// Nodes whose global full bounds miss it are skipped.
	ClipBounds() (Bounds, bool)
	SetClipBounds(b Bounds)

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)

	FillRect(x, y, width, height float64)
	StrokeRect(x, y, width, height float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill()
	Stroke()

	// FillText draws s with its top-left corner at (x, y).
	FillText(s string, x, y float64)
	MeasureText(s string) (width, height float64)

	DrawImage(img *ebiten.Image, x, y float64)
}

// activeStats collects counts for the repaint in progress. Nil unless the
// current repaint runs in debug mode.
var activeStats *paintStats

// Paint draws the node itself, not its children. OnPaint replaces the
// default, which fills the node's bounds with FillColor. The return value
// reports whether children should be painted.
func (n *Node) Paint(ctx Context, scale float64) bool {
	if n.OnPaint != nil {
		return n.OnPaint(ctx, scale)
	}
	if n.FillColor.IsZero() || n.bounds.Empty() {
		return true
	}
	ctx.SetFillColor(n.FillColor)
	ctx.FillRect(n.bounds.X, n.bounds.Y, n.bounds.Width, n.bounds.Height)
	return true
}

// FullPaint draws n and its subtree depth-first. scale is the accumulated
// display scale of n's parent; n's own transform scale is folded in before
// the MinScale test.
func (n *Node) FullPaint(ctx Context, scale float64) {
	if !n.Visible {
		return
	}
	if clip, ok := ctx.ClipBounds(); ok {
		gb := n.GlobalFullBounds()
		// Untouched bounds have no known extent; don't cull.
		if gb.touched && !clip.Intersects(gb) {
			if activeStats != nil {
				activeStats.nodesCulled++
			}
			return
		}
	}

	scale *= n.transform.Scale()
	if scale < n.MinScale {
		if activeStats != nil {
			activeStats.nodesCulled++
		}
		return
	}

	ctx.Save()
	ctx.Transform(n.transform)
	if activeStats != nil {
		activeStats.nodesPainted++
	}
	if n.Paint(ctx, scale) {
		for _, child := range n.children {
			child.FullPaint(ctx, scale)
		}
	}
	if n.OnPaintAfterChildren != nil {
		n.OnPaintAfterChildren(ctx)
	}
	ctx.Restore()
}
