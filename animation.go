package zoom

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ColorActivity animates the four components of a node's FillColor with
// gween tweens. Scheduling a second ColorActivity for the same node replaces
// the first; transform animations on the node are unaffected.
type ColorActivity struct {
	node     *Node
	to       Color
	duration time.Duration
	tweens   [4]*gween.Tween
}

type fillTarget struct{ node *Node }

// NewColorActivity tweens node.FillColor to the target color over duration.
// A nil fn is ease.Linear.
func NewColorActivity(node *Node, to Color, duration time.Duration, fn ease.TweenFunc) *ColorActivity {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = DefaultActivityDuration
	}
	d := float32(duration.Seconds())
	from := node.FillColor
	a := &ColorActivity{node: node, to: to, duration: duration}
	a.tweens[0] = gween.New(float32(from.R), float32(to.R), d, fn)
	a.tweens[1] = gween.New(float32(from.G), float32(to.G), d, fn)
	a.tweens[2] = gween.New(float32(from.B), float32(to.B), d, fn)
	a.tweens[3] = gween.New(float32(from.A), float32(to.A), d, fn)
	return a
}

func (a *ColorActivity) Started() {}

// Step seeks every tween to elapsed.
func (a *ColorActivity) Step(elapsed time.Duration) bool {
	if elapsed >= a.duration {
		return false
	}
	t := float32(elapsed.Seconds())
	var v [4]float64
	for i, tw := range a.tweens {
		val, _ := tw.Set(t)
		v[i] = float64(val)
	}
	a.node.FillColor = Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	a.node.InvalidatePaint()
	return true
}

// Finished snaps the node to the exact target color.
func (a *ColorActivity) Finished() {
	a.node.FillColor = a.to
	a.node.InvalidatePaint()
}

// Target keys the activity by node and property.
func (a *ColorActivity) Target() any {
	return fillTarget{a.node}
}

// AnimateFillColor tweens the node's fill color on its root's scheduler. A
// zero duration or a node outside any root sets it immediately.
func (n *Node) AnimateFillColor(to Color, duration time.Duration, fn ease.TweenFunc) ActivityID {
	root := n.Root()
	if duration <= 0 || root == nil {
		n.FillColor = to
		n.InvalidatePaint()
		return ActivityID{}
	}
	return root.Schedule(NewColorActivity(n, to, duration, fn))
}
