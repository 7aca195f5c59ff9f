package zoom

// --- Bounds ---

// Bounds returns the node's own bounds in local coordinates.
func (n *Node) Bounds() Bounds {
	return n.bounds
}

// SetBounds replaces the node's own bounds.
func (n *Node) SetBounds(b Bounds) *Node {
	n.bounds = b
	n.invalidateBounds()
	n.InvalidatePaint()
	return n
}

// FullBounds returns the union of the node's own bounds and every child's
// full bounds mapped through that child's transform, in local coordinates.
// OnLayoutChildren runs first. The result is cached until the subtree's
// geometry changes.
func (n *Node) FullBounds() Bounds {
	if !n.fullBoundsDirty {
		return n.fullBounds
	}
	if n.OnLayoutChildren != nil {
		n.OnLayoutChildren(n)
	}

	full := n.bounds
	for _, child := range n.children {
		full.Add(child.transform.ApplyBounds(child.FullBounds()))
	}
	n.fullBounds = full
	// Layout may itself have moved children and dirtied n again.
	n.fullBoundsDirty = false
	return full
}

// GlobalFullBounds returns FullBounds mapped into root space by walking the
// corners up the ancestor chain one transform at a time. The topmost node's
// own transform is not applied.
func (n *Node) GlobalFullBounds() Bounds {
	if n.globalBoundsSeen == geometryEpoch+1 {
		return n.globalBounds
	}
	fb := n.FullBounds()
	if !fb.touched {
		n.globalBounds = fb
		n.globalBoundsSeen = geometryEpoch + 1
		return fb
	}

	corners := [4]Vec2{
		{fb.X, fb.Y},
		{fb.X + fb.Width, fb.Y},
		{fb.X + fb.Width, fb.Y + fb.Height},
		{fb.X, fb.Y + fb.Height},
	}
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		for i := range corners {
			corners[i] = cur.transform.ApplyPoint(corners[i])
		}
	}

	var global Bounds
	for _, c := range corners {
		global.AddPoint(c.X, c.Y)
	}
	n.globalBounds = global
	n.globalBoundsSeen = geometryEpoch + 1
	return global
}

// InvalidateBounds drops the cached full bounds of n and every ancestor.
// Collaborator nodes call it once late-arriving content (an image that
// finished loading, measured text) changes their size.
func (n *Node) InvalidateBounds() {
	n.invalidateBounds()
}

func (n *Node) invalidateBounds() {
	bumpGeometry()
	for p := n; p != nil; p = p.Parent {
		p.fullBoundsDirty = true
	}
}

// InvalidatePaint marks the owning root as needing a repaint.
func (n *Node) InvalidatePaint() {
	if r := n.Root(); r != nil {
		r.needsPaint = true
	}
}

// --- Transform ---

// Transform returns the node's local transform.
func (n *Node) Transform() Transform {
	return n.transform
}

// SetTransform replaces the node's local transform.
func (n *Node) SetTransform(t Transform) *Node {
	n.transform = t
	n.transformChanged()
	return n
}

// ScaleBy scales the node's transform by factor.
func (n *Node) ScaleBy(factor float64) *Node {
	return n.SetTransform(n.transform.ScaleBy(factor))
}

// TranslateBy moves the node by (dx, dy) in its parent's coordinates.
func (n *Node) TranslateBy(dx, dy float64) *Node {
	return n.SetTransform(n.transform.TranslateBy(dx, dy))
}

// RotateBy rotates the node's transform by theta radians.
func (n *Node) RotateBy(theta float64) *Node {
	return n.SetTransform(n.transform.RotateBy(theta))
}

// Scale returns the uniform scale of the node's local transform.
func (n *Node) Scale() float64 {
	return n.transform.Scale()
}

// SetScale overwrites the a and d coefficients with s.
func (n *Node) SetScale(s float64) *Node {
	t := n.transform
	t[0], t[3] = s, s
	return n.SetTransform(t)
}

// Offset returns the translation part of the local transform.
func (n *Node) Offset() Vec2 {
	return n.transform.Offset()
}

// SetOffset overwrites the translation part of the local transform.
func (n *Node) SetOffset(p Vec2) *Node {
	t := n.transform
	t[4], t[5] = p.X, p.Y
	return n.SetTransform(t)
}

// transformChanged is the single invalidation path for local transform
// mutation. The node's own full bounds are local and survive, but the
// parent chain and every global cache below n are stale.
func (n *Node) transformChanged() {
	if n.Parent != nil {
		n.Parent.invalidateBounds()
	} else {
		bumpGeometry()
	}
	n.InvalidatePaint()
}

// GlobalTransform returns the product of every ancestor transform down to n,
// excluding the topmost node's own transform.
func (n *Node) GlobalTransform() Transform {
	t := Identity()
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		t = cur.transform.Concat(t)
	}
	return t
}

// LocalToParent maps p from n's coordinates into its parent's.
func (n *Node) LocalToParent(p Vec2) Vec2 {
	return n.transform.ApplyPoint(p)
}

// ParentToLocal maps p from the parent's coordinates into n's.
func (n *Node) ParentToLocal(p Vec2) (Vec2, error) {
	inv, err := n.transform.Invert()
	if err != nil {
		return Vec2{}, err
	}
	return inv.ApplyPoint(p), nil
}

// LocalToGlobal maps p from n's coordinates into root space.
func (n *Node) LocalToGlobal(p Vec2) Vec2 {
	return n.GlobalTransform().ApplyPoint(p)
}

// GlobalToLocal maps p from root space into n's coordinates.
func (n *Node) GlobalToLocal(p Vec2) (Vec2, error) {
	inv, err := n.GlobalTransform().Invert()
	if err != nil {
		return Vec2{}, err
	}
	return inv.ApplyPoint(p), nil
}
