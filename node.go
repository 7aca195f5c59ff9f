package zoom

// nodeIDCounter is a plain counter (no atomic: the scene graph is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// geometryEpoch advances on every geometry mutation anywhere. Cached global
// bounds remember the epoch they were computed in and are stale once it moves.
var geometryEpoch uint64

func bumpGeometry() {
	geometryEpoch++
}

// Node is the scene graph element. Layers, cameras, and the root are Nodes
// with a different Type wrapped by a typed handle (Layer, Camera, Root).
//
// Hooks are nil by default. OnPaint replaces the default fill; returning
// false from it skips this node's children for the current frame.
// OnLayoutChildren runs just before full bounds are recomputed so a node can
// position children by their measured sizes.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry (local)
	bounds    Bounds
	transform Transform

	// Paint and navigation
	FillColor Color
	Visible   bool
	Focusable bool
	MinScale  float64

	// Metadata
	UserData any

	OnPaint              func(ctx Context, scale float64) bool
	OnPaintAfterChildren func(ctx Context)
	OnLayoutChildren     func(n *Node)

	listeners []Listener

	// Caches
	fullBounds       Bounds
	fullBoundsDirty  bool
	globalBounds     Bounds
	globalBoundsSeen uint64 // geometryEpoch+1 when globalBounds was computed

	handle any   // *Camera, *Layer or *Root wrapping this node
	scene  *Root // set only on a root's own node
}

func newNode(name string, typ NodeType) *Node {
	return &Node{
		ID:              nextNodeID(),
		Name:            name,
		Type:            typ,
		transform:       Identity(),
		Visible:         true,
		fullBoundsDirty: true,
	}
}

// NewNode creates a content node with identity transform and untouched bounds.
func NewNode(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// NewRect creates a node filled with c over bounds.
func NewRect(name string, bounds Bounds, c Color) *Node {
	n := NewNode(name)
	n.bounds = bounds
	n.FillColor = c
	return n
}

// --- Tree manipulation ---

// AddChild appends children in order. A child that already has a parent is
// detached from it first. Panics if a child is nil or is an ancestor of n.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			panic("zoom: cannot add nil child")
		}
		if isAncestor(child, n) {
			panic("zoom: adding child would create a cycle")
		}
		if child.Parent != nil {
			child.Parent.removeChildByPtr(child)
			child.Parent.invalidateBounds()
		}
		child.Parent = n
		n.children = append(n.children, child)
		if globalDebug {
			debugCheckTreeDepth(child)
		}
	}
	if globalDebug {
		debugCheckChildCount(n)
	}
	n.invalidateBounds()
	n.InvalidatePaint()
	return n
}

// RemoveChild detaches child from n. Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) *Node {
	if child == nil || child.Parent != n {
		panic("zoom: child's parent is not this node")
	}
	// Paint must be invalidated while the child is still reachable from the root.
	n.InvalidatePaint()
	n.removeChildByPtr(child)
	child.Parent = nil
	n.invalidateBounds()
	return n
}

// RemoveFromParent detaches n from its parent. No-op without a parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list in paint order. The returned slice MUST NOT
// be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// MoveToFront moves n to index 0 of its parent's children. Paint order
// changes; picking still visits every child.
func (n *Node) MoveToFront() *Node {
	p := n.Parent
	if p == nil || len(p.children) < 2 {
		return n
	}
	p.removeChildByPtr(n)
	p.children = append(p.children, nil)
	copy(p.children[1:], p.children)
	p.children[0] = n
	n.InvalidatePaint()
	return n
}

// MoveToBack moves n to the last index of its parent's children.
func (n *Node) MoveToBack() *Node {
	p := n.Parent
	if p == nil || len(p.children) < 2 {
		return n
	}
	p.removeChildByPtr(n)
	p.children = append(p.children, n)
	n.InvalidatePaint()
	return n
}

// Root returns the Root owning the tree n belongs to, or nil when the
// topmost ancestor is not a root.
func (n *Node) Root() *Root {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	return top.scene
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
