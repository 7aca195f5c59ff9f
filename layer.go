package zoom

// Layer is an attachment point for content shown through one or more
// cameras. It is an ordinary Node in the tree; cameras paint it under their
// own view transform.
type Layer struct {
	*Node

	cameras []*Camera
}

// NewLayer creates an empty layer.
func NewLayer(name string) *Layer {
	l := &Layer{Node: newNode(name, NodeTypeLayer)}
	l.Node.handle = l
	return l
}

// LayerOf returns the Layer wrapping n, or nil if n is not a layer node.
func LayerOf(n *Node) *Layer {
	if n == nil || n.Type != NodeTypeLayer {
		return nil
	}
	l, _ := n.handle.(*Layer)
	return l
}

// Cameras returns the cameras viewing this layer. The returned slice MUST
// NOT be mutated by the caller.
func (l *Layer) Cameras() []*Camera {
	return l.cameras
}

// AddCamera records c as viewing this layer. Adding a camera twice is a
// no-op. It does not add the layer to the camera; use Camera.AddLayer.
func (l *Layer) AddCamera(c *Camera) {
	for _, existing := range l.cameras {
		if existing == c {
			return
		}
	}
	l.cameras = append(l.cameras, c)
}

// RemoveCamera detaches the layer from c on both sides.
func (l *Layer) RemoveCamera(c *Camera) {
	c.RemoveLayer(l)
}

func (l *Layer) dropCamera(c *Camera) {
	for i, existing := range l.cameras {
		if existing == c {
			copy(l.cameras[i:], l.cameras[i+1:])
			l.cameras[len(l.cameras)-1] = nil
			l.cameras = l.cameras[:len(l.cameras)-1]
			return
		}
	}
}
