package zoom

import "fmt"

// PointerEvent is a pointer interaction in canvas (screen) coordinates.
type PointerEvent struct {
	Type      EventType
	X, Y      float64
	Button    MouseButton  // button that changed, for down/up/click
	Buttons   MouseButtons // buttons held while the event fired
	DeltaX    float64      // wheel only
	DeltaY    float64      // wheel only; negative scrolls up
	Modifiers KeyModifiers
}

// Event is delivered to listeners. Picked is the full set of nodes under the
// pointer, deepest first per layer.
type Event struct {
	PointerEvent
	Picked []*Node
}

// Listener is any value implementing one or more of the handler interfaces
// below. Each handler returns true to consume the event, which stops it from
// reaching later listeners and ancestors.
type Listener any

// PointerDownHandler receives EventPointerDown.
type PointerDownHandler interface {
	PointerDown(e *Event) bool
}

// PointerUpHandler receives EventPointerUp.
type PointerUpHandler interface {
	PointerUp(e *Event) bool
}

// PointerMoveHandler receives EventPointerMove.
type PointerMoveHandler interface {
	PointerMove(e *Event) bool
}

// ClickHandler receives EventClick.
type ClickHandler interface {
	Click(e *Event) bool
}

// WheelHandler receives EventWheel.
type WheelHandler interface {
	Wheel(e *Event) bool
}

// MouseOverHandler receives EventMouseOver.
type MouseOverHandler interface {
	MouseOver(e *Event) bool
}

// MouseOutHandler receives EventMouseOut.
type MouseOutHandler interface {
	MouseOut(e *Event) bool
}

// HandlerFuncs adapts plain functions to the handler interfaces. Nil fields
// ignore their event. Register a pointer (&HandlerFuncs{...}) so the value
// can later be removed.
type HandlerFuncs struct {
	OnPointerDown func(e *Event) bool
	OnPointerUp   func(e *Event) bool
	OnPointerMove func(e *Event) bool
	OnClick       func(e *Event) bool
	OnWheel       func(e *Event) bool
	OnMouseOver   func(e *Event) bool
	OnMouseOut    func(e *Event) bool
}

func (h *HandlerFuncs) PointerDown(e *Event) bool { return call(h.OnPointerDown, e) }
func (h *HandlerFuncs) PointerUp(e *Event) bool   { return call(h.OnPointerUp, e) }
func (h *HandlerFuncs) PointerMove(e *Event) bool { return call(h.OnPointerMove, e) }
func (h *HandlerFuncs) Click(e *Event) bool       { return call(h.OnClick, e) }
func (h *HandlerFuncs) Wheel(e *Event) bool       { return call(h.OnWheel, e) }
func (h *HandlerFuncs) MouseOver(e *Event) bool   { return call(h.OnMouseOver, e) }
func (h *HandlerFuncs) MouseOut(e *Event) bool    { return call(h.OnMouseOut, e) }

func call(fn func(*Event) bool, e *Event) bool {
	if fn == nil {
		return false
	}
	return fn(e)
}

func isListener(l Listener) bool {
	switch l.(type) {
	case PointerDownHandler, PointerUpHandler, PointerMoveHandler,
		ClickHandler, WheelHandler, MouseOverHandler, MouseOutHandler:
		return true
	}
	return false
}

// AddListener registers l on n. Adding the same listener twice is a no-op.
// Panics if l implements none of the handler interfaces.
func (n *Node) AddListener(l Listener) *Node {
	debugCheckListener(n, l)
	for _, existing := range n.listeners {
		if existing == l {
			return n
		}
	}
	n.listeners = append(n.listeners, l)
	return n
}

// RemoveListener unregisters l. No-op if l is not registered.
func (n *Node) RemoveListener(l Listener) *Node {
	for i, existing := range n.listeners {
		if existing == l {
			copy(n.listeners[i:], n.listeners[i+1:])
			n.listeners[len(n.listeners)-1] = nil
			n.listeners = n.listeners[:len(n.listeners)-1]
			return n
		}
	}
	return n
}

// Listeners returns the registered listeners in registration order. The
// returned slice MUST NOT be mutated by the caller.
func (n *Node) Listeners() []Listener {
	return n.listeners
}

// DispatchEvent offers e to each listener of n in registration order and
// reports whether one consumed it.
func (n *Node) DispatchEvent(e *Event) bool {
	for _, l := range n.listeners {
		if dispatchTo(l, e) {
			return true
		}
	}
	return false
}

func dispatchTo(l Listener, e *Event) bool {
	switch e.Type {
	case EventPointerDown:
		if h, ok := l.(PointerDownHandler); ok {
			return h.PointerDown(e)
		}
	case EventPointerUp:
		if h, ok := l.(PointerUpHandler); ok {
			return h.PointerUp(e)
		}
	case EventPointerMove:
		if h, ok := l.(PointerMoveHandler); ok {
			return h.PointerMove(e)
		}
	case EventClick:
		if h, ok := l.(ClickHandler); ok {
			return h.Click(e)
		}
	case EventWheel:
		if h, ok := l.(WheelHandler); ok {
			return h.Wheel(e)
		}
	case EventMouseOver:
		if h, ok := l.(MouseOverHandler); ok {
			return h.MouseOver(e)
		}
	case EventMouseOut:
		if h, ok := l.(MouseOutHandler); ok {
			return h.MouseOut(e)
		}
	default:
		panic(fmt.Sprintf("zoom: cannot dispatch event type %v", e.Type))
	}
	return false
}

// Bubble delivers e to every node in targets, walking from each target up
// through its ancestors. Once any node consumes the event, delivery stops
// for all remaining targets. Reports whether the event was consumed.
func Bubble(e *Event, targets []*Node) bool {
	for _, target := range targets {
		for n := target; n != nil; n = n.Parent {
			if n.DispatchEvent(e) {
				return true
			}
		}
	}
	return false
}
