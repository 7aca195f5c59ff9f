package zoom

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default canvas clear color.
var ColorWhite = Color{1, 1, 1, 1}

// IsZero reports whether c is the zero Color, which nodes treat as "no fill".
func (c Color) IsZero() bool {
	return c == Color{}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// NodeType distinguishes the structural role of a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // plain content node
	NodeTypeLayer                     // attachment point for camera content
	NodeTypeCamera                    // viewport onto one or more layers; never picked
	NodeTypeRoot                      // topmost node owning the scheduler
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeLayer:
		return "layer"
	case NodeTypeCamera:
		return "camera"
	case NodeTypeRoot:
		return "root"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer button was pressed
	EventPointerUp                    // a pointer button was released
	EventPointerMove                  // the pointer moved, with or without buttons held
	EventClick                        // press then release without leaving the canvas
	EventWheel                        // the scroll wheel moved
	EventMouseOver                    // a node entered the picked set
	EventMouseOut                     // a node left the picked set
	EventFocus                        // the navigator zoomed to a new focus; ECS bridge only
)

func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	case EventClick:
		return "click"
	case EventWheel:
		return "wheel"
	case EventMouseOver:
		return "mouseover"
	case EventMouseOut:
		return "mouseout"
	case EventFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
	MouseButtonRight                     // secondary (right) mouse button
)

// MouseButtons is a bitmask of the buttons held during an event.
type MouseButtons uint8

const (
	ButtonsLeft MouseButtons = 1 << iota
	ButtonsRight
	ButtonsMiddle
)

// Has reports whether every button in mask is held.
func (b MouseButtons) Has(mask MouseButtons) bool {
	return b&mask == mask
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
