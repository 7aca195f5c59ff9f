package zoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
	mask   MouseButtons
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft, ButtonsLeft},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle, ButtonsMiddle},
	{ebiten.MouseButtonRight, MouseButtonRight, ButtonsRight},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// readButtons returns the mouse buttons currently held.
func readButtons() MouseButtons {
	var held MouseButtons
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			held |= b.mask
		}
	}
	return held
}

// processInput is called from Update to turn this frame's mouse state into
// pointer events. Injected events take precedence over real input.
func (c *Canvas) processInput() {
	if c.processInjectedInput() {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	mods := readModifiers()
	held := readButtons()

	inside := x >= 0 && y >= 0 && x < float64(c.width) && y < float64(c.height)
	if !inside {
		if c.inside {
			c.inside = false
			c.PointerLeave(PointerEvent{X: x, Y: y, Buttons: held, Modifiers: mods})
		}
		c.pressed = 0
		return
	}
	c.inside = true

	base := PointerEvent{X: x, Y: y, Buttons: held, Modifiers: mods}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			ev := base
			ev.Type = EventPointerDown
			ev.Button = b.button
			c.pressed |= b.mask
			c.HandlePointer(ev)
		}
	}

	if x != c.cursor.X || y != c.cursor.Y {
		ev := base
		ev.Type = EventPointerMove
		c.HandlePointer(ev)
		c.cursor = Vec2{x, y}
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			ev := base
			ev.Type = EventPointerUp
			ev.Button = b.button
			c.HandlePointer(ev)
			// Only a press that started on the canvas becomes a click.
			if b.button == MouseButtonLeft && c.pressed.Has(ButtonsLeft) {
				ev.Type = EventClick
				c.HandlePointer(ev)
			}
			c.pressed &^= b.mask
		}
	}

	// ebiten reports positive Y when scrolling up; events use the browser
	// convention where scrolling up is negative.
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		ev := base
		ev.Type = EventWheel
		ev.DeltaX = -wx
		ev.DeltaY = -wy
		c.HandlePointer(ev)
	}
}
