package zoom

// InjectPress queues a left-button press at the given canvas coordinates.
// The event is consumed on the next frame's Update, and real mouse input is
// skipped for that frame.
func (c *Canvas) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, PointerEvent{
		Type: EventPointerDown, X: x, Y: y,
		Button:  MouseButtonLeft,
		Buttons: ButtonsLeft,
	})
}

// InjectMove queues a pointer move with the left button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Canvas) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, PointerEvent{
		Type: EventPointerMove, X: x, Y: y,
		Buttons: ButtonsLeft,
	})
}

// InjectHover queues a pointer move with no button held.
func (c *Canvas) InjectHover(x, y float64) {
	c.injectQueue = append(c.injectQueue, PointerEvent{
		Type: EventPointerMove, X: x, Y: y,
	})
}

// InjectRelease queues a left-button release. A click follows it in the
// same frame, as a browser would.
func (c *Canvas) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, PointerEvent{
		Type: EventPointerUp, X: x, Y: y,
		Button: MouseButtonLeft,
	})
}

// InjectRightClick queues a right-button press and release. Consumes two
// frames.
func (c *Canvas) InjectRightClick(x, y float64) {
	c.injectQueue = append(c.injectQueue,
		PointerEvent{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonRight, Buttons: ButtonsRight},
		PointerEvent{Type: EventPointerUp, X: x, Y: y, Button: MouseButtonRight},
	)
}

// InjectWheel queues a wheel event. Negative deltaY scrolls up.
func (c *Canvas) InjectWheel(x, y, deltaY float64) {
	c.injectQueue = append(c.injectQueue, PointerEvent{
		Type: EventWheel, X: x, Y: y,
		DeltaY: deltaY,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (c *Canvas) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic events.
func (c *Canvas) PendingInjected() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and handles it.
// Returns true if an event was consumed (real mouse input should be skipped).
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	ev := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	c.HandlePointer(ev)
	if ev.Type == EventPointerUp && ev.Button == MouseButtonLeft {
		click := ev
		click.Type = EventClick
		c.HandlePointer(click)
	}
	return true
}
