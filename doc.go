// Package zoom is a retained-mode 2D scene graph for zoomable user
// interfaces, rendered with [Ebitengine].
//
// # Quick start
//
// A [Canvas] owns a [Root], one [Layer] for content, and one [Camera]
// viewing that layer. Add nodes to the layer, attach a [Navigator], and
// hand the canvas to [Run]:
//
//	canvas := zoom.NewCanvas(800, 600)
//
//	card := zoom.NewRect("card", zoom.NewBounds(0, 0, 200, 120), zoom.Color{R: 0.9, G: 0.9, B: 1, A: 1})
//	card.Focusable = true
//	canvas.Layer().AddChild(card)
//
//	nav := zoom.NewNavigator(canvas.Camera())
//	canvas.Layer().AddListener(nav)
//
//	zoom.Run(canvas, zoom.RunConfig{Title: "zoom"})
//
// # Scene graph
//
// Every element is a [Node]. A node has local [Bounds], a local [Transform]
// to its parent, and ordered children. [Node.FullBounds] covers the node and
// every descendant in local space; [Node.GlobalFullBounds] is the same box in
// root space. Both are cached and recomputed only after a geometry change.
//
// Cameras and layers are nodes too. A camera paints the layers it views
// through its view transform, clipped to its viewport. One layer can be
// viewed by several cameras at once.
//
// # Painting
//
// Painting goes through the [Context] interface. [ImageContext] implements
// it on an *ebiten.Image; tests can supply a recording fake. A canvas
// repaints only when something in its tree called [Node.InvalidatePaint].
// Nodes whose accumulated scale drops below [Node.MinScale] are skipped, and
// nodes outside the current clip are culled.
//
// # Events
//
// Pointer events are picked against the camera's view. The picked set runs
// deepest node first, and each picked node bubbles the event to its
// ancestors until a listener consumes it. Listeners implement any of the
// handler interfaces ([PointerDownHandler], [ClickHandler], ...) or use
// [HandlerFuncs].
//
// # Activities
//
// A [Scheduler] steps [Activity] values on a polling interval. Camera view
// and node transform animations are activities, as is the debounce behind
// [Navigator.ZoomTo]. Easing curves come from [github.com/tanema/gween/ease];
// see [EasingByName].
//
// # Debug mode
//
// [SetDebugMode] raises the package logger to Debug level, logs paint
// statistics on every repaint, and warns about very deep trees and very
// wide nodes.
//
// # Scripted input
//
// [LoadScript] reads a YAML or JSON list of gestures and screenshots that a
// [ScriptRunner] attached with [Canvas.SetScriptRunner] plays back one step
// per frame:
//
//	steps:
//	  - {action: click, x: 200, y: 150}
//	  - {action: wait, frames: 40}
//	  - {action: screenshot, label: card}
//
// [Ebitengine]: https://ebitengine.org
package zoom
