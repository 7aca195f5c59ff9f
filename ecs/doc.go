// Package ecs forwards zoom interaction events into a Donburi world.
//
// Set the store on a canvas (pointer events) and on a navigator (focus
// changes), then drain the events from an ECS system:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//	canvas.SetEntityStore(store)
//	nav.SetEntityStore(store)
//
//	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, e zoom.InteractionEvent) {
//		// ...
//	})
//	ecs.InteractionEventType.ProcessEvents(world)
package ecs
