package ecs

import (
	"github.com/phanxgames/zoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for zoom interaction events.
// Subscribe to this in your ECS systems to receive pointer and focus events.
var InteractionEventType = events.NewEventType[zoom.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) zoom.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event zoom.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
