package ecs

import (
	"github.com/2cscsc0/verlet-simple2d"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for verlet collision events.
// Subscribe to this in your ECS systems to receive every resolved collision.
var CollisionEventType = events.NewEventType[verlet.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collision events are published to CollisionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) verlet.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event verlet.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}

// CollisionStats holds running collision totals for a world.
type CollisionStats struct {
	Total  int
	ByKind map[verlet.HandlerKind]int
	// LastStep is the step of the most recent event seen.
	LastStep uint64
}

// CollisionStatsComponent is the Donburi component holding CollisionStats.
var CollisionStatsComponent = donburi.NewComponentType[CollisionStats]()

// NewCollisionStats creates an entity carrying a CollisionStats component
// and subscribes it to CollisionEventType. Totals are updated when the
// world's events are processed.
func NewCollisionStats(world donburi.World) donburi.Entity {
	entity := world.Create(CollisionStatsComponent)
	CollisionStatsComponent.SetValue(world.Entry(entity), CollisionStats{
		ByKind: make(map[verlet.HandlerKind]int),
	})

	CollisionEventType.Subscribe(world, func(w donburi.World, e verlet.CollisionEvent) {
		if !w.Valid(entity) {
			return
		}
		stats := CollisionStatsComponent.Get(w.Entry(entity))
		stats.Total++
		stats.ByKind[e.Handler]++
		stats.LastStep = e.Step
	})
	return entity
}
