// Package ecs provides ECS adapters for verlet's collision events.
//
// The primary adapter is [NewDonburiSink], which forwards every collision a
// [verlet.Space] resolves into a [Donburi] world as a typed event. Subscribe
// to [CollisionEventType] in your ECS systems to receive them, or create a
// [CollisionStats] entity with [NewCollisionStats] to keep running totals.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	space.SetEventSink(sink)
//	stats := ecs.NewCollisionStats(world)
//	...
//	space.Step()
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
