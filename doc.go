// Package verlet is a minimal 2D physics engine using position Verlet
// integration with discrete collision detection between circles and their
// enclosures.
//
// A [Space] owns kinetic bodies ([Circle]) and static borders
// ([CircleBorder], [RectangleBorder]), a gravity vector and a fixed
// timestep. Each call to [Space.Step] integrates every body and then checks
// every pair once, resolving overlaps in place.
//
// # Quick start
//
//	space, _ := verlet.NewSpace(1.0 / 300)
//	border, _ := verlet.NewCircleBorder(0, 0, 100, 1)
//	ball, _ := verlet.NewCircle(0, 0, 10)
//	space.AddBody(border)
//	space.AddBody(ball)
//	for i := 0; i < 1000; i++ {
//		if err := space.Step(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Velocity
//
// Bodies store no velocity. It is always Location - PrevLocation, the
// displacement over the last step, so it is measured in distance per step
// rather than per second. Use [Circle.SetVelocity] and [Circle.Place] to
// change motion without breaking that pair.
//
// # Collision handlers
//
// Adding an entity registers a [Handler] for every pair it forms with the
// entities already in the space. Handlers are looked up by
// [CollisionType]: the shape, or a collision group set with SetGroup.
// Three strategies exist: circle against circle, circle inside a circular
// enclosure, and circle inside a rectangular enclosure. Any other pair
// fails with [ErrUnsupportedPair].
//
// # Running backward
//
// [Space.Reverse] flips every velocity and returns a function that flips
// them back, which lets a configuration be run backward to settle and then
// resumed forward:
//
//	restore := space.Reverse()
//	space.Steps(10000)
//	restore()
//
// # Errors
//
// Every error wraps one of [ErrInvalidArgument], [ErrDegenerateGeometry],
// [ErrPhysicsInvariant], [ErrUnsupportedPair] or [ErrMissingHandler]. A
// failing Step stops where it failed; bodies already resolved keep their
// new state.
//
// # Observing
//
// An [EventSink] set with [Space.SetEventSink] is told about every resolved
// collision; the ecs subpackage forwards these to a [Donburi] world.
// [TweenGravity] and [TweenVelocity] ease parameters over time with
// [gween].
//
// [Donburi]: https://github.com/yohamta/donburi
// [gween]: https://github.com/tanema/gween
package verlet
