package verlet

import (
	"errors"
	"fmt"
)

// Error conditions reported by the engine. Every error returned from this
// package wraps exactly one of these; match them with errors.Is. All of them
// are fatal to the step in progress: nothing is retried or rolled back.
var (
	// ErrInvalidArgument reports malformed input: a non-positive or
	// non-finite scalar, a non-finite vector, an empty candidate list, or
	// two static borders offered as a collision pair.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateGeometry reports parallel or coincident lines, or a
	// zero-length direction vector, in an intersection routine.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrPhysicsInvariant reports a resolved contact that implies more
	// travel than occurred during the step (t > 1). The timestep or the
	// body radius is too large for the body's velocity.
	ErrPhysicsInvariant = errors.New("physics invariant violated")

	// ErrUnsupportedPair reports a shape combination with no handler.
	ErrUnsupportedPair = errors.New("unsupported shape pair")

	// ErrMissingHandler reports a pair that was never registered with the
	// space. AddBody registers every pair, so this indicates a bug.
	ErrMissingHandler = errors.New("missing collision handler")

	// ErrSpaceLocked reports an attempt to add or remove entities while the
	// space is stepping.
	ErrSpaceLocked = fmt.Errorf("space is locked: %w", ErrInvalidArgument)
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("verlet: "+format, args...)
}
