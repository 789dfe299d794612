package verlet

import (
	"io"
	"os"
	"slices"
	"time"
)

// EventSink receives collision events from a Space. Sinks observe only:
// they must not add or remove entities or move bodies.
type EventSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent describes one resolved collision.
type CollisionEvent struct {
	Step    uint64
	Handler HandlerKind
	A, B    Entity
	Contact Contact
}

// DefaultGravity is the gravity of a new Space.
var DefaultGravity = Vec2{0, -10}

// Space owns the kinetic bodies, the static borders and the collision
// handlers registered between them, and advances them with a fixed
// timestep. A Space is not safe for concurrent use.
type Space struct {
	kinetics []*Circle
	statics  []Entity
	handlers []*Handler

	gravity Vec2
	dt      float64

	steps  uint64
	locked bool
	sink   EventSink

	debug       bool
	debugOut    io.Writer
	debugWarned bool
}

// NewSpace creates an empty space with the given timestep, which must be
// positive and finite.
func NewSpace(dt float64) (*Space, error) {
	if !(dt > 0) || !isFinite(dt) {
		return nil, errorf("timestep %v: %w", dt, ErrInvalidArgument)
	}
	return &Space{
		gravity:  DefaultGravity,
		dt:       dt,
		debugOut: os.Stderr,
	}, nil
}

// Dt returns the fixed timestep.
func (s *Space) Dt() float64 { return s.dt }

// Gravity returns the acceleration applied to every kinetic body.
func (s *Space) Gravity() Vec2 { return s.gravity }

// SetGravity sets the acceleration applied to every kinetic body.
func (s *Space) SetGravity(g Vec2) error {
	if !g.IsFinite() {
		return errorf("gravity %v: %w", g, ErrInvalidArgument)
	}
	s.gravity = g
	return nil
}

// SetEventSink attaches a sink that is told about every resolved
// collision. Pass nil to detach.
func (s *Space) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Kinetics returns the kinetic bodies in insertion order. The slice is a
// copy; the bodies are not.
func (s *Space) Kinetics() []*Circle {
	return slices.Clone(s.kinetics)
}

// Statics returns the static borders in insertion order. The slice is a
// copy; the borders are not.
func (s *Space) Statics() []Entity {
	return slices.Clone(s.statics)
}

// StepCount returns the number of completed steps.
func (s *Space) StepCount() uint64 { return s.steps }

// HandlerCount returns the number of registered handlers.
func (s *Space) HandlerCount() int { return len(s.handlers) }

// Bounds returns the union of the bounds of all borders, or of all bodies
// when there are no borders.
func (s *Space) Bounds() Rect {
	var r Rect
	for _, e := range s.statics {
		r = r.Union(e.Bounds())
	}
	if r != (Rect{}) {
		return r
	}
	for _, c := range s.kinetics {
		r = r.Union(c.Bounds())
	}
	return r
}

// TotalCollisions returns the number of collisions resolved so far, counting
// each pair once.
func (s *Space) TotalCollisions() int {
	n := 0
	for _, c := range s.kinetics {
		n += c.collisions
	}
	for _, e := range s.statics {
		n += e.Collisions()
	}
	return n / 2
}

// Contains reports whether e has been added to the space.
func (s *Space) Contains(e Entity) bool {
	return s.indexOf(e) >= 0
}

func (s *Space) indexOf(e Entity) int {
	if c, ok := e.(*Circle); ok {
		return slices.Index(s.kinetics, c)
	}
	return slices.Index(s.statics, e)
}

// HandlerFor returns the registered handler for the pair (a, b). It fails
// with ErrMissingHandler when none matches.
func (s *Space) HandlerFor(a, b Entity) (*Handler, error) {
	if h := s.lookup(a, b); h != nil {
		return h, nil
	}
	return nil, errorf("%v and %v: %w", a.CollisionType(), b.CollisionType(), ErrMissingHandler)
}

// lookup finds the first handler registered for the pair's collision types
// whose strategy also fits the concrete shapes, so a shared group never
// dispatches a pair to the wrong strategy.
func (s *Space) lookup(a, b Entity) *Handler {
	ta, tb := a.CollisionType(), b.CollisionType()
	sa, sb := a.Shape(), b.Shape()
	for _, h := range s.handlers {
		if h.Matches(ta, tb) && h.accepts(sa, sb) {
			return h
		}
	}
	return nil
}

// AddBody adds a body or border to the space, first registering a handler
// for every pair it forms with the entities already present. Adding an
// entity twice is a no-op. AddBody panics on a nil entity.
func (s *Space) AddBody(e Entity) error {
	if e == nil {
		panic("verlet: cannot add nil entity")
	}
	if s.locked {
		return errorf("add %v: %w", e.Shape(), ErrSpaceLocked)
	}
	if s.Contains(e) {
		return nil
	}

	// Register every missing pair before touching the lists, so a failure
	// leaves the space as it was apart from handlers for valid pairs.
	if !e.Shape().Static() {
		for _, st := range s.statics {
			if err := s.ensureHandler(e, st); err != nil {
				return err
			}
		}
	}
	for _, k := range s.kinetics {
		if err := s.ensureHandler(e, k); err != nil {
			return err
		}
	}

	if c, ok := e.(*Circle); ok {
		s.kinetics = append(s.kinetics, c)
	} else {
		s.statics = append(s.statics, e)
	}
	return nil
}

func (s *Space) ensureHandler(a, b Entity) error {
	if s.lookup(a, b) != nil {
		return nil
	}
	h, err := NewHandler(a, b)
	if err != nil {
		return err
	}
	s.handlers = append(s.handlers, h)
	return nil
}

// RemoveBody removes a body or border and reports whether it was present.
// Handlers registered for it are kept.
func (s *Space) RemoveBody(e Entity) (bool, error) {
	if e == nil {
		return false, nil
	}
	if s.locked {
		return false, errorf("remove %v: %w", e.Shape(), ErrSpaceLocked)
	}
	i := s.indexOf(e)
	if i < 0 {
		return false, nil
	}
	if _, ok := e.(*Circle); ok {
		s.kinetics = slices.Delete(s.kinetics, i, i+1)
	} else {
		s.statics = slices.Delete(s.statics, i, i+1)
	}
	return true, nil
}

// Step advances the simulation by one timestep: every kinetic body is
// integrated, then every pair of bodies and every (body, border) pair is
// checked and resolved in insertion order. Resolution happens in place, so
// a body moved by one pair is seen moved by the next.
//
// Any error aborts the step where it occurred; bodies already resolved keep
// their new state.
func (s *Space) Step() error {
	s.locked = true
	defer func() { s.locked = false }()

	var stats debugStats
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	s.integrate()

	if s.debug {
		stats.integrateTime = time.Since(start)
		start = time.Now()
	}

	err := s.collide(&stats)

	if s.debug {
		stats.collideTime = time.Since(start)
		s.debugLog(stats)
	}
	if err != nil {
		return err
	}
	s.steps++
	return nil
}

// integrate advances every kinetic body with position Verlet.
func (s *Space) integrate() {
	dt2 := s.dt * s.dt
	for _, c := range s.kinetics {
		c.Acceleration = s.gravity
		vel := c.Location.Sub(c.PrevLocation)
		c.PrevLocation = c.Location
		c.Location = c.Location.Add(vel).Add(c.Acceleration.Scale(dt2))
	}
}

func (s *Space) collide(stats *debugStats) error {
	for i, c := range s.kinetics {
		for _, o := range s.kinetics[i+1:] {
			if err := s.collidePair(c, o, stats); err != nil {
				return err
			}
		}
		for _, st := range s.statics {
			if err := s.collidePair(c, st, stats); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Space) collidePair(a, b Entity, stats *debugStats) error {
	h := s.lookup(a, b)
	if h == nil {
		return errorf("step %d: %v and %v: %w", s.steps, a.CollisionType(), b.CollisionType(), ErrMissingHandler)
	}
	stats.pairs++
	if !h.Check(a, b) {
		return nil
	}
	contact, err := h.resolve(a, b)
	if err != nil {
		return errorf("step %d: %w", s.steps, err)
	}
	stats.resolutions++
	if s.sink != nil {
		s.sink.EmitCollision(CollisionEvent{
			Step:    s.steps,
			Handler: h.kind,
			A:       a,
			B:       b,
			Contact: contact,
		})
	}
	return nil
}

// Steps runs n steps, stopping at the first error.
func (s *Space) Steps(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reverse flips the velocity of every kinetic body and returns a function
// that flips them back. The returned function acts once; later calls do
// nothing. Typical use runs the simulation backward for a while:
//
//	restore := space.Reverse()
//	defer restore()
//	space.Steps(n)
//
// Reverse advances no time.
func (s *Space) Reverse() (restore func()) {
	s.flipVelocities()
	done := false
	return func() {
		if done {
			return
		}
		done = true
		s.flipVelocities()
	}
}

// Reversed runs fn with every velocity flipped and flips them back when fn
// returns, whatever it returns.
func (s *Space) Reversed(fn func() error) error {
	restore := s.Reverse()
	defer restore()
	return fn()
}

func (s *Space) flipVelocities() {
	for _, c := range s.kinetics {
		c.PrevLocation = c.Location.Add(c.Location.Sub(c.PrevLocation))
	}
}
