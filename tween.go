package verlet

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup eases a 2D quantity of a Space or a body toward a target over
// time. Create one with TweenGravity or TweenVelocity and call Update(dt)
// each frame, typically alongside Space.Step. Values are written through the
// validating setters, so the Verlet position pair stays consistent.
//
// There is no global tween manager; callers call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	apply  func(Vec2)
	alive  func() bool
	Done   bool
}

func newTweenGroup(from, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	return g
}

// Update advances the tween by dt seconds and applies the current value.
// If the target is gone (a body removed from its space) Done is set and
// nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.alive != nil && !g.alive() {
		g.Done = true
		return
	}

	x, doneX := g.tweens[0].Update(dt)
	y, doneY := g.tweens[1].Update(dt)
	g.apply(Vec2{float64(x), float64(y)})
	g.Done = doneX && doneY
}

// TweenGravity creates a TweenGroup that eases the space's gravity to the
// target over the given duration in seconds.
func TweenGravity(s *Space, to Vec2, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	if !to.IsFinite() {
		return nil, errorf("tween gravity to %v: %w", to, ErrInvalidArgument)
	}
	g := newTweenGroup(s.gravity, to, duration, fn)
	g.apply = func(v Vec2) { _ = s.SetGravity(v) }
	return g, nil
}

// TweenVelocity creates a TweenGroup that eases a body's velocity to the
// target. The tween stops once the body is no longer part of s.
func TweenVelocity(s *Space, c *Circle, to Vec2, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	if !to.IsFinite() {
		return nil, errorf("tween velocity to %v: %w", to, ErrInvalidArgument)
	}
	g := newTweenGroup(c.Velocity(), to, duration, fn)
	g.apply = func(v Vec2) { _ = c.SetVelocity(v) }
	g.alive = func() bool { return s.Contains(c) }
	return g, nil
}
