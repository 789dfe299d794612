package view

import (
	"github.com/2cscsc0/verlet-simple2d"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// camera maps world coordinates (y up) to screen pixels (y down), centered
// on (X, Y) at the given zoom.
type camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is pixels per world unit.
	Zoom float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64

	followTarget  *verlet.Circle
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	scrollTween *scrollAnim
}

// newCamera sizes a viewport around bounds and centers on it. The viewed
// area starts at the origin, or at the bounds when they reach below it, and
// keeps the same margin on the far side as the bounds leave on the near
// side.
func newCamera(bounds verlet.Rect, zoom float64) *camera {
	ox := min(bounds.X, 0)
	oy := min(bounds.Y, 0)
	w := bounds.X + bounds.Width + max(bounds.X, 0) - ox
	h := bounds.Y + bounds.Height + max(bounds.Y, 0) - oy
	return &camera{
		X:      ox + w/2,
		Y:      oy + h/2,
		Zoom:   zoom,
		Width:  float64(max(int(w*zoom), 1)),
		Height: float64(max(int(h*zoom), 1)),
	}
}

// size returns the viewport size in pixels.
func (c *camera) size() (int, int) {
	return int(c.Width), int(c.Height)
}

// Follow makes the camera track a body with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *camera) Follow(target *verlet.Circle, offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
	c.scrollTween = nil
}

// Unfollow stops tracking the target.
func (c *camera) Unfollow() {
	c.followTarget = nil
}

// Following reports whether the camera tracks a body.
func (c *camera) Following() bool {
	return c.followTarget != nil
}

// ScrollTo eases the camera to (x, y) over duration seconds. It replaces
// any follow target.
func (c *camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.followTarget = nil
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

func (c *camera) update(dt float32) {
	if c.followTarget != nil {
		targetX := c.followTarget.Location.X + c.followOffsetX
		targetY := c.followTarget.Location.Y + c.followOffsetY
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *camera) WorldToScreen(p verlet.Vec2) (sx, sy float32) {
	sx = float32(c.Width/2 + (p.X-c.X)*c.Zoom)
	sy = float32(c.Height/2 - (p.Y-c.Y)*c.Zoom)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *camera) ScreenToWorld(sx, sy float64) verlet.Vec2 {
	return verlet.Vec2{
		X: c.X + (sx-c.Width/2)/c.Zoom,
		Y: c.Y - (sy-c.Height/2)/c.Zoom,
	}
}

// length converts a world distance to pixels.
func (c *camera) length(l float64) float32 {
	return float32(l * c.Zoom)
}
