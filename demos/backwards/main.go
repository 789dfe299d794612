// backwards places circles on a ring inside a box, each drifting along the
// ring, and runs the space backward for a while before showing it running
// forward. The number of collisions seen while running backward is logged.
package main

import (
	"log"

	"github.com/2cscsc0/verlet-simple2d"
	"github.com/2cscsc0/verlet-simple2d/demos/internal/view"
)

const (
	windowTitle = "Verlet — Backwards"
	showFPS     = true
	frameRate   = 30
	stepsPerTPS = 10
	numCircles  = 30
	circleR     = 10.0
	ringR       = 200.0
	steps       = 10_000
	scale       = 2.0
)

var ringCenter = verlet.Vec2{X: 260, Y: 260}

func main() {
	space, err := verlet.NewSpace(1.0 / (frameRate * stepsPerTPS))
	if err != nil {
		log.Fatal(err)
	}
	if err := space.SetGravity(verlet.Vec2{}); err != nil {
		log.Fatal(err)
	}

	for _, p := range verlet.RingLayout(ringCenter, ringR, numCircles) {
		c, err := verlet.NewCircle(p.X, p.Y, circleR)
		if err != nil {
			log.Fatal(err)
		}
		// Perpendicular to the position vector, a sixtieth of a unit per
		// step for a point on the ring's radius.
		v := verlet.Vec2{X: -p.Y, Y: p.X}.Scale(1 / (ringR * 60))
		if err := c.SetVelocity(v); err != nil {
			log.Fatal(err)
		}
		if err := space.AddBody(c); err != nil {
			log.Fatal(err)
		}
	}

	border, err := verlet.NewRectangleBorder(10, 10, 500, 500, 100)
	if err != nil {
		log.Fatal(err)
	}
	if err := space.AddBody(border); err != nil {
		log.Fatal(err)
	}

	if err := space.Reversed(func() error { return space.Steps(steps) }); err != nil {
		log.Fatal(err)
	}
	log.Printf("collisions while running backward: %d", space.TotalCollisions())

	if err := view.Run(space, view.RunConfig{
		Title:         windowTitle,
		Scale:         scale,
		StepsPerFrame: stepsPerTPS,
		TPS:           frameRate,
		ShowFPS:       showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}
