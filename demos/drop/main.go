// drop releases a circle inside a circular enclosure. Gravity starts at zero
// and eases in over two seconds; the circle then bounces off the wall
// indefinitely. Press R to run it backward.
package main

import (
	"log"

	"github.com/2cscsc0/verlet-simple2d"
	"github.com/2cscsc0/verlet-simple2d/demos/internal/view"
	"github.com/tanema/gween/ease"
)

const (
	windowTitle   = "Verlet — Drop"
	showFPS       = true
	tps           = 60
	stepsPerFrame = 5
	borderR       = 100.0
	circleR       = 10.0
	rampSeconds   = 2.0
	scale         = 3.0
)

func main() {
	space, err := verlet.NewSpace(1.0 / (tps * stepsPerFrame))
	if err != nil {
		log.Fatal(err)
	}
	if err := space.SetGravity(verlet.Vec2{}); err != nil {
		log.Fatal(err)
	}

	border, err := verlet.NewCircleBorder(0, 0, borderR, 1)
	if err != nil {
		log.Fatal(err)
	}
	ball, err := verlet.NewCircle(-20, 30, circleR)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range []verlet.Entity{border, ball} {
		if err := space.AddBody(e); err != nil {
			log.Fatal(err)
		}
	}

	ramp, err := verlet.TweenGravity(space, verlet.DefaultGravity, rampSeconds, ease.InQuad)
	if err != nil {
		log.Fatal(err)
	}

	if err := view.Run(space, view.RunConfig{
		Title:         windowTitle,
		Scale:         scale,
		StepsPerFrame: stepsPerFrame,
		TPS:           tps,
		ShowFPS:       showFPS,
		Update: func() error {
			ramp.Update(1.0 / tps)
			return nil
		},
	}); err != nil {
		log.Fatal(err)
	}
}
