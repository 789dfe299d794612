// collide resolves a single head-on collision between two overlapping
// circles by hand, prints both bodies, and then lets the space run.
package main

import (
	"fmt"
	"log"

	"github.com/2cscsc0/verlet-simple2d"
	"github.com/2cscsc0/verlet-simple2d/demos/internal/view"
)

const (
	windowTitle = "Verlet — Collide"
	showFPS     = true
	tps         = 120
	scale       = 3.0
)

func main() {
	space, err := verlet.NewSpace(1.0 / tps)
	if err != nil {
		log.Fatal(err)
	}

	left, err := newMovingCircle(45, 50, 20, verlet.Vec2{X: 10})
	if err != nil {
		log.Fatal(err)
	}
	right, err := newMovingCircle(55, 50, 20, verlet.Vec2{X: -10})
	if err != nil {
		log.Fatal(err)
	}
	border, err := verlet.NewRectangleBorder(0, 0, 100, 100, 1000)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range []verlet.Entity{left, right, border} {
		if err := space.AddBody(e); err != nil {
			log.Fatal(err)
		}
	}

	h, err := space.HandlerFor(left, right)
	if err != nil {
		log.Fatal(err)
	}
	if err := h.Resolve(left, right); err != nil {
		log.Fatal(err)
	}
	fmt.Println(left)
	fmt.Println(right)

	if err := view.Run(space, view.RunConfig{
		Title:   windowTitle,
		Scale:   scale,
		TPS:     tps,
		ShowFPS: showFPS,
	}); err != nil {
		log.Fatal(err)
	}
}

func newMovingCircle(x, y, r float64, v verlet.Vec2) (*verlet.Circle, error) {
	c, err := verlet.NewCircle(x, y, r)
	if err != nil {
		return nil, err
	}
	if err := c.SetVelocity(v); err != nil {
		return nil, err
	}
	return c, nil
}
