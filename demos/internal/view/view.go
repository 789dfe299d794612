// Package view draws a verlet.Space in an ebiten window. It is shared by the
// demos and is not part of the library API.
package view

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/2cscsc0/verlet-simple2d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// RunConfig configures Run.
type RunConfig struct {
	Title string
	// Scale maps world units to pixels. Zero means 1.
	Scale float64
	// StepsPerFrame is the number of Space steps per tick. Zero means 1.
	StepsPerFrame int
	// TPS is the tick rate. Zero keeps ebiten's default of 60.
	TPS     int
	ShowFPS bool
	// Update, when set, runs once per tick before stepping.
	Update func() error
}

var (
	backgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	borderColor     = color.RGBA{0xb4, 0xb4, 0xb4, 0xff}
	palette         = []color.RGBA{
		{0x64, 0xe6, 0x19, 0xff},
		{0xe6, 0xb4, 0x19, 0xff},
		{0xe6, 0xda, 0x19, 0xff},
		{0x19, 0xb8, 0xe6, 0xff},
		{0xe6, 0x19, 0x1c, 0xff},
		{0xe6, 0xda, 0x19, 0xff},
		{0x1d, 0x19, 0xe6, 0xff},
	}
)

const (
	// paletteSeed fixes the color each body gets across frames.
	paletteSeed = 1440

	zoomStep   = 1.1
	followLerp = 0.15
	homeScroll = 0.4
)

// Run opens a window sized to the space's bounds and steps the space every
// tick until the window is closed or a step fails.
//
// Keys: Space pauses, Period steps once while paused, R runs time backward
// until pressed again, F follows the first body, H scrolls back to the
// start, Escape quits. The mouse wheel zooms.
func Run(space *verlet.Space, cfg RunConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.StepsPerFrame <= 0 {
		cfg.StepsPerFrame = 1
	}
	cam := newCamera(space.Bounds(), cfg.Scale)
	g := &game{
		space: space,
		cfg:   cfg,
		cam:   cam,
		home:  verlet.Vec2{X: cam.X, Y: cam.Y},
	}
	w, h := cam.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	space *verlet.Space
	cfg   RunConfig
	cam   *camera
	home  verlet.Vec2

	paused  bool
	restore func()
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.toggleReverse()
	}
	g.updateCamera()
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}

	n := g.cfg.StepsPerFrame
	if g.paused {
		n = 0
		if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
			n = 1
		}
	}
	return g.space.Steps(n)
}

func (g *game) updateCamera() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if k := g.space.Kinetics(); len(k) > 0 && !g.cam.Following() {
			g.cam.Follow(k[0], 0, 0, followLerp)
		} else {
			g.cam.Unfollow()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.cam.ScrollTo(g.home.X, g.home.Y, homeScroll, ease.OutCubic)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.cam.Zoom *= math.Pow(zoomStep, dy)
	}
	g.cam.update(1 / float32(ebiten.TPS()))
}

func (g *game) toggleReverse() {
	if g.restore != nil {
		g.restore()
		g.restore = nil
		return
	}
	g.restore = g.space.Reverse()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, e := range g.space.Statics() {
		switch b := e.(type) {
		case *verlet.CircleBorder:
			cx, cy := g.cam.WorldToScreen(b.Location)
			vector.DrawFilledCircle(screen, cx, cy, g.cam.length(b.Radius()), borderColor, true)
		case *verlet.RectangleBorder:
			w, h := b.Dims()
			x, y := g.cam.WorldToScreen(verlet.Vec2{X: b.Location.X, Y: b.Location.Y + h})
			vector.DrawFilledRect(screen, x, y, g.cam.length(w), g.cam.length(h), borderColor, true)
		}
	}

	rng := rand.New(rand.NewPCG(paletteSeed, 0))
	for _, c := range g.space.Kinetics() {
		clr := palette[rng.IntN(len(palette))]
		cx, cy := g.cam.WorldToScreen(c.Location)
		vector.DrawFilledCircle(screen, cx, cy, g.cam.length(c.Radius()), clr, true)
	}

	if g.cfg.ShowFPS {
		state := ""
		if g.paused {
			state = " (paused)"
		} else if g.restore != nil {
			state = " (reversed)"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nstep: %d%s\ncollisions: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.space.StepCount(), state, g.space.TotalCollisions()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cam.size()
}
