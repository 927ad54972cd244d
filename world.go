package main

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	worldGravity = 600.0
	groundMargin = 60.0

	crateSize       = 48.0
	crateMass       = 4.0
	maxCrates       = 14
	spawnEveryTicks = 90
)

// World is the small chipmunk scene the camera films: a ground strip, side
// walls, and a steady drizzle of tumbling crates.
type World struct {
	space  *cp.Space
	crates []*crate
	width  float64
	height float64
	tick   int
}

type crate struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewWorld(width, height float64) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: worldGravity})

	ground := cp.NewSegment(space.StaticBody, cp.Vector{X: 0, Y: height - groundMargin}, cp.Vector{X: width, Y: height - groundMargin}, 4)
	ground.SetFriction(0.8)
	ground.SetElasticity(0.2)
	space.AddShape(ground)

	for _, x := range []float64{0, width} {
		wall := cp.NewSegment(space.StaticBody, cp.Vector{X: x, Y: 0}, cp.Vector{X: x, Y: height}, 4)
		wall.SetFriction(0.6)
		space.AddShape(wall)
	}

	return &World{space: space, width: width, height: height}
}

// Step advances the simulation one tick, spawning and retiring crates.
func (w *World) Step(dt float64) {
	w.tick++
	if w.tick%spawnEveryTicks == 0 {
		w.spawnCrate()
	}
	w.space.Step(dt)
}

func (w *World) spawnCrate() {
	if len(w.crates) >= maxCrates {
		old := w.crates[0]
		w.crates = w.crates[1:]
		w.space.RemoveShape(old.shape)
		w.space.RemoveBody(old.body)
	}

	moment := cp.MomentForBox(crateMass, crateSize, crateSize)
	body := cp.NewBody(crateMass, moment)
	body.SetPosition(cp.Vector{X: w.width*0.25 + rand.Float64()*w.width*0.5, Y: -crateSize})
	body.SetAngle(rand.Float64() * math.Pi)
	w.space.AddBody(body)

	shape := cp.NewBox(body, crateSize, crateSize, 0)
	shape.SetFriction(0.7)
	shape.SetElasticity(0.1)
	w.space.AddShape(shape)

	w.crates = append(w.crates, &crate{body: body, shape: shape})
}

// FocusPoint is the world coordinate the camera follows: the newest crate
// while one exists, otherwise the middle of the ground strip.
func (w *World) FocusPoint() (float64, float64) {
	if n := len(w.crates); n > 0 {
		pos := w.crates[n-1].body.Position()
		y := pos.Y
		if y < 120 {
			y = 120
		}
		if y > w.height-120 {
			y = w.height - 120
		}
		return pos.X, y
	}
	return w.width / 2, w.height - groundMargin - 120
}

// Draw renders the scene in view space. camX/camY is the view top-left in
// world coordinates.
func (w *World) Draw(dst *ebiten.Image, camX, camY, zoom float64) {
	gy := float32((w.height - groundMargin - camY) * zoom)
	vector.StrokeLine(dst, float32((0-camX)*zoom), gy, float32((w.width-camX)*zoom), gy, 3, colornames.Darkolivegreen, true)

	for _, c := range w.crates {
		drawBox(dst, c.body.Position(), c.body.Angle(), crateSize, camX, camY, zoom)
	}
}

func drawBox(dst *ebiten.Image, pos cp.Vector, angle, size, camX, camY, zoom float64) {
	half := size / 2
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	sin, cos := math.Sincos(angle)

	var pts [4][2]float32
	for i, c := range corners {
		x := pos.X + c[0]*cos - c[1]*sin
		y := pos.Y + c[0]*sin + c[1]*cos
		pts[i] = [2]float32{float32((x - camX) * zoom), float32((y - camY) * zoom)}
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		vector.StrokeLine(dst, pts[i][0], pts[i][1], pts[j][0], pts[j][1], 2, colornames.Burlywood, true)
	}
}
