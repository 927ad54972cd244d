package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/photomode/camera"
)

// adjustRate is how far a held key moves a multiplier per second.
const adjustRate = 0.6

// Input polls the keyboard and nudges the camera controls. Left/Right drive
// zoom, Up/Down ISO, brackets the shutter, minus/equal the effects strength.
type Input struct {
	CyclePreset    bool
	ToggleDirector bool
	SaveRequested  bool
	QuitRequested  bool
}

func (i *Input) Update(c *camera.Controls, dt float64) {
	i.CyclePreset = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	i.ToggleDirector = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.SaveRequested = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	i.QuitRequested = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	step := adjustRate * dt
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		c.Zoom += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		c.Zoom -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		c.ISO += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		c.ISO -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketRight) {
		c.Shutter += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyBracketLeft) {
		c.Shutter -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		c.Effects += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		c.Effects -= step
	}
	*c = c.Clamped()
}
