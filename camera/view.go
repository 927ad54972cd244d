package camera

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ViewCamera renders the world centered on a world coordinate. It is the
// plain camera target: once Configure has enabled its physical mode, zoom is
// derived from the applied field of view instead of being set directly.
type ViewCamera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64

	// physical mode, enabled once at Configure time
	usePhysical bool
	baseZoom    float64
	refFOV      float64
	physical    Outputs
}

// NewViewCamera creates a camera with the given logical screen size and
// initial zoom.
func NewViewCamera(screenW, screenH int, zoom float64) *ViewCamera {
	c := &ViewCamera{screenW: screenW, screenH: screenH, zoom: zoom, baseZoom: zoom, smooth: 0.15}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// Configure enables physical mode and captures the reference field of view
// at the wide end of the preset's focal range. Zoom equals the base zoom
// when the applied FOV matches the reference and grows as the lens narrows.
func (c *ViewCamera) Configure(p *Preset) {
	wide := p.FocalLength.Lerp(0)
	if wide < 1 {
		wide = 1
	}
	c.usePhysical = true
	c.refFOV = FieldOfView(p.Sensor.Height, wide)
}

// ApplyPhysical stores the frame's outputs and re-derives zoom from the
// field of view. A no-op until Configure has run.
func (c *ViewCamera) ApplyPhysical(o Outputs) {
	if !c.usePhysical {
		return
	}
	c.physical = o
	half := o.FieldOfViewDegrees * math.Pi / 360
	refHalf := c.refFOV * math.Pi / 360
	if math.Tan(half) <= 0 {
		return
	}
	c.zoom = c.baseZoom * math.Tan(refHalf) / math.Tan(half)
}

// Physical returns the outputs applied this frame.
func (c *ViewCamera) Physical() Outputs {
	return c.physical
}

// UsesPhysical reports whether physical mode has been enabled.
func (c *ViewCamera) UsesPhysical() bool {
	return c.usePhysical
}

// SetWorldBounds sets the world pixel dimensions for clamping the camera
// position.
func (c *ViewCamera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

// SetSmooth sets the follow smoothing factor. 0 disables smoothing.
func (c *ViewCamera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// Zoom returns the current camera zoom.
func (c *ViewCamera) Zoom() float64 {
	return c.zoom
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *ViewCamera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// Update moves the camera toward the target world coordinate. Call from the
// fixed-rate update loop to get consistent smoothing.
func (c *ViewCamera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo immediately centers the camera on the given world coordinate,
// bypassing smoothing.
func (c *ViewCamera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.settle()
}

// settle snaps the position to a 1/zoom grid so source texels align to
// integer screen pixels, then clamps to world bounds.
func (c *ViewCamera) settle() {
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}
	if c.zoom == 0 {
		return
	}
	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	c.PosX = clampAxis(c.PosX, halfW, c.worldW)
	c.PosY = clampAxis(c.PosY, halfH, c.worldH)
}

func clampAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	if world-half < half {
		// world smaller than view: center on world
		return world / 2.0
	}
	if pos < half {
		return half
	}
	if pos > world-half {
		return world - half
	}
	return pos
}

// Render draws the world by invoking drawWorld with an offscreen image sized
// to the screen, then blits it. The caller should draw with offsets based on
// ViewTopLeft and Zoom.
func (c *ViewCamera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
