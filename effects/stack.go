package effects

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	grainW = 160
	grainH = 90
	// regenerate the grain pattern every few frames so it shimmers instead
	// of looking like a static texture
	grainRefreshFrames = 4

	grainMaxAlpha    = 0.45
	vignetteMaxAlpha = 0.55
	barrelMaxAlpha   = 0.65
)

// Stack owns the loaded effect volumes and renders them over the finished
// frame in a fixed order: grain, vignette, wide-angle corner shading.
type Stack struct {
	volumes []*Volume

	screenW int
	screenH int

	grain    *ebiten.Image
	grainPix []byte
	vignette *ebiten.Image
	barrel   *ebiten.Image
	frame    int
}

// NewStack instantiates the three standard volumes and precomputes their
// overlay images for the given screen size.
func NewStack(screenW, screenH int) *Stack {
	s := &Stack{
		volumes: []*Volume{
			{name: IsoVolumeName},
			{name: ZoomVolumeName},
			{name: FovVolumeName},
		},
		screenW:  screenW,
		screenH:  screenH,
		grain:    ebiten.NewImage(grainW, grainH),
		grainPix: make([]byte, grainW*grainH*4),
		vignette: newRadialMask(screenW, screenH, 2, vignetteMaxAlpha),
		barrel:   newRadialMask(screenW, screenH, 4, barrelMaxAlpha),
	}
	s.refreshGrain()
	return s
}

// Update advances the animated overlays. Call once per game tick.
func (s *Stack) Update() {
	s.frame++
	if s.frame%grainRefreshFrames == 0 {
		s.refreshGrain()
	}
}

// Draw composites every volume with a non-zero weight onto screen.
func (s *Stack) Draw(screen *ebiten.Image) {
	if v := s.Find(IsoVolumeName); v != nil && v.Weight() > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(s.screenW)/grainW, float64(s.screenH)/grainH)
		op.ColorScale.ScaleAlpha(float32(v.Weight() * grainMaxAlpha))
		screen.DrawImage(s.grain, op)
	}
	if v := s.Find(ZoomVolumeName); v != nil && v.Weight() > 0 {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(v.Weight()))
		screen.DrawImage(s.vignette, op)
	}
	if v := s.Find(FovVolumeName); v != nil && v.Weight() > 0 {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(v.Weight()))
		screen.DrawImage(s.barrel, op)
	}
}

func (s *Stack) refreshGrain() {
	for i := 0; i < grainW*grainH; i++ {
		v := byte(rand.Intn(256))
		s.grainPix[i*4+0] = v
		s.grainPix[i*4+1] = v
		s.grainPix[i*4+2] = v
		s.grainPix[i*4+3] = v / 2
	}
	s.grain.WritePixels(s.grainPix)
}

// newRadialMask builds a black mask whose alpha rises from 0 at the screen
// center to maxAlpha at the corners. power controls the falloff: 2 is a
// smooth vignette, higher powers confine the shading to the corners.
func newRadialMask(w, h int, power, maxAlpha float64) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxDist := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
			a := math.Pow(d, power) * maxAlpha
			img.SetRGBA(x, y, color.RGBA{A: uint8(a * 255)})
		}
	}
	return ebiten.NewImageFromImage(img)
}
