package camera

import "math"

// Outputs are the physical parameters derived from one preset and one
// sampling of the controls. They are recomputed every frame and never
// persisted.
type Outputs struct {
	FStop               float64
	FocalLength         float64 // millimeters, floored at 1
	ISO                 float64 // rounded to the nearest whole value
	ShutterSpeedSeconds float64
	FieldOfViewDegrees  float64
}

// Weights are the post-processing volume weights, each in [0,1] before the
// effects-strength multiplier is folded in.
type Weights struct {
	IsoNoise      float64
	Zoom          float64
	FovDistortion float64
}

const (
	isoNoiseFloor   = 400
	isoNoiseCeiling = 6400

	// shutter sweeps its denominator range with a sqrt ease so most of the
	// slider travel sits in the slow half of the range
	shutterEasePower = 0.5
)

// ComputeOutputs derives the physical parameters for one frame. Pure:
// identical inputs always give identical outputs.
func ComputeOutputs(p *Preset, c Controls) Outputs {
	c = c.Clamped()
	focal := p.FocalLength.Lerp(c.Zoom)
	if focal < 1 {
		// keeps the FOV conversion finite for degenerate ranges
		focal = 1
	}
	return Outputs{
		FStop:               p.FStop.Lerp(c.Zoom),
		FocalLength:         focal,
		ISO:                 math.Round(p.ISO.Lerp(c.ISO)),
		ShutterSpeedSeconds: 1 / p.ShutterSpeed1OverX.Slerp(c.Shutter, shutterEasePower),
		FieldOfViewDegrees:  FieldOfView(p.Sensor.Height, focal),
	}
}

// FieldOfView converts a focal length to a vertical field of view in degrees
// for the given sensor height. Both arguments are millimeters.
func FieldOfView(sensorHeight, focalLength float64) float64 {
	return 2 * math.Atan(sensorHeight/(2*focalLength)) * 180 / math.Pi
}

// isoNoiseFactor ramps from 0 at ISO 400 to 1 at ISO 6400.
func isoNoiseFactor(iso float64) float64 {
	return Clamp01((iso - isoNoiseFloor) / (isoNoiseCeiling - isoNoiseFloor))
}

// ComputeWeights derives the volume weights for one frame from the computed
// outputs and the same controls sampling. Pure.
func ComputeWeights(p *Preset, o Outputs, c Controls) Weights {
	c = c.Clamped()

	// wide-angle factor: 1 at the wide end of the focal range, 0 at the
	// long end
	factor := 0.0
	if span := p.FocalLength.Span(); span > 0 {
		factor = 1 - Clamp01((o.FocalLength-p.FocalLength.Min)/span)
	}

	distortion := 0.0
	if p.LensDistortion {
		distortion = (1 - c.Zoom) * factor * c.Effects
	}

	return Weights{
		IsoNoise:      c.ISO * c.Effects * isoNoiseFactor(o.ISO),
		Zoom:          c.Zoom * c.Effects,
		FovDistortion: distortion,
	}
}

// PhysicalSink receives the per-frame physical parameters. RigLens and
// ViewCamera both implement it.
type PhysicalSink interface {
	// Configure is called once per preset bind, not per frame.
	Configure(p *Preset)
	// ApplyPhysical is called once per frame with the latest outputs.
	ApplyPhysical(o Outputs)
}

// VolumeWeights holds the optional post-processing weight setters, resolved
// once at bind time. A nil handle means that volume is absent; its write is
// skipped silently.
type VolumeWeights struct {
	Noise      func(float64)
	Zoom       func(float64)
	Distortion func(float64)
}

// Mapper drives one physical sink and the optional volume weights from its
// preset and the caller-owned controls. It holds no per-frame state.
type Mapper struct {
	preset  *Preset
	sink    PhysicalSink
	volumes VolumeWeights
}

// NewMapper binds the mapper's targets once. The rig lens takes precedence
// over the plain view camera: when both are given the camera is only ever
// written through the rig.
func NewMapper(preset *Preset, rig *RigLens, cam *ViewCamera, volumes VolumeWeights) *Mapper {
	var sink PhysicalSink
	switch {
	case rig != nil:
		sink = rig
	case cam != nil:
		sink = cam
	}
	m := &Mapper{sink: sink, volumes: volumes}
	m.SetPreset(preset)
	return m
}

// Preset returns the currently bound preset.
func (m *Mapper) Preset() *Preset {
	return m.preset
}

// SetPreset swaps the designer configuration and reconfigures the bound sink.
func (m *Mapper) SetPreset(p *Preset) {
	m.preset = p
	if m.sink != nil && p != nil {
		m.sink.Configure(p)
	}
}

// Apply forwards one frame's outputs and weights to the bound targets.
// Unbound targets are skipped; a missing volume is never an error.
func (m *Mapper) Apply(o Outputs, w Weights) {
	if m.sink != nil {
		m.sink.ApplyPhysical(o)
	}
	if m.volumes.Noise != nil {
		m.volumes.Noise(w.IsoNoise)
	}
	if m.volumes.Zoom != nil {
		m.volumes.Zoom(w.Zoom)
	}
	if m.volumes.Distortion != nil {
		m.volumes.Distortion(w.FovDistortion)
	}
}

// Update samples the controls once and runs the full per-frame pipeline:
// clamp, compute, apply. Returns the frame's outputs and weights for HUD
// readouts.
func (m *Mapper) Update(c Controls) (Outputs, Weights) {
	c = c.Clamped()
	o := ComputeOutputs(m.preset, c)
	w := ComputeWeights(m.preset, o, c)
	m.Apply(o, w)
	return o, w
}
