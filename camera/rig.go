package camera

import "math"

// RigLens is the smoothed lens abstraction sitting between the mapper and a
// view camera. Applied parameters land on damped targets; Update moves the
// live values toward them each frame and forwards the result to the wrapped
// camera. With damping 0 the lens snaps instantly.
type RigLens struct {
	cam     *ViewCamera
	damping float64

	sensor  SensorSize
	target  Outputs
	current Outputs
	primed  bool
}

// NewRigLens wraps a view camera. damping is the per-frame catch-up factor
// in (0..1]; higher is faster, 0 disables smoothing.
func NewRigLens(cam *ViewCamera, damping float64) *RigLens {
	if damping < 0 {
		damping = 0
	}
	if damping > 1 {
		damping = 1
	}
	return &RigLens{cam: cam, damping: damping}
}

// Configure stores the preset's sensor block and configures the wrapped
// camera. Called once per preset bind.
func (r *RigLens) Configure(p *Preset) {
	r.sensor = p.Sensor
	r.primed = false
	if r.cam != nil {
		r.cam.Configure(p)
	}
}

// ApplyPhysical sets the damping targets for this frame. The first apply
// after a Configure snaps the lens so a preset switch doesn't sweep through
// the whole parameter space.
func (r *RigLens) ApplyPhysical(o Outputs) {
	r.target = o
	if !r.primed {
		r.current = o
		r.primed = true
	}
}

// Update advances the damped parameters one frame and pushes them to the
// wrapped camera.
func (r *RigLens) Update() {
	if !r.primed {
		return
	}
	if r.damping <= 0 {
		r.current = r.target
	} else {
		k := r.damping
		r.current.FStop += (r.target.FStop - r.current.FStop) * k
		r.current.FocalLength += (r.target.FocalLength - r.current.FocalLength) * k
		r.current.ISO = math.Round(r.current.ISO + (r.target.ISO-r.current.ISO)*k)
		r.current.ShutterSpeedSeconds += (r.target.ShutterSpeedSeconds - r.current.ShutterSpeedSeconds) * k
	}
	// FOV follows the damped focal length so the pair stays consistent
	r.current.FieldOfViewDegrees = FieldOfView(r.sensor.Height, r.current.FocalLength)
	if r.cam != nil {
		r.cam.ApplyPhysical(r.current)
	}
}

// Sensor returns the physical-properties sensor block.
func (r *RigLens) Sensor() SensorSize {
	return r.sensor
}

// Lens returns the damped parameters currently applied to the camera.
func (r *RigLens) Lens() Outputs {
	return r.current
}
