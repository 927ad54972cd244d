package camera

import "fmt"

// SensorSize is the simulated sensor's physical dimensions in millimeters.
type SensorSize struct {
	Width  float64
	Height float64
}

// Preset holds the designer-authored ranges the mapper sweeps between.
// Presets are loaded once and read-only afterwards; the mapper never
// mutates them.
type Preset struct {
	Name   string
	Sensor SensorSize

	FStop              Range
	FocalLength        Range
	ISO                Range
	ShutterSpeed1OverX Range

	LensDistortion bool
}

// Validate reports configuration errors. Degenerate ranges are rejected at
// load time so per-frame code never defends against them beyond the focal
// length floor.
func (p *Preset) Validate() error {
	if p.Sensor.Width <= 0 || p.Sensor.Height <= 0 {
		return fmt.Errorf("preset %q: sensor dimensions must be positive", p.Name)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"f_stop", p.FStop},
		{"focal_length", p.FocalLength},
		{"iso", p.ISO},
		{"shutter_speed_1_over_x", p.ShutterSpeed1OverX},
	} {
		if r.r.Min > r.r.Max {
			return fmt.Errorf("preset %q: %s range has min %g > max %g", p.Name, r.name, r.r.Min, r.r.Max)
		}
	}
	if p.ShutterSpeed1OverX.Min <= 0 {
		return fmt.Errorf("preset %q: shutter denominators must be positive", p.Name)
	}
	return nil
}
