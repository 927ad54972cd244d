package presets

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/photomode/camera"
)

// RangeSpec mirrors camera.Range in yaml.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SensorSpec is the sensor's physical dimensions in millimeters.
type SensorSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PresetSpec is the designer-authored camera preset asset.
type PresetSpec struct {
	Name               string     `yaml:"name"`
	Sensor             SensorSpec `yaml:"sensor"`
	FStop              RangeSpec  `yaml:"f_stop"`
	FocalLength        RangeSpec  `yaml:"focal_length"`
	ISO                RangeSpec  `yaml:"iso"`
	ShutterSpeed1OverX RangeSpec  `yaml:"shutter_speed_1_over_x"`
	LensDistortion     bool       `yaml:"lens_distortion"`
}

// ToPreset converts the yaml asset to the runtime preset.
func (s PresetSpec) ToPreset() *camera.Preset {
	return &camera.Preset{
		Name:               s.Name,
		Sensor:             camera.SensorSize{Width: s.Sensor.Width, Height: s.Sensor.Height},
		FStop:              camera.Range{Min: s.FStop.Min, Max: s.FStop.Max},
		FocalLength:        camera.Range{Min: s.FocalLength.Min, Max: s.FocalLength.Max},
		ISO:                camera.Range{Min: s.ISO.Min, Max: s.ISO.Max},
		ShutterSpeed1OverX: camera.Range{Min: s.ShutterSpeed1OverX.Min, Max: s.ShutterSpeed1OverX.Max},
		LensDistortion:     s.LensDistortion,
	}
}

// LoadPreset reads, parses and validates one preset asset. Validation errors
// here are configuration errors; nothing downstream re-checks the ranges.
func LoadPreset(filename string) (*camera.Preset, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("presets: load %s: %w", filename, err)
	}
	var spec PresetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("presets: unmarshal %s: %w", filename, err)
	}
	p := spec.ToPreset()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("presets: %s: %w", filename, err)
	}
	return p, nil
}
