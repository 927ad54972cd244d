package presets

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadPresetEmbedded(t *testing.T) {
	p, err := LoadPreset("fullframe")
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if p.Name != "fullframe" {
		t.Fatalf("name = %q, want fullframe", p.Name)
	}
	if p.Sensor.Width != 36 || p.Sensor.Height != 24 {
		t.Fatalf("sensor = %+v, want 36x24", p.Sensor)
	}
	if p.FStop.Min != 1.4 || p.FStop.Max != 16 {
		t.Fatalf("f_stop = %+v, want [1.4, 16]", p.FStop)
	}
	if p.FocalLength.Min != 18 || p.FocalLength.Max != 200 {
		t.Fatalf("focal_length = %+v, want [18, 200]", p.FocalLength)
	}
	if !p.LensDistortion {
		t.Fatalf("lens_distortion should be enabled for fullframe")
	}
}

func TestLoadPresetExtensionOptional(t *testing.T) {
	a, err := LoadPreset("crop")
	if err != nil {
		t.Fatalf("LoadPreset(crop): %v", err)
	}
	b, err := LoadPreset("crop.yaml")
	if err != nil {
		t.Fatalf("LoadPreset(crop.yaml): %v", err)
	}
	if *a != *b {
		t.Fatalf("basename and filename loads differ: %+v vs %+v", a, b)
	}
}

func TestLoadPresetMissing(t *testing.T) {
	if _, err := LoadPreset("does_not_exist"); err == nil {
		t.Fatalf("expected error for missing preset")
	}
}

func TestNamesListsEmbedded(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no embedded presets found")
	}
	want := map[string]bool{"fullframe": false, "crop": false, "nightowl": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Fatalf("embedded preset %q missing from Names(): %v", n, names)
		}
	}
}

func TestPresetSpecValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "valid",
			yaml: `
name: ok
sensor: {width: 36, height: 24}
f_stop: {min: 1.4, max: 16}
focal_length: {min: 18, max: 200}
iso: {min: 100, max: 12800}
shutter_speed_1_over_x: {min: 30, max: 8000}
lens_distortion: true
`,
			wantErr: false,
		},
		{
			name: "inverted_range",
			yaml: `
name: bad
sensor: {width: 36, height: 24}
f_stop: {min: 16, max: 1.4}
focal_length: {min: 18, max: 200}
iso: {min: 100, max: 12800}
shutter_speed_1_over_x: {min: 30, max: 8000}
`,
			wantErr: true,
		},
		{
			name: "zero_sensor",
			yaml: `
name: bad
sensor: {width: 0, height: 24}
f_stop: {min: 1.4, max: 16}
focal_length: {min: 18, max: 200}
iso: {min: 100, max: 12800}
shutter_speed_1_over_x: {min: 30, max: 8000}
`,
			wantErr: true,
		},
		{
			name: "nonpositive_shutter",
			yaml: `
name: bad
sensor: {width: 36, height: 24}
f_stop: {min: 1.4, max: 16}
focal_length: {min: 18, max: 200}
iso: {min: 100, max: 12800}
shutter_speed_1_over_x: {min: 0, max: 8000}
`,
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec PresetSpec
			if err := yaml.Unmarshal([]byte(c.yaml), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := spec.ToPreset().Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
