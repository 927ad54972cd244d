// Package director animates the camera controls from a tengo script, for
// unattended cinematic sweeps. The script runs once per frame: it reads the
// elapsed time `t` (seconds) and assigns the four multipliers `zoom`, `iso`,
// `shutter` and `effects`.
package director

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/photomode/camera"
)

type Director struct {
	name     string
	compiled *tengo.Compiled
	elapsed  float64
	broken   bool
}

// New compiles the named script from director/scripts/.
func New(name string) (*Director, error) {
	src, err := Script(name)
	if err != nil {
		return nil, fmt.Errorf("director: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("zoom", 0.0)
	_ = script.Add("iso", 0.0)
	_ = script.Add("shutter", 0.0)
	_ = script.Add("effects", 1.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("director: compile script %s: %w", name, err)
	}
	return &Director{name: name, compiled: compiled}, nil
}

// Name returns the script basename this director was built from.
func (d *Director) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Advance runs the script for one frame and writes the resulting multipliers
// into dst, clamped to [0,1]. A runtime error marks the director broken and
// is returned once; subsequent calls are no-ops so a bad script can't spam
// the frame loop.
func (d *Director) Advance(dt float64, dst *camera.Controls) error {
	if d == nil || d.broken || dst == nil {
		return nil
	}
	d.elapsed += dt
	if err := d.compiled.Set("t", d.elapsed); err != nil {
		d.broken = true
		return fmt.Errorf("director: set t: %w", err)
	}
	if err := d.compiled.Run(); err != nil {
		d.broken = true
		return fmt.Errorf("director: run %s: %w", d.name, err)
	}
	dst.Zoom = camera.Clamp01(d.compiled.Get("zoom").Float())
	dst.ISO = camera.Clamp01(d.compiled.Get("iso").Float())
	dst.Shutter = camera.Clamp01(d.compiled.Get("shutter").Float())
	dst.Effects = camera.Clamp01(d.compiled.Get("effects").Float())
	return nil
}

// Broken reports whether a script error has disabled this director.
func (d *Director) Broken() bool {
	return d != nil && d.broken
}
