package director

import (
	"testing"

	"github.com/milk9111/photomode/camera"
)

func TestNewMissingScript(t *testing.T) {
	if _, err := New("does_not_exist"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestOrbitKeepsControlsNormalized(t *testing.T) {
	d, err := New("orbit")
	if err != nil {
		t.Fatalf("New(orbit): %v", err)
	}

	var c camera.Controls
	for i := 0; i < 600; i++ {
		if err := d.Advance(1.0/60, &c); err != nil {
			t.Fatalf("Advance: %v", err)
		}
		for name, v := range map[string]float64{
			"zoom": c.Zoom, "iso": c.ISO, "shutter": c.Shutter, "effects": c.Effects,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("%s = %g escaped [0,1] at frame %d", name, v, i)
			}
		}
	}
	if d.Broken() {
		t.Fatalf("director marked broken after clean run")
	}
}

func TestOrbitAnimatesOverTime(t *testing.T) {
	d, err := New("orbit")
	if err != nil {
		t.Fatalf("New(orbit): %v", err)
	}

	var c camera.Controls
	if err := d.Advance(0.1, &c); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	first := c.Zoom
	for i := 0; i < 120; i++ {
		if err := d.Advance(0.1, &c); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if c.Zoom == first {
		t.Fatalf("zoom never moved from %g over 12 scripted seconds", first)
	}
}

func TestAdvanceNilReceiverAndDst(t *testing.T) {
	var d *Director
	if err := d.Advance(1, nil); err != nil {
		t.Fatalf("nil director Advance should be a no-op, got %v", err)
	}

	live, err := New("orbit")
	if err != nil {
		t.Fatalf("New(orbit): %v", err)
	}
	if err := live.Advance(1, nil); err != nil {
		t.Fatalf("Advance with nil dst should be a no-op, got %v", err)
	}
}
