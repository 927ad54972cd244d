// Lenstable prints the physical camera parameters a preset produces across
// evenly spaced multiplier stops. Handy for sanity-checking a preset asset
// before it ships.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/milk9111/photomode/camera"
	"github.com/milk9111/photomode/presets"
)

func main() {
	presetName := flag.String("preset", "fullframe", "preset name in presets/")
	steps := flag.Int("steps", 10, "number of multiplier stops to print")
	list := flag.Bool("list", false, "list embedded presets and exit")
	flag.Parse()

	if *list {
		for _, name := range presets.Names() {
			fmt.Println(name)
		}
		return
	}
	if *steps < 1 {
		log.Fatal("steps must be at least 1")
	}

	p, err := presets.LoadPreset(*presetName)
	if err != nil {
		log.Fatal(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "t\tf-stop\tfocal\tISO\tshutter\tFOV\n")
	for i := 0; i <= *steps; i++ {
		t := float64(i) / float64(*steps)
		o := camera.ComputeOutputs(p, camera.Controls{Zoom: t, ISO: t, Shutter: t, Effects: 1})
		fmt.Fprintf(w, "%.2f\tf/%.1f\t%.0fmm\t%.0f\t1/%.0fs\t%.1f deg\n",
			t, o.FStop, o.FocalLength, o.ISO, math.Round(1/o.ShutterSpeedSeconds), o.FieldOfViewDegrees)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}
