package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/milk9111/photomode/settings"
)

func main() {
	presetName := flag.String("preset", "", "preset name in presets/ (basename, .yaml optional)")
	script := flag.String("director", "", "director script in director/scripts/ (basename)")
	noRig := flag.Bool("norig", false, "write the camera directly instead of through the rig lens")
	watch := flag.Bool("watch", false, "hot-reload preset files edited on disk")
	flag.Parse()

	backend, err := gdata.Open(gdata.Config{AppName: "photomode"})
	if err != nil {
		log.Printf("storage unavailable, settings won't persist: %v", err)
		backend = nil
	}
	store := settings.NewManager(backend)

	game, err := NewGame(Options{
		Preset: *presetName,
		NoRig:  *noRig,
		Script: *script,
		Watch:  *watch,
		Store:  store,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("photomode")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.Shutdown()
}
