package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/photomode/camera"
	"github.com/milk9111/photomode/director"
	"github.com/milk9111/photomode/effects"
	"github.com/milk9111/photomode/presets"
	"github.com/milk9111/photomode/settings"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	worldWidth  = 2560.0
	worldHeight = 720.0

	tickSeconds = 1.0 / 60.0

	rigDamping = 0.2
)

type Options struct {
	Preset string
	NoRig  bool
	Script string
	Watch  bool
	Store  *settings.Manager
}

type Game struct {
	frames int

	world *World
	input *Input
	hud   *HUD

	view   *camera.ViewCamera
	rig    *camera.RigLens
	mapper *camera.Mapper
	stack  *effects.Stack

	controls camera.Controls
	outputs  camera.Outputs
	weights  camera.Weights

	presetNames []string
	presetIdx   int

	director   *director.Director
	directorOn bool

	store   *settings.Manager
	watcher *presets.Watcher
}

func NewGame(opts Options) (*Game, error) {
	if opts.Store == nil {
		opts.Store = settings.NewManager(nil)
	}
	g := &Game{
		world: NewWorld(worldWidth, worldHeight),
		input: &Input{},
		stack: effects.NewStack(baseWidth, baseHeight),
		store: opts.Store,
	}

	g.presetNames = presets.Names()
	if len(g.presetNames) == 0 {
		return nil, fmt.Errorf("no embedded presets found")
	}

	state := g.store.State()
	name := opts.Preset
	if name == "" {
		name = state.Preset
	}
	g.presetIdx = 0
	for i, n := range g.presetNames {
		if n == name {
			g.presetIdx = i
			break
		}
	}
	preset, err := presets.LoadPreset(g.presetNames[g.presetIdx])
	if err != nil {
		return nil, err
	}

	g.view = camera.NewViewCamera(baseWidth, baseHeight, 1)
	g.view.SetWorldBounds(worldWidth, worldHeight)
	g.view.SetSmooth(0.12)
	if !opts.NoRig {
		g.rig = camera.NewRigLens(g.view, rigDamping)
	}

	// volume handles resolved once; nil stays nil and those weight writes
	// are skipped
	var vw camera.VolumeWeights
	if v := g.stack.Find(effects.IsoVolumeName); v != nil {
		vw.Noise = v.SetWeight
	}
	if v := g.stack.Find(effects.ZoomVolumeName); v != nil {
		vw.Zoom = v.SetWeight
	}
	if v := g.stack.Find(effects.FovVolumeName); v != nil {
		vw.Distortion = v.SetWeight
	}

	g.mapper = camera.NewMapper(preset, g.rig, g.view, vw)

	g.controls = camera.Controls{
		Zoom:    state.Zoom,
		ISO:     state.ISO,
		Shutter: state.Shutter,
		Effects: state.Effects,
	}.Clamped()

	if opts.Script != "" {
		d, err := director.New(opts.Script)
		if err != nil {
			log.Printf("director disabled: %v", err)
		} else {
			g.director = d
		}
	}

	if opts.Watch {
		w, err := presets.NewWatcher("presets")
		if err != nil {
			log.Printf("preset watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.hud = NewHUD(g.cyclePreset, g.toggleDirector)
	g.hud.SetPresetName(g.presetNames[g.presetIdx])

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update(&g.controls, tickSeconds)
	if g.input.QuitRequested {
		return ebiten.Termination
	}
	if g.input.CyclePreset {
		g.cyclePreset()
	}
	if g.input.ToggleDirector {
		g.toggleDirector()
	}
	if g.input.SaveRequested {
		g.saveState()
	}

	if g.directorOn {
		if err := g.director.Advance(tickSeconds, &g.controls); err != nil {
			log.Printf("%v", err)
			g.directorOn = false
			g.hud.SetDirectorOn(false)
		}
	}

	g.drainWatcher()

	g.world.Step(tickSeconds)
	fx, fy := g.world.FocusPoint()
	g.view.Update(fx, fy)

	g.outputs, g.weights = g.mapper.Update(g.controls)
	if g.rig != nil {
		g.rig.Update()
	}
	g.stack.Update()

	applied := g.outputs
	if g.rig != nil {
		applied = g.rig.Lens()
	}
	g.hud.Refresh(applied, g.weights)
	g.hud.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Render(screen, func(world *ebiten.Image) {
		camX, camY := g.view.ViewTopLeft()
		g.world.Draw(world, camX, camY, g.view.Zoom())
	})
	g.stack.Draw(screen)
	g.hud.Draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) cyclePreset() {
	g.presetIdx = (g.presetIdx + 1) % len(g.presetNames)
	name := g.presetNames[g.presetIdx]
	p, err := presets.LoadPreset(name)
	if err != nil {
		log.Printf("cycle preset: %v", err)
		return
	}
	g.mapper.SetPreset(p)
	g.store.State().Preset = name
	g.hud.SetPresetName(name)
}

func (g *Game) toggleDirector() {
	if g.director == nil || g.director.Broken() {
		return
	}
	g.directorOn = !g.directorOn
	g.hud.SetDirectorOn(g.directorOn)
}

// drainWatcher reloads the active preset when its file changes on disk.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != g.presetNames[g.presetIdx] {
				continue
			}
			p, err := presets.LoadPreset(name)
			if err != nil {
				log.Printf("reload preset %s: %v", name, err)
				continue
			}
			log.Printf("reloaded preset %s", name)
			g.mapper.SetPreset(p)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				log.Printf("preset watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) saveState() {
	st := g.store.State()
	st.Preset = g.presetNames[g.presetIdx]
	st.Zoom = g.controls.Zoom
	st.ISO = g.controls.ISO
	st.Shutter = g.controls.Shutter
	st.Effects = g.controls.Effects
	if err := g.store.Save(); err != nil {
		log.Printf("%v", err)
	}
}

// Shutdown persists the session state and releases the watcher.
func (g *Game) Shutdown() {
	g.saveState()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
