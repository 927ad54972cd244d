package main

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/photomode/camera"
)

// HUD is the photo-mode overlay: live lens readouts plus buttons for the
// preset cycle and the director toggle. Built from colored nine-slices and
// the built-in basic font, so it needs no theme assets.
type HUD struct {
	ui          *ebitenui.UI
	lensText    *widget.Text
	weightsText *widget.Text
	presetBtn   *widget.Button
	directorBtn *widget.Button
}

func NewHUD(onCyclePreset, onToggleDirector func()) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	h := &HUD{}

	h.lensText = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)
	h.weightsText = widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)

	h.presetBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Preset: -", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onCyclePreset != nil {
				onCyclePreset()
			}
		}),
	)
	h.directorBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Director: Off", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onToggleDirector != nil {
				onToggleDirector()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(h.lensText)
	panel.AddChild(h.weightsText)
	panel.AddChild(h.presetBtn)
	panel.AddChild(h.directorBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Refresh updates the live readouts with this frame's applied lens values.
func (h *HUD) Refresh(o camera.Outputs, w camera.Weights) {
	h.lensText.Label = formatLens(o)
	h.weightsText.Label = fmt.Sprintf("noise %.2f  vignette %.2f  distortion %.2f", w.IsoNoise, w.Zoom, w.FovDistortion)
}

// SetPresetName updates the preset button caption.
func (h *HUD) SetPresetName(name string) {
	if t := h.presetBtn.Text(); t != nil {
		t.Label = "Preset: " + name
	}
}

// SetDirectorOn updates the director button caption.
func (h *HUD) SetDirectorOn(on bool) {
	label := "Director: Off"
	if on {
		label = "Director: On"
	}
	if t := h.directorBtn.Text(); t != nil {
		t.Label = label
	}
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func formatLens(o camera.Outputs) string {
	denom := 0.0
	if o.ShutterSpeedSeconds > 0 {
		denom = math.Round(1 / o.ShutterSpeedSeconds)
	}
	return fmt.Sprintf("f/%.1f  %.0fmm  ISO %.0f  1/%.0fs  %.1f deg",
		o.FStop, o.FocalLength, o.ISO, denom, o.FieldOfViewDegrees)
}
