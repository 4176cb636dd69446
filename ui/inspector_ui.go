package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

// InspectorUI is the ebitenui side panel with the per-view flag overrides.
type InspectorUI struct {
	UI        *ebitenui.UI
	Inspector *components.InspectorData

	// Callbacks
	OnResetView func()
	OnChanged   func()

	// Widget references for updates
	wireButton    *widget.Button
	orbitButton   *widget.Button
	effectsButton *widget.Button
	hudButton     *widget.Button

	titleFace  text.Face
	normalFace text.Face

	initialized bool
}

// NewInspectorUI builds the inspector panel bound to the given state.
func NewInspectorUI(inspector *components.InspectorData, onResetView, onChanged func()) *InspectorUI {
	iui := &InspectorUI{
		Inspector:   inspector,
		OnResetView: onResetView,
		OnChanged:   onChanged,
	}

	iui.loadFonts()
	iui.buildUI()

	return iui
}

func (iui *InspectorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	iui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	iui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (iui *InspectorUI) buildUI() {
	// Root container anchors the panel to the bottom-left corner.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 15, 25, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("INSPECTOR", &iui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	iui.wireButton = iui.overrideRow(panel, "Wireframe", func() cfg.OverrideMode {
		iui.Inspector.Wireframe = iui.Inspector.Wireframe.Next()
		return iui.Inspector.Wireframe
	})
	iui.orbitButton = iui.overrideRow(panel, "Orbit", func() cfg.OverrideMode {
		iui.Inspector.Orbit = iui.Inspector.Orbit.Next()
		return iui.Inspector.Orbit
	})
	iui.effectsButton = iui.overrideRow(panel, "Effects", func() cfg.OverrideMode {
		iui.Inspector.Effects = iui.Inspector.Effects.Next()
		return iui.Inspector.Effects
	})

	iui.hudButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 22),
		),
		widget.ButtonOpts.Image(iui.buttonImage()),
		widget.ButtonOpts.Text("Stats HUD", &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			iui.Inspector.ShowHUD = !iui.Inspector.ShowHUD
			iui.notifyChanged()
		}),
	)
	panel.AddChild(iui.hudButton)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 22),
		),
		widget.ButtonOpts.Image(iui.buttonImage()),
		widget.ButtonOpts.Text("Back to start", &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 200, 140, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if iui.OnResetView != nil {
				iui.OnResetView()
			}
		}),
	)
	panel.AddChild(resetButton)

	rootContainer.AddChild(panel)

	iui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// overrideRow adds a label + tri-state button pair and returns the button.
func (iui *InspectorUI) overrideRow(panel *widget.Container, name string, cycle func() cfg.OverrideMode) *widget.Button {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text(name, &iui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 190, 255},
		}),
	)
	row.AddChild(label)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(60, 22),
		),
		widget.ButtonOpts.Image(iui.buttonImage()),
		widget.ButtonOpts.Text("Auto", &iui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			cycle()
			iui.UpdateUI()
			iui.notifyChanged()
		}),
	)
	row.AddChild(button)

	panel.AddChild(row)
	return button
}

func (iui *InspectorUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes button labels from the bound inspector state.
func (iui *InspectorUI) UpdateUI() {
	if iui.wireButton != nil {
		if textWidget := iui.wireButton.Text(); textWidget != nil {
			textWidget.Label = iui.Inspector.Wireframe.Label()
		}
	}
	if iui.orbitButton != nil {
		if textWidget := iui.orbitButton.Text(); textWidget != nil {
			textWidget.Label = iui.Inspector.Orbit.Label()
		}
	}
	if iui.effectsButton != nil {
		if textWidget := iui.effectsButton.Text(); textWidget != nil {
			textWidget.Label = iui.Inspector.Effects.Label()
		}
	}
	if iui.hudButton != nil {
		if textWidget := iui.hudButton.Text(); textWidget != nil {
			if iui.Inspector.ShowHUD {
				textWidget.Label = "Stats HUD: on"
			} else {
				textWidget.Label = "Stats HUD: off"
			}
		}
	}
}

func (iui *InspectorUI) notifyChanged() {
	if iui.OnChanged != nil {
		iui.OnChanged()
	}
}

func (iui *InspectorUI) Update() {
	iui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !iui.initialized {
		iui.initialized = true
		iui.UpdateUI()
	}
}

func (iui *InspectorUI) Draw(screen *ebiten.Image) {
	iui.UI.Draw(screen)
}
