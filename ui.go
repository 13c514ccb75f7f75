package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

// shade scales the RGB channels of c by f, keeping it opaque.
func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 255 {
			s = 255
		}
		return uint8(s)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: 0xff}
}

func newEditorTheme(fontFace *text.Face, buttonColor, buttonText color.RGBA) *widget.Theme {
	return &widget.Theme{
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(buttonColor),
				Hover:   solidNineSlice(shade(buttonColor, 1.15)),
				Pressed: solidNineSlice(shade(buttonColor, 0.8)),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:    buttonText,
				Hover:   buttonText,
				Pressed: buttonText,
			},
		},
	}
}

// BuildEditorUI constructs the editor UI: a single save button anchored to the
// bottom-right corner, matching the classic button rectangle (W-120, H-50, 100x40).
func BuildEditorUI(cfg Config, onSave func()) (*ebitenui.UI, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 16}

	buttonColor := parseHexColor(cfg.Colors.Button, color.RGBA{R: 0xff, A: 0xff})
	buttonText := parseHexColor(cfg.Colors.ButtonText, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(&fontFace, buttonColor, buttonText)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewAnchorLayout(
				widget.AnchorLayoutOpts.Padding(&widget.Insets{Right: 20, Bottom: 10}),
			),
		),
	)

	saveButton := widget.NewButton(
		widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Save Map", &fontFace, ui.PrimaryTheme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onSave()
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 40),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	root.AddChild(saveButton)

	ui.Container = root
	return ui, nil
}
