package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/climber/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// NewSessionUI builds the centered panel shown outside of play: a Start
// button before the first session and the final summary with a Restart
// button once a session has ended.
func NewSessionUI(g *Game, state component.SessionState) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	label := func(s string) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, white),
			widget.TextOpts.WidgetOpts(centered),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.spec.Field.Width/2), int(g.spec.Field.Height/4)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	buttonText := "Start"
	onClick := func() { g.session.Start() }

	switch state {
	case component.SessionEnded:
		title := "Game Over"
		if res, ok := g.session.Result(); ok && res.Reason == component.EndLevelCap {
			title = "You Win!"
		}
		panel.AddChild(label(title))
		panel.AddChild(label(fmt.Sprintf("Score: %d", g.session.Score())))
		panel.AddChild(label(fmt.Sprintf("Level: %d", g.session.Level())))
		panel.AddChild(label(fmt.Sprintf("High Score: %d", g.session.HighScore())))
		panel.AddChild(label("Press R to restart"))
		buttonText = "Restart"
		onClick = func() { g.session.Restart() }
	default:
		panel.AddChild(label(g.spec.Name))
		panel.AddChild(label("Arrows or A/D to move"))
		panel.AddChild(label(fmt.Sprintf("High Score: %d", g.session.HighScore())))
	}

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(buttonText, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	panel.AddChild(btn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
