package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// HUD prints the debug overlay in the top-left corner.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, body string) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, fmt.Sprintf("FPS: %.0f\n%s", ebiten.ActualFPS(), body), h.face, op)
}
