package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws rectangles onto an ebiten image.
type Canvas struct {
	screen *ebiten.Image
}

func NewCanvas(screen *ebiten.Image) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) Clear(col color.Color) {
	c.screen.Fill(col)
}

func (c *Canvas) FillRect(x, y, w, h float32, col color.Color) {
	vector.FillRect(c.screen, x, y, w, h, col, false)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float32, col color.Color) {
	vector.StrokeRect(c.screen, x, y, w, h, width, col, false)
}
