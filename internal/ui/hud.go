//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	// HeaderHeight is the pixel height of the score bar.
	HeaderHeight = 20
	panelPadding = 8
	lineHeight   = 15
)

// HUD draws the score bar above the board and the parameter panel to its
// right.
type HUD struct {
	width  int
	lines  []string
	panel  *ebiten.Image
	height int
}

// NewHUD builds a HUD whose side panel is width pixels wide. A zero width
// hides the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{width: max(width, 0)}
	if provider, ok := sim.(core.ParametersProvider); ok {
		h.lines = ParameterLines(provider.Parameters())
	}
	h.lines = append(h.lines, "")
	h.lines = append(h.lines, HelpLines()...)
	return h
}

// Width is the side panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Draw paints the header across boardW pixels and the panel at its right.
func (h *HUD) Draw(screen *ebiten.Image, boardW, boardH int, header string) {
	face := basicfont.Face7x13

	bar := screen.SubImage(rectXYWH(0, 0, boardW, HeaderHeight)).(*ebiten.Image)
	bar.Fill(color.RGBA{R: 0, G: 0, B: 160, A: 255})
	text.Draw(screen, header, face, panelPadding, 14, color.RGBA{R: 0, G: 255, B: 255, A: 255})

	if h.width == 0 {
		return
	}
	height := boardH + HeaderHeight
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, HeaderHeight+i*lineHeight, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(boardW), 0)
	screen.DrawImage(h.panel, op)
}

func rectXYWH(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}
