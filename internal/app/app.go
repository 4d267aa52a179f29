//go:build ebiten

package app

import (
	"snake/internal/core"
	"snake/internal/loop"
	"snake/internal/render"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the parameter panel beside the board.
const PanelWidth = 220

var ebitenKeys = map[ebiten.Key]loop.KeyCode{
	ebiten.KeyEscape:     loop.KeyEscape,
	ebiten.KeyQ:          loop.KeyQ,
	ebiten.KeyArrowUp:    loop.KeyUp,
	ebiten.KeyArrowRight: loop.KeyRight,
	ebiten.KeyArrowDown:  loop.KeyDown,
	ebiten.KeyArrowLeft:  loop.KeyLeft,
	ebiten.KeyW:          loop.KeyW,
	ebiten.KeyA:          loop.KeyA,
	ebiten.KeyS:          loop.KeyS,
	ebiten.KeyD:          loop.KeyD,
}

// Game adapts a snake session to the ebiten.Game interface. Ebiten calls
// Update every frame; the fixed step decides which frames advance the game.
type Game struct {
	loop    *loop.Loop
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep

	keys     []ebiten.Key
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided session.
func New(s *Session, cfg *Config) *Game {
	size := s.Loop.Size()
	return &Game{
		loop:    s.Loop,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(s.Loop, PanelWidth),
		step:    core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset restarts the game with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.loop.Reset(seed)
	g.step.Reset()
	g.tickOnce = false
}

// Update handles per-frame input and advances the game when a tick is due.
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeySpace:
			g.paused = !g.paused
			continue
		case ebiten.KeyN:
			g.tickOnce = true
			continue
		case ebiten.KeyR:
			g.Reset(g.seed)
			continue
		}
		if g.loop.OnKeyEvent(ebitenKeys[k]) == loop.SignalQuit {
			return ebiten.Termination
		}
	}

	due := g.step.ShouldStep()
	if (due && !g.paused) || g.tickOnce {
		g.loop.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.loop.Size()
	snap := g.loop.Snapshot()
	g.painter.Blit(screen, g.loop.Cells(), g.loop.Palette(), g.scale, ui.HeaderHeight)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale, ui.ScoreLine(snap.Score, snap.HighScore, g.paused))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.loop.Size()
	return s.W*g.scale + g.hud.Width(), s.H*g.scale + ui.HeaderHeight
}
