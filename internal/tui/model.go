package tui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"snake/internal/loop"
	"snake/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var teaKeys = map[string]loop.KeyCode{
	"esc":   loop.KeyEscape,
	"q":     loop.KeyQ,
	"up":    loop.KeyUp,
	"right": loop.KeyRight,
	"down":  loop.KeyDown,
	"left":  loop.KeyLeft,
	"w":     loop.KeyW,
	"a":     loop.KeyA,
	"s":     loop.KeyS,
	"d":     loop.KeyD,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#1E3A8A")).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#C8C8C8"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#3C3C3C"))
)

// Model is the Bubble Tea model for one game.
type Model struct {
	loop *loop.Loop
	log  *slog.Logger
	tps  int
	seed int64

	paused bool
	cells  []lipgloss.Style
}

// New returns a model driving l at tps ticks per second. seed is used by
// the restart key.
func New(l *loop.Loop, tps int, seed int64, logger *slog.Logger) Model {
	if tps <= 0 {
		tps = 12
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	palette := l.Palette()
	cells := make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		cells[i] = lipgloss.NewStyle().Background(lipgloss.Color(hexColor(c)))
	}
	return Model{loop: l, log: logger, tps: tps, seed: seed, cells: cells}
}

// Paused reports whether ticks are suspended.
func (m Model) Paused() bool { return m.paused }

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tps)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			m.loop.Tick()
		}
		return m, tickCmd(m.tps)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Info("quit requested", "key", "ctrl+c")
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
			return m, nil
		case "n":
			m.loop.Tick()
			return m, nil
		case "r":
			m.loop.Reset(m.seed)
			return m, nil
		}
		code, ok := teaKeys[msg.String()]
		if !ok {
			return m, nil
		}
		if m.loop.OnKeyEvent(code) == loop.SignalQuit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	snap := m.loop.Snapshot()
	size := m.loop.Size()
	cells := m.loop.Cells()

	var b strings.Builder
	for y := 0; y < size.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < size.W; x++ {
			v := int(cells[y*size.W+x])
			if v >= len(m.cells) {
				v = 0
			}
			b.WriteString(m.cells[v].Render("  "))
		}
	}
	board := boardStyle.Render(b.String())

	panel := append(ui.ParameterLines(m.loop.Parameters()), "")
	panel = append(panel, fmt.Sprintf("Tick: %d", snap.Tick), fmt.Sprintf("Tail: %d", snap.TailLength), "")
	panel = append(panel, ui.HelpLines()...)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, panelStyle.Render(strings.Join(panel, "\n")))
	header := headerStyle.Render(ui.ScoreLine(snap.Score, snap.HighScore, m.paused))
	return lipgloss.JoinVertical(lipgloss.Left, header, body) + "\n"
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
