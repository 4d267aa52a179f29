// Package loop drives a snake game one tick at a time. It owns the input
// latch between the host's key handler and its tick callback and publishes
// an immutable Snapshot after every tick.
package loop

import (
	"log/slog"
	"sync"

	"snake/internal/core"
	"snake/internal/snake"
)

// Observer receives every snapshot right after the tick that produced it.
// Observers run on the ticking goroutine and must not block.
type Observer interface {
	ObserveTick(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// ObserveTick calls f.
func (f ObserverFunc) ObserveTick(s Snapshot) { f(s) }

// Loop translates key events into headings and advances the game.
type Loop struct {
	log    *slog.Logger
	keymap Keymap

	mu      sync.Mutex
	state   *snake.State
	pending snake.Direction
	tick    uint64
	snap    Snapshot
	display *core.ByteGrid

	observers []Observer
}

// New wraps state in a loop using DefaultKeymap. A nil logger discards
// output.
func New(state *snake.State, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	size := state.Size()
	l := &Loop{
		log:     logger,
		keymap:  DefaultKeymap(),
		state:   state,
		display: core.NewByteGrid(size.W, size.H),
	}
	l.snap = snapshotOf(state, 0, false, false)
	paintCells(l.display, l.snap)
	return l
}

// AddObserver registers o for future ticks and resets.
func (l *Loop) AddObserver(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// OnKeyEvent translates a key press and returns the signal it produced.
// A steering key only takes effect when no other heading is latched for
// the coming tick and it does not reverse the current heading; otherwise
// it is dropped and SignalNone is returned. Quit never touches the game.
func (l *Loop) OnKeyEvent(code KeyCode) ControlSignal {
	l.mu.Lock()
	defer l.mu.Unlock()

	sig := l.keymap[code]
	switch sig {
	case SignalNone:
		return SignalNone
	case SignalQuit:
		l.log.Info("quit requested", "tick", l.tick)
		return SignalQuit
	}

	dir := sig.direction()
	if l.pending != snake.None {
		return SignalNone
	}
	if dir == l.state.Heading().Opposite() {
		l.log.Debug("reverse turn rejected", "heading", l.state.Heading(), "requested", dir)
		return SignalNone
	}
	l.pending = dir
	return sig
}

// Pending returns the latched heading, or None.
func (l *Loop) Pending() snake.Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Tick applies the latched heading, advances the snake, lets it eat, folds
// the score into the high score and publishes a new snapshot.
func (l *Loop) Tick() Snapshot {
	l.mu.Lock()
	dir := l.takeLatch()
	collided := l.state.Advance(dir) && dir != snake.None
	ate := l.state.ConsumeAppleIfColocated()
	l.state.UpdateHighScore()
	l.tick++
	snap := snapshotOf(l.state, l.tick, ate, collided)
	l.snap = snap
	paintCells(l.display, snap)
	observers := l.observers
	l.mu.Unlock()

	if collided {
		l.log.Info("snake bit itself", "tick", snap.Tick, "head", snap.Head(), "heading", snap.Heading)
	}
	if ate {
		l.log.Info("apple eaten", "tick", snap.Tick, "score", snap.Score, "high_score", snap.HighScore, "next_apple", snap.Apple)
	}
	for _, o := range observers {
		o.ObserveTick(snap.clone())
	}
	return snap.clone()
}

// takeLatch reads and clears the pending heading. The caller holds l.mu.
func (l *Loop) takeLatch() snake.Direction {
	heading := l.state.Heading()
	pending := l.pending
	l.pending = snake.None
	if pending != snake.None && pending != heading.Opposite() {
		heading = pending
	}
	return heading
}

// Snapshot returns the most recent snapshot.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap.clone()
}

// Reset starts a new game on the same loop. The high score survives.
func (l *Loop) Reset(seed int64) {
	l.mu.Lock()
	l.pending = snake.None
	l.state.Reset(seed)
	snap := snapshotOf(l.state, l.tick, false, false)
	l.snap = snap
	paintCells(l.display, snap)
	observers := l.observers
	l.mu.Unlock()

	l.log.Info("game reset", "seed", seed, "high_score", snap.HighScore)
	for _, o := range observers {
		o.ObserveTick(snap.clone())
	}
}

// Parameters describes the underlying game configuration.
func (l *Loop) Parameters() core.ParameterSnapshot {
	return l.state.Parameters()
}

// Name returns the simulation identifier.
func (l *Loop) Name() string { return "snake" }

// Size returns the grid dimensions.
func (l *Loop) Size() core.Size { return l.state.Size() }

// Step advances one tick. It exists so hosts can drive the loop as a core.Sim.
func (l *Loop) Step() { l.Tick() }

// Cells exposes the display buffer for the latest snapshot. The slice is
// rewritten by the next Tick or Reset.
func (l *Loop) Cells() []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.display.Cells()
}

var _ core.Sim = (*Loop)(nil)
