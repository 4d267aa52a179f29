// Package snake holds the snake/apple/score simulation. It knows nothing
// about input devices or rendering; a driver calls Advance and
// ConsumeAppleIfColocated once per tick.
package snake

import (
	"fmt"
	"slices"

	"snake/internal/core"
)

// State owns the snake body, the apple and the scores for one game.
type State struct {
	cfg Config

	// segments is ordered tail first, head last.
	segments   []Position
	apple      Position
	heading    Direction
	tailLength int
	highScore  int

	rng *core.RNG
}

// New returns a game using DefaultConfig.
func New() *State {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a game configured from the provided options. Values
// that Validate would reject are clamped to the nearest usable setting.
func NewWithConfig(cfg Config) *State {
	if cfg.AreaSize < 2 {
		cfg.AreaSize = 2
	}
	if cfg.MinimumTailLength < 1 {
		cfg.MinimumTailLength = 1
	}
	if cfg.Policy.TrimCap < 0 {
		cfg.Policy.TrimCap = 0
	}
	s := &State{
		cfg: cfg,
		rng: core.NewRNG(cfg.Seed),
	}
	s.Reset(0)
	return s
}

// Config returns the configuration the game was built with.
func (s *State) Config() Config { return s.cfg }

// Size reports the grid dimensions.
func (s *State) Size() core.Size { return core.Size{W: s.cfg.AreaSize, H: s.cfg.AreaSize} }

// Reset places a fresh snake and apple. A zero seed reuses the configured
// seed. The high score is kept.
func (s *State) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Seed(effective)

	n := s.cfg.AreaSize
	s.segments = append(s.segments[:0], Position{X: n / 2, Y: n / 2})
	s.apple = Position{X: n * 2 / 3, Y: n * 2 / 3}
	s.heading = None
	s.tailLength = s.cfg.MinimumTailLength
}

// Advance moves the snake one cell in dir and reports whether the new head
// landed on the body. A collision shrinks the snake back to the minimum
// tail length, and with FreezeOnCollision also stops it.
func (s *State) Advance(dir Direction) bool {
	if !dir.Valid() {
		panic(fmt.Sprintf("snake: unknown direction %d", dir))
	}
	s.heading = dir

	n := s.cfg.AreaSize
	dx, dy := dir.Delta()
	head := s.Head()
	next := Position{X: core.WrapAxis(head.X+dx, n), Y: core.WrapAxis(head.Y+dy, n)}

	// A stationary snake lands on its own head, which counts: it drops back
	// to the minimum length.
	collided := slices.Contains(s.segments, next)
	if collided {
		s.tailLength = s.cfg.MinimumTailLength
		if s.cfg.Policy.FreezeOnCollision {
			s.heading = None
		}
	}

	s.segments = append(s.segments, next)
	s.trim()
	return collided
}

func (s *State) trim() {
	excess := len(s.segments) - s.tailLength
	if excess <= 0 {
		return
	}
	if limit := s.cfg.Policy.TrimCap; limit > 0 && excess > limit {
		excess = limit
	}
	s.segments = slices.Delete(s.segments, 0, excess)
}

// ConsumeAppleIfColocated grows the snake and moves the apple to a random
// cell when the head sits on the apple. The new cell may be under the body.
func (s *State) ConsumeAppleIfColocated() bool {
	if s.apple != s.Head() {
		return false
	}
	s.tailLength++
	n := s.cfg.AreaSize
	s.apple = Position{X: s.rng.IntN(n), Y: s.rng.IntN(n)}
	return true
}

// Score is the growth beyond the minimum tail length.
func (s *State) Score() int { return s.tailLength - s.cfg.MinimumTailLength }

// HighScore is the best Score seen since the State was created.
func (s *State) HighScore() int { return s.highScore }

// UpdateHighScore folds the current score into the high score and returns it.
func (s *State) UpdateHighScore() int {
	s.highScore = max(s.highScore, s.Score())
	return s.highScore
}

// Head returns the newest segment.
func (s *State) Head() Position { return s.segments[len(s.segments)-1] }

// Segments returns a copy of the body, tail first.
func (s *State) Segments() []Position { return slices.Clone(s.segments) }

// Apple returns the apple position.
func (s *State) Apple() Position { return s.apple }

// Heading returns the direction used by the last Advance.
func (s *State) Heading() Direction { return s.heading }

// TailLength returns the target body length.
func (s *State) TailLength() int { return s.tailLength }

// Shrinking reports whether the body is longer than the tail length, which
// only happens while a capped trim catches up after a collision.
func (s *State) Shrinking() bool { return len(s.segments) > s.tailLength }

// SetSegments replaces the body. Positions are wrapped into the grid and an
// empty body is ignored.
func (s *State) SetSegments(body []Position) {
	if len(body) == 0 {
		return
	}
	n := s.cfg.AreaSize
	s.segments = s.segments[:0]
	for _, p := range body {
		s.segments = append(s.segments, Position{X: core.WrapAxis(p.X, n), Y: core.WrapAxis(p.Y, n)})
	}
}

// SetApple moves the apple, wrapping the position into the grid.
func (s *State) SetApple(p Position) {
	n := s.cfg.AreaSize
	s.apple = Position{X: core.WrapAxis(p.X, n), Y: core.WrapAxis(p.Y, n)}
}

// SetHeading overrides the heading without moving.
func (s *State) SetHeading(d Direction) {
	if d.Valid() {
		s.heading = d
	}
}

// SetTailLength overrides the target length. It never drops below one.
func (s *State) SetTailLength(n int) {
	s.tailLength = max(n, 1)
}
