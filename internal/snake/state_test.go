package snake

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func line(y, fromX, toX int) []Position {
	var body []Position
	for x := fromX; x <= toX; x++ {
		body = append(body, Position{X: x, Y: y})
	}
	return body
}

func TestResetPlacesInitialPieces(t *testing.T) {
	s := New()

	if got := s.Head(); got != (Position{X: 10, Y: 10}) {
		t.Fatalf("head=%v want (10,10)", got)
	}
	if got := s.Apple(); got != (Position{X: 13, Y: 13}) {
		t.Fatalf("apple=%v want (13,13)", got)
	}
	if len(s.Segments()) != 1 {
		t.Fatalf("segments=%d want 1", len(s.Segments()))
	}
	if s.TailLength() != DefaultMinimumTailLength {
		t.Fatalf("tail length=%d want %d", s.TailLength(), DefaultMinimumTailLength)
	}
	if s.Heading() != None {
		t.Fatalf("heading=%v want none", s.Heading())
	}
	if s.Score() != 0 || s.HighScore() != 0 {
		t.Fatalf("score=%d high=%d want 0/0", s.Score(), s.HighScore())
	}
}

func TestAdvanceWrapsEachEdge(t *testing.T) {
	cases := []struct {
		start Position
		dir   Direction
		want  Position
	}{
		{Position{X: 19, Y: 7}, Right, Position{X: 0, Y: 7}},
		{Position{X: 0, Y: 7}, Left, Position{X: 19, Y: 7}},
		{Position{X: 4, Y: 0}, Up, Position{X: 4, Y: 19}},
		{Position{X: 4, Y: 19}, Down, Position{X: 4, Y: 0}},
	}
	for _, tc := range cases {
		s := New()
		s.SetSegments([]Position{tc.start})
		if s.Advance(tc.dir) {
			t.Fatalf("%v from %v reported a collision", tc.dir, tc.start)
		}
		if got := s.Head(); got != tc.want {
			t.Fatalf("%v from %v: head=%v want %v", tc.dir, tc.start, got, tc.want)
		}
	}
}

func TestScenarioEatsAppleOnce(t *testing.T) {
	s := New()
	eaten := 0
	step := func(d Direction) {
		s.Advance(d)
		if s.ConsumeAppleIfColocated() {
			eaten++
		}
		s.UpdateHighScore()
	}
	for i := 0; i < 3; i++ {
		step(Right)
	}
	for i := 0; i < 3; i++ {
		step(Down)
	}
	for s.Head() != (Position{X: 13, Y: 13}) {
		step(Right)
	}

	if eaten != 1 {
		t.Fatalf("apples eaten=%d want 1", eaten)
	}
	if s.TailLength() != 6 {
		t.Fatalf("tail length=%d want 6", s.TailLength())
	}
	if s.Score() != 1 || s.HighScore() != 1 {
		t.Fatalf("score=%d high=%d want 1/1", s.Score(), s.HighScore())
	}
	apple := s.Apple()
	if apple.X < 0 || apple.X >= 20 || apple.Y < 0 || apple.Y >= 20 {
		t.Fatalf("apple relocated out of bounds: %v", apple)
	}
}

func TestSelfCollisionResetsTailLength(t *testing.T) {
	s := New()
	s.SetSegments(line(5, 3, 9))
	s.SetTailLength(7)
	s.SetHeading(Right)
	if s.UpdateHighScore() != 2 {
		t.Fatalf("high score=%d want 2", s.HighScore())
	}

	// Reversing straight into the neck is only reachable by injection.
	if !s.Advance(Left) {
		t.Fatal("expected a collision")
	}
	s.UpdateHighScore()

	if s.TailLength() != DefaultMinimumTailLength {
		t.Fatalf("tail length=%d want %d", s.TailLength(), DefaultMinimumTailLength)
	}
	if s.Score() != 0 {
		t.Fatalf("score=%d want 0", s.Score())
	}
	if s.HighScore() != 2 {
		t.Fatalf("high score=%d want 2", s.HighScore())
	}
	if got := len(s.Segments()); got != DefaultMinimumTailLength {
		t.Fatalf("segments=%d want %d", got, DefaultMinimumTailLength)
	}
	if s.Heading() != Left {
		t.Fatalf("heading=%v want left", s.Heading())
	}
}

func TestCollisionDetectedAgainstSegmentAboutToBeTrimmed(t *testing.T) {
	s := New()
	// Square loop: the head at (6,6) moving Up re-enters the tail cell (6,5).
	s.SetSegments([]Position{{X: 6, Y: 5}, {X: 7, Y: 5}, {X: 7, Y: 6}, {X: 6, Y: 6}})
	s.SetTailLength(4)
	if !s.Advance(Up) {
		t.Fatal("tail cell must count as body before trimming")
	}
}

func TestFreezeOnCollisionStopsSnake(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.FreezeOnCollision = true
	s := NewWithConfig(cfg)
	s.SetSegments(line(5, 3, 9))
	s.SetTailLength(7)

	if !s.Advance(Left) {
		t.Fatal("expected a collision")
	}
	if s.Heading() != None {
		t.Fatalf("heading=%v want none", s.Heading())
	}
	head := s.Head()
	if !s.Advance(s.Heading()) {
		t.Fatal("a frozen snake lands on its own head")
	}
	if s.TailLength() != DefaultMinimumTailLength {
		t.Fatalf("tail=%d want %d", s.TailLength(), DefaultMinimumTailLength)
	}
	if s.Head() != head {
		t.Fatalf("frozen head moved from %v to %v", head, s.Head())
	}
}

func TestTrimCapLeavesExcessForLaterTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.TrimCap = 2
	s := NewWithConfig(cfg)
	s.SetSegments(line(5, 1, 9))
	s.SetTailLength(9)

	s.Advance(Left)
	wantLens := []int{8, 7, 6, 5}
	if got := len(s.Segments()); got != wantLens[0] {
		t.Fatalf("after collision segments=%d want %d", got, wantLens[0])
	}
	if !s.Shrinking() {
		t.Fatal("expected shrinking after capped trim")
	}
	for _, want := range wantLens[1:] {
		s.Advance(Up)
		if got := len(s.Segments()); got != want {
			t.Fatalf("segments=%d want %d", got, want)
		}
	}
	if s.Shrinking() {
		t.Fatal("body should fit tail length again")
	}
}

func TestUnboundedTrimFitsImmediately(t *testing.T) {
	s := New()
	s.SetSegments(line(5, 1, 9))
	s.SetTailLength(9)

	s.Advance(Left)
	if got := len(s.Segments()); got != DefaultMinimumTailLength {
		t.Fatalf("segments=%d want %d", got, DefaultMinimumTailLength)
	}
	if s.Shrinking() {
		t.Fatal("unbounded trim must not leave excess")
	}
}

func TestIdleSnakeStacksOnItsHead(t *testing.T) {
	s := New()
	for i := 0; i < 8; i++ {
		if !s.Advance(None) {
			t.Fatalf("tick %d: idle head should land on the body", i)
		}
		if s.TailLength() != DefaultMinimumTailLength {
			t.Fatalf("tick %d: tail=%d want %d", i, s.TailLength(), DefaultMinimumTailLength)
		}
	}
	if s.Head() != (Position{X: 10, Y: 10}) {
		t.Fatalf("idle head moved to %v", s.Head())
	}
	if got := len(s.Segments()); got != DefaultMinimumTailLength {
		t.Fatalf("segments=%d want %d", got, DefaultMinimumTailLength)
	}
}

func TestRandomWalkKeepsInvariants(t *testing.T) {
	s := New()
	rng := rand.New(rand.NewPCG(7, 11))
	dirs := []Direction{Up, Right, Down, Left}
	prevHigh := 0

	for tick := 0; tick < 2000; tick++ {
		d := dirs[rng.IntN(len(dirs))]
		if d == s.Heading().Opposite() {
			d = s.Heading()
		}
		// Steer toward the apple now and then so the snake grows.
		if tick%3 == 0 {
			head, apple := s.Head(), s.Apple()
			switch {
			case apple.X > head.X && s.Heading() != Left:
				d = Right
			case apple.Y > head.Y && s.Heading() != Up:
				d = Down
			}
		}
		s.Advance(d)
		s.ConsumeAppleIfColocated()
		high := s.UpdateHighScore()

		body := s.Segments()
		if len(body) == 0 {
			t.Fatalf("tick %d: empty body", tick)
		}
		if len(body) > s.TailLength() {
			t.Fatalf("tick %d: body %d longer than tail length %d", tick, len(body), s.TailLength())
		}
		for _, p := range body {
			if p.X < 0 || p.X >= 20 || p.Y < 0 || p.Y >= 20 {
				t.Fatalf("tick %d: segment %v out of bounds", tick, p)
			}
		}
		if s.Score() != s.TailLength()-DefaultMinimumTailLength {
			t.Fatalf("tick %d: score %d does not match tail length %d", tick, s.Score(), s.TailLength())
		}
		if high < prevHigh {
			t.Fatalf("tick %d: high score dropped from %d to %d", tick, prevHigh, high)
		}
		prevHigh = high
	}
}

func TestResetKeepsHighScoreAndIsDeterministic(t *testing.T) {
	s := New()
	s.SetTailLength(9)
	s.UpdateHighScore()

	s.Reset(42)
	if s.HighScore() != 4 {
		t.Fatalf("high score=%d want 4", s.HighScore())
	}
	if s.Score() != 0 {
		t.Fatalf("score=%d want 0", s.Score())
	}

	eat := func() Position {
		s.SetApple(s.Head())
		s.ConsumeAppleIfColocated()
		return s.Apple()
	}
	first := []Position{eat(), eat(), eat()}
	s.Reset(42)
	second := []Position{eat(), eat(), eat()}
	if !slices.Equal(first, second) {
		t.Fatalf("apple sequence not deterministic: %v vs %v", first, second)
	}
}

func TestConsumeRequiresColocation(t *testing.T) {
	s := New()
	if s.ConsumeAppleIfColocated() {
		t.Fatal("apple away from head must not be eaten")
	}
	if s.TailLength() != DefaultMinimumTailLength {
		t.Fatalf("tail length changed to %d", s.TailLength())
	}
}

func TestAdvancePanicsOnUnknownDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an undeclared direction")
		}
	}()
	New().Advance(Direction(9))
}

func TestFrozenSnakeOnAppleLosesGrowthNextTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy.FreezeOnCollision = true
	s := NewWithConfig(cfg)

	var body []Position
	for x := 3; x <= 9; x++ {
		body = append(body, Position{X: x, Y: 5})
	}
	s.SetSegments(body)
	s.SetHeading(Right)
	s.SetTailLength(7)
	s.SetApple(Position{X: 8, Y: 5})

	if !s.Advance(Left) {
		t.Fatal("turning back into the body should collide")
	}
	if !s.ConsumeAppleIfColocated() {
		t.Fatal("head on the apple should eat it")
	}
	if s.Heading() != None || s.TailLength() != 6 {
		t.Fatalf("heading=%v tail=%d want none and 6", s.Heading(), s.TailLength())
	}

	s.SetApple(Position{X: 0, Y: 0})
	s.Advance(s.Heading())
	s.ConsumeAppleIfColocated()
	if s.TailLength() != DefaultMinimumTailLength || s.Score() != 0 {
		t.Fatalf("tail=%d score=%d want %d and 0", s.TailLength(), s.Score(), DefaultMinimumTailLength)
	}
	if got := len(s.Segments()); got != DefaultMinimumTailLength {
		t.Fatalf("segments=%d want %d", got, DefaultMinimumTailLength)
	}
}
