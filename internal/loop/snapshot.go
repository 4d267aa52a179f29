package loop

import (
	"slices"

	"snake/internal/snake"
)

// Snapshot is the immutable render state produced once per tick.
type Snapshot struct {
	Tick       uint64           `json:"tick"`
	Apple      snake.Position   `json:"apple"`
	Segments   []snake.Position `json:"segments"`
	Heading    snake.Direction  `json:"heading"`
	TailLength int              `json:"tail_length"`
	Score      int              `json:"score"`
	HighScore  int              `json:"high_score"`
	Shrinking  bool             `json:"shrinking"`

	// Events that happened during the tick that produced the snapshot.
	// Collided is only set for a moving snake; an idle one always lands on
	// its own head.
	Ate      bool `json:"ate"`
	Collided bool `json:"collided"`
}

// Head returns the newest segment.
func (s Snapshot) Head() snake.Position {
	if len(s.Segments) == 0 {
		return snake.Position{}
	}
	return s.Segments[len(s.Segments)-1]
}

// ObjectKind tags a renderable object.
type ObjectKind uint8

const (
	ObjectApple ObjectKind = iota
	ObjectBody
	ObjectHead
)

// Object is one renderable cell.
type Object struct {
	Kind ObjectKind
	Pos  snake.Position
}

// Objects flattens the snapshot for renderers: the apple first, then the
// body from tail to head.
func (s Snapshot) Objects() []Object {
	objs := make([]Object, 0, len(s.Segments)+1)
	objs = append(objs, Object{Kind: ObjectApple, Pos: s.Apple})
	for i, p := range s.Segments {
		kind := ObjectBody
		if i == len(s.Segments)-1 {
			kind = ObjectHead
		}
		objs = append(objs, Object{Kind: kind, Pos: p})
	}
	return objs
}

func snapshotOf(st *snake.State, tick uint64, ate, collided bool) Snapshot {
	return Snapshot{
		Tick:       tick,
		Apple:      st.Apple(),
		Segments:   st.Segments(),
		Heading:    st.Heading(),
		TailLength: st.TailLength(),
		Score:      st.Score(),
		HighScore:  st.HighScore(),
		Shrinking:  st.Shrinking(),
		Ate:        ate,
		Collided:   collided,
	}
}

func (s Snapshot) clone() Snapshot {
	s.Segments = slices.Clone(s.Segments)
	return s
}
