// Package replay records game ticks to parquet files and reads them back.
package replay

import (
	"encoding/json"
	"fmt"

	"snake/internal/loop"
	"snake/internal/snake"
)

// TickRow is one recorded tick.
//
// Segments holds the body as a JSON array of {x,y} objects, tail first.
type TickRow struct {
	SessionID  string `parquet:"session_id,dict"`
	Tick       int64  `parquet:"tick"`
	HeadX      int32  `parquet:"head_x"`
	HeadY      int32  `parquet:"head_y"`
	AppleX     int32  `parquet:"apple_x"`
	AppleY     int32  `parquet:"apple_y"`
	Heading    string `parquet:"heading,dict"`
	TailLength int32  `parquet:"tail_length"`
	Score      int32  `parquet:"score"`
	HighScore  int32  `parquet:"high_score"`
	Ate        bool   `parquet:"ate"`
	Collided   bool   `parquet:"collided"`
	Segments   []byte `parquet:"segments"`
}

// RowFromSnapshot converts a loop snapshot into a row.
func RowFromSnapshot(sessionID string, s loop.Snapshot) (TickRow, error) {
	body, err := json.Marshal(s.Segments)
	if err != nil {
		return TickRow{}, fmt.Errorf("encode segments: %w", err)
	}
	head := s.Head()
	return TickRow{
		SessionID:  sessionID,
		Tick:       int64(s.Tick),
		HeadX:      int32(head.X),
		HeadY:      int32(head.Y),
		AppleX:     int32(s.Apple.X),
		AppleY:     int32(s.Apple.Y),
		Heading:    s.Heading.String(),
		TailLength: int32(s.TailLength),
		Score:      int32(s.Score),
		HighScore:  int32(s.HighScore),
		Ate:        s.Ate,
		Collided:   s.Collided,
		Segments:   body,
	}, nil
}

// Positions decodes the recorded body.
func (r TickRow) Positions() ([]snake.Position, error) {
	var body []snake.Position
	if err := json.Unmarshal(r.Segments, &body); err != nil {
		return nil, fmt.Errorf("decode segments of tick %d: %w", r.Tick, err)
	}
	return body, nil
}

// Summary aggregates a recording.
type Summary struct {
	Sessions   int
	Ticks      int
	Apples     int
	Collisions int
	MaxScore   int
	HighScore  int
	LongestRun int
}

// Summarize folds rows into a Summary. LongestRun counts consecutive ticks
// without a collision.
func Summarize(rows []TickRow) Summary {
	var sum Summary
	sessions := map[string]struct{}{}
	run := 0
	for _, r := range rows {
		sessions[r.SessionID] = struct{}{}
		sum.Ticks++
		if r.Ate {
			sum.Apples++
		}
		if r.Collided {
			sum.Collisions++
			run = 0
		} else {
			run++
		}
		sum.LongestRun = max(sum.LongestRun, run)
		sum.MaxScore = max(sum.MaxScore, int(r.Score))
		sum.HighScore = max(sum.HighScore, int(r.HighScore))
	}
	sum.Sessions = len(sessions)
	return sum
}
