package replay

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"snake/internal/loop"
	"snake/internal/snake"
)

func TestRecorderWritesEveryTick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games", "run.parquet")
	rec, err := NewRecorder(path, "session-1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if rec.OutPath() != path {
		t.Fatalf("out path=%q want %q", rec.OutPath(), path)
	}

	l := loop.New(snake.New(), nil)
	l.AddObserver(rec)
	l.OnKeyEvent(loop.KeyRight)
	const ticks = DefaultFlushRows + 44
	for i := 0; i < ticks; i++ {
		l.Tick()
	}
	if rec.Rows() != DefaultFlushRows {
		t.Fatalf("rows flushed before close=%d want %d", rec.Rows(), DefaultFlushRows)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("tmp file left behind: %v", err)
	}

	rows, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != ticks {
		t.Fatalf("rows=%d want %d", len(rows), ticks)
	}
	for i, row := range rows {
		if row.Tick != int64(i+1) {
			t.Fatalf("row %d tick=%d want %d", i, row.Tick, i+1)
		}
		if row.SessionID != "session-1" || row.Heading != "right" {
			t.Fatalf("row %d unexpected %+v", i, row)
		}
	}

	last := rows[len(rows)-1]
	body, err := last.Positions()
	if err != nil {
		t.Fatal(err)
	}
	head := body[len(body)-1]
	if head.X != int(last.HeadX) || head.Y != int(last.HeadY) {
		t.Fatalf("decoded head %v does not match (%d,%d)", head, last.HeadX, last.HeadY)
	}
	if len(body) != int(last.TailLength) {
		t.Fatalf("body=%d want tail length %d", len(body), last.TailLength)
	}

	// Row 10 never meets the apple at (13,13).
	sum := Summarize(rows)
	if sum.Ticks != ticks || sum.Sessions != 1 || sum.Apples != 0 || sum.Collisions != 0 {
		t.Fatalf("summary %+v", sum)
	}
}

func TestRecorderDropsEmptyRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	rec, err := NewRecorder(path, "s", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("empty recording should not exist: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	rows := []TickRow{
		{SessionID: "a", Tick: 1},
		{SessionID: "a", Tick: 2, Ate: true, Score: 1, HighScore: 1},
		{SessionID: "a", Tick: 3, Score: 1, HighScore: 1},
		{SessionID: "a", Tick: 4, Collided: true, HighScore: 1},
		{SessionID: "b", Tick: 1, Ate: true, Score: 1, HighScore: 1},
	}
	sum := Summarize(rows)
	want := Summary{Sessions: 2, Ticks: 5, Apples: 2, Collisions: 1, MaxScore: 1, HighScore: 1, LongestRun: 3}
	if sum != want {
		t.Fatalf("summary=%+v want %+v", sum, want)
	}
}

func TestRowFromSnapshot(t *testing.T) {
	snap := loop.Snapshot{
		Tick:       9,
		Apple:      snake.Position{X: 1, Y: 2},
		Segments:   []snake.Position{{X: 3, Y: 4}, {X: 4, Y: 4}},
		Heading:    snake.Right,
		TailLength: 5,
	}
	row, err := RowFromSnapshot("s", snap)
	if err != nil {
		t.Fatal(err)
	}
	if row.HeadX != 4 || row.HeadY != 4 || row.AppleX != 1 || row.AppleY != 2 || row.Heading != "right" {
		t.Fatalf("unexpected row %+v", row)
	}
}
