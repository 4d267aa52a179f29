package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"snake/internal/loop"
	"snake/internal/replay"
	"snake/internal/stream"
)

func TestSessionRecordsAndStreams(t *testing.T) {
	cfg := NewConfig()
	cfg.Record = filepath.Join(t.TempDir(), "game.parquet")
	cfg.Serve = "127.0.0.1:0"

	s, err := NewSession(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.SpectatorAddr()+"/ws", nil)
	if err != nil {
		s.Close()
		t.Fatal(err)
	}
	defer conn.Close()

	s.Loop.OnKeyEvent(loop.KeyRight)
	s.Loop.Tick()
	s.Loop.Tick()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg stream.Message
	for msg.Payload.Tick < 2 {
		if err := conn.ReadJSON(&msg); err != nil {
			s.Close()
			t.Fatalf("read: %v", err)
		}
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	rows, err := replay.ReadFile(cfg.Record)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d want 2", len(rows))
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("session id %q: %v", s.ID, err)
	}
	if rows[0].SessionID != s.ID {
		t.Fatalf("session=%q want %q", rows[0].SessionID, s.ID)
	}
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.TrimCap = -3
	_, err := NewSession(cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "trim cap") {
		t.Fatalf("err=%v want trim cap error", err)
	}
}
