package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snake/internal/loop"
	"snake/internal/replay"
	"snake/internal/snake"
	"snake/internal/stream"

	"github.com/google/uuid"
)

// Session is one running game plus the optional recorder and spectator
// stream the flags asked for. Hosts drive Session.Loop and call Close on
// exit.
type Session struct {
	Loop *loop.Loop
	ID   string

	log      *slog.Logger
	recorder *replay.Recorder
	server   *stream.Server
}

// NewSession validates cfg and builds the game and its side channels.
func NewSession(cfg *Config, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	id := uuid.NewString()
	logger = logger.With("session", id)

	state := snake.NewWithConfig(cfg.SnakeConfig())
	s := &Session{
		Loop: loop.New(state, logger),
		ID:   id,
		log:  logger,
	}
	logger.Info("game started", "tps", cfg.TPS, "params", state.Parameters())

	if cfg.Record != "" {
		rec, err := replay.NewRecorder(cfg.Record, id, logger)
		if err != nil {
			return nil, err
		}
		s.recorder = rec
		logger.Info("recording ticks", "path", rec.OutPath())
		s.Loop.AddObserver(rec)
	}
	if cfg.Serve != "" {
		hub := stream.NewHub(logger)
		srv, err := stream.Listen(cfg.Serve, hub, logger)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.server = srv
		s.Loop.AddObserver(hub)
	}
	return s, nil
}

// SpectatorAddr returns the bound spectator address, or "" when streaming
// is off.
func (s *Session) SpectatorAddr() string {
	if s.server == nil {
		return ""
	}
	return s.server.Addr()
}

// Close stops the spectator stream and finalises the recording.
func (s *Session) Close() error {
	var errs []error
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop spectator stream: %w", err))
		}
		cancel()
		s.server = nil
	}
	if s.recorder != nil {
		if err := s.recorder.Close(); err != nil {
			errs = append(errs, fmt.Errorf("finish recording: %w", err))
		}
		s.recorder = nil
	}
	snap := s.Loop.Snapshot()
	s.log.Info("game finished", "ticks", snap.Tick, "score", snap.Score, "high_score", snap.HighScore)
	return errors.Join(errs...)
}
