package replay

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"snake/internal/loop"
)

// DefaultFlushRows is how many ticks the recorder buffers between writes.
const DefaultFlushRows = 256

// Recorder appends every observed tick to a parquet file. The file is
// written under a temporary name and moved into place by Close.
type Recorder struct {
	log       *slog.Logger
	sessionID string
	flushRows int

	mu      sync.Mutex
	tmpPath string
	outPath string
	file    *os.File
	writer  *parquet.GenericWriter[TickRow]
	pending []TickRow
	rows    int
	err     error
}

// NewRecorder opens path for writing.
func NewRecorder(path, sessionID string, logger *slog.Logger) (*Recorder, error) {
	if path == "" {
		return nil, fmt.Errorf("record path is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	outPath, err := filepath.Abs(path)
	if err != nil {
		outPath = path
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	tmpPath := outPath + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open tmp parquet: %w", err)
	}

	w := parquet.NewGenericWriter[TickRow](
		f,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.SkipPageBounds("segments"),
	)
	w.SetKeyValueMetadata("schema", "snake_tick_v1")

	return &Recorder{
		log:       logger,
		sessionID: sessionID,
		flushRows: DefaultFlushRows,
		tmpPath:   tmpPath,
		outPath:   outPath,
		file:      f,
		writer:    w,
	}, nil
}

// OutPath is where Close leaves the finished recording.
func (r *Recorder) OutPath() string { return r.outPath }

// ObserveTick buffers the snapshot and writes a batch when enough rows are
// pending. Errors are kept and reported by Close.
func (r *Recorder) ObserveTick(s loop.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil || r.writer == nil {
		return
	}
	row, err := RowFromSnapshot(r.sessionID, s)
	if err != nil {
		r.err = err
		return
	}
	r.pending = append(r.pending, row)
	if len(r.pending) >= r.flushRows {
		r.err = r.flushLocked()
	}
}

func (r *Recorder) flushLocked() error {
	if len(r.pending) == 0 {
		return nil
	}
	n, err := r.writer.Write(r.pending)
	r.rows += n
	if err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	r.log.Debug("recorded ticks", "rows", n, "total", r.rows)
	r.pending = r.pending[:0]
	return nil
}

// Rows reports how many ticks have reached the parquet writer.
func (r *Recorder) Rows() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}

// Close flushes pending rows, closes the file and renames it into place.
// An empty recording is removed instead.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writer == nil && r.file == nil {
		return r.err
	}

	if r.err == nil {
		r.err = r.flushLocked()
	}
	closeErr := r.writer.Close()
	r.writer = nil
	_ = r.file.Sync()
	fileErr := r.file.Close()
	r.file = nil

	switch {
	case r.err != nil:
	case closeErr != nil:
		r.err = fmt.Errorf("close parquet writer: %w", closeErr)
	case fileErr != nil:
		r.err = fmt.Errorf("close parquet file: %w", fileErr)
	}
	if r.err != nil || r.rows == 0 {
		_ = os.Remove(r.tmpPath)
		return r.err
	}
	if err := os.Rename(r.tmpPath, r.outPath); err != nil {
		r.err = fmt.Errorf("rename parquet: %w", err)
		return r.err
	}
	r.log.Info("recording saved", "path", r.outPath, "rows", r.rows)
	return nil
}

var _ loop.Observer = (*Recorder)(nil)
