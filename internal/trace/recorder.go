// Package trace writes per-tick agent positions as CSV.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/ugaemi/huntgrid/internal/round"
)

// Row is one agent at one tick.
type Row struct {
	Session string  `csv:"session"`
	Round   string  `csv:"round"`
	Tick    int     `csv:"tick"`
	State   string  `csv:"state"`
	Agent   int     `csv:"agent"`
	Role    string  `csv:"role"`
	Kind    string  `csv:"kind"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	CellX   int     `csv:"cell_x"`
	CellY   int     `csv:"cell_y"`
}

// Rows flattens a snapshot, one row per agent.
func Rows(snap round.Snapshot) []Row {
	rows := make([]Row, len(snap.Agents))
	for i, a := range snap.Agents {
		rows[i] = Row{
			Session: snap.Session.String(),
			Round:   snap.Round.String(),
			Tick:    snap.Tick,
			State:   snap.State.String(),
			Agent:   i,
			Role:    a.Role.String(),
			Kind:    a.Kind,
			X:       a.Position.X,
			Y:       a.Position.Y,
			CellX:   a.Cell.X,
			CellY:   a.Cell.Y,
		}
	}
	return rows
}

// Recorder appends snapshots to a CSV stream. The header is written with the
// first record. It is safe for concurrent use, so several sessions can share
// one Recorder.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	mu            sync.Mutex
}

// NewRecorder writes to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Create opens a Recorder on a new file at path, creating parent
// directories. It returns nil when path is empty, and a nil Recorder
// discards everything.
func Create(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// Record writes one row per agent of snap.
func (r *Recorder) Record(snap round.Snapshot) error {
	if r == nil {
		return nil
	}
	rows := Rows(snap)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Recorder opened one.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
