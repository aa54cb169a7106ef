// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gembom/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
// Items are kept on an in-memory tape for the lifetime of the run and
// summarized through the logger when the recorder is closed.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	log  ports.Logger
	seq  atomic.Uint64
}

// New creates a new Recorder with a fresh tape.
func New(log ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), log)
}

// NewRecorder creates a new Recorder writing to tape.
func NewRecorder(tape *progrock.Tape, log ports.Logger) *Recorder {
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
		log:  log,
	}
}

// Record starts recording a new vertex.
// Identical names within one run still yield distinct vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name + "#" + strconv.FormatUint(r.seq.Add(1), 10))
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close ends the recording and logs one debug record per item followed by
// the totals of the run.
func (r *Recorder) Close() error {
	if err := r.tape.Close(); err != nil {
		return err
	}

	for _, v := range r.tape.Vertices() {
		args := []any{"item", v.GetName(), "duration", elapsed(v)}
		if v.Error != nil {
			args = append(args, "error", v.GetError())
		}
		r.log.Debug("item finished", args...)
	}
	r.log.Debug("recorded items",
		"total", r.tape.TotalCount(),
		"completed", r.tape.CompletedCount(),
		"failed", r.tape.ErroredCount(),
		"duration", r.tape.Duration().Round(time.Millisecond),
	)
	return nil
}

func elapsed(v *progrock.Vertex) time.Duration {
	if v.Started == nil || v.Completed == nil {
		return 0
	}
	return v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime())
}
