// Package pipeline runs one operation over a list of items with bounded concurrency.
package pipeline

import (
	"context"
	"sync"

	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/gembom/internal/core/ports"
)

// Config holds the parameters of a stage.
type Config struct {
	// Name identifies the stage in telemetry.
	Name string
	// Limit is the maximum number of items in flight. Values below 1 mean 1.
	Limit int
	// Telemetry records one vertex per item when set.
	Telemetry ports.Telemetry
}

// Stage applies one task to every item of a run.
// A new item starts as soon as any in-flight item finishes.
type Stage[In, Out any] struct {
	cfg   Config
	task  func(ctx context.Context, item In) (Out, error)
	label func(In) string

	mu         sync.RWMutex
	itemStatus []domain.ItemStatus
}

// NewStage creates a stage running task on each item. label names each item in telemetry.
func NewStage[In, Out any](
	cfg Config,
	task func(ctx context.Context, item In) (Out, error),
	label func(In) string,
) *Stage[In, Out] {
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	return &Stage[In, Out]{cfg: cfg, task: task, label: label}
}

// Run processes every item exactly once and partitions the outcomes.
// Item failures never stop sibling items.
func (s *Stage[In, Out]) Run(ctx context.Context, items []In) domain.Partitioned[Out] {
	return domain.Partition(s.Collect(ctx, items))
}

// Collect processes every item exactly once and returns one outcome per item
// in completion order. Once ctx is done no further items start; those are
// reported as failed with the context error.
func (s *Stage[In, Out]) Collect(ctx context.Context, items []In) []domain.Outcome[Out] {
	state := s.newRunState(ctx, items)

	for {
		state.schedule()
		if state.active == 0 {
			break
		}
		state.handleResult(<-state.resultsCh)
	}
	state.skipRemaining()

	return state.outcomes
}

func (s *Stage[In, Out]) updateStatus(i int, status domain.ItemStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemStatus[i] = status
}

type result[Out any] struct {
	index   int
	outcome domain.Outcome[Out]
}

type stageRunState[In, Out any] struct {
	ctx       context.Context
	items     []In
	next      int
	active    int
	resultsCh chan result[Out]
	outcomes  []domain.Outcome[Out]
	s         *Stage[In, Out]
}

func (s *Stage[In, Out]) newRunState(ctx context.Context, items []In) *stageRunState[In, Out] {
	status := make([]domain.ItemStatus, len(items))
	for i := range status {
		status[i] = domain.ItemStatusPending
	}
	s.mu.Lock()
	s.itemStatus = status
	s.mu.Unlock()

	return &stageRunState[In, Out]{
		ctx:       ctx,
		items:     items,
		resultsCh: make(chan result[Out], s.cfg.Limit),
		outcomes:  make([]domain.Outcome[Out], 0, len(items)),
		s:         s,
	}
}

func (state *stageRunState[In, Out]) schedule() {
	for state.next < len(state.items) && state.active < state.s.cfg.Limit && state.ctx.Err() == nil {
		i := state.next
		state.next++

		state.active++
		state.s.updateStatus(i, domain.ItemStatusRunning)

		go func(i int, item In) {
			state.resultsCh <- result[Out]{index: i, outcome: state.execute(item)}
		}(i, state.items[i])
	}
}

func (state *stageRunState[In, Out]) execute(item In) domain.Outcome[Out] {
	ctx := state.ctx
	var vertex ports.Vertex
	if t := state.s.cfg.Telemetry; t != nil {
		ctx, vertex = t.Record(ctx, state.s.cfg.Name+" "+state.s.label(item))
	}

	out, err := state.s.task(ctx, item)
	if vertex != nil {
		if err != nil {
			vertex.Log(domain.LogLevelWarn, err.Error())
		}
		vertex.Complete(err)
	}
	if err != nil {
		return domain.Failed[Out](err)
	}
	return domain.Succeeded(out)
}

func (state *stageRunState[In, Out]) handleResult(res result[Out]) {
	state.active--
	if res.outcome.Err != nil {
		state.s.updateStatus(res.index, domain.ItemStatusFailed)
	} else {
		state.s.updateStatus(res.index, domain.ItemStatusCompleted)
	}
	state.outcomes = append(state.outcomes, res.outcome)
}

// skipRemaining records items that were never started because ctx ended.
func (state *stageRunState[In, Out]) skipRemaining() {
	for ; state.next < len(state.items); state.next++ {
		state.s.updateStatus(state.next, domain.ItemStatusSkipped)
		state.outcomes = append(state.outcomes, domain.Failed[Out](state.ctx.Err()))
	}
}
