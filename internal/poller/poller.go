// Package poller samples the active task's status on a fixed interval and
// fans the snapshots out to whoever is displaying them.
package poller

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"hivemind/internal/api"
)

// DefaultInterval is the polling period.
const DefaultInterval = 2 * time.Second

// fetchTimeout bounds a single status request.
const fetchTimeout = 5 * time.Second

// TaskFetcher is the part of the backend client the poller needs.
type TaskFetcher interface {
	Task(ctx context.Context, id string) (*api.Task, error)
}

// Sample is one delivery: a task snapshot, or the error that tick hit.
// Terminal reports that polling stopped because the task finished.
type Sample struct {
	TaskID   string
	Task     *api.Task
	Err      error
	Terminal bool
}

// Poller observes exactly one active task at a time. At most one status
// request is outstanding per active task: a tick that fires while a request
// is in flight is skipped rather than stacked. Late responses for a task
// that is no longer active are discarded without delivery.
type Poller struct {
	fetcher  TaskFetcher
	interval time.Duration
	logger   *log.Logger

	mu       sync.Mutex
	active   string
	gen      uint64 // bumped on every SetActiveTask; stale results compare against it
	inflight bool

	updates chan Sample
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides the polling period.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// WithLogger overrides the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Poller) { p.logger = l }
}

// New creates a poller. Run must be called before samples are delivered.
func New(fetcher TaskFetcher, opts ...Option) *Poller {
	p := &Poller{
		fetcher:  fetcher,
		interval: DefaultInterval,
		logger:   log.New(os.Stderr, "[poller] ", log.LstdFlags),
		updates:  make(chan Sample, 16),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Updates returns the sample delivery channel. Samples for failed ticks
// carry Err and a nil Task; consumers log them and keep going.
func (p *Poller) Updates() <-chan Sample { return p.updates }

// SetActiveTask replaces the task being observed. An empty id stops
// polling; no further samples are delivered for the previous task, even if
// a request for it is still in flight.
func (p *Poller) SetActiveTask(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == id {
		return
	}
	p.active = id
	p.gen++
}

// ActiveTask returns the task id currently being observed, if any.
func (p *Poller) ActiveTask() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Run drives the tick loop until ctx is cancelled. It is the only writer of
// agent and workflow state downstream, so callers run exactly one Run per
// Poller.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick issues one status request unless one is already outstanding.
func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	if p.active == "" || p.inflight {
		p.mu.Unlock()
		return
	}
	id := p.active
	gen := p.gen
	p.inflight = true
	p.mu.Unlock()

	go p.fetch(ctx, id, gen)
}

func (p *Poller) fetch(ctx context.Context, id string, gen uint64) {
	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	task, err := p.fetcher.Task(reqCtx, id)
	cancel()

	p.mu.Lock()
	p.inflight = false
	if gen != p.gen {
		// The active task changed while we were waiting. Drop silently.
		p.mu.Unlock()
		return
	}

	sample := Sample{TaskID: id, Task: task, Err: err}
	if err == nil && task.Status.Terminal() {
		sample.Terminal = true
		p.active = ""
		p.gen++
	}
	p.mu.Unlock()

	if err != nil {
		// Transient: surface as a sample, keep polling on the next tick.
		p.logger.Printf("poll %s: %v", id, err)
	}

	select {
	case p.updates <- sample:
	case <-ctx.Done():
	}
}
