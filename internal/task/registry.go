// Package task holds the client-side task registry: a read-through cache of
// the backend's task list. Staleness is tolerated and resolved only by an
// explicit Refresh.
package task

import (
	"context"
	"fmt"
	"sync"

	"hivemind/internal/api"
)

// Lister is the part of the backend client the registry needs.
type Lister interface {
	Tasks(ctx context.Context) ([]api.Task, error)
}

// Registry caches the known tasks in memory for the session.
type Registry struct {
	lister Lister

	mu    sync.RWMutex
	tasks []api.Task
	byID  map[string]int
}

// NewRegistry creates an empty registry backed by the given lister.
func NewRegistry(lister Lister) *Registry {
	return &Registry{
		lister: lister,
		byID:   make(map[string]int),
	}
}

// Refresh replaces the cached list wholesale with the backend's current
// view. A failed fetch leaves the previous cache untouched.
func (r *Registry) Refresh(ctx context.Context) ([]api.Task, error) {
	tasks, err := r.lister.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh tasks: %w", err)
	}

	byID := make(map[string]int, len(tasks))
	for i, t := range tasks {
		byID[t.ID] = i
	}

	r.mu.Lock()
	r.tasks = tasks
	r.byID = byID
	r.mu.Unlock()

	return r.All(), nil
}

// All returns a copy of the cached tasks in backend order.
func (r *Registry) All() []api.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]api.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Get returns the cached task with the given id.
func (r *Registry) Get(id string) (api.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return api.Task{}, false
	}
	return r.tasks[i], true
}

// Len returns the number of cached tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
