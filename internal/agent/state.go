package agent

import (
	"hivemind/internal/api"
)

// Status represents the client-side view of what an agent is doing. The
// vocabulary covers everything the backend's agent-status endpoint may
// report; polled task snapshots only ever produce idle and running.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusThinking Status = "thinking"
	StatusBlocked  Status = "blocked"
)

// ParseStatus normalizes a backend-reported agent status string. Unknown
// strings degrade to idle rather than failing the display.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusRunning, StatusThinking, StatusBlocked:
		return Status(s)
	default:
		return StatusIdle
	}
}

// Agent is the runtime state of one agent. Config never changes after
// startup; the other fields are overwritten by task updates.
type Agent struct {
	Type        Type
	Status      Status
	CurrentTask string  // empty while idle
	Progress    float64 // meaningful only while running
	Config      Config
}

// Set is the owned container for all agent state. It is written only by the
// poller delivery path and by Assign; everything else reads snapshots.
type Set struct {
	agents map[Type]*Agent
	order  []Type
}

// NewSet builds the agent set from the compiled-in registry, all idle.
func NewSet() *Set {
	s := &Set{agents: make(map[Type]*Agent)}
	for _, t := range Types() {
		cfg, _ := GetConfig(t)
		s.agents[t] = &Agent{Type: t, Status: StatusIdle, Config: cfg}
		s.order = append(s.order, t)
	}
	return s
}

// Get returns the agent for t, or nil if t is not in the catalog.
func (s *Set) Get(t Type) *Agent {
	return s.agents[t]
}

// All returns the agents in registry declaration order.
func (s *Set) All() []*Agent {
	out := make([]*Agent, 0, len(s.order))
	for _, t := range s.order {
		out = append(out, s.agents[t])
	}
	return out
}

// Assign marks an agent as running the given message. Called once when a
// task is submitted; subsequent updates come from polled snapshots.
func (s *Set) Assign(t Type, message string) {
	a := s.agents[t]
	if a == nil {
		return
	}
	a.Status = StatusRunning
	a.CurrentTask = message
	a.Progress = 0
}

// ApplyTask folds a polled task snapshot into the owning agent's state.
func (s *Set) ApplyTask(task *api.Task) {
	a := s.agents[Type(task.AgentType)]
	if a == nil {
		return
	}
	if task.Status.Terminal() {
		a.Status = StatusIdle
		a.CurrentTask = ""
		a.Progress = 0
		return
	}
	a.Status = StatusRunning
	a.CurrentTask = task.Message
	a.Progress = task.Progress
}
