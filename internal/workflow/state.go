package workflow

import (
	"time"

	"hivemind/internal/api"
)

// State is the derived display state of the 5-stage pipeline. It holds no
// independent truth about the task outcome: everything but the log buffer is
// recomputed from the latest task snapshot on every Apply.
type State struct {
	TaskID         string
	Steps          [NumSteps]StepStatus
	StepsCompleted int
	TotalSteps     int
	Duration       time.Duration
	Logs           *LogBuffer

	startedAt time.Time
	seenLogs  int // task log entries already folded into the buffer
}

// NewState returns an empty state with all steps pending.
func NewState() *State {
	s := &State{TotalSteps: NumSteps, Logs: NewLogBuffer()}
	s.Steps = Derive(nil)
	return s
}

// Reset clears derived state and the log buffer for a new task.
func (s *State) Reset(taskID string) {
	s.TaskID = taskID
	s.Steps = Derive(nil)
	s.StepsCompleted = 0
	s.Duration = 0
	s.Logs.Clear()
	s.startedAt = time.Time{}
	s.seenLogs = 0
}

// Apply folds a polled task snapshot into the state: step statuses are
// re-derived and log entries not yet seen are appended to the buffer.
// Snapshots for a different task id than the last Reset are applied as-is;
// staleness filtering is the poller's job.
func (s *State) Apply(task *api.Task) {
	if task == nil {
		return
	}
	if s.startedAt.IsZero() {
		s.startedAt = time.Now()
	}

	s.TaskID = task.ID
	s.Steps = Derive(task)
	s.StepsCompleted = 0
	for _, st := range s.Steps {
		if st == StepCompleted {
			s.StepsCompleted++
		}
	}
	s.Duration = time.Since(s.startedAt)

	// The backend resends the full log slice on every poll; fold only the
	// entries beyond what we have already buffered.
	if len(task.Logs) < s.seenLogs {
		// Log list shrank — backend restarted or task replaced. Start over.
		s.seenLogs = 0
		s.Logs.Clear()
	}
	for _, e := range task.Logs[s.seenLogs:] {
		s.Logs.Append(e)
	}
	s.seenLogs = len(task.Logs)
}

// LogError appends a client-side error entry (e.g. a failed poll) to the
// display buffer without touching derived step state.
func (s *State) LogError(msg string) {
	s.Logs.Append(api.LogEntry{
		Time:    time.Now().Format(time.RFC3339),
		Message: msg,
		Status:  "error",
	})
}
