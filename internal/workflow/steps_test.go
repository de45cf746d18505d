package workflow

import (
	"testing"

	"hivemind/internal/api"
)

func runningTask(progress float64) *api.Task {
	return &api.Task{ID: "t1", AgentType: "echo", Status: api.TaskRunning, Progress: progress}
}

func TestDerive_ThresholdSweep(t *testing.T) {
	// Each step's status depends only on its own threshold.
	tests := []struct {
		progress float64
		want     [NumSteps]StepStatus
	}{
		{0, [NumSteps]StepStatus{StepRunning, StepRunning, StepRunning, StepRunning, StepRunning}},
		{20, [NumSteps]StepStatus{StepRunning, StepRunning, StepRunning, StepRunning, StepRunning}},
		{21, [NumSteps]StepStatus{StepCompleted, StepRunning, StepRunning, StepRunning, StepRunning}},
		{40, [NumSteps]StepStatus{StepCompleted, StepRunning, StepRunning, StepRunning, StepRunning}},
		{41, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepRunning, StepRunning, StepRunning}},
		{60, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepRunning, StepRunning, StepRunning}},
		{61, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepCompleted, StepRunning, StepRunning}},
		{80, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepCompleted, StepRunning, StepRunning}},
		{81, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepCompleted, StepCompleted, StepRunning}},
		{100, [NumSteps]StepStatus{StepCompleted, StepCompleted, StepCompleted, StepCompleted, StepCompleted}},
	}

	for _, tt := range tests {
		got := Derive(runningTask(tt.progress))
		if got != tt.want {
			t.Errorf("progress %.0f: got %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestDerive_PendingBeforeStart(t *testing.T) {
	task := &api.Task{ID: "t1", Status: api.TaskPending, Progress: 0}
	got := Derive(task)
	for i, st := range got {
		if st != StepPending {
			t.Errorf("step %d = %v, want pending", i, st)
		}
	}
}

func TestDerive_NilTask(t *testing.T) {
	got := Derive(nil)
	for i, st := range got {
		if st != StepPending {
			t.Errorf("step %d = %v, want pending", i, st)
		}
	}
}

func TestDerive_FailurePropagation(t *testing.T) {
	// A task that failed at progress 45: the first two steps had completed,
	// the rest show failed rather than running or pending.
	task := &api.Task{ID: "t1", Status: api.TaskFailed, Progress: 45}
	got := Derive(task)

	want := [NumSteps]StepStatus{StepCompleted, StepCompleted, StepFailed, StepFailed, StepFailed}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDerive_RejectedCountsAsFailure(t *testing.T) {
	tests := []struct {
		name   string
		status api.TaskStatus
	}{
		{"rejected", api.TaskRejected},
		{"rate limited", api.TaskRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &api.Task{ID: "t1", Status: tt.status, Progress: 0}
			got := Derive(task)
			for i, st := range got {
				if st != StepFailed {
					t.Errorf("step %d = %v, want failed", i, st)
				}
			}
		})
	}
}

func TestDerive_Idempotent(t *testing.T) {
	task := runningTask(63)
	first := Derive(task)
	second := Derive(task)
	if first != second {
		t.Errorf("derive is not idempotent: %v then %v", first, second)
	}
}
