package workflow

import (
	"hivemind/internal/api"
)

// StepStatus is the derived display state of one pipeline step.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// Step identifies one stage of the fixed display pipeline.
type Step struct {
	ID        string
	Title     string
	Threshold float64 // progress the task must exceed for the step to complete
	Inclusive bool    // completion step triggers at progress == threshold
}

// Steps is the fixed pipeline, in display order. Thresholds are evaluated
// independently per step; there is no cumulative gating.
var Steps = [...]Step{
	{ID: "goal-setting", Title: "Goal Setting", Threshold: 20},
	{ID: "echo-processing", Title: "Echo Processing", Threshold: 40},
	{ID: "elon-execution", Title: "Elon Execution", Threshold: 60},
	{ID: "henry-execution", Title: "Henry Execution", Threshold: 80},
	{ID: "completion", Title: "Completion", Threshold: 100, Inclusive: true},
}

// NumSteps is the length of the fixed pipeline.
const NumSteps = len(Steps)

// Derive maps a task snapshot to per-step statuses. It is a pure function:
// same snapshot in, same statuses out.
//
// A step whose threshold is met shows completed. Below the threshold it
// shows running while the task is active and pending while the task has not
// started. If the task ended without completing, every step that had not
// completed shows failed.
func Derive(task *api.Task) [NumSteps]StepStatus {
	var out [NumSteps]StepStatus
	if task == nil {
		for i := range out {
			out[i] = StepPending
		}
		return out
	}

	for i, step := range Steps {
		met := task.Progress > step.Threshold
		if step.Inclusive {
			met = task.Progress >= step.Threshold
		}

		switch {
		case met:
			out[i] = StepCompleted
		case task.Status.Failed():
			out[i] = StepFailed
		case task.Status == api.TaskRunning:
			out[i] = StepRunning
		default:
			out[i] = StepPending
		}
	}
	return out
}
