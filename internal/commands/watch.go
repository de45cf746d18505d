package commands

import (
	"context"
	"fmt"
	"time"

	"hivemind/internal/api"
	"hivemind/internal/config"
	"hivemind/internal/notify"
	"hivemind/internal/output"
	"hivemind/internal/poller"
	"hivemind/internal/ui"
	"hivemind/internal/workflow"
)

// RunWatch follows a task until it reaches a terminal state.
func RunWatch(taskID string) {
	client, cfg, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}
	watchTask(client, cfg, taskID)
}

// watchTask polls the task and streams pipeline state to the terminal.
// Poll failures are printed and retried; only a terminal status ends the
// watch.
func watchTask(client *api.Client, cfg *config.Config, taskID string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := poller.New(client, poller.WithInterval(cfg.PollDuration()))
	p.SetActiveTask(taskID)
	go p.Run(ctx)

	state := workflow.NewState()
	state.Reset(taskID)
	streamed := 0 // task log entries already written to the terminal

	for sample := range p.Updates() {
		if sample.Err != nil {
			state.LogError(sample.Err.Error())
			ui.ShowWarning("poll failed: %v (retrying)", sample.Err)
			continue
		}

		state.Apply(sample.Task)

		// Stream from the task's own log slice, not the capped display
		// buffer, so lines keep flowing after the buffer evicts old entries.
		var batch []api.LogEntry
		batch, streamed = nextLogBatch(sample.Task.Logs, streamed)
		for _, e := range batch {
			fmt.Printf("   %s [%s] %s\n", ui.StatusIcon(e.Status), e.Time, e.Message)
		}

		fmt.Printf(" %s %.0f%%  (%d/%d steps)\n",
			ui.ProgressBar(sample.Task.Progress, 24), sample.Task.Progress,
			state.StepsCompleted, state.TotalSteps)

		if sample.Terminal {
			finishWatch(cfg, sample.Task, state)
			return
		}
	}
}

// nextLogBatch returns the task log entries beyond the streamed cursor and
// the new cursor position. A slice shorter than the cursor means the backend
// restarted; the batch then replays from the top.
func nextLogBatch(logs []api.LogEntry, streamed int) ([]api.LogEntry, int) {
	if len(logs) < streamed {
		streamed = 0
	}
	return logs[streamed:], len(logs)
}

func finishWatch(cfg *config.Config, t *api.Task, state *workflow.State) {
	fmt.Println()
	for i, s := range workflow.Steps {
		fmt.Printf("   %s %-18s %s\n", ui.StatusIcon(string(state.Steps[i])), s.Title, state.Steps[i])
	}
	fmt.Println()

	if t.Status == api.TaskCompleted {
		ui.ShowSuccess("Task %s completed in %s", t.ID, state.Duration.Round(time.Second))
	} else {
		ui.ShowError(fmt.Sprintf("Task %s ended: %s", t.ID, t.Status), nil)
	}

	if cfg.Notify {
		if err := notify.NewDesktopNotifier().Send(notify.TaskFinished(t)); err != nil {
			ui.ShowWarning("notification failed: %v", err)
		}
	}
}
