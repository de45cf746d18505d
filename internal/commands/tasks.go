package commands

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"hivemind/internal/api"
	"hivemind/internal/output"
	"hivemind/internal/task"
	"hivemind/internal/ui"
	"hivemind/internal/workflow"
)

// RunTaskList prints all tasks known to the backend.
func RunTaskList() {
	client, _, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	reg := task.NewRegistry(client)
	tasks, err := reg.Refresh(ctx)
	if err != nil {
		output.PrintError(err)
		return
	}

	output.Print(tasks, func() {
		if len(tasks) == 0 {
			ui.ShowInfo("No tasks yet. Start one with: hivemind send \"...\"")
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TASK ID\tAGENT\tSTATUS\tPROGRESS\tMESSAGE")
		for _, t := range tasks {
			msg := t.Message
			if len(msg) > 48 {
				msg = msg[:45] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s %s\t%.0f%%\t%s\n",
				t.ID, t.AgentType, ui.StatusIcon(string(t.Status)), t.Status, t.Progress, msg)
		}
		w.Flush()
	})
}

// RunTaskView prints one task with its derived pipeline state and logs.
func RunTaskView(id string) {
	client, _, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	t, err := client.Task(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrTaskNotFound) {
			output.PrintError(fmt.Errorf("no task with id %s", id))
			return
		}
		output.PrintError(err)
		return
	}

	steps := workflow.Derive(t)

	view := struct {
		Task  *api.Task         `json:"task"`
		Steps map[string]string `json:"steps"`
	}{Task: t, Steps: make(map[string]string, workflow.NumSteps)}
	for i, s := range workflow.Steps {
		view.Steps[s.ID] = string(steps[i])
	}

	output.Print(view, func() {
		ui.ShowHeader("Task " + t.ID)
		ui.ShowInfo("Agent:    %s", t.AgentType)
		ui.ShowInfo("Status:   %s %s", ui.StatusIcon(string(t.Status)), t.Status)
		ui.ShowInfo("Progress: %s %.0f%%", ui.ProgressBar(t.Progress, 20), t.Progress)
		ui.ShowInfo("Message:  %s", t.Message)
		fmt.Println()
		for i, s := range workflow.Steps {
			fmt.Printf("   %s %-18s %s\n", ui.StatusIcon(string(steps[i])), s.Title, steps[i])
		}
		if len(t.Logs) > 0 {
			fmt.Println()
			for _, e := range t.Logs {
				fmt.Printf("   %s [%s] %s\n", ui.StatusIcon(e.Status), e.Time, e.Message)
			}
		}
	})
}

// RunTaskDelete removes a task from the backend's history.
func RunTaskDelete(id string) {
	client, _, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := client.DeleteTask(ctx, id); err != nil {
		output.PrintError(err)
		return
	}

	output.Print(map[string]string{"deleted": id}, func() {
		ui.ShowSuccess("Task %s deleted", id)
	})
}
