package commands

import (
	"fmt"

	"hivemind/internal/agent"
	"hivemind/internal/output"
	"hivemind/internal/ui"
)

// RunSend routes a message to an agent and starts a workflow task. With an
// empty agentFlag the assignment selector picks the first idle agent based
// on the backend's running tasks.
func RunSend(message, agentFlag string, watch bool) {
	client, cfg, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	agents := agent.NewSet()

	var target agent.Type
	if agentFlag != "" {
		target = agent.Type(agentFlag)
		if !agent.Valid(target) {
			output.PrintError(fmt.Errorf("%q: %w", agentFlag, agent.ErrUnknownAgent))
			return
		}
	} else {
		// Mark agents with a running task busy, then pick the first idle one.
		if tasks, err := client.Tasks(ctx); err == nil {
			for i := range tasks {
				if !tasks[i].Status.Terminal() {
					agents.ApplyTask(&tasks[i])
				}
			}
		}
		target = agent.Select(agents)
	}

	taskID, err := client.StartWorkflow(ctx, string(target), message)
	if err != nil {
		output.PrintError(fmt.Errorf("start workflow: %w", err))
		return
	}
	agents.Assign(target, message)

	result := struct {
		TaskID string `json:"taskId"`
		Agent  string `json:"agent"`
	}{taskID, string(target)}

	if watch {
		if !output.JSONMode {
			ui.ShowSuccess("Task %s started on %s", taskID, target)
		}
		watchTask(client, cfg, taskID)
		return
	}

	output.Print(result, func() {
		ui.ShowSuccess("Task %s started on %s", taskID, target)
		ui.ShowInfo("Follow it with: hivemind watch %s", taskID)
	})
}
