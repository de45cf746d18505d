package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hivemind/internal/api"
)

// renderTasksView renders the task history list.
func renderTasksView(tasks []api.Task, cursor, width int) string {
	if len(tasks) == 0 {
		return statusMutedStyle.Render("No tasks yet. Press 'r' to refresh or 's' to send a message.")
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Tasks"))
	b.WriteString(statusMutedStyle.Render(fmt.Sprintf("  (%d)", len(tasks))))
	b.WriteString("\n\n")

	for i, t := range tasks {
		prefix := "  "
		style := lipgloss.NewStyle()
		if i == cursor {
			prefix = "▸ "
			style = style.Foreground(primaryColor).Bold(true)
		}

		var status string
		switch {
		case t.Status == api.TaskCompleted:
			status = statusOkStyle.Render("✓ " + string(t.Status))
		case t.Status.Failed():
			status = statusErrorStyle.Render("✗ " + string(t.Status))
		case t.Status == api.TaskRunning:
			status = statusWarnStyle.Render(fmt.Sprintf("▶ running %.0f%%", t.Progress))
		default:
			status = statusMutedStyle.Render(string(t.Status))
		}

		msg := t.Message
		maxMsg := width - 40
		if maxMsg > 0 && len(msg) > maxMsg {
			msg = msg[:maxMsg-3] + "..."
		}

		b.WriteString(style.Render(prefix+t.ID) + "  " + statusMutedStyle.Render(t.AgentType) + "  " + status + "\n")
		b.WriteString(statusMutedStyle.Render("    "+msg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formHintStyle.Render("enter: watch a running task · r: refresh"))
	return b.String()
}
