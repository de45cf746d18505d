package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hivemind/internal/agent"
	"hivemind/internal/workflow"
)

// renderDashboard lays out the agents panel, the pipeline panel, and the
// live log panel.
func (m Model) renderDashboard() string {
	width := m.contentWidth()
	leftWidth := width / 2
	rightWidth := width - leftWidth - 2

	top := lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelBorderStyle.Width(leftWidth).Render(renderAgentsPanel(m.agents)),
		panelBorderStyle.Width(rightWidth).MarginLeft(2).Render(renderPipelinePanel(m.wf)),
	)

	logHeight := m.height - lipgloss.Height(top) - 8
	if logHeight < 3 {
		logHeight = 3
	}
	logs := panelBorderStyle.Width(width).Render(renderLogPanel(m.wf, logHeight))

	return lipgloss.JoinVertical(lipgloss.Left, top, logs)
}

func renderAgentsPanel(agents *agent.Set) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Agents"))
	b.WriteString("\n\n")

	for _, a := range agents.All() {
		var status string
		switch a.Status {
		case agent.StatusRunning:
			status = statusWarnStyle.Render(fmt.Sprintf("▶ running %.0f%%", a.Progress))
		case agent.StatusThinking:
			status = statusWarnStyle.Render("… thinking")
		case agent.StatusBlocked:
			status = statusErrorStyle.Render("■ blocked")
		default:
			status = statusOkStyle.Render("● idle")
		}

		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			a.Config.Icon, panelTitleStyle.Render(a.Config.Name), statusMutedStyle.Render(a.Config.Role), status))
		if a.CurrentTask != "" {
			taskLine := a.CurrentTask
			if len(taskLine) > 40 {
				taskLine = taskLine[:37] + "..."
			}
			b.WriteString(statusMutedStyle.Render("   "+taskLine) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderPipelinePanel(wf *workflow.State) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Workflow"))
	if wf.TaskID != "" {
		b.WriteString(statusMutedStyle.Render("  " + wf.TaskID))
	}
	b.WriteString("\n\n")

	for i, step := range workflow.Steps {
		var marker, label string
		switch wf.Steps[i] {
		case workflow.StepCompleted:
			marker = statusOkStyle.Render("✓")
			label = step.Title
		case workflow.StepRunning:
			marker = statusWarnStyle.Render("▶")
			label = statusWarnStyle.Render(step.Title)
		case workflow.StepFailed:
			marker = statusErrorStyle.Render("✗")
			label = statusErrorStyle.Render(step.Title)
		default:
			marker = statusMutedStyle.Render("·")
			label = statusMutedStyle.Render(step.Title)
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", marker, label))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(" %d/%d steps", wf.StepsCompleted, wf.TotalSteps))
	if wf.Duration > 0 {
		b.WriteString(statusMutedStyle.Render(fmt.Sprintf("  %s", wf.Duration.Round(time.Second))))
	}
	return b.String()
}

func renderLogPanel(wf *workflow.State, height int) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Logs"))
	b.WriteString("\n")

	entries := wf.Logs.Entries()
	if len(entries) == 0 {
		b.WriteString(statusMutedStyle.Render("no activity yet — press 's' to send a message"))
		return b.String()
	}

	shown := entries
	if len(shown) > height {
		shown = shown[:height]
	}
	for _, e := range shown {
		var style = statusMutedStyle
		switch e.Status {
		case "error":
			style = statusErrorStyle
		case "success":
			style = statusOkStyle
		case "warning":
			style = statusWarnStyle
		}
		b.WriteString(fmt.Sprintf("%s %s\n", statusMutedStyle.Render(e.Time), style.Render(e.Message)))
	}
	return strings.TrimRight(b.String(), "\n")
}
