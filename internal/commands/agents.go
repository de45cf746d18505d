package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"hivemind/internal/agent"
	"hivemind/internal/output"
	"hivemind/internal/ui"
)

type agentRow struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Status       string   `json:"status"`
	Workflow     bool     `json:"workflow"`
	Capabilities []string `json:"capabilities"`
}

// RunAgents lists the agent catalog. With remote=true the status column is
// fetched live from the backend instead of defaulting to idle.
func RunAgents(remote bool) {
	rows := make([]agentRow, 0, len(agent.Types()))

	for _, t := range agent.Types() {
		cfg, err := agent.GetConfig(t)
		if err != nil {
			// Catalog miss on a compiled-in type is a bug; fail loudly.
			output.PrintError(err)
			return
		}
		rows = append(rows, agentRow{
			Type:         string(t),
			Name:         cfg.Name,
			Role:         cfg.Role,
			Status:       string(agent.StatusIdle),
			Capabilities: cfg.Capabilities,
		})
	}

	if remote {
		client, _, err := backendClient()
		if err != nil {
			output.PrintError(err)
			return
		}
		ctx, cancel := commandContext()
		defer cancel()

		workflows := make(map[string]bool)
		if infos, err := client.Agents(ctx); err == nil {
			for _, info := range infos {
				workflows[info.Type] = info.Workflow
			}
		}

		for i := range rows {
			rows[i].Workflow = workflows[rows[i].Type]
			st, err := client.AgentStatus(ctx, rows[i].Type)
			if err != nil {
				rows[i].Status = "unreachable"
				continue
			}
			rows[i].Status = string(agent.ParseStatus(st.Status))
		}
	}

	output.Print(rows, func() {
		ui.ShowHeader("Agents")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tNAME\tROLE\tSTATUS\tCAPABILITIES")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.Type, r.Name, r.Role, r.Status, strings.Join(r.Capabilities, ", "))
		}
		w.Flush()
	})
}
