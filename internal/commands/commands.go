package commands

import (
	"context"
	"fmt"
	"time"

	"hivemind/internal/api"
	"hivemind/internal/config"
	mcpserver "hivemind/internal/mcp"
	"hivemind/internal/output"
	"hivemind/internal/ui"
)

// Version information, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const commandTimeout = 30 * time.Second

// backendClient builds a client from the resolved configuration.
func backendClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return api.NewClient(cfg.BackendURL), cfg, nil
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func RunVersion() {
	fmt.Printf("hivemind version %s (commit %s, built %s)\n", Version, Commit, Date)
}

func RunMcp() {
	if err := mcpserver.RunServer(Version); err != nil {
		output.PrintError(err)
	}
}

func RunHealth() {
	client, _, err := backendClient()
	if err != nil {
		output.PrintError(err)
		return
	}

	ctx, cancel := commandContext()
	defer cancel()

	h, err := client.Health(ctx)
	if err != nil {
		output.PrintError(fmt.Errorf("backend unreachable at %s: %w", client.BaseURL(), err))
		return
	}

	output.Print(h, func() {
		ui.ShowHeader("Backend Health")
		ui.ShowInfo("URL:     %s", client.BaseURL())
		ui.ShowInfo("Status:  %s", h.Status)
		ui.ShowInfo("Version: %s", h.Version)
		for name, a := range h.Agents {
			marker := ui.StatusIcon(a.Status)
			if a.Status == "ready" {
				marker = "✓"
			}
			fmt.Printf("   %s %s (workflow: %v)\n", marker, name, a.Workflow)
		}
	})
}
