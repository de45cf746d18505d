// Package mcpserver exposes the Hive Mind backend as MCP tools over stdio,
// so an MCP host can submit messages and watch task progress through the
// same client the CLI uses.
package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"hivemind/internal/api"
	"hivemind/internal/config"
)

// RunServer starts the MCP server over stdio transport.
func RunServer(version string) error {
	server := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "hivemind",
			Version: version,
		},
		nil,
	)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "hive_agents",
		Description: "List the Hive Mind agents with their roles and capabilities",
	}, agentsHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "hive_send",
		Description: "Submit a user message to a Hive Mind agent and get back the task id",
	}, sendHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "hive_tasks",
		Description: "List all known Hive Mind tasks with status and progress",
	}, tasksHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "hive_task_status",
		Description: "Get the full status, progress, and logs of a Hive Mind task",
	}, taskStatusHandler)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "hive_health",
		Description: "Check Hive Mind backend health and agent readiness",
	}, healthHandler)

	return server.Run(context.Background(), &mcpsdk.StdioTransport{})
}

// backendClient builds a client from the resolved configuration.
func backendClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.BackendURL), nil
}
