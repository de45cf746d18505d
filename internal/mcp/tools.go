package mcpserver

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"hivemind/internal/agent"
	"hivemind/internal/api"
	"hivemind/internal/workflow"
)

// hive_agents

type agentsInput struct{}

type agentEntry struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

type agentsOutput struct {
	Agents []agentEntry `json:"agents"`
}

func agentsHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input agentsInput) (*mcpsdk.CallToolResult, agentsOutput, error) {
	var out agentsOutput
	for _, t := range agent.Types() {
		cfg, err := agent.GetConfig(t)
		if err != nil {
			return nil, agentsOutput{}, err
		}
		out.Agents = append(out.Agents, agentEntry{
			Type:         string(t),
			Name:         cfg.Name,
			Role:         cfg.Role,
			Capabilities: cfg.Capabilities,
		})
	}
	return nil, out, nil
}

// hive_send

type sendInput struct {
	Message string `json:"message" jsonschema:"The user message to submit"`
	Agent   string `json:"agent,omitempty" jsonschema:"Agent type (echo, elon, henry); defaults to echo"`
}

type sendOutput struct {
	TaskID string `json:"taskId"`
	Agent  string `json:"agent"`
}

func sendHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input sendInput) (*mcpsdk.CallToolResult, sendOutput, error) {
	if input.Message == "" {
		return nil, sendOutput{}, fmt.Errorf("message is required")
	}
	agentType := agent.Type(input.Agent)
	if input.Agent == "" {
		agentType = agent.DefaultType
	}
	if !agent.Valid(agentType) {
		return nil, sendOutput{}, fmt.Errorf("%q: %w", input.Agent, agent.ErrUnknownAgent)
	}

	client, err := backendClient()
	if err != nil {
		return nil, sendOutput{}, err
	}
	taskID, err := client.StartWorkflow(ctx, string(agentType), input.Message)
	if err != nil {
		return nil, sendOutput{}, fmt.Errorf("start workflow: %w", err)
	}
	return nil, sendOutput{TaskID: taskID, Agent: string(agentType)}, nil
}

// hive_tasks

type tasksInput struct{}

type taskEntry struct {
	ID        string  `json:"id"`
	AgentType string  `json:"agentType"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
}

type tasksOutput struct {
	Tasks []taskEntry `json:"tasks"`
}

func tasksHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input tasksInput) (*mcpsdk.CallToolResult, tasksOutput, error) {
	client, err := backendClient()
	if err != nil {
		return nil, tasksOutput{}, err
	}
	tasks, err := client.Tasks(ctx)
	if err != nil {
		return nil, tasksOutput{}, fmt.Errorf("list tasks: %w", err)
	}

	out := tasksOutput{Tasks: make([]taskEntry, 0, len(tasks))}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, taskEntry{
			ID:        t.ID,
			AgentType: t.AgentType,
			Message:   t.Message,
			Status:    string(t.Status),
			Progress:  t.Progress,
		})
	}
	return nil, out, nil
}

// hive_task_status

type taskStatusInput struct {
	TaskID string `json:"taskId" jsonschema:"The task id to inspect"`
}

type stepEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type taskStatusOutput struct {
	Task  *api.Task   `json:"task"`
	Steps []stepEntry `json:"steps"`
}

func taskStatusHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input taskStatusInput) (*mcpsdk.CallToolResult, taskStatusOutput, error) {
	if input.TaskID == "" {
		return nil, taskStatusOutput{}, fmt.Errorf("taskId is required")
	}
	client, err := backendClient()
	if err != nil {
		return nil, taskStatusOutput{}, err
	}
	t, err := client.Task(ctx, input.TaskID)
	if err != nil {
		return nil, taskStatusOutput{}, fmt.Errorf("get task: %w", err)
	}

	statuses := workflow.Derive(t)
	steps := make([]stepEntry, 0, workflow.NumSteps)
	for i, s := range workflow.Steps {
		steps = append(steps, stepEntry{ID: s.ID, Title: s.Title, Status: string(statuses[i])})
	}
	return nil, taskStatusOutput{Task: t, Steps: steps}, nil
}

// hive_health

type healthInput struct{}

type healthOutput struct {
	Status  string                     `json:"status"`
	Version string                     `json:"version"`
	Agents  map[string]api.HealthAgent `json:"agents"`
}

func healthHandler(ctx context.Context, req *mcpsdk.CallToolRequest, input healthInput) (*mcpsdk.CallToolResult, healthOutput, error) {
	client, err := backendClient()
	if err != nil {
		return nil, healthOutput{}, err
	}
	h, err := client.Health(ctx)
	if err != nil {
		return nil, healthOutput{}, fmt.Errorf("health check: %w", err)
	}
	return nil, healthOutput{Status: h.Status, Version: h.Version, Agents: h.Agents}, nil
}
