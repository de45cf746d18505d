package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is used when no backend URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	requestTimeout  = 10 * time.Second
	maxResponseSize = 1 << 20 // 1MB limit for response bodies
)

// Client talks to the Hive Mind backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client. An empty baseURL falls back to
// DefaultBaseURL. A trailing slash is stripped.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Health fetches GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Agents fetches the backend's full agent catalog.
func (c *Client) Agents(ctx context.Context) ([]AgentInfo, error) {
	var resp agentsResponse
	if err := c.get(ctx, "/api/agents", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &BackendError{Op: "list agents", Message: resp.Error}
	}
	return resp.Agents, nil
}

// AgentStatus fetches the live status of one agent.
func (c *Client) AgentStatus(ctx context.Context, agentType string) (*AgentStatus, error) {
	var resp agentStatusResponse
	if err := c.get(ctx, "/api/agents/"+url.PathEscape(agentType)+"/status", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &BackendError{Op: "agent status", Message: resp.Error}
	}
	return &AgentStatus{
		Type:         resp.Agent.Type,
		Name:         resp.Agent.Name,
		Role:         resp.Agent.Role,
		Capabilities: resp.Agent.Capabilities,
		Workflow:     resp.Agent.Workflow,
		Status:       resp.Status,
		Message:      resp.Message,
	}, nil
}

// StartWorkflow submits a user message to an agent and returns the task id.
func (c *Client) StartWorkflow(ctx context.Context, agentType, message string) (string, error) {
	body := startWorkflowRequest{Message: message, AgentType: agentType}
	var resp startWorkflowResponse
	if err := c.post(ctx, "/api/workflow/"+url.PathEscape(agentType), body, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &BackendError{Op: "start workflow", Message: resp.Error}
	}
	return resp.TaskID, nil
}

// Tasks fetches the full task list.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var resp tasksResponse
	if err := c.get(ctx, "/api/tasks", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &BackendError{Op: "list tasks", Message: resp.Error}
	}
	return resp.Tasks, nil
}

// Task fetches a single task snapshot by id. Returns ErrTaskNotFound if the
// backend does not know the id.
func (c *Client) Task(ctx context.Context, id string) (*Task, error) {
	var resp taskResponse
	if err := c.get(ctx, "/api/tasks/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		if strings.Contains(strings.ToLower(resp.Error), "not found") {
			return nil, fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
		}
		return nil, &BackendError{Op: "get task", Message: resp.Error}
	}
	if resp.Task == nil {
		return nil, &BackendError{Op: "get task", Message: "empty task in response"}
	}
	return resp.Task, nil
}

// DeleteTask removes a finished task from the backend's history.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	var resp deleteTaskResponse
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		if strings.Contains(strings.ToLower(resp.Error), "not found") {
			return fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
		}
		return &BackendError{Op: "delete task", Message: resp.Error}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// do issues one request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: backend returned %d: %.200s", method, path, resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
