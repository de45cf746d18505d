package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL), ts
}

func TestClient_StartWorkflow(t *testing.T) {
	var gotPath string
	var gotBody startWorkflowRequest

	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true, "task_id": "task_abc123", "status": "started",
		})
	})

	id, err := client.StartWorkflow(context.Background(), "echo", "build me a thing")
	if err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	if id != "task_abc123" {
		t.Errorf("task id = %q", id)
	}
	if gotPath != "/api/workflow/echo" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Message != "build me a thing" || gotBody.AgentType != "echo" {
		t.Errorf("request body = %+v", gotBody)
	}
}

func TestClient_StartWorkflow_BackendError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false, "error": "Unknown agent type: overlord",
		})
	})

	_, err := client.StartWorkflow(context.Background(), "overlord", "hi")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsBackendError(err) {
		t.Errorf("err %v is not a BackendError", err)
	}
}

func TestClient_Task(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tasks/task_1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"task": map[string]interface{}{
				"id": "task_1", "agent_type": "elon", "message": "ship",
				"status": "running", "progress": 42.0,
				"logs": []map[string]interface{}{
					{"time": "2026-08-24T10:00:00", "message": "started", "status": "info"},
				},
			},
		})
	})

	task, err := client.Task(context.Background(), "task_1")
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if task.Status != TaskRunning {
		t.Errorf("status = %q", task.Status)
	}
	if task.Progress != 42 {
		t.Errorf("progress = %v", task.Progress)
	}
	if len(task.Logs) != 1 || task.Logs[0].Message != "started" {
		t.Errorf("logs = %+v", task.Logs)
	}
}

func TestClient_Task_NotFound(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false, "error": "Task not found",
		})
	})

	_, err := client.Task(context.Background(), "nope")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestClient_Tasks(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"tasks": []map[string]interface{}{
				{"id": "a", "agent_type": "echo", "status": "completed", "progress": 100.0},
				{"id": "b", "agent_type": "henry", "status": "running", "progress": 61.5},
			},
		})
	})

	tasks, err := client.Tasks(context.Background())
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d", len(tasks))
	}
	if tasks[1].Progress != 61.5 {
		t.Errorf("progress = %v", tasks[1].Progress)
	}
}

func TestClient_Agents(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/agents" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"agents": []map[string]interface{}{
				{
					"type": "echo",
					"config": map[string]interface{}{
						"name": "Echo", "role": "Chief Assistant",
						"capabilities": []string{"intent parsing"},
					},
					"workflow": true,
				},
			},
		})
	})

	agents, err := client.Agents(context.Background())
	if err != nil {
		t.Fatalf("Agents: %v", err)
	}
	if len(agents) != 1 {
		t.Fatalf("len = %d", len(agents))
	}
	if agents[0].Type != "echo" || !agents[0].Workflow {
		t.Errorf("agent = %+v", agents[0])
	}
	if agents[0].Config.Role != "Chief Assistant" {
		t.Errorf("role = %q", agents[0].Config.Role)
	}
}

func TestClient_Health(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy", "version": "0.1.1",
			"agents": map[string]interface{}{
				"echo": map[string]interface{}{"status": "ready", "workflow": true},
			},
		})
	})

	h, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.Status != "healthy" {
		t.Errorf("status = %q", h.Status)
	}
	if a, ok := h.Agents["echo"]; !ok || !a.Workflow {
		t.Errorf("agents = %+v", h.Agents)
	}
}

func TestClient_DeleteTask(t *testing.T) {
	var gotMethod string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	if err := client.DeleteTask(context.Background(), "task_1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
}

func TestClient_TransportErrorIsNotBackendError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1") // nothing listens here
	_, err := client.Tasks(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if IsBackendError(err) {
		t.Errorf("transport failure classified as backend error: %v", err)
	}
}

func TestClient_Non200(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Tasks(context.Background())
	if err == nil {
		t.Fatal("expected error for 500")
	}
}

func TestTaskStatus_Terminal(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		terminal bool
		failed   bool
	}{
		{TaskPending, false, false},
		{TaskRunning, false, false},
		{TaskCompleted, true, false},
		{TaskFailed, true, true},
		{TaskRejected, true, true},
		{TaskRateLimited, true, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
		if got := tt.status.Failed(); got != tt.failed {
			t.Errorf("%s.Failed() = %v, want %v", tt.status, got, tt.failed)
		}
	}
}
