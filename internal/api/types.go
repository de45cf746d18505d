package api

// TaskStatus represents the backend-reported state of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
	// The backend's safety layer can end a task before it runs.
	TaskRejected    TaskStatus = "rejected"
	TaskRateLimited TaskStatus = "rate_limited"
)

// Terminal reports whether the task will receive no further updates.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskRejected, TaskRateLimited:
		return true
	}
	return false
}

// Failed reports whether the task ended without completing.
func (s TaskStatus) Failed() bool {
	return s.Terminal() && s != TaskCompleted
}

// LogEntry is a single log line attached to a task by the backend.
type LogEntry struct {
	Time     string  `json:"time"`
	Message  string  `json:"message"`
	Status   string  `json:"status"` // "info", "success", "warning", "error"
	Duration float64 `json:"duration,omitempty"`
}

// Task is a unit of work submitted to an agent, as reported by the backend.
// The backend sends progress as a float; the client never writes it back.
type Task struct {
	ID        string                 `json:"id"`
	AgentType string                 `json:"agent_type"`
	Message   string                 `json:"message"`
	Status    TaskStatus             `json:"status"`
	Progress  float64                `json:"progress"`
	StartTime string                 `json:"start_time,omitempty"`
	EndTime   string                 `json:"end_time,omitempty"`
	Logs      []LogEntry             `json:"logs,omitempty"`
	Outputs   map[string]interface{} `json:"outputs,omitempty"`
}

// AgentConfig is the display metadata the backend holds for an agent type.
type AgentConfig struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Personality  string   `json:"personality,omitempty"`
	Capabilities []string `json:"capabilities"`
}

// AgentInfo describes one agent from GET /api/agents.
type AgentInfo struct {
	Type     string      `json:"type"`
	Config   AgentConfig `json:"config"`
	Workflow bool        `json:"workflow"`
}

// AgentStatus is the response payload of GET /api/agents/{type}/status.
type AgentStatus struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
	Workflow     bool     `json:"workflow"`
	Status       string   `json:"status"`
	Message      string   `json:"message"`
}

// HealthAgent is the per-agent readiness block in the health response.
type HealthAgent struct {
	Status   string `json:"status"`
	Workflow bool   `json:"workflow"`
}

// Health is the response payload of GET /health.
type Health struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp string                 `json:"timestamp"`
	Agents    map[string]HealthAgent `json:"agents"`
}

// --- wire envelopes ---

type startWorkflowRequest struct {
	Message   string `json:"message"`
	AgentType string `json:"agent_type"`
}

type startWorkflowResponse struct {
	Success   bool   `json:"success"`
	TaskID    string `json:"task_id"`
	AgentType string `json:"agent_type"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

type taskResponse struct {
	Success bool   `json:"success"`
	Task    *Task  `json:"task"`
	Error   string `json:"error,omitempty"`
}

type tasksResponse struct {
	Success bool   `json:"success"`
	Tasks   []Task `json:"tasks"`
	Error   string `json:"error,omitempty"`
}

type agentsResponse struct {
	Success bool        `json:"success"`
	Agents  []AgentInfo `json:"agents"`
	Error   string      `json:"error,omitempty"`
}

type agentStatusResponse struct {
	Success bool `json:"success"`
	Agent   struct {
		Type         string   `json:"type"`
		Name         string   `json:"name"`
		Role         string   `json:"role"`
		Capabilities []string `json:"capabilities"`
		Workflow     bool     `json:"workflow"`
	} `json:"agent"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type deleteTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
