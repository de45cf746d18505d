package notify

import (
	"strings"
	"testing"

	"hivemind/internal/api"
)

func TestTaskFinished_Completed(t *testing.T) {
	n := TaskFinished(&api.Task{
		ID: "t1", AgentType: "echo", Message: "write the report",
		Status: api.TaskCompleted, Progress: 100,
	})
	if n.Title != "Hive Mind: task completed" {
		t.Errorf("title = %q", n.Title)
	}
	if n.Sound {
		t.Error("completed task should not play a sound")
	}
	if !strings.Contains(n.Message, "echo") || !strings.Contains(n.Message, "write the report") {
		t.Errorf("message = %q", n.Message)
	}
}

func TestTaskFinished_Failed(t *testing.T) {
	tests := []struct {
		status api.TaskStatus
	}{
		{api.TaskFailed},
		{api.TaskRejected},
		{api.TaskRateLimited},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			n := TaskFinished(&api.Task{ID: "t1", AgentType: "elon", Message: "x", Status: tt.status})
			if !strings.Contains(n.Title, string(tt.status)) {
				t.Errorf("title = %q, want status %q in it", n.Title, tt.status)
			}
			if !n.Sound {
				t.Error("failed task should play a sound")
			}
		})
	}
}

func TestTaskFinished_TruncatesLongMessage(t *testing.T) {
	long := strings.Repeat("a", 300)
	n := TaskFinished(&api.Task{ID: "t1", AgentType: "henry", Message: long, Status: api.TaskCompleted})
	if len(n.Message) > 140 {
		t.Errorf("message not truncated: %d chars", len(n.Message))
	}
	if !strings.HasSuffix(n.Message, "...") {
		t.Errorf("truncated message missing ellipsis: %q", n.Message)
	}
}
