package agent

import (
	"errors"
	"testing"

	"hivemind/internal/api"
)

func TestRegistry_Types(t *testing.T) {
	types := Types()
	want := []Type{Echo, Elon, Henry}
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for i, tt := range want {
		if types[i] != tt {
			t.Errorf("types[%d] = %q, want %q", i, types[i], tt)
		}
	}
}

func TestRegistry_GetConfig(t *testing.T) {
	cfg, err := GetConfig(Echo)
	if err != nil {
		t.Fatalf("GetConfig(echo): %v", err)
	}
	if cfg.Name != "Echo" {
		t.Errorf("name = %q, want Echo", cfg.Name)
	}
	if len(cfg.Capabilities) == 0 {
		t.Error("echo has no capabilities")
	}
}

func TestRegistry_UnknownAgent(t *testing.T) {
	_, err := GetConfig("overlord")
	if !errors.Is(err, ErrUnknownAgent) {
		t.Errorf("err = %v, want ErrUnknownAgent", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"idle", StatusIdle},
		{"running", StatusRunning},
		{"thinking", StatusThinking},
		{"blocked", StatusBlocked},
		{"warming-up", StatusIdle},
		{"", StatusIdle},
	}
	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		busy []Type // agents marked running before selection
		want Type
	}{
		{"all idle picks first", nil, Echo},
		{"first busy picks second", []Type{Echo}, Elon},
		{"middle busy picks first", []Type{Elon}, Echo},
		{"all busy falls back to default", []Type{Echo, Elon, Henry}, DefaultType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet()
			for _, b := range tt.busy {
				s.Assign(b, "work")
			}
			if got := Select(s); got != tt.want {
				t.Errorf("Select = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	s := NewSet()
	s.Assign(Elon, "build")
	first := Select(s)
	second := Select(s)
	if first != second {
		t.Errorf("selection not deterministic: %q then %q", first, second)
	}
}

func TestSet_ApplyTask(t *testing.T) {
	s := NewSet()

	s.ApplyTask(&api.Task{ID: "t1", AgentType: "elon", Status: api.TaskRunning,
		Progress: 40, Message: "ship it"})

	a := s.Get(Elon)
	if a.Status != StatusRunning {
		t.Errorf("status = %q, want running", a.Status)
	}
	if a.Progress != 40 {
		t.Errorf("progress = %.0f, want 40", a.Progress)
	}
	if a.CurrentTask != "ship it" {
		t.Errorf("currentTask = %q", a.CurrentTask)
	}

	// Terminal snapshot returns the agent to idle.
	s.ApplyTask(&api.Task{ID: "t1", AgentType: "elon", Status: api.TaskCompleted, Progress: 100})
	if a.Status != StatusIdle {
		t.Errorf("status after completion = %q, want idle", a.Status)
	}
	if a.CurrentTask != "" {
		t.Errorf("currentTask after completion = %q, want empty", a.CurrentTask)
	}
}

func TestSet_ApplyTaskUnknownAgentIgnored(t *testing.T) {
	s := NewSet()
	// Snapshot for a type outside the catalog must not panic or mutate.
	s.ApplyTask(&api.Task{ID: "t1", AgentType: "overlord", Status: api.TaskRunning})
	for _, a := range s.All() {
		if a.Status != StatusIdle {
			t.Errorf("agent %s status = %q, want idle", a.Type, a.Status)
		}
	}
}

func TestSet_ConfigImmutable(t *testing.T) {
	s := NewSet()
	before := s.Get(Echo).Config.Name
	s.Assign(Echo, "task")
	s.ApplyTask(&api.Task{ID: "t1", AgentType: "echo", Status: api.TaskRunning, Progress: 5})
	if s.Get(Echo).Config.Name != before {
		t.Error("config mutated by state updates")
	}
}
