package agent

import (
	"errors"
	"fmt"
)

// Type identifies one of the fixed agent roles.
type Type string

const (
	Echo  Type = "echo"
	Elon  Type = "elon"
	Henry Type = "henry"
)

// DefaultType receives messages when no agent is idle.
const DefaultType = Echo

// ErrUnknownAgent is returned for a type outside the fixed catalog.
// A lookup miss is a programming error, not a runtime condition.
var ErrUnknownAgent = errors.New("unknown agent type")

// Config is the immutable display metadata for an agent type.
type Config struct {
	Name         string
	Role         string
	Icon         string
	Capabilities []string
}

// registry is the compiled-in agent catalog, in declaration order.
// Declaration order matters: the assignment selector walks it front to back.
var registry = []struct {
	Type   Type
	Config Config
}{
	{Echo, Config{
		Name:         "Echo",
		Role:         "Chief Assistant",
		Icon:         "🎯",
		Capabilities: []string{"intent parsing", "context management", "task dispatch"},
	}},
	{Elon, Config{
		Name:         "Elon",
		Role:         "CTO",
		Icon:         "🔧",
		Capabilities: []string{"architecture", "coding", "testing", "review"},
	}},
	{Henry, Config{
		Name:         "Henry",
		Role:         "CMO",
		Icon:         "📢",
		Capabilities: []string{"community research", "content creation", "social engagement"},
	}},
}

// Types returns all agent types in declaration order.
func Types() []Type {
	out := make([]Type, len(registry))
	for i, e := range registry {
		out[i] = e.Type
	}
	return out
}

// GetConfig returns the display config for an agent type.
func GetConfig(t Type) (Config, error) {
	for _, e := range registry {
		if e.Type == t {
			return e.Config, nil
		}
	}
	return Config{}, fmt.Errorf("%q: %w", t, ErrUnknownAgent)
}

// Valid reports whether t is in the fixed catalog.
func Valid(t Type) bool {
	_, err := GetConfig(t)
	return err == nil
}
