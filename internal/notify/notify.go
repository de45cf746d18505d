// Package notify sends a desktop notification when a watched task reaches a
// terminal state.
package notify

import (
	"fmt"

	"hivemind/internal/api"
)

// Notification represents a notification to be sent.
type Notification struct {
	Title   string
	Message string
	Sound   bool
}

// Notifier sends notifications.
type Notifier interface {
	Send(n Notification) error
	Name() string
}

// NewDesktopNotifier returns a platform-specific desktop notification sender.
func NewDesktopNotifier() Notifier {
	return newPlatformNotifier()
}

// TaskFinished builds the notification for a task that reached a terminal
// state.
func TaskFinished(t *api.Task) Notification {
	title := "Hive Mind: task completed"
	sound := false
	if t.Status.Failed() {
		title = fmt.Sprintf("Hive Mind: task %s", t.Status)
		sound = true
	}
	msg := t.Message
	if len(msg) > 120 {
		msg = msg[:117] + "..."
	}
	return Notification{
		Title:   title,
		Message: fmt.Sprintf("[%s] %s", t.AgentType, msg),
		Sound:   sound,
	}
}
