//go:build linux

package notify

import (
	"log"
	"os/exec"
)

type linuxNotifier struct{}

func newPlatformNotifier() Notifier {
	return &linuxNotifier{}
}

func (l *linuxNotifier) Send(n Notification) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		log.Printf("notify: notify-send not found, skipping desktop notification")
		return nil
	}

	args := []string{"--app-name=hivemind", n.Title, n.Message}
	if n.Sound {
		// Failed tasks get critical urgency so they stay on screen.
		args = append(args, "--urgency=critical",
			"--hint=string:sound-name:dialog-warning")
	}
	return exec.Command(path, args...).Run()
}

func (l *linuxNotifier) Name() string { return "linux" }
