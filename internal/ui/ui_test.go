package ui

import (
	"strings"
	"testing"
)

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"completed", "✓"},
		{"success", "✓"},
		{"failed", "✗"},
		{"error", "✗"},
		{"running", "▶"},
		{"warning", "!"},
		{"pending", "·"},
		{"", "·"},
	}
	for _, tt := range tests {
		if got := StatusIcon(tt.status); got != tt.want {
			t.Errorf("StatusIcon(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		width    int
		filled   int
	}{
		{"empty", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"clamped high", 250, 10, 10},
		{"clamped low", -5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.progress, tt.width)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled = %d, want %d (bar %q)", got, tt.filled, bar)
			}
			if got := strings.Count(bar, "░"); got != tt.width-tt.filled {
				t.Errorf("empty = %d, want %d", got, tt.width-tt.filled)
			}
		})
	}
}
