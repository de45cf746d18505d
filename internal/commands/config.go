package commands

import (
	"fmt"
	"strconv"
	"strings"

	"hivemind/internal/config"
	"hivemind/internal/output"
	"hivemind/internal/ui"
)

// RunConfigGet prints the resolved configuration, or a single key.
func RunConfigGet(args []string) {
	cfg, err := config.Load()
	if err != nil {
		output.PrintError(err)
		return
	}

	if len(args) == 0 {
		output.Print(cfg, func() {
			fmt.Println("Current configuration:")
			fmt.Printf("  backend-url: %s\n", cfg.BackendURL)
			fmt.Printf("  poll-interval: %ds\n", cfg.PollInterval)
			fmt.Printf("  notify: %v\n", cfg.Notify)
		})
		return
	}

	switch args[0] {
	case "backend-url", "backendUrl":
		fmt.Println(cfg.BackendURL)
	case "poll-interval", "pollInterval":
		fmt.Println(cfg.PollInterval)
	case "notify":
		fmt.Println(cfg.Notify)
	default:
		ui.ShowError(fmt.Sprintf("Unknown configuration key: %s", args[0]), nil)
		fmt.Println("Available keys: backend-url, poll-interval, notify")
	}
}

// RunConfigSet sets a configuration value and writes the config file.
func RunConfigSet(key, value string) {
	cfg, err := config.Load()
	if err != nil {
		output.PrintError(err)
		return
	}

	switch key {
	case "backend-url", "backendUrl":
		cfg.BackendURL = value
	case "poll-interval", "pollInterval":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			ui.ShowError("Invalid value for poll-interval. Must be a positive number of seconds", nil)
			return
		}
		cfg.PollInterval = n
	case "notify":
		switch strings.ToLower(value) {
		case "true", "t", "yes", "y", "1":
			cfg.Notify = true
		case "false", "f", "no", "n", "0":
			cfg.Notify = false
		default:
			ui.ShowError("Invalid value for notify. Must be 'true' or 'false'", nil)
			return
		}
	default:
		ui.ShowError(fmt.Sprintf("Unknown configuration key: %s", key), nil)
		fmt.Println("Available keys: backend-url, poll-interval, notify")
		return
	}

	if err := config.Save(cfg); err != nil {
		ui.ShowError("Failed to save config", err)
		return
	}
	ui.ShowSuccess("%s set to: %s", key, value)
}
