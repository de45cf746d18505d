package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hivemind/internal/commands"
	"hivemind/internal/output"
	"hivemind/internal/tui"
)

var jsonFlag bool

var rootCmd = &cobra.Command{
	Use:   "hivemind",
	Short: "Terminal client for the Hive Mind multi-agent backend",
	Long:  "Watch and drive Hive Mind agents: submit messages, follow workflow progress, and inspect tasks",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")

	rootCmd.AddCommand(commands.AgentsCmd)
	rootCmd.AddCommand(commands.SendCmd)
	rootCmd.AddCommand(commands.TaskCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.HealthCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.McpCmd)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag

		if jsonFlag {
			commands.RunTaskList()
			return
		}

		// With a TTY, launch the dashboard; otherwise fall back to the list.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			if err := tui.Run(commands.Version); err != nil {
				os.Exit(1)
			}
			return
		}
		commands.RunTaskList()
	}
}

func main() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
