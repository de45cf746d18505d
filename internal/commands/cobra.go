package commands

import (
	"github.com/spf13/cobra"
)

// AgentsCmd lists the agent catalog.
var AgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agents",
	Long:  "List the fixed agent catalog, optionally with live backend status",
	Run: func(cmd *cobra.Command, args []string) {
		remote, _ := cmd.Flags().GetBool("remote")
		RunAgents(remote)
	},
}

// SendCmd submits a user message to an agent.
var SendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Submit a message to an agent",
	Long:  "Route a message to the first idle agent (or a specific one) and start a workflow task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		agentFlag, _ := cmd.Flags().GetString("agent")
		watch, _ := cmd.Flags().GetBool("watch")
		RunSend(args[0], agentFlag, watch)
	},
}

// TaskCmd is the parent for task inspection commands.
var TaskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Inspect tasks",
	Long:    "List, view, and delete tasks tracked by the backend",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Run: func(cmd *cobra.Command, args []string) {
		RunTaskList()
	},
}

var taskViewCmd = &cobra.Command{
	Use:   "view <task-id>",
	Short: "Show a task with its derived pipeline state and logs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunTaskView(args[0])
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a finished task from backend history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunTaskDelete(args[0])
	},
}

// WatchCmd follows a running task until it reaches a terminal state.
var WatchCmd = &cobra.Command{
	Use:   "watch <task-id>",
	Short: "Follow a task until it finishes",
	Long:  "Poll a task's status and stream its pipeline state and logs to the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunWatch(args[0])
	},
}

// ConfigCmd gets and sets client configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set client configuration",
	Long:  "Read or change the backend URL, poll interval, and notification toggle",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show configuration values",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		RunConfigGet(args)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		RunConfigSet(args[0], args[1])
	},
}

// HealthCmd checks backend health.
var HealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend health",
	Run: func(cmd *cobra.Command, args []string) {
		RunHealth()
	},
}

// VersionCmd prints version information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		RunVersion()
	},
}

// McpCmd runs the MCP stdio server.
var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server over stdio",
	Long:  "Expose the Hive Mind backend as MCP tools for use from an MCP host",
	Run: func(cmd *cobra.Command, args []string) {
		RunMcp()
	},
}

func init() {
	AgentsCmd.Flags().BoolP("remote", "r", false, "Fetch live status from the backend")

	SendCmd.Flags().StringP("agent", "a", "", "Send to a specific agent type instead of auto-selecting")
	SendCmd.Flags().BoolP("watch", "w", false, "Follow the task until it finishes")

	TaskCmd.AddCommand(taskListCmd)
	TaskCmd.AddCommand(taskViewCmd)
	TaskCmd.AddCommand(taskDeleteCmd)

	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configSetCmd)
}
