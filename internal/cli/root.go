package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRootCommand creates the root command. serve is the default so MCP
// clients can point at the bare binary.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remindersd",
		Short:   "MCP server for the macOS Reminders store",
		Version: Version,
		RunE: runServe,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewListsCommand())

	return cmd
}
