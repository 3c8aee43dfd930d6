package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/r4sd/apple-reminders-mcp/internal/config"
)

// NewListsCommand creates a diagnostic command that dumps list names. It
// exercises the same access path as serve, so it doubles as a permission
// check.
func NewListsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print the names of all reminder lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := buildService(cmd, cfg)
			if err != nil {
				return err
			}
			names, err := svc.ListLists(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
