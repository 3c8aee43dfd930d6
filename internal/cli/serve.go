package cli

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/r4sd/apple-reminders-mcp/internal/config"
	"github.com/r4sd/apple-reminders-mcp/internal/reminders"
	"github.com/r4sd/apple-reminders-mcp/internal/store"
	"github.com/r4sd/apple-reminders-mcp/internal/tools"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the MCP tools on stdio",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	svc, err := buildService(cmd, cfg)
	if err != nil {
		return err
	}

	s := server.NewMCPServer(
		"apple-reminders",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Manipulates the user's macOS Reminders: lists, reminders, due-date and location alarms, recurrence rules and flags. Dates use the format yyyy-MM-dd HH:mm in local time."),
	)
	tools.New(svc, cfg.DefaultList).Register(s)

	// stdout carries the protocol; diagnostics go to stderr.
	log.Printf("remindersd %s serving on stdio", Version)
	return server.ServeStdio(s)
}

// buildService wires the two backends and performs the one-time access
// request. Nothing runs without an explicit grant.
func buildService(cmd *cobra.Command, cfg *config.Config) (*reminders.Service, error) {
	run := store.NewRunner(cfg.OsascriptBin, cfg.CallTimeout)
	svc := reminders.New(store.NewEventKit(run), store.NewAppleScript(run))
	if err := svc.RequestAccess(cmd.Context()); err != nil {
		return nil, fmt.Errorf("requesting reminders access: %w", err)
	}
	return svc, nil
}
