package main

import (
	"fmt"
	"os"

	"github.com/r4sd/apple-reminders-mcp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "remindersd failed: %v\n", err)
		os.Exit(1)
	}
}
