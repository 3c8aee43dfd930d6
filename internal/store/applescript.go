package store

import (
	"context"
	"fmt"
)

// AppleScript is the scripting backend. It exists for exactly one gap in the
// primary backend: the flag field has no EventKit counterpart but is exposed
// in the Reminders scripting dictionary. Results are plain text with no
// structured error model; failures carry the interpreter's diagnostic
// verbatim.
type AppleScript struct {
	run *Runner
}

func NewAppleScript(run *Runner) *AppleScript {
	return &AppleScript{run: run}
}

func (a *AppleScript) SetFlagged(ctx context.Context, listName, title string, flagged bool) error {
	_, err := a.run.RunAppleScript(ctx, flagScript(listName, title, flagged))
	return err
}

func flagScript(listName, title string, flagged bool) string {
	return fmt.Sprintf(
		`tell application "Reminders"
	tell list "%s"
		set flagged of (first reminder whose name is "%s") to %t
	end tell
end tell`,
		escapeAppleScript(listName), escapeAppleScript(title), flagged)
}
