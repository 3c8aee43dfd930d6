// Package store is the boundary to the external OS reminder database. Two
// backends exist: the primary EventKit bridge covers the full entity model,
// and the AppleScript scripting backend covers only the flag field, which
// the primary backend's entity model lacks. Backend choice is a static
// per-operation routing decision made by the caller, never a runtime probe.
package store

import (
	"context"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// Gateway is the structured access path to the store. Every read re-fetches
// and every write commits synchronously; nothing is cached on this side.
type Gateway interface {
	// RequestAccess must succeed once per process before any other call.
	// It fails closed: backends reject every operation until access is
	// explicitly granted.
	RequestAccess(ctx context.Context) error

	// Lists returns all reminder lists in store order.
	Lists(ctx context.Context) ([]model.List, error)

	// Reminders returns a snapshot of the list's reminders with the full
	// field projection. includeCompleted=true returns the unfiltered
	// snapshot; otherwise completed items are excluded.
	Reminders(ctx context.Context, list model.List, includeCompleted bool) ([]model.Reminder, error)

	// ReminderTitles is the simplified projection used when the detailed
	// one fails: titles only, same filtering semantics as Reminders.
	ReminderTitles(ctx context.Context, list model.List, includeCompleted bool) ([]string, error)

	// Save writes the reminder. An empty ID creates a new item in the
	// reminder's list; otherwise the stored item is replaced field by
	// field, alarms and recurrence rules wholesale. The returned copy
	// carries the store-assigned ID.
	Save(ctx context.Context, r model.Reminder) (model.Reminder, error)

	// Remove deletes the reminder from the store.
	Remove(ctx context.Context, r model.Reminder) error
}

// FlagSetter is the scripting backend's single capability. It addresses the
// reminder by name within a list because the scripting dictionary has no
// stable item identifiers.
type FlagSetter interface {
	SetFlagged(ctx context.Context, listName, title string, flagged bool) error
}
