// Package reminders is the resolution, mutation, and serialization core
// between the tool-call surface and the store backends. It owns the
// single-active-instance invariants (one recurrence rule, one alarm kind per
// concern) and the canonical JSON projection of reminders.
package reminders

import (
	"context"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
	"github.com/r4sd/apple-reminders-mcp/internal/store"
)

// Service executes named operations against the store. It holds no state
// between calls: every operation re-fetches its target, transforms a copy,
// and writes it back synchronously.
type Service struct {
	store store.Gateway
	flags store.FlagSetter
}

func New(gw store.Gateway, flags store.FlagSetter) *Service {
	return &Service{store: gw, flags: flags}
}

// Envelope is the wrapper returned for mutation operations. Success false
// with a message is a non-error outcome (e.g. an update with nothing to do),
// distinct from the {error} failure envelope the tool layer builds from a
// returned error.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

// RequestAccess asks the store for permission. Must succeed once per process
// before anything else; the backends fail closed until it does.
func (s *Service) RequestAccess(ctx context.Context) error {
	return s.store.RequestAccess(ctx)
}

// ListLists returns all list names in store order.
func (s *Service) ListLists(ctx context.Context) ([]string, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lists))
	for _, l := range lists {
		names = append(names, l.Name)
	}
	return names, nil
}

// mutate resolves the target reminder, applies a pure transform to the
// fetched copy, and saves the result. No mutable store entity outlives the
// call.
func (s *Service) mutate(ctx context.Context, listName, title string, transform func(model.Reminder) (model.Reminder, error)) (model.Reminder, error) {
	target, err := s.FindReminder(ctx, listName, title)
	if err != nil {
		return model.Reminder{}, err
	}
	changed, err := transform(target)
	if err != nil {
		return model.Reminder{}, err
	}
	return s.store.Save(ctx, changed)
}
