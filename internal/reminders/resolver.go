package reminders

import (
	"context"
	"fmt"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// FindList scans all lists for an exact, case-sensitive name match. No fuzzy
// or case-insensitive matching; the first exact match wins.
func (s *Service) FindList(ctx context.Context, name string) (model.List, error) {
	lists, err := s.store.Lists(ctx)
	if err != nil {
		return model.List{}, err
	}
	for _, l := range lists {
		if l.Name == name {
			return l, nil
		}
	}
	return model.List{}, fmt.Errorf("%w: %q", model.ErrListNotFound, name)
}

// FindReminder resolves the list, then fetches with completed items included
// so completed reminders stay addressable, and returns the first reminder
// whose title matches exactly.
//
// Known limitation: the store does not guarantee title uniqueness. When
// several reminders share a title, the first one in store iteration order is
// silently selected; that order carries no "most recent" meaning.
func (s *Service) FindReminder(ctx context.Context, listName, title string) (model.Reminder, error) {
	list, err := s.FindList(ctx, listName)
	if err != nil {
		return model.Reminder{}, err
	}
	items, err := s.store.Reminders(ctx, list, true)
	if err != nil {
		return model.Reminder{}, err
	}
	for _, r := range items {
		if r.Title == title {
			return r, nil
		}
	}
	return model.Reminder{}, fmt.Errorf("%w: %q in list %q", model.ErrReminderNotFound, title, listName)
}
