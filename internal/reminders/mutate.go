package reminders

import (
	"context"
	"fmt"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// CreateReminder adds a new reminder to the named list. Body and dueDate are
// optional; dueDate must parse when given.
func (s *Service) CreateReminder(ctx context.Context, listName, title, body, dueDate string) (Envelope, error) {
	r := model.Reminder{ListName: listName, Title: title, Body: body}
	if dueDate != "" {
		due, err := model.ParseDateTime(dueDate)
		if err != nil {
			return Envelope{}, err
		}
		r.DueDate = &due
	}
	list, err := s.FindList(ctx, listName)
	if err != nil {
		return Envelope{}, err
	}
	r.ListName = list.Name
	if _, err := s.store.Save(ctx, r); err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("created reminder %q in list %q", title, listName)), nil
}

// CompleteReminder marks the reminder done. Re-completing is a no-op in
// store terms.
func (s *Service) CompleteReminder(ctx context.Context, listName, title string) (Envelope, error) {
	_, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.Completed = true
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("completed reminder %q", title)), nil
}

// DeleteReminder removes the reminder from the store.
func (s *Service) DeleteReminder(ctx context.Context, listName, title string) (Envelope, error) {
	target, err := s.FindReminder(ctx, listName, title)
	if err != nil {
		return Envelope{}, err
	}
	if err := s.store.Remove(ctx, target); err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("deleted reminder %q", title)), nil
}

// UpdateParams carries the optional update fields. Nil means not supplied.
type UpdateParams struct {
	Name       *string
	Body       *string
	AppendBody *string
	DueDate    *string
}

func (p UpdateParams) empty() bool {
	return p.Name == nil && p.Body == nil && p.AppendBody == nil && p.DueDate == nil
}

// UpdateReminder applies each supplied field. With no fields supplied it
// returns a success:false envelope rather than an error, and the store is
// left untouched. AppendBody concatenates on every call and is the one
// non-idempotent mutation here.
func (s *Service) UpdateReminder(ctx context.Context, listName, title string, p UpdateParams) (Envelope, error) {
	if p.empty() {
		return Envelope{Success: false, Message: "nothing to update: no fields specified"}, nil
	}
	_, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		if p.Name != nil {
			r.Title = *p.Name
		}
		if p.Body != nil {
			r.Body = *p.Body
		}
		if p.AppendBody != nil {
			if r.Body == "" {
				r.Body = *p.AppendBody
			} else {
				r.Body += "\n" + *p.AppendBody
			}
		}
		if p.DueDate != nil {
			due, err := model.ParseDateTime(*p.DueDate)
			if err != nil {
				return model.Reminder{}, err
			}
			r.DueDate = &due
		}
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("updated reminder %q", title)), nil
}

// SetPriority sets the 0-9 priority value.
func (s *Service) SetPriority(ctx context.Context, listName, title string, priority int) (Envelope, error) {
	if !model.ValidPriority(priority) {
		return Envelope{}, fmt.Errorf("reminders: priority must be in [0,9], got %d", priority)
	}
	_, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.Priority = priority
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("priority of %q set to %d (%s)", title, priority, model.PriorityLabel(priority))), nil
}

// SetDueAlarm sets the due date and replaces any existing time alarms with a
// single alarm at that date. Location alarms are untouched.
func (s *Service) SetDueAlarm(ctx context.Context, listName, title, dueDate string) (Envelope, error) {
	due, err := model.ParseDateTime(dueDate)
	if err != nil {
		return Envelope{}, err
	}
	_, err = s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.DueDate = &due
		r.Alarms = append(withoutKind(r.Alarms, model.AlarmKindTime), model.TimeAlarm(due))
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("due-date alarm for %q set to %s", title, model.FormatDateTime(due))), nil
}

// SetRecurrence replaces any existing recurrence rules with a single new
// rule. endDate and endCount are mutually exclusive end conditions; zero
// values mean the rule never ends.
func (s *Service) SetRecurrence(ctx context.Context, listName, title, frequency string, interval int, endDate string, endCount int) (Envelope, error) {
	freq, err := model.ParseFrequency(frequency)
	if err != nil {
		return Envelope{}, err
	}
	rule := model.RecurrenceRule{Frequency: freq, Interval: interval, EndCount: endCount}
	if endDate != "" {
		end, err := model.ParseDateTime(endDate)
		if err != nil {
			return Envelope{}, err
		}
		rule.EndDate = &end
	}
	if err := rule.Validate(); err != nil {
		return Envelope{}, err
	}
	saved, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.RecurrenceRules = []model.RecurrenceRule{rule}
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	msg := fmt.Sprintf("recurrence of %q set to %s (interval %d)", title, freq, interval)
	if next := previewOccurrences(rule, previewStart(saved), 3); len(next) > 0 {
		msg += "; next: " + joinDates(next)
	}
	return ok(msg), nil
}

// ClearRecurrence removes all recurrence rules; clearing an already bare
// reminder succeeds.
func (s *Service) ClearRecurrence(ctx context.Context, listName, title string) (Envelope, error) {
	_, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.RecurrenceRules = nil
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("cleared recurrence of %q", title)), nil
}

// SetLocationAlarm replaces any existing location alarms with a single new
// geofence alarm. Time alarms are untouched.
func (s *Service) SetLocationAlarm(ctx context.Context, listName, title, locTitle string, latitude, longitude, radius float64, proximity string) (Envelope, error) {
	prox, err := model.ParseProximity(proximity)
	if err != nil {
		return Envelope{}, err
	}
	alarm := model.LocationAlarm(locTitle, latitude, longitude, radius, prox)
	if err := alarm.Validate(); err != nil {
		return Envelope{}, err
	}
	_, err = s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.Alarms = append(withoutKind(r.Alarms, model.AlarmKindLocation), alarm)
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("location alarm for %q set (%s, radius %.0fm)", title, prox, radius)), nil
}

// ClearLocationAlarm removes location alarms only; time alarms on the same
// reminder stay in place.
func (s *Service) ClearLocationAlarm(ctx context.Context, listName, title string) (Envelope, error) {
	_, err := s.mutate(ctx, listName, title, func(r model.Reminder) (model.Reminder, error) {
		r.Alarms = withoutKind(r.Alarms, model.AlarmKindLocation)
		return r, nil
	})
	if err != nil {
		return Envelope{}, err
	}
	return ok(fmt.Sprintf("cleared location alarms of %q", title)), nil
}

// FlagReminder routes through the scripting backend, the one operation the
// primary backend cannot express. The scripting query resolves the reminder
// by name itself; its failures surface verbatim.
func (s *Service) FlagReminder(ctx context.Context, listName, title string, flagged bool) (Envelope, error) {
	if err := s.flags.SetFlagged(ctx, listName, title, flagged); err != nil {
		return Envelope{}, err
	}
	verb := "flagged"
	if !flagged {
		verb = "unflagged"
	}
	return ok(fmt.Sprintf("%s reminder %q", verb, title)), nil
}

// withoutKind removes alarms of the given kind, keeping the others in order.
func withoutKind(alarms []model.Alarm, kind model.AlarmKind) []model.Alarm {
	out := alarms[:0:0]
	for _, a := range alarms {
		if a.Kind != kind {
			out = append(out, a)
		}
	}
	return out
}
