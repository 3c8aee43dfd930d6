package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Reminder is a single task item. The store owns identity: ID is the store's
// item identifier and is empty only for reminders that have not been saved
// yet. Title is the resolution key within a list; the store does not
// guarantee title uniqueness.
//
// Flagged is not part of the primary backend's entity model; through that
// backend it always reads false and can only be changed via the scripting
// backend.
type Reminder struct {
	ID              string
	ListName        string
	Title           string
	Body            string
	Completed       bool
	DueDate         *time.Time
	Priority        int
	Flagged         bool
	Alarms          []Alarm
	RecurrenceRules []RecurrenceRule
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: reminder title is required")
	}
	if strings.TrimSpace(r.ListName) == "" {
		return errors.New("model: reminder list name is required")
	}
	if !ValidPriority(r.Priority) {
		return fmt.Errorf("model: priority must be in [0,9], got %d", r.Priority)
	}
	for _, a := range r.Alarms {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	for _, rule := range r.RecurrenceRules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FirstRecurrence returns the reminder's active rule. The store technically
// allows several; the mutation layer keeps at most one, so callers take the
// first defensively.
func (r Reminder) FirstRecurrence() (RecurrenceRule, bool) {
	if len(r.RecurrenceRules) == 0 {
		return RecurrenceRule{}, false
	}
	return r.RecurrenceRules[0], true
}

// FirstLocationAlarm returns the first alarm carrying a location component.
func (r Reminder) FirstLocationAlarm() (Alarm, bool) {
	for _, a := range r.Alarms {
		if a.HasLocation() {
			return a, true
		}
	}
	return Alarm{}, false
}

// ValidPriority reports whether p is in the store's 0-9 range.
func ValidPriority(p int) bool {
	return p >= 0 && p <= 9
}

// PriorityLabel maps the 0-9 priority to its display bucket. This is a
// labelling convention, not a store invariant: 0 none, 1-3 high, 4-6 medium,
// 7-9 low.
func PriorityLabel(p int) string {
	switch {
	case p == 0:
		return "none"
	case p <= 3:
		return "high"
	case p <= 6:
		return "medium"
	case p <= 9:
		return "low"
	default:
		return "none"
	}
}
