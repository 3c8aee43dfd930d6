package model

import (
	"errors"
	"fmt"
	"time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}

// ParseFrequency maps user-supplied text to a Frequency.
func ParseFrequency(text string) (Frequency, error) {
	f := Frequency(text)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: frequency %q", ErrInvalidEnum, text)
	}
	return f, nil
}

// ParseProximity maps user-supplied text to a geofence direction.
func ParseProximity(text string) (Proximity, error) {
	p := Proximity(text)
	if !p.IsValid() || p == ProximityNone {
		return "", fmt.Errorf("%w: proximity %q", ErrInvalidEnum, text)
	}
	return p, nil
}

// RecurrenceRule describes how a reminder repeats. The end condition is at
// most one of EndDate and EndCount; both unset means the rule never ends.
// DaysOfWeek is carried through read-only for rules the store created with
// weekday constraints; no operation here sets it.
type RecurrenceRule struct {
	Frequency  Frequency
	Interval   int
	EndDate    *time.Time
	EndCount   int
	DaysOfWeek []time.Weekday
}

func (r RecurrenceRule) Validate() error {
	if !r.Frequency.IsValid() {
		return fmt.Errorf("%w: frequency %q", ErrInvalidEnum, r.Frequency)
	}
	if r.Interval < 1 {
		return fmt.Errorf("model: recurrence interval must be >= 1, got %d", r.Interval)
	}
	if r.EndCount < 0 {
		return fmt.Errorf("model: recurrence end count must be >= 1, got %d", r.EndCount)
	}
	if r.EndDate != nil && r.EndCount > 0 {
		return errors.New("model: recurrence cannot end by both date and count")
	}
	return nil
}
