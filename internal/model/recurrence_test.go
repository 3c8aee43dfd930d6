package model

import (
	"errors"
	"testing"
	"time"
)

func TestRecurrenceRuleValidateSuccess(t *testing.T) {
	rule := RecurrenceRule{Frequency: FrequencyWeekly, Interval: 2, EndCount: 5}
	if err := rule.Validate(); err != nil {
		t.Fatalf("expected valid rule, got error: %v", err)
	}
}

func TestRecurrenceRuleValidateInvalidFrequency(t *testing.T) {
	rule := RecurrenceRule{Frequency: Frequency("hourly"), Interval: 1}
	err := rule.Validate()
	if err == nil || !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got: %v", err)
	}
}

func TestRecurrenceRuleValidateInterval(t *testing.T) {
	rule := RecurrenceRule{Frequency: FrequencyDaily, Interval: 0}
	if err := rule.Validate(); err == nil {
		t.Fatal("expected error for interval 0, got nil")
	}
}

func TestRecurrenceRuleValidateExclusiveEnd(t *testing.T) {
	until := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	rule := RecurrenceRule{Frequency: FrequencyDaily, Interval: 1, EndDate: &until, EndCount: 3}
	if err := rule.Validate(); err == nil {
		t.Fatal("expected error for both end date and end count, got nil")
	}
}

func TestParseFrequency(t *testing.T) {
	for _, text := range []string{"daily", "weekly", "monthly", "yearly"} {
		f, err := ParseFrequency(text)
		if err != nil {
			t.Fatalf("ParseFrequency(%q) failed: %v", text, err)
		}
		if string(f) != text {
			t.Fatalf("ParseFrequency(%q) = %q", text, f)
		}
	}
	if _, err := ParseFrequency("fortnightly"); err == nil || !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got: %v", err)
	}
}

func TestParseProximity(t *testing.T) {
	if _, err := ParseProximity("enter"); err != nil {
		t.Fatalf("ParseProximity(enter) failed: %v", err)
	}
	if _, err := ParseProximity("leave"); err != nil {
		t.Fatalf("ParseProximity(leave) failed: %v", err)
	}
	// "none" is a serialization value, not an accepted input.
	if _, err := ParseProximity("none"); err == nil {
		t.Fatal("expected error for proximity none, got nil")
	}
	if _, err := ParseProximity("near"); err == nil || !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got: %v", err)
	}
}
