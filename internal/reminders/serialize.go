package reminders

import (
	"context"
	"strings"
	"time"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// ReminderJSON is the stable schema consumed by the calling layer. Optional
// fields are pointers so absent values marshal as null, not zero values.
type ReminderJSON struct {
	Title         string          `json:"title"`
	Body          *string         `json:"body"`
	Completed     bool            `json:"completed"`
	DueDate       *string         `json:"dueDate"`
	Priority      int             `json:"priority"`
	Flagged       bool            `json:"flagged"`
	HasRecurrence bool            `json:"hasRecurrence"`
	Recurrence    *RecurrenceJSON `json:"recurrence"`
	HasLocation   bool            `json:"hasLocation"`
	Location      *LocationJSON   `json:"location"`
}

type RecurrenceJSON struct {
	Frequency  string   `json:"frequency"`
	Interval   int      `json:"interval"`
	EndDate    *string  `json:"endDate"`
	EndCount   *int     `json:"endCount"`
	DaysOfWeek []string `json:"daysOfWeek"`
}

type LocationJSON struct {
	Title     *string `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	Proximity string  `json:"proximity"`
}

// EncodeReminder projects a reminder onto the canonical schema. Only the
// first recurrence rule and the first location-bearing alarm are encoded;
// the mutation layer keeps at most one of each, but the store is not trusted
// to enforce that.
func EncodeReminder(r model.Reminder) ReminderJSON {
	out := ReminderJSON{
		Title:     r.Title,
		Completed: r.Completed,
		Priority:  r.Priority,
		Flagged:   r.Flagged,
	}
	if r.Body != "" {
		body := r.Body
		out.Body = &body
	}
	if r.DueDate != nil {
		due := model.FormatDateTime(*r.DueDate)
		out.DueDate = &due
	}
	if rule, has := r.FirstRecurrence(); has {
		out.HasRecurrence = true
		out.Recurrence = encodeRecurrence(rule)
	}
	if alarm, has := r.FirstLocationAlarm(); has {
		out.HasLocation = true
		out.Location = encodeLocation(alarm)
	}
	return out
}

func encodeRecurrence(rule model.RecurrenceRule) *RecurrenceJSON {
	out := &RecurrenceJSON{
		Frequency: string(rule.Frequency),
		Interval:  rule.Interval,
	}
	if rule.EndDate != nil {
		end := model.FormatDateTime(*rule.EndDate)
		out.EndDate = &end
	}
	if rule.EndCount > 0 {
		count := rule.EndCount
		out.EndCount = &count
	}
	for _, wd := range rule.DaysOfWeek {
		out.DaysOfWeek = append(out.DaysOfWeek, weekdayName(wd))
	}
	return out
}

func encodeLocation(alarm model.Alarm) *LocationJSON {
	out := &LocationJSON{
		Latitude:  alarm.Latitude,
		Longitude: alarm.Longitude,
		Radius:    alarm.RadiusMeters,
		Proximity: string(alarm.Proximity),
	}
	if out.Proximity == "" {
		out.Proximity = string(model.ProximityNone)
	}
	if alarm.Title != "" {
		title := alarm.Title
		out.Title = &title
	}
	return out
}

func weekdayName(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}

// GetReminders serializes a list's reminders. The detailed projection is
// attempted first; if the store refuses it, the whole call degrades to a
// titles-only projection. The degrade is all-or-nothing, never per item.
func (s *Service) GetReminders(ctx context.Context, listName string, includeCompleted bool) ([]ReminderJSON, error) {
	list, err := s.FindList(ctx, listName)
	if err != nil {
		return nil, err
	}
	items, fetchErr := s.store.Reminders(ctx, list, includeCompleted)
	if fetchErr == nil {
		out := make([]ReminderJSON, 0, len(items))
		for _, r := range items {
			out = append(out, EncodeReminder(r))
		}
		return out, nil
	}

	titles, err := s.store.ReminderTitles(ctx, list, includeCompleted)
	if err != nil {
		return nil, fetchErr
	}
	out := make([]ReminderJSON, 0, len(titles))
	for _, title := range titles {
		out = append(out, ReminderJSON{Title: title})
	}
	return out, nil
}

// RecurrenceResult is the get-recurrence read-back payload.
type RecurrenceResult struct {
	HasRecurrence bool            `json:"hasRecurrence"`
	Recurrence    *RecurrenceJSON `json:"recurrence"`
}

func (s *Service) GetRecurrence(ctx context.Context, listName, title string) (RecurrenceResult, error) {
	r, err := s.FindReminder(ctx, listName, title)
	if err != nil {
		return RecurrenceResult{}, err
	}
	rule, has := r.FirstRecurrence()
	if !has {
		return RecurrenceResult{}, nil
	}
	return RecurrenceResult{HasRecurrence: true, Recurrence: encodeRecurrence(rule)}, nil
}

// LocationResult is the get-location read-back payload.
type LocationResult struct {
	HasLocation bool          `json:"hasLocation"`
	Location    *LocationJSON `json:"location"`
}

func (s *Service) GetLocation(ctx context.Context, listName, title string) (LocationResult, error) {
	r, err := s.FindReminder(ctx, listName, title)
	if err != nil {
		return LocationResult{}, err
	}
	alarm, has := r.FirstLocationAlarm()
	if !has {
		return LocationResult{}, nil
	}
	return LocationResult{HasLocation: true, Location: encodeLocation(alarm)}, nil
}
