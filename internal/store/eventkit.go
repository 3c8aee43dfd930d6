package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// EventKit is the primary backend: it drives the native store API through a
// JavaScript-for-Automation bridge and speaks JSON on both sides of the
// subprocess boundary. It supports the full entity model except the flag
// field.
type EventKit struct {
	run     *Runner
	granted bool
}

func NewEventKit(run *Runner) *EventKit {
	return &EventKit{run: run}
}

// Wire representation exchanged with the JXA bridge. Dates travel in the
// fixed textual format; absent dates are empty strings.
type reminderDTO struct {
	ID         string          `json:"id"`
	List       string          `json:"list"`
	Title      string          `json:"title"`
	Notes      string          `json:"notes"`
	Completed  bool            `json:"completed"`
	DueDate    string          `json:"dueDate"`
	Priority   int             `json:"priority"`
	Alarms     []alarmDTO      `json:"alarms"`
	Recurrence []recurrenceDTO `json:"recurrence"`
}

type alarmDTO struct {
	Kind      string  `json:"kind"`
	TriggerAt string  `json:"triggerAt,omitempty"`
	Title     string  `json:"title,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Proximity string  `json:"proximity,omitempty"`
}

type recurrenceDTO struct {
	Frequency  string `json:"frequency"`
	Interval   int    `json:"interval"`
	EndDate    string `json:"endDate,omitempty"`
	EndCount   int    `json:"endCount,omitempty"`
	DaysOfWeek []int  `json:"daysOfWeek,omitempty"`
}

func (e *EventKit) RequestAccess(ctx context.Context) error {
	out, err := e.run.RunJXA(ctx, jxaRequestAccess)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrAccessDenied, err)
	}
	var result struct {
		Granted bool `json:"granted"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return fmt.Errorf("%w: unreadable access reply: %v", model.ErrAccessDenied, err)
	}
	if !result.Granted {
		return model.ErrAccessDenied
	}
	e.granted = true
	return nil
}

func (e *EventKit) Lists(ctx context.Context) ([]model.List, error) {
	if !e.granted {
		return nil, model.ErrAccessDenied
	}
	out, err := e.run.RunJXA(ctx, jxaListCalendars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	var names []string
	if err := json.Unmarshal(out, &names); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	lists := make([]model.List, 0, len(names))
	for _, n := range names {
		lists = append(lists, model.List{Name: n})
	}
	return lists, nil
}

func (e *EventKit) Reminders(ctx context.Context, list model.List, includeCompleted bool) ([]model.Reminder, error) {
	if !e.granted {
		return nil, model.ErrAccessDenied
	}
	script, err := withPayload(jxaFetchReminders, fetchArgs{List: list.Name, IncludeCompleted: includeCompleted})
	if err != nil {
		return nil, err
	}
	out, err := e.run.RunJXA(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	var dtos []reminderDTO
	if err := json.Unmarshal(out, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	reminders := make([]model.Reminder, 0, len(dtos))
	for _, dto := range dtos {
		r, convErr := dto.toModel()
		if convErr != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, convErr)
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

func (e *EventKit) ReminderTitles(ctx context.Context, list model.List, includeCompleted bool) ([]string, error) {
	if !e.granted {
		return nil, model.ErrAccessDenied
	}
	script, err := withPayload(jxaFetchTitles, fetchArgs{List: list.Name, IncludeCompleted: includeCompleted})
	if err != nil {
		return nil, err
	}
	out, err := e.run.RunJXA(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	var titles []string
	if err := json.Unmarshal(out, &titles); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetchFailed, err)
	}
	return titles, nil
}

func (e *EventKit) Save(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	if !e.granted {
		return model.Reminder{}, model.ErrAccessDenied
	}
	script, err := withPayload(jxaSaveReminder, fromModel(r))
	if err != nil {
		return model.Reminder{}, err
	}
	out, err := e.run.RunJXA(ctx, script)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("%w: %v", model.ErrSaveFailed, err)
	}
	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(out, &result); err != nil {
		return model.Reminder{}, fmt.Errorf("%w: unreadable save reply: %v", model.ErrSaveFailed, err)
	}
	r.ID = result.ID
	return r, nil
}

func (e *EventKit) Remove(ctx context.Context, r model.Reminder) error {
	if !e.granted {
		return model.ErrAccessDenied
	}
	script, err := withPayload(jxaRemoveReminder, struct {
		ID string `json:"id"`
	}{ID: r.ID})
	if err != nil {
		return err
	}
	if _, err := e.run.RunJXA(ctx, script); err != nil {
		return fmt.Errorf("%w: %v", model.ErrSaveFailed, err)
	}
	return nil
}

type fetchArgs struct {
	List             string `json:"list"`
	IncludeCompleted bool   `json:"includeCompleted"`
}

// withPayload embeds args as a JSON literal at the top of a JXA program.
func withPayload(script string, args any) (string, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("store: encode payload: %w", err)
	}
	return fmt.Sprintf("const payload = %s;\n%s", data, script), nil
}

func (d reminderDTO) toModel() (model.Reminder, error) {
	r := model.Reminder{
		ID:        d.ID,
		ListName:  d.List,
		Title:     d.Title,
		Body:      d.Notes,
		Completed: d.Completed,
		Priority:  d.Priority,
	}
	if d.DueDate != "" {
		due, err := model.ParseDateTime(d.DueDate)
		if err != nil {
			return model.Reminder{}, fmt.Errorf("reminder %q: %w", d.Title, err)
		}
		r.DueDate = &due
	}
	for _, a := range d.Alarms {
		switch model.AlarmKind(a.Kind) {
		case model.AlarmKindTime:
			at, err := model.ParseDateTime(a.TriggerAt)
			if err != nil {
				return model.Reminder{}, fmt.Errorf("reminder %q alarm: %w", d.Title, err)
			}
			r.Alarms = append(r.Alarms, model.TimeAlarm(at))
		case model.AlarmKindLocation:
			prox := model.Proximity(a.Proximity)
			if !prox.IsValid() {
				prox = model.ProximityNone
			}
			r.Alarms = append(r.Alarms, model.Alarm{
				Kind:         model.AlarmKindLocation,
				Title:        a.Title,
				Latitude:     a.Latitude,
				Longitude:    a.Longitude,
				RadiusMeters: a.Radius,
				Proximity:    prox,
			})
		}
	}
	for _, rec := range d.Recurrence {
		rule := model.RecurrenceRule{
			Frequency: model.Frequency(rec.Frequency),
			Interval:  rec.Interval,
			EndCount:  rec.EndCount,
		}
		if rec.EndDate != "" {
			end, err := model.ParseDateTime(rec.EndDate)
			if err != nil {
				return model.Reminder{}, fmt.Errorf("reminder %q recurrence: %w", d.Title, err)
			}
			rule.EndDate = &end
		}
		for _, wd := range rec.DaysOfWeek {
			rule.DaysOfWeek = append(rule.DaysOfWeek, time.Weekday(wd))
		}
		r.RecurrenceRules = append(r.RecurrenceRules, rule)
	}
	return r, nil
}

func fromModel(r model.Reminder) reminderDTO {
	dto := reminderDTO{
		ID:        r.ID,
		List:      r.ListName,
		Title:     r.Title,
		Notes:     r.Body,
		Completed: r.Completed,
		Priority:  r.Priority,
	}
	if r.DueDate != nil {
		dto.DueDate = model.FormatDateTime(*r.DueDate)
	}
	for _, a := range r.Alarms {
		switch a.Kind {
		case model.AlarmKindTime:
			dto.Alarms = append(dto.Alarms, alarmDTO{
				Kind:      string(model.AlarmKindTime),
				TriggerAt: model.FormatDateTime(a.TriggerAt),
			})
		case model.AlarmKindLocation:
			dto.Alarms = append(dto.Alarms, alarmDTO{
				Kind:      string(model.AlarmKindLocation),
				Title:     a.Title,
				Latitude:  a.Latitude,
				Longitude: a.Longitude,
				Radius:    a.RadiusMeters,
				Proximity: string(a.Proximity),
			})
		}
	}
	for _, rule := range r.RecurrenceRules {
		rec := recurrenceDTO{
			Frequency: string(rule.Frequency),
			Interval:  rule.Interval,
			EndCount:  rule.EndCount,
		}
		if rule.EndDate != nil {
			rec.EndDate = model.FormatDateTime(*rule.EndDate)
		}
		for _, wd := range rule.DaysOfWeek {
			rec.DaysOfWeek = append(rec.DaysOfWeek, int(wd))
		}
		dto.Recurrence = append(dto.Recurrence, rec)
	}
	return dto
}
