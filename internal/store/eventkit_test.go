package store

import (
	"strings"
	"testing"
	"time"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

func TestWithPayloadEmbedsJSON(t *testing.T) {
	script, err := withPayload("function run() { return payload.list; }", fetchArgs{List: "Work", IncludeCompleted: true})
	if err != nil {
		t.Fatalf("withPayload failed: %v", err)
	}
	if !strings.HasPrefix(script, `const payload = {"list":"Work","includeCompleted":true};`) {
		t.Fatalf("unexpected payload line:\n%s", script)
	}
}

func TestReminderDTORoundTrip(t *testing.T) {
	due := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)
	in := model.Reminder{
		ID:        "abc",
		ListName:  "Work",
		Title:     "Ship report",
		Body:      "quarterly numbers",
		Completed: false,
		DueDate:   &due,
		Priority:  5,
		Alarms: []model.Alarm{
			model.TimeAlarm(due),
			model.LocationAlarm("Office", 35.0, 139.0, 50, model.ProximityLeave),
		},
		RecurrenceRules: []model.RecurrenceRule{
			{Frequency: model.FrequencyWeekly, Interval: 2, EndDate: &end, DaysOfWeek: []time.Weekday{time.Monday}},
		},
	}

	out, err := fromModel(in).toModel()
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if out.ID != in.ID || out.ListName != in.ListName || out.Title != in.Title || out.Body != in.Body {
		t.Fatalf("identity fields changed: %+v", out)
	}
	if out.DueDate == nil || !out.DueDate.Equal(due) {
		t.Fatalf("due date changed: %v", out.DueDate)
	}
	if len(out.Alarms) != 2 {
		t.Fatalf("expected 2 alarms, got %d", len(out.Alarms))
	}
	if out.Alarms[0].Kind != model.AlarmKindTime || !out.Alarms[0].TriggerAt.Equal(due) {
		t.Fatalf("time alarm changed: %+v", out.Alarms[0])
	}
	loc := out.Alarms[1]
	if loc.Kind != model.AlarmKindLocation || loc.Latitude != 35.0 || loc.Longitude != 139.0 || loc.RadiusMeters != 50 || loc.Proximity != model.ProximityLeave {
		t.Fatalf("location alarm changed: %+v", loc)
	}
	if len(out.RecurrenceRules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(out.RecurrenceRules))
	}
	rule := out.RecurrenceRules[0]
	if rule.Frequency != model.FrequencyWeekly || rule.Interval != 2 {
		t.Fatalf("rule changed: %+v", rule)
	}
	if rule.EndDate == nil || !rule.EndDate.Equal(end) || rule.EndCount != 0 {
		t.Fatalf("rule end changed: %+v", rule)
	}
	if len(rule.DaysOfWeek) != 1 || rule.DaysOfWeek[0] != time.Monday {
		t.Fatalf("days of week changed: %v", rule.DaysOfWeek)
	}
}

func TestReminderDTOBadDueDate(t *testing.T) {
	dto := reminderDTO{List: "Work", Title: "Ship report", DueDate: "next tuesday"}
	if _, err := dto.toModel(); err == nil {
		t.Fatal("expected error for unparseable due date, got nil")
	}
}

func TestEventKitFailsClosedWithoutAccess(t *testing.T) {
	ek := NewEventKit(NewRunner("/usr/bin/osascript", 0))
	if _, err := ek.Lists(t.Context()); err != model.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if _, err := ek.Save(t.Context(), model.Reminder{ListName: "Work", Title: "x"}); err != model.ErrAccessDenied {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
