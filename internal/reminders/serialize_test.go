package reminders

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

func TestEncodeReminderMinimal(t *testing.T) {
	out := EncodeReminder(model.Reminder{ListName: "Work", Title: "bare"})

	require.Equal(t, "bare", out.Title)
	require.Nil(t, out.Body)
	require.Nil(t, out.DueDate)
	require.False(t, out.HasRecurrence)
	require.Nil(t, out.Recurrence)
	require.False(t, out.HasLocation)
	require.Nil(t, out.Location)
}

func TestEncodeReminderPriorityPassthrough(t *testing.T) {
	for _, p := range []int{0, 4, 7} {
		out := EncodeReminder(model.Reminder{ListName: "Work", Title: "x", Priority: p})
		require.Equal(t, p, out.Priority)
	}
}

func TestEncodeReminderFirstRuleOnly(t *testing.T) {
	// The store is not trusted to enforce the single-rule invariant.
	r := model.Reminder{
		ListName: "Work",
		Title:    "over-ruled",
		RecurrenceRules: []model.RecurrenceRule{
			{Frequency: model.FrequencyWeekly, Interval: 2},
			{Frequency: model.FrequencyDaily, Interval: 1},
		},
	}
	out := EncodeReminder(r)
	require.True(t, out.HasRecurrence)
	require.Equal(t, "weekly", out.Recurrence.Frequency)
}

func TestEncodeReminderFirstLocationBearingAlarm(t *testing.T) {
	r := model.Reminder{
		ListName: "Work",
		Title:    "geo",
		Alarms: []model.Alarm{
			model.TimeAlarm(time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)),
			model.LocationAlarm("Office", 35, 139, 50, model.ProximityEnter),
			model.LocationAlarm("Home", 34, 135, 100, model.ProximityLeave),
		},
	}
	out := EncodeReminder(r)
	require.True(t, out.HasLocation)
	require.NotNil(t, out.Location.Title)
	require.Equal(t, "Office", *out.Location.Title)
	require.Equal(t, "enter", out.Location.Proximity)
}

func TestEncodeRecurrenceDaysOfWeek(t *testing.T) {
	rule := model.RecurrenceRule{
		Frequency:  model.FrequencyWeekly,
		Interval:   1,
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
	}
	out := encodeRecurrence(rule)
	require.Equal(t, []string{"monday", "friday"}, out.DaysOfWeek)
}

func TestEncodeReminderGolden(t *testing.T) {
	due := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)
	r := model.Reminder{
		ID:       "abc",
		ListName: "Work",
		Title:    "Ship report",
		Body:     "quarterly numbers",
		DueDate:  &due,
		Priority: 7,
		Alarms: []model.Alarm{
			model.LocationAlarm("Office", 35, 139, 50, model.ProximityLeave),
		},
		RecurrenceRules: []model.RecurrenceRule{
			{Frequency: model.FrequencyWeekly, Interval: 2, EndCount: 5},
		},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.AssertJson(t, "reminder_full", EncodeReminder(r))
}

func TestGetRemindersDetailedProjection(t *testing.T) {
	svc, mem := newTestService(t, "Backlog")
	mem.Seed(model.Reminder{ListName: "Backlog", Title: "with body", Body: "notes"})
	mem.Seed(model.Reminder{ListName: "Backlog", Title: "done", Completed: true})

	out, err := svc.GetReminders(t.Context(), "Backlog", false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "with body", out[0].Title)
	require.NotNil(t, out[0].Body)

	all, err := svc.GetReminders(t.Context(), "Backlog", true)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestGetRemindersFallsBackToTitles(t *testing.T) {
	// One item refusing the detailed projection degrades the whole call to
	// the titles-only projection, never per item.
	svc, mem := newTestService(t, "Backlog")
	mem.Seed(model.Reminder{ListName: "Backlog", Title: "no due date", Body: "lost in fallback"})
	mem.Seed(model.Reminder{ListName: "Backlog", Title: "second"})
	mem.DetailedErr = model.ErrFetchFailed

	out, err := svc.GetReminders(t.Context(), "Backlog", false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, r := range out {
		require.NotEmpty(t, r.Title)
		require.Nil(t, r.Body, "fallback projection carries titles only")
	}
}

func TestGetRemindersListNotFound(t *testing.T) {
	svc, _ := newTestService(t, "Backlog")

	_, err := svc.GetReminders(t.Context(), "Nope", false)
	require.ErrorIs(t, err, model.ErrListNotFound)
}

func TestGetRecurrenceNone(t *testing.T) {
	svc, mem := newTestService(t, "Work")
	mem.Seed(model.Reminder{ListName: "Work", Title: "plain"})

	got, err := svc.GetRecurrence(t.Context(), "Work", "plain")
	require.NoError(t, err)
	require.False(t, got.HasRecurrence)
	require.Nil(t, got.Recurrence)
}
