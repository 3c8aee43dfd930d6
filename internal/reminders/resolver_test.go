package reminders

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
	"github.com/r4sd/apple-reminders-mcp/internal/store"
)

func newTestService(t *testing.T, listNames ...string) (*Service, *store.Memory) {
	t.Helper()
	if len(listNames) == 0 {
		listNames = []string{"Work"}
	}
	mem := store.NewMemory(listNames...)
	svc := New(mem, mem)
	require.NoError(t, svc.RequestAccess(t.Context()))
	return svc, mem
}

func TestFindListExactMatch(t *testing.T) {
	svc, _ := newTestService(t, "Work", "Backlog")

	list, err := svc.FindList(t.Context(), "Work")
	require.NoError(t, err)
	require.Equal(t, "Work", list.Name)
}

func TestFindListCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t, "Work")

	_, err := svc.FindList(t.Context(), "work")
	require.ErrorIs(t, err, model.ErrListNotFound)
}

func TestFindReminderReturnsRequestedTitle(t *testing.T) {
	svc, mem := newTestService(t, "Work")
	mem.Seed(model.Reminder{ListName: "Work", Title: "Ship report"})
	mem.Seed(model.Reminder{ListName: "Work", Title: "Write notes"})

	r, err := svc.FindReminder(t.Context(), "Work", "Write notes")
	require.NoError(t, err)
	require.Equal(t, "Write notes", r.Title)
}

func TestFindReminderIncludesCompleted(t *testing.T) {
	svc, mem := newTestService(t, "Work")
	mem.Seed(model.Reminder{ListName: "Work", Title: "done already", Completed: true})

	r, err := svc.FindReminder(t.Context(), "Work", "done already")
	require.NoError(t, err)
	require.True(t, r.Completed)
}

func TestFindReminderFirstMatchOnDuplicateTitles(t *testing.T) {
	svc, mem := newTestService(t, "Work")
	first := mem.Seed(model.Reminder{ListName: "Work", Title: "dup", Priority: 1})
	mem.Seed(model.Reminder{ListName: "Work", Title: "dup", Priority: 9})

	r, err := svc.FindReminder(t.Context(), "Work", "dup")
	require.NoError(t, err)
	require.Equal(t, first, r.ID, "first reminder in store order wins")
}

func TestFindReminderNotFound(t *testing.T) {
	svc, _ := newTestService(t, "Work")

	_, err := svc.FindReminder(t.Context(), "Work", "missing")
	require.ErrorIs(t, err, model.ErrReminderNotFound)

	_, err = svc.FindReminder(t.Context(), "Nope", "missing")
	require.ErrorIs(t, err, model.ErrListNotFound)
}
