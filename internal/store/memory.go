package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// Memory is an in-memory Gateway and FlagSetter used by tests. It mirrors
// the live store's observable behavior: iteration order is insertion order,
// saves are whole-item replacements, and access must be requested before
// anything else works.
type Memory struct {
	mu       sync.Mutex
	granted  bool
	lists    []model.List
	items    map[string][]model.Reminder
	nextID   int
	flagCall int

	// Error injection for failure-path tests.
	DenyAccess  bool
	DetailedErr error
	SaveErr     error
	FlagErr     error
}

func NewMemory(listNames ...string) *Memory {
	m := &Memory{items: make(map[string][]model.Reminder)}
	for _, name := range listNames {
		m.lists = append(m.lists, model.List{Name: name})
		m.items[name] = nil
	}
	return m
}

// Seed inserts a reminder directly, bypassing the access gate. Returns the
// assigned ID.
func (m *Memory) Seed(r model.Reminder) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = fmt.Sprintf("mem-%d", m.nextID)
	m.items[r.ListName] = append(m.items[r.ListName], r)
	return r.ID
}

// Get returns the stored copy of a seeded or saved reminder.
func (m *Memory) Get(id string) (model.Reminder, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rs := range m.items {
		for _, r := range rs {
			if r.ID == id {
				return r, true
			}
		}
	}
	return model.Reminder{}, false
}

// FlagCalls reports how many scripting-backend flag mutations ran.
func (m *Memory) FlagCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flagCall
}

func (m *Memory) RequestAccess(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DenyAccess {
		return model.ErrAccessDenied
	}
	m.granted = true
	return nil
}

func (m *Memory) Lists(ctx context.Context) ([]model.List, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.granted {
		return nil, model.ErrAccessDenied
	}
	out := make([]model.List, len(m.lists))
	copy(out, m.lists)
	return out, nil
}

func (m *Memory) Reminders(ctx context.Context, list model.List, includeCompleted bool) ([]model.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.granted {
		return nil, model.ErrAccessDenied
	}
	if m.DetailedErr != nil {
		return nil, m.DetailedErr
	}
	rs, ok := m.items[list.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrListNotFound, list.Name)
	}
	out := make([]model.Reminder, 0, len(rs))
	for _, r := range rs {
		if !includeCompleted && r.Completed {
			continue
		}
		out = append(out, cloneReminder(r))
	}
	return out, nil
}

func (m *Memory) ReminderTitles(ctx context.Context, list model.List, includeCompleted bool) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.granted {
		return nil, model.ErrAccessDenied
	}
	rs, ok := m.items[list.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrListNotFound, list.Name)
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		if !includeCompleted && r.Completed {
			continue
		}
		out = append(out, r.Title)
	}
	return out, nil
}

func (m *Memory) Save(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.granted {
		return model.Reminder{}, model.ErrAccessDenied
	}
	if m.SaveErr != nil {
		return model.Reminder{}, m.SaveErr
	}
	if _, ok := m.items[r.ListName]; !ok {
		return model.Reminder{}, fmt.Errorf("%w: %q", model.ErrListNotFound, r.ListName)
	}
	stored := cloneReminder(r)
	if stored.ID == "" {
		m.nextID++
		stored.ID = fmt.Sprintf("mem-%d", m.nextID)
		m.items[stored.ListName] = append(m.items[stored.ListName], stored)
		return cloneReminder(stored), nil
	}
	for i, existing := range m.items[stored.ListName] {
		if existing.ID == stored.ID {
			m.items[stored.ListName][i] = stored
			return cloneReminder(stored), nil
		}
	}
	return model.Reminder{}, fmt.Errorf("%w: id %q", model.ErrSaveFailed, stored.ID)
}

func (m *Memory) Remove(ctx context.Context, r model.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.granted {
		return model.ErrAccessDenied
	}
	if m.SaveErr != nil {
		return m.SaveErr
	}
	rs := m.items[r.ListName]
	for i, existing := range rs {
		if existing.ID == r.ID {
			m.items[r.ListName] = append(rs[:i], rs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %q", model.ErrSaveFailed, r.ID)
}

func (m *Memory) SetFlagged(ctx context.Context, listName, title string, flagged bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FlagErr != nil {
		return m.FlagErr
	}
	m.flagCall++
	rs, ok := m.items[listName]
	if !ok {
		return fmt.Errorf("store: applescript: list %q not found", listName)
	}
	for i, r := range rs {
		if r.Title == title {
			rs[i].Flagged = flagged
			return nil
		}
	}
	return fmt.Errorf("store: applescript: reminder %q not found", title)
}

func cloneReminder(r model.Reminder) model.Reminder {
	out := r
	if r.DueDate != nil {
		due := *r.DueDate
		out.DueDate = &due
	}
	out.Alarms = append([]model.Alarm(nil), r.Alarms...)
	out.RecurrenceRules = make([]model.RecurrenceRule, len(r.RecurrenceRules))
	for i, rule := range r.RecurrenceRules {
		cp := rule
		if rule.EndDate != nil {
			end := *rule.EndDate
			cp.EndDate = &end
		}
		cp.DaysOfWeek = append([]time.Weekday(nil), rule.DaysOfWeek...)
		out.RecurrenceRules[i] = cp
	}
	return out
}
