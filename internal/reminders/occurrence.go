package reminders

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/r4sd/apple-reminders-mcp/internal/model"
)

// previewStart anchors the occurrence preview on the reminder's due date
// when it has one, otherwise on now.
func previewStart(r model.Reminder) time.Time {
	if r.DueDate != nil {
		return *r.DueDate
	}
	return time.Now()
}

// previewOccurrences computes up to count upcoming occurrences of the rule
// for the success message. Preview is best effort: a rule the RRULE engine
// rejects just yields no preview, never an operation failure.
func previewOccurrences(rule model.RecurrenceRule, start time.Time, count int) []string {
	opt := rrule.ROption{
		Freq:     rruleFrequency(rule.Frequency),
		Interval: rule.Interval,
		Dtstart:  start,
	}
	if rule.EndCount > 0 {
		opt.Count = rule.EndCount
	}
	if rule.EndDate != nil {
		opt.Until = *rule.EndDate
	}
	rr, err := rrule.NewRRule(opt)
	if err != nil {
		return nil
	}

	iter := rr.Iterator()
	out := make([]string, 0, count)
	for len(out) < count {
		next, more := iter()
		if !more {
			break
		}
		if !next.After(start) {
			continue
		}
		out = append(out, model.FormatDateTime(next))
	}
	return out
}

func joinDates(dates []string) string {
	return strings.Join(dates, ", ")
}

func rruleFrequency(f model.Frequency) rrule.Frequency {
	switch f {
	case model.FrequencyDaily:
		return rrule.DAILY
	case model.FrequencyWeekly:
		return rrule.WEEKLY
	case model.FrequencyMonthly:
		return rrule.MONTHLY
	default:
		return rrule.YEARLY
	}
}
