package model

import (
	"fmt"
	"time"
)

// DateTimeLayout is the only textual date format this layer accepts or
// emits. No timezone offset field; values are interpreted in local time.
const DateTimeLayout = "2006-01-02 15:04"

// ParseDateTime parses text in DateTimeLayout, interpreted in local time.
// Parse failure wraps ErrInvalidDate and is distinct from not-found errors.
func ParseDateTime(text string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return t, nil
}

// FormatDateTime renders t in DateTimeLayout in local time.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(DateTimeLayout)
}
