package store

import (
	"strings"
	"testing"
)

func TestFlagScriptTargetsListAndReminder(t *testing.T) {
	script := flagScript("Work", "Ship report", true)
	for _, want := range []string{
		`tell application "Reminders"`,
		`tell list "Work"`,
		`first reminder whose name is "Ship report"`,
		`to true`,
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("script missing %q:\n%s", want, script)
		}
	}
}

func TestFlagScriptUnflag(t *testing.T) {
	script := flagScript("Work", "Ship report", false)
	if !strings.Contains(script, "to false") {
		t.Fatalf("expected unflag script, got:\n%s", script)
	}
}

func TestEscapeAppleScript(t *testing.T) {
	got := escapeAppleScript(`say "hi" \ bye`)
	want := `say \"hi\" \\ bye`
	if got != want {
		t.Fatalf("escapeAppleScript = %q, want %q", got, want)
	}
}

func TestFlagScriptEscapesQuotes(t *testing.T) {
	script := flagScript(`My "A" list`, `call "mom"`, true)
	if !strings.Contains(script, `tell list "My \"A\" list"`) {
		t.Fatalf("list name not escaped:\n%s", script)
	}
	if !strings.Contains(script, `whose name is "call \"mom\""`) {
		t.Fatalf("title not escaped:\n%s", script)
	}
}
