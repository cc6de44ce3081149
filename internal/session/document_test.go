package session

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		plan string
		want int
	}{
		{"bare number", "14\nDay 1: variables", 14},
		{"number with prose", "Total study period: 10 days\nDay 1: intro", 10},
		{"only first line counts", "No number here\n7 days of content", 20},
		{"no digits anywhere", "an open-ended plan", 20},
		{"empty plan", "", 20},
		{"first digit run wins", "Plan v2: 15 days", 2},
		{"zero falls back", "0\nDay 1", 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.plan); got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.plan, got, tt.want)
			}
		})
	}
}

func TestNewCourse(t *testing.T) {
	c := NewCourse("Go Basics", "Level 5 (High School)", "goroutines and channels", "12\nDay 1: syntax")

	if c.Duration != 12 {
		t.Errorf("expected duration 12, got %d", c.Duration)
	}
	if c.Progress.CurrentDay != 1 {
		t.Errorf("expected progress to start at day 1, got %d", c.Progress.CurrentDay)
	}
	if len(c.Progress.CompletedDays) != 0 {
		t.Error("expected no completed days on a new course")
	}
	if len(c.DailyContents) != 0 || len(c.QAHistory) != 0 {
		t.Error("expected empty contents and history on a new course")
	}
	if c.CreatedAt != c.LastAccess {
		t.Errorf("expected matching timestamps, got %q and %q", c.CreatedAt, c.LastAccess)
	}

	// Timestamps must round-trip through the fixed layout.
	if _, err := time.ParseInLocation(TimestampLayout, c.CreatedAt, time.Local); err != nil {
		t.Errorf("created_at %q does not match layout: %v", c.CreatedAt, err)
	}
}

func TestCourse_LastDay(t *testing.T) {
	c := NewCourse("Go Basics", "Level 5 (High School)", "content", "5\nplan")

	if got := c.LastDay(); got != 1 {
		t.Errorf("expected last day 1 for empty contents, got %d", got)
	}

	c.DailyContents["3"] = "day three"
	c.DailyContents["10"] = "day ten"
	c.DailyContents["2"] = "day two"
	if got := c.LastDay(); got != 10 {
		t.Errorf("expected last day 10, got %d", got)
	}

	// Non-numeric keys are ignored rather than fatal.
	c.DailyContents["intro"] = "stray"
	if got := c.LastDay(); got != 10 {
		t.Errorf("expected last day 10 with stray key, got %d", got)
	}
}

func TestDocument_LastCourse(t *testing.T) {
	doc := NewDocument()
	if doc.LastCourse() != nil {
		t.Error("expected nil last course on empty document")
	}

	course := NewCourse("Go Basics", "Level 7 (Expert)", "content", "8\nplan")
	doc.Courses["abc"] = course
	doc.LastAccessedCourse = "abc"

	if got := doc.LastCourse(); got != course {
		t.Error("expected last course to be returned")
	}

	doc.LastAccessedCourse = "gone"
	if doc.LastCourse() != nil {
		t.Error("expected nil for dangling last-accessed id")
	}
}
