package tui

import (
	"testing"
	"time"

	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
)

func TestBuildTimelineMergesAndSorts(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC) // Monday

	reminders := []models.Reminder{
		{
			ID: "a", Title: "Daily standup", Date: "2026-03-01", Time: "09:30",
			Rule: recurrence.Daily(1), Active: true,
		},
		{
			ID: "b", Title: "Water plants", Date: "2026-03-01", Time: "18:00",
			Rule: recurrence.Weekly(time.Wednesday), Active: true,
		},
	}

	entries := buildTimeline(reminders, time.UTC, now, 5)
	if len(entries) != 5 {
		t.Fatalf("expected 5 timeline entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].At.Before(entries[i-1].At) {
			t.Errorf("timeline not sorted: %v before %v", entries[i].At, entries[i-1].At)
		}
	}

	first := entries[0]
	if first.Reminder.ID != "a" || !first.At.Equal(time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)) {
		t.Errorf("first entry should be the standup later today, got %s at %v", first.Reminder.ID, first.At)
	}
}

func TestBuildTimelineSkipsInactive(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	reminders := []models.Reminder{
		{
			ID: "paused", Title: "Paused", Date: "2026-03-01", Time: "09:00",
			Rule: recurrence.Daily(1), Active: false,
		},
	}

	entries := buildTimeline(reminders, time.UTC, now, 5)
	if len(entries) != 0 {
		t.Errorf("inactive reminders should not appear on the timeline, got %d entries", len(entries))
	}
}

func TestBuildTimelineIncludesFutureAnchorForNonRepeating(t *testing.T) {
	now := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	reminders := []models.Reminder{
		{
			ID: "once", Title: "Dentist", Date: "2026-03-10", Time: "14:00",
			Rule: recurrence.None(), Active: true,
		},
		{
			ID: "past", Title: "Expired", Date: "2026-02-01", Time: "14:00",
			Rule: recurrence.None(), Active: true,
		},
	}

	entries := buildTimeline(reminders, time.UTC, now, 5)
	if len(entries) != 1 {
		t.Fatalf("expected 1 timeline entry, got %d", len(entries))
	}
	if entries[0].Reminder.ID != "once" {
		t.Errorf("expected the future one-off reminder, got %s", entries[0].Reminder.ID)
	}
}
