package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/remindapp/remind/internal/constants"
	"github.com/remindapp/remind/internal/models"
	"github.com/remindapp/remind/internal/recurrence"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "remind.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testReminder(id string) models.Reminder {
	return models.Reminder{
		ID:        id,
		Title:     "Pay rent",
		Date:      "2026-01-31",
		Time:      "09:00",
		Rule:      recurrence.Monthly(31),
		Notes:     "transfer before noon",
		Active:    true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func TestInitSeedsDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("expected default timezone %q, got %q", constants.DefaultTimezone, settings.Timezone)
	}
	if settings.PreviewCount != constants.DefaultPreviewCount {
		t.Errorf("expected default preview count %d, got %d", constants.DefaultPreviewCount, settings.PreviewCount)
	}
	if settings.NotificationsEnabled != constants.DefaultNotificationsEnabled {
		t.Errorf("unexpected default notifications setting")
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{
		Timezone:             "America/New_York",
		PreviewCount:         5,
		LeadTimeMin:          30,
		NotificationsEnabled: false,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestAddAndGetReminder(t *testing.T) {
	store := newTestStore(t)

	want := testReminder("rem-1")
	if err := store.AddReminder(want); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	got, err := store.GetReminder("rem-1")
	if err != nil {
		t.Fatalf("GetReminder() failed: %v", err)
	}

	if got.Title != want.Title || got.Date != want.Date || got.Time != want.Time || got.Notes != want.Notes {
		t.Errorf("GetReminder() = %+v, want %+v", got, want)
	}
	if got.Rule.Type != recurrence.TypeMonthly || got.Rule.MonthDay != 31 {
		t.Errorf("recurrence rule did not survive the round trip: %+v", got.Rule)
	}
	if !got.Active {
		t.Error("expected reminder to be active")
	}
}

func TestGetReminderNotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetReminder("missing"); err == nil {
		t.Error("expected error for missing reminder")
	}
}

func TestRuleWithWeekdaysRoundTrip(t *testing.T) {
	store := newTestStore(t)

	r := testReminder("rem-wk")
	r.Rule = recurrence.OnDays(time.Monday, time.Wednesday, time.Friday).WithEndDate("2026-12-31")
	if err := store.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	got, err := store.GetReminder("rem-wk")
	if err != nil {
		t.Fatalf("GetReminder() failed: %v", err)
	}
	if len(got.Rule.Weekdays) != 3 {
		t.Fatalf("expected 3 weekdays, got %v", got.Rule.Weekdays)
	}
	if got.Rule.Weekdays[0] != time.Monday || got.Rule.Weekdays[2] != time.Friday {
		t.Errorf("weekdays out of order: %v", got.Rule.Weekdays)
	}
	if got.Rule.EndDate != "2026-12-31" {
		t.Errorf("end date lost: %q", got.Rule.EndDate)
	}
}

func TestUpdateReminder(t *testing.T) {
	store := newTestStore(t)

	r := testReminder("rem-2")
	if err := store.AddReminder(r); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	r.Title = "Pay rent (updated)"
	r.Rule = recurrence.EveryNDays(3)
	if err := store.UpdateReminder(r); err != nil {
		t.Fatalf("UpdateReminder() failed: %v", err)
	}

	got, err := store.GetReminder("rem-2")
	if err != nil {
		t.Fatalf("GetReminder() failed: %v", err)
	}
	if got.Title != "Pay rent (updated)" {
		t.Errorf("title not updated: %q", got.Title)
	}
	if got.Rule.Type != recurrence.TypeCustomDays || got.Rule.Interval != 3 {
		t.Errorf("rule not updated: %+v", got.Rule)
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	store := newTestStore(t)

	if err := store.AddReminder(testReminder("rem-3")); err != nil {
		t.Fatalf("AddReminder() failed: %v", err)
	}

	if err := store.DeleteReminder("rem-3"); err != nil {
		t.Fatalf("DeleteReminder() failed: %v", err)
	}

	// Deleted reminders are hidden from normal reads
	if _, err := store.GetReminder("rem-3"); err == nil {
		t.Error("expected deleted reminder to be hidden")
	}

	all, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no visible reminders, got %d", len(all))
	}

	withDeleted, err := store.GetAllRemindersIncludingDeleted()
	if err != nil {
		t.Fatalf("GetAllRemindersIncludingDeleted() failed: %v", err)
	}
	if len(withDeleted) != 1 {
		t.Fatalf("expected 1 reminder including deleted, got %d", len(withDeleted))
	}
	if withDeleted[0].DeletedAt == nil {
		t.Error("expected deleted_at to be set")
	}

	// Double delete is an error
	if err := store.DeleteReminder("rem-3"); err == nil {
		t.Error("expected error deleting an already deleted reminder")
	}

	if err := store.RestoreReminder("rem-3"); err != nil {
		t.Fatalf("RestoreReminder() failed: %v", err)
	}
	if _, err := store.GetReminder("rem-3"); err != nil {
		t.Errorf("restored reminder should be visible: %v", err)
	}

	// Restoring a live reminder is an error
	if err := store.RestoreReminder("rem-3"); err == nil {
		t.Error("expected error restoring a reminder that is not deleted")
	}
}

func TestGetAllRemindersOrdering(t *testing.T) {
	store := newTestStore(t)

	later := testReminder("rem-b")
	later.Date = "2026-06-01"
	earlier := testReminder("rem-a")
	earlier.Date = "2026-01-01"

	if err := store.AddReminder(later); err != nil {
		t.Fatal(err)
	}
	if err := store.AddReminder(earlier); err != nil {
		t.Fatal(err)
	}

	all, err := store.GetAllReminders()
	if err != nil {
		t.Fatalf("GetAllReminders() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(all))
	}
	if all[0].ID != "rem-a" || all[1].ID != "rem-b" {
		t.Errorf("reminders not ordered by date: %s, %s", all[0].ID, all[1].ID)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load() to fail for an uninitialized store")
	}
}
