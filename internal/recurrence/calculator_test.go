package recurrence

import (
	"testing"
	"time"
)

// mustInstant parses "YYYY-MM-DD HH:MM" test timestamps.
func mustInstant(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return ts
}

func TestNextOccurrence_NoneRule(t *testing.T) {
	anchor := mustInstant(t, "2026-01-15 09:00")
	if _, ok := NextOccurrence(anchor, None(), anchor); ok {
		t.Error("none rule should produce no occurrences")
	}
	if _, ok := NextOccurrence(anchor, Rule{}, anchor); ok {
		t.Error("zero rule should behave like none")
	}
}

func TestNextOccurrence_Daily(t *testing.T) {
	anchor := mustInstant(t, "2026-01-10 09:00")

	// Reference earlier in the day: today's occurrence is still ahead.
	after := mustInstant(t, "2026-01-15 08:00")
	next, ok := NextOccurrence(anchor, Daily(1), after)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-01-15 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// Reference at the occurrence itself: strictly after means tomorrow.
	next, ok = NextOccurrence(anchor, Daily(1), mustInstant(t, "2026-01-15 09:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-01-16 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// Interval steps from the reference, not the anchor.
	next, ok = NextOccurrence(anchor, Daily(3), mustInstant(t, "2026-01-15 10:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-01-18 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_WeeklySet(t *testing.T) {
	// 2024-03-04 is a Monday.
	anchor := mustInstant(t, "2024-03-04 08:00")
	rule := OnDays(time.Monday, time.Wednesday, time.Friday)

	next, ok := NextOccurrence(anchor, rule, anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-03-06 08:00"); !next.Equal(want) {
		t.Errorf("expected Wednesday %v, got %v", want, next)
	}

	// From the Wednesday occurrence, Friday follows.
	next, ok = NextOccurrence(anchor, rule, next)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-03-08 08:00"); !next.Equal(want) {
		t.Errorf("expected Friday %v, got %v", want, next)
	}

	// From Friday, wrap to the following Monday.
	next, ok = NextOccurrence(anchor, rule, next)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-03-11 08:00"); !next.Equal(want) {
		t.Errorf("expected Monday %v, got %v", want, next)
	}
}

func TestNextOccurrence_WeeklyEmptySet(t *testing.T) {
	anchor := mustInstant(t, "2026-01-05 09:00")
	if _, ok := NextOccurrence(anchor, Weekly(), anchor); ok {
		t.Error("weekly rule with no days should produce no occurrences")
	}
}

func TestNextOccurrence_MonthlyClampsToShortMonths(t *testing.T) {
	// Spec scenario: day 31 anchored at the end of January in a leap year.
	anchor := mustInstant(t, "2024-01-31 09:00")
	rule := Monthly(31)

	next, ok := NextOccurrence(anchor, rule, anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-02-29 09:00"); !next.Equal(want) {
		t.Errorf("expected leap-year clamp to %v, got %v", want, next)
	}

	// February's clamped occurrence does not steal March's real day 31.
	next, ok = NextOccurrence(anchor, rule, next)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-03-31 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// Non-leap February clamps to the 28th.
	next, ok = NextOccurrence(anchor, rule, mustInstant(t, "2026-02-01 00:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-02-28 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_MonthlyDayFromAnchor(t *testing.T) {
	// MonthDay 0 resolves to the anchor's day-of-month.
	anchor := mustInstant(t, "2026-01-15 07:30")
	next, ok := NextOccurrence(anchor, Monthly(0), anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-02-15 07:30"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_Yearly(t *testing.T) {
	anchor := mustInstant(t, "2024-07-04 10:00")

	next, ok := NextOccurrence(anchor, Yearly(), anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2025-07-04 10:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// Same year when the date is still ahead of the reference.
	next, ok = NextOccurrence(anchor, Yearly(), mustInstant(t, "2026-03-01 00:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-07-04 10:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_YearlyLeapDayAnchor(t *testing.T) {
	anchor := mustInstant(t, "2024-02-29 10:00")
	next, ok := NextOccurrence(anchor, Yearly(), mustInstant(t, "2024-03-01 00:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2025-02-28 10:00"); !next.Equal(want) {
		t.Errorf("expected non-leap clamp to %v, got %v", want, next)
	}
}

func TestNextOccurrence_EveryNDaysStaysAnchorAligned(t *testing.T) {
	anchor := mustInstant(t, "2024-01-01 08:00")
	rule := EveryNDays(3)

	// Series runs Jan 1, 4, 7, ... regardless of where the reference falls.
	next, ok := NextOccurrence(anchor, rule, mustInstant(t, "2024-01-05 12:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2024-01-07 08:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// A reference years later still lands on the anchor-aligned stride.
	next, ok = NextOccurrence(anchor, rule, mustInstant(t, "2026-06-15 00:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if !next.After(mustInstant(t, "2026-06-15 00:00")) {
		t.Fatalf("occurrence %v not after reference", next)
	}
	days := int(next.Sub(mustInstant(t, "2024-01-01 08:00")).Hours() / 24)
	if days%3 != 0 {
		t.Errorf("occurrence %v is %d days from anchor, not a multiple of 3", next, days)
	}

	// A reference before the anchor yields the anchor itself.
	next, ok = NextOccurrence(anchor, rule, mustInstant(t, "2023-12-01 00:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if !next.Equal(anchor) {
		t.Errorf("expected the anchor %v, got %v", anchor, next)
	}
}

func TestNextOccurrence_NthWeekday(t *testing.T) {
	anchor := mustInstant(t, "2026-01-01 09:00")

	// January 2026: first Monday is the 5th, second the 12th.
	next, ok := NextOccurrence(anchor, NthWeekdayOf(2, time.Monday), anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-01-12 09:00"); !next.Equal(want) {
		t.Errorf("expected second Monday %v, got %v", want, next)
	}

	// After this month's occurrence, roll into February (first Monday: 2nd).
	next, ok = NextOccurrence(anchor, NthWeekdayOf(1, time.Monday), mustInstant(t, "2026-01-05 09:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-02-02 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_LastWeekdayOfMonth(t *testing.T) {
	anchor := mustInstant(t, "2026-01-01 17:00")

	// January 2026 has five Fridays; "last" must be the 30th, not the 23rd.
	next, ok := NextOccurrence(anchor, NthWeekdayOf(NthLast, time.Friday), anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-01-30 17:00"); !next.Equal(want) {
		t.Errorf("expected fifth Friday %v, got %v", want, next)
	}

	// February 2026 has four Fridays; last is the 27th.
	next, ok = NextOccurrence(anchor, NthWeekdayOf(NthLast, time.Friday), next)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-02-27 17:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_FifthWeekdaySkipsShortMonths(t *testing.T) {
	anchor := mustInstant(t, "2026-01-01 09:00")

	// February 2026 has no fifth Friday; the series jumps to May's (the 29th).
	next, ok := NextOccurrence(anchor, NthWeekdayOf(5, time.Friday), mustInstant(t, "2026-01-30 09:00"))
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := mustInstant(t, "2026-05-29 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestNextOccurrence_EndDate(t *testing.T) {
	anchor := mustInstant(t, "2026-01-01 09:00")

	// End date already behind the reference: the series is over.
	rule := Daily(1).WithEndDate("2026-01-03")
	if _, ok := NextOccurrence(anchor, rule, mustInstant(t, "2026-01-05 00:00")); ok {
		t.Error("expected no occurrence past the end date")
	}

	// An occurrence on the end date itself still counts.
	next, ok := NextOccurrence(anchor, rule, mustInstant(t, "2026-01-02 09:00"))
	if !ok {
		t.Fatal("expected the end-date occurrence")
	}
	if want := mustInstant(t, "2026-01-03 09:00"); !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	// But nothing after it.
	if _, ok := NextOccurrence(anchor, rule, next); ok {
		t.Error("expected the series to end after the end date")
	}
}

func TestNextOccurrence_ForwardProgress(t *testing.T) {
	anchor := mustInstant(t, "2024-01-31 06:45")
	rules := []Rule{
		Daily(1),
		Daily(4),
		EveryNDays(9),
		Weekly(time.Tuesday),
		OnDays(time.Saturday, time.Sunday),
		Monthly(31),
		Monthly(1),
		Yearly(),
		NthWeekdayOf(3, time.Wednesday),
		NthWeekdayOf(NthLast, time.Sunday),
	}
	references := []time.Time{
		mustInstant(t, "2023-06-01 00:00"), // before the anchor
		anchor,
		mustInstant(t, "2024-02-29 06:45"),
		mustInstant(t, "2025-12-31 23:59"),
	}

	for _, rule := range rules {
		for _, ref := range references {
			next, ok := NextOccurrence(anchor, rule, ref)
			if !ok {
				t.Errorf("rule %s: expected an occurrence after %v", rule.Type, ref)
				continue
			}
			if !next.After(ref) {
				t.Errorf("rule %s: occurrence %v not strictly after reference %v", rule.Type, next, ref)
			}
			if next.Hour() != anchor.Hour() || next.Minute() != anchor.Minute() {
				t.Errorf("rule %s: occurrence %v lost the anchor's time of day", rule.Type, next)
			}
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		year    int
		month   time.Month
		nth     int
		weekday time.Weekday
		day     int
		ok      bool
	}{
		{2026, time.January, 1, time.Monday, 5, true},
		{2026, time.January, 2, time.Monday, 12, true},
		{2026, time.January, 5, time.Friday, 30, true},
		{2026, time.January, NthLast, time.Friday, 30, true},
		{2026, time.February, 5, time.Friday, 0, false},
		{2026, time.February, NthLast, time.Friday, 27, true},
		{2026, time.January, 1, time.Sunday, 4, true},
		{2026, time.January, NthLast, time.Sunday, 25, true},
	}

	for _, tt := range tests {
		day, ok := nthWeekdayOfMonth(tt.year, tt.month, tt.nth, tt.weekday)
		if ok != tt.ok || day != tt.day {
			t.Errorf("nthWeekdayOfMonth(%d, %v, %d, %v) = (%d, %v), want (%d, %v)",
				tt.year, tt.month, tt.nth, tt.weekday, day, ok, tt.day, tt.ok)
		}
	}
}
