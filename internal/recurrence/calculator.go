package recurrence

import (
	"time"

	"github.com/remindapp/remind/internal/constants"
)

// weeklyScanWindow bounds the forward scan for weekly rules. Any non-empty
// weekday set matches within 7 days; 14 leaves headroom for the strictly-after
// check on the reference day itself.
const weeklyScanWindow = 14

// NextOccurrence computes the first occurrence of rule strictly after the
// given instant. The anchor supplies the wall-clock time carried onto every
// occurrence (and, for anchor-relative rules, the date the series counts
// from). The second return value is false when the rule produces no further
// occurrences: a none rule, an exhausted end date, or an empty weekly set.
//
// The reference may be any instant, including one before the anchor. When a
// result is returned it is always strictly after the reference, so callers
// can feed occurrences back in as the next reference without risk of
// looping.
func NextOccurrence(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	if rule.IsNone() {
		return time.Time{}, false
	}

	end, hasEnd := ruleEnd(rule, after.Location())
	if hasEnd && end.Before(after) {
		return time.Time{}, false
	}

	var next time.Time
	var ok bool
	switch rule.Type {
	case TypeDaily:
		next, ok = nextDaily(anchor, rule, after)
	case TypeWeekly, TypeSpecificDays:
		next, ok = nextWeekly(anchor, rule, after)
	case TypeMonthly:
		next, ok = nextMonthly(anchor, rule, after)
	case TypeYearly:
		next, ok = nextYearly(anchor, after)
	case TypeCustomDays:
		next, ok = nextEveryNDays(anchor, rule, after)
	case TypeNthWeekday:
		next, ok = nextNthWeekday(anchor, rule, after)
	default:
		return time.Time{}, false
	}

	if !ok {
		return time.Time{}, false
	}
	if hasEnd && next.After(end) {
		return time.Time{}, false
	}
	return next, true
}

// nextDaily steps from the reference instant: today at the anchor's clock if
// that is still ahead, otherwise interval days later. Note the series is not
// phase-aligned with the anchor date for intervals above 1; EveryNDays
// provides anchor-aligned strides.
func nextDaily(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	candidate := atClock(after, anchor)
	if !candidate.After(after) {
		candidate = candidate.AddDate(0, 0, clampInterval(rule.Interval))
	}
	return candidate, true
}

// nextWeekly scans forward day by day, starting on the reference day, for
// the first date in the weekday set whose occurrence lands strictly after
// the reference.
func nextWeekly(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	if len(rule.Weekdays) == 0 {
		return time.Time{}, false
	}
	for i := 0; i < weeklyScanWindow; i++ {
		day := after.AddDate(0, 0, i)
		if !rule.ContainsWeekday(day.Weekday()) {
			continue
		}
		candidate := atClock(day, anchor)
		if candidate.After(after) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// nextMonthly targets the rule's day-of-month in the reference's month,
// clamped to the last day of shorter months, advancing month by month until
// the candidate clears the reference. A MonthDay of 0 resolves to the
// anchor's day.
func nextMonthly(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	day := rule.MonthDay
	if day == 0 {
		day = anchor.Day()
	}

	year, month := after.Year(), after.Month()
	for i := 0; i < 13; i++ {
		candidate := onDay(year, month, clampDay(day, year, month), anchor, after.Location())
		if candidate.After(after) {
			return candidate, true
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return time.Time{}, false
}

// nextYearly reuses the anchor's month and day in the reference's year,
// advancing a year when that has already passed. Feb 29 anchors clamp to
// Feb 28 in non-leap years.
func nextYearly(anchor time.Time, after time.Time) (time.Time, bool) {
	for i := 0; i < 2; i++ {
		year := after.Year() + i
		day := clampDay(anchor.Day(), year, anchor.Month())
		candidate := onDay(year, anchor.Month(), day, anchor, after.Location())
		if candidate.After(after) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// nextEveryNDays walks forward from the anchor date in fixed interval-day
// strides, so the series stays phase-aligned with the anchor no matter
// where the reference falls.
func nextEveryNDays(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	interval := clampInterval(rule.Interval)
	candidate := atClock(anchor, anchor)

	// Fast-forward most of the distance arithmetically, then settle with
	// date-based steps to stay exact across leap days.
	if diff := after.Sub(candidate); diff > 0 {
		steps := int(diff.Hours()) / 24 / interval
		if steps > 0 {
			candidate = candidate.AddDate(0, 0, steps*interval)
		}
	}
	for !candidate.After(after) {
		candidate = candidate.AddDate(0, 0, interval)
	}
	return candidate, true
}

// nextNthWeekday finds the nth (or last) matching weekday of the reference's
// month, rolling into following months until the candidate clears the
// reference. Months lacking a 5th occurrence are skipped; within 13 months
// every nth/weekday combination occurs.
func nextNthWeekday(anchor time.Time, rule Rule, after time.Time) (time.Time, bool) {
	year, month := after.Year(), after.Month()
	for i := 0; i < 13; i++ {
		if day, ok := nthWeekdayOfMonth(year, month, rule.Nth, rule.Weekday); ok {
			candidate := onDay(year, month, day, anchor, after.Location())
			if candidate.After(after) {
				return candidate, true
			}
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return time.Time{}, false
}

// nthWeekdayOfMonth returns the day-of-month of the nth occurrence of the
// weekday, or false when the month has no nth occurrence. nth == NthLast
// selects the final occurrence.
func nthWeekdayOfMonth(year int, month time.Month, nth int, weekday time.Weekday) (int, bool) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	firstMatch := 1 + (int(weekday)-int(first)+7)%7
	last := daysInMonth(year, month)

	if nth == NthLast {
		return firstMatch + 7*((last-firstMatch)/7), true
	}
	day := firstMatch + 7*(nth-1)
	if day > last {
		return 0, false
	}
	return day, true
}

// atClock places the anchor's wall-clock time onto the given date.
func atClock(date, anchor time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		anchor.Hour(), anchor.Minute(), 0, 0, date.Location())
}

// onDay builds an occurrence on a specific calendar day at the anchor's
// wall-clock time.
func onDay(year int, month time.Month, day int, anchor time.Time, loc *time.Location) time.Time {
	return time.Date(year, month, day, anchor.Hour(), anchor.Minute(), 0, 0, loc)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(day, year int, month time.Month) int {
	if last := daysInMonth(year, month); day > last {
		return last
	}
	return day
}

// ruleEnd returns the final instant covered by the rule's end date: the end
// of that calendar day, so an occurrence on the end date itself still
// counts. Unparseable end dates are treated as unset; Validate rejects them
// at construction.
func ruleEnd(rule Rule, loc *time.Location) (time.Time, bool) {
	if rule.EndDate == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(constants.DateFormat, rule.EndDate)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day()+1, 0, 0, 0, 0, loc).Add(-time.Second), true
}
