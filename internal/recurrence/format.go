package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// Describe renders a rule as a human-readable phrase. It is total: every
// constructible rule has a rendering, including degenerate ones like a
// weekly rule with an empty day set.
func Describe(rule Rule) string {
	switch rule.Type {
	case TypeNone, "":
		return "Does not repeat"
	case TypeDaily, TypeCustomDays:
		if rule.Interval > 1 {
			return fmt.Sprintf("Every %d days", rule.Interval)
		}
		return "Every day"
	case TypeWeekly, TypeSpecificDays:
		return describeWeekdays(rule.Weekdays)
	case TypeMonthly:
		if rule.MonthDay >= 1 {
			return fmt.Sprintf("Monthly on the %s", ordinal(rule.MonthDay))
		}
		return "Every month"
	case TypeYearly:
		return "Every year"
	case TypeNthWeekday:
		if rule.Nth == NthLast {
			return fmt.Sprintf("Every last %s of the month", rule.Weekday)
		}
		return fmt.Sprintf("Every %s %s of the month", ordinal(rule.Nth), rule.Weekday)
	default:
		return "Custom schedule"
	}
}

func describeWeekdays(days []time.Weekday) string {
	switch {
	case len(days) == 0:
		return "Never"
	case len(days) == 7:
		return "Every day"
	case isWeekdaySet(days, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday):
		return "Every weekday"
	case isWeekdaySet(days, time.Sunday, time.Saturday):
		return "Every weekend"
	case len(days) == 1:
		return fmt.Sprintf("Every %s", days[0])
	}

	names := make([]string, len(days))
	for i, d := range normalizeWeekdays(days) {
		names[i] = d.String()
	}
	return fmt.Sprintf("Every %s", strings.Join(names, ", "))
}

func isWeekdaySet(days []time.Weekday, want ...time.Weekday) bool {
	if len(days) != len(want) {
		return false
	}
	normalized := normalizeWeekdays(days)
	for i, d := range normalizeWeekdays(want) {
		if normalized[i] != d {
			return false
		}
	}
	return true
}

// ordinal renders 1 -> "1st", 2 -> "2nd", 11 -> "11th", 23 -> "23rd", etc.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
