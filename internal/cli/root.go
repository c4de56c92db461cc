package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/remindapp/remind/internal/recurrence"
	"github.com/remindapp/remind/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// ParseWeekday parses a single weekday name or number (0=Sunday, 6=Saturday)
func ParseWeekday(s string) (time.Weekday, error) {
	weekdays, err := ParseWeekdays(s)
	if err != nil {
		return 0, err
	}
	if len(weekdays) != 1 {
		return 0, fmt.Errorf("expected a single weekday, got %q", s)
	}
	return weekdays[0], nil
}

// ParseWeekdays parses a comma-separated list of weekdays
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			weekdays = append(weekdays, wd)
		} else {
			// Try parsing as number (0=Sunday, 6=Saturday)
			num, err := strconv.Atoi(part)
			if err == nil && num >= 0 && num <= 6 {
				weekdays = append(weekdays, time.Weekday(num))
			} else {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
		}
	}

	return weekdays, nil
}

// ResolveRule fills in the parts of a rule that depend on the anchor date:
// a generic weekly rule repeats on the anchor's weekday, a generic monthly
// rule repeats on the anchor's day of month.
func ResolveRule(rule recurrence.Rule, anchor time.Time) recurrence.Rule {
	switch rule.Type {
	case recurrence.TypeWeekly, recurrence.TypeSpecificDays:
		if len(rule.Weekdays) == 0 {
			rule.Weekdays = []time.Weekday{anchor.Weekday()}
		}
	case recurrence.TypeMonthly:
		if rule.MonthDay == 0 {
			rule.MonthDay = anchor.Day()
		}
	}
	return rule
}
