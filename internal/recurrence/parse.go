package recurrence

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayPattern matches a weekday name or its common abbreviation. Longer
// alternatives come first so full names win over their prefixes.
const dayPattern = `(?:wednesday|thursday|saturday|tuesday|monday|friday|sunday|thurs|tues|thur|wed|thu|tue|mon|fri|sat|sun)`

// The pattern chain, most specific first. Ordering is load-bearing: an
// explicit day list must win over the generic weekly branch, and an
// ordinal-weekday pair over the generic monthly branch.
var (
	everyNDaysRx  = regexp.MustCompile(`\bevery\s+(\d+)\s+days?\b`)
	everyDayRx    = regexp.MustCompile(`\bevery\s+day\b|\bdaily\b`)
	weekdayWordRx = regexp.MustCompile(`\bweekdays?\b`)
	weekendRx     = regexp.MustCompile(`\bweekends?\b`)
	everyDayListRx = regexp.MustCompile(
		`\bevery\s+(` + dayPattern + `(?:(?:\s*,\s*(?:and\s+)?|\s+and\s+|\s+)` + dayPattern + `)*)\b`)
	nthWeekdayRx = regexp.MustCompile(
		`\b(first|second|third|fourth|fifth|last|1st|2nd|3rd|4th|5th)\s+(` + dayPattern + `)\b`)
	dayTokenRx = regexp.MustCompile(dayPattern)
	weeklyRx   = regexp.MustCompile(`\bevery\s+week\b|\bweekly\b`)
	monthlyRx  = regexp.MustCompile(`\bevery\s+month\b|\bmonthly\b`)
	yearlyRx   = regexp.MustCompile(`\bevery\s+year\b|\byearly\b|\bannually\b`)
)

var ordinalValues = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
	"last": NthLast,
}

// Parse extracts a recurrence rule from free text, best effort. It is
// case-insensitive and returns false when no recognized pattern matches;
// callers fall back to a none rule or ask the user, never fail hard.
//
// Generic "weekly" and "monthly" phrases name no day, so the returned rule
// carries an empty day set / zero month day for the caller to resolve from
// the reminder's anchor.
func Parse(text string) (Rule, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return Rule{}, false
	}

	if m := everyNDaysRx.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			n = 1
		}
		return EveryNDays(n), true
	}
	if everyDayRx.MatchString(s) {
		return Daily(1), true
	}
	if weekdayWordRx.MatchString(s) {
		return OnDays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday), true
	}
	if weekendRx.MatchString(s) {
		return OnDays(time.Saturday, time.Sunday), true
	}
	if m := everyDayListRx.FindStringSubmatch(s); m != nil {
		days := parseDayTokens(m[1])
		switch {
		case len(days) == 1:
			return Weekly(days[0]), true
		case len(days) > 1:
			return OnDays(days...), true
		}
	}
	if m := nthWeekdayRx.FindStringSubmatch(s); m != nil {
		wd, ok := weekdayFromName(m[2])
		if ok {
			return NthWeekdayOf(ordinalValues[m[1]], wd), true
		}
	}
	if weeklyRx.MatchString(s) {
		return Rule{Type: TypeWeekly, Interval: 1}, true
	}
	if monthlyRx.MatchString(s) {
		return Monthly(0), true
	}
	if yearlyRx.MatchString(s) {
		return Yearly(), true
	}

	return Rule{}, false
}

func parseDayTokens(s string) []time.Weekday {
	var days []time.Weekday
	for _, token := range dayTokenRx.FindAllString(s, -1) {
		if wd, ok := weekdayFromName(token); ok {
			days = append(days, wd)
		}
	}
	return normalizeWeekdays(days)
}

func weekdayFromName(name string) (time.Weekday, bool) {
	if len(name) < 3 {
		return 0, false
	}
	switch strings.ToLower(name)[:3] {
	case "sun":
		return time.Sunday, true
	case "mon":
		return time.Monday, true
	case "tue":
		return time.Tuesday, true
	case "wed":
		return time.Wednesday, true
	case "thu":
		return time.Thursday, true
	case "fri":
		return time.Friday, true
	case "sat":
		return time.Saturday, true
	}
	return 0, false
}
