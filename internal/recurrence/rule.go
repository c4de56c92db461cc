package recurrence

import (
	"fmt"
	"sort"
	"time"

	"github.com/remindapp/remind/internal/constants"
)

// Type identifies one of the supported recurrence semantics. The set is
// closed: every consumer (calculator, formatter, storage) switches
// exhaustively over these values.
type Type string

const (
	TypeNone         Type = "none"
	TypeDaily        Type = "daily"
	TypeWeekly       Type = "weekly"
	TypeMonthly      Type = "monthly"
	TypeYearly       Type = "yearly"
	TypeCustomDays   Type = "custom_days"
	TypeNthWeekday   Type = "nth_weekday"
	TypeSpecificDays Type = "specific_days"
)

// Nth value denoting the last matching weekday of a month.
const NthLast = -1

// Rule describes how a reminder repeats. Rules are immutable values:
// construct them with the helpers below, never mutate one in place.
// Only the fields relevant to the rule's Type carry meaning; the rest stay
// at their zero value so the JSON form round-trips losslessly.
//
// Count is modeled for compatibility with stored rules but is not consulted
// when computing occurrences; callers that need a bounded series cap the
// preview length instead.
type Rule struct {
	Type     Type           `json:"type"`
	Interval int            `json:"interval,omitempty"`
	Weekdays []time.Weekday `json:"weekdays,omitempty"`
	MonthDay int            `json:"month_day,omitempty"`
	Nth      int            `json:"nth,omitempty"`
	Weekday  time.Weekday   `json:"weekday,omitempty"`
	EndDate  string         `json:"end_date,omitempty"` // YYYY-MM-DD
	Count    int            `json:"count,omitempty"`
}

// None returns the no-recurrence rule.
func None() Rule {
	return Rule{Type: TypeNone}
}

// Daily returns a rule recurring every interval days, stepping from the
// reference instant. Intervals below 1 are coerced to 1.
func Daily(interval int) Rule {
	return Rule{Type: TypeDaily, Interval: clampInterval(interval)}
}

// EveryNDays returns a rule recurring every interval days by repeated
// addition from the anchor date. Intervals below 1 are coerced to 1.
func EveryNDays(interval int) Rule {
	return Rule{Type: TypeCustomDays, Interval: clampInterval(interval)}
}

// Weekly returns a rule recurring on the given weekdays. An empty set is
// permitted but yields no occurrences; callers typically resolve an empty
// set to the anchor's weekday before storing the rule.
func Weekly(days ...time.Weekday) Rule {
	return Rule{Type: TypeWeekly, Interval: 1, Weekdays: normalizeWeekdays(days)}
}

// OnDays returns a rule recurring on a fixed weekly set of days. It behaves
// identically to Weekly when computing occurrences; the distinct type
// records that the set came from a named group ("weekdays", "weekends") or
// an explicit day list.
func OnDays(days ...time.Weekday) Rule {
	return Rule{Type: TypeSpecificDays, Weekdays: normalizeWeekdays(days)}
}

// Monthly returns a rule recurring on the given day of each month, clamped
// to the last day of shorter months. A day of 0 means "resolve from the
// anchor's day-of-month"; the parser produces it for generic "monthly"
// phrases and callers normally fill it in before storing the rule.
func Monthly(day int) Rule {
	return Rule{Type: TypeMonthly, MonthDay: day}
}

// Yearly returns a rule recurring on the anchor's month and day each year.
func Yearly() Rule {
	return Rule{Type: TypeYearly}
}

// NthWeekdayOf returns a rule recurring monthly on the nth occurrence of the
// given weekday. nth is 1 through 5, or NthLast for the final occurrence in
// the month regardless of month length.
func NthWeekdayOf(nth int, weekday time.Weekday) Rule {
	return Rule{Type: TypeNthWeekday, Nth: nth, Weekday: weekday}
}

// WithEndDate returns a copy of the rule bounded by the given date
// (YYYY-MM-DD, inclusive).
func (r Rule) WithEndDate(date string) Rule {
	r.EndDate = date
	return r
}

// WithCount returns a copy of the rule carrying an occurrence count. The
// count is stored but not enforced by the calculator (see Rule doc).
func (r Rule) WithCount(count int) Rule {
	r.Count = count
	return r
}

// IsNone reports whether the rule describes no recurrence. The zero Rule
// counts as none so an unset field behaves like an explicit one.
func (r Rule) IsNone() bool {
	return r.Type == TypeNone || r.Type == ""
}

// Validate checks the rule's parameters. It is the single gate for
// malformed rules: the calculator and formatter assume validated input.
func (r Rule) Validate() error {
	switch r.Type {
	case TypeNone, "":
	case TypeDaily, TypeCustomDays:
		if r.Interval < 1 {
			return fmt.Errorf("recurrence interval must be at least 1, got %d", r.Interval)
		}
	case TypeWeekly, TypeSpecificDays:
		for _, wd := range r.Weekdays {
			if wd < time.Sunday || wd > time.Saturday {
				return fmt.Errorf("invalid weekday %d", wd)
			}
		}
	case TypeMonthly:
		if r.MonthDay < 0 || r.MonthDay > 31 {
			return fmt.Errorf("day of month must be between 1 and 31, got %d", r.MonthDay)
		}
	case TypeYearly:
	case TypeNthWeekday:
		if r.Nth != NthLast && (r.Nth < 1 || r.Nth > 5) {
			return fmt.Errorf("nth weekday occurrence must be 1-5 or -1 (last), got %d", r.Nth)
		}
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return fmt.Errorf("invalid weekday %d", r.Weekday)
		}
	default:
		return fmt.Errorf("unknown recurrence type: %s", r.Type)
	}

	if r.EndDate != "" {
		if _, err := time.Parse(constants.DateFormat, r.EndDate); err != nil {
			return fmt.Errorf("invalid end date %q: %w", r.EndDate, err)
		}
	}
	if r.Count < 0 {
		return fmt.Errorf("occurrence count cannot be negative, got %d", r.Count)
	}

	return nil
}

// ContainsWeekday reports whether the rule's weekly set includes the day.
func (r Rule) ContainsWeekday(day time.Weekday) bool {
	for _, wd := range r.Weekdays {
		if wd == day {
			return true
		}
	}
	return false
}

func clampInterval(interval int) int {
	if interval < 1 {
		return 1
	}
	return interval
}

// normalizeWeekdays sorts the set and drops duplicates so that rules built
// from equivalent inputs compare and serialize identically.
func normalizeWeekdays(days []time.Weekday) []time.Weekday {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
