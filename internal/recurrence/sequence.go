package recurrence

import "time"

// Occurrences produces up to count occurrences of the rule, starting with
// the anchor itself and strictly increasing from there. The slice is shorter
// than count when the series ends first (end date reached, or a rule that
// never fires again). A none rule yields exactly the anchor: a one-shot
// reminder still happens once.
//
// The function is pure; calling it twice with the same arguments produces
// the same slice.
func Occurrences(anchor time.Time, rule Rule, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	if rule.IsNone() {
		return []time.Time{anchor}
	}

	out := make([]time.Time, 0, count)
	current := anchor
	for {
		out = append(out, current)
		if len(out) == count {
			return out
		}
		next, ok := NextOccurrence(anchor, rule, current)
		if !ok {
			return out
		}
		current = next
	}
}
