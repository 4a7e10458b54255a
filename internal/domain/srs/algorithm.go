package srs

import "time"

// Advance returns the next Leitner box after an answer. A correct answer
// moves the item up one box, capped at MaxBox; an incorrect answer drops
// it back to MinBox. Out-of-range inputs are clamped before advancing.
func Advance(box int, wasCorrect bool) int {
	if !wasCorrect {
		return MinBox
	}
	if box < MinBox {
		box = MinBox
	}
	if box >= MaxBox {
		return MaxBox
	}
	return box + 1
}

// NextDue returns the next review time for an item last seen at lastSeen
// in the given box.
func NextDue(lastSeen time.Time, box int, params *Params) time.Time {
	return lastSeen.Add(params.Interval(box))
}

// IsDue reports whether an item is due: the time elapsed since it was
// last seen meets or exceeds its box's interval.
func IsDue(lastSeen time.Time, box int, now time.Time, params *Params) bool {
	return !now.Before(NextDue(lastSeen, box, params))
}

// DaysSince returns the fractional days elapsed between lastSeen and now.
func DaysSince(lastSeen, now time.Time) float64 {
	return now.Sub(lastSeen).Hours() / 24
}

// DaysOverdue returns the fractional days by which an item has passed its
// due time. Items not yet due report zero.
func DaysOverdue(lastSeen time.Time, box int, now time.Time, params *Params) float64 {
	overdue := now.Sub(NextDue(lastSeen, box, params)).Hours() / 24
	if overdue < 0 {
		return 0
	}
	return overdue
}
