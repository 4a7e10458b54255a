// Package srs implements the Leitner-box spaced-repetition scheduling
// used for practiced items and wrong-answer retests. All functions are
// pure and take time inputs explicitly so callers control the clock.
package srs

import "time"

// Box bounds for the Leitner scheduler.
const (
	MinBox = 1
	MaxBox = 5
)

// Params holds the configuration for the Leitner scheduler.
type Params struct {
	// IntervalDays maps box n to IntervalDays[n-1] days between reviews.
	IntervalDays []int
}

// NewDefaultParams returns the standard five-box interval ladder.
func NewDefaultParams() *Params {
	return &Params{
		IntervalDays: []int{1, 3, 7, 14, 30},
	}
}

// Interval returns the review interval for a box. Out-of-range boxes
// fall back to the shortest interval.
func (p *Params) Interval(box int) time.Duration {
	days := 1
	if box >= MinBox && box <= len(p.IntervalDays) {
		days = p.IntervalDays[box-1]
	}
	return time.Duration(days) * 24 * time.Hour
}
