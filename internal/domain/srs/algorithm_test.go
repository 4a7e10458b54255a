package srs

import (
	"testing"
	"time"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		box        int
		wasCorrect bool
		expected   int
	}{
		{
			name:       "correct answer advances one box",
			box:        1,
			wasCorrect: true,
			expected:   2,
		},
		{
			name:       "correct answer caps at the top box",
			box:        5,
			wasCorrect: true,
			expected:   5,
		},
		{
			name:       "incorrect answer resets to box 1",
			box:        4,
			wasCorrect: false,
			expected:   1,
		},
		{
			name:       "incorrect answer from box 1 stays at box 1",
			box:        1,
			wasCorrect: false,
			expected:   1,
		},
		{
			name:       "out-of-range box is clamped before advancing",
			box:        0,
			wasCorrect: true,
			expected:   2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(tc.box, tc.wasCorrect)
			if got != tc.expected {
				t.Errorf("Expected box %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestAdvanceFiveCorrectReachesTopBox(t *testing.T) {
	t.Parallel()

	box := MinBox
	for i := 0; i < 5; i++ {
		box = Advance(box, true)
	}
	if box != MaxBox {
		t.Errorf("Expected box %d after five correct answers, got %d", MaxBox, box)
	}

	box = Advance(box, false)
	if box != MinBox {
		t.Errorf("Expected reset to box %d after an incorrect answer, got %d", MinBox, box)
	}
}

func TestInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		box      int
		expected time.Duration
	}{
		{name: "box 1 reviews after one day", box: 1, expected: 24 * time.Hour},
		{name: "box 2 reviews after three days", box: 2, expected: 3 * 24 * time.Hour},
		{name: "box 3 reviews after seven days", box: 3, expected: 7 * 24 * time.Hour},
		{name: "box 4 reviews after fourteen days", box: 4, expected: 14 * 24 * time.Hour},
		{name: "box 5 reviews after thirty days", box: 5, expected: 30 * 24 * time.Hour},
		{name: "box below range falls back to one day", box: 0, expected: 24 * time.Hour},
		{name: "box above range falls back to one day", box: 9, expected: 24 * time.Hour},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := params.Interval(tc.box); got != tc.expected {
				t.Errorf("Expected interval %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestIsDue(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		lastSeen time.Time
		box      int
		expected bool
	}{
		{
			name:     "box 1 seen two days ago is due",
			lastSeen: now.Add(-48 * time.Hour),
			box:      1,
			expected: true,
		},
		{
			name:     "box 1 seen twelve hours ago is not due",
			lastSeen: now.Add(-12 * time.Hour),
			box:      1,
			expected: false,
		},
		{
			name:     "exactly at the interval boundary is due",
			lastSeen: now.Add(-24 * time.Hour),
			box:      1,
			expected: true,
		},
		{
			name:     "box 5 seen twenty days ago is not due",
			lastSeen: now.Add(-20 * 24 * time.Hour),
			box:      5,
			expected: false,
		},
		{
			name:     "box 5 seen thirty-one days ago is due",
			lastSeen: now.Add(-31 * 24 * time.Hour),
			box:      5,
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDue(tc.lastSeen, tc.box, now, params); got != tc.expected {
				t.Errorf("Expected IsDue=%v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Box 1 item seen 3 days ago: due after 1 day, so 2 days overdue.
	got := DaysOverdue(now.Add(-72*time.Hour), 1, now, params)
	if got < 1.99 || got > 2.01 {
		t.Errorf("Expected roughly 2 days overdue, got %f", got)
	}

	// Not yet due items report zero, not a negative number.
	if got := DaysOverdue(now.Add(-1*time.Hour), 1, now, params); got != 0 {
		t.Errorf("Expected 0 days overdue for a fresh item, got %f", got)
	}
}

func TestDaysSince(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := DaysSince(now.Add(-36*time.Hour), now); got != 1.5 {
		t.Errorf("Expected 1.5 days since, got %f", got)
	}
}
