package service

import (
	"context"
	"time"

	"github.com/studykit/practicelog/internal/domain"
)

// streakScanDays bounds the backward scan when computing the streak.
const streakScanDays = 365

// defaultDailyLogDays is the window returned by DailyLog when the caller
// does not specify one.
const defaultDailyLogDays = 30

// SessionHistory returns the sessions recorded within the last N days,
// in insertion order.
func (s *Service) SessionHistory(ctx context.Context, days int) ([]domain.SessionRecord, error) {
	var out []domain.SessionRecord

	err := s.view(ctx, func(doc *domain.Document) error {
		cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
		out = []domain.SessionRecord{}
		for _, session := range doc.Sessions {
			if !session.Timestamp.Before(cutoff) {
				out = append(out, session)
			}
		}
		return nil
	})
	return out, err
}

// DailyLog returns one entry per calendar day for the last N days
// including today (local dates). Days without activity are present with
// zero values. A non-positive N defaults to 30 days.
func (s *Service) DailyLog(ctx context.Context, days int) (map[string]domain.DailyRecord, error) {
	if days <= 0 {
		days = defaultDailyLogDays
	}

	var out map[string]domain.DailyRecord

	err := s.view(ctx, func(doc *domain.Document) error {
		now := s.now()
		out = make(map[string]domain.DailyRecord, days)
		for i := 0; i < days; i++ {
			key := domain.DayKey(now.AddDate(0, 0, -i))
			if rec, ok := doc.DailyLog[key]; ok {
				out[key] = *rec
				continue
			}
			out[key] = domain.DailyRecord{Projects: []string{}}
		}
		return nil
	})
	return out, err
}

// Streak counts the consecutive calendar days ending today with recorded
// activity. Today having no items yet does not break the streak, since
// the current day may be in progress; any other zero-item day stops the
// scan.
func (s *Service) Streak(ctx context.Context) (int, error) {
	var streak int

	err := s.view(ctx, func(doc *domain.Document) error {
		streak = computeStreak(doc, s.now())
		return nil
	})
	return streak, err
}

func computeStreak(doc *domain.Document, now time.Time) int {
	streak := 0
	for i := 0; i < streakScanDays; i++ {
		key := domain.DayKey(now.AddDate(0, 0, -i))
		if rec, ok := doc.DailyLog[key]; ok && rec.Items > 0 {
			streak++
			continue
		}
		if i == 0 {
			// Today is still in progress.
			continue
		}
		break
	}
	return streak
}
