package service

import (
	"context"
	"sort"
	"time"

	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/domain/srs"
)

// DueItem is one tracked item whose review interval has elapsed.
type DueItem struct {
	Key           string    `json:"key"`
	Box           int       `json:"box"`
	LastSeenAt    time.Time `json:"lastSeenAt"`
	DaysSinceSeen float64   `json:"daysSinceSeen"`
	TimesSeen     int       `json:"timesSeen"`
	DaysOverdue   float64   `json:"daysOverdue"`
}

// TrackExposure records one exposure to an item key, creating the
// tracking record on first sight. A correct answer advances the Leitner
// box; an incorrect answer resets it. Returns the updated record.
func (s *Service) TrackExposure(ctx context.Context, itemKey string, wasCorrect bool) (domain.ExposureRecord, error) {
	var out domain.ExposureRecord

	err := s.update(ctx, func(doc *domain.Document) error {
		rec, ok := doc.Exposure[itemKey]
		if !ok {
			rec = &domain.ExposureRecord{Box: srs.MinBox}
			doc.Exposure[itemKey] = rec
		}

		rec.TimesSeen++
		rec.LastSeenAt = s.now()
		rec.Box = srs.Advance(rec.Box, wasCorrect)

		out = *rec
		return nil
	})
	return out, err
}

// DueItems returns the tracked items due for review, ordered by
// ascending box (lower box first) and descending days overdue within a
// box. A positive limit truncates the result; zero or negative means
// unlimited.
func (s *Service) DueItems(ctx context.Context, limit int) ([]DueItem, error) {
	var out []DueItem

	err := s.view(ctx, func(doc *domain.Document) error {
		out = s.dueItems(doc, limit)
		return nil
	})
	return out, err
}

// dueItems derives the due list from a loaded document.
func (s *Service) dueItems(doc *domain.Document, limit int) []DueItem {
	now := s.now()

	out := []DueItem{}
	for key, rec := range doc.Exposure {
		if !srs.IsDue(rec.LastSeenAt, rec.Box, now, s.params) {
			continue
		}
		out = append(out, DueItem{
			Key:           key,
			Box:           rec.Box,
			LastSeenAt:    rec.LastSeenAt,
			DaysSinceSeen: srs.DaysSince(rec.LastSeenAt, now),
			TimesSeen:     rec.TimesSeen,
			DaysOverdue:   srs.DaysOverdue(rec.LastSeenAt, rec.Box, now, s.params),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Box != out[j].Box {
			return out[i].Box < out[j].Box
		}
		if out[i].DaysOverdue != out[j].DaysOverdue {
			return out[i].DaysOverdue > out[j].DaysOverdue
		}
		return out[i].Key < out[j].Key
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ExposureCount returns the number of distinct tracked item keys.
func (s *Service) ExposureCount(ctx context.Context) (int, error) {
	var count int

	err := s.view(ctx, func(doc *domain.Document) error {
		count = len(doc.Exposure)
		return nil
	})
	return count, err
}
