package service

import (
	"context"
	"time"

	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/domain/srs"
)

// masteredBox is the Leitner box at which a wrong answer counts as
// mastered in the ledger stats.
const masteredBox = 4

// WrongAnswerStats is the tally view over the full ledger.
type WrongAnswerStats struct {
	Total             int            `json:"total"`
	DueForRetestCount int            `json:"dueForRetestCount"`
	MasteredCount     int            `json:"masteredCount"`
	ErrorTypeCounts   map[string]int `json:"errorTypeCounts"`
	TopicCounts       map[string]int `json:"topicCounts"`
	SourceCounts      map[string]int `json:"sourceCounts"`
}

// AddWrongAnswer appends a missed question to the ledger. The record
// gets a fresh unique id, starts in box 1, and comes due for retest 24
// hours after creation.
func (s *Service) AddWrongAnswer(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerRecord, error) {
	var rec *domain.WrongAnswerRecord

	err := s.update(ctx, func(doc *domain.Document) error {
		rec = domain.NewWrongAnswerRecord(entry, s.now())
		doc.WrongAnswerLog = append(doc.WrongAnswerLog, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// WrongAnswersDue returns every ledger record whose retest is due.
func (s *Service) WrongAnswersDue(ctx context.Context) ([]*domain.WrongAnswerRecord, error) {
	var out []*domain.WrongAnswerRecord

	err := s.view(ctx, func(doc *domain.Document) error {
		out = wrongAnswersDue(doc, s.now())
		return nil
	})
	return out, err
}

// wrongAnswersDue filters the ledger for records due at the given time,
// preserving ledger order.
func wrongAnswersDue(doc *domain.Document, now time.Time) []*domain.WrongAnswerRecord {
	out := []*domain.WrongAnswerRecord{}
	for _, rec := range doc.WrongAnswerLog {
		if !rec.SRNextDueAt.After(now) {
			out = append(out, rec)
		}
	}
	return out
}

// RetestWrongAnswer applies a retest outcome to a ledger record:
// advances or resets its box, reschedules its next due time, and appends
// to its retest history. An unknown id returns nil without side effects.
func (s *Service) RetestWrongAnswer(ctx context.Context, id string, wasCorrect bool) (*domain.WrongAnswerRecord, error) {
	var out *domain.WrongAnswerRecord

	err := s.update(ctx, func(doc *domain.Document) error {
		for _, rec := range doc.WrongAnswerLog {
			if rec.ID != id {
				continue
			}

			now := s.now()
			rec.RetestHistory = append(rec.RetestHistory, domain.RetestResult{
				Timestamp:  now,
				WasCorrect: wasCorrect,
			})
			rec.SRBox = srs.Advance(rec.SRBox, wasCorrect)
			rec.SRNextDueAt = srs.NextDue(now, rec.SRBox, s.params)

			out = rec
			return nil
		}
		return errNoChange
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WrongAnswerStats tallies the full ledger. Empty source values are
// excluded from sourceCounts; empty error types get their own bucket.
func (s *Service) WrongAnswerStats(ctx context.Context) (WrongAnswerStats, error) {
	var out WrongAnswerStats

	err := s.view(ctx, func(doc *domain.Document) error {
		out = tallyWrongAnswers(doc, s.now())
		return nil
	})
	return out, err
}

func tallyWrongAnswers(doc *domain.Document, now time.Time) WrongAnswerStats {
	stats := WrongAnswerStats{
		Total:           len(doc.WrongAnswerLog),
		ErrorTypeCounts: map[string]int{},
		TopicCounts:     map[string]int{},
		SourceCounts:    map[string]int{},
	}

	for _, rec := range doc.WrongAnswerLog {
		if !rec.SRNextDueAt.After(now) {
			stats.DueForRetestCount++
		}
		if rec.SRBox >= masteredBox {
			stats.MasteredCount++
		}
		stats.ErrorTypeCounts[rec.ErrorType]++
		stats.TopicCounts[rec.Topic]++
		if rec.Source != "" {
			stats.SourceCounts[rec.Source]++
		}
	}
	return stats
}
