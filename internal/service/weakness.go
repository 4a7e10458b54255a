package service

import (
	"context"
	"sort"
	"time"

	"github.com/studykit/practicelog/internal/domain"
)

// Weakness thresholds. A topic is reported weak below the score cutoff
// once it has enough attempts; a tool flags a topic when its own
// accuracy drops below the flag cutoff with enough attempts.
const (
	weakScoreCutoff   = 80
	weakMinAttempts   = 3
	flagAccuracyLimit = 75
	flagMinAttempts   = 3
)

// WeaknessSummary is the dashboard view of one weak topic, weakest first.
type WeaknessSummary struct {
	Topic          string   `json:"topic"`
	DisplayName    string   `json:"displayName"`
	Color          string   `json:"color"`
	Score          int      `json:"score"`
	FlaggedByIDs   []string `json:"flaggedByIds"`
	FlaggedByNames []string `json:"flaggedByNames"`
}

// recomputeWeakness rebuilds a topic's weakness record from its
// performance records. Always a full recomputation — incremental
// adjustment would drift.
func recomputeWeakness(doc *domain.Document, topic string, now time.Time) {
	var totalCorrect, totalAttempts int
	var flaggedBy []string

	for tool, rec := range doc.Performance[topic] {
		totalCorrect += rec.Correct
		totalAttempts += rec.Total
		if acc, ok := rec.Accuracy(); ok && rec.Total >= flagMinAttempts && acc < flagAccuracyLimit {
			flaggedBy = append(flaggedBy, tool)
		}
	}
	sort.Strings(flaggedBy)
	if flaggedBy == nil {
		flaggedBy = []string{}
	}

	score := 100
	if totalAttempts > 0 {
		score = domain.RoundPercent(totalCorrect, totalAttempts)
	}

	doc.Weakness[topic] = &domain.WeaknessRecord{
		Score:         score,
		FlaggedBy:     flaggedBy,
		LastUpdatedAt: now,
		TotalAttempts: totalAttempts,
	}
}

// Weaknesses returns the topics currently considered weak, sorted
// ascending by score (weakest first) with topic id as the tie-breaker.
func (s *Service) Weaknesses(ctx context.Context) ([]WeaknessSummary, error) {
	var out []WeaknessSummary

	err := s.view(ctx, func(doc *domain.Document) error {
		out = weaknessSummaries(doc)
		return nil
	})
	return out, err
}

// weaknessSummaries derives the weak-topic list from a loaded document.
func weaknessSummaries(doc *domain.Document) []WeaknessSummary {
	out := []WeaknessSummary{}
	for topic, rec := range doc.Weakness {
		if rec.TotalAttempts < weakMinAttempts || rec.Score >= weakScoreCutoff {
			continue
		}

		summary := WeaknessSummary{
			Topic:        topic,
			DisplayName:  domain.TopicDisplayName(topic),
			Score:        rec.Score,
			FlaggedByIDs: append([]string{}, rec.FlaggedBy...),
		}
		if t, ok := domain.TopicByID(topic); ok {
			summary.Color = t.Color
		}
		summary.FlaggedByNames = make([]string, 0, len(rec.FlaggedBy))
		for _, id := range rec.FlaggedBy {
			summary.FlaggedByNames = append(summary.FlaggedByNames, domain.ToolDisplayName(id))
		}
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// ConceptScore returns the current weakness score for a topic. The
// second return value is false when the topic has never been recorded.
func (s *Service) ConceptScore(ctx context.Context, topic string) (int, bool, error) {
	var (
		score int
		known bool
	)

	err := s.view(ctx, func(doc *domain.Document) error {
		if rec, ok := doc.Weakness[topic]; ok {
			score = rec.Score
			known = true
		}
		return nil
	})
	return score, known, err
}
