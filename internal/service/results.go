package service

import (
	"context"
	"encoding/json"

	"github.com/studykit/practicelog/internal/domain"
)

// RecordResult appends a practice result for a topic/tool pair, rolls it
// into the session log and today's daily record, and recomputes the
// topic's weakness record from scratch. It returns the updated per-tool
// accuracy for the topic, or nil when no attempts exist.
func (s *Service) RecordResult(
	ctx context.Context,
	tool, topic string,
	correct, total int,
	details json.RawMessage,
) (*int, error) {
	var accuracy *int

	err := s.update(ctx, func(doc *domain.Document) error {
		now := s.now()

		rec := doc.PerformanceFor(topic, tool)
		rec.Correct += correct
		rec.Total += total
		rec.History = append(rec.History, domain.PerformancePoint{
			Timestamp: now,
			Correct:   correct,
			Total:     total,
		})
		if len(rec.History) > domain.MaxPerformanceHistory {
			rec.History = rec.History[len(rec.History)-domain.MaxPerformanceHistory:]
		}

		recomputeWeakness(doc, topic, now)

		doc.Sessions = append(doc.Sessions, domain.SessionRecord{
			Timestamp: now,
			Tool:      tool,
			Topic:     topic,
			Correct:   correct,
			Total:     total,
			Details:   details,
		})
		if len(doc.Sessions) > domain.MaxSessions {
			doc.Sessions = doc.Sessions[len(doc.Sessions)-domain.MaxSessions:]
		}

		day := doc.DailyFor(domain.DayKey(now))
		day.Items += total
		day.Correct += correct
		day.AddProject(tool)

		if acc, ok := rec.Accuracy(); ok {
			accuracy = &acc
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accuracy, nil
}

// RecordDosageQuiz records one dosage-quiz attempt against the streak. A
// result at or above the pass threshold extends the current streak and
// may raise the best streak; anything lower resets the current streak.
// Returns the updated streak record.
func (s *Service) RecordDosageQuiz(ctx context.Context, score, total int) (domain.DosageStreakRecord, error) {
	var out domain.DosageStreakRecord

	err := s.update(ctx, func(doc *domain.Document) error {
		now := s.now()
		percent := domain.RoundPercent(score, total)

		streak := &doc.DosageStreak
		if total > 0 && percent >= domain.PassPercent {
			streak.Current++
			if streak.Current > streak.Best {
				streak.Best = streak.Current
			}
		} else {
			streak.Current = 0
		}

		streak.RecentScores = append(streak.RecentScores, domain.DosageScore{
			Timestamp: now,
			Score:     score,
			Total:     total,
			Percent:   percent,
		})
		if len(streak.RecentScores) > domain.MaxRecentScores {
			streak.RecentScores = streak.RecentScores[len(streak.RecentScores)-domain.MaxRecentScores:]
		}

		out = *streak
		return nil
	})
	return out, err
}
