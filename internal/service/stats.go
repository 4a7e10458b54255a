package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/domain/srs"
)

// Per-tool status values.
const (
	StatusNotStarted = "not-started"
	StatusItemsDue   = "items-due"
	StatusInProgress = "in-progress"
)

// ProjectStatus is the dashboard view of one practice tool.
type ProjectStatus struct {
	TotalAttempts     int        `json:"totalAttempts"`
	Accuracy          int        `json:"accuracy"`
	LastUsedAt        *time.Time `json:"lastUsedAt"`
	DueForReviewCount int        `json:"dueForReviewCount"`
	Status            string     `json:"status"`
}

// OverallStats is the read-only snapshot combining all engines.
type OverallStats struct {
	TotalAttempts    int                       `json:"totalAttempts"`
	Accuracy         int                       `json:"accuracy"`
	ConceptScores    map[string]int            `json:"conceptScores"`
	Weaknesses       []WeaknessSummary         `json:"weaknesses"`
	Streak           int                       `json:"streak"`
	ExposureCount    int                       `json:"exposureCount"`
	DueItemsCount    int                       `json:"dueItemsCount"`
	DosageStats      domain.DosageStreakRecord `json:"dosageStats"`
	WrongAnswerStats WrongAnswerStats          `json:"wrongAnswerStats"`
}

// GetProjectStatus aggregates a tool's performance across all topics.
func (s *Service) GetProjectStatus(ctx context.Context, tool string) (ProjectStatus, error) {
	var out ProjectStatus

	err := s.view(ctx, func(doc *domain.Document) error {
		now := s.now()

		var correct, total int
		var lastUsed time.Time
		for _, byTool := range doc.Performance {
			rec, ok := byTool[tool]
			if !ok {
				continue
			}
			correct += rec.Correct
			total += rec.Total
			for _, point := range rec.History {
				if point.Timestamp.After(lastUsed) {
					lastUsed = point.Timestamp
				}
			}
		}

		dueCount := 0
		prefix := tool + ":"
		for key, rec := range doc.Exposure {
			if strings.HasPrefix(key, prefix) && srs.IsDue(rec.LastSeenAt, rec.Box, now, s.params) {
				dueCount++
			}
		}

		out = ProjectStatus{
			TotalAttempts:     total,
			Accuracy:          domain.RoundPercent(correct, total),
			DueForReviewCount: dueCount,
		}
		if !lastUsed.IsZero() {
			out.LastUsedAt = &lastUsed
		}

		switch {
		case total == 0:
			out.Status = StatusNotStarted
		case dueCount > 0:
			out.Status = StatusItemsDue
		default:
			out.Status = StatusInProgress
		}
		return nil
	})
	return out, err
}

// GetOverallStats assembles the full dashboard snapshot in one read.
func (s *Service) GetOverallStats(ctx context.Context) (OverallStats, error) {
	var out OverallStats

	err := s.view(ctx, func(doc *domain.Document) error {
		now := s.now()

		var correct, total int
		for _, byTool := range doc.Performance {
			for _, rec := range byTool {
				correct += rec.Correct
				total += rec.Total
			}
		}

		conceptScores := map[string]int{}
		for topic, rec := range doc.Weakness {
			conceptScores[topic] = rec.Score
		}

		out = OverallStats{
			TotalAttempts:    total,
			Accuracy:         domain.RoundPercent(correct, total),
			ConceptScores:    conceptScores,
			Weaknesses:       weaknessSummaries(doc),
			Streak:           computeStreak(doc, now),
			ExposureCount:    len(doc.Exposure),
			DueItemsCount:    len(s.dueItems(doc, 0)),
			DosageStats:      doc.DosageStreak,
			WrongAnswerStats: tallyWrongAnswers(doc, now),
		}
		return nil
	})
	return out, err
}

// ExportData serializes the full document as pretty-printed JSON. The
// output round-trips exactly through ImportData.
func (s *Service) ExportData(ctx context.Context) ([]byte, error) {
	var out []byte

	err := s.view(ctx, func(doc *domain.Document) error {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	return out, err
}

// ImportData replaces the store wholesale with the given payload. The
// payload is accepted only if it parses and carries a recognizable
// version field; otherwise it is rejected (false) and the existing
// store is left untouched.
func (s *Service) ImportData(ctx context.Context, payload []byte) (bool, error) {
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil || probe.Version == nil {
		return false, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return false, nil
	}
	doc.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, &doc); err != nil {
		return false, err
	}
	return true, nil
}

// ResetAll discards the document and recreates a fresh one.
func (s *Service) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.store.Reset(ctx)
	return err
}
