package service

import (
	"context"
	"strings"

	"github.com/studykit/practicelog/internal/domain"
)

// Daily review composition limits.
const (
	dailyReviewCap = 10
	maxRetests     = 2
)

// Review item types, in priority order.
const (
	ReviewTypeWrongAnswer = "wrong-answer-retest"
	ReviewTypeSpacedRep   = "spaced-rep"
	ReviewTypeWeakness    = "weakness-practice"
)

// ReviewItem is one entry of the generated daily review set. Type
// selects which of the optional fields are populated.
type ReviewItem struct {
	Type string `json:"type"`

	// wrong-answer-retest
	WrongAnswer *domain.WrongAnswerRecord `json:"wrongAnswer,omitempty"`

	// spaced-rep
	Key  string `json:"key,omitempty"`
	Tool string `json:"tool,omitempty"`
	Box  int    `json:"box,omitempty"`

	// weakness-practice
	Weakness *WeaknessPractice `json:"weakness,omitempty"`
}

// WeaknessPractice is the weakness-practice payload of a review item.
type WeaknessPractice struct {
	Topic          string   `json:"topic"`
	DisplayName    string   `json:"displayName"`
	Score          int      `json:"score"`
	SuggestedTools []string `json:"suggestedTools"`
}

// GenerateDailyReview composes the bounded mixed review set: up to two
// due wrong-answer retests first, then due spaced-repetition items, then
// one weakness-practice entry per weak topic worst-first, stopping as
// soon as the cap is reached or all sources are exhausted.
func (s *Service) GenerateDailyReview(ctx context.Context) ([]ReviewItem, error) {
	var items []ReviewItem

	err := s.view(ctx, func(doc *domain.Document) error {
		now := s.now()
		items = []ReviewItem{}

		for _, rec := range wrongAnswersDue(doc, now) {
			if len(items) >= maxRetests {
				break
			}
			items = append(items, ReviewItem{
				Type:        ReviewTypeWrongAnswer,
				WrongAnswer: rec,
			})
		}

		for _, due := range s.dueItems(doc, 0) {
			if len(items) >= dailyReviewCap {
				break
			}
			items = append(items, ReviewItem{
				Type: ReviewTypeSpacedRep,
				Key:  due.Key,
				Tool: toolFromItemKey(due.Key),
				Box:  due.Box,
			})
		}

		if len(items) >= dailyReviewCap {
			return nil
		}
		for _, weak := range weaknessSummaries(doc) {
			if len(items) >= dailyReviewCap {
				break
			}
			items = append(items, ReviewItem{
				Type: ReviewTypeWeakness,
				Weakness: &WeaknessPractice{
					Topic:          weak.Topic,
					DisplayName:    weak.DisplayName,
					Score:          weak.Score,
					SuggestedTools: suggestedTools(weak),
				},
			})
		}
		return nil
	})
	return items, err
}

// toolFromItemKey derives the owning tool from an item key's first
// colon-separated segment, falling back to "unknown".
func toolFromItemKey(key string) string {
	tool := strings.SplitN(key, ":", 2)[0]
	if tool == "" {
		return "unknown"
	}
	return tool
}

// suggestedTools picks practice tools for a weak topic: the tools that
// flagged it, or every registered tool when nothing specific flagged it.
func suggestedTools(weak WeaknessSummary) []string {
	if len(weak.FlaggedByIDs) > 0 {
		return weak.FlaggedByIDs
	}
	all := make([]string, 0, len(domain.Tools))
	for _, tool := range domain.Tools {
		all = append(all, tool.ID)
	}
	return all
}
