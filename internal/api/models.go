package api

import (
	"encoding/json"
)

// Common request/response structures

// RecordResultRequest defines the payload for recording a practice result.
type RecordResultRequest struct {
	Tool    string          `json:"tool"    validate:"required"`
	Topic   string          `json:"topic"   validate:"required"`
	Correct int             `json:"correct" validate:"gte=0"`
	Total   int             `json:"total"   validate:"gte=0"`
	Details json.RawMessage `json:"details,omitempty"`
}

// RecordResultResponse carries the session accuracy, null when the
// session had no questions.
type RecordResultResponse struct {
	Accuracy *int `json:"accuracy"`
}

// DosageQuizRequest defines the payload for recording a dosage quiz run.
type DosageQuizRequest struct {
	Score int `json:"score" validate:"gte=0"`
	Total int `json:"total" validate:"gte=0"`
}

// TrackExposureRequest defines the payload for tracking an item exposure.
type TrackExposureRequest struct {
	ItemKey    string `json:"itemKey" validate:"required"`
	WasCorrect bool   `json:"wasCorrect"`
}

// RetestRequest defines the payload for a wrong-answer retest outcome.
type RetestRequest struct {
	WasCorrect bool `json:"wasCorrect"`
}

// CountResponse wraps a bare counter value.
type CountResponse struct {
	Count int `json:"count"`
}

// StreakResponse wraps the consecutive-day streak.
type StreakResponse struct {
	Streak int `json:"streak"`
}

// TopicScoreResponse carries one topic's 0-100 concept score. Attempted
// is false when the topic has never been practiced.
type TopicScoreResponse struct {
	Topic     string `json:"topic"`
	Score     int    `json:"score"`
	Attempted bool   `json:"attempted"`
}

// ImportResponse reports whether an import payload was accepted.
type ImportResponse struct {
	Imported bool `json:"imported"`
}
