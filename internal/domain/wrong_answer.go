package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WrongAnswerRecord is one missed question in the remediation ledger.
// The identity fields are immutable after creation; only the scheduling
// fields and retest history change.
type WrongAnswerRecord struct {
	ID              string    `json:"id"`
	Question        string    `json:"question"`
	SubmittedAnswer string    `json:"submittedAnswer"`
	CorrectAnswer   string    `json:"correctAnswer"`
	Rationale       string    `json:"rationale"`
	ErrorType       string    `json:"errorType"`
	Topic           string    `json:"topic"`
	Concept         string    `json:"concept"`
	Source          string    `json:"source"`
	Remediation     string    `json:"remediation"`
	CreatedAt       time.Time `json:"createdAt"`

	SRBox         int            `json:"srBox"`
	SRNextDueAt   time.Time      `json:"srNextDueAt"`
	RetestHistory []RetestResult `json:"retestHistory"`
}

// RetestResult is one retest attempt against a wrong answer.
type RetestResult struct {
	Timestamp  time.Time `json:"timestamp"`
	WasCorrect bool      `json:"wasCorrect"`
}

// WrongAnswerEntry carries the caller-supplied fields for a new ledger
// record. All fields are optional; absent values default to empty strings.
type WrongAnswerEntry struct {
	Question        string `json:"question"`
	SubmittedAnswer string `json:"submittedAnswer"`
	CorrectAnswer   string `json:"correctAnswer"`
	Rationale       string `json:"rationale"`
	ErrorType       string `json:"errorType"`
	Topic           string `json:"topic"`
	Concept         string `json:"concept"`
	Source          string `json:"source"`
	Remediation     string `json:"remediation"`
}

// NewWrongAnswerRecord builds a ledger record from an entry. The id
// combines the creation time with a random uuid fragment so collisions
// are negligible across the ledger's lifetime. The record starts in box 1
// and comes due 24 hours after creation, the same fixed-interval
// arithmetic the retest scheduling uses.
func NewWrongAnswerRecord(entry WrongAnswerEntry, now time.Time) *WrongAnswerRecord {
	return &WrongAnswerRecord{
		ID:              newWrongAnswerID(now),
		Question:        entry.Question,
		SubmittedAnswer: entry.SubmittedAnswer,
		CorrectAnswer:   entry.CorrectAnswer,
		Rationale:       entry.Rationale,
		ErrorType:       entry.ErrorType,
		Topic:           entry.Topic,
		Concept:         entry.Concept,
		Source:          entry.Source,
		Remediation:     entry.Remediation,
		CreatedAt:       now,
		SRBox:           1,
		SRNextDueAt:     now.Add(24 * time.Hour),
		RetestHistory:   []RetestResult{},
	}
}

// newWrongAnswerID generates a unique ledger id: unix milliseconds plus
// the first segment of a random UUID.
func newWrongAnswerID(now time.Time) string {
	random := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("wa-%d-%s", now.UnixMilli(), random)
}
