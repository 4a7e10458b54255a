package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// SchemaVersion is the current version of the persisted document schema.
// Documents loaded with an older version are migrated by the store layer.
const SchemaVersion = 3

// Bounds applied to the document's rolling histories. Oldest entries are
// dropped first when a bound is exceeded.
const (
	MaxPerformanceHistory = 50
	MaxSessions           = 500
	MaxRecentScores       = 20
)

// DayKeyLayout is the calendar-day key format used by the daily log.
// Keys are derived from local time.
const DayKeyLayout = "2006-01-02"

// Document is the single persisted state document. It is the source of
// truth for all tracked practice data; every record is owned by it and
// reachable only through it.
type Document struct {
	Version        int                                      `json:"version"`
	CreatedAt      time.Time                                `json:"createdAt"`
	LastUpdatedAt  time.Time                                `json:"lastUpdatedAt"`
	Performance    map[string]map[string]*PerformanceRecord `json:"performance"`
	Weakness       map[string]*WeaknessRecord               `json:"weakness"`
	Exposure       map[string]*ExposureRecord               `json:"exposure"`
	Sessions       []SessionRecord                          `json:"sessions"`
	DosageStreak   DosageStreakRecord                       `json:"dosageStreak"`
	WrongAnswerLog []*WrongAnswerRecord                     `json:"wrongAnswerLog"`
	DailyLog       map[string]*DailyRecord                  `json:"dailyLog"`
}

// PerformanceRecord accumulates results for one topic/tool pair.
type PerformanceRecord struct {
	Correct int                `json:"correct"`
	Total   int                `json:"total"`
	History []PerformancePoint `json:"history"`
}

// PerformancePoint is one recorded result within a performance history.
type PerformancePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
}

// Accuracy returns the record's accuracy as a rounded percentage and
// whether any attempts exist.
func (r *PerformanceRecord) Accuracy() (int, bool) {
	if r == nil || r.Total == 0 {
		return 0, false
	}
	return RoundPercent(r.Correct, r.Total), true
}

// WeaknessRecord is the derived weakness state for one topic. It is
// recomputed in full from the performance records whenever a result is
// recorded for the topic, never adjusted incrementally.
type WeaknessRecord struct {
	Score         int       `json:"score"`
	FlaggedBy     []string  `json:"flaggedBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	TotalAttempts int       `json:"totalAttempts"`
}

// ExposureRecord is the spaced-repetition state for one practiced item,
// keyed by "<tool>:<itemId>". Box stays within [1,5].
type ExposureRecord struct {
	LastSeenAt time.Time `json:"lastSeenAt"`
	TimesSeen  int       `json:"timesSeen"`
	Box        int       `json:"box"`
}

// SessionRecord is one time-stamped practice session.
type SessionRecord struct {
	Timestamp time.Time       `json:"timestamp"`
	Tool      string          `json:"tool"`
	Topic     string          `json:"topic"`
	Correct   int             `json:"correct"`
	Total     int             `json:"total"`
	Details   json.RawMessage `json:"details,omitempty"`
}

// DosageStreakRecord tracks consecutive passing dosage-quiz attempts.
// An attempt at or above PassPercent extends the streak; anything lower
// resets it. Best never decreases.
type DosageStreakRecord struct {
	Current      int           `json:"current"`
	Best         int           `json:"best"`
	RecentScores []DosageScore `json:"recentScores"`
}

// PassPercent is the minimum quiz percentage that extends the dosage streak.
const PassPercent = 90

// DosageScore is one recorded dosage-quiz attempt.
type DosageScore struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Percent   int       `json:"percent"`
}

// DailyRecord aggregates one calendar day of activity.
type DailyRecord struct {
	Items    int      `json:"items"`
	Correct  int      `json:"correct"`
	Projects []string `json:"projects"`
}

// AddProject records a tool as active for the day. Projects behaves as a
// set with deterministic (sorted) order.
func (d *DailyRecord) AddProject(tool string) {
	for _, p := range d.Projects {
		if p == tool {
			return
		}
	}
	d.Projects = append(d.Projects, tool)
	sort.Strings(d.Projects)
}

// NewDocument returns a fresh document at the current schema version with
// empty collections.
func NewDocument(now time.Time) *Document {
	return &Document{
		Version:        SchemaVersion,
		CreatedAt:      now,
		LastUpdatedAt:  now,
		Performance:    map[string]map[string]*PerformanceRecord{},
		Weakness:       map[string]*WeaknessRecord{},
		Exposure:       map[string]*ExposureRecord{},
		Sessions:       []SessionRecord{},
		DosageStreak:   DosageStreakRecord{RecentScores: []DosageScore{}},
		WrongAnswerLog: []*WrongAnswerRecord{},
		DailyLog:       map[string]*DailyRecord{},
	}
}

// Normalize fills nil collections after decoding so callers never have to
// nil-check maps or slices. It does not touch populated fields.
func (d *Document) Normalize() {
	if d.Performance == nil {
		d.Performance = map[string]map[string]*PerformanceRecord{}
	}
	if d.Weakness == nil {
		d.Weakness = map[string]*WeaknessRecord{}
	}
	if d.Exposure == nil {
		d.Exposure = map[string]*ExposureRecord{}
	}
	if d.Sessions == nil {
		d.Sessions = []SessionRecord{}
	}
	if d.DosageStreak.RecentScores == nil {
		d.DosageStreak.RecentScores = []DosageScore{}
	}
	if d.WrongAnswerLog == nil {
		d.WrongAnswerLog = []*WrongAnswerRecord{}
	}
	if d.DailyLog == nil {
		d.DailyLog = map[string]*DailyRecord{}
	}
}

// PerformanceFor returns the performance record for a topic/tool pair,
// creating it (and the topic map) if absent.
func (d *Document) PerformanceFor(topic, tool string) *PerformanceRecord {
	byTool, ok := d.Performance[topic]
	if !ok {
		byTool = map[string]*PerformanceRecord{}
		d.Performance[topic] = byTool
	}
	rec, ok := byTool[tool]
	if !ok {
		rec = &PerformanceRecord{History: []PerformancePoint{}}
		byTool[tool] = rec
	}
	return rec
}

// DailyFor returns the daily record for a day key, creating it if absent.
func (d *Document) DailyFor(dayKey string) *DailyRecord {
	rec, ok := d.DailyLog[dayKey]
	if !ok {
		rec = &DailyRecord{Projects: []string{}}
		d.DailyLog[dayKey] = rec
	}
	return rec
}

// DayKey formats a timestamp as a local calendar-day key.
func DayKey(t time.Time) string {
	return t.Local().Format(DayKeyLayout)
}

// RoundPercent returns round(100 * part / whole). Whole must be non-zero.
func RoundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	if p >= 0 {
		return int(p + 0.5)
	}
	return int(p - 0.5)
}
