package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/practicelog/internal/domain"
)

// testClock returns a fixed clock for deterministic timestamps.
func testClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadBootstrapsFreshDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	port := NewMemoryPort()
	ds := NewDocumentStore(port, testLogger(), testClock(now))

	doc, err := ds.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, domain.SchemaVersion, doc.Version)
	assert.Equal(t, now, doc.CreatedAt)
	assert.Empty(t, doc.Performance)
	assert.Empty(t, doc.Sessions)

	// The fresh document must have been persisted.
	data, ok, err := port.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok, "bootstrap should persist the fresh document")
	require.NotEmpty(t, data)
}

func TestLoadRecoversFromCorruptPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	port := NewMemoryPort()
	require.NoError(t, port.Save(ctx, []byte("{not json")))

	ds := NewDocumentStore(port, testLogger(), nil)

	doc, err := ds.Load(ctx)
	require.NoError(t, err, "corruption must never surface as an error")
	require.NotNil(t, doc)
	assert.Equal(t, domain.SchemaVersion, doc.Version)

	// The reset document replaces the corrupt payload.
	data, ok, err := port.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	var roundTrip domain.Document
	require.NoError(t, json.Unmarshal(data, &roundTrip))
}

func TestLoadMigratesStaleVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	port := NewMemoryPort()
	ds := NewDocumentStore(port, testLogger(), testClock(now))

	stale := domain.NewDocument(now.AddDate(0, -1, 0))
	stale.Version = 1
	stale.PerformanceFor("pharmacology", "flashcards").Total = 7
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, port.Save(ctx, data))

	doc, err := ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, doc.Version, "stale version should be stamped current")
	assert.Equal(t, 7, doc.Performance["pharmacology"]["flashcards"].Total,
		"migration must not lose unrelated fields")

	// Running migration on an already-migrated document changes nothing.
	again, err := ds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Version, again.Version)
	assert.Equal(t, 7, again.Performance["pharmacology"]["flashcards"].Total)
}

func TestSaveStampsLastUpdatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	saved := created.Add(3 * time.Hour)

	port := NewMemoryPort()
	ds := NewDocumentStore(port, testLogger(), testClock(saved))

	doc := domain.NewDocument(created)
	require.NoError(t, ds.Save(ctx, doc))
	assert.Equal(t, saved, doc.LastUpdatedAt)
}

func TestResetDiscardsEverything(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	port := NewMemoryPort()
	ds := NewDocumentStore(port, testLogger(), nil)

	doc, err := ds.Load(ctx)
	require.NoError(t, err)
	doc.PerformanceFor("pharmacology", "flashcards").Total = 3
	require.NoError(t, ds.Save(ctx, doc))

	fresh, err := ds.Reset(ctx)
	require.NoError(t, err)
	assert.Empty(t, fresh.Performance)

	reloaded, err := ds.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Performance)
}

func TestDocumentRoundTripsThroughJSON(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	doc := domain.NewDocument(now)
	doc.PerformanceFor("dosage-calc", "dosage-trainer").Correct = 4
	doc.PerformanceFor("dosage-calc", "dosage-trainer").Total = 5
	doc.Exposure["flashcards:amoxicillin"] = &domain.ExposureRecord{
		LastSeenAt: now, TimesSeen: 2, Box: 3,
	}
	doc.WrongAnswerLog = append(doc.WrongAnswerLog,
		domain.NewWrongAnswerRecord(domain.WrongAnswerEntry{Question: "q"}, now))

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	// Top-level field names are part of the export/import contract.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{
		"version", "createdAt", "lastUpdatedAt", "performance", "weakness",
		"exposure", "sessions", "dosageStreak", "wrongAnswerLog", "dailyLog",
	} {
		assert.Contains(t, raw, field)
	}

	var decoded domain.Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Performance["dosage-calc"]["dosage-trainer"].Correct)
	assert.Equal(t, 3, decoded.Exposure["flashcards:amoxicillin"].Box)
	require.Len(t, decoded.WrongAnswerLog, 1)
	assert.Equal(t, 1, decoded.WrongAnswerLog[0].SRBox)
}
