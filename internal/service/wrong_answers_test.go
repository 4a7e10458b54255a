package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/practicelog/internal/domain"
)

func TestAddWrongAnswerDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testStart)

	rec, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{
		Question: "Which schedule is diazepam?",
		Topic:    "pharmacy-law",
	})
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, rec.SRBox)
	assert.True(t, rec.SRNextDueAt.Equal(testStart.Add(24*time.Hour)))
	assert.Empty(t, rec.RetestHistory)
	assert.Equal(t, "", rec.Source, "optional fields default to empty strings")
}

func TestWrongAnswerIDsAreUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testStart)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		rec, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{})
		require.NoError(t, err)
		require.False(t, seen[rec.ID], "duplicate ledger id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestWrongAnswersDueAfterOneDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	rec, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{Question: "q"})
	require.NoError(t, err)

	// Immediately after creation the record is not due.
	due, err := svc.WrongAnswersDue(ctx)
	require.NoError(t, err)
	assert.Empty(t, due)

	// A day later it is.
	clock.Advance(25 * time.Hour)
	due, err = svc.WrongAnswersDue(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, rec.ID, due[0].ID)
}

func TestRetestWrongAnswerAdvancesSchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	rec, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{Question: "q"})
	require.NoError(t, err)

	clock.Advance(25 * time.Hour)
	retested, err := svc.RetestWrongAnswer(ctx, rec.ID, true)
	require.NoError(t, err)
	require.NotNil(t, retested)

	assert.Equal(t, 2, retested.SRBox)
	// Box 2 reviews after three days.
	wantDue := clock.Now().Add(3 * 24 * time.Hour)
	assert.True(t, retested.SRNextDueAt.Equal(wantDue),
		"expected next due %v, got %v", wantDue, retested.SRNextDueAt)
	require.Len(t, retested.RetestHistory, 1)
	assert.True(t, retested.RetestHistory[0].WasCorrect)

	// An incorrect retest resets the box and reschedules for tomorrow.
	retested, err = svc.RetestWrongAnswer(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, retested.SRBox)
	require.Len(t, retested.RetestHistory, 2)
}

func TestRetestUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	_, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{Question: "q"})
	require.NoError(t, err)

	before, err := svc.ExportData(ctx)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	rec, err := svc.RetestWrongAnswer(ctx, "wa-nope", true)
	require.NoError(t, err)
	assert.Nil(t, rec)

	stats, err := svc.WrongAnswerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total, "the ledger is untouched")

	// The stored document must not have been rewritten either.
	after, err := svc.ExportData(ctx)
	require.NoError(t, err)
	assert.True(t, decodeExport(t, after).LastUpdatedAt.Equal(decodeExport(t, before).LastUpdatedAt),
		"a miss on the ledger must not stamp lastUpdatedAt")
}

func TestWrongAnswerStatsTally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	_, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{
		ErrorType: "calculation", Topic: "dosage-calc", Source: "practice-exam-1",
	})
	require.NoError(t, err)
	_, err = svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{
		ErrorType: "calculation", Topic: "dosage-calc",
	})
	require.NoError(t, err)
	// No error type and no source at all.
	mastered, err := svc.AddWrongAnswer(ctx, domain.WrongAnswerEntry{Topic: "pharmacology"})
	require.NoError(t, err)

	// Drive one record up to the mastered box.
	for i := 0; i < 3; i++ {
		clock.Advance(40 * 24 * time.Hour)
		_, err = svc.RetestWrongAnswer(ctx, mastered.ID, true)
		require.NoError(t, err)
	}

	clock.Advance(40 * 24 * time.Hour)
	stats, err := svc.WrongAnswerStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.DueForRetestCount)
	assert.Equal(t, 1, stats.MasteredCount)
	assert.Equal(t, map[string]int{"calculation": 2, "": 1}, stats.ErrorTypeCounts,
		"empty error types get their own bucket")
	assert.Equal(t, map[string]int{"dosage-calc": 2, "pharmacology": 1}, stats.TopicCounts)
	assert.Equal(t, map[string]int{"practice-exam-1": 1}, stats.SourceCounts,
		"empty sources are excluded")
}
