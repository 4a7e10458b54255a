package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/practicelog/internal/domain"
)

func TestSessionHistoryWindow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	_, err := svc.RecordResult(ctx, "flashcards", "pharmacology", 3, 5, nil)
	require.NoError(t, err)

	clock.Advance(10 * 24 * time.Hour)
	_, err = svc.RecordResult(ctx, "mcq-quiz", "pharmacy-law", 4, 5, nil)
	require.NoError(t, err)

	// A 7-day window only sees the recent session.
	sessions, err := svc.SessionHistory(ctx, 7)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "mcq-quiz", sessions[0].Tool)

	// A wider window sees both, oldest first.
	sessions, err = svc.SessionHistory(ctx, 30)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "flashcards", sessions[0].Tool)
}

func TestDailyLogFillsEmptyDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	_, err := svc.RecordResult(ctx, "flashcards", "pharmacology", 8, 10, nil)
	require.NoError(t, err)

	clock.Advance(2 * 24 * time.Hour)
	log, err := svc.DailyLog(ctx, 7)
	require.NoError(t, err)
	require.Len(t, log, 7, "every day in the window is present")

	active := log[domain.DayKey(testStart)]
	assert.Equal(t, 10, active.Items)
	assert.Equal(t, 8, active.Correct)
	assert.Equal(t, []string{"flashcards"}, active.Projects)

	quiet := log[domain.DayKey(clock.Now())]
	assert.Equal(t, 0, quiet.Items)
	assert.Equal(t, []string{}, quiet.Projects)
}

func TestDailyLogDefaultsToThirtyDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testStart)

	log, err := svc.DailyLog(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, log, 30)
}

func TestStreakCounting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, clock := newTestService(t, testStart)

	// Two consecutive active days.
	_, err := svc.RecordResult(ctx, "flashcards", "pharmacology", 5, 5, nil)
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	_, err = svc.RecordResult(ctx, "flashcards", "pharmacology", 5, 5, nil)
	require.NoError(t, err)

	streak, err := svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	// Today having no activity yet does not break the streak.
	clock.Advance(24 * time.Hour)
	streak, err = svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, streak)

	// A fully missed day does.
	clock.Advance(24 * time.Hour)
	streak, err = svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestStreakEmptyDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t, testStart)

	streak, err := svc.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}
