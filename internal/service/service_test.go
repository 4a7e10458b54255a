package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/store"
)

// fakeClock is a manually advanced clock for deterministic scheduling
// tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService builds a service over an in-memory slot with a fake
// clock starting at the given instant.
func newTestService(t *testing.T, start time.Time) (*Service, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: start}
	docStore := store.NewDocumentStore(store.NewMemoryPort(), testLogger(), clock.Now)
	return New(docStore, testLogger(), WithClock(clock.Now)), clock
}

// testStart is mid-day local time so day-key arithmetic in tests never
// straddles a calendar boundary.
var testStart = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

// decodeExport parses an ExportData payload back into a document.
func decodeExport(t *testing.T, data []byte) *domain.Document {
	t.Helper()
	var doc domain.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return &doc
}
