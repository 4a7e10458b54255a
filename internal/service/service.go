package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/studykit/practicelog/internal/domain"
	"github.com/studykit/practicelog/internal/domain/srs"
	"github.com/studykit/practicelog/internal/store"
)

// errNoChange signals from an update closure that the document was not
// modified, so persisting it would only churn lastUpdatedAt. update
// swallows it and skips the save.
var errNoChange = errors.New("document unchanged")

// Service exposes the practice-data facade: recording results, spaced
// repetition, the wrong-answer ledger, activity logs, the daily review
// generator, and aggregate stats.
type Service struct {
	store  *store.DocumentStore
	params *srs.Params
	logger *slog.Logger
	now    func() time.Time

	// mu serializes the load-mutate-save cycle on the single document.
	mu sync.Mutex
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the service clock. Used by tests to simulate the
// passage of time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates the facade over a document store.
func New(docStore *store.DocumentStore, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Service")
	}

	s := &Service{
		store:  docStore,
		params: srs.NewDefaultParams(),
		logger: logger.With(slog.String("component", "service")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// update runs fn against the loaded document and persists the result.
// A closure returning errNoChange leaves the stored document untouched.
func (s *Service) update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	return s.store.Save(ctx, doc)
}

// view runs fn against the loaded document without persisting changes.
// Loading may still bootstrap and persist a fresh document on first use.
func (s *Service) view(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}
