package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/studykit/practicelog/internal/domain"
)

// DocumentStore loads and saves the practice-state document through a
// Port, handling bootstrap on first access, silent recovery from a
// corrupt payload, and schema-version migration. Callers always get a
// usable document back; the only errors surfaced are infrastructure
// failures from the port itself.
type DocumentStore struct {
	port   Port
	logger *slog.Logger
	now    func() time.Time
}

// NewDocumentStore creates a document store over the given port.
// A nil clock defaults to time.Now.
func NewDocumentStore(port Port, logger *slog.Logger, now func() time.Time) *DocumentStore {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DocumentStore")
	}
	if now == nil {
		now = time.Now
	}
	return &DocumentStore{
		port:   port,
		logger: logger.With(slog.String("component", "document_store")),
		now:    now,
	}
}

// Load returns the persisted document. An absent slot bootstraps and
// persists a fresh document; an unparsable payload is logged as a
// warning and replaced with a fresh document (intentional data loss —
// corruption must never crash the caller); a stale schema version is
// migrated and persisted.
func (s *DocumentStore) Load(ctx context.Context) (*domain.Document, error) {
	data, ok, err := s.port.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !ok {
		doc := domain.NewDocument(s.now())
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("persisted document is unparsable, resetting to a fresh document",
			slog.String("error", err.Error()))
		fresh := domain.NewDocument(s.now())
		if err := s.Save(ctx, fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	doc.Normalize()

	if doc.Version != domain.SchemaVersion {
		s.migrate(&doc)
		if err := s.Save(ctx, &doc); err != nil {
			return nil, err
		}
	}

	return &doc, nil
}

// Save stamps the document's LastUpdatedAt, serializes it, and writes it
// to the slot.
func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	doc.LastUpdatedAt = s.now()
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.port.Save(ctx, data)
}

// Reset discards the persisted document and recreates a fresh one.
func (s *DocumentStore) Reset(ctx context.Context) (*domain.Document, error) {
	if err := s.port.Delete(ctx); err != nil {
		return nil, err
	}
	doc := domain.NewDocument(s.now())
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// migrate brings a document with a stale schema version up to the
// current one. It is idempotent and must never lose unrelated fields;
// today it only stamps the version, acting as the seam for future
// schema transformations.
func (s *DocumentStore) migrate(doc *domain.Document) {
	s.logger.Info("migrating persisted document",
		slog.Int("from_version", doc.Version),
		slog.Int("to_version", domain.SchemaVersion))
	doc.Version = domain.SchemaVersion
}
