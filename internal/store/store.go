// Package store persists saved taxonomies.
//
// The whole collection lives as one JSON array in a single Slot under the
// key DefaultKey. Every mutation is a read-modify-write of that array; the
// write is conditional on the revision that was read and is retried a few
// times on conflict.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/result"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
)

// DefaultKey is the storage key of the collection.
const DefaultKey = "dt-taxonomy-saved-items"

const maxWriteAttempts = 3

// SavedTaxonomy is a named snapshot of a taxonomy and, optionally, its
// evaluation.
type SavedTaxonomy struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Taxonomy    taxonomy.Taxonomy `json:"taxonomy"`
	Result      *result.Result    `json:"result,omitempty"`
	SavedAt     time.Time         `json:"savedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Patch lists the fields Update replaces. Nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	Taxonomy    *taxonomy.Taxonomy
	Result      *result.Result
}

// Stats summarises the collection.
type Stats struct {
	Total       int        `json:"totalSaved"`
	WithResults int        `json:"withResults"`
	LastSaved   *time.Time `json:"lastSaved"`
}

// Store is the persistence layer over one Slot.
type Store struct {
	slot  Slot
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for savedAt and updatedAt.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator overrides record id generation.
func WithIDGenerator(newID func() string) Option { return func(s *Store) { s.newID = newID } }

func New(slot Slot, opts ...Option) *Store {
	s := &Store{slot: slot, now: time.Now}
	s.newID = s.generateID
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying slot.
func (s *Store) Close() error { return s.slot.Close() }

// generateID returns taxonomy_<unix millis>_<9 random characters>.
func (s *Store) generateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("taxonomy_%d_%s", s.now().UnixMilli(), suffix)
}

func (s *Store) stamp() time.Time { return s.now().UTC() }

// Save appends a new record and returns its id. A nil res saves the
// taxonomy without an evaluation.
func (s *Store) Save(ctx context.Context, title string, t taxonomy.Taxonomy, res *result.Result, description string) (id string, err error) {
	ctx, span := tracer.Start(ctx, "store.Save")
	defer func() { endSpan(span, err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperr.User("a title is required to save a taxonomy")
	}

	now := s.stamp()
	rec := SavedTaxonomy{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Taxonomy:    t.Clone(),
		Result:      res,
		SavedAt:     now,
		UpdatedAt:   now,
	}
	span.SetAttributes(attribute.String(attrRecordID, rec.ID))

	err = s.mutate(ctx, "save", func(items []SavedTaxonomy) ([]SavedTaxonomy, bool) {
		return append(items, rec), true
	})
	if err != nil {
		return "", err
	}
	logf(rec.ID, "saved %q", rec.Title)
	return rec.ID, nil
}

// Update merges p into the record id and refreshes its updatedAt. It
// reports false when no such record exists.
func (s *Store) Update(ctx context.Context, id string, p Patch) (found bool, err error) {
	ctx, span := tracer.Start(ctx, "store.Update", trace.WithAttributes(attribute.String(attrRecordID, id)))
	defer func() { endSpan(span, err) }()

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return false, apperr.User("title cannot be empty")
	}
	err = s.mutate(ctx, "update", func(items []SavedTaxonomy) ([]SavedTaxonomy, bool) {
		i := slices.IndexFunc(items, func(r SavedTaxonomy) bool { return r.ID == id })
		if i < 0 {
			found = false
			return items, false
		}
		found = true
		rec := items[i]
		if p.Title != nil {
			rec.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			rec.Description = strings.TrimSpace(*p.Description)
		}
		if p.Taxonomy != nil {
			rec.Taxonomy = p.Taxonomy.Clone()
		}
		if p.Result != nil {
			rec.Result = p.Result
		}
		rec.UpdatedAt = s.stamp()
		items[i] = rec
		return items, true
	})
	if err != nil {
		return false, err
	}
	if found {
		logf(id, "updated")
	}
	return found, nil
}

// Delete removes the record id. It reports false when no such record exists.
func (s *Store) Delete(ctx context.Context, id string) (found bool, err error) {
	ctx, span := tracer.Start(ctx, "store.Delete", trace.WithAttributes(attribute.String(attrRecordID, id)))
	defer func() { endSpan(span, err) }()

	err = s.mutate(ctx, "delete", func(items []SavedTaxonomy) ([]SavedTaxonomy, bool) {
		kept := slices.DeleteFunc(items, func(r SavedTaxonomy) bool { return r.ID == id })
		found = len(kept) != len(items)
		return kept, found
	})
	if err != nil {
		return false, err
	}
	if found {
		logf(id, "deleted")
	}
	return found, nil
}

// List returns every record in insertion order. An unreadable collection
// is logged and reported as empty.
func (s *Store) List(ctx context.Context) ([]SavedTaxonomy, error) {
	items, _, err := s.load(ctx)
	return items, err
}

// Get returns the record id, reporting false when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (SavedTaxonomy, bool, error) {
	items, err := s.List(ctx)
	if err != nil {
		return SavedTaxonomy{}, false, err
	}
	i := slices.IndexFunc(items, func(r SavedTaxonomy) bool { return r.ID == id })
	if i < 0 {
		return SavedTaxonomy{}, false, nil
	}
	return items[i], true, nil
}

// Clear removes every record.
func (s *Store) Clear(ctx context.Context) (err error) {
	ctx, span := tracer.Start(ctx, "store.Clear")
	defer func() { endSpan(span, err) }()

	if err := s.slot.Reset(ctx); err != nil {
		return apperr.Storage("clear", err)
	}
	logf("", "cleared all records")
	return nil
}

// Stats counts the records, the ones carrying a result and the most recent
// savedAt.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Total: len(items)}
	for _, r := range items {
		if r.Result != nil {
			st.WithResults++
		}
		if st.LastSaved == nil || r.SavedAt.After(*st.LastSaved) {
			saved := r.SavedAt
			st.LastSaved = &saved
		}
	}
	return st, nil
}

// Export serializes the whole collection as an indented JSON array.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []SavedTaxonomy{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return b, nil
}

// Import merges the valid records of an exported collection. Records with
// an id already present replace it in place; others are appended. It reports
// false when data is not a JSON array or holds no valid record. Write
// failures are returned as errors.
func (s *Store) Import(ctx context.Context, data []byte) (ok bool, err error) {
	ctx, span := tracer.Start(ctx, "store.Import")
	defer func() { endSpan(span, err) }()

	valid, rejected, perr := decodeImport(data)
	recordRejected(ctx, rejected)
	span.SetAttributes(
		attribute.Int("import.valid", len(valid)),
		attribute.Int("import.rejected", rejected),
	)
	if perr != nil {
		logf("", "import failed: %v", perr)
		return false, nil
	}
	if len(valid) == 0 {
		logf("", "import found no valid records (%d rejected)", rejected)
		return false, nil
	}

	err = s.mutate(ctx, "import", func(items []SavedTaxonomy) ([]SavedTaxonomy, bool) {
		return merge(items, valid), true
	})
	if err != nil {
		return false, err
	}
	logf("", "imported %d records (%d rejected)", len(valid), rejected)
	return true, nil
}

func merge(items, incoming []SavedTaxonomy) []SavedTaxonomy {
	for _, rec := range incoming {
		if i := slices.IndexFunc(items, func(r SavedTaxonomy) bool { return r.ID == rec.ID }); i >= 0 {
			items[i] = rec
			continue
		}
		items = append(items, rec)
	}
	return items
}

// load reads and decodes the collection. Decoding failures are logged and
// yield an empty collection with the slot's revision, so the next write
// replaces the unreadable payload.
func (s *Store) load(ctx context.Context) ([]SavedTaxonomy, string, error) {
	data, rev, err := s.slot.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load collection: %w", err)
	}
	if len(data) == 0 {
		return nil, rev, nil
	}
	var items []SavedTaxonomy
	if err := json.Unmarshal(data, &items); err != nil {
		logf("", "error loading saved taxonomies: %v", err)
		return nil, rev, nil
	}
	return items, rev, nil
}

// mutate runs fn over the current collection and writes the outcome back.
// When fn reports no change nothing is written.
func (s *Store) mutate(ctx context.Context, op string, fn func([]SavedTaxonomy) ([]SavedTaxonomy, bool)) error {
	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		items, rev, err := s.load(ctx)
		if err != nil {
			return err
		}
		next, changed := fn(items)
		if !changed {
			return nil
		}
		if next == nil {
			next = []SavedTaxonomy{}
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode collection: %w", err)
		}
		err = s.slot.Store(ctx, data, rev)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrConflict) {
			return apperr.Storage(op, err)
		}
		recordConflict(ctx, op)
		logf("", "%s: write conflict, retrying (attempt %d/%d)", op, attempt, maxWriteAttempts)
		lastErr = err
	}
	return apperr.Storage(op, lastErr)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
