// Package store holds the résumé document in memory and exposes every
// mutation as an atomic operation: master data CRUD, version CRUD, content
// edits on the current version, and the sync/promote engine between them.
//
// Operations never fail on unknown ids; they leave the state unchanged.
// Each state change is persisted synchronously before the call returns.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
)

// Persister durably saves the whole document.
type Persister interface {
	SaveDocument(ctx context.Context, doc resume.Document) error
}

// Loader reads the persisted document. migrated reports that the payload was
// converted from an older schema and should be written back.
type Loader interface {
	LoadDocument(ctx context.Context) (doc resume.Document, migrated bool, err error)
}

// Repository is the persistence port the store is opened from.
type Repository interface {
	Loader
	Persister
}

// Store is the process-wide résumé state container. It is safe for
// concurrent use; operations are serialized.
type Store struct {
	mu        sync.Mutex
	doc       resume.Document
	revision  uint64
	persister Persister
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for version timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the generator used for new version and item ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates a store over doc. A nil persister keeps the state in memory only.
func New(doc resume.Document, persister Persister, opts ...Option) *Store {
	s := &Store{
		doc:       doc.Clone(),
		persister: persister,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc.RepairCurrent()
	return s
}

// Open loads the document from repo and returns a store persisting back to it.
// A migrated document is written back in the current schema right away.
func Open(ctx context.Context, repo Repository, opts ...Option) (*Store, error) {
	doc, migrated, err := repo.LoadDocument(ctx)
	if err != nil {
		return nil, err
	}

	s := New(doc, repo, opts...)
	if migrated {
		logger := s.loggerFor(ctx)
		logger.InfoContext(ctx, "migrated legacy resume data", "versions", len(doc.Versions))
		if err := repo.SaveDocument(ctx, s.Snapshot()); err != nil {
			logger.WarnContext(ctx, "failed to persist migrated document", "error", err)
		}
	}
	return s, nil
}

// Revision increases by one with every state change.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Snapshot returns a deep copy of the whole document.
func (s *Store) Snapshot() resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// MasterData returns a deep copy of the master data.
func (s *Store) MasterData() resume.MasterData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.MasterData.Clone()
}

// Versions returns deep copies of all versions in order.
func (s *Store) Versions() []resume.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]resume.Version, len(s.doc.Versions))
	for i, v := range s.doc.Versions {
		out[i] = v.Clone()
	}
	return out
}

// Version returns a copy of the version with the given id.
func (s *Store) Version(id string) (resume.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.doc.VersionIndex(id); i >= 0 {
		return s.doc.Versions[i].Clone(), true
	}
	return resume.Version{}, false
}

// CurrentVersion returns a copy of the selected version.
func (s *Store) CurrentVersion() (resume.Version, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := s.doc.Current(); v != nil {
		return v.Clone(), true
	}
	return resume.Version{}, false
}

// CurrentVersionID returns the selected version id, or "" when none is selected.
func (s *Store) CurrentVersionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.CurrentVersionID == nil {
		return ""
	}
	return *s.doc.CurrentVersionID
}

// mutate runs fn against the document under the lock. fn reports whether it
// changed anything; only then is the revision bumped and the document saved.
func (s *Store) mutate(ctx context.Context, op string, fn func(doc *resume.Document) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !fn(&s.doc) {
		s.loggerFor(ctx).DebugContext(ctx, "store operation had no effect", "op", op)
		return
	}
	s.revision++
	s.persistLocked(ctx, op)
}

// mutateCurrent is mutate scoped to the current version. The version's
// LastModified is bumped when fn reports a change.
func (s *Store) mutateCurrent(ctx context.Context, op string, fn func(doc *resume.Document, v *resume.Version) bool) {
	s.mutate(ctx, op, func(doc *resume.Document) bool {
		v := doc.Current()
		if v == nil {
			return false
		}
		if !fn(doc, v) {
			return false
		}
		v.LastModified = s.now()
		return true
	})
}

func (s *Store) persistLocked(ctx context.Context, op string) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveDocument(ctx, s.doc.Clone()); err != nil {
		// In-memory state stays authoritative; the next successful write catches up.
		s.loggerFor(ctx).ErrorContext(ctx, "failed to persist resume document", "op", op, "revision", s.revision, "error", err)
	}
}

func (s *Store) loggerFor(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContextOr(ctx, nil); l != nil {
		return l
	}
	return s.logger
}
