package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
)

// DocumentSlot is the slot the résumé document lives in.
const DocumentSlot = "resume-storage"

// DocumentRepo persists the résumé document as a single JSON slot.
// It satisfies store.Repository.
type DocumentRepo struct {
	slots SlotStore
	slot  string
	now   func() time.Time
	newID func() string
}

// NewDocumentRepo creates a DocumentRepo over slots.
func NewDocumentRepo(slots SlotStore) *DocumentRepo {
	return &DocumentRepo{
		slots: slots,
		slot:  DocumentSlot,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// LoadDocument reads and decodes the stored document, migrating legacy
// snapshots. A missing slot yields an empty document. A payload that cannot
// be decoded is logged and replaced by an empty document rather than failing
// the load; only storage errors are returned.
func (r *DocumentRepo) LoadDocument(ctx context.Context) (resume.Document, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rec, err := r.slots.Get(ctx, r.slot)
	if errors.Is(err, ErrNotFound) {
		return resume.NewDocument(), false, nil
	}
	if err != nil {
		return resume.Document{}, false, fmt.Errorf("failed to load document: %w", err)
	}

	if rec.SchemaVersion >= resume.CurrentSchemaVersion {
		if err := resume.ValidateDocumentJSON(rec.Payload); err != nil {
			logger.WarnContext(ctx, "stored document does not match schema",
				slog.String("slot", r.slot),
				slog.Int("schema_version", rec.SchemaVersion),
				slog.Any("error", err))
		}
	}

	doc, migrated, err := resume.DecodeDocument(rec.SchemaVersion, rec.Payload, r.newID, r.now())
	if err != nil {
		logger.ErrorContext(ctx, "discarding undecodable document",
			slog.String("slot", r.slot),
			slog.Int("schema_version", rec.SchemaVersion),
			slog.Any("error", err))
		return doc, false, nil
	}
	return doc, migrated, nil
}

// SaveDocument writes doc in the current schema version.
func (r *DocumentRepo) SaveDocument(ctx context.Context, doc resume.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return r.slots.Put(ctx, &SlotRecord{
		Slot:          r.slot,
		SchemaVersion: resume.CurrentSchemaVersion,
		Payload:       payload,
	})
}
