package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_slot_store.go -package=mocks resume-studio/internal/storage SlotStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// SlotStore defines the interface for slot storage operations.
type SlotStore interface {
	// Get returns the record stored under slot.
	// Returns nil and ErrNotFound if not found.
	Get(ctx context.Context, slot string) (*SlotRecord, error)
	// Put inserts or replaces the record stored under rec.Slot.
	Put(ctx context.Context, rec *SlotRecord) error
}

// SlotRepo provides methods for slot operations.
// It implements the SlotStore interface.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo creates a new SlotRepo.
func NewSlotRepo(db *sql.DB) *SlotRepo {
	return &SlotRepo{db: db}
}

// Get returns the record stored under slot.
func (r *SlotRepo) Get(ctx context.Context, slot string) (*SlotRecord, error) {
	var rec SlotRecord
	var payload string
	var updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT slot, schema_version, payload, updated_at FROM document_slots WHERE slot = ?",
		slot,
	).Scan(&rec.Slot, &rec.SchemaVersion, &payload, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}
	rec.Payload = []byte(payload)

	// Parse updated_at DATETIME string
	rec.UpdatedAt, err = time.Parse("2006-01-02 15:04:05", updatedAtStr)
	if err != nil {
		// Try alternative format (SQLite might use different format)
		rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
	}

	return &rec, nil
}

// Put inserts or replaces the record stored under rec.Slot.
func (r *SlotRepo) Put(ctx context.Context, rec *SlotRecord) error {
	if rec.Slot == "" {
		return errors.New("slot name is required")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO document_slots (slot, schema_version, payload, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (slot) DO UPDATE SET
		 schema_version = excluded.schema_version, payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		rec.Slot, rec.SchemaVersion, string(rec.Payload),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}

	return nil
}
