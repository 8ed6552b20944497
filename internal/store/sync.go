package store

import (
	"context"

	"resume-studio/internal/resume"
)

// SyncItemFromMaster overwrites a current version item with its master's
// content. Nothing happens when the item has no resolvable master or already
// matches it.
func (s *Store) SyncItemFromMaster(ctx context.Context, section resume.Section, itemID string) {
	ops, ok := opsFor(section)
	if !ok {
		return
	}
	s.mutateCurrent(ctx, "sync_from_master", func(doc *resume.Document, v *resume.Version) bool {
		return ops.syncFromMaster(doc, v, itemID)
	})
}

// PromoteToMaster copies a current version item's content onto its master.
// The version itself, LastModified included, is left as is.
func (s *Store) PromoteToMaster(ctx context.Context, section resume.Section, itemID string) {
	ops, ok := opsFor(section)
	if !ok {
		return
	}
	s.mutate(ctx, "promote_to_master", func(doc *resume.Document) bool {
		v := doc.Current()
		if v == nil {
			return false
		}
		return ops.promote(doc, v, itemID)
	})
}

// ItemStatus reports whether a current version item is linked to an existing
// master and whether it has diverged. ok is false when the item is not found.
func (s *Store) ItemStatus(section resume.Section, itemID string) (ItemStatus, bool) {
	ops, ok := opsFor(section)
	if !ok {
		return ItemStatus{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.doc.Current()
	if v == nil {
		return ItemStatus{}, false
	}
	return ops.status(&s.doc, v, itemID)
}
