package store

import (
	"context"

	"resume-studio/internal/resume"
)

// AddItemToCurrentVersion copies the master item into the current version
// under a fresh id, linked to its master. It returns the new id, or false
// when there is no current version or the master item does not exist.
func (s *Store) AddItemToCurrentVersion(ctx context.Context, section resume.Section, masterID string) (string, bool) {
	ops, ok := opsFor(section)
	if !ok {
		return "", false
	}
	var id string
	s.mutateCurrent(ctx, "add_item_to_version", func(doc *resume.Document, v *resume.Version) bool {
		candidate := s.newID()
		if !ops.addFromMaster(doc, v, masterID, candidate) {
			return false
		}
		id = candidate
		return true
	})
	return id, id != ""
}

// RemoveItemFromCurrentVersion drops the item from the current version.
// The master item is not touched.
func (s *Store) RemoveItemFromCurrentVersion(ctx context.Context, section resume.Section, itemID string) {
	ops, ok := opsFor(section)
	if !ok {
		return
	}
	s.mutateCurrent(ctx, "remove_item_from_version", func(_ *resume.Document, v *resume.Version) bool {
		return ops.remove(v, itemID)
	})
}

// ReorderCurrentVersionItems rebuilds the section in the given id order.
// Unknown and repeated ids are ignored; items left unnamed are dropped.
func (s *Store) ReorderCurrentVersionItems(ctx context.Context, section resume.Section, orderedIDs []string) {
	ops, ok := opsFor(section)
	if !ok {
		return
	}
	s.mutateCurrent(ctx, "reorder_version_items", func(_ *resume.Document, v *resume.Version) bool {
		return ops.reorder(v, orderedIDs)
	})
}

// UpdateCurrentVersionEducation replaces the current version's education list.
func (s *Store) UpdateCurrentVersionEducation(ctx context.Context, items []resume.EducationItem) {
	s.mutateCurrent(ctx, "update_version_education", func(_ *resume.Document, v *resume.Version) bool {
		educationItems.replace(v, items)
		return true
	})
}

func (s *Store) UpdateCurrentVersionExperience(ctx context.Context, items []resume.ExperienceItem) {
	s.mutateCurrent(ctx, "update_version_experience", func(_ *resume.Document, v *resume.Version) bool {
		experienceItems.replace(v, items)
		return true
	})
}

func (s *Store) UpdateCurrentVersionProjects(ctx context.Context, items []resume.ProjectItem) {
	s.mutateCurrent(ctx, "update_version_projects", func(_ *resume.Document, v *resume.Version) bool {
		projectItems.replace(v, items)
		return true
	})
}

func (s *Store) UpdateCurrentVersionSkillCategories(ctx context.Context, items []resume.SkillCategory) {
	s.mutateCurrent(ctx, "update_version_skill_categories", func(_ *resume.Document, v *resume.Version) bool {
		skillItems.replace(v, items)
		return true
	})
}
