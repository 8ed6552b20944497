package store

import (
	"context"
	"fmt"

	"resume-studio/internal/resume"
)

// CreateVersion adds an empty version and selects it. An empty description
// is stored as absent.
func (s *Store) CreateVersion(ctx context.Context, name, description string) string {
	var id string
	s.mutate(ctx, "create_version", func(doc *resume.Document) bool {
		now := s.now()
		id = s.newID()
		v := resume.Version{
			ID:              id,
			Name:            name,
			CreatedAt:       now,
			LastModified:    now,
			Education:       []resume.EducationItem{},
			Experience:      []resume.ExperienceItem{},
			Projects:        []resume.ProjectItem{},
			SkillCategories: []resume.SkillCategory{},
		}
		if description != "" {
			v.Description = resume.StringPtr(description)
		}
		doc.Versions = append(doc.Versions, v)
		doc.SetCurrent(id)
		return true
	})
	return id
}

// DuplicateVersion deep-copies the source version under a fresh id. The
// current selection does not change.
func (s *Store) DuplicateVersion(ctx context.Context, sourceID, newName string) (string, bool) {
	var id string
	s.mutate(ctx, "duplicate_version", func(doc *resume.Document) bool {
		i := doc.VersionIndex(sourceID)
		if i < 0 {
			return false
		}
		now := s.now()
		v := doc.Versions[i].Clone()
		v.ID = s.newID()
		v.Name = newName
		v.Description = resume.StringPtr(fmt.Sprintf("Copy of %s", doc.Versions[i].Name))
		v.CreatedAt = now
		v.LastModified = now
		doc.Versions = append(doc.Versions, v)
		id = v.ID
		return true
	})
	return id, id != ""
}

// DeleteVersion removes the version. When it was current, the first remaining
// version becomes current, or none when it was the last one.
func (s *Store) DeleteVersion(ctx context.Context, id string) {
	s.mutate(ctx, "delete_version", func(doc *resume.Document) bool {
		i := doc.VersionIndex(id)
		if i < 0 {
			return false
		}
		wasCurrent := doc.CurrentVersionID != nil && *doc.CurrentVersionID == id
		doc.Versions = append(doc.Versions[:i:i], doc.Versions[i+1:]...)
		if wasCurrent {
			next := ""
			if len(doc.Versions) > 0 {
				next = doc.Versions[0].ID
			}
			doc.SetCurrent(next)
		}
		return true
	})
}

// SwitchVersion selects an existing version.
func (s *Store) SwitchVersion(ctx context.Context, id string) {
	s.mutate(ctx, "switch_version", func(doc *resume.Document) bool {
		if doc.VersionIndex(id) < 0 {
			return false
		}
		if doc.CurrentVersionID != nil && *doc.CurrentVersionID == id {
			return false
		}
		doc.SetCurrent(id)
		return true
	})
}

// RenameVersion sets the name and, when description is non-nil, the
// description. LastModified is always bumped.
func (s *Store) RenameVersion(ctx context.Context, id, name string, description *string) {
	s.mutate(ctx, "rename_version", func(doc *resume.Document) bool {
		i := doc.VersionIndex(id)
		if i < 0 {
			return false
		}
		v := &doc.Versions[i]
		v.Name = name
		if description != nil {
			v.Description = resume.StringPtr(*description)
		}
		v.LastModified = s.now()
		return true
	})
}
