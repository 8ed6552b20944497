package store

import (
	"context"

	"resume-studio/internal/resume"
)

// Resume materializes the single-résumé view: the master header plus the
// current version's content. ok is false when no version is selected.
func (s *Store) Resume() (resume.Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.doc.Current()
	if v == nil {
		return resume.Resume{}, false
	}
	return resume.Resume{
		Header:     s.doc.MasterData.Header,
		Education:  resume.CloneItems(v.Education),
		Experience: resume.CloneItems(v.Experience),
		Projects:   resume.CloneItems(v.Projects),
		Skills:     resume.SkillsFromCategories(v.SkillCategories),
	}, true
}

// SetResume imports a whole résumé. On an empty store it bootstraps master
// data and a first version from it. Otherwise every incoming item is added to
// master data and, when a version is selected, linked into it. The incoming
// header only fills an empty master header.
func (s *Store) SetResume(ctx context.Context, r resume.Resume) {
	s.mutate(ctx, "set_resume", func(doc *resume.Document) bool {
		if len(doc.Versions) == 0 {
			*doc = resume.Bootstrap(r.Clone(), s.newID, s.now())
			return true
		}

		if doc.MasterData.Header.IsZero() {
			doc.MasterData.Header = r.Header
		}
		v := doc.Current()
		importItems(s, doc, v, educationItems, r.Education)
		importItems(s, doc, v, experienceItems, r.Experience)
		importItems(s, doc, v, projectItems, r.Projects)
		importItems(s, doc, v, skillItems, r.Skills.Categories(s.newID))
		if v != nil {
			v.LastModified = s.now()
		}
		return true
	})
}

// importItems appends items to master and, when v is set, links a copy of
// each into v. An id already taken in master gets a fresh one so the copy
// always carries the incoming content.
func importItems[T resume.Item[T]](s *Store, doc *resume.Document, v *resume.Version, c collection[T], items []T) {
	for _, it := range items {
		masterID := it.ItemID()
		if masterID == "" || indexOf(*c.master(&doc.MasterData), masterID) >= 0 {
			masterID = s.newID()
		}
		c.addMaster(doc, it.WithLineage(masterID, "", false))
		if v != nil {
			copies := c.version(v)
			*copies = append(*copies, it.WithLineage(s.newID(), masterID, true))
		}
	}
}

// UpdateEducation replaces the current version's education list.
func (s *Store) UpdateEducation(ctx context.Context, items []resume.EducationItem) {
	s.UpdateCurrentVersionEducation(ctx, items)
}

// UpdateExperience replaces the current version's experience list.
func (s *Store) UpdateExperience(ctx context.Context, items []resume.ExperienceItem) {
	s.UpdateCurrentVersionExperience(ctx, items)
}

// UpdateProjects replaces the current version's project list.
func (s *Store) UpdateProjects(ctx context.Context, items []resume.ProjectItem) {
	s.UpdateCurrentVersionProjects(ctx, items)
}

// UpdateSkills merges skills into the current version by category name.
// Existing categories get their skills replaced; new names are appended.
func (s *Store) UpdateSkills(ctx context.Context, skills resume.Skills) {
	s.mutateCurrent(ctx, "update_skills", func(_ *resume.Document, v *resume.Version) bool {
		if len(skills) == 0 {
			return false
		}
		for _, group := range skills {
			found := false
			for i := range v.SkillCategories {
				if v.SkillCategories[i].Name == group.Name {
					v.SkillCategories[i].Skills = append([]string{}, group.Skills...)
					found = true
					break
				}
			}
			if !found {
				v.SkillCategories = append(v.SkillCategories, resume.SkillCategory{
					ID:     s.newID(),
					Name:   group.Name,
					Skills: append([]string{}, group.Skills...),
				})
			}
		}
		return true
	})
}

// Reset discards everything and leaves an empty document.
func (s *Store) Reset(ctx context.Context) {
	s.mutate(ctx, "reset", func(doc *resume.Document) bool {
		*doc = resume.NewDocument()
		return true
	})
}

// ApplyImprovements writes accepted bullet rewrites into the matching items of
// the current version and, when present, replaces its skill categories.
func (s *Store) ApplyImprovements(ctx context.Context, imp resume.Improvements) {
	if imp.IsEmpty() {
		return
	}
	s.mutateCurrent(ctx, "apply_improvements", func(_ *resume.Document, v *resume.Version) bool {
		changed := false
		for _, ii := range imp.Experience {
			if i := indexOf(v.Experience, ii.ID); i >= 0 {
				v.Experience[i].Bullets = ii.ImprovedBullets()
				changed = true
			}
		}
		for _, ii := range imp.Projects {
			if i := indexOf(v.Projects, ii.ID); i >= 0 {
				v.Projects[i].Bullets = ii.ImprovedBullets()
				changed = true
			}
		}
		if imp.Skills != nil && len(imp.Skills.Improved) > 0 {
			v.SkillCategories = imp.Skills.Improved.Categories(s.newID)
			changed = true
		}
		return changed
	})
}
