package store

import (
	"context"

	"resume-studio/internal/resume"
)

// UpdateHeader merges patch into the master header.
func (s *Store) UpdateHeader(ctx context.Context, patch resume.HeaderPatch) {
	s.mutate(ctx, "update_header", func(doc *resume.Document) bool {
		doc.MasterData.Header = patch.Apply(doc.MasterData.Header)
		return true
	})
}

// AddMasterEducation appends item to master data. The caller supplies the id.
func (s *Store) AddMasterEducation(ctx context.Context, item resume.EducationItem) {
	s.mutate(ctx, "add_master_education", func(doc *resume.Document) bool {
		educationItems.addMaster(doc, item)
		return true
	})
}

// UpdateMasterEducation merges patch into the master item and carries the
// change into every version copy that had not diverged from it.
func (s *Store) UpdateMasterEducation(ctx context.Context, id string, patch resume.EducationPatch) {
	s.mutate(ctx, "update_master_education", func(doc *resume.Document) bool {
		return educationItems.updateMaster(doc, id, patch.Apply, s.now)
	})
}

// DeleteMasterEducation removes the master item. Version copies are kept.
func (s *Store) DeleteMasterEducation(ctx context.Context, id string) {
	s.mutate(ctx, "delete_master_education", func(doc *resume.Document) bool {
		return educationItems.deleteMaster(doc, id)
	})
}

func (s *Store) AddMasterExperience(ctx context.Context, item resume.ExperienceItem) {
	s.mutate(ctx, "add_master_experience", func(doc *resume.Document) bool {
		experienceItems.addMaster(doc, item)
		return true
	})
}

func (s *Store) UpdateMasterExperience(ctx context.Context, id string, patch resume.ExperiencePatch) {
	s.mutate(ctx, "update_master_experience", func(doc *resume.Document) bool {
		return experienceItems.updateMaster(doc, id, patch.Apply, s.now)
	})
}

func (s *Store) DeleteMasterExperience(ctx context.Context, id string) {
	s.mutate(ctx, "delete_master_experience", func(doc *resume.Document) bool {
		return experienceItems.deleteMaster(doc, id)
	})
}

func (s *Store) AddMasterProject(ctx context.Context, item resume.ProjectItem) {
	s.mutate(ctx, "add_master_project", func(doc *resume.Document) bool {
		projectItems.addMaster(doc, item)
		return true
	})
}

func (s *Store) UpdateMasterProject(ctx context.Context, id string, patch resume.ProjectPatch) {
	s.mutate(ctx, "update_master_project", func(doc *resume.Document) bool {
		return projectItems.updateMaster(doc, id, patch.Apply, s.now)
	})
}

func (s *Store) DeleteMasterProject(ctx context.Context, id string) {
	s.mutate(ctx, "delete_master_project", func(doc *resume.Document) bool {
		return projectItems.deleteMaster(doc, id)
	})
}

func (s *Store) AddMasterSkillCategory(ctx context.Context, item resume.SkillCategory) {
	s.mutate(ctx, "add_master_skill_category", func(doc *resume.Document) bool {
		skillItems.addMaster(doc, item)
		return true
	})
}

func (s *Store) UpdateMasterSkillCategory(ctx context.Context, id string, patch resume.SkillCategoryPatch) {
	s.mutate(ctx, "update_master_skill_category", func(doc *resume.Document) bool {
		return skillItems.updateMaster(doc, id, patch.Apply, s.now)
	})
}

func (s *Store) DeleteMasterSkillCategory(ctx context.Context, id string) {
	s.mutate(ctx, "delete_master_skill_category", func(doc *resume.Document) bool {
		return skillItems.deleteMaster(doc, id)
	})
}

// AddNewEducationToCurrentVersion adds item to master data and a linked copy
// to the current version, returning the copy's id. Without a current version
// the item still lands in master data and ok is false.
func (s *Store) AddNewEducationToCurrentVersion(ctx context.Context, item resume.EducationItem) (string, bool) {
	return addNew(s, ctx, "add_new_education", educationItems, item)
}

func (s *Store) AddNewExperienceToCurrentVersion(ctx context.Context, item resume.ExperienceItem) (string, bool) {
	return addNew(s, ctx, "add_new_experience", experienceItems, item)
}

func (s *Store) AddNewProjectToCurrentVersion(ctx context.Context, item resume.ProjectItem) (string, bool) {
	return addNew(s, ctx, "add_new_project", projectItems, item)
}

func (s *Store) AddNewSkillCategoryToCurrentVersion(ctx context.Context, item resume.SkillCategory) (string, bool) {
	return addNew(s, ctx, "add_new_skill_category", skillItems, item)
}

func addNew[T resume.Item[T]](s *Store, ctx context.Context, op string, c collection[T], item T) (string, bool) {
	var copyID string
	s.mutate(ctx, op, func(doc *resume.Document) bool {
		masterID := item.ItemID()
		if masterID == "" {
			masterID = s.newID()
		}
		c.addMaster(doc, item.WithLineage(masterID, "", false))

		if v := doc.Current(); v != nil {
			copyID = s.newID()
			c.addFromMaster(doc, v, masterID, copyID)
			v.LastModified = s.now()
		}
		return true
	})
	return copyID, copyID != ""
}
