package store

import (
	"time"

	"resume-studio/internal/resume"
)

// ItemStatus describes how a version item relates to its master.
type ItemStatus struct {
	// HasMaster is true when the item has a master id that still resolves.
	HasMaster bool `json:"hasMaster"`
	// Modified is true when the item's content differs from that master.
	Modified bool `json:"modified"`
}

// collection binds one item type to where it lives in master data and in a
// version, so every per-section operation is written once.
type collection[T resume.Item[T]] struct {
	master  func(*resume.MasterData) *[]T
	version func(*resume.Version) *[]T
}

var (
	educationItems = collection[resume.EducationItem]{
		master:  func(m *resume.MasterData) *[]resume.EducationItem { return &m.Education },
		version: func(v *resume.Version) *[]resume.EducationItem { return &v.Education },
	}
	experienceItems = collection[resume.ExperienceItem]{
		master:  func(m *resume.MasterData) *[]resume.ExperienceItem { return &m.Experience },
		version: func(v *resume.Version) *[]resume.ExperienceItem { return &v.Experience },
	}
	projectItems = collection[resume.ProjectItem]{
		master:  func(m *resume.MasterData) *[]resume.ProjectItem { return &m.Projects },
		version: func(v *resume.Version) *[]resume.ProjectItem { return &v.Projects },
	}
	skillItems = collection[resume.SkillCategory]{
		master:  func(m *resume.MasterData) *[]resume.SkillCategory { return &m.SkillCategories },
		version: func(v *resume.Version) *[]resume.SkillCategory { return &v.SkillCategories },
	}
)

// sectionOps is the section-independent view of a collection, used by the
// operations that take a resume.Section argument.
type sectionOps interface {
	addFromMaster(doc *resume.Document, v *resume.Version, masterID, newID string) bool
	remove(v *resume.Version, itemID string) bool
	reorder(v *resume.Version, orderedIDs []string) bool
	syncFromMaster(doc *resume.Document, v *resume.Version, itemID string) bool
	promote(doc *resume.Document, v *resume.Version, itemID string) bool
	status(doc *resume.Document, v *resume.Version, itemID string) (ItemStatus, bool)
}

func opsFor(section resume.Section) (sectionOps, bool) {
	switch section {
	case resume.SectionEducation:
		return educationItems, true
	case resume.SectionExperience:
		return experienceItems, true
	case resume.SectionProjects:
		return projectItems, true
	case resume.SectionSkills:
		return skillItems, true
	}
	return nil, false
}

func indexOf[T resume.Item[T]](items []T, id string) int {
	for i := range items {
		if items[i].ItemID() == id {
			return i
		}
	}
	return -1
}

func (c collection[T]) masterItem(doc *resume.Document, id string) (*T, bool) {
	if id == "" {
		return nil, false
	}
	items := *c.master(&doc.MasterData)
	if i := indexOf(items, id); i >= 0 {
		return &items[i], true
	}
	return nil, false
}

func (c collection[T]) addMaster(doc *resume.Document, item T) {
	m := c.master(&doc.MasterData)
	*m = append(*m, item.WithLineage(item.ItemID(), "", false))
}

// updateMaster applies fn to the master item and moves every version copy
// that still matched the old master content along with it. Copies that had
// diverged are left alone.
func (c collection[T]) updateMaster(doc *resume.Document, id string, fn func(T) T, now func() time.Time) bool {
	items := *c.master(&doc.MasterData)
	i := indexOf(items, id)
	if i < 0 {
		return false
	}
	before := items[i].Clone()
	after := fn(items[i]).WithLineage(before.ItemID(), "", false)
	items[i] = after

	for vi := range doc.Versions {
		v := &doc.Versions[vi]
		copies := *c.version(v)
		changed := false
		for j := range copies {
			if copies[j].MasterRef() != id || copies[j].DiffersFrom(&before) {
				continue
			}
			copies[j] = after.WithLineage(copies[j].ItemID(), copies[j].MasterRef(), copies[j].SyncsWithMaster())
			changed = true
		}
		if changed {
			v.LastModified = now()
		}
	}
	return true
}

func (c collection[T]) deleteMaster(doc *resume.Document, id string) bool {
	m := c.master(&doc.MasterData)
	i := indexOf(*m, id)
	if i < 0 {
		return false
	}
	*m = append((*m)[:i:i], (*m)[i+1:]...)
	return true
}

func (c collection[T]) addFromMaster(doc *resume.Document, v *resume.Version, masterID, newID string) bool {
	master, ok := c.masterItem(doc, masterID)
	if !ok {
		return false
	}
	items := c.version(v)
	*items = append(*items, (*master).WithLineage(newID, masterID, true))
	return true
}

func (c collection[T]) replace(v *resume.Version, items []T) {
	*c.version(v) = resume.CloneItems(items)
}

func (c collection[T]) remove(v *resume.Version, itemID string) bool {
	items := c.version(v)
	i := indexOf(*items, itemID)
	if i < 0 {
		return false
	}
	*items = append((*items)[:i:i], (*items)[i+1:]...)
	return true
}

// reorder rebuilds the collection in the order of orderedIDs. Unknown ids and
// repeats are skipped; items not named are dropped.
func (c collection[T]) reorder(v *resume.Version, orderedIDs []string) bool {
	items := c.version(v)
	out := make([]T, 0, len(orderedIDs))
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if seen[id] {
			continue
		}
		if i := indexOf(*items, id); i >= 0 {
			out = append(out, (*items)[i])
			seen[id] = true
		}
	}
	*items = out
	return true
}

func (c collection[T]) syncFromMaster(doc *resume.Document, v *resume.Version, itemID string) bool {
	items := *c.version(v)
	i := indexOf(items, itemID)
	if i < 0 {
		return false
	}
	cur := items[i]
	master, ok := c.masterItem(doc, cur.MasterRef())
	if !ok || !cur.DiffersFrom(master) {
		return false
	}
	items[i] = (*master).WithLineage(cur.ItemID(), cur.MasterRef(), cur.SyncsWithMaster())
	return true
}

func (c collection[T]) promote(doc *resume.Document, v *resume.Version, itemID string) bool {
	items := *c.version(v)
	i := indexOf(items, itemID)
	if i < 0 {
		return false
	}
	cur := items[i]
	master, ok := c.masterItem(doc, cur.MasterRef())
	if !ok || !cur.DiffersFrom(master) {
		return false
	}
	*master = cur.WithLineage((*master).ItemID(), "", false)
	return true
}

func (c collection[T]) status(doc *resume.Document, v *resume.Version, itemID string) (ItemStatus, bool) {
	items := *c.version(v)
	i := indexOf(items, itemID)
	if i < 0 {
		return ItemStatus{}, false
	}
	master, ok := c.masterItem(doc, items[i].MasterRef())
	if !ok {
		return ItemStatus{}, true
	}
	return ItemStatus{HasMaster: true, Modified: items[i].DiffersFrom(master)}, true
}
