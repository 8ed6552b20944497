package resume

// Item is implemented by the four collection item types so that
// collection logic can be written once.
type Item[T any] interface {
	// ItemID returns the id, unique within the owning collection.
	ItemID() string
	// MasterRef returns the id of the master item this copy came from, or "".
	MasterRef() string
	// SyncsWithMaster reports the advisory autoSync flag.
	SyncsWithMaster() bool
	// Clone returns a deep copy.
	Clone() T
	// WithLineage returns a deep copy carrying the given id and lineage fields.
	WithLineage(id, masterID string, autoSync bool) T
	// DiffersFrom reports whether the content differs from master.
	// A nil master never differs.
	DiffersFrom(master *T) bool
}

func (e EducationItem) ItemID() string        { return e.ID }
func (e EducationItem) MasterRef() string     { return e.MasterID }
func (e EducationItem) SyncsWithMaster() bool { return e.AutoSync }

func (e EducationItem) Clone() EducationItem {
	e.Coursework = cloneStrings(e.Coursework)
	return e
}

func (e EducationItem) WithLineage(id, masterID string, autoSync bool) EducationItem {
	out := e.Clone()
	out.ID, out.MasterID, out.AutoSync = id, masterID, autoSync
	return out
}

func (e EducationItem) DiffersFrom(master *EducationItem) bool {
	return EducationDiffers(e, master)
}

func (e ExperienceItem) ItemID() string        { return e.ID }
func (e ExperienceItem) MasterRef() string     { return e.MasterID }
func (e ExperienceItem) SyncsWithMaster() bool { return e.AutoSync }

func (e ExperienceItem) Clone() ExperienceItem {
	e.Bullets = cloneStrings(e.Bullets)
	e.Link = cloneLink(e.Link)
	return e
}

func (e ExperienceItem) WithLineage(id, masterID string, autoSync bool) ExperienceItem {
	out := e.Clone()
	out.ID, out.MasterID, out.AutoSync = id, masterID, autoSync
	return out
}

func (e ExperienceItem) DiffersFrom(master *ExperienceItem) bool {
	return ExperienceDiffers(e, master)
}

func (p ProjectItem) ItemID() string        { return p.ID }
func (p ProjectItem) MasterRef() string     { return p.MasterID }
func (p ProjectItem) SyncsWithMaster() bool { return p.AutoSync }

func (p ProjectItem) Clone() ProjectItem {
	p.Bullets = cloneStrings(p.Bullets)
	p.Link = cloneLink(p.Link)
	return p
}

func (p ProjectItem) WithLineage(id, masterID string, autoSync bool) ProjectItem {
	out := p.Clone()
	out.ID, out.MasterID, out.AutoSync = id, masterID, autoSync
	return out
}

func (p ProjectItem) DiffersFrom(master *ProjectItem) bool {
	return ProjectDiffers(p, master)
}

func (c SkillCategory) ItemID() string        { return c.ID }
func (c SkillCategory) MasterRef() string     { return c.MasterID }
func (c SkillCategory) SyncsWithMaster() bool { return c.AutoSync }

func (c SkillCategory) Clone() SkillCategory {
	c.Skills = cloneStrings(c.Skills)
	return c
}

func (c SkillCategory) WithLineage(id, masterID string, autoSync bool) SkillCategory {
	out := c.Clone()
	out.ID, out.MasterID, out.AutoSync = id, masterID, autoSync
	return out
}

func (c SkillCategory) DiffersFrom(master *SkillCategory) bool {
	return SkillCategoryDiffers(c, master)
}

// CloneItems deep-copies a collection. A nil input yields an empty slice.
func CloneItems[T Item[T]](items []T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Clone returns a deep copy of the version.
func (v Version) Clone() Version {
	v.Description = cloneLink(v.Description)
	v.Education = CloneItems(v.Education)
	v.Experience = CloneItems(v.Experience)
	v.Projects = CloneItems(v.Projects)
	v.SkillCategories = CloneItems(v.SkillCategories)
	return v
}

// Clone returns a deep copy of the master data.
func (m MasterData) Clone() MasterData {
	m.Education = CloneItems(m.Education)
	m.Experience = CloneItems(m.Experience)
	m.Projects = CloneItems(m.Projects)
	m.SkillCategories = CloneItems(m.SkillCategories)
	return m
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		MasterData:       d.MasterData.Clone(),
		Versions:         make([]Version, len(d.Versions)),
		CurrentVersionID: cloneLink(d.CurrentVersionID),
	}
	for i, v := range d.Versions {
		out.Versions[i] = v.Clone()
	}
	return out
}

// Clone returns a deep copy of the résumé.
func (r Resume) Clone() Resume {
	r.Education = CloneItems(r.Education)
	r.Experience = CloneItems(r.Experience)
	r.Projects = CloneItems(r.Projects)
	r.Skills = r.Skills.Clone()
	return r
}

// HasContent reports whether the résumé carries any item or skill.
func (r Resume) HasContent() bool {
	return len(r.Education) > 0 || len(r.Experience) > 0 || len(r.Projects) > 0 || len(r.Skills) > 0
}

func cloneLink(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
