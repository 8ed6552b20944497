package resume

import "time"

// Header holds contact details shared by every version.
type Header struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// IsZero reports whether every header field is empty.
func (h Header) IsZero() bool {
	return h == Header{}
}

// EducationItem is a school entry.
type EducationItem struct {
	ID         string   `json:"id"`
	School     string   `json:"school"`
	Location   string   `json:"location"`
	Degree     string   `json:"degree"`
	Dates      string   `json:"dates"`
	Coursework []string `json:"coursework"`
	MasterID   string   `json:"masterId,omitempty"` // Empty when the item has no master lineage
	AutoSync   bool     `json:"autoSync,omitempty"` // Advisory only, propagation is decided by comparison
}

// ExperienceItem is a job entry.
type ExperienceItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
	Link     *string  `json:"link,omitempty"`
	MasterID string   `json:"masterId,omitempty"`
	AutoSync bool     `json:"autoSync,omitempty"`
}

// ProjectItem is a project entry.
type ProjectItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
	Link     *string  `json:"link,omitempty"`
	MasterID string   `json:"masterId,omitempty"`
	AutoSync bool     `json:"autoSync,omitempty"`
}

// SkillCategory is a labelled group of skills, e.g. "Languages".
// Several categories may share a name.
type SkillCategory struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Skills   []string `json:"skills"`
	MasterID string   `json:"masterId,omitempty"`
	AutoSync bool     `json:"autoSync,omitempty"`
}

// MasterData is the canonical pool every version draws from.
type MasterData struct {
	Header          Header           `json:"header"`
	Education       []EducationItem  `json:"education"`
	Experience      []ExperienceItem `json:"experience"`
	Projects        []ProjectItem    `json:"projects"`
	SkillCategories []SkillCategory  `json:"skillCategories"`
}

// Version is a named, independently editable selection of items.
// Items are full copies; MasterID links them back to master data.
type Version struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastModified    time.Time        `json:"lastModified"`
	Education       []EducationItem  `json:"education"`
	Experience      []ExperienceItem `json:"experience"`
	Projects        []ProjectItem    `json:"projects"`
	SkillCategories []SkillCategory  `json:"skillCategories"`
}

// Document is the whole persisted state.
// CurrentVersionID is nil exactly when no version is selected.
type Document struct {
	MasterData       MasterData `json:"masterData"`
	Versions         []Version  `json:"versions"`
	CurrentVersionID *string    `json:"currentVersionId"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() Document {
	return Document{
		MasterData: MasterData{
			Education:       []EducationItem{},
			Experience:      []ExperienceItem{},
			Projects:        []ProjectItem{},
			SkillCategories: []SkillCategory{},
		},
		Versions: []Version{},
	}
}

// VersionIndex returns the index of the version with the given id, or -1.
func (d *Document) VersionIndex(id string) int {
	for i := range d.Versions {
		if d.Versions[i].ID == id {
			return i
		}
	}
	return -1
}

// Current returns a pointer to the selected version, or nil.
func (d *Document) Current() *Version {
	if d.CurrentVersionID == nil {
		return nil
	}
	if i := d.VersionIndex(*d.CurrentVersionID); i >= 0 {
		return &d.Versions[i]
	}
	return nil
}

// SetCurrent selects the version with the given id; an empty id clears the selection.
func (d *Document) SetCurrent(id string) {
	if id == "" {
		d.CurrentVersionID = nil
		return
	}
	d.CurrentVersionID = &id
}

// RepairCurrent points CurrentVersionID at an existing version or clears it.
func (d *Document) RepairCurrent() {
	if d.CurrentVersionID != nil && d.VersionIndex(*d.CurrentVersionID) >= 0 {
		return
	}
	if len(d.Versions) > 0 {
		d.SetCurrent(d.Versions[0].ID)
		return
	}
	d.CurrentVersionID = nil
}

// normalize replaces nil collections with empty ones so the document always
// encodes arrays rather than nulls.
func (d *Document) normalize() {
	if d.MasterData.Education == nil {
		d.MasterData.Education = []EducationItem{}
	}
	if d.MasterData.Experience == nil {
		d.MasterData.Experience = []ExperienceItem{}
	}
	if d.MasterData.Projects == nil {
		d.MasterData.Projects = []ProjectItem{}
	}
	if d.MasterData.SkillCategories == nil {
		d.MasterData.SkillCategories = []SkillCategory{}
	}
	if d.Versions == nil {
		d.Versions = []Version{}
	}
	for i := range d.Versions {
		v := &d.Versions[i]
		if v.Education == nil {
			v.Education = []EducationItem{}
		}
		if v.Experience == nil {
			v.Experience = []ExperienceItem{}
		}
		if v.Projects == nil {
			v.Projects = []ProjectItem{}
		}
		if v.SkillCategories == nil {
			v.SkillCategories = []SkillCategory{}
		}
	}
}

// Resume is the pre-versioning, single-résumé shape. It is still what
// generators, parsers and the improvement pipeline consume.
type Resume struct {
	Header     Header           `json:"header"`
	Education  []EducationItem  `json:"education"`
	Experience []ExperienceItem `json:"experience"`
	Projects   []ProjectItem    `json:"projects"`
	Skills     Skills           `json:"skills"`
}

// LegacyDocument is the persisted shape before versions existed.
type LegacyDocument struct {
	Resume *Resume `json:"resume"`
}
