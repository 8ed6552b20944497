package resume

// Patches describe partial updates. A nil scalar pointer or a nil slice leaves
// the field unchanged; a non-nil empty slice clears it. For Link, a pointer to
// the empty string removes the link.

// HeaderPatch is a partial header update.
type HeaderPatch struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// Apply returns h with the patch merged in.
func (p HeaderPatch) Apply(h Header) Header {
	setString(&h.Name, p.Name)
	setString(&h.Phone, p.Phone)
	setString(&h.Email, p.Email)
	setString(&h.Website, p.Website)
	setString(&h.LinkedIn, p.LinkedIn)
	setString(&h.GitHub, p.GitHub)
	return h
}

// EducationPatch is a partial education update.
type EducationPatch struct {
	School     *string  `json:"school,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Degree     *string  `json:"degree,omitempty"`
	Dates      *string  `json:"dates,omitempty"`
	Coursework []string `json:"coursework,omitempty"`
}

// Apply returns a copy of e with the patch merged in. Lineage fields are kept.
func (p EducationPatch) Apply(e EducationItem) EducationItem {
	out := e.Clone()
	setString(&out.School, p.School)
	setString(&out.Location, p.Location)
	setString(&out.Degree, p.Degree)
	setString(&out.Dates, p.Dates)
	setStrings(&out.Coursework, p.Coursework)
	return out
}

// ExperiencePatch is a partial experience update.
type ExperiencePatch struct {
	Title    *string  `json:"title,omitempty"`
	Company  *string  `json:"company,omitempty"`
	Location *string  `json:"location,omitempty"`
	Dates    *string  `json:"dates,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Link     *string  `json:"link,omitempty"`
}

// Apply returns a copy of e with the patch merged in. Lineage fields are kept.
func (p ExperiencePatch) Apply(e ExperienceItem) ExperienceItem {
	out := e.Clone()
	setString(&out.Title, p.Title)
	setString(&out.Company, p.Company)
	setString(&out.Location, p.Location)
	setString(&out.Dates, p.Dates)
	setStrings(&out.Bullets, p.Bullets)
	setLink(&out.Link, p.Link)
	return out
}

// ProjectPatch is a partial project update.
type ProjectPatch struct {
	Name    *string  `json:"name,omitempty"`
	Dates   *string  `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
	Link    *string  `json:"link,omitempty"`
}

// Apply returns a copy of pr with the patch merged in. Lineage fields are kept.
func (p ProjectPatch) Apply(pr ProjectItem) ProjectItem {
	out := pr.Clone()
	setString(&out.Name, p.Name)
	setString(&out.Dates, p.Dates)
	setStrings(&out.Bullets, p.Bullets)
	setLink(&out.Link, p.Link)
	return out
}

// SkillCategoryPatch is a partial skill category update.
type SkillCategoryPatch struct {
	Name   *string  `json:"name,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

// Apply returns a copy of c with the patch merged in. Lineage fields are kept.
func (p SkillCategoryPatch) Apply(c SkillCategory) SkillCategory {
	out := c.Clone()
	setString(&out.Name, p.Name)
	setStrings(&out.Skills, p.Skills)
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v []string) {
	if v != nil {
		*dst = cloneStrings(v)
	}
}

func setLink(dst **string, v *string) {
	if v == nil {
		return
	}
	if *v == "" {
		*dst = nil
		return
	}
	*dst = cloneLink(v)
}
