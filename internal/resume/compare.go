package resume

import "slices"

// EducationDiffers reports whether a version copy has drifted from its
// master. Items without a master never count as modified.
func EducationDiffers(v EducationItem, m *EducationItem) bool {
	if m == nil {
		return false
	}
	return v.School != m.School ||
		v.Location != m.Location ||
		v.Degree != m.Degree ||
		v.Dates != m.Dates ||
		!slices.Equal(v.Coursework, m.Coursework)
}

// ExperienceDiffers reports whether a version copy has drifted from its master.
func ExperienceDiffers(v ExperienceItem, m *ExperienceItem) bool {
	if m == nil {
		return false
	}
	return v.Title != m.Title ||
		v.Company != m.Company ||
		v.Location != m.Location ||
		v.Dates != m.Dates ||
		!linksEqual(v.Link, m.Link) ||
		!slices.Equal(v.Bullets, m.Bullets)
}

// ProjectDiffers reports whether a version copy has drifted from its master.
func ProjectDiffers(v ProjectItem, m *ProjectItem) bool {
	if m == nil {
		return false
	}
	return v.Name != m.Name ||
		v.Dates != m.Dates ||
		!linksEqual(v.Link, m.Link) ||
		!slices.Equal(v.Bullets, m.Bullets)
}

// SkillCategoryDiffers reports whether a version copy has drifted from its master.
func SkillCategoryDiffers(v SkillCategory, m *SkillCategory) bool {
	if m == nil {
		return false
	}
	return v.Name != m.Name || !slices.Equal(v.Skills, m.Skills)
}

// linksEqual treats an absent link and an empty link as different values.
func linksEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
