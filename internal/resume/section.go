package resume

import "fmt"

// Section names one of the four item collections.
type Section int

const (
	SectionEducation Section = iota + 1
	SectionExperience
	SectionProjects
	SectionSkills
)

// Sections lists every section in presentation order.
var Sections = []Section{SectionEducation, SectionExperience, SectionProjects, SectionSkills}

// String returns the wire name of the section.
func (s Section) String() string {
	switch s {
	case SectionEducation:
		return "education"
	case SectionExperience:
		return "experience"
	case SectionProjects:
		return "projects"
	case SectionSkills:
		return "skills"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// ParseSection maps a wire name to a Section.
func ParseSection(name string) (Section, error) {
	switch name {
	case "education":
		return SectionEducation, nil
	case "experience":
		return SectionExperience, nil
	case "projects", "project":
		return SectionProjects, nil
	case "skills", "skillCategories":
		return SectionSkills, nil
	default:
		return 0, fmt.Errorf("unknown section %q", name)
	}
}
