// Package render turns a résumé into documents: Markdown for export and an
// HTML page for previews.
package render

import (
	"fmt"
	"strings"

	"resume-studio/internal/resume"
)

// Generator renders a résumé into a document.
type Generator interface {
	Generate(r resume.Resume) string
}

// MarkdownGenerator renders résumés as Markdown. Sections without content
// are omitted. Inline **bold** in bullets passes through unchanged.
type MarkdownGenerator struct{}

// NewMarkdownGenerator creates a MarkdownGenerator.
func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

// Generate renders r in a fixed order: header, education, experience,
// projects, skills.
func (g *MarkdownGenerator) Generate(r resume.Resume) string {
	parts := []string{
		header(r.Header),
		education(r.Education),
		experience(r.Experience),
		projects(r.Projects),
		skills(r.Skills),
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

func header(h resume.Header) string {
	var b strings.Builder
	if h.Name != "" {
		fmt.Fprintf(&b, "# %s\n\n", h.Name)
	}
	var contact []string
	if h.Phone != "" {
		contact = append(contact, h.Phone)
	}
	if h.Email != "" {
		contact = append(contact, fmt.Sprintf("[%s](mailto:%s)", h.Email, h.Email))
	}
	if h.Website != "" {
		contact = append(contact, fmt.Sprintf("[%s](https://%s)", h.Website, h.Website))
	}
	if h.LinkedIn != "" {
		contact = append(contact, fmt.Sprintf("[linkedin.com/in/%s](https://linkedin.com/in/%s)", h.LinkedIn, h.LinkedIn))
	}
	if h.GitHub != "" {
		contact = append(contact, fmt.Sprintf("[github.com/%s](https://github.com/%s)", h.GitHub, h.GitHub))
	}
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

func education(items []resume.EducationItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Education\n\n")
	for _, e := range items {
		fmt.Fprintf(&b, "### %s\n\n", joinNonEmpty(", ", e.School, e.Location))
		if line := joinNonEmpty(" | ", e.Degree, e.Dates); line != "" {
			fmt.Fprintf(&b, "*%s*\n\n", line)
		}
		if len(e.Coursework) > 0 {
			fmt.Fprintf(&b, "Coursework: %s\n\n", strings.Join(e.Coursework, ", "))
		}
	}
	return b.String()
}

func experience(items []resume.ExperienceItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Experience\n\n")
	for _, e := range items {
		title := e.Title
		if e.Link != nil && *e.Link != "" {
			title = fmt.Sprintf("[%s](%s)", e.Title, *e.Link)
		}
		fmt.Fprintf(&b, "### %s%s\n\n", title, suffix(" at ", e.Company))
		if meta := joinNonEmpty(" | ", e.Location, e.Dates); meta != "" {
			fmt.Fprintf(&b, "*%s*\n\n", meta)
		}
		bullets(&b, e.Bullets)
	}
	return b.String()
}

func projects(items []resume.ProjectItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Projects\n\n")
	for _, p := range items {
		name := p.Name
		if p.Link != nil && *p.Link != "" {
			name = fmt.Sprintf("[%s](%s)", p.Name, *p.Link)
		}
		fmt.Fprintf(&b, "### %s\n\n", name)
		if p.Dates != "" {
			fmt.Fprintf(&b, "*%s*\n\n", p.Dates)
		}
		bullets(&b, p.Bullets)
	}
	return b.String()
}

func skills(s resume.Skills) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Skills\n\n")
	for _, g := range s {
		fmt.Fprintf(&b, "- **%s**: %s\n", g.Name, strings.Join(g.Skills, ", "))
	}
	return b.String()
}

func bullets(b *strings.Builder, items []string) {
	if len(items) == 0 {
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func suffix(sep, s string) string {
	if s == "" {
		return ""
	}
	return sep + s
}
