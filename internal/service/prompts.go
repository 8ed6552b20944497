package service

import (
	"fmt"
	"strings"

	"resume-studio/internal/resume"
)

const improvementGuidelines = `You are an expert tech résumé advisor. Rewrite weak content into signal-dense content that shows the candidate can build, can deliver and can work with others.

Bullet rules:
- Follow Problem, Action, Impact: "Built X using Y to solve Z, resulting in [impact]".
- Start with a strong verb (built, designed, automated, architected, shipped, implemented, refactored, optimized, integrated, deployed).
- Remove soft skills, filler adjectives and passive voice ("responsible for", "was tasked with").
- Make technical choices explicit.
- When numbers are unknown, describe technical, operational, architectural or product impact instead.
- If a bullet is already strong, keep it and set improved equal to original.
- Never invent technologies or results that are not mentioned.
- Always explain why each change makes the résumé stronger.

Reply with a single JSON object and nothing else.`

const bulletReplyShape = `Return {"bullets": [{"original": string, "improved": string, "reason": string}]} with exactly one entry per current bullet, in the same order.`

func experiencePrompt(e resume.ExperienceItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Improve this experience entry.\n\n**%s** at **%s**\n", e.Title, e.Company)
	fmt.Fprintf(&b, "Location: %s\nDuration: %s\n\nCurrent bullets:\n", e.Location, e.Dates)
	writeBullets(&b, e.Bullets)
	b.WriteString("\n")
	b.WriteString(bulletReplyShape)
	return b.String()
}

func projectPrompt(p resume.ProjectItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Improve this project entry.\n\n**%s**\nDuration: %s\n", p.Name, p.Dates)
	if p.Link != nil && *p.Link != "" {
		fmt.Fprintf(&b, "Link: %s\n", *p.Link)
	}
	b.WriteString("\nCurrent bullets:\n")
	writeBullets(&b, p.Bullets)
	b.WriteString("\nFor projects, emphasize the technical challenge, why the technologies were chosen, scale, and user impact.\n")
	b.WriteString(bulletReplyShape)
	return b.String()
}

func skillsPrompt(skills resume.Skills) string {
	var b strings.Builder
	b.WriteString("Reorganize this skills section into clear categories such as Languages, Frontend, Backend, Databases, Cloud & DevOps, Tools, Testing. ")
	b.WriteString("Remove redundancies and order skills from most to least relevant.\n\nCurrent skills:\n")
	for _, g := range skills {
		fmt.Fprintf(&b, "**%s**: %s\n", g.Name, strings.Join(g.Skills, ", "))
	}
	b.WriteString("\nReturn {\"original\": {category: [skill]}, \"improved\": {category: [skill]}, \"reason\": string}.")
	return b.String()
}

func writeBullets(b *strings.Builder, bullets []string) {
	for i, bullet := range bullets {
		fmt.Fprintf(b, "%d. %s\n", i+1, bullet)
	}
}

const parseSystemPrompt = `You convert résumé text into structured JSON. Extract information accurately and never invent content.
Reply with a single JSON object and nothing else.`

func parsePrompt(text string) string {
	return `Parse the résumé below into this shape:
{
  "header": {"name": "", "phone": "", "email": "", "website": "", "linkedin": "", "github": ""},
  "education": [{"id": "", "school": "", "location": "", "degree": "", "dates": "", "coursework": []}],
  "experience": [{"id": "", "title": "", "company": "", "location": "", "dates": "", "bullets": [], "link": ""}],
  "projects": [{"id": "", "name": "", "dates": "", "bullets": [], "link": ""}],
  "skills": {"Category": ["skill"]}
}
Use an empty string or empty array for anything not found. Omit "link" when there is none.
For LinkedIn and GitHub keep just the username (e.g. "john-doe" from "linkedin.com/in/john-doe").
For website keep just the domain (e.g. "example.com" from "https://example.com").

Résumé text:
` + text
}
