package service

import "resume-studio/internal/resume"

// EventType identifies what a progress event is about.
type EventType string

const (
	EventExperience EventType = "experience"
	EventProject    EventType = "project"
	EventSkills     EventType = "skills"
)

// EventStatus is the lifecycle stage of one improvement task.
type EventStatus string

const (
	StatusPending    EventStatus = "pending"
	StatusProcessing EventStatus = "processing"
	StatusCompleted  EventStatus = "completed"
	StatusError      EventStatus = "error"
)

// ProgressEvent reports the state of one improvement task.
type ProgressEvent struct {
	Type     EventType                  `json:"type"`
	ID       string                     `json:"id,omitempty"`
	Status   EventStatus                `json:"status"`
	Title    string                     `json:"title,omitempty"`
	Company  string                     `json:"company,omitempty"`
	Name     string                     `json:"name,omitempty"`
	Bullets  []resume.BulletImprovement `json:"bullets,omitempty"`
	Original resume.Skills              `json:"original,omitempty"`
	Improved resume.Skills              `json:"improved,omitempty"`
	Reason   string                     `json:"reason,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// CollectImprovements folds completed events into an Improvements value.
// Pending, processing and error events are ignored. ok is false when no
// event carried anything to apply.
func CollectImprovements(events []ProgressEvent) (resume.Improvements, bool) {
	var out resume.Improvements
	for _, ev := range events {
		if ev.Status != StatusCompleted {
			continue
		}
		switch ev.Type {
		case EventExperience:
			out.Experience = append(out.Experience, resume.ItemImprovement{ID: ev.ID, Bullets: ev.Bullets})
		case EventProject:
			out.Projects = append(out.Projects, resume.ItemImprovement{ID: ev.ID, Bullets: ev.Bullets})
		case EventSkills:
			out.Skills = &resume.SkillsImprovement{
				Original: ev.Original.Clone(),
				Improved: ev.Improved.Clone(),
				Reason:   ev.Reason,
			}
		}
	}
	return out, !out.IsEmpty()
}
