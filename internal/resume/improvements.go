package resume

// BulletImprovement is one rewritten bullet with the reason for the change.
type BulletImprovement struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// ItemImprovement carries rewritten bullets for an experience or project item.
// The bullets cover the whole item; partial sets are not supported.
type ItemImprovement struct {
	ID      string              `json:"id"`
	Bullets []BulletImprovement `json:"bullets"`
}

// ImprovedBullets returns the improved strings in order.
func (i ItemImprovement) ImprovedBullets() []string {
	out := make([]string, 0, len(i.Bullets))
	for _, b := range i.Bullets {
		out = append(out, b.Improved)
	}
	return out
}

// SkillsImprovement is a reorganised skills map.
type SkillsImprovement struct {
	Original Skills `json:"original"`
	Improved Skills `json:"improved"`
	Reason   string `json:"reason"`
}

// Improvements is the accepted output of the improvement pipeline.
type Improvements struct {
	Experience []ItemImprovement  `json:"experience"`
	Projects   []ItemImprovement  `json:"projects"`
	Skills     *SkillsImprovement `json:"skills,omitempty"`
}

// IsEmpty reports whether there is nothing to apply.
func (i Improvements) IsEmpty() bool {
	return len(i.Experience) == 0 && len(i.Projects) == 0 && (i.Skills == nil || len(i.Skills.Improved) == 0)
}
