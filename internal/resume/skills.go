package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// SkillGroup is one category entry of a Skills map.
type SkillGroup struct {
	Name   string
	Skills []string
}

// Skills maps category names to skills, keeping the order categories were
// first seen. It encodes as a JSON object, e.g. {"Languages": ["Go"]}.
type Skills []SkillGroup

// Get returns the skills listed under name.
func (s Skills) Get(name string) ([]string, bool) {
	for _, g := range s {
		if g.Name == name {
			return g.Skills, true
		}
	}
	return nil, false
}

// Set replaces the skills under name in place, or appends a new category.
func (s *Skills) Set(name string, skills []string) {
	for i := range *s {
		if (*s)[i].Name == name {
			(*s)[i].Skills = skills
			return
		}
	}
	*s = append(*s, SkillGroup{Name: name, Skills: skills})
}

// Names returns the category names in order.
func (s Skills) Names() []string {
	names := make([]string, 0, len(s))
	for _, g := range s {
		names = append(names, g.Name)
	}
	return names
}

// Clone returns a deep copy.
func (s Skills) Clone() Skills {
	if s == nil {
		return nil
	}
	out := make(Skills, len(s))
	for i, g := range s {
		out[i] = SkillGroup{Name: g.Name, Skills: cloneStrings(g.Skills)}
	}
	return out
}

// Categories converts the map into skill categories, one per key, with ids
// taken from newID.
func (s Skills) Categories(newID func() string) []SkillCategory {
	out := make([]SkillCategory, 0, len(s))
	for _, g := range s {
		out = append(out, SkillCategory{
			ID:     newID(),
			Name:   g.Name,
			Skills: cloneStrings(g.Skills),
		})
	}
	return out
}

// SkillsFromCategories flattens categories into a Skills map.
// A later category with a repeated name overwrites the earlier one.
func SkillsFromCategories(categories []SkillCategory) Skills {
	out := make(Skills, 0, len(categories))
	for _, c := range categories {
		out.Set(c.Name, cloneStrings(c.Skills))
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in category order.
func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		skills := g.Skills
		if skills == nil {
			skills = []string{}
		}
		val, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving key order.
func (s *Skills) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skills: expected object, got %v", tok)
	}

	out := Skills{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", keyTok)
		}
		var values []string
		if err := dec.Decode(&values); err != nil {
			return fmt.Errorf("skills: category %q: %w", key, err)
		}
		out.Set(key, values)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return slices.Clone(in)
}
