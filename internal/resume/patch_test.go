package resume

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestExperiencePatch_Apply(t *testing.T) {
	base := ExperienceItem{
		ID:       "v1",
		Title:    "Engineer",
		Company:  "Acme",
		Bullets:  []string{"Built X"},
		Link:     StringPtr("https://acme.dev"),
		MasterID: "e1",
		AutoSync: true,
	}

	tests := []struct {
		name  string
		patch ExperiencePatch
		check func(t *testing.T, got ExperienceItem)
	}{
		{
			name:  "empty patch keeps everything",
			patch: ExperiencePatch{},
			check: func(t *testing.T, got ExperienceItem) {
				if ExperienceDiffers(got, &base) {
					t.Errorf("Apply() changed content: %+v", got)
				}
			},
		},
		{
			name:  "title only",
			patch: ExperiencePatch{Title: StringPtr("Lead")},
			check: func(t *testing.T, got ExperienceItem) {
				if got.Title != "Lead" || got.Company != "Acme" {
					t.Errorf("Apply() = %+v", got)
				}
			},
		},
		{
			name:  "bullets replaced",
			patch: ExperiencePatch{Bullets: []string{"A", "B"}},
			check: func(t *testing.T, got ExperienceItem) {
				if !slices.Equal(got.Bullets, []string{"A", "B"}) {
					t.Errorf("Bullets = %v", got.Bullets)
				}
			},
		},
		{
			name:  "bullets cleared with empty slice",
			patch: ExperiencePatch{Bullets: []string{}},
			check: func(t *testing.T, got ExperienceItem) {
				if len(got.Bullets) != 0 {
					t.Errorf("Bullets = %v, want empty", got.Bullets)
				}
			},
		},
		{
			name:  "empty link removes it",
			patch: ExperiencePatch{Link: StringPtr("")},
			check: func(t *testing.T, got ExperienceItem) {
				if got.Link != nil {
					t.Errorf("Link = %v, want nil", *got.Link)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			if got.ID != "v1" || got.MasterID != "e1" || !got.AutoSync {
				t.Errorf("Apply() touched lineage: %+v", got)
			}
			tt.check(t, got)
		})
	}

	if base.Title != "Engineer" || base.Bullets[0] != "Built X" {
		t.Errorf("Apply() mutated its input: %+v", base)
	}
}

func TestPatch_DecodeDistinguishesAbsentFromEmpty(t *testing.T) {
	var p ExperiencePatch
	if err := json.Unmarshal([]byte(`{"bullets":[],"title":""}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Bullets == nil {
		t.Error("empty bullets array decoded as nil")
	}
	if p.Title == nil || *p.Title != "" {
		t.Error("empty title decoded as absent")
	}
	if p.Company != nil {
		t.Error("absent company decoded as present")
	}
}

func TestHeaderPatch_Apply(t *testing.T) {
	h := Header{Name: "Ada", Email: "old@example.com"}
	got := HeaderPatch{Email: StringPtr("new@example.com"), GitHub: StringPtr("ada")}.Apply(h)

	want := Header{Name: "Ada", Email: "new@example.com", GitHub: "ada"}
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}
}

func TestEducationAndSkillPatches(t *testing.T) {
	ed := EducationPatch{Degree: StringPtr("MSc"), Coursework: []string{"ML"}}.Apply(EducationItem{ID: "e", Degree: "BSc"})
	if ed.Degree != "MSc" || !slices.Equal(ed.Coursework, []string{"ML"}) {
		t.Errorf("EducationPatch.Apply() = %+v", ed)
	}

	sc := SkillCategoryPatch{Name: StringPtr("Tools")}.Apply(SkillCategory{ID: "s", Name: "Langs", Skills: []string{"Go"}})
	if sc.Name != "Tools" || !slices.Equal(sc.Skills, []string{"Go"}) {
		t.Errorf("SkillCategoryPatch.Apply() = %+v", sc)
	}

	pr := ProjectPatch{Link: StringPtr("https://x.dev")}.Apply(ProjectItem{ID: "p"})
	if pr.Link == nil || *pr.Link != "https://x.dev" {
		t.Errorf("ProjectPatch.Apply() = %+v", pr)
	}
}
