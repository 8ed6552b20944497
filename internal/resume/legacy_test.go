package resume

import (
	"encoding/json"
	"fmt"
	"slices"
	"testing"
	"time"
)

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func legacyFixture() LegacyDocument {
	return LegacyDocument{Resume: &Resume{
		Header: Header{Name: "Ada", Email: "ada@example.com"},
		Education: []EducationItem{
			{ID: "ed1", School: "MIT", Coursework: []string{"Algorithms"}},
		},
		Experience: []ExperienceItem{
			{ID: "e1", Title: "Engineer", Company: "Acme", Bullets: []string{"Built X"}},
			{ID: "e2", Title: "Intern", Company: "Initech", Bullets: []string{"Fixed Y"}},
		},
		Skills: Skills{{Name: "Languages", Skills: []string{"Go", "Rust"}}},
	}}
}

func TestMigrateLegacy(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := MigrateLegacy(legacyFixture(), sequentialIDs("id"), now)

	if len(doc.Versions) != 1 {
		t.Fatalf("MigrateLegacy() versions = %d, want 1", len(doc.Versions))
	}
	v := doc.Versions[0]
	if v.Name != DefaultVersionName {
		t.Errorf("version name = %q, want %q", v.Name, DefaultVersionName)
	}
	if doc.CurrentVersionID == nil || *doc.CurrentVersionID != v.ID {
		t.Errorf("CurrentVersionID = %v, want %q", doc.CurrentVersionID, v.ID)
	}
	if !v.CreatedAt.Equal(now) || !v.LastModified.Equal(now) {
		t.Errorf("timestamps = %v / %v, want %v", v.CreatedAt, v.LastModified, now)
	}

	if len(v.Experience) != 2 {
		t.Fatalf("version experience = %d, want 2", len(v.Experience))
	}
	for i, want := range []string{"e1", "e2"} {
		if v.Experience[i].MasterID != want || v.Experience[i].ID != want {
			t.Errorf("experience[%d] id/masterId = %q/%q, want %q", i, v.Experience[i].ID, v.Experience[i].MasterID, want)
		}
	}
	if doc.MasterData.Experience[0].MasterID != "" {
		t.Errorf("master item carries lineage: %+v", doc.MasterData.Experience[0])
	}

	if len(v.SkillCategories) != 1 {
		t.Fatalf("skill categories = %d, want 1", len(v.SkillCategories))
	}
	cat := v.SkillCategories[0]
	if cat.Name != "Languages" || !slices.Equal(cat.Skills, []string{"Go", "Rust"}) {
		t.Errorf("skill category = %+v", cat)
	}
	if cat.MasterID != doc.MasterData.SkillCategories[0].ID {
		t.Errorf("skill category masterId = %q, want %q", cat.MasterID, doc.MasterData.SkillCategories[0].ID)
	}
	if doc.MasterData.Header.Name != "Ada" {
		t.Errorf("header = %+v", doc.MasterData.Header)
	}
}

func TestMigrateLegacy_CopiesAreIndependent(t *testing.T) {
	doc := MigrateLegacy(legacyFixture(), sequentialIDs("id"), time.Now())

	doc.Versions[0].Experience[0].Bullets[0] = "changed"
	if doc.MasterData.Experience[0].Bullets[0] != "Built X" {
		t.Error("version copy shares bullets with master")
	}
}

func TestMigrateLegacy_NoResume(t *testing.T) {
	doc := MigrateLegacy(LegacyDocument{}, sequentialIDs("id"), time.Now())

	if len(doc.Versions) != 0 {
		t.Errorf("versions = %d, want 0", len(doc.Versions))
	}
	if doc.CurrentVersionID != nil {
		t.Errorf("CurrentVersionID = %v, want nil", *doc.CurrentVersionID)
	}
	if doc.MasterData.Experience == nil {
		t.Error("master collections should be empty, not nil")
	}
}

func TestDecodeDocument(t *testing.T) {
	legacyRaw, err := json.Marshal(legacyFixture())
	if err != nil {
		t.Fatalf("marshal legacy: %v", err)
	}
	current := MigrateLegacy(legacyFixture(), sequentialIDs("v"), time.Now())
	currentRaw, err := json.Marshal(current)
	if err != nil {
		t.Fatalf("marshal current: %v", err)
	}

	tests := []struct {
		name          string
		schemaVersion int
		payload       []byte
		wantErr       bool
		wantMigrated  bool
		wantVersions  int
	}{
		{
			name:          "legacy snapshot is migrated",
			schemaVersion: LegacySchemaVersion,
			payload:       legacyRaw,
			wantMigrated:  true,
			wantVersions:  1,
		},
		{
			name:          "legacy snapshot with null resume",
			schemaVersion: LegacySchemaVersion,
			payload:       []byte(`{"resume":null}`),
			wantMigrated:  true,
			wantVersions:  0,
		},
		{
			name:          "current document loads as-is",
			schemaVersion: CurrentSchemaVersion,
			payload:       currentRaw,
			wantVersions:  1,
		},
		{
			name:          "old schema version but versioned shape loads as-is",
			schemaVersion: LegacySchemaVersion,
			payload:       currentRaw,
			wantVersions:  1,
		},
		{
			name:          "malformed payload degrades to empty",
			schemaVersion: CurrentSchemaVersion,
			payload:       []byte(`{"masterData":`),
			wantErr:       true,
		},
		{
			name:          "malformed legacy resume degrades to empty",
			schemaVersion: LegacySchemaVersion,
			payload:       []byte(`{"resume":{"experience":"nope"}}`),
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, migrated, err := DecodeDocument(tt.schemaVersion, tt.payload, sequentialIDs("d"), time.Now())

			if tt.wantErr {
				if err == nil {
					t.Errorf("DecodeDocument() expected error, got nil")
				}
				if len(doc.Versions) != 0 || doc.CurrentVersionID != nil {
					t.Errorf("DecodeDocument() should degrade to an empty document, got %+v", doc)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeDocument() unexpected error: %v", err)
			}
			if migrated != tt.wantMigrated {
				t.Errorf("migrated = %v, want %v", migrated, tt.wantMigrated)
			}
			if len(doc.Versions) != tt.wantVersions {
				t.Errorf("versions = %d, want %d", len(doc.Versions), tt.wantVersions)
			}
		})
	}
}

func TestDecodeDocument_RepairsDanglingCurrent(t *testing.T) {
	raw := []byte(`{
		"masterData": {"header": {}},
		"versions": [{"id": "a", "name": "A", "createdAt": "2024-01-01T00:00:00Z", "lastModified": "2024-01-01T00:00:00Z"}],
		"currentVersionId": "missing"
	}`)

	doc, _, err := DecodeDocument(CurrentSchemaVersion, raw, sequentialIDs("d"), time.Now())
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if doc.CurrentVersionID == nil || *doc.CurrentVersionID != "a" {
		t.Errorf("CurrentVersionID = %v, want a", doc.CurrentVersionID)
	}
	if doc.Versions[0].Experience == nil || doc.MasterData.Projects == nil {
		t.Error("DecodeDocument() left nil collections")
	}
}
