package resume

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// CurrentSchemaVersion is the schema version written with every document.
	CurrentSchemaVersion = 1
	// LegacySchemaVersion marks snapshots from before versions existed.
	LegacySchemaVersion = 0

	// DefaultVersionName names the version created when bootstrapping.
	DefaultVersionName = "My Resume"
)

// MigrateLegacy converts a pre-versioning snapshot into a Document.
// A snapshot without a résumé yields an empty document.
func MigrateLegacy(legacy LegacyDocument, newID func() string, now time.Time) Document {
	if legacy.Resume == nil {
		return NewDocument()
	}
	return Bootstrap(*legacy.Resume, newID, now)
}

// Bootstrap seeds master data from r and creates a single version whose items
// are linked copies of the new master items. Version copies start with the
// same id as their master; this equivalence only holds right after bootstrap.
func Bootstrap(r Resume, newID func() string, now time.Time) Document {
	doc := NewDocument()
	doc.MasterData.Header = r.Header

	v := Version{
		ID:           newID(),
		Name:         DefaultVersionName,
		CreatedAt:    now,
		LastModified: now,
	}

	doc.MasterData.Education, v.Education = seed(r.Education, newID)
	doc.MasterData.Experience, v.Experience = seed(r.Experience, newID)
	doc.MasterData.Projects, v.Projects = seed(r.Projects, newID)
	doc.MasterData.SkillCategories, v.SkillCategories = seed(r.Skills.Categories(newID), newID)

	doc.Versions = append(doc.Versions, v)
	doc.SetCurrent(v.ID)
	return doc
}

// seed returns master copies of items (lineage stripped, missing ids filled)
// and version copies linked to them by id.
func seed[T Item[T]](items []T, newID func() string) (master, version []T) {
	master = make([]T, 0, len(items))
	version = make([]T, 0, len(items))
	for _, it := range items {
		id := it.ItemID()
		if id == "" {
			id = newID()
		}
		master = append(master, it.WithLineage(id, "", false))
		version = append(version, it.WithLineage(id, id, true))
	}
	return master, version
}

// DecodeDocument decodes a persisted payload, migrating legacy snapshots.
// The returned document is always usable: on a decode failure it is empty
// and the error describes what was discarded. migrated reports whether the
// legacy path ran.
func DecodeDocument(schemaVersion int, payload []byte, newID func() string, now time.Time) (doc Document, migrated bool, err error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(payload, &probe); err != nil {
		return NewDocument(), false, fmt.Errorf("decode document: %w", err)
	}

	_, hasResume := probe["resume"]
	_, hasMaster := probe["masterData"]
	if schemaVersion < CurrentSchemaVersion && hasResume && !hasMaster {
		var legacy LegacyDocument
		if err := json.Unmarshal(payload, &legacy); err != nil {
			return NewDocument(), false, fmt.Errorf("decode legacy document: %w", err)
		}
		return MigrateLegacy(legacy, newID, now), true, nil
	}

	if err := json.Unmarshal(payload, &doc); err != nil {
		return NewDocument(), false, fmt.Errorf("decode document: %w", err)
	}
	doc.normalize()
	doc.RepairCurrent()
	return doc, false, nil
}
