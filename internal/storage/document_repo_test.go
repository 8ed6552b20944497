package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"resume-studio/internal/resume"
	"resume-studio/internal/storage"
	"resume-studio/internal/storage/mocks"
)

func newSlotRepo(t *testing.T) *storage.SlotRepo {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return storage.NewSlotRepo(db)
}

func TestDocumentRepo_EmptySlot(t *testing.T) {
	repo := storage.NewDocumentRepo(newSlotRepo(t))

	doc, migrated, err := repo.LoadDocument(context.Background())
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if migrated {
		t.Error("LoadDocument() reported migration for an empty slot")
	}
	if len(doc.Versions) != 0 || doc.CurrentVersionID != nil {
		t.Errorf("LoadDocument() = %+v, want empty document", doc)
	}
}

func TestDocumentRepo_RoundTrip(t *testing.T) {
	repo := storage.NewDocumentRepo(newSlotRepo(t))
	ctx := context.Background()

	doc := resume.NewDocument()
	doc.MasterData.Header.Name = "Ada"
	doc.MasterData.Experience = append(doc.MasterData.Experience, resume.ExperienceItem{
		ID: "e1", Title: "Engineer", Bullets: []string{"Built X"}, Link: resume.StringPtr(""),
	})

	if err := repo.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	got, migrated, err := repo.LoadDocument(ctx)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if migrated {
		t.Error("LoadDocument() reported migration for a current document")
	}
	if got.MasterData.Header.Name != "Ada" {
		t.Errorf("Header.Name = %q, want Ada", got.MasterData.Header.Name)
	}
	link := got.MasterData.Experience[0].Link
	if link == nil || *link != "" {
		t.Errorf("Link = %v, want present and empty", link)
	}
}

func TestDocumentRepo_MigratesLegacySlot(t *testing.T) {
	slots := newSlotRepo(t)
	ctx := context.Background()

	legacy := resume.LegacyDocument{Resume: &resume.Resume{
		Header:     resume.Header{Name: "Ada"},
		Experience: []resume.ExperienceItem{{ID: "e1", Title: "Engineer"}},
		Skills:     resume.Skills{{Name: "Languages", Skills: []string{"Go"}}},
	}}
	payload, _ := json.Marshal(legacy)
	if err := slots.Put(ctx, &storage.SlotRecord{Slot: storage.DocumentSlot, SchemaVersion: resume.LegacySchemaVersion, Payload: payload}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	doc, migrated, err := storage.NewDocumentRepo(slots).LoadDocument(ctx)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	if !migrated {
		t.Error("LoadDocument() did not report migration")
	}
	if len(doc.Versions) != 1 || doc.Versions[0].Name != resume.DefaultVersionName {
		t.Fatalf("versions = %+v", doc.Versions)
	}
	if doc.Versions[0].Experience[0].MasterID != "e1" {
		t.Errorf("version copy not linked: %+v", doc.Versions[0].Experience[0])
	}
}

func TestDocumentRepo_CorruptPayloadDegrades(t *testing.T) {
	slots := newSlotRepo(t)
	ctx := context.Background()
	if err := slots.Put(ctx, &storage.SlotRecord{Slot: storage.DocumentSlot, SchemaVersion: 1, Payload: []byte(`{not json`)}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	doc, migrated, err := storage.NewDocumentRepo(slots).LoadDocument(ctx)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v, want degraded load", err)
	}
	if migrated || len(doc.Versions) != 0 {
		t.Errorf("LoadDocument() = %+v, %v, want empty document", doc, migrated)
	}
}

func TestDocumentRepo_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("disk I/O error")
	slots := mocks.NewMockSlotStore(ctrl)
	slots.EXPECT().Get(gomock.Any(), storage.DocumentSlot).Return(nil, boom)
	slots.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *storage.SlotRecord) error {
		if rec.SchemaVersion != resume.CurrentSchemaVersion {
			t.Errorf("Put() schema version = %d, want %d", rec.SchemaVersion, resume.CurrentSchemaVersion)
		}
		return boom
	})

	repo := storage.NewDocumentRepo(slots)
	if _, _, err := repo.LoadDocument(context.Background()); !errors.Is(err, boom) {
		t.Errorf("LoadDocument() error = %v, want wrapped %v", err, boom)
	}
	if err := repo.SaveDocument(context.Background(), resume.NewDocument()); !errors.Is(err, boom) {
		t.Errorf("SaveDocument() error = %v, want %v", err, boom)
	}
}
