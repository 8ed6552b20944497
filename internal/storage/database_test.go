package storage

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "resume.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		path    func(*testing.T) string
		wantErr bool
	}{
		{
			name:    "file in temp dir",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "resume.db") },
			wantErr: false,
		},
		{
			name:    "missing directory",
			path:    func(*testing.T) string { return "/nonexistent/path/resume.db" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := New(tt.path(t))
			if db != nil {
				defer func() {
					_ = db.Close()
				}()
			}

			if tt.wantErr {
				if err == nil {
					t.Errorf("New() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if got := db.Stats().MaxOpenConnections; got != maxOpenConns {
				t.Errorf("New() MaxOpenConnections = %v, want %v", got, maxOpenConns)
			}
		})
	}
}

func TestNew_Pragmas(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{pragma: "journal_mode", want: "wal"},
		{pragma: "foreign_keys", want: "1"},
		{pragma: "busy_timeout", want: "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.pragma, func(t *testing.T) {
			var got string
			if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
				t.Fatalf("PRAGMA %s error = %v", tt.pragma, err)
			}
			if strings.ToLower(got) != tt.want {
				t.Errorf("PRAGMA %s = %v, want %v", tt.pragma, got, tt.want)
			}
		})
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	for run := 1; run <= 2; run++ {
		if err := Migrate(db); err != nil {
			t.Fatalf("Migrate() run %d error = %v", run, err)
		}
	}

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='document_slots'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if count != 1 {
		t.Errorf("Migrate() document_slots count = %d, want 1", count)
	}
}

func TestMigrate_CreatesCorrectSchema(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	rows, err := db.Query("PRAGMA table_info(document_slots)")
	if err != nil {
		t.Fatalf("Failed to read document_slots schema: %v", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notNull := map[string]bool{}
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			nn        int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &nn, &dfltValue, &pk); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		notNull[name] = nn == 1
		if name == "slot" && pk != 1 {
			t.Error("slot should be the primary key")
		}
	}

	want := map[string]bool{"slot": false, "schema_version": true, "payload": true, "updated_at": false}
	for col, wantNotNull := range want {
		got, ok := notNull[col]
		if !ok {
			t.Errorf("document_slots missing column %s", col)
			continue
		}
		if got != wantNotNull {
			t.Errorf("column %s NOT NULL = %v, want %v", col, got, wantNotNull)
		}
	}
}
