package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/brunohenrs/northstar/internal/goal"
	"github.com/brunohenrs/northstar/internal/storage"
)

func newTransient(t *testing.T) *storage.Provider {
	t.Helper()
	p := storage.NewProvider(storage.Target{}, &goal.Goal{})
	t.Cleanup(func() { p.Close() })
	return p
}

func countGoals(t *testing.T, p *storage.Provider) int64 {
	t.Helper()
	db, err := p.DB(context.Background())
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	var count int64
	if err := db.Model(&goal.Goal{}).Count(&count).Error; err != nil {
		t.Fatalf("counting goals: %v", err)
	}
	return count
}

func TestProviderTransient(t *testing.T) {
	p := newTransient(t)

	if !p.Transient() {
		t.Fatal("provider for the transient target should report Transient")
	}

	t.Run("SchemaIsUsable", func(t *testing.T) {
		db, err := p.DB(context.Background())
		if err != nil {
			t.Fatalf("DB: %v", err)
		}
		if err := db.Create(&goal.Goal{Title: "learn sqlite"}).Error; err != nil {
			t.Fatalf("creating goal against transient store: %v", err)
		}
		if got := countGoals(t, p); got != 1 {
			t.Errorf("goal count = %d, want 1", got)
		}
	})

	t.Run("DataDoesNotSurviveRestart", func(t *testing.T) {
		restarted := newTransient(t)
		if got := countGoals(t, restarted); got != 0 {
			t.Errorf("restarted transient store has %d goals, want 0", got)
		}
	})
}

func TestProviderFileBacked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "northstar.db")
	target := storage.Target{Path: path}

	p := storage.NewProvider(target, &goal.Goal{})
	if p.Transient() {
		t.Fatal("writable file target should not degrade")
	}

	db, err := p.DB(context.Background())
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	if err := db.Create(&goal.Goal{Title: "persisted"}).Error; err != nil {
		t.Fatalf("creating goal: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("closing provider: %v", err)
	}

	t.Run("SchemaInitIsIdempotent", func(t *testing.T) {
		// Reopening runs the initializer against existing tables; it must
		// neither error nor lose rows.
		reopened := storage.NewProvider(target, &goal.Goal{})
		defer reopened.Close()

		if reopened.Transient() {
			t.Fatal("reopen degraded unexpectedly")
		}
		if got := countGoals(t, reopened); got != 1 {
			t.Errorf("goal count after reopen = %d, want 1", got)
		}
	})

	t.Run("FileIsOnDisk", func(t *testing.T) {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("database file missing: %v", err)
		}
	})
}

func TestProviderDegradesOnOpenFailure(t *testing.T) {
	// A path whose parent is a regular file cannot be opened; the provider
	// must fall back to the in-memory store instead of failing.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}

	p := storage.NewProvider(storage.Target{Path: filepath.Join(blocker, "n.db")}, &goal.Goal{})
	defer p.Close()

	if !p.Transient() {
		t.Fatal("unopenable file target should degrade to transient")
	}

	db, err := p.DB(context.Background())
	if err != nil {
		t.Fatalf("DB after degradation: %v", err)
	}
	if err := db.Create(&goal.Goal{Title: "still serving"}).Error; err != nil {
		t.Errorf("degraded store rejected a write: %v", err)
	}
}

func TestReadOnlyProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "northstar.db")
	target := storage.Target{Path: path}

	rw := storage.NewProvider(target, &goal.Goal{})
	db, err := rw.DB(context.Background())
	if err != nil {
		t.Fatalf("DB: %v", err)
	}
	if err := db.Create(&goal.Goal{Title: "shared"}).Error; err != nil {
		t.Fatalf("seeding: %v", err)
	}

	ro := storage.NewReadOnlyProvider(target, &goal.Goal{})
	defer ro.Close()
	defer rw.Close()

	t.Run("SeesSharedState", func(t *testing.T) {
		if got := countGoals(t, ro); got != 1 {
			t.Errorf("read-only provider sees %d goals, want 1", got)
		}
	})

	t.Run("RejectsWrites", func(t *testing.T) {
		roDB, err := ro.DB(context.Background())
		if err != nil {
			t.Fatalf("DB: %v", err)
		}
		if err := roDB.Create(&goal.Goal{Title: "nope"}).Error; err == nil {
			t.Error("write through the read-only connection should fail")
		}
	})

	t.Run("MissingFileDegrades", func(t *testing.T) {
		gone := storage.Target{Path: filepath.Join(t.TempDir(), "absent.db")}
		p := storage.NewReadOnlyProvider(gone, &goal.Goal{})
		defer p.Close()
		if !p.Transient() {
			t.Error("read-only open of a missing file should degrade to transient")
		}
	})
}

func TestPing(t *testing.T) {
	p := newTransient(t)
	if err := p.Ping(context.Background()); err != nil {
		t.Errorf("ping against a live store: %v", err)
	}
}
