package audit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLogRecord(t *testing.T) {
	dir := t.TempDir()
	l, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	ctx := context.Background()

	t.Run("clean worktree is a no-op", func(t *testing.T) {
		if err := l.Record(ctx, "admin", "nothing changed"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		n, err := l.Count()
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 0 {
			t.Errorf("Count = %d, want 0", n)
		}
	})

	t.Run("commits changes", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "products.jsonl"), []byte("{}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := l.Record(ctx, "admin", "create product C001"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		n, err := l.Count()
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 1 {
			t.Errorf("Count = %d, want 1", n)
		}
	})

	t.Run("second change second commit", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "products.jsonl"), []byte("{}\n{}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := l.Record(ctx, "", "update product C001"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		n, err := l.Count()
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 2 {
			t.Errorf("Count = %d, want 2", n)
		}
	})
}

func TestOpenExistingRepo(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(dir); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	// Opening again must reuse the repository, not fail.
	if _, err := Open(dir); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
}
