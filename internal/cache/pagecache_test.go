package cache

import (
    "context"
    "encoding/json"
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestPageCache_SaveAndLoad(t *testing.T) {
    c := &PageCache{Dir: t.TempDir()}
    ctx := context.Background()

    if _, err := c.Load(ctx, "https://example.com/p"); err == nil {
        t.Fatal("expected miss before save")
    }

    body := []byte("<html><body>£100</body></html>")
    if err := c.Save(ctx, "https://example.com/p", "text/html", body); err != nil {
        t.Fatalf("save: %v", err)
    }

    got, err := c.Load(ctx, "https://example.com/p")
    if err != nil {
        t.Fatalf("load: %v", err)
    }
    if string(got) != string(body) {
        t.Fatalf("body mismatch: %q", got)
    }

    // A different URL is a distinct entry.
    if _, err := c.Load(ctx, "https://example.com/other"); err == nil {
        t.Fatal("expected miss for other URL")
    }
}

func TestPurgeByAge(t *testing.T) {
    dir := t.TempDir()
    c := &PageCache{Dir: dir}
    ctx := context.Background()

    if err := c.Save(ctx, "https://example.com/old", "text/html", []byte("old")); err != nil {
        t.Fatalf("save: %v", err)
    }
    if err := c.Save(ctx, "https://example.com/new", "text/html", []byte("new")); err != nil {
        t.Fatalf("save: %v", err)
    }

    // Backdate the first entry past the cutoff.
    oldKey := c.key("https://example.com/old")
    meta := Entry{URL: "https://example.com/old", SavedAt: time.Now().UTC().Add(-48 * time.Hour)}
    b, _ := json.Marshal(meta)
    if err := os.WriteFile(filepath.Join(dir, oldKey+".meta.json"), b, 0o644); err != nil {
        t.Fatalf("backdate: %v", err)
    }

    removed, err := PurgeByAge(dir, 24*time.Hour)
    if err != nil {
        t.Fatalf("purge: %v", err)
    }
    if removed != 1 {
        t.Fatalf("expected 1 removed, got %d", removed)
    }
    if _, err := c.Load(ctx, "https://example.com/old"); err == nil {
        t.Fatal("expected purged entry to miss")
    }
    if _, err := c.Load(ctx, "https://example.com/new"); err != nil {
        t.Fatalf("expected fresh entry to survive: %v", err)
    }
}

func TestClearDir(t *testing.T) {
    dir := t.TempDir()
    c := &PageCache{Dir: dir}
    if err := c.Save(context.Background(), "https://example.com", "text/html", []byte("x")); err != nil {
        t.Fatalf("save: %v", err)
    }
    if err := ClearDir(dir); err != nil {
        t.Fatalf("clear: %v", err)
    }
    entries, err := os.ReadDir(dir)
    if err != nil {
        t.Fatalf("readdir: %v", err)
    }
    if len(entries) != 0 {
        t.Fatalf("expected empty dir, got %d entries", len(entries))
    }
    if err := ClearDir(""); err == nil {
        t.Fatal("expected error for empty dir")
    }
}
