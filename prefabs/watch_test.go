package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, GameFile), []byte("spawn:\n  rate: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if w.Changed() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected a change notification for %s", GameFile)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if w.Changed() {
		t.Fatalf("non-prefab files must not trigger a reload")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	defer func() { Dir = old }()

	if err := os.WriteFile(filepath.Join(dir, GameFile), []byte("player:\n  speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Player.Speed != 7 {
		t.Fatalf("expected disk override speed 7, got %v", spec.Player.Speed)
	}
	if _, ok := ModTime(GameFile); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
}
