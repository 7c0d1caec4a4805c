package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomypizza/orderdesk/theme"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	s := theme.NewStore(filepath.Join(t.TempDir(), "theme"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != theme.Default {
		t.Errorf("expected default theme %q, got %q", theme.Default, got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	s := theme.NewStore(filepath.Join(t.TempDir(), "theme"))
	if err := s.Save(theme.Dark); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != theme.Dark {
		t.Errorf("expected %q, got %q", theme.Dark, got)
	}
}

func TestSaveRejectsUnknownValue(t *testing.T) {
	s := theme.NewStore(filepath.Join(t.TempDir(), "theme"))
	if err := s.Save("solarized"); err == nil {
		t.Error("expected unknown theme to be rejected")
	}
}

func TestLoadIgnoresGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	if err := os.WriteFile(path, []byte("???\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := theme.NewStore(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != theme.Default {
		t.Errorf("garbage on disk should fall back to the default, got %q", got)
	}
}
