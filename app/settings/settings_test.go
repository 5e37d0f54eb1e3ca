package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != defaultSettings {
		t.Errorf("settings = %+v, want defaults", s)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filesift.yaml")
	content := "preview_rows: 5\nno_color: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.PreviewRows != 5 {
		t.Errorf("PreviewRows = %d, want 5", s.PreviewRows)
	}
	if !s.NoColor {
		t.Error("NoColor override not applied")
	}
	// Keys absent from the file keep their defaults
	if s.NoHeaderRow != defaultSettings.NoHeaderRow || s.OutputDir != defaultSettings.OutputDir {
		t.Errorf("missing keys overridden: %+v", s)
	}
}

func TestLoadRejectsNonPositivePreviewRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filesift.yaml")
	if err := os.WriteFile(path, []byte("preview_rows: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.PreviewRows != defaultSettings.PreviewRows {
		t.Errorf("PreviewRows = %d, want default", s.PreviewRows)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "filesift.yaml")
	want := Settings{PreviewRows: 3, OutputDir: "/tmp/out", NoColor: true, NoHeaderRow: true}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestEnsureInstanceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filesift.yaml")

	first, err := EnsureInstanceID(path)
	if err != nil {
		t.Fatalf("EnsureInstanceID: %v", err)
	}
	if first.InstanceID == "" {
		t.Fatal("no instance ID generated")
	}

	second, err := EnsureInstanceID(path)
	if err != nil {
		t.Fatalf("EnsureInstanceID: %v", err)
	}
	if second.InstanceID != first.InstanceID {
		t.Errorf("instance ID not stable: %q vs %q", second.InstanceID, first.InstanceID)
	}
}
