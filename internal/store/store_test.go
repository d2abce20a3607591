package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nimarahimi/zirnevis/internal/caption"
	"github.com/nimarahimi/zirnevis/internal/persian"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	set := caption.NewSet()
	for _, d := range []caption.Draft{
		{StartTime: 1, EndTime: 4, SourceText: "Hello", TargetText: "سلام"},
		{StartTime: 5, EndTime: 8, SourceText: "World", TargetText: "دنیا", SpeakerLabel: "راوی"},
	} {
		if _, err := set.Add(d); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "projects", "show.json")
	if err := Save(path, NewProject("https://example.com/ep1.mp4", set)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Version != currentVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, currentVersion)
	}
	if loaded.VideoURL != "https://example.com/ep1.mp4" {
		t.Errorf("VideoURL = %q", loaded.VideoURL)
	}
	if len(loaded.Captions) != 2 {
		t.Fatalf("loaded %d captions, want 2", len(loaded.Captions))
	}

	want := set.All()
	for i, c := range loaded.Captions {
		if c.ID != want[i].ID {
			t.Errorf("caption %d: ID = %q, want %q", i, c.ID, want[i].ID)
		}
		if c.StartTime != want[i].StartTime || c.EndTime != want[i].EndTime {
			t.Errorf("caption %d: range [%v,%v], want [%v,%v]",
				i, c.StartTime, c.EndTime, want[i].StartTime, want[i].EndTime)
		}
		if c.TargetText != want[i].TargetText {
			t.Errorf("caption %d: TargetText = %q, want %q",
				i, c.TargetText, want[i].TargetText)
		}
	}
	if loaded.Captions[1].SpeakerLabel != "راوی" {
		t.Errorf("SpeakerLabel not round-tripped")
	}
}

func TestValidationRecomputedOnLoad(t *testing.T) {
	set := caption.NewSet()
	if _, err := set.Add(caption.Draft{
		StartTime:  0,
		EndTime:    2,
		TargetText: "سلام world",
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "p.json")
	if err := Save(path, NewProject("", set)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// validation is derived state and must not leak into the document
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read project file: %v", err)
	}
	if strings.Contains(string(data), "isValid") {
		t.Errorf("validation report should not be serialized")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	restored := loaded.CaptionSet()
	c := restored.All()[0]
	if c.Validation == nil {
		t.Fatal("validation should be recomputed when restoring a set")
	}
	if len(c.Validation.Issues) != 1 ||
		c.Validation.Issues[0] != persian.IssueMixedScript {
		t.Errorf("Issues = %v, want mixed-script", c.Validation.Issues)
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	content := `{"version": 99, "captions": []}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for a newer document version")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("expected version in error, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for a missing project file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
