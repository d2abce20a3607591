package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nimarahimi/zirnevis/internal/caption"
)

const currentVersion = 1

// Project is the on-disk document for one translation project: the
// full ordered caption sequence plus the metadata needed to reopen the
// editing session. Validation reports are derived state and are not
// serialized; they are recomputed when the document is loaded back
// into a caption set.
type Project struct {
	Version  int               `json:"version"`
	VideoURL string            `json:"videoUrl,omitempty"`
	Captions []caption.Caption `json:"captions"`
}

// NewProject snapshots a caption set into a storable document.
func NewProject(videoURL string, set *caption.Set) *Project {
	captions := make([]caption.Caption, 0, set.Len())
	for _, c := range set.All() {
		captions = append(captions, *c)
	}
	return &Project{
		Version:  currentVersion,
		VideoURL: videoURL,
		Captions: captions,
	}
}

// CaptionSet rebuilds the editing-session caption set from the stored
// document, re-normalizing and re-validating every caption.
func (p *Project) CaptionSet() *caption.Set {
	return caption.NewSetFrom(p.Captions)
}

// Save writes the project document as indented JSON, creating parent
// directories as needed.
func Save(path string, project *Project) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Load reads a project document written by Save.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project file: %w", err)
	}

	if project.Version > currentVersion {
		return nil, fmt.Errorf(
			"project file version %d is newer than supported version %d",
			project.Version,
			currentVersion,
		)
	}

	return &project, nil
}
