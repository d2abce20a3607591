package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nimarahimi/zirnevis/internal/caption"
	"github.com/nimarahimi/zirnevis/internal/config"
	"github.com/nimarahimi/zirnevis/internal/store"
	"github.com/nimarahimi/zirnevis/internal/subtitle"
	"github.com/spf13/cobra"
)

// loadConfig resolves session defaults from the --config flag, falling
// back to the built-in defaults when no file is given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadSet reads captions from a subtitle file (.srt, .vtt) or a
// project document (.json) into a caption set. Subtitle cues pass
// through the set's Add path, so their text is normalized and
// validated on the way in.
func loadSet(path string) (*caption.Set, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		project, err := store.Load(path)
		if err != nil {
			return nil, err
		}
		return project.CaptionSet(), nil
	}

	drafts, err := subtitle.Import(path)
	if err != nil {
		return nil, err
	}

	set := caption.NewSet()
	for i, draft := range drafts {
		if _, err := set.Add(draft); err != nil {
			return nil, fmt.Errorf(
				"cue %d has an invalid time range (%g --> %g): %w",
				i+1,
				draft.StartTime,
				draft.EndTime,
				err,
			)
		}
	}
	return set, nil
}

// writeSet writes the set to path as a subtitle file or, for .json, a
// project document.
func writeSet(path string, set *caption.Set) error {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return store.Save(path, store.NewProject("", set))
	}
	return subtitle.Export(path, set.All(), subtitle.FormatFromExtension(path))
}
