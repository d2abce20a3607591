package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nimarahimi/zirnevis/internal/caption"
)

// represents supported subtitle file formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// FormatFromExtension picks the subtitle format for a file path,
// defaulting to SRT.
func FormatFromExtension(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".vtt" {
		return FormatVTT
	}
	return FormatSRT
}

// Import parses a subtitle file into caption drafts. The cue text
// becomes the draft's target text; feeding the drafts through a
// caption set normalizes and validates it.
func Import(path string) ([]caption.Draft, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return parseSRT(path)
	case ".vtt":
		return parseVTT(path)
	default:
		return nil, fmt.Errorf(
			"unsupported subtitle format: %s",
			filepath.Ext(path),
		)
	}
}

// Export writes the captions as a subtitle file in the given format.
// Each cue carries the Persian target text, falling back to the source
// text for captions not yet translated.
func Export(path string, captions []*caption.Caption, format Format) error {
	switch format {
	case FormatSRT:
		return writeSRT(path, captions)
	case FormatVTT:
		return writeVTT(path, captions)
	default:
		return fmt.Errorf("unsupported subtitle format: %s", format)
	}
}

func cueText(c *caption.Caption) string {
	if c.TargetText != "" {
		return c.TargetText
	}
	return c.SourceText
}
