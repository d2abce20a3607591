package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nimarahimi/zirnevis/internal/caption"
	"github.com/nimarahimi/zirnevis/internal/timecode"
)

func parseVTT(path string) ([]caption.Draft, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var drafts []caption.Draft
	scanner := bufio.NewScanner(file)

	var current *caption.Draft
	var textLines []string
	lineNum := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.TargetText = strings.Join(textLines, "\n")
			drafts = append(drafts, *current)
		}
		current = nil
		textLines = nil
	}

	skipBlock := func() {
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				break
			}
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
			if strings.HasPrefix(strings.TrimSpace(line), "WEBVTT") {
				continue
			}
		}

		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "NOTE") ||
			strings.HasPrefix(trimmed, "STYLE") {
			skipBlock()
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if strings.Contains(line, "-->") {
			flush()
			parts := strings.SplitN(line, "-->", 2)
			// cue settings after the end timestamp are ignored
			end, _, _ := strings.Cut(strings.TrimSpace(parts[1]), " ")
			current = &caption.Draft{
				StartTime: timecode.Parse(parts[0]),
				EndTime:   timecode.Parse(end),
			}
			continue
		}

		// anything between a cue timing line and the next blank line
		// is cue text; a line before any timing line is a cue
		// identifier and is dropped
		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return drafts, nil
}

func writeVTT(path string, captions []*caption.Caption) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for i, c := range captions {
		// optional cue identifier
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.Format(c.StartTime, timecode.StyleVTT),
			timecode.Format(c.EndTime, timecode.StyleVTT)))

		sb.WriteString(cueText(c))
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
