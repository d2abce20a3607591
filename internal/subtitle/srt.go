package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nimarahimi/zirnevis/internal/caption"
	"github.com/nimarahimi/zirnevis/internal/timecode"
)

var srtCueRegex = regexp.MustCompile(
	`^\s*([\d:,.]+)\s*-->\s*([\d:,.]+)\s*$`,
)

func parseSRT(path string) ([]caption.Draft, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
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

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		// cue counters are regenerated on export, so the index line
		// is recognized and discarded
		if current == nil {
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				current = &caption.Draft{}
				continue
			}
		}

		if matches := srtCueRegex.FindStringSubmatch(line); matches != nil {
			flush()
			current = &caption.Draft{
				StartTime: timecode.Parse(matches[1]),
				EndTime:   timecode.Parse(matches[2]),
			}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	return drafts, nil
}

func writeSRT(path string, captions []*caption.Caption) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, c := range captions {
		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.Format(c.StartTime, timecode.StyleSRT),
			timecode.Format(c.EndTime, timecode.StyleSRT)))

		sb.WriteString(cueText(c))
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
