package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Style selects the textual convention for formatted time codes.
type Style string

const (
	// SRT style: HH:MM:SS,mmm
	StyleSRT Style = "srt"
	// VTT style: HH:MM:SS.mmm
	StyleVTT Style = "vtt"
	// Readable style: M:SS, or H:MM:SS when hours are nonzero
	StyleReadable Style = "readable"
)

// accepts H:MM:SS or M:SS, optionally followed by . or , and 1-3
// fractional digits
var timecodeRegex = regexp.MustCompile(
	`^\s*(?:(\d{1,2}):)?(\d{1,2}):(\d{1,2})(?:[.,](\d{1,3}))?\s*$`,
)

// Parse converts a time code in any supported style to seconds.
// Parsing is best-effort: editor fields hold transiently invalid text
// while being typed, so unparsable input yields 0, never an error.
func Parse(text string) float64 {
	matches := timecodeRegex.FindStringSubmatch(text)
	if matches == nil {
		return 0
	}

	hours := 0
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])

	millis := 0
	if matches[4] != "" {
		millis, _ = strconv.Atoi(matches[4])
		// 1 or 2 fractional digits are tenths/hundredths
		for i := len(matches[4]); i < 3; i++ {
			millis *= 10
		}
	}

	// one division over whole milliseconds keeps the result exactly
	// the nearest float to the written value
	return float64((hours*3600+minutes*60+seconds)*1000+millis) / 1000
}

// Format renders non-negative seconds in the given style. Fields are
// floored and zero-padded to fixed width, except in the readable style.
func Format(seconds float64, style Style) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}

	// work in whole milliseconds so millisecond-precision values
	// survive a format/parse round trip despite float error
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3600000
	minutes := totalMillis / 60000 % 60
	secs := totalMillis / 1000 % 60
	millis := totalMillis % 1000

	switch style {
	case StyleVTT:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
	case StyleReadable:
		if hours > 0 {
			return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
		}
		return fmt.Sprintf("%d:%02d", minutes, secs)
	default:
		return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
	}
}
