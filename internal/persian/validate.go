package persian

import (
	"math"
	"strings"
	"unicode"
)

// IssueCode tags one category of text-quality problem.
type IssueCode string

const (
	IssueNoPersianScript IssueCode = "no-persian-script"
	IssueMixedScript     IssueCode = "mixed-script"
)

// Report is the quality report for one piece of translated text.
type Report struct {
	IsValid     bool        `json:"isValid"`
	Issues      []IssueCode `json:"issues"`
	Suggestions []string    `json:"suggestions"`
	Score       int         `json:"score"`
}

// Validate inspects already-normalized text and reports script-level
// anomalies that normalization does not fix. This is a heuristic lint,
// not a correctness oracle: false positives on loanwords and proper
// nouns are expected.
func Validate(text string) Report {
	report := Report{
		IsValid:     true,
		Issues:      []IssueCode{},
		Suggestions: []string{},
	}

	hasPersian := ContainsPersianScript(text)
	hasLatin := containsLatinLetters(text)

	if !hasPersian {
		report.Issues = append(report.Issues, IssueNoPersianScript)
		report.Suggestions = append(report.Suggestions,
			"Translation should contain Persian characters")
	}

	if hasPersian && hasLatin {
		report.Issues = append(report.Issues, IssueMixedScript)
		report.Suggestions = append(report.Suggestions,
			"Text mixes Persian and Latin scripts; review whether the Latin words are intended")
	}

	report.Score = 100 - 25*len(report.Issues)
	if report.Score < 0 {
		report.Score = 0
	}
	report.IsValid = len(report.Issues) == 0

	return report
}

// default reading speed for Persian subtitle text, words per second
const readingWordsPerSecond = 2.5

// EstimateReadingTime estimates how many seconds a viewer needs to read
// the text, at the default reading speed. Non-empty text always takes
// at least one second.
func EstimateReadingTime(text string) float64 {
	return EstimateReadingTimeAt(text, readingWordsPerSecond)
}

// EstimateReadingTimeAt is EstimateReadingTime with an explicit reading
// speed in words per second.
func EstimateReadingTimeAt(text string, wordsPerSecond float64) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	if wordsPerSecond <= 0 {
		wordsPerSecond = readingWordsPerSecond
	}
	return math.Max(1, math.Round(float64(words)/wordsPerSecond*10)/10)
}

func containsLatinLetters(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Latin) {
			return true
		}
	}
	return false
}
