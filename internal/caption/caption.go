package caption

import (
	"errors"
	"time"

	"github.com/nimarahimi/zirnevis/internal/persian"
)

// Caption is one timed translation record: a time range, the original
// text, and its Persian translation. TargetText is always stored in
// normalized form; Validation is derived from it and kept in sync by
// the owning Set.
type Caption struct {
	ID           string          `json:"id"`
	StartTime    float64         `json:"startTime"`
	EndTime      float64         `json:"endTime"`
	SourceText   string          `json:"sourceText,omitempty"`
	TargetText   string          `json:"targetText"`
	SpeakerLabel string          `json:"speakerLabel,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Validation   *persian.Report `json:"-"`
	LastModified time.Time       `json:"lastModified"`
}

// Duration is the display window of the caption in seconds.
func (c *Caption) Duration() float64 {
	return c.EndTime - c.StartTime
}

// Contains reports whether t falls inside the caption's time range,
// inclusive on both ends.
func (c *Caption) Contains(t float64) bool {
	return t >= c.StartTime && t <= c.EndTime
}

// Draft holds the caller-supplied fields for a new caption.
type Draft struct {
	StartTime    float64
	EndTime      float64
	SourceText   string
	TargetText   string
	SpeakerLabel string
	Notes        string
}

// Patch holds a partial update; nil fields are left unchanged.
type Patch struct {
	StartTime    *float64
	EndTime      *float64
	SourceText   *string
	TargetText   *string
	SpeakerLabel *string
	Notes        *string
}

var (
	// ErrInvalidRange is returned when a caption's start time is not
	// strictly before its end time.
	ErrInvalidRange = errors.New("caption start time must be before end time")

	// ErrNotFound is returned when no caption has the given id.
	ErrNotFound = errors.New("caption not found")
)
