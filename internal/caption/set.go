package caption

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nimarahimi/zirnevis/internal/persian"
)

// Set owns the ordered collection of captions for one editing session.
// Captions are kept in ascending order of start time, stable on ties,
// and every mutation recomputes the validation report for any changed
// target text so the two can never drift apart.
//
// Set is a plain in-memory structure; concurrent callers must
// serialize externally.
type Set struct {
	captions []*Caption
	now      func() time.Time
}

// NewSet creates an empty caption set.
func NewSet() *Set {
	return &Set{now: time.Now}
}

// NewSetFrom rebuilds a set from previously stored captions, e.g. a
// loaded project document. Ids are kept, target text is re-normalized,
// validation is recomputed, and ordering is re-established, so a
// document written by an older or foreign tool still satisfies the
// set's invariants. Captions with an empty id or a non-positive range
// are dropped.
func NewSetFrom(captions []Caption) *Set {
	s := NewSet()
	for _, c := range captions {
		if c.ID == "" || c.StartTime >= c.EndTime {
			continue
		}
		stored := c
		stored.TargetText = persian.Normalize(c.TargetText)
		stored.Validation = validationFor(stored.TargetText)
		s.captions = append(s.captions, &stored)
	}
	sort.SliceStable(s.captions, func(i, j int) bool {
		return s.captions[i].StartTime < s.captions[j].StartTime
	})
	return s
}

// Add creates a caption from the draft, assigns a fresh id, normalizes
// the target text, computes its validation report, and inserts it in
// start-time order (after any existing captions with the same start
// time). Fails with ErrInvalidRange if the draft's range is empty or
// inverted, leaving the set unchanged.
func (s *Set) Add(draft Draft) (*Caption, error) {
	if draft.StartTime >= draft.EndTime {
		return nil, ErrInvalidRange
	}

	target := persian.Normalize(draft.TargetText)
	c := &Caption{
		ID:           uuid.NewString(),
		StartTime:    draft.StartTime,
		EndTime:      draft.EndTime,
		SourceText:   draft.SourceText,
		TargetText:   target,
		SpeakerLabel: draft.SpeakerLabel,
		Notes:        draft.Notes,
		Validation:   validationFor(target),
		LastModified: s.now(),
	}

	i := sort.Search(len(s.captions), func(i int) bool {
		return s.captions[i].StartTime > c.StartTime
	})
	s.captions = append(s.captions, nil)
	copy(s.captions[i+1:], s.captions[i:])
	s.captions[i] = c

	return c, nil
}

// Update applies the non-nil fields of the patch to the caption with
// the given id. A changed target text is re-normalized and
// re-validated; a changed start or end time re-sorts the set. Fails
// with ErrNotFound for an unknown id and ErrInvalidRange if the
// post-patch range would be empty or inverted; either way the set is
// left unchanged.
func (s *Set) Update(id string, patch Patch) (*Caption, error) {
	c := s.byID(id)
	if c == nil {
		return nil, ErrNotFound
	}

	start, end := c.StartTime, c.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if start >= end {
		return nil, ErrInvalidRange
	}

	timeChanged := start != c.StartTime || end != c.EndTime
	c.StartTime = start
	c.EndTime = end

	if patch.SourceText != nil {
		c.SourceText = *patch.SourceText
	}
	if patch.TargetText != nil {
		c.TargetText = persian.Normalize(*patch.TargetText)
		c.Validation = validationFor(c.TargetText)
	}
	if patch.SpeakerLabel != nil {
		c.SpeakerLabel = *patch.SpeakerLabel
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	c.LastModified = s.now()

	if timeChanged {
		sort.SliceStable(s.captions, func(i, j int) bool {
			return s.captions[i].StartTime < s.captions[j].StartTime
		})
	}

	return c, nil
}

// Remove deletes the caption with the given id, preserving the order
// of the rest. Removing an unknown id is a no-op.
func (s *Set) Remove(id string) {
	for i, c := range s.captions {
		if c.ID == id {
			s.captions = append(s.captions[:i], s.captions[i+1:]...)
			return
		}
	}
}

// ActiveAt returns the caption whose range contains t, inclusive on
// both ends, or nil. When ranges overlap the first match in sorted
// order wins, i.e. the one with the earliest start time.
func (s *Set) ActiveAt(t float64) *Caption {
	for _, c := range s.captions {
		if c.StartTime > t {
			break
		}
		if c.Contains(t) {
			return c
		}
	}
	return nil
}

// All returns the captions in start-time order. The slice is a copy;
// the records it points to are the live ones.
func (s *Set) All() []*Caption {
	out := make([]*Caption, len(s.captions))
	copy(out, s.captions)
	return out
}

// Len returns the number of captions in the set.
func (s *Set) Len() int {
	return len(s.captions)
}

// Overlaps returns every pair of captions whose time ranges share an
// interior point. Captions that merely touch at a boundary are the
// normal chaining case and are not reported. Overlapping ranges are
// permitted at the data level; this is the flagging surface for
// callers that want to warn about them.
func (s *Set) Overlaps() [][2]*Caption {
	var pairs [][2]*Caption
	for i, a := range s.captions {
		for _, b := range s.captions[i+1:] {
			if b.StartTime >= a.EndTime {
				break
			}
			pairs = append(pairs, [2]*Caption{a, b})
		}
	}
	return pairs
}

func (s *Set) byID(id string) *Caption {
	for _, c := range s.captions {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// validation is nil while the target text is empty
func validationFor(target string) *persian.Report {
	if target == "" {
		return nil
	}
	report := persian.Validate(target)
	return &report
}
