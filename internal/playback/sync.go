package playback

import (
	"github.com/nimarahimi/zirnevis/internal/caption"
)

// Clock is the external playback time source, e.g. a media element.
// CurrentTime and Duration are non-negative seconds; Seek sets the
// current time imperatively.
type Clock interface {
	CurrentTime() float64
	Duration() float64
	Seek(t float64)
}

// State mirrors the external play/pause state. It is carried through
// unchanged and never gates any Sync operation: scrubbing while paused
// must still update the active caption.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Sync bridges a monotonically advancing playback clock to caption
// lookups, tracking which caption is active and notifying exactly once
// per transition.
type Sync struct {
	clock    Clock
	set      *caption.Set
	state    State
	active   *caption.Caption
	onChange func(*caption.Caption)
}

// NewSync wires a clock to a caption set. onChange may be nil; when
// set, it is called once per active-caption transition with the new
// active caption, or nil when playback leaves all captions.
func NewSync(clock Clock, set *caption.Set, onChange func(*caption.Caption)) *Sync {
	return &Sync{
		clock:    clock,
		set:      set,
		onChange: onChange,
	}
}

// OnTimeUpdate recomputes the active caption for the given time and
// emits a change notification iff it differs, by id, from the
// previously reported one. Calling it every frame while the same
// caption stays active produces no further notifications.
func (s *Sync) OnTimeUpdate(t float64) {
	next := s.set.ActiveAt(t)
	if sameCaption(s.active, next) {
		return
	}
	s.active = next
	if s.onChange != nil {
		s.onChange(next)
	}
}

// Seek clamps the target to [0, duration], moves the external clock,
// and immediately recomputes the active caption rather than waiting
// for the next natural time update.
func (s *Sync) Seek(target float64) {
	if target < 0 {
		target = 0
	}
	if d := s.clock.Duration(); d > 0 && target > d {
		target = d
	}
	s.clock.Seek(target)
	s.OnTimeUpdate(target)
}

// Skip seeks relative to the current clock time.
func (s *Sync) Skip(delta float64) {
	s.Seek(s.clock.CurrentTime() + delta)
}

// Active returns the caption last reported active, or nil.
func (s *Sync) Active() *caption.Caption {
	return s.active
}

// SetState records an external play/pause event.
func (s *Sync) SetState(state State) {
	s.state = state
}

// State returns the last recorded play/pause state.
func (s *Sync) State() State {
	return s.state
}

func sameCaption(a, b *caption.Caption) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
