package caption

import (
	"errors"
	"testing"

	"github.com/nimarahimi/zirnevis/internal/persian"
)

func TestAddRejectsInvalidRange(t *testing.T) {
	set := NewSet()

	tests := []struct {
		name       string
		start, end float64
	}{
		{"start after end", 5, 2},
		{"start equals end", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := set.Add(Draft{
				StartTime:  tt.start,
				EndTime:    tt.end,
				TargetText: "سلام",
			})
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Add() error = %v, want ErrInvalidRange", err)
			}
			if set.Len() != 0 {
				t.Errorf("set should remain empty, has %d captions", set.Len())
			}
		})
	}
}

func TestAddKeepsStartTimeOrder(t *testing.T) {
	set := NewSet()

	for _, start := range []float64{5, 1, 3} {
		if _, err := set.Add(Draft{
			StartTime:  start,
			EndTime:    start + 2,
			TargetText: "سلام",
		}); err != nil {
			t.Fatalf("Add(%v) failed: %v", start, err)
		}
	}

	var got []float64
	for _, c := range set.All() {
		got = append(got, c.StartTime)
	}

	want := []float64{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() start times = %v, want %v", got, want)
		}
	}
}

func TestAddBreaksTiesByInsertionOrder(t *testing.T) {
	set := NewSet()

	first, err := set.Add(Draft{StartTime: 2, EndTime: 4, TargetText: "اول"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := set.Add(Draft{StartTime: 2, EndTime: 5, TargetText: "دوم"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	all := set.All()
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("equal start times should keep insertion order")
	}
}

func TestAddNormalizesAndValidates(t *testing.T) {
	set := NewSet()

	c, err := set.Add(Draft{
		StartTime:  0,
		EndTime:    2,
		TargetText: "  علي  said hi",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if c.TargetText != "علی said hi" {
		t.Errorf("TargetText = %q, want normalized form", c.TargetText)
	}
	if c.Validation == nil {
		t.Fatal("Validation should be computed for non-empty target text")
	}
	if c.Validation.IsValid {
		t.Error("mixed-script text should not validate clean")
	}
	if c.ID == "" {
		t.Error("Add should assign an id")
	}
	if c.LastModified.IsZero() {
		t.Error("Add should stamp LastModified")
	}
}

func TestAddEmptyTargetHasNoValidation(t *testing.T) {
	set := NewSet()

	c, err := set.Add(Draft{StartTime: 0, EndTime: 2, SourceText: "Hello"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if c.Validation != nil {
		t.Errorf("Validation = %+v, want nil for empty target text", c.Validation)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	set := NewSet()

	_, err := set.Update("missing", Patch{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateRevalidatesTargetText(t *testing.T) {
	set := NewSet()
	c, err := set.Add(Draft{StartTime: 0, EndTime: 2, TargetText: "Hello"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if c.Validation == nil || c.Validation.IsValid {
		t.Fatal("latin-only target should start out invalid")
	}

	newText := "سلام"
	updated, err := set.Update(c.ID, Patch{TargetText: &newText})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Validation == nil || !updated.Validation.IsValid {
		t.Errorf("Validation = %+v, want valid after persian text", updated.Validation)
	}
	if updated.Validation.Score != 100 {
		t.Errorf("Score = %d, want 100", updated.Validation.Score)
	}
}

func TestUpdateInvalidRangeLeavesSetUnchanged(t *testing.T) {
	set := NewSet()
	c, err := set.Add(Draft{StartTime: 1, EndTime: 4, TargetText: "سلام"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	badStart := 6.0
	text := "تغییر"
	_, err = set.Update(c.ID, Patch{StartTime: &badStart, TargetText: &text})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Update() error = %v, want ErrInvalidRange", err)
	}

	got := set.All()[0]
	if got.StartTime != 1 || got.EndTime != 4 {
		t.Errorf("range changed to [%v,%v], want untouched [1,4]",
			got.StartTime, got.EndTime)
	}
	if got.TargetText != "سلام" {
		t.Errorf("TargetText = %q, want untouched", got.TargetText)
	}
}

func TestUpdateStartTimeResorts(t *testing.T) {
	set := NewSet()
	a, _ := set.Add(Draft{StartTime: 1, EndTime: 2, TargetText: "یک"})
	b, _ := set.Add(Draft{StartTime: 3, EndTime: 4, TargetText: "دو"})

	newStart := 5.0
	newEnd := 6.0
	if _, err := set.Update(a.ID, Patch{
		StartTime: &newStart,
		EndTime:   &newEnd,
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	all := set.All()
	if all[0].ID != b.ID || all[1].ID != a.ID {
		t.Errorf("set should re-sort after a start time change")
	}
}

func TestRemove(t *testing.T) {
	set := NewSet()
	a, _ := set.Add(Draft{StartTime: 1, EndTime: 2, TargetText: "یک"})
	b, _ := set.Add(Draft{StartTime: 3, EndTime: 4, TargetText: "دو"})
	c, _ := set.Add(Draft{StartTime: 5, EndTime: 6, TargetText: "سه"})

	set.Remove(b.ID)

	all := set.All()
	if len(all) != 2 || all[0].ID != a.ID || all[1].ID != c.ID {
		t.Errorf("Remove should preserve the order of remaining captions")
	}

	// removing an unknown id is a no-op
	set.Remove("missing")
	if set.Len() != 2 {
		t.Errorf("Remove(unknown) changed the set")
	}
}

func TestActiveAt(t *testing.T) {
	set := NewSet()
	first, _ := set.Add(Draft{StartTime: 0, EndTime: 3, TargetText: "یک"})
	second, _ := set.Add(Draft{StartTime: 3, EndTime: 6, TargetText: "دو"})

	tests := []struct {
		name string
		time float64
		want *Caption
	}{
		{"before all", -1, nil},
		{"start of first", 0, first},
		{"inside first", 1.5, first},
		// both ranges contain 3; the earliest start time wins
		{"shared boundary", 3, first},
		{"inside second", 4, second},
		{"end of second", 6, second},
		{"after all", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.ActiveAt(tt.time)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("ActiveAt(%v) = %v, want nil", tt.time, got.ID)
			case tt.want != nil && (got == nil || got.ID != tt.want.ID):
				t.Errorf("ActiveAt(%v) = %v, want %v", tt.time, got, tt.want.ID)
			}
		})
	}
}

func TestActiveAtOverlapTieBreak(t *testing.T) {
	set := NewSet()
	// inserted later but starts earlier
	late, _ := set.Add(Draft{StartTime: 2, EndTime: 8, TargetText: "دیر"})
	early, _ := set.Add(Draft{StartTime: 1, EndTime: 5, TargetText: "زود"})

	got := set.ActiveAt(3)
	if got == nil || got.ID != early.ID {
		t.Errorf("ActiveAt inside overlap should return the earliest start time")
	}

	got = set.ActiveAt(7)
	if got == nil || got.ID != late.ID {
		t.Errorf("ActiveAt past the early range should return the later caption")
	}
}

func TestOverlaps(t *testing.T) {
	set := NewSet()
	a, _ := set.Add(Draft{StartTime: 0, EndTime: 4, TargetText: "یک"})
	b, _ := set.Add(Draft{StartTime: 2, EndTime: 6, TargetText: "دو"})
	// touching at the boundary is the normal chaining case
	set.Add(Draft{StartTime: 6, EndTime: 9, TargetText: "سه"})

	pairs := set.Overlaps()
	if len(pairs) != 1 {
		t.Fatalf("Overlaps() returned %d pairs, want 1", len(pairs))
	}
	if pairs[0][0].ID != a.ID || pairs[0][1].ID != b.ID {
		t.Errorf("Overlaps() flagged the wrong pair")
	}
}

func TestNewSetFrom(t *testing.T) {
	captions := []Caption{
		{ID: "b", StartTime: 5, EndTime: 8, TargetText: "علي"},
		{ID: "a", StartTime: 1, EndTime: 3, TargetText: "Hello"},
		// dropped: inverted range
		{ID: "bad", StartTime: 4, EndTime: 2, TargetText: "سلام"},
		// dropped: no id
		{StartTime: 9, EndTime: 10, TargetText: "سلام"},
	}

	set := NewSetFrom(captions)

	all := set.All()
	if len(all) != 2 {
		t.Fatalf("NewSetFrom kept %d captions, want 2", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "b" {
		t.Errorf("NewSetFrom should re-establish start time order")
	}
	if all[1].TargetText != "علی" {
		t.Errorf("TargetText = %q, want re-normalized form", all[1].TargetText)
	}
	if all[0].Validation == nil ||
		all[0].Validation.Issues[0] != persian.IssueNoPersianScript {
		t.Errorf("NewSetFrom should recompute validation from stored text")
	}
}
