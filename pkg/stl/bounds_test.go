package stl

import (
	"math"
	"testing"
)

func TestNewModelBoundsIsIdentity(t *testing.T) {
	b := NewModelBounds()

	for _, r := range []Range{b.X, b.Y, b.Z} {
		if !math.IsInf(float64(r.Min), 1) || !math.IsInf(float64(r.Max), -1) {
			t.Fatalf("expected (+Inf, -Inf), got (%v, %v)", r.Min, r.Max)
		}
	}
	if !b.Empty() {
		t.Error("expected new bounds to be empty")
	}
	if b.MaxExtent() != 0 {
		t.Errorf("expected MaxExtent 0 for empty bounds, got %v", b.MaxExtent())
	}
}

func TestModelBoundsUpdate(t *testing.T) {
	b := NewModelBounds()
	b.Update(Vertex{1, 2, 3})

	if b.X != (Range{1, 1}) || b.Y != (Range{2, 2}) || b.Z != (Range{3, 3}) {
		t.Fatalf("first vertex should set both ends, got %+v", b)
	}

	b.Update(Vertex{-1, 5, 3})
	if b.X != (Range{-1, 1}) {
		t.Errorf("X = %+v, want {-1 1}", b.X)
	}
	if b.Y != (Range{2, 5}) {
		t.Errorf("Y = %+v, want {2 5}", b.Y)
	}
	if b.Empty() {
		t.Error("bounds with vertices should not be empty")
	}
}

func TestModelBoundsMerge(t *testing.T) {
	a := NewModelBounds()
	a.Update(Vertex{0, 0, 0})
	a.Update(Vertex{1, 1, 1})

	b := NewModelBounds()
	b.Update(Vertex{-2, 0.5, 4})

	a.Merge(b)
	want := ModelBounds{X: Range{-2, 1}, Y: Range{0, 1}, Z: Range{0, 4}}
	if a != want {
		t.Errorf("Merge() = %+v, want %+v", a, want)
	}
}

func TestModelBoundsMergeEmpty(t *testing.T) {
	a := NewModelBounds()
	a.Update(Vertex{1, 2, 3})
	before := a

	a.Merge(NewModelBounds())
	if a != before {
		t.Errorf("merging empty bounds changed %+v to %+v", before, a)
	}

	empty := NewModelBounds()
	empty.Merge(before)
	if empty != before {
		t.Errorf("merging into empty bounds = %+v, want %+v", empty, before)
	}
}

func TestModelBoundsGeometry(t *testing.T) {
	b := NewModelBounds()
	b.Update(Vertex{-55, 40, 0})
	b.Update(Vertex{-35, 60, 30})

	if got := b.Center(); got != (Vertex{-45, 50, 15}) {
		t.Errorf("Center() = %v", got)
	}
	if got := b.Size(); got != (Vertex{20, 20, 30}) {
		t.Errorf("Size() = %v", got)
	}
	if got := b.MaxExtent(); got != 30 {
		t.Errorf("MaxExtent() = %v, want 30", got)
	}
	if !b.Contains(Vertex{-40, 50, 30}) {
		t.Error("expected point on the boundary to be contained")
	}
	if b.Contains(Vertex{0, 50, 15}) {
		t.Error("expected point outside X range not to be contained")
	}
}
