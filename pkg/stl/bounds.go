package stl

import "math"

// Range is a closed interval on one axis.
type Range struct {
	Min, Max float32
}

// ModelBounds is an axis-aligned bounding box accumulator.
type ModelBounds struct {
	X, Y, Z Range
}

// NewModelBounds returns empty bounds (Min=+Inf, Max=-Inf on every axis),
// so the first Update sets both ends and Merge with it is a no-op.
func NewModelBounds() ModelBounds {
	inf := float32(math.Inf(1))
	empty := Range{Min: inf, Max: -inf}
	return ModelBounds{X: empty, Y: empty, Z: empty}
}

func (r *Range) include(v float32) {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

func (r *Range) merge(other Range) {
	if other.Min < r.Min {
		r.Min = other.Min
	}
	if other.Max > r.Max {
		r.Max = other.Max
	}
}

// Update folds a vertex into the bounds.
func (b *ModelBounds) Update(v Vertex) {
	b.X.include(v.X)
	b.Y.include(v.Y)
	b.Z.include(v.Z)
}

// Merge folds other into b by per-axis min/max.
func (b *ModelBounds) Merge(other ModelBounds) {
	b.X.merge(other.X)
	b.Y.merge(other.Y)
	b.Z.merge(other.Z)
}

// Empty returns true if no vertex has been folded in.
func (b ModelBounds) Empty() bool {
	return b.X.Min > b.X.Max || b.Y.Min > b.Y.Max || b.Z.Min > b.Z.Max
}

// Contains reports whether v lies inside the bounds (inclusive).
func (b ModelBounds) Contains(v Vertex) bool {
	return b.X.Min <= v.X && v.X <= b.X.Max &&
		b.Y.Min <= v.Y && v.Y <= b.Y.Max &&
		b.Z.Min <= v.Z && v.Z <= b.Z.Max
}

// Center returns the midpoint of the box.
func (b ModelBounds) Center() Vertex {
	return Vertex{
		X: (b.X.Min + b.X.Max) / 2,
		Y: (b.Y.Min + b.Y.Max) / 2,
		Z: (b.Z.Min + b.Z.Max) / 2,
	}
}

// Size returns the extent of the box along each axis.
func (b ModelBounds) Size() Vertex {
	return Vertex{
		X: b.X.Max - b.X.Min,
		Y: b.Y.Max - b.Y.Min,
		Z: b.Z.Max - b.Z.Min,
	}
}

// MaxExtent returns the largest axis extent, or 0 for empty bounds.
func (b ModelBounds) MaxExtent() float32 {
	if b.Empty() {
		return 0
	}
	s := b.Size()
	m := s.X
	if s.Y > m {
		m = s.Y
	}
	if s.Z > m {
		m = s.Z
	}
	return m
}
