package renderer

import "github.com/Faultbox/stlview/pkg/stl"

// boundsVertexCount is the number of line endpoints in a box (12 edges x 2).
const boundsVertexCount = 24

// BoundsWireframe returns line endpoints outlining b, as x, y, z triples.
// Empty bounds yield nil.
func BoundsWireframe(b stl.ModelBounds) []float32 {
	if b.Empty() {
		return nil
	}
	x0, y0, z0 := b.X.Min, b.Y.Min, b.Z.Min
	x1, y1, z1 := b.X.Max, b.Y.Max, b.Z.Max

	return []float32{
		// Bottom face (z = min)
		x0, y0, z0, x1, y0, z0,
		x1, y0, z0, x1, y1, z0,
		x1, y1, z0, x0, y1, z0,
		x0, y1, z0, x0, y0, z0,
		// Top face (z = max)
		x0, y0, z1, x1, y0, z1,
		x1, y0, z1, x1, y1, z1,
		x1, y1, z1, x0, y1, z1,
		x0, y1, z1, x0, y0, z1,
		// Vertical edges
		x0, y0, z0, x0, y0, z1,
		x1, y0, z0, x1, y0, z1,
		x1, y1, z0, x1, y1, z1,
		x0, y1, z0, x0, y1, z1,
	}
}
