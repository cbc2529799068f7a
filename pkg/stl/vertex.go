package stl

import (
	"fmt"
	"math"
)

// Vertex is a point in model space.
type Vertex struct {
	X, Y, Z float32
}

// VertexKey is the bit pattern of a Vertex, used as a map key.
type VertexKey [3]uint32

// Key returns the exact IEEE-754 bit pattern of the vertex coordinates.
func (v Vertex) Key() VertexKey {
	return VertexKey{
		math.Float32bits(v.X),
		math.Float32bits(v.Y),
		math.Float32bits(v.Z),
	}
}

// Equal reports whether both vertices have bit-identical coordinates.
// Unlike ==, +0 and -0 differ and a NaN equals an identical NaN.
func (v Vertex) Equal(other Vertex) bool {
	return v.Key() == other.Key()
}

// String returns the vertex as "(x, y, z)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Array returns the coordinates as an array.
func (v Vertex) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
