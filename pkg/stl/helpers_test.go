package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// cubeCorners is a 20mm cube as 12 triangles, three corners each.
var cubeCorners = []Vertex{
	{-35, 60, 20}, {-55, 60, 20}, {-35, 40, 20},
	{-35, 40, 20}, {-55, 60, 20}, {-55, 40, 20},
	{-35, 40, 0}, {-55, 40, 0}, {-35, 60, 0},
	{-35, 60, 0}, {-55, 40, 0}, {-55, 60, 0},
	{-55, 40, 20}, {-55, 40, 0}, {-35, 40, 20},
	{-35, 40, 20}, {-55, 40, 0}, {-35, 40, 0},
	{-55, 60, 20}, {-55, 60, 0}, {-55, 40, 20},
	{-55, 40, 20}, {-55, 60, 0}, {-55, 40, 0},
	{-35, 60, 20}, {-35, 60, 0}, {-55, 60, 20},
	{-55, 60, 20}, {-35, 60, 0}, {-55, 60, 0},
	{-35, 40, 20}, {-35, 40, 0}, {-35, 60, 20},
	{-35, 60, 20}, {-35, 40, 0}, {-35, 60, 0},
}

var cubeVertices = []Vertex{
	{-35, 60, 20}, {-55, 60, 20}, {-35, 40, 20}, {-55, 40, 20},
	{-35, 40, 0}, {-55, 40, 0}, {-35, 60, 0}, {-55, 60, 0},
}

var cubeIndices = []uint32{
	0, 1, 2, 2, 1, 3,
	4, 5, 6, 6, 5, 7,
	3, 5, 2, 2, 5, 4,
	1, 7, 3, 3, 7, 5,
	0, 6, 1, 1, 6, 7,
	2, 4, 0, 0, 4, 6,
}

// asciiCubeCorners is a 10mm cube at the origin, three corners per triangle.
var asciiCubeCorners = []Vertex{
	{0, 0, 10}, {10, 0, 10}, {0, 10, 10},
	{10, 10, 10}, {0, 10, 10}, {10, 0, 10},
	{10, 0, 10}, {10, 0, 0}, {10, 10, 10},
	{10, 10, 0}, {10, 10, 10}, {10, 0, 0},
	{10, 0, 0}, {0, 0, 0}, {10, 10, 0},
	{0, 10, 0}, {10, 10, 0}, {0, 0, 0},
	{0, 0, 0}, {0, 0, 10}, {0, 10, 0},
	{0, 10, 10}, {0, 10, 0}, {0, 0, 10},
	{0, 10, 10}, {10, 10, 10}, {0, 10, 0},
	{10, 10, 0}, {0, 10, 0}, {10, 10, 10},
	{10, 0, 10}, {0, 0, 10}, {10, 0, 0},
	{0, 0, 0}, {10, 0, 0}, {0, 0, 10},
}

var asciiCubeVertices = []Vertex{
	{0, 0, 10}, {10, 0, 10}, {0, 10, 10}, {10, 10, 10},
	{10, 0, 0}, {10, 10, 0}, {0, 0, 0}, {0, 10, 0},
}

var asciiCubeIndices = []uint32{
	0, 1, 2, 3, 2, 1,
	1, 4, 3, 5, 3, 4,
	4, 6, 5, 7, 5, 6,
	6, 0, 7, 2, 7, 0,
	2, 3, 7, 5, 7, 3,
	1, 0, 4, 6, 4, 0,
}

// trianglesOf groups corners into triangles with zero normals.
func trianglesOf(corners []Vertex) []Triangle {
	tris := make([]Triangle, len(corners)/3)
	for i := range tris {
		copy(tris[i].Vertices[:], corners[3*i:3*i+3])
	}
	return tris
}

// createTestBinarySTL builds a binary STL file by hand. count is written
// to the header as-is so tests can declare more triangles than present.
func createTestBinarySTL(header string, count uint32, tris []Triangle) []byte {
	buf := new(bytes.Buffer)

	var h [80]byte
	copy(h[:], header)
	buf.Write(h[:])

	binary.Write(buf, binary.LittleEndian, count)

	for _, t := range tris {
		binary.Write(buf, binary.LittleEndian, [3]float32{t.Normal.X, t.Normal.Y, t.Normal.Z})
		for _, v := range t.Vertices {
			binary.Write(buf, binary.LittleEndian, [3]float32{v.X, v.Y, v.Z})
		}
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	return buf.Bytes()
}

// createTestASCIISTL builds an ASCII STL document; sep separates tokens.
func createTestASCIISTL(name string, tris []Triangle, sep string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "solid %s\n", name)
	for _, t := range tris {
		b.WriteString(strings.Join([]string{"facet", "normal", "0", "0", "0"}, sep) + "\n")
		b.WriteString("outer" + sep + "loop\n")
		for _, v := range t.Vertices {
			b.WriteString(strings.Join([]string{"vertex", fmtFloat(v.X), fmtFloat(v.Y), fmtFloat(v.Z)}, sep) + "\n")
		}
		b.WriteString("endloop\nendfacet\n")
	}
	fmt.Fprintf(&b, "endsolid %s\n", name)
	return b.String()
}

func fmtFloat(f float32) string {
	return fmt.Sprintf("%g", f)
}

// testLoader returns a loader that sees exactly cpus CPUs.
func testLoader(cpus int, opts Options) *Loader {
	l := NewLoader(opts)
	l.numCPU = func() int { return cpus }
	return l
}

// geometry expands a mesh into its list of corner coordinates.
func geometry(m *ModelData) []Vertex {
	out := make([]Vertex, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = m.Vertices[idx]
	}
	return out
}

func equalVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalIndices(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
