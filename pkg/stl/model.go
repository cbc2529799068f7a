package stl

import "fmt"

// Triangle is one facet of a mesh.
type Triangle struct {
	Normal   Vertex
	Vertices [3]Vertex
}

// ModelData is a decoded mesh: vertices deduplicated within each decode
// partition, three indices per triangle in file order, and merged bounds.
type ModelData struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   ModelBounds

	Format Format // Encoding the mesh was decoded from
	Name   string // Binary header text or ASCII solid name
}

// TriangleCount returns the number of triangles.
func (m *ModelData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (m *ModelData) Triangle(i int) [3]Vertex {
	return [3]Vertex{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// Triangles expands the indexed mesh back into a triangle list.
// Normals are left zero; readers recompute them if needed.
func (m *ModelData) Triangles() []Triangle {
	tris := make([]Triangle, m.TriangleCount())
	for i := range tris {
		tris[i].Vertices = m.Triangle(i)
	}
	return tris
}

// Validate checks that the index list describes whole triangles and that
// every index refers to an existing vertex.
func (m *ModelData) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}
