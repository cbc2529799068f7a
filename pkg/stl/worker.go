package stl

import "fmt"

// worker decodes one partition. It owns all of its state and never talks
// to other workers; indices it emits are local to its own vertex list.
type worker struct {
	id        int
	triangles int  // Nominal triangle count, used for pre-sizing
	indexed   bool // Deduplicate vertices within the partition

	vertexMap map[VertexKey]uint32
	vertices  []Vertex
	indices   []uint32
	bounds    ModelBounds
}

func newWorker(id, triangles int, indexed bool) *worker {
	w := &worker{
		id:        id,
		triangles: triangles,
		indexed:   indexed,
		indices:   make([]uint32, 0, triangles*3),
		bounds:    NewModelBounds(),
	}
	if indexed {
		// Closed meshes share each vertex between ~6 triangles.
		w.vertexMap = make(map[VertexKey]uint32, triangles/2)
		w.vertices = make([]Vertex, 0, triangles/2)
	} else {
		w.vertices = make([]Vertex, 0, triangles*3)
	}
	return w
}

// runBinary decodes 50-byte binary triangle records.
func (w *worker) runBinary(data []byte) (*ModelData, error) {
	r := newRecordReader(data)
	for tri := 0; r.Len() > 0; tri++ {
		if err := r.skip(normalBytes, "normal"); err != nil {
			return nil, w.wrap(tri, err)
		}
		for i := 0; i < 3; i++ {
			v, err := r.vertex()
			if err != nil {
				return nil, w.wrap(tri, err)
			}
			w.add(v)
		}
		if err := r.skip(attributeBytes, "attribute count"); err != nil {
			return nil, w.wrap(tri, err)
		}
	}
	return w.result(), nil
}

// runASCII decodes 12-float records: a normal followed by three vertices.
func (w *worker) runASCII(floats []float32) (*ModelData, error) {
	for tri := 0; len(floats) > 0; tri++ {
		if len(floats) < FloatsPerTriangle {
			return nil, w.wrap(tri, fmt.Errorf("%w: %d trailing floats", ErrTruncatedRecord, len(floats)))
		}
		rec := floats[normalFloats:FloatsPerTriangle]
		for i := 0; i < 3; i++ {
			w.add(Vertex{X: rec[3*i], Y: rec[3*i+1], Z: rec[3*i+2]})
		}
		floats = floats[FloatsPerTriangle:]
	}
	return w.result(), nil
}

// add records one triangle corner. Bounds see every corner, including
// ones that turn out to be duplicates.
func (w *worker) add(v Vertex) {
	w.bounds.Update(v)
	w.indices = append(w.indices, w.vertexIndex(v))
}

// vertexIndex returns the local index of v, appending it if unseen.
func (w *worker) vertexIndex(v Vertex) uint32 {
	if !w.indexed {
		w.vertices = append(w.vertices, v)
		return uint32(len(w.vertices) - 1)
	}

	key := v.Key()
	if idx, ok := w.vertexMap[key]; ok {
		return idx
	}
	idx := uint32(len(w.vertices))
	w.vertices = append(w.vertices, v)
	w.vertexMap[key] = idx
	return idx
}

func (w *worker) result() *ModelData {
	return &ModelData{
		Vertices: w.vertices,
		Indices:  w.indices,
		Bounds:   w.bounds,
	}
}

func (w *worker) wrap(tri int, err error) error {
	return fmt.Errorf("worker %d, triangle %d: %w", w.id, tri, err)
}
