package stl

import (
	"encoding/binary"
	"fmt"
	"math"
)

// recordReader is a bounds-checked little-endian cursor over a byte slice.
type recordReader struct {
	data []byte
	off  int
}

func newRecordReader(data []byte) *recordReader {
	return &recordReader{data: data}
}

// Len returns the number of unread bytes.
func (r *recordReader) Len() int {
	return len(r.data) - r.off
}

func (r *recordReader) need(n int, what string) error {
	if r.Len() < n {
		return fmt.Errorf("%w: reading %s at offset %d: need %d bytes, have %d",
			ErrTruncatedRecord, what, r.off, n, r.Len())
	}
	return nil
}

func (r *recordReader) skip(n int, what string) error {
	if err := r.need(n, what); err != nil {
		return err
	}
	r.off += n
	return nil
}

func (r *recordReader) uint32() (uint32, error) {
	if err := r.need(4, "uint32"); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *recordReader) vertex() (Vertex, error) {
	if err := r.need(12, "vertex"); err != nil {
		return Vertex{}, err
	}
	b := r.data[r.off : r.off+12]
	r.off += 12
	return Vertex{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}, nil
}
