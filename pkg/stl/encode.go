package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
)

// EncodeBinary writes triangles as a binary STL document. The name is
// stored in the 80-byte header, truncated if longer.
func EncodeBinary(w io.Writer, name string, tris []Triangle) error {
	bw := bufio.NewWriter(w)

	var header [HeaderSize]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	if uint64(len(tris)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(tris))
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}

	var rec [BytesPerTriangle]byte
	for _, t := range tris {
		putVertex(rec[0:12], t.Normal)
		putVertex(rec[12:24], t.Vertices[0])
		putVertex(rec[24:36], t.Vertices[1])
		putVertex(rec[36:48], t.Vertices[2])
		// Attribute byte count stays zero.
		if _, err := bw.Write(rec[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func putVertex(b []byte, v Vertex) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(v.Z))
}

// EncodeASCII writes triangles as an ASCII STL document.
func EncodeASCII(w io.Writer, name string, tris []Triangle) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range tris {
		fmt.Fprintf(bw, "  facet normal %s\n", formatVertex(t.Normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range t.Vertices {
			fmt.Fprintf(bw, "      vertex %s\n", formatVertex(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	return bw.Flush()
}

// formatVertex prints the shortest text that parses back to the same float32s.
func formatVertex(v Vertex) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'e', -1, 32)
}
