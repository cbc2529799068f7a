// Package stl decodes binary and ASCII STL files into an indexed triangle mesh.
package stl

import (
	"errors"
	"fmt"
)

// Binary layout constants.
const (
	HeaderSize        = 80
	MinFileSize       = HeaderSize + 4 // header + triangle count
	BytesPerTriangle  = 50             // normal (12) + 3 vertices (36) + attribute count (2)
	FloatsPerTriangle = 12             // normal (3) + 3 vertices (9)

	normalBytes    = 12
	attributeBytes = 2
	normalFloats   = 3
)

// asciiTag marks an ASCII STL document.
const asciiTag = "solid"

// STL decode errors.
var (
	ErrFileTooSmall    = errors.New("file too small to be an STL file")
	ErrTruncatedRecord = errors.New("truncated STL record")
	ErrParallelism     = errors.New("could not determine available parallelism")
	ErrClockAnomaly    = errors.New("negative parse time")
)

// Format identifies the STL encoding of a decoded file.
type Format uint8

// Supported encodings.
const (
	FormatBinary Format = iota
	FormatASCII
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Unknown(%d)", f)
	}
}

// IsASCII reports whether data looks like an ASCII STL document.
// Only the first five bytes are inspected, so a binary file whose
// header happens to start with "solid" is classified as ASCII.
func IsASCII(data []byte) bool {
	return len(data) >= len(asciiTag) && string(data[:len(asciiTag)]) == asciiTag
}
