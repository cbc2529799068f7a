package stl

import (
	"errors"
	"strconv"
	"strings"
)

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseFloats splits text on ASCII whitespace and returns every token that
// parses as a float32. Keywords such as "facet" or "vertex" are dropped;
// out-of-range values saturate to ±Inf.
func parseFloats(text string) []float32 {
	// Roughly one in three tokens of an ASCII STL is a keyword.
	floats := make([]float32, 0, len(text)/12)

	i := 0
	for i < len(text) {
		for i < len(text) && isASCIISpace(text[i]) {
			i++
		}
		start := i
		for i < len(text) && !isASCIISpace(text[i]) {
			i++
		}
		if start == i {
			break
		}
		f, err := strconv.ParseFloat(text[start:i], 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		floats = append(floats, float32(f))
	}

	return floats
}

// solidName returns the name following "solid" on the first line.
func solidName(text string) string {
	line := text
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, asciiTag))
}
