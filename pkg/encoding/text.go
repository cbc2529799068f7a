// Package encoding provides text decoding helpers for STL headers and documents.
package encoding

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LossyUTF8 converts bytes to a UTF-8 string, replacing every invalid
// byte sequence with U+FFFD.
func LossyUTF8(data []byte) string {
	result, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), data)
	if err != nil {
		// The decoder never rejects input, but fall back to the standard
		// library replacement rather than losing the text.
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(result)
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

// TrimNullString returns the text of a fixed-size header field: everything
// before the first null byte, decoded lossily.
func TrimNullString(data []byte) string {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return LossyUTF8(data)
}
