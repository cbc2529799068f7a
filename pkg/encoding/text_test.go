package encoding

import "testing"

func TestLossyUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("solid cube"), "solid cube"},
		{"empty", []byte{}, ""},
		{"multibyte", []byte("solid 立方体"), "solid 立方体"},
		{"invalid byte", []byte{'a', 0xff, 'b'}, "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LossyUTF8(tt.in); got != tt.want {
				t.Errorf("LossyUTF8(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimNullString(t *testing.T) {
	header := make([]byte, 80)
	copy(header, "COLOR=")

	if got := TrimNullString(header); got != "COLOR=" {
		t.Errorf("TrimNullString() = %q, want %q", got, "COLOR=")
	}
	if got := TrimNullString([]byte("no nulls")); got != "no nulls" {
		t.Errorf("TrimNullString() = %q, want %q", got, "no nulls")
	}
}

func TestTrimNullBytes(t *testing.T) {
	got := TrimNullBytes([]byte{'a', 'b', 0, 0})
	if string(got) != "ab" {
		t.Errorf("TrimNullBytes() = %q, want %q", got, "ab")
	}
}
