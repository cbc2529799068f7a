package shader

import (
	"strings"
	"testing"
	"unsafe"
)

func TestEmbeddedSources(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{"mesh vertex", MeshVertex, []string{"uModel", "uView", "uProjection", "location = 0"}},
		{"mesh fragment", MeshFragment, []string{"uKey", "uFill", "uBase", "dFdx"}},
		{"background vertex", BackgroundVertex, []string{"uCorners[4]", "gl_VertexID"}},
		{"background fragment", BackgroundFragment, []string{"FragColor"}},
		{"line vertex", LineVertex, []string{"uModel", "uView", "uProjection"}},
		{"line fragment", LineFragment, []string{"uColor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.src, "#version 410 core") {
				t.Errorf("source should start with the 4.1 core version line")
			}
			for _, want := range tt.contains {
				if !strings.Contains(tt.src, want) {
					t.Errorf("source missing %q", want)
				}
			}
		})
	}
}

func TestInfoLog(t *testing.T) {
	if got := infoLog(0, func(*uint8) { t.Error("read called for empty log") }); got != "(no log)" {
		t.Errorf("empty log = %q", got)
	}

	msg := "0:3: syntax error\n\x00"
	got := infoLog(int32(len(msg)), func(buf *uint8) {
		// Mimic the driver copying into the buffer.
		copy(unsafe.Slice(buf, len(msg)), msg)
	})
	if got != "0:3: syntax error" {
		t.Errorf("infoLog = %q", got)
	}
}
