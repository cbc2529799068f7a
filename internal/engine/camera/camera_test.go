package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/stlview/pkg/math"
	"github.com/Faultbox/stlview/pkg/stl"
)

func near(a, b math.Vec3, eps float32) bool {
	d := a.Sub(b)
	return d.Length() <= eps
}

func boundsOf(vs ...stl.Vertex) stl.ModelBounds {
	b := stl.NewModelBounds()
	for _, v := range vs {
		b.Update(v)
	}
	return b
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{"orthographic", Orthographic, false},
		{"ortho", Orthographic, false},
		{"perspective", Perspective, false},
		{"fisheye", Orthographic, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProjection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProjection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProjection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFitBounds(t *testing.T) {
	c := New(800, 600)
	c.FitBounds(boundsOf(stl.Vertex{X: 0, Y: 0, Z: 0}, stl.Vertex{X: 10, Y: 4, Z: 2}))

	if got := c.Scale(); gomath.Abs(float64(got-0.1)) > 1e-6 {
		t.Errorf("scale = %v, want 0.1", got)
	}
	if got := c.Center(); got != (math.Vec3{X: 5, Y: 2, Z: 1}) {
		t.Errorf("center = %v, want (5, 2, 1)", got)
	}

	// STL Z-up should end up as screen Y-up.
	up := c.Orientation().Rotate(math.Vec3{Z: 1})
	if !near(up, math.Vec3{Y: 1}, 1e-5) {
		t.Errorf("model Z maps to %v, want screen Y", up)
	}
}

func TestFitBoundsCentersModel(t *testing.T) {
	c := New(400, 400)
	c.FitBounds(boundsOf(stl.Vertex{X: -3, Y: 1, Z: 7}, stl.Vertex{X: 5, Y: 9, Z: 9}))

	// The bounds centre lands on the middle of the screen.
	p := c.Matrix().TransformPoint(c.Center())
	if !near(math.Vec3{X: p.X, Y: p.Y}, math.Vec3{}, 1e-5) {
		t.Errorf("centre projects to %v, want origin", p)
	}
}

func TestFitBoundsEmpty(t *testing.T) {
	c := New(800, 600)
	before := *c
	c.FitBounds(stl.NewModelBounds())

	if c.Scale() != before.Scale() || c.Center() != before.Center() || c.Orientation() != before.Orientation() {
		t.Error("empty bounds should leave the camera unchanged")
	}
}

func TestFitBoundsSinglePoint(t *testing.T) {
	c := New(800, 600)
	c.FitBounds(boundsOf(stl.Vertex{X: 1, Y: 2, Z: 3}))

	if c.Scale() != 1 {
		t.Errorf("zero-extent bounds should keep scale 1, got %v", c.Scale())
	}
	if c.Center() != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("center = %v", c.Center())
	}
}

func TestProjectionMatrixAspect(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		m0, m5 float32
	}{
		{"wide", 800, 400, 0.5, 1},
		{"tall", 400, 800, 1, 0.5},
		{"square", 500, 500, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.w, tt.h).ProjectionMatrix()
			if m[0] != tt.m0 || m[5] != tt.m5 {
				t.Errorf("got m0=%v m5=%v, want %v %v", m[0], m[5], tt.m0, tt.m5)
			}
		})
	}
}

func TestToggleProjection(t *testing.T) {
	c := New(100, 100)
	if c.ProjectionMatrix()[11] != 0 {
		t.Error("orthographic projection should not scale w by depth")
	}

	c.ToggleProjection()
	if c.Projection() != Perspective {
		t.Fatalf("expected perspective after toggle, got %v", c.Projection())
	}
	if c.ProjectionMatrix()[11] != 0.5 {
		t.Errorf("perspective coefficient = %v, want 0.5", c.ProjectionMatrix()[11])
	}

	c.ToggleProjection()
	if c.Projection() != Orthographic {
		t.Errorf("expected orthographic after second toggle, got %v", c.Projection())
	}
}

func TestTrackballOnSphere(t *testing.T) {
	for _, p := range []math.Vec3{{}, {X: 0.2, Y: -0.1}, {X: 0.9, Y: 0.9}, {X: -1, Y: 0}} {
		v := trackball(p)
		if l := v.Length(); gomath.Abs(float64(l-1)) > 1e-5 {
			t.Errorf("trackball(%v) length = %v, want 1", p, l)
		}
		if v.Z <= 0 {
			t.Errorf("trackball(%v) should face the viewer, got %v", p, v)
		}
	}
}

func TestRotateDrag(t *testing.T) {
	c := New(200, 200)
	c.MouseMoved(100, 100) // first motion makes the mouse free
	c.MousePressed(ButtonLeft)
	c.MouseMoved(130, 100)
	c.MouseReleased(ButtonLeft)

	q := c.Orientation()
	if q == math.QuatIdentity() {
		t.Fatal("dragging should rotate the model")
	}
	// A horizontal drag turns the model about the screen Y axis.
	axis := math.Vec3{X: q.X, Y: q.Y, Z: q.Z}.Normalize()
	if !near(axis, math.Vec3{Y: 1}, 1e-4) {
		t.Errorf("rotation axis = %v, want +Y", axis)
	}

	// Moving after release no longer rotates.
	c.MouseMoved(10, 10)
	if c.Orientation() != q {
		t.Error("orientation changed after release")
	}
}

func TestPressBeforeFirstMotionIgnored(t *testing.T) {
	c := New(200, 200)
	c.MousePressed(ButtonLeft)
	c.MouseMoved(150, 100)
	c.MouseMoved(160, 100)

	if c.Orientation() != math.QuatIdentity() {
		t.Error("a press before any motion should not start a drag")
	}
}

func TestPanKeepsPointUnderCursor(t *testing.T) {
	c := New(400, 300)
	c.FitBounds(boundsOf(stl.Vertex{}, stl.Vertex{X: 2, Y: 2, Z: 2}))

	c.MouseMoved(200, 150)
	c.MousePressed(ButtonRight)
	grabbed := c.unproject(c.normalize(200, 150))

	c.MouseMoved(260, 120)
	now := c.unproject(c.normalize(260, 120))
	if !near(now, grabbed, 1e-4) {
		t.Errorf("point under cursor drifted from %v to %v", grabbed, now)
	}

	c.MouseReleased(ButtonRight)
	if c.mode != mouseFree {
		t.Error("release should end the pan")
	}
}

func TestScroll(t *testing.T) {
	c := New(400, 400)
	c.FitBounds(boundsOf(stl.Vertex{}, stl.Vertex{X: 4, Y: 4, Z: 4}))

	// Wheel events before any motion are ignored.
	c.Scroll(100)
	if c.Scale() != 0.25 {
		t.Fatalf("scroll before motion changed scale to %v", c.Scale())
	}

	c.MouseMoved(200, 200)
	c.Scroll(100)
	if got := c.Scale(); gomath.Abs(float64(got-0.375)) > 1e-6 {
		t.Errorf("scale after scroll = %v, want 0.375", got)
	}
}

func TestZoomKeepsPointUnderCursor(t *testing.T) {
	c := New(400, 400)
	c.FitBounds(boundsOf(stl.Vertex{}, stl.Vertex{X: 4, Y: 4, Z: 4}))

	pos := math.Vec3{X: 0.4, Y: -0.3}
	grabbed := c.unproject(pos)
	c.Zoom(2, pos)

	got := c.Matrix().TransformPoint(grabbed)
	if !near(math.Vec3{X: got.X, Y: got.Y}, pos, 1e-4) {
		t.Errorf("model point moved on screen from %v to %v", pos, got)
	}
	if c.Scale() != 0.5 {
		t.Errorf("scale = %v, want 0.5", c.Scale())
	}
}

func TestZoomRejectsNonPositiveFactor(t *testing.T) {
	c := New(400, 400)
	c.Zoom(0, math.Vec3{})
	c.Zoom(-1, math.Vec3{})
	if c.Scale() != 1 {
		t.Errorf("scale = %v, want 1", c.Scale())
	}
}

func TestSetSizeClamps(t *testing.T) {
	c := New(0, -5)
	m := c.ProjectionMatrix()
	if gomath.IsNaN(float64(m[0])) || gomath.IsInf(float64(m[0]), 0) {
		t.Errorf("degenerate size produced %v", m[0])
	}
}
