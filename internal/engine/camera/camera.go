// Package camera provides the virtual-trackball camera used by the viewer.
//
// The trackball maps the cursor onto a sphere blended with a hyperbola
// (Holroyd's mapping), so dragging near the window edge keeps rotating
// smoothly instead of snapping.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/stlview/pkg/math"
	"github.com/Faultbox/stlview/pkg/stl"
)

// Projection selects how depth affects the on-screen size of the model.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

// ParseProjection converts a config value into a Projection.
func ParseProjection(s string) (Projection, error) {
	switch s {
	case "orthographic", "ortho":
		return Orthographic, nil
	case "perspective":
		return Perspective, nil
	}
	return Orthographic, fmt.Errorf("unknown projection %q", s)
}

func (p Projection) String() string {
	if p == Perspective {
		return "perspective"
	}
	return "orthographic"
}

// coefficient is how much clip-space w grows with depth.
func (p Projection) coefficient() float32 {
	if p == Perspective {
		return 0.5
	}
	return 0
}

// Button identifies the mouse button driving a drag.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonOther
)

type mouseMode int

const (
	mouseUnknown mouseMode = iota // no position seen yet
	mouseFree
	mouseRotate
	mousePan
)

const (
	// trackballRadius is the sphere radius in normalized device units.
	trackballRadius = 0.6

	// zoomDivisor converts wheel units into a relative scale change.
	zoomDivisor = 200.0

	// depthScale squashes Z so the whole model fits the clip range.
	depthScale = 0.1
)

// Camera is a virtual trackball around a model.
type Camera struct {
	width, height float32

	orientation math.Quat
	scale       float32
	center      math.Vec3
	projection  Projection

	mode      mouseMode
	mouse     math.Vec3 // last cursor position, normalized to -1..1 (Z unused)
	panOrigin math.Vec3 // model-space point under the cursor when panning began
}

// New creates a camera for a viewport of the given size.
func New(width, height int) *Camera {
	c := &Camera{
		orientation: math.QuatIdentity(),
		scale:       1,
		projection:  Orthographic,
	}
	c.SetSize(width, height)
	return c
}

// SetSize updates the viewport dimensions. Non-positive sizes are clamped to 1.
func (c *Camera) SetSize(width, height int) {
	c.width = float32(max(width, 1))
	c.height = float32(max(height, 1))
}

// Scale returns the current model scale factor.
func (c *Camera) Scale() float32 { return c.scale }

// Center returns the model-space point at the middle of the view.
func (c *Camera) Center() math.Vec3 { return c.center }

// Orientation returns the current model rotation.
func (c *Camera) Orientation() math.Quat { return c.orientation }

// Projection returns the active projection mode.
func (c *Camera) Projection() Projection { return c.projection }

// SetProjection changes the projection mode.
func (c *Camera) SetProjection(p Projection) { c.projection = p }

// ToggleProjection switches between orthographic and perspective.
func (c *Camera) ToggleProjection() {
	if c.projection == Perspective {
		c.projection = Orthographic
	} else {
		c.projection = Perspective
	}
}

// FitBounds centres the model, scales it so its largest extent spans one
// unit, and turns it so the STL "up" axis (Z) points up the screen.
// Empty bounds leave the camera unchanged.
func (c *Camera) FitBounds(b stl.ModelBounds) {
	if b.Empty() {
		return
	}

	c.scale = 1
	if extent := b.MaxExtent(); extent > 0 {
		c.scale = float32(1 / extent)
	}
	ctr := b.Center()
	c.center = math.Vec3{X: ctr.X, Y: ctr.Y, Z: ctr.Z}
	c.orientation = math.QuatFromAxisAngle(math.Vec3{X: 1}, -gomath.Pi/2)
}

// ModelMatrix scales, rotates and recentres model coordinates.
func (c *Camera) ModelMatrix() math.Mat4 {
	return math.Scale(c.scale, c.scale, c.scale).
		Mul(c.orientation.ToMat4()).
		Mul(math.Translate(c.center.Negate()))
}

// ViewMatrix reduces depth so the model stays inside the clip range.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Scale(1, 1, depthScale)
}

// ProjectionMatrix compensates for the window aspect ratio and applies
// the perspective coefficient.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	m := math.Identity()
	aspect := c.width / c.height
	if aspect > 1 {
		m[0] = 1 / aspect
	} else {
		m[5] = aspect
	}
	m[10] = c.scale / 2
	m[11] = c.projection.coefficient()
	return m
}

// Matrix returns projection * view * model.
func (c *Camera) Matrix() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix()).Mul(c.ModelMatrix())
}

// unproject maps a normalized cursor position back into model space.
func (c *Camera) unproject(pos math.Vec3) math.Vec3 {
	inv, ok := c.Matrix().Inverse()
	if !ok {
		return c.center
	}
	return inv.TransformPoint(math.Vec3{X: pos.X, Y: pos.Y})
}

// normalize converts window pixels to -1..1 with Y up.
func (c *Camera) normalize(x, y float32) math.Vec3 {
	return math.Vec3{
		X: 2 * (x/c.width - 0.5),
		Y: -2 * (y/c.height - 0.5),
	}
}

// MousePressed starts a rotate (left) or pan (right) drag. Presses before
// the first motion event or during another drag are ignored.
func (c *Camera) MousePressed(b Button) {
	if c.mode != mouseFree {
		return
	}
	switch b {
	case ButtonLeft:
		c.mode = mouseRotate
	case ButtonRight:
		c.mode = mousePan
		c.panOrigin = c.unproject(c.mouse)
	}
}

// MouseReleased ends the drag started by the same button.
func (c *Camera) MouseReleased(b Button) {
	switch {
	case c.mode == mouseRotate && b == ButtonLeft,
		c.mode == mousePan && b == ButtonRight:
		c.mode = mouseFree
	}
}

// MouseMoved handles a cursor move to window pixel coordinates (x, y).
func (c *Camera) MouseMoved(x, y float32) {
	pos := c.normalize(x, y)

	switch c.mode {
	case mousePan:
		c.center = c.center.Add(c.panOrigin.Sub(c.unproject(pos)))
	case mouseRotate:
		q := math.QuatBetween(trackball(c.mouse), trackball(pos))
		c.orientation = q.Mul(c.orientation).Normalize()
	case mouseUnknown:
		c.mode = mouseFree
	}

	c.mouse = pos
}

// Scroll zooms about the cursor by wheel delta. Ignored while dragging.
func (c *Camera) Scroll(delta float32) {
	if c.mode != mouseFree {
		return
	}
	c.Zoom(1+delta/zoomDivisor, c.mouse)
}

// Zoom multiplies the scale by factor, keeping the model point under the
// normalized position pos fixed on screen.
func (c *Camera) Zoom(factor float32, pos math.Vec3) {
	if factor <= 0 {
		return
	}
	start := c.unproject(pos)
	c.scale *= factor
	end := c.unproject(pos)

	// Shift only within the screen plane.
	d := c.Matrix().TransformDirection(start.Sub(end))
	d.Z = 0

	inv, ok := c.Matrix().Inverse()
	if !ok {
		return
	}
	c.center = c.center.Add(inv.TransformDirection(d))
}

// trackball projects a normalized cursor position onto the unit sphere.
func trackball(pos math.Vec3) math.Vec3 {
	r2 := pos.X*pos.X + pos.Y*pos.Y
	mag := float32(gomath.Sqrt(float64(r2)))

	var z float32
	if mag <= trackballRadius/gomath.Sqrt2 {
		z = float32(gomath.Sqrt(float64(trackballRadius*trackballRadius - r2)))
	} else {
		z = trackballRadius * trackballRadius / (2 * mag)
	}
	return math.Vec3{X: pos.X, Y: pos.Y, Z: z}.Normalize()
}
