package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/stlview/internal/engine/camera"
	"github.com/Faultbox/stlview/internal/engine/input"
	"github.com/Faultbox/stlview/internal/engine/theme"
	"github.com/Faultbox/stlview/pkg/stl"
)

// command is a request from the controls that needs the window or renderer.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdResize
	cmdScreenshot
	cmdOpen
	cmdRetitle
)

// controls maps input events onto the camera and theme.
type controls struct {
	cam        *camera.Camera
	theme      theme.Theme
	bounds     stl.ModelBounds
	showBounds bool
}

func newControls(cam *camera.Camera, th theme.Theme) *controls {
	return &controls{cam: cam, theme: th, bounds: stl.NewModelBounds()}
}

// fit remembers the model bounds and frames the camera on them.
func (c *controls) fit(b stl.ModelBounds) {
	c.bounds = b
	c.cam.FitBounds(b)
}

func cameraButton(b input.Button) camera.Button {
	switch b {
	case input.ButtonLeft:
		return camera.ButtonLeft
	case input.ButtonRight:
		return camera.ButtonRight
	}
	return camera.ButtonOther
}

// handle applies e and reports what else the app has to do.
func (c *controls) handle(e input.Event) command {
	switch e.Type {
	case input.EventQuit:
		return cmdQuit

	case input.EventWindowResize:
		c.cam.SetSize(e.Width, e.Height)
		return cmdResize

	case input.EventMouseMove:
		c.cam.MouseMoved(float32(e.MouseX), float32(e.MouseY))

	case input.EventMouseDown:
		c.cam.MousePressed(cameraButton(e.Button))

	case input.EventMouseUp:
		c.cam.MouseReleased(cameraButton(e.Button))

	case input.EventMouseWheel:
		c.cam.Scroll(e.Wheel)

	case input.EventDropFile:
		return cmdOpen

	case input.EventKeyDown:
		switch e.Key {
		case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
			return cmdQuit
		case sdl.SCANCODE_R:
			c.cam.FitBounds(c.bounds)
		case sdl.SCANCODE_P:
			c.cam.ToggleProjection()
			return cmdRetitle
		case sdl.SCANCODE_T:
			c.theme = c.theme.Next()
			return cmdRetitle
		case sdl.SCANCODE_B:
			c.showBounds = !c.showBounds
		case sdl.SCANCODE_F12:
			return cmdScreenshot
		}
	}
	return cmdNone
}
