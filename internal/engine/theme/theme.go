// Package theme defines the viewer colour schemes.
package theme

import (
	"fmt"
	"math"
	"strings"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// gamma approximates the sRGB transfer curve.
const gamma = 2.2

// Linear converts an sRGB-ish colour to the linear space the shaders work in.
// Alpha is left untouched.
func (c Color) Linear() Color {
	return Color{
		R: float32(math.Pow(float64(c.R), gamma)),
		G: float32(math.Pow(float64(c.G), gamma)),
		B: float32(math.Pow(float64(c.B), gamma)),
		A: c.A,
	}
}

// Array returns the colour as a uniform-ready array.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Theme selects one of the built-in colour schemes.
type Theme int

const (
	Dark Theme = iota
	Light
	Solarized
)

var names = [...]string{
	Dark:      "dark",
	Light:     "light",
	Solarized: "solarized",
}

func (t Theme) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return names[t]
}

// Parse converts a config value into a Theme (case-insensitive).
func Parse(name string) (Theme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range names {
		if s == n {
			return Theme(i), nil
		}
	}
	return Dark, fmt.Errorf("unknown theme %q (want dark, light or solarized)", name)
}

// Palette holds the colours used for one frame.
//
// Background holds the gradient corners in the order bottom-left,
// bottom-right, top-left, top-right. Key and Fill are the two light colours
// and Base is the ambient term.
type Palette struct {
	Background [4]Color
	Key        Color
	Fill       Color
	Base       Color
}

func gradient(bottom, top Color) [4]Color {
	return [4]Color{bottom, bottom, top, top}
}

// Raw returns the theme colours as authored, before gamma conversion.
func (t Theme) Raw() Palette {
	switch t {
	case Light:
		return Palette{
			Background: gradient(Color{0.63, 0.83, 1.0, 1}, Color{0.94, 0.95, 0.96, 1}),
			Key:        Color{0.41, 0.47, 0.52, 1},
			Fill:       Color{0.6, 0.65, 0.69, 1},
			Base:       Color{0, 0, 0, 1},
		}
	case Solarized:
		return Palette{
			Background: gradient(Color{0.0, 0.08, 0.10, 1}, Color{0.0, 0.20, 0.25, 1}),
			Key:        Color{0.99, 0.96, 0.89, 1},
			Fill:       Color{0.93, 0.91, 0.84, 1},
			Base:       Color{0.41, 0.48, 0.51, 1},
		}
	default:
		return Palette{
			Background: gradient(Color{0.05, 0.06, 0.10, 1}, Color{0.17, 0.22, 0.29, 1}),
			Key:        Color{0.99, 0.96, 0.89, 1},
			Fill:       Color{0.93, 0.91, 0.84, 1},
			Base:       Color{0, 0, 0, 1},
		}
	}
}

// Palette returns the theme colours converted for rendering.
func (t Theme) Palette() Palette {
	p := t.Raw()
	for i := range p.Background {
		p.Background[i] = p.Background[i].Linear()
	}
	p.Key = p.Key.Linear()
	p.Fill = p.Fill.Linear()
	p.Base = p.Base.Linear()
	return p
}

// Next cycles to the following theme.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(names))
}
