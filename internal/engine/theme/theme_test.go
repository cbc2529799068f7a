package theme

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"dark", Dark, false},
		{"Light", Light, false},
		{" SOLARIZED ", Solarized, false},
		{"neon", Dark, true},
		{"", Dark, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, th := range []Theme{Dark, Light, Solarized} {
		got, err := Parse(th.String())
		if err != nil || got != th {
			t.Errorf("Parse(%q) = %v, %v", th.String(), got, err)
		}
	}
	if s := Theme(42).String(); s != "Theme(42)" {
		t.Errorf("unknown theme String() = %q", s)
	}
}

func TestLinear(t *testing.T) {
	c := Color{R: 0.5, G: 1, B: 0, A: 0.5}.Linear()

	want := float32(math.Pow(0.5, 2.2))
	if math.Abs(float64(c.R-want)) > 1e-6 {
		t.Errorf("R = %v, want %v", c.R, want)
	}
	if c.G != 1 || c.B != 0 {
		t.Errorf("endpoints should be preserved, got G=%v B=%v", c.G, c.B)
	}
	if c.A != 0.5 {
		t.Errorf("alpha should be untouched, got %v", c.A)
	}
}

func TestPaletteIsLinearised(t *testing.T) {
	for _, th := range []Theme{Dark, Light, Solarized} {
		raw, p := th.Raw(), th.Palette()
		if p.Key != raw.Key.Linear() {
			t.Errorf("%v: key colour not converted", th)
		}
		for i := range p.Background {
			if p.Background[i] != raw.Background[i].Linear() {
				t.Errorf("%v: background %d not converted", th, i)
			}
		}
		// Gradient runs bottom to top.
		if raw.Background[0] != raw.Background[1] || raw.Background[2] != raw.Background[3] {
			t.Errorf("%v: gradient corners should pair up", th)
		}
	}
}

func TestDarkPalette(t *testing.T) {
	raw := Dark.Raw()
	if raw.Background[0] != (Color{0.05, 0.06, 0.10, 1}) {
		t.Errorf("dark bottom = %v", raw.Background[0])
	}
	if raw.Base != (Color{0, 0, 0, 1}) {
		t.Errorf("dark base = %v", raw.Base)
	}
}

func TestNext(t *testing.T) {
	if Dark.Next() != Light || Light.Next() != Solarized || Solarized.Next() != Dark {
		t.Error("Next should cycle dark -> light -> solarized -> dark")
	}
}
