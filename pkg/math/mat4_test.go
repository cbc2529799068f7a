package math

import (
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(Vec3{10, 20, 30}), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"scale then translate", Translate(Vec3{1, 0, 0}).Mul(Scale(2, 3, 4)), Vec3{1, 1, 1}, Vec3{3, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformPointPerspectiveDivide(t *testing.T) {
	m := Identity()
	m[15] = 2
	got := m.TransformPoint(Vec3{2, 4, 6})
	if got != (Vec3{1, 2, 3}) {
		t.Errorf("expected divide by w: got %v", got)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	d := Vec3{1, 0, 0}
	if got := m.TransformDirection(d); got != d {
		t.Errorf("TransformDirection: got %v, want %v", got, d)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(Vec3{1, -2, 3}).Mul(Scale(2, 4, 0.5))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}

	p := Vec3{0.5, 7, -3}
	back := inv.TransformPoint(m.TransformPoint(p))
	if abs(back.X-p.X) > 1e-5 || abs(back.Y-p.Y) > 1e-5 || abs(back.Z-p.Z) > 1e-5 {
		t.Errorf("inverse round trip: got %v, want %v", back, p)
	}
}

func TestInverseSingular(t *testing.T) {
	inv, ok := Scale(1, 0, 1).Inverse()
	if ok {
		t.Error("expected singular matrix to report false")
	}
	if inv != Identity() {
		t.Errorf("singular inverse should be identity, got %v", inv)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
