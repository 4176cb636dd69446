package render3d

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon &&
		math.Abs(a.Y-b.Y) < epsilon &&
		math.Abs(a.Z-b.Z) < epsilon
}

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); !vecNear(got, V3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); !vecNear(got, V3(3, 3, 3)) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); !vecNear(got, V3(2, 4, 6)) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-32) > epsilon {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if got := x.Cross(y); !vecNear(got, V3(0, 0, 1)) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
	if got := y.Cross(x); !vecNear(got, V3(0, 0, -1)) {
		t.Errorf("Expected y cross x = -z, got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if math.Abs(v.Len()-1) > epsilon {
		t.Errorf("Expected unit length, got %v", v.Len())
	}
	if !vecNear(v, V3(0.6, 0.8, 0)) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}

	// Zero vectors must not produce NaNs.
	z := V3(0, 0, 0).Normalize()
	if math.IsNaN(z.X) || math.IsNaN(z.Y) || math.IsNaN(z.Z) {
		t.Errorf("Expected no NaN for zero vector, got %v", z)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, -10, 4)
	if got := a.Lerp(b, 0); !vecNear(got, a) {
		t.Errorf("Expected a at t=0, got %v", got)
	}
	if got := a.Lerp(b, 1); !vecNear(got, b) {
		t.Errorf("Expected b at t=1, got %v", got)
	}
	if got := a.Lerp(b, 0.5); !vecNear(got, V3(5, -5, 2)) {
		t.Errorf("Expected midpoint, got %v", got)
	}
}

func TestMat4Identity(t *testing.T) {
	p := V3(1.5, -2, 7)
	if got := Mat4Identity().TransformPoint(p); !vecNear(got, p) {
		t.Errorf("Expected identity transform, got %v", got)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Mat4Translate(1, 2, 3)
	if got := m.TransformPoint(V3(0, 0, 0)); !vecNear(got, V3(1, 2, 3)) {
		t.Errorf("Expected translated origin, got %v", got)
	}
	// Directions ignore translation.
	if got := m.TransformDir(V3(1, 0, 0)); !vecNear(got, V3(1, 0, 0)) {
		t.Errorf("Expected direction unchanged, got %v", got)
	}
}

func TestMat4RotateY(t *testing.T) {
	m := Mat4RotateY(math.Pi / 2)
	if got := m.TransformPoint(V3(1, 0, 0)); !vecNear(got, V3(0, 0, -1)) {
		t.Errorf("Expected (0, 0, -1), got %v", got)
	}
}

func TestMat4RotationComposition(t *testing.T) {
	// Mat4Rotation applies X, then Y, then Z.
	r := V3(0.3, -0.7, 1.1)
	composed := Mat4RotateZ(r.Z).Mul(Mat4RotateY(r.Y)).Mul(Mat4RotateX(r.X))
	combined := Mat4Rotation(r)

	p := V3(1, 2, 3)
	if got, want := combined.TransformPoint(p), composed.TransformPoint(p); !vecNear(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMat4MulAssociativeWithPoint(t *testing.T) {
	a := Mat4Translate(1, 0, 0)
	b := Mat4Scale(2, 2, 2)

	p := V3(1, 1, 1)
	// (a*b) applied to p equals a applied to (b applied to p).
	got := a.Mul(b).TransformPoint(p)
	want := a.TransformPoint(b.TransformPoint(p))
	if !vecNear(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := V3(0, 0, 5)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	// The eye maps to the view-space origin.
	if got := m.TransformPoint(eye); !vecNear(got, V3(0, 0, 0)) {
		t.Errorf("Expected eye at origin, got %v", got)
	}
	// A point in front of the camera lands on the negative Z axis.
	got := m.TransformPoint(V3(0, 0, 0))
	if math.Abs(got.X) > epsilon || math.Abs(got.Y) > epsilon || got.Z >= 0 {
		t.Errorf("Expected center in front of camera, got %v", got)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(math.Pi/3, 16.0/9.0, 0.1, 100)

	// A centered point stays centered after the divide.
	v := m.MulVec4(Vec4{0, 0, -10, 1})
	if math.Abs(v.X) > epsilon || math.Abs(v.Y) > epsilon {
		t.Errorf("Expected centered projection, got %v", v)
	}
	if v.W <= 0 {
		t.Errorf("Expected positive W for point in front, got %v", v.W)
	}
}

func TestColor3Clamp(t *testing.T) {
	c := Color3{0.9, 0.9, 0.9}.Add(Color3{0.5, 0.5, 0.5})
	if c.R > 1 || c.G > 1 || c.B > 1 {
		t.Errorf("Expected Add to clamp at 1, got %v", c)
	}
}
