package render3d

import (
	"math"
	"testing"
)

func TestMakeBoxBounds(t *testing.T) {
	m := MakeBox(2, 4, 6)
	if m.TriangleCount() != 12 {
		t.Errorf("Expected 12 triangles, got %d", m.TriangleCount())
	}
	if !vecNear(m.Size(), V3(2, 4, 6)) {
		t.Errorf("Expected size (2,4,6), got %v", m.Size())
	}
	if !vecNear(m.Center(), V3(0, 0, 0)) {
		t.Errorf("Expected centered box, got center %v", m.Center())
	}
}

func TestNormalizeScale(t *testing.T) {
	m := MakeBox(1, 2, 8)
	m.Transform(Mat4Translate(10, -5, 3))

	m.NormalizeScale(2)

	if !vecNear(m.Center(), V3(0, 0, 0)) {
		t.Errorf("Expected recentered mesh, got center %v", m.Center())
	}
	ext := m.Size()
	largest := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	if math.Abs(largest-2) > 1e-9 {
		t.Errorf("Expected largest dimension 2, got %v", largest)
	}
	// Proportions survive.
	if math.Abs(ext.X/ext.Y-0.5) > 1e-9 {
		t.Errorf("Expected aspect preserved, got size %v", ext)
	}
}

func TestCalculateSmoothNormals(t *testing.T) {
	m := NewMesh("flat")
	m.AddTriangle(
		Vertex{Pos: V3(0, 0, 0)},
		Vertex{Pos: V3(1, 0, 0)},
		Vertex{Pos: V3(0, 1, 0)},
	)
	m.CalculateSmoothNormals()

	for i, v := range m.Vertices {
		if !vecNear(v.Normal, V3(0, 0, 1)) {
			t.Errorf("Vertex %d: expected normal (0,0,1), got %v", i, v.Normal)
		}
	}
}

func TestMakeLathe(t *testing.T) {
	// A simple cone profile: apex on the axis, base ring, base center.
	profile := []Vec3{
		{0, 1, 0},
		{0.5, 0, 0},
		{0, 0, 0},
	}
	m := MakeLathe(profile, 12)

	if m.TriangleCount() == 0 {
		t.Fatal("Expected lathe to produce triangles")
	}
	// Revolution around Y keeps everything inside the profile radius.
	for i, v := range m.Vertices {
		r := math.Hypot(v.Pos.X, v.Pos.Z)
		if r > 0.5+1e-9 {
			t.Errorf("Vertex %d outside profile radius: %v", i, v.Pos)
		}
		if v.Pos.Y < -1e-9 || v.Pos.Y > 1+1e-9 {
			t.Errorf("Vertex %d outside profile height: %v", i, v.Pos)
		}
	}
	// Normals come out unit length.
	for i, v := range m.Vertices {
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Errorf("Vertex %d: expected unit normal, got length %v", i, v.Normal.Len())
		}
	}
}

func TestMaterialLerp(t *testing.T) {
	a := Material{Kind: MaterialStandard, Color: Color3{1, 0, 0}, Roughness: 0.2, Metalness: 0}
	b := Material{Kind: MaterialMetal, Color: Color3{0, 0, 1}, Roughness: 0.8, Metalness: 1}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Expected a at t=0, got %v", got)
	}
	end := a.Lerp(b, 1)
	if end.Kind != b.Kind || math.Abs(end.Roughness-b.Roughness) > 1e-9 ||
		math.Abs(end.Metalness-b.Metalness) > 1e-9 {
		t.Errorf("Expected b at t=1, got %v", end)
	}

	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.Roughness-0.5) > 1e-9 {
		t.Errorf("Expected roughness 0.5, got %v", mid.Roughness)
	}
	// Kind switches to the target in the second half of the blend.
	if early := a.Lerp(b, 0.4); early.Kind != MaterialStandard {
		t.Errorf("Expected source kind before halfway, got %v", early.Kind)
	}
	if late := a.Lerp(b, 0.6); late.Kind != MaterialMetal {
		t.Errorf("Expected target kind after halfway, got %v", late.Kind)
	}
}
