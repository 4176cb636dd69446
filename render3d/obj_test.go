package render3d

import (
	"math"
	"strings"
	"testing"
)

const triangleOBJ = `
# a single triangle with explicit normals
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func TestLoadOBJTriangle(t *testing.T) {
	mesh, err := LoadOBJ(strings.NewReader(triangleOBJ), "tri")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := mesh.TriangleCount(); got != 1 {
		t.Errorf("Expected 1 triangle, got %d", got)
	}
	if len(mesh.Vertices) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(mesh.Vertices))
	}
	for i, v := range mesh.Vertices {
		if !vecNear(v.Normal, V3(0, 0, 1)) {
			t.Errorf("Vertex %d: expected normal (0,0,1), got %v", i, v.Normal)
		}
	}
}

func TestLoadOBJQuadTriangulation(t *testing.T) {
	quad := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := LoadOBJ(strings.NewReader(quad), "quad")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := mesh.TriangleCount(); got != 2 {
		t.Errorf("Expected quad to fan into 2 triangles, got %d", got)
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := LoadOBJ(strings.NewReader(src), "neg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := mesh.TriangleCount(); got != 1 {
		t.Errorf("Expected 1 triangle, got %d", got)
	}
	if !vecNear(mesh.Vertices[1].Pos, V3(1, 0, 0)) {
		t.Errorf("Expected second vertex at (1,0,0), got %v", mesh.Vertices[1].Pos)
	}
}

func TestLoadOBJObjectName(t *testing.T) {
	src := `
o lamp
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJ(strings.NewReader(src), "fallback")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.Name != "lamp" {
		t.Errorf("Expected object name %q, got %q", "lamp", mesh.Name)
	}
}

func TestLoadOBJMissingNormalsComputed(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJ(strings.NewReader(src), "flat")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, v := range mesh.Vertices {
		if math.Abs(v.Normal.Len()-1) > 1e-9 {
			t.Errorf("Vertex %d: expected unit normal, got %v", i, v.Normal)
		}
	}
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"No faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"Face index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"Bad vertex component", "v 0 zero 0\n"},
		{"Face too short", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"Bad face index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n"},
		{"Empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOBJ(strings.NewReader(tt.src), "bad"); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}
