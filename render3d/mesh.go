package render3d

import "math"

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// Face is a triangle, three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// Mesh is an indexed triangle mesh with precomputed bounds.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Faces    []Face

	BoundsMin Vec3
	BoundsMax Vec3
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

func (m *Mesh) AddTriangle(v0, v1, v2 Vertex) {
	base := len(m.Vertices)
	m.Vertices = append(m.Vertices, v0, v1, v2)
	m.Faces = append(m.Faces, Face{V: [3]int{base, base + 1, base + 2}})
}

func (m *Mesh) AddQuad(v0, v1, v2, v3 Vertex) {
	m.AddTriangle(v0, v1, v2)
	m.AddTriangle(v0, v2, v3)
}

func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// CalculateBounds recomputes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = Vec3{}, Vec3{}
		return
	}
	m.BoundsMin = m.Vertices[0].Pos
	m.BoundsMax = m.Vertices[0].Pos
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Pos)
		m.BoundsMax = m.BoundsMax.Max(v.Pos)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// CalculateSmoothNormals accumulates area-weighted face normals per vertex
// and normalizes, giving smooth shading across shared vertices.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = Vec3{}
	}
	for _, f := range m.Faces {
		v0 := m.Vertices[f.V[0]].Pos
		v1 := m.Vertices[f.V[1]].Pos
		v2 := m.Vertices[f.V[2]].Pos
		n := v1.Sub(v0).Cross(v2.Sub(v0)) // area-weighted, normalize later
		for _, vi := range f.V {
			m.Vertices[vi].Normal = m.Vertices[vi].Normal.Add(n)
		}
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// NormalizeScale translates the mesh to the origin and scales it so its
// largest dimension equals size. Keeps showcase framing independent of
// authoring units.
func (m *Mesh) NormalizeScale(size float64) {
	m.CalculateBounds()
	c := m.Center()
	ext := m.Size()
	largest := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	s := 1.0
	if largest > 1e-10 {
		s = size / largest
	}
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Sub(c).Scale(s)
	}
	m.CalculateBounds()
}

// Transform applies mat to every vertex position and normal.
func (m *Mesh) Transform(mat Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = mat.TransformPoint(m.Vertices[i].Pos)
		m.Vertices[i].Normal = mat.TransformDir(m.Vertices[i].Normal).Normalize()
	}
	m.CalculateBounds()
}

// --- Primitive generators (procedural fallback models) ---

// MakeBox builds an axis-aligned box with flat face normals.
func MakeBox(w, h, d float64) *Mesh {
	m := NewMesh("box")
	hw, hh, hd := w/2, h/2, d/2

	v := [8]Vec3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}
	faces := [][4]int{
		{0, 1, 2, 3}, // front
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	normals := []Vec3{
		{0, 0, -1}, {0, 0, 1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	for fi, f := range faces {
		n := normals[fi]
		m.AddQuad(
			Vertex{Pos: v[f[0]], Normal: n},
			Vertex{Pos: v[f[1]], Normal: n},
			Vertex{Pos: v[f[2]], Normal: n},
			Vertex{Pos: v[f[3]], Normal: n},
		)
	}
	m.CalculateBounds()
	return m
}

// MakeLathe revolves a 2D profile (radius, height pairs) around the Y axis.
// Used as the procedural stand-in when the embedded model fails to load.
func MakeLathe(profile []Vec3, segments int) *Mesh {
	m := NewMesh("lathe")
	if segments < 6 {
		segments = 6
	}
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * math.Pi
		a1 := float64(i+1) / float64(segments) * 2 * math.Pi
		c0, s0 := math.Cos(a0), math.Sin(a0)
		c1, s1 := math.Cos(a1), math.Sin(a1)

		for j := 0; j < len(profile)-1; j++ {
			p, q := profile[j], profile[j+1]
			// Ring points at both profile rows, both segment angles.
			p0 := V3(p.X*c0, p.Y, p.X*s0)
			p1 := V3(p.X*c1, p.Y, p.X*s1)
			q0 := V3(q.X*c0, q.Y, q.X*s0)
			q1 := V3(q.X*c1, q.Y, q.X*s1)

			if p.X < 1e-10 && q.X < 1e-10 {
				continue
			}
			if p.X < 1e-10 {
				m.AddTriangle(Vertex{Pos: p0}, Vertex{Pos: q1}, Vertex{Pos: q0})
				continue
			}
			if q.X < 1e-10 {
				m.AddTriangle(Vertex{Pos: p0}, Vertex{Pos: p1}, Vertex{Pos: q0})
				continue
			}
			m.AddQuad(Vertex{Pos: p0}, Vertex{Pos: p1}, Vertex{Pos: q1}, Vertex{Pos: q0})
		}
	}
	m.CalculateSmoothNormals()
	m.CalculateBounds()
	return m
}
