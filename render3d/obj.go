package render3d

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadOBJ parses a Wavefront OBJ stream into a Mesh. Supported directives:
// v, vn, f (with fan triangulation for polygons and negative indices), o.
// Texture coordinates and material libraries are skipped. Faces referencing
// out-of-range vertices are an error, not a crash.
func LoadOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	var positions []Vec3
	var normals []Vec3
	hasNormals := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj %s line %d: %w", name, lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj %s line %d: face needs at least 3 vertices", name, lineNo)
			}
			verts := make([]Vertex, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				v, usedNormal, err := resolveFaceVertex(spec, positions, normals)
				if err != nil {
					return nil, fmt.Errorf("obj %s line %d: %w", name, lineNo, err)
				}
				hasNormals = hasNormals || usedNormal
				verts = append(verts, v)
			}
			// Fan triangulation for quads and n-gons.
			for i := 1; i < len(verts)-1; i++ {
				mesh.AddTriangle(verts[0], verts[i], verts[i+1])
			}
		case "o", "g":
			if len(fields) > 1 && mesh.Name == name {
				mesh.Name = fields[1]
			}
		default:
			// vt, s, mtllib, usemtl: ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj %s: %w", name, err)
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("obj %s: no faces", name)
	}

	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseVec3(fields []string) (Vec3, error) {
	if len(fields) < 3 {
		return Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		out[i] = f
	}
	return Vec3{out[0], out[1], out[2]}, nil
}

// resolveFaceVertex decodes a "v", "v/vt", "v//vn" or "v/vt/vn" face corner.
func resolveFaceVertex(spec string, positions, normals []Vec3) (Vertex, bool, error) {
	parts := strings.Split(spec, "/")

	pi, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return Vertex{}, false, err
	}
	v := Vertex{Pos: positions[pi]}

	if len(parts) == 3 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return Vertex{}, false, err
		}
		v.Normal = normals[ni]
		return v, true, nil
	}
	return v, false, nil
}

// resolveIndex converts a 1-based (or negative, relative-to-end) OBJ index
// into a 0-based slice index.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, n)
	}
	return i, nil
}
