package assets

import (
	"embed"
	"fmt"
	"log"

	"github.com/openplinth/plinth/render3d"
)

//go:embed all:models
var modelFS embed.FS

// DefaultModel is the embedded product model shown by the showcase.
const DefaultModel = "beacon"

// LoadModel parses the named embedded OBJ, recenters it and scales its
// largest dimension to size.
func LoadModel(name string, size float64) (*render3d.Mesh, error) {
	f, err := modelFS.Open("models/" + name + ".obj")
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", name, err)
	}
	defer f.Close()

	mesh, err := render3d.LoadOBJ(f, name)
	if err != nil {
		return nil, err
	}
	mesh.NormalizeScale(size)
	return mesh, nil
}

// LoadModelOrFallback returns the embedded model, or a procedural lathe
// stand-in if the asset is broken. The showcase never starts empty.
func LoadModelOrFallback(name string, size float64) *render3d.Mesh {
	mesh, err := LoadModel(name, size)
	if err != nil {
		log.Printf("Warning: could not load model %s, using fallback: %v", name, err)
		mesh = render3d.MakeLathe([]render3d.Vec3{
			{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.1},
			{X: 0.12, Y: 0.2}, {X: 0.12, Y: 1.0}, {X: 0.4, Y: 1.3},
			{X: 0.4, Y: 1.5}, {X: 0, Y: 1.5},
		}, 20)
		mesh.NormalizeScale(size)
	}
	return mesh
}
