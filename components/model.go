package components

import (
	"github.com/openplinth/plinth/render3d"
	"github.com/yohamta/donburi"
)

// ModelData holds the loaded product mesh and the camera/renderer that
// frame it. One model entity per showcase.
type ModelData struct {
	Mesh     *render3d.Mesh
	Camera   *render3d.Camera
	Renderer *render3d.Renderer
}

var Model = donburi.NewComponentType[ModelData]()
