package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	"github.com/openplinth/plinth/render3d"
)

// DrawProduct renders the model with the rig's interpolated pose plus any
// orbit offsets the user has dragged in.
func DrawProduct(e *ecs.ECS, screen *ebiten.Image) {
	modelEntry, ok := components.Model.First(e.World)
	if !ok {
		return
	}
	model := components.Model.Get(modelEntry)

	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	orbit := components.Orbit.Get(rigEntry)

	rotation := rig.Rotation.Add(render3d.V3(orbit.Pitch, orbit.Yaw, 0))
	model.Camera.Zoom = rig.Zoom

	model.Renderer.Draw(screen, model.Mesh, rotation, model.Camera, rig.Material, rig.Wireframe)
}
