package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

// UpdateOrbit lets the user drag the model around on views that allow it.
// The offsets ride on top of the interpolated rotation and unwind to zero
// when orbiting stops being available or the view changes.
func UpdateOrbit(e *ecs.ECS) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	orbit := components.Orbit.Get(rigEntry)
	input := getOrCreateInput(e)

	scrollEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(scrollEntry)

	viewChanged := scroll.ViewIndex != orbit.LastViewIndex
	orbit.LastViewIndex = scroll.ViewIndex

	if !rig.Orbit || viewChanged {
		orbit.Dragging = false
	}

	if rig.Orbit && !viewChanged {
		if input.MouseJustPressed && !pointerOnNavRail(e) {
			orbit.Dragging = true
			orbit.LastX, orbit.LastY = input.CursorX, input.CursorY
		}
		if !input.MousePressed {
			orbit.Dragging = false
		}
		if orbit.Dragging {
			dx := float64(input.CursorX - orbit.LastX)
			dy := float64(input.CursorY - orbit.LastY)
			orbit.LastX, orbit.LastY = input.CursorX, input.CursorY

			orbit.Yaw += dx * cfg.Orbit.Sensitivity
			orbit.Pitch += dy * cfg.Orbit.Sensitivity
			orbit.Pitch = math.Max(-cfg.Orbit.MaxPitch, math.Min(cfg.Orbit.MaxPitch, orbit.Pitch))
			return
		}
	}

	// Not dragging: ease the offsets home.
	if !rig.Orbit || viewChanged {
		orbit.Yaw -= orbit.Yaw * cfg.Orbit.ReturnSpeed
		orbit.Pitch -= orbit.Pitch * cfg.Orbit.ReturnSpeed
		if math.Abs(orbit.Yaw) < 1e-4 {
			orbit.Yaw = 0
		}
		if math.Abs(orbit.Pitch) < 1e-4 {
			orbit.Pitch = 0
		}
	}
}

// pointerOnNavRail reports whether the cursor currently hovers a nav dot,
// so a click there doesn't start an orbit drag.
func pointerOnNavRail(e *ecs.ECS) bool {
	navEntry, ok := components.NavRail.First(e.World)
	if !ok {
		return false
	}
	return components.NavRail.Get(navEntry).Hovered >= 0
}
