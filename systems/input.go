package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateScroll in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	input.WheelY = wheelY

	input.CursorX, input.CursorY = ebiten.CursorPosition()

	input.PrevMousePressed = input.MousePressed
	input.MousePressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.MouseJustPressed = input.MousePressed && !input.PrevMousePressed
	input.MouseJustReleased = !input.MousePressed && input.PrevMousePressed
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
