package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical showcase action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionToggleInspector
	ActionToggleHUD
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionScrollUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyK},
			},
			ActionScrollDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyJ},
			},
			ActionPageUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp, ebiten.KeyLeft},
			},
			ActionPageDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeyRight, ebiten.KeySpace},
			},
			ActionHome: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionEnd: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			ActionToggleInspector: {
				Keys: []ebiten.Key{ebiten.KeyTab},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
