package components

import (
	cfg "github.com/openplinth/plinth/config"
	"github.com/yohamta/donburi"
)

// InspectorData stores the state of the inspector side panel: visibility
// and the tri-state overrides applied on top of per-view flags.
type InspectorData struct {
	Visible bool

	Wireframe cfg.OverrideMode
	Orbit     cfg.OverrideMode
	Effects   cfg.OverrideMode

	ShowHUD bool
}

var Inspector = donburi.NewComponentType[InspectorData]()
