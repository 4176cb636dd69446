package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

// SavedState represents the session data stored on disk
type SavedState struct {
	LastView  int  `json:"lastView"`
	Wireframe int  `json:"wireframe"` // OverrideMode values
	Orbit     int  `json:"orbit"`
	Effects   int  `json:"effects"`
	ShowHUD   bool `json:"showHUD"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "plinth",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadState loads the saved session from disk. A missing or unreadable
// save yields (nil, nil): the showcase starts from defaults.
func LoadState() (*SavedState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("session")
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var state SavedState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved session: %v", err)
		return nil, err
	}

	return &state, nil
}

// SaveState saves the session to disk
func SaveState(s *SavedState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("session", data); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return err
	}
	return nil
}

// SaveCurrentState captures the live scroll and inspector state.
func SaveCurrentState(e *ecs.ECS) {
	state := &SavedState{}

	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		state.LastView = components.Scroll.Get(scrollEntry).ViewIndex
	}
	if inspEntry, ok := components.Inspector.First(e.World); ok {
		insp := components.Inspector.Get(inspEntry)
		state.Wireframe = int(insp.Wireframe)
		state.Orbit = int(insp.Orbit)
		state.Effects = int(insp.Effects)
		state.ShowHUD = insp.ShowHUD
	}

	_ = SaveState(state)
}

// ApplySavedState restores a saved session: inspector overrides come back
// as-is and the scroll jumps straight to the saved view's boundary.
func ApplySavedState(e *ecs.ECS, saved *SavedState) {
	if saved == nil {
		return
	}

	if inspEntry, ok := components.Inspector.First(e.World); ok {
		insp := components.Inspector.Get(inspEntry)
		insp.Wireframe = cfg.OverrideMode(saved.Wireframe)
		insp.Orbit = cfg.OverrideMode(saved.Orbit)
		insp.Effects = cfg.OverrideMode(saved.Effects)
		insp.ShowHUD = saved.ShowHUD
	}

	view := saved.LastView
	if view < 0 || view >= cfg.ViewCount() {
		return
	}
	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		scroll := components.Scroll.Get(scrollEntry)
		scroll.Offset = float64(view) * scroll.ViewportHeight
		scroll.Target = scroll.Offset
		scroll.ViewIndex = view
	}
}
