package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/assets"
	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
	"github.com/openplinth/plinth/systems"
	"github.com/openplinth/plinth/systems/factory"
	"github.com/openplinth/plinth/ui"
)

// ShowcaseScene runs the scroll-driven product showcase: one entity set,
// one system chain, plus the inspector panel layered on top.
type ShowcaseScene struct {
	ecs          *ecs.ECS
	inspectorUI  *ui.InspectorUI
	savedState   *systems.SavedState
	lastSavedIdx int
	quit         bool
	once         sync.Once
}

// NewShowcaseScene creates the showcase scene. savedState may be nil.
func NewShowcaseScene(saved *systems.SavedState) *ShowcaseScene {
	return &ShowcaseScene{savedState: saved, lastSavedIdx: -1}
}

func (ss *ShowcaseScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	ss.handleToggles()

	if inspector := ss.inspectorData(); inspector != nil && inspector.Visible {
		ss.inspectorUI.Update()
	}

	ss.saveOnViewChange()
}

func (ss *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if inspector := ss.inspectorData(); inspector != nil && inspector.Visible {
		ss.inspectorUI.Draw(screen)
	}
}

// QuitRequested reports whether the user asked to close the app this frame.
func (ss *ShowcaseScene) QuitRequested() bool {
	return ss.quit
}

func (ss *ShowcaseScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: shaders unavailable, effects disabled: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateScroll)
	ecs.AddSystem(systems.UpdateRig)
	ecs.AddSystem(systems.UpdateOrbit)
	ecs.AddSystem(systems.UpdateNavRail)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawProduct)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawNavRail)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ss.ecs = ecs

	factory.CreateScroll(ecs)
	factory.CreateRig(ecs)
	factory.CreateProduct(ecs)
	factory.CreateBackground(ecs)
	factory.CreateNavRail(ecs)
	factory.CreateInspector(ecs)

	if ss.savedState != nil {
		systems.ApplySavedState(ecs, ss.savedState)
	}
	if cfg.Debug.StartView >= 0 && cfg.Debug.StartView < cfg.ViewCount() {
		systems.SnapToView(ecs, cfg.Debug.StartView)
	}

	inspector := ss.inspectorData()
	ss.inspectorUI = ui.NewInspectorUI(inspector,
		func() { systems.SnapToView(ss.ecs, 0) },
		func() { systems.SaveCurrentState(ss.ecs) },
	)

	if scrollEntry, ok := components.Scroll.First(ecs.World); ok {
		ss.lastSavedIdx = components.Scroll.Get(scrollEntry).ViewIndex
	}
}

func (ss *ShowcaseScene) handleToggles() {
	inputEntry, ok := components.Input.First(ss.ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	inspector := ss.inspectorData()
	if inspector == nil {
		return
	}

	if systems.GetAction(input, cfg.ActionToggleInspector).JustPressed {
		inspector.Visible = !inspector.Visible
		if inspector.Visible {
			ss.inspectorUI.UpdateUI()
		}
	}
	if systems.GetAction(input, cfg.ActionToggleHUD).JustPressed {
		inspector.ShowHUD = !inspector.ShowHUD
		ss.inspectorUI.UpdateUI()
		systems.SaveCurrentState(ss.ecs)
	}
	if systems.GetAction(input, cfg.ActionQuit).JustPressed {
		if inspector.Visible {
			inspector.Visible = false
		} else {
			ss.quit = true
		}
	}
}

// saveOnViewChange persists the session whenever the tracked view settles
// on a new index.
func (ss *ShowcaseScene) saveOnViewChange() {
	scrollEntry, ok := components.Scroll.First(ss.ecs.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(scrollEntry)

	if scroll.ViewIndex != ss.lastSavedIdx {
		ss.lastSavedIdx = scroll.ViewIndex
		systems.SaveCurrentState(ss.ecs)
	}
}

func (ss *ShowcaseScene) inspectorData() *components.InspectorData {
	entry, ok := components.Inspector.First(ss.ecs.World)
	if !ok {
		return nil
	}
	return components.Inspector.Get(entry)
}
