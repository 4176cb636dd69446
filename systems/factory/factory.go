package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/archetypes"
	"github.com/openplinth/plinth/assets"
	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
	"github.com/openplinth/plinth/render3d"
	"github.com/openplinth/plinth/systems"
	"github.com/openplinth/plinth/tags"
)

// CreateScroll spawns the singleton scroll state, resting on view 0.
func CreateScroll(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Scroll.Spawn(e)
	components.Scroll.SetValue(entry, components.ScrollData{
		ViewportHeight: float64(cfg.C.Height),
	})
	return entry
}

// CreateRig spawns the derived animation state, seeded from view 0 so the
// first frame is correct before any scroll event arrives.
func CreateRig(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Rig.Spawn(e)
	view := cfg.View(0)
	components.Rig.SetValue(entry, components.RigData{
		Rotation:  view.Rotation,
		Zoom:      view.Zoom,
		Material:  view.Material,
		BgTop:     view.Background[0],
		BgBottom:  view.Background[1],
		Wireframe: view.Wireframe,
		Orbit:     view.Orbit,
		Effects:   view.Effects,
	})
	return entry
}

// CreateProduct loads the showcase model and its renderer.
func CreateProduct(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Product.Spawn(e)
	components.Model.SetValue(entry, components.ModelData{
		Mesh:     assets.LoadModelOrFallback(assets.DefaultModel, cfg.Camera.ModelSize),
		Camera:   render3d.NewCamera(cfg.Camera.Distance),
		Renderer: render3d.NewRenderer(),
	})
	return entry
}

// CreateBackground spawns the gradient cache entity.
func CreateBackground(e *ecs.ECS) *donburi.Entry {
	return archetypes.Background.Spawn(e)
}

// CreateNavRail builds the view-dot hit objects and the pointer probe in
// a fresh resolv space.
func CreateNavRail(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.NavRail.Spawn(e)

	space := resolv.NewSpace(cfg.C.Width, cfg.C.Height, 4, 4)

	count := cfg.ViewCount()
	dots := make([]*resolv.Object, 0, count)
	hit := (cfg.Nav.DotRadius + cfg.Nav.HitPadding) * 2
	for i := 0; i < count; i++ {
		x, y := systems.DotCenter(i, count)
		obj := resolv.NewObject(x-hit/2, y-hit/2, hit, hit, tags.ResolvNavDot)
		obj.Data = i
		space.Add(obj)
		dots = append(dots, obj)
	}

	pointer := resolv.NewObject(0, 0, 1, 1, tags.ResolvPointer)
	space.Add(pointer)

	components.NavRail.SetValue(entry, components.NavRailData{
		Space:   space,
		Dots:    dots,
		Pointer: pointer,
		Hovered: -1,
	})
	return entry
}

// CreateInspector spawns the inspector panel state with all overrides on
// Auto and the HUD following the debug config.
func CreateInspector(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Inspector.Spawn(e)
	components.Inspector.SetValue(entry, components.InspectorData{
		ShowHUD: cfg.Debug.ShowHUD,
	})
	return entry
}
