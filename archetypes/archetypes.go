package archetypes

import (
	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
	"github.com/openplinth/plinth/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Scroll = newArchetype(
		components.Scroll,
		components.Snap,
	)
	Rig = newArchetype(
		components.Rig,
		components.Orbit,
	)
	Product = newArchetype(
		tags.Product,
		components.Model,
	)
	Background = newArchetype(
		components.Background,
	)
	NavRail = newArchetype(
		components.NavRail,
	)
	Inspector = newArchetype(
		components.Inspector,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
