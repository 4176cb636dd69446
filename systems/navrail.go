package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
	"github.com/openplinth/plinth/tags"
)

// UpdateNavRail hit-tests the pointer against the view dots and snaps the
// scroll to a view when one is clicked.
func UpdateNavRail(e *ecs.ECS) {
	navEntry, ok := components.NavRail.First(e.World)
	if !ok {
		return
	}
	nav := components.NavRail.Get(navEntry)
	input := getOrCreateInput(e)

	// Move the probe to the cursor and re-register it in the space.
	nav.Pointer.X = float64(input.CursorX)
	nav.Pointer.Y = float64(input.CursorY)
	nav.Pointer.Update()

	nav.Hovered = -1
	if collision := nav.Pointer.Check(0, 0, tags.ResolvNavDot); collision != nil {
		for _, obj := range collision.Objects {
			if idx, ok := obj.Data.(int); ok {
				nav.Hovered = idx
				break
			}
		}
	}

	if nav.Hovered >= 0 && input.MouseJustPressed {
		SnapToView(e, nav.Hovered)
	}
}

// DotCenter returns the screen position of dot i, with the rail centered
// vertically along the right edge.
func DotCenter(i, count int) (x, y float64) {
	x = float64(cfg.C.Width) - cfg.Nav.MarginRight
	railH := float64(count-1) * cfg.Nav.DotSpacing
	top := (float64(cfg.C.Height) - railH) / 2
	return x, top + float64(i)*cfg.Nav.DotSpacing
}

// DrawNavRail renders the view dots: accent for the current view, bright
// on hover, dim otherwise.
func DrawNavRail(e *ecs.ECS, screen *ebiten.Image) {
	navEntry, ok := components.NavRail.First(e.World)
	if !ok {
		return
	}
	nav := components.NavRail.Get(navEntry)

	current := 0
	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		current = components.Scroll.Get(scrollEntry).ViewIndex
	}

	count := cfg.ViewCount()
	for i := 0; i < count; i++ {
		x, y := DotCenter(i, count)
		col := cfg.Nav.IdleColor
		r := float32(cfg.Nav.DotRadius)
		switch {
		case i == current:
			col = cfg.Nav.ActiveColor
			r += 1.5
		case i == nav.Hovered:
			col = cfg.Nav.HoverColor
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, col, true)
	}
}
