package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	"github.com/openplinth/plinth/fonts"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudWidth      = 190
)

// DrawHUD renders render stats and the tracker's current state in the
// top-left corner. Toggled with F3.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	inspEntry, ok := components.Inspector.First(e.World)
	if !ok || !components.Inspector.Get(inspEntry).ShowHUD {
		return
	}

	lines := []string{
		fmt.Sprintf("fps %.0f  tps %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		scroll := components.Scroll.Get(scrollEntry)
		lines = append(lines,
			fmt.Sprintf("offset %.1f -> %.1f", scroll.Offset, scroll.Target),
			fmt.Sprintf("view %d  progress %.3f", scroll.ViewIndex, scroll.Progress))
	}
	if modelEntry, ok := components.Model.First(e.World); ok {
		model := components.Model.Get(modelEntry)
		lines = append(lines, fmt.Sprintf("tris %d", model.Mesh.TriangleCount()))
	}
	if rigEntry, ok := components.Rig.First(e.World); ok {
		rig := components.Rig.Get(rigEntry)
		lines = append(lines,
			fmt.Sprintf("wire %v  orbit %v  fx %v", rig.Wireframe, rig.Orbit, rig.Effects))
	}

	boxH := float32(len(lines)*hudLineHeight + hudMargin)
	vector.DrawFilledRect(screen, hudMargin, hudMargin, hudWidth, boxH,
		color.RGBA{0, 0, 0, 160}, false)

	face := fonts.HUD.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin+6, hudMargin+hudLineHeight*(i+1), color.White)
	}
}
