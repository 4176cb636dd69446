package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/assets"
	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

var (
	postScratch *ebiten.Image
	postTick    float64
)

// DrawEffects runs the vignette/grain shader over the frame on views that
// have effects enabled. It runs after the product but before the overlay,
// so text and nav dots stay crisp.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	if !rig.Effects || assets.PostShader == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if postScratch == nil || postScratch.Bounds().Dx() != w || postScratch.Bounds().Dy() != h {
		postScratch = ebiten.NewImage(w, h)
	}
	postScratch.Clear()
	postScratch.DrawImage(screen, nil)

	postTick++
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = postScratch
	op.Uniforms = map[string]any{
		"Vignette": cfg.Effects.VignetteStrength,
		"Grain":    cfg.Effects.GrainStrength,
		"Time":     float32(postTick / 60.0),
	}
	screen.DrawRectShader(w, h, assets.PostShader, op)
}
