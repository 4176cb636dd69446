package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
)

// DrawBackground fills the screen with the blended two-stop vertical
// gradient. The 1px-wide strip is regenerated only when the blended stops
// change; drawing is a single scaled blit.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	bgEntry, ok := components.Background.First(e.World)
	if !ok {
		return
	}
	bg := components.Background.Get(bgEntry)

	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		screen.Fill(color.Black)
		return
	}
	rig := components.Rig.Get(rigEntry)

	h := screen.Bounds().Dy()
	if bg.Strip == nil || bg.CachedH != h || bg.CachedTop != rig.BgTop || bg.CachedBot != rig.BgBottom {
		rebuildStrip(bg, rig.BgTop, rig.BgBottom, h)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screen.Bounds().Dx()), 1)
	screen.DrawImage(bg.Strip, op)
}

func rebuildStrip(bg *components.BackgroundData, top, bot color.RGBA, h int) {
	if bg.Strip == nil || bg.CachedH != h {
		bg.Strip = ebiten.NewImage(1, h)
	}
	pix := make([]byte, 4*h)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		pix[y*4+0] = uint8(Lerp(float64(top.R), float64(bot.R), t) + 0.5)
		pix[y*4+1] = uint8(Lerp(float64(top.G), float64(bot.G), t) + 0.5)
		pix[y*4+2] = uint8(Lerp(float64(top.B), float64(bot.B), t) + 0.5)
		pix[y*4+3] = 255
	}
	bg.Strip.WritePixels(pix)
	bg.CachedTop = top
	bg.CachedBot = bot
	bg.CachedH = h
}
