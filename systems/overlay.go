package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
	"github.com/openplinth/plinth/fonts"
)

// DrawOverlay renders the current view's title and description, cross-
// fading into the next view's copy as the transition completes, plus the
// overall scroll progress bar.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	scrollEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(scrollEntry)

	view := cfg.View(scroll.ViewIndex)
	p := scroll.Progress

	// Outgoing copy: solid at rest, gone once the transition is underway.
	out := 1 - clamp01(p/cfg.Overlay.FadeBand)
	drawViewText(screen, view, out)

	// Incoming copy: the next view's text fades in near the boundary.
	next := scroll.ViewIndex + 1
	if next < cfg.ViewCount() {
		in := clamp01((p - (1 - cfg.Overlay.FadeBand)) / cfg.Overlay.FadeBand)
		drawViewText(screen, cfg.View(next), in)
	}

	drawScrollHint(screen, scroll)
	drawProgressBar(screen, scroll)
}

// drawScrollHint shows the scroll cue on the first view, fading out as
// soon as the user starts moving.
func drawScrollHint(screen *ebiten.Image, scroll *components.ScrollData) {
	if scroll.ViewIndex != 0 {
		return
	}
	alpha := 1 - clamp01(scroll.Offset/(scroll.ViewportHeight*0.2))
	if alpha <= 0 {
		return
	}

	const hint = "scroll to explore"
	face := fonts.Caption.Get()
	bounds := text.BoundString(face, hint)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() - 28

	text.Draw(screen, hint, face, x, y, scaleAlpha(cfg.Overlay.TextColor, alpha*0.7))
}

func drawViewText(screen *ebiten.Image, view cfg.ViewConfig, alpha float64) {
	if alpha <= 0 {
		return
	}
	slide := int((1 - alpha) * 12)
	x := int(cfg.Overlay.MarginX)
	titleY := int(cfg.Overlay.TitleY) + slide
	descY := int(cfg.Overlay.DescriptionY) + slide

	shadow := scaleAlpha(cfg.Overlay.ShadowColor, alpha)
	body := scaleAlpha(cfg.Overlay.TextColor, alpha)

	text.Draw(screen, view.Title, fonts.Title.Get(), x+2, titleY+2, shadow)
	text.Draw(screen, view.Title, fonts.Title.Get(), x, titleY, body)
	text.Draw(screen, view.Description, fonts.Body.Get(), x+1, descY+1, shadow)
	text.Draw(screen, view.Description, fonts.Body.Get(), x, descY, body)
}

func drawProgressBar(screen *ebiten.Image, scroll *components.ScrollData) {
	maxScroll := cfg.MaxScroll(scroll.ViewportHeight)
	if maxScroll <= 0 {
		return
	}
	h := float64(screen.Bounds().Dy())
	x := float32(float64(screen.Bounds().Dx()) - cfg.Overlay.BarMargin)
	w := float32(cfg.Overlay.BarWidth)

	vector.DrawFilledRect(screen, x, 0, w, float32(h), cfg.Overlay.BarTrackColor, false)

	frac := clamp01(scroll.Offset / maxScroll)
	vector.DrawFilledRect(screen, x, 0, w, float32(h*frac), cfg.Overlay.BarColor, false)
}

// scaleAlpha scales a premultiplied RGBA color by alpha.
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
