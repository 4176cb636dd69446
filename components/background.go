package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BackgroundData caches the rendered gradient strip so the per-pixel fill
// only reruns when the blended stops actually change.
type BackgroundData struct {
	Strip     *ebiten.Image // 1xH gradient, scaled across the screen
	CachedTop color.RGBA
	CachedBot color.RGBA
	CachedH   int
}

var Background = donburi.NewComponentType[BackgroundData]()
