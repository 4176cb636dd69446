package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

const tickDelta = 1.0 / 60.0 // Ebiten's default TPS

// TrackOffset converts a raw scroll offset into a view index and an
// intra-view progress fraction in [0,1). viewportHeight must be positive.
func TrackOffset(offset, viewportHeight float64) (viewIndex int, progress float64) {
	viewIndex = int(math.Floor(offset / viewportHeight))
	progress = math.Mod(offset, viewportHeight) / viewportHeight
	return viewIndex, progress
}

// UpdateScroll is the scroll tracker: it folds wheel, key and snap input
// into the virtual offset and derives (ViewIndex, Progress) from it. It is
// the only writer of ScrollData.
func UpdateScroll(e *ecs.ECS) {
	scrollEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(scrollEntry)
	snap := components.Snap.Get(scrollEntry)
	input := getOrCreateInput(e)

	scroll.ViewportHeight = float64(cfg.C.Height)
	maxScroll := cfg.MaxScroll(scroll.ViewportHeight)

	// Direct scrolling cancels any snap in flight.
	if input.WheelY != 0 || input.Current[cfg.ActionScrollUp] || input.Current[cfg.ActionScrollDown] {
		snap.Active = false
	}

	scroll.Target -= input.WheelY * cfg.Scroll.WheelStep
	if input.Current[cfg.ActionScrollUp] {
		scroll.Target -= cfg.Scroll.ArrowStep
	}
	if input.Current[cfg.ActionScrollDown] {
		scroll.Target += cfg.Scroll.ArrowStep
	}

	// Dragging the page scrolls it directly on views without orbit. Orbit
	// views give the drag gesture to UpdateOrbit instead.
	if input.MouseJustPressed && !orbitEnabled(e) && !pointerOnNavRail(e) {
		scroll.Dragging = true
		scroll.DragLastY = input.CursorY
	}
	if !input.MousePressed {
		scroll.Dragging = false
	}
	if scroll.Dragging {
		dy := float64(input.CursorY - scroll.DragLastY)
		scroll.DragLastY = input.CursorY
		if dy != 0 {
			scroll.Target -= dy * cfg.Scroll.DragMultiplier
			snap.Active = false
		}
	}

	// Page jumps tween to the neighboring boundary; Home/End to the ends.
	switch {
	case GetAction(input, cfg.ActionPageDown).JustPressed:
		startSnap(scroll, snap, boundaryBelow(scroll, maxScroll))
	case GetAction(input, cfg.ActionPageUp).JustPressed:
		startSnap(scroll, snap, boundaryAbove(scroll))
	case GetAction(input, cfg.ActionHome).JustPressed:
		startSnap(scroll, snap, 0)
	case GetAction(input, cfg.ActionEnd).JustPressed:
		startSnap(scroll, snap, maxScroll)
	}

	if snap.Active {
		v, done := snap.Tween.Update(tickDelta)
		scroll.Target = float64(v)
		if done {
			snap.Active = false
		}
	}

	if scroll.Target < 0 {
		scroll.Target = 0
	}
	if scroll.Target > maxScroll {
		scroll.Target = maxScroll
	}

	// Smooth the offset toward the target, settling exactly when close.
	scroll.Offset += (scroll.Target - scroll.Offset) * cfg.Scroll.Smoothing
	if math.Abs(scroll.Target-scroll.Offset) < cfg.Scroll.SettleEpsilon {
		scroll.Offset = scroll.Target
	}

	applyTracking(scroll, cfg.ViewCount())
}

// applyTracking derives the discrete view index and continuous progress.
// Progress updates unconditionally; the index only moves when the computed
// value differs and is a valid index, so overscroll never yields an
// out-of-range lookup.
func applyTracking(scroll *components.ScrollData, viewCount int) {
	if scroll.ViewportHeight <= 0 || viewCount == 0 {
		return
	}
	index, progress := TrackOffset(scroll.Offset, scroll.ViewportHeight)
	scroll.Progress = progress
	if index != scroll.ViewIndex && index >= 0 && index < viewCount {
		scroll.ViewIndex = index
	}
}

// SnapToView tweens the scroll target to the given view's boundary.
// Used by the nav rail and the inspector's reset button.
func SnapToView(e *ecs.ECS, viewIndex int) {
	scrollEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	scroll := components.Scroll.Get(scrollEntry)
	snap := components.Snap.Get(scrollEntry)

	if viewIndex < 0 || viewIndex >= cfg.ViewCount() {
		return
	}
	startSnap(scroll, snap, float64(viewIndex)*scroll.ViewportHeight)
}

func startSnap(scroll *components.ScrollData, snap *components.SnapData, to float64) {
	snap.Tween = gween.New(float32(scroll.Target), float32(to), cfg.Scroll.SnapDuration, ease.InOutCubic)
	snap.Active = true
}

// orbitEnabled reports whether the current view hands drags to the orbit
// system rather than to scrolling.
func orbitEnabled(e *ecs.ECS) bool {
	rigEntry, ok := components.Rig.First(e.World)
	if !ok {
		return false
	}
	return components.Rig.Get(rigEntry).Orbit
}

// boundaryBelow returns the next view boundary at or below the current
// target, clamped to the last view.
func boundaryBelow(scroll *components.ScrollData, maxScroll float64) float64 {
	next := (math.Floor(scroll.Target/scroll.ViewportHeight) + 1) * scroll.ViewportHeight
	return math.Min(next, maxScroll)
}

func boundaryAbove(scroll *components.ScrollData) float64 {
	cur := scroll.Target / scroll.ViewportHeight
	prev := math.Ceil(cur-1) * scroll.ViewportHeight
	return math.Max(prev, 0)
}
