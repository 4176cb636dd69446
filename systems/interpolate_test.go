package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/openplinth/plinth/archetypes"
	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"Identity at zero", 3, 7, 0, 3},
		{"Identity at one", 3, 7, 1, 7},
		{"Midpoint", 0, 10, 0.5, 5},
		{"Negative range", -4, 4, 0.25, -2},
		{"Equal endpoints", 2.5, 2.5, 0.7, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEaseProgress(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"One", 1, 1},
		{"Halfway is fixed point", 0.5, 0.5},
		{"First half cubic", 0.25, 4 * 0.25 * 0.25 * 0.25},
		{"Second half cubic", 0.75, 1 - math.Pow(-2*0.75+2, 3)/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EaseProgress(tt.in)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHalfwayBlend(t *testing.T) {
	// Halfway between a view at rest and one rotated a quarter turn and
	// zoomed to 2x, the eased blend lands exactly on the midpoint.
	tEased := EaseProgress(0.5)
	if got := Lerp(0, math.Pi/2, tEased); math.Abs(got-math.Pi/4) > 1e-6 {
		t.Errorf("Expected rotation pi/4, got %v", got)
	}
	if got := Lerp(1, 2, tEased); math.Abs(got-1.5) > 1e-6 {
		t.Errorf("Expected zoom 1.5, got %v", got)
	}
}

func TestEaseProgressMonotonic(t *testing.T) {
	prev := EaseProgress(0)
	for p := 0.01; p <= 1.0; p += 0.01 {
		cur := EaseProgress(p)
		if cur < prev {
			t.Fatalf("Ease not monotonic at %v: %v < %v", p, cur, prev)
		}
		prev = cur
	}
}

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	archetypes.Scroll.Spawn(e)
	archetypes.Rig.Spawn(e)
	archetypes.Inspector.Spawn(e)
	return e
}

func testScroll(e *ecs.ECS) *components.ScrollData {
	entry, _ := components.Scroll.First(e.World)
	return components.Scroll.Get(entry)
}

func testRig(e *ecs.ECS) *components.RigData {
	entry, _ := components.Rig.First(e.World)
	return components.Rig.Get(entry)
}

func TestUpdateRigAtRest(t *testing.T) {
	e := newTestECS()
	scroll := testScroll(e)
	scroll.ViewportHeight = 600

	UpdateRig(e)

	rig := testRig(e)
	view := cfg.View(0)
	if rig.Rotation != view.Rotation {
		t.Errorf("Expected rotation %v, got %v", view.Rotation, rig.Rotation)
	}
	if rig.Zoom != view.Zoom {
		t.Errorf("Expected zoom %v, got %v", view.Zoom, rig.Zoom)
	}
	if rig.BgTop != view.Background[0] || rig.BgBottom != view.Background[1] {
		t.Errorf("Expected background %v/%v, got %v/%v",
			view.Background[0], view.Background[1], rig.BgTop, rig.BgBottom)
	}
}

func TestUpdateRigMidBlend(t *testing.T) {
	e := newTestECS()
	scroll := testScroll(e)
	scroll.ViewportHeight = 600
	scroll.ViewIndex = 0
	scroll.Progress = 0.5

	UpdateRig(e)

	// At progress 0.5 the eased factor is exactly 0.5.
	rig := testRig(e)
	a, b := cfg.View(0), cfg.View(1)
	wantZoom := Lerp(a.Zoom, b.Zoom, 0.5)
	if math.Abs(rig.Zoom-wantZoom) > 1e-6 {
		t.Errorf("Expected zoom %v, got %v", wantZoom, rig.Zoom)
	}
	wantY := Lerp(a.Rotation.Y, b.Rotation.Y, 0.5)
	if math.Abs(rig.Rotation.Y-wantY) > 1e-6 {
		t.Errorf("Expected rotation.Y %v, got %v", wantY, rig.Rotation.Y)
	}
}

func TestUpdateRigLastViewDegenerates(t *testing.T) {
	e := newTestECS()
	scroll := testScroll(e)
	scroll.ViewportHeight = 600
	scroll.ViewIndex = cfg.ViewCount() - 1

	last := cfg.View(cfg.ViewCount() - 1)
	for _, progress := range []float64{0, 0.3, 0.99} {
		scroll.Progress = progress
		UpdateRig(e)

		rig := testRig(e)
		if rig.Rotation != last.Rotation || math.Abs(rig.Zoom-last.Zoom) > 1e-9 {
			t.Errorf("Expected last view pose at progress %v, got rotation %v zoom %v",
				progress, rig.Rotation, rig.Zoom)
		}
	}
}

func TestUpdateRigMemoized(t *testing.T) {
	e := newTestECS()
	scroll := testScroll(e)
	scroll.ViewportHeight = 600
	scroll.ViewIndex = 1
	scroll.Progress = 0.4

	UpdateRig(e)

	// Poison the output; with unchanged inputs the memo must skip the blend.
	rig := testRig(e)
	rig.Zoom = -99
	UpdateRig(e)
	if rig.Zoom != -99 {
		t.Error("Expected memoized update to leave the rig untouched")
	}

	// A progress change recomputes.
	scroll.Progress = 0.41
	UpdateRig(e)
	if rig.Zoom == -99 {
		t.Error("Expected changed progress to recompute the rig")
	}
}

func TestUpdateRigInspectorOverride(t *testing.T) {
	e := newTestECS()
	scroll := testScroll(e)
	scroll.ViewportHeight = 600

	UpdateRig(e)
	rig := testRig(e)
	if rig.Wireframe != cfg.View(0).Wireframe {
		t.Fatalf("Expected view flag %v, got %v", cfg.View(0).Wireframe, rig.Wireframe)
	}

	inspEntry, _ := components.Inspector.First(e.World)
	insp := components.Inspector.Get(inspEntry)
	insp.Wireframe = cfg.OverrideOn

	UpdateRig(e)
	if !rig.Wireframe {
		t.Error("Expected forced-on override to enable wireframe")
	}

	insp.Wireframe = cfg.OverrideOff
	UpdateRig(e)
	if rig.Wireframe {
		t.Error("Expected forced-off override to disable wireframe")
	}
}

func TestLerpRGBARounds(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{255, 255, 255, 255}

	mid := lerpRGBA(a, b, 0.5)
	if mid.R != 128 {
		t.Errorf("Expected midpoint to round to 128, got %d", mid.R)
	}
	if got := lerpRGBA(a, b, 0); got != a {
		t.Errorf("Expected identity at t=0, got %v", got)
	}
	if got := lerpRGBA(a, b, 1); got != b {
		t.Errorf("Expected identity at t=1, got %v", got)
	}
}
