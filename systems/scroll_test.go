package systems

import (
	"math"
	"testing"

	"github.com/openplinth/plinth/components"
	cfg "github.com/openplinth/plinth/config"
)

func TestTrackOffset(t *testing.T) {
	tests := []struct {
		name         string
		offset       float64
		height       float64
		wantIndex    int
		wantProgress float64
	}{
		{"Start", 0, 600, 0, 0},
		{"Exact boundary", 600, 600, 1, 0},
		{"Mid view", 900, 600, 1, 0.5},
		{"Second view late", 1800, 1000, 1, 0.8},
		{"Deep scroll", 2700, 600, 4, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, progress := TrackOffset(tt.offset, tt.height)
			if index != tt.wantIndex {
				t.Errorf("Expected index %d, got %d", tt.wantIndex, index)
			}
			if math.Abs(progress-tt.wantProgress) > 1e-9 {
				t.Errorf("Expected progress %v, got %v", tt.wantProgress, progress)
			}
		})
	}
}

func TestTrackOffsetProgressRange(t *testing.T) {
	// Progress must stay in [0,1) over a dense sweep of offsets.
	for offset := 0.0; offset < 5000; offset += 7.3 {
		_, progress := TrackOffset(offset, 600)
		if progress < 0 || progress >= 1 {
			t.Fatalf("Progress out of range at offset %v: %v", offset, progress)
		}
	}
}

func TestTrackOffsetMonotonicAcrossBoundary(t *testing.T) {
	// Crossing a boundary increments the index and resets progress.
	i1, p1 := TrackOffset(599.9, 600)
	i2, p2 := TrackOffset(600.1, 600)
	if i1 != 0 || i2 != 1 {
		t.Errorf("Expected indices 0 and 1, got %d and %d", i1, i2)
	}
	if p1 < 0.99 {
		t.Errorf("Expected progress near 1 before boundary, got %v", p1)
	}
	if p2 > 0.01 {
		t.Errorf("Expected progress near 0 after boundary, got %v", p2)
	}
}

func TestApplyTrackingClampsIndex(t *testing.T) {
	viewCount := cfg.ViewCount()
	scroll := &components.ScrollData{ViewportHeight: 600, ViewIndex: viewCount - 1}

	// Overscroll past the last view: progress updates, index stays valid.
	scroll.Offset = float64(viewCount) * 600.5
	applyTracking(scroll, viewCount)
	if scroll.ViewIndex != viewCount-1 {
		t.Errorf("Expected index to stay at %d, got %d", viewCount-1, scroll.ViewIndex)
	}

	// Negative offsets keep the index at 0.
	scroll.ViewIndex = 0
	scroll.Offset = -50
	applyTracking(scroll, viewCount)
	if scroll.ViewIndex != 0 {
		t.Errorf("Expected index to stay at 0, got %d", scroll.ViewIndex)
	}
}

func TestApplyTrackingUpdatesProgressWithoutIndexChange(t *testing.T) {
	scroll := &components.ScrollData{ViewportHeight: 600}

	scroll.Offset = 150
	applyTracking(scroll, cfg.ViewCount())
	if scroll.ViewIndex != 0 {
		t.Errorf("Expected index 0, got %d", scroll.ViewIndex)
	}
	if math.Abs(scroll.Progress-0.25) > 1e-9 {
		t.Errorf("Expected progress 0.25, got %v", scroll.Progress)
	}
}

func TestApplyTrackingZeroHeight(t *testing.T) {
	scroll := &components.ScrollData{ViewportHeight: 0, ViewIndex: 2, Progress: 0.5}
	applyTracking(scroll, cfg.ViewCount())
	if scroll.ViewIndex != 2 || scroll.Progress != 0.5 {
		t.Errorf("Expected no change with zero height, got index %d progress %v",
			scroll.ViewIndex, scroll.Progress)
	}
}

func TestBoundaryBelow(t *testing.T) {
	scroll := &components.ScrollData{ViewportHeight: 600}
	maxScroll := cfg.MaxScroll(600)

	scroll.Target = 250
	if got := boundaryBelow(scroll, maxScroll); got != 600 {
		t.Errorf("Expected 600, got %v", got)
	}

	scroll.Target = maxScroll
	if got := boundaryBelow(scroll, maxScroll); got != maxScroll {
		t.Errorf("Expected clamp at %v, got %v", maxScroll, got)
	}
}

func TestBoundaryAbove(t *testing.T) {
	scroll := &components.ScrollData{ViewportHeight: 600}

	scroll.Target = 850
	if got := boundaryAbove(scroll); got != 600 {
		t.Errorf("Expected 600, got %v", got)
	}

	// From an exact boundary, page up lands on the previous one.
	scroll.Target = 600
	if got := boundaryAbove(scroll); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}

	scroll.Target = 0
	if got := boundaryAbove(scroll); got != 0 {
		t.Errorf("Expected clamp at 0, got %v", got)
	}
}

func TestSnapTweenReachesTarget(t *testing.T) {
	scroll := &components.ScrollData{Target: 0, ViewportHeight: 600}
	snap := &components.SnapData{}

	startSnap(scroll, snap, 1200)
	if !snap.Active {
		t.Fatal("Expected snap to be active after start")
	}

	// Run the tween past its full duration.
	var v float32
	var done bool
	steps := int(cfg.Scroll.SnapDuration/float32(tickDelta)) + 2
	for i := 0; i < steps; i++ {
		v, done = snap.Tween.Update(float32(tickDelta))
		if done {
			break
		}
	}
	if !done {
		t.Fatal("Expected tween to finish within its duration")
	}
	if math.Abs(float64(v)-1200) > 1e-3 {
		t.Errorf("Expected tween to end at 1200, got %v", v)
	}
}
