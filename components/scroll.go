package components

import "github.com/yohamta/donburi"

// ScrollData is the session-scoped scroll state. UpdateScroll is the only
// writer; everything downstream derives from it.
type ScrollData struct {
	Offset         float64 // Current virtual scroll offset in pixels
	Target         float64 // Offset the smoothing eases toward
	ViewportHeight float64 // Live layout height, one view per viewport

	// Derived each tick from Offset and ViewportHeight.
	ViewIndex int     // Always a valid index into the view catalog
	Progress  float64 // Intra-view fraction in [0,1)

	// Mouse drag-to-scroll state, used on views without orbit.
	Dragging  bool
	DragLastY int
}

var Scroll = donburi.NewComponentType[ScrollData]()
