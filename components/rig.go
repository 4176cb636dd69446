package components

import (
	"image/color"

	"github.com/openplinth/plinth/render3d"
	"github.com/yohamta/donburi"
)

// RigData is the derived animation state: the pose and styling fed to the
// renderer every frame. Pure function of ScrollData and the view catalog,
// memoized on the (index, progress) pair that produced it.
type RigData struct {
	Rotation render3d.Vec3
	Zoom     float64
	Material render3d.Material

	// Blended background gradient stops.
	BgTop    color.RGBA
	BgBottom color.RGBA

	// Effective flags after inspector overrides.
	Wireframe bool
	Orbit     bool
	Effects   bool

	// Memoization of the inputs that produced the values above.
	CachedIndex    int
	CachedProgress float64
	Valid          bool
}

var Rig = donburi.NewComponentType[RigData]()

// OrbitData carries the mouse-orbit offsets stacked on top of the
// interpolated rotation while a view allows orbiting.
type OrbitData struct {
	Dragging     bool
	LastX, LastY int
	Yaw, Pitch   float64

	// LastViewIndex detects view changes so stale offsets unwind.
	LastViewIndex int
}

var Orbit = donburi.NewComponentType[OrbitData]()
