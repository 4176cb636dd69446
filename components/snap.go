package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SnapData drives an in-flight snap of the scroll target to a view
// boundary (page keys, nav rail clicks). While active it owns the target;
// wheel input cancels it.
type SnapData struct {
	Tween  *gween.Tween
	Active bool
}

var Snap = donburi.NewComponentType[SnapData]()
