package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NavRailData holds the clickable view dots and the resolv space used for
// pointer hit testing. Dot index i maps to view i; Pointer is a 1x1 probe
// object moved to the cursor each tick.
type NavRailData struct {
	Space   *resolv.Space
	Dots    []*resolv.Object
	Pointer *resolv.Object
	Hovered int // -1 when no dot is under the cursor
}

var NavRail = donburi.NewComponentType[NavRailData]()
