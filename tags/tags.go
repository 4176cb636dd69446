package tags

import "github.com/yohamta/donburi"

var (
	Product = donburi.NewTag().SetName("Product")
)

// Resolv tags for nav rail hit testing
const (
	ResolvNavDot  = "navdot"
	ResolvPointer = "pointer"
)
