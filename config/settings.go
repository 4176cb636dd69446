package config

// OverrideMode is a tri-state inspector override for a per-view flag.
type OverrideMode int

const (
	OverrideAuto OverrideMode = iota // follow the view's own flag
	OverrideOn
	OverrideOff
)

// Label returns the inspector button text for a mode.
func (m OverrideMode) Label() string {
	switch m {
	case OverrideOn:
		return "On"
	case OverrideOff:
		return "Off"
	default:
		return "Auto"
	}
}

// Next cycles Auto -> On -> Off -> Auto.
func (m OverrideMode) Next() OverrideMode {
	return (m + 1) % 3
}

// Apply resolves the effective flag value from the view's own flag.
func (m OverrideMode) Apply(viewFlag bool) bool {
	switch m {
	case OverrideOn:
		return true
	case OverrideOff:
		return false
	default:
		return viewFlag
	}
}
