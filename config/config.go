package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ScrollConfig contains scroll tracking and smoothing configuration
type ScrollConfig struct {
	WheelStep      float64 // Pixels of virtual scroll per wheel notch
	ArrowStep      float64 // Pixels per arrow-key tick
	Smoothing      float64 // How fast the offset eases toward the target (0.0-1.0)
	SnapDuration   float32 // Seconds for a page/nav snap tween
	SettleEpsilon  float64 // Offset distance below which easing snaps to target
	DragMultiplier float64 // Virtual pixels per screen pixel when dragging the rail
}

// CameraConfig contains model framing configuration
type CameraConfig struct {
	Distance  float64 // Eye distance at zoom 1.0
	ModelSize float64 // Normalized largest model dimension in world units
}

// OrbitConfig contains mouse-orbit behavior for views that allow it
type OrbitConfig struct {
	Sensitivity float64 // Radians per screen pixel of drag
	MaxPitch    float64 // Clamp for vertical orbit offset
	ReturnSpeed float64 // How fast offsets decay when orbit is unavailable
}

// OverlayConfig contains title/description overlay configuration
type OverlayConfig struct {
	TitleY        float64
	DescriptionY  float64
	MarginX       float64
	FadeBand      float64 // Progress band near each boundary used for fade in/out
	TextColor     color.RGBA
	ShadowColor   color.RGBA
	BarWidth      float64 // Scroll progress bar width
	BarMargin     float64
	BarColor      color.RGBA
	BarTrackColor color.RGBA
}

// NavConfig contains nav rail (view dots) configuration
type NavConfig struct {
	DotRadius   float64
	DotSpacing  float64
	MarginRight float64
	HitPadding  float64 // Extra pixels around each dot for pointer hit testing
	IdleColor   color.RGBA
	ActiveColor color.RGBA
	HoverColor  color.RGBA
}

// EffectsConfig contains the post-processing pass configuration
type EffectsConfig struct {
	VignetteStrength float32
	GrainStrength    float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD   bool // Start with the stats HUD visible
	StartView int  // Jump to this view index at startup (overrides saved state)
}

// Default is the ECS layer used for all showcase entities and renderers.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Scroll ScrollConfig
var Camera CameraConfig
var Orbit OrbitConfig
var Overlay OverlayConfig
var Nav NavConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite   = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	SoftShadow = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	DimGray    = color.RGBA{R: 130, G: 130, B: 140, A: 200}
	Accent     = color.RGBA{R: 255, G: 180, B: 70, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		Title:  "plinth",
	}

	Scroll = ScrollConfig{
		WheelStep:      120.0,
		ArrowStep:      18.0,
		Smoothing:      0.18,
		SnapDuration:   0.8,
		SettleEpsilon:  0.5,
		DragMultiplier: 1.0,
	}

	Camera = CameraConfig{
		Distance:  4.2,
		ModelSize: 2.0,
	}

	Orbit = OrbitConfig{
		Sensitivity: 0.008,
		MaxPitch:    1.2,
		ReturnSpeed: 0.12,
	}

	Overlay = OverlayConfig{
		TitleY:        110,
		DescriptionY:  150,
		MarginX:       48,
		FadeBand:      0.25,
		TextColor:     OffWhite,
		ShadowColor:   SoftShadow,
		BarWidth:      3,
		BarMargin:     14,
		BarColor:      Accent,
		BarTrackColor: color.RGBA{R: 255, G: 255, B: 255, A: 40},
	}

	Nav = NavConfig{
		DotRadius:   5,
		DotSpacing:  26,
		MarginRight: 34,
		HitPadding:  6,
		IdleColor:   DimGray,
		ActiveColor: Accent,
		HoverColor:  White,
	}

	Effects = EffectsConfig{
		VignetteStrength: 0.45,
		GrainStrength:    0.035,
	}

	Debug = DebugConfig{
		ShowHUD:   false,
		StartView: -1,
	}
}
