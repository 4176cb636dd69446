package config

import (
	"image/color"
	"math"

	"github.com/openplinth/plinth/render3d"
)

// ViewConfig is one stop of the scroll sequence: static copy, backdrop and
// model styling. The catalog is immutable after init.
type ViewConfig struct {
	Title       string
	Description string

	// Background gradient, top and bottom stop.
	Background [2]color.RGBA

	// Model pose at this view's boundary.
	Rotation render3d.Vec3 // Euler radians
	Zoom     float64

	Material render3d.Material

	// Optional behavior flags.
	Wireframe bool
	Orbit     bool
	Effects   bool
}

var views []ViewConfig

// ViewCount returns the number of views in the catalog.
func ViewCount() int { return len(views) }

// View returns the descriptor at index i. Callers are expected to pass a
// valid index; the scroll tracker enforces that invariant.
func View(i int) ViewConfig { return views[i] }

// MaxScroll returns the largest meaningful scroll offset for a given
// viewport height: the last view's boundary. Derived from the catalog
// length, never hardcoded.
func MaxScroll(viewportHeight float64) float64 {
	if len(views) == 0 {
		return 0
	}
	return float64(len(views)-1) * viewportHeight
}

func init() {
	views = []ViewConfig{
		{
			Title:       "Beacon One",
			Description: "A desk lamp that remembers where you left the light.",
			Background: [2]color.RGBA{
				{R: 16, G: 20, B: 38, A: 255},
				{R: 42, G: 35, B: 68, A: 255},
			},
			Rotation: render3d.V3(0.12, 0.4, 0),
			Zoom:     1.0,
			Material: render3d.Material{
				Kind:      render3d.MaterialStandard,
				Color:     render3d.Color3{R: 0.82, G: 0.84, B: 0.88},
				Roughness: 0.45,
				Metalness: 0.1,
			},
		},
		{
			Title:       "Machined, not molded",
			Description: "One billet of aluminum, anodized after a week of polish.",
			Background: [2]color.RGBA{
				{R: 30, G: 18, B: 22, A: 255},
				{R: 74, G: 32, B: 30, A: 255},
			},
			Rotation: render3d.V3(0.3, math.Pi * 0.75, 0),
			Zoom:     1.6,
			Material: render3d.Material{
				Kind:      render3d.MaterialMetal,
				Color:     render3d.Color3{R: 0.9, G: 0.7, B: 0.45},
				Roughness: 0.18,
				Metalness: 0.95,
			},
			Effects: true,
		},
		{
			Title:       "Every edge accounted for",
			Description: "480 triangles. No seams, no fasteners on show.",
			Background: [2]color.RGBA{
				{R: 8, G: 10, B: 14, A: 255},
				{R: 20, G: 30, B: 40, A: 255},
			},
			Rotation: render3d.V3(-0.2, math.Pi * 1.3, 0.1),
			Zoom:     2.1,
			Material: render3d.Material{
				Kind:      render3d.MaterialStandard,
				Color:     render3d.Color3{R: 0.35, G: 0.85, B: 0.7},
				Roughness: 0.6,
				Metalness: 0,
			},
			Wireframe: true,
		},
		{
			Title:       "Soft to the touch",
			Description: "The shade is wrapped in recycled wool felt.",
			Background: [2]color.RGBA{
				{R: 34, G: 38, B: 30, A: 255},
				{R: 62, G: 72, B: 48, A: 255},
			},
			Rotation: render3d.V3(0.45, math.Pi * 1.9, 0),
			Zoom:     1.3,
			Material: render3d.Material{
				Kind:      render3d.MaterialMatte,
				Color:     render3d.Color3{R: 0.78, G: 0.72, B: 0.6},
				Roughness: 1,
				Metalness: 0,
			},
		},
		{
			Title:       "Yours to turn over",
			Description: "Drag to look around. Scroll on when you're done.",
			Background: [2]color.RGBA{
				{R: 12, G: 14, B: 24, A: 255},
				{R: 28, G: 22, B: 52, A: 255},
			},
			Rotation: render3d.V3(0.1, math.Pi * 2.4, 0),
			Zoom:     1.1,
			Material: render3d.Material{
				Kind:      render3d.MaterialEmissive,
				Color:     render3d.Color3{R: 1.0, G: 0.85, B: 0.55},
				Roughness: 0.3,
				Metalness: 0,
			},
			Orbit:   true,
			Effects: true,
		},
	}
}
