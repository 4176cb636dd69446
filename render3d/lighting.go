package render3d

import "math"

// DirectionalLight is a sun-like key light.
type DirectionalLight struct {
	Direction Vec3 // normalized direction TO the light (from surface)
	Color     Color3
	Intensity float64
}

// AmbientLight provides fill lighting.
type AmbientLight struct {
	Color     Color3
	Intensity float64
}

// LightingSetup is the fixed studio lighting for the showcase.
type LightingSetup struct {
	Key     DirectionalLight
	Fill    DirectionalLight
	Ambient AmbientLight
}

// StudioLighting returns a warm key over the left shoulder with a cool
// fill from below right, the usual product-shot arrangement.
func StudioLighting() LightingSetup {
	return LightingSetup{
		Key: DirectionalLight{
			Direction: V3(-0.45, 0.75, 0.5).Normalize(),
			Color:     Color3{1.0, 0.97, 0.9},
			Intensity: 0.85,
		},
		Fill: DirectionalLight{
			Direction: V3(0.6, -0.3, 0.4).Normalize(),
			Color:     Color3{0.55, 0.6, 0.75},
			Intensity: 0.25,
		},
		Ambient: AmbientLight{
			Color:     Color3{0.5, 0.5, 0.58},
			Intensity: 0.3,
		},
	}
}

// Shade computes the lit color for a surface point. viewDir points from the
// surface toward the camera. Dispatch is per material kind.
func (ls *LightingSetup) Shade(normal, viewDir Vec3, m Material) Color3 {
	switch m.Kind {
	case MaterialEmissive:
		// Self-lit, ignores the lights entirely.
		return m.Color
	case MaterialMatte:
		return ls.diffuseOnly(normal, m.Color)
	case MaterialMetal:
		return ls.shadePBRish(normal, viewDir, m, math.Max(m.Metalness, 0.85))
	default:
		return ls.shadePBRish(normal, viewDir, m, m.Metalness)
	}
}

func (ls *LightingSetup) diffuseOnly(normal Vec3, base Color3) Color3 {
	out := base.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)
	for _, l := range []DirectionalLight{ls.Key, ls.Fill} {
		ndotl := math.Max(0, normal.Dot(l.Direction))
		out = out.Add(base.Mul(l.Color).Scale(ndotl * l.Intensity))
	}
	return out
}

// shadePBRish is Blinn-Phong dressed in roughness/metalness clothing:
// roughness maps to specular exponent and strength, metalness tints the
// highlight with the base color and dims the diffuse term.
func (ls *LightingSetup) shadePBRish(normal, viewDir Vec3, m Material, metal float64) Color3 {
	rough := math.Min(math.Max(m.Roughness, 0.02), 1)
	shininess := 2 + (1-rough)*126
	specStrength := (1 - rough) * (0.4 + 0.6*metal)

	diffuseBase := m.Color.Scale(1 - 0.7*metal)
	specTint := Color3{1, 1, 1}.Lerp(m.Color, metal)

	out := m.Color.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)
	for _, l := range []DirectionalLight{ls.Key, ls.Fill} {
		ndotl := math.Max(0, normal.Dot(l.Direction))
		if ndotl <= 0 {
			continue
		}
		out = out.Add(diffuseBase.Mul(l.Color).Scale(ndotl * l.Intensity))

		half := l.Direction.Add(viewDir).Normalize()
		ndoth := math.Max(0, normal.Dot(half))
		spec := math.Pow(ndoth, shininess) * specStrength * l.Intensity
		out = out.Add(specTint.Mul(l.Color).Scale(spec))
	}
	return out
}
