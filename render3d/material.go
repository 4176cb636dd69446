package render3d

// MaterialKind selects the shading path for a surface.
type MaterialKind int

const (
	MaterialStandard MaterialKind = iota
	MaterialMetal
	MaterialMatte
	MaterialEmissive
)

// Material describes how a surface responds to light.
type Material struct {
	Kind      MaterialKind
	Color     Color3
	Roughness float64 // 0 = mirror-sharp highlight, 1 = fully diffuse
	Metalness float64 // 0 = dielectric, 1 = metal (tinted specular)
}

// Lerp blends scalar parameters and color toward o by t. Kind is discrete:
// it flips to the target's kind once the blend passes the midpoint.
func (m Material) Lerp(o Material, t float64) Material {
	out := Material{
		Kind:      m.Kind,
		Color:     m.Color.Lerp(o.Color, t),
		Roughness: m.Roughness + (o.Roughness-m.Roughness)*t,
		Metalness: m.Metalness + (o.Metalness-m.Metalness)*t,
	}
	if t >= 0.5 {
		out.Kind = o.Kind
	}
	return out
}
