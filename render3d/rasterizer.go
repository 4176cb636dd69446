package render3d

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Camera frames the model. Distance is divided by Zoom, so larger zoom
// values bring the product closer.
type Camera struct {
	Distance float64
	FOV      float64
	Near     float64
	Far      float64
	Zoom     float64
}

func NewCamera(distance float64) *Camera {
	return &Camera{Distance: distance, FOV: math.Pi / 4, Near: 0.1, Far: 100, Zoom: 1}
}

// Eye returns the camera position for the current zoom.
func (c *Camera) Eye() Vec3 {
	zoom := c.Zoom
	if zoom < 1e-3 {
		zoom = 1e-3
	}
	return V3(0, 0, c.Distance/zoom)
}

// Renderer rasterizes a mesh into an ebiten image with painter's-algorithm
// depth sorting. Scratch buffers are reused across frames.
type Renderer struct {
	Lighting LightingSetup

	tris     []screenTriangle
	vertices []ebiten.Vertex
	indices  []uint16
}

type screenTriangle struct {
	pts   [3]projected
	depth float64
}

type projected struct {
	x, y float64
	col  Color3
}

func NewRenderer() *Renderer {
	return &Renderer{Lighting: StudioLighting()}
}

// Draw renders mesh rotated by rotation (Euler radians, Z·Y·X), framed by
// cam, shaded with mat. Wireframe draws edges only.
func (r *Renderer) Draw(screen *ebiten.Image, mesh *Mesh, rotation Vec3, cam *Camera, mat Material, wireframe bool) {
	if mesh == nil || len(mesh.Faces) == 0 {
		return
	}

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	if w <= 0 || h <= 0 {
		return
	}

	model := Mat4Rotation(rotation)
	eye := cam.Eye()
	view := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))
	proj := Mat4Perspective(cam.FOV, w/h, cam.Near, cam.Far)
	viewProj := proj.Mul(view)

	r.tris = r.tris[:0]
	for _, f := range mesh.Faces {
		var world [3]Vec3
		var normals [3]Vec3
		for i, vi := range f.V {
			world[i] = model.TransformPoint(mesh.Vertices[vi].Pos)
			normals[i] = model.TransformDir(mesh.Vertices[vi].Normal)
		}

		center := world[0].Add(world[1]).Add(world[2]).Scale(1.0 / 3.0)
		faceNormal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		toEye := eye.Sub(center)
		if !wireframe && faceNormal.Dot(toEye) <= 0 {
			continue // backface
		}

		var tri screenTriangle
		behind := false
		for i := 0; i < 3; i++ {
			clip := viewProj.MulVec4(Vec4{world[i].X, world[i].Y, world[i].Z, 1})
			if clip.W <= cam.Near {
				behind = true
				break
			}
			ndcX := clip.X / clip.W
			ndcY := clip.Y / clip.W
			tri.pts[i].x = (ndcX + 1) / 2 * w
			tri.pts[i].y = (1 - ndcY) / 2 * h

			viewDir := toEye.Normalize()
			tri.pts[i].col = r.Lighting.Shade(normals[i].Normalize(), viewDir, mat)
		}
		if behind {
			continue
		}
		// Depth along the eye axis, farthest first after sorting.
		tri.depth = toEye.Len()
		r.tris = append(r.tris, tri)
	}

	sort.Slice(r.tris, func(i, j int) bool { return r.tris[i].depth > r.tris[j].depth })

	if wireframe {
		r.drawWireframe(screen, mat)
		return
	}
	r.drawFilled(screen)
}

func (r *Renderer) drawFilled(screen *ebiten.Image) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, tri := range r.tris {
		// Flush before the uint16 index space overflows.
		if len(r.vertices)+3 > math.MaxUint16 {
			screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
			r.vertices = r.vertices[:0]
			r.indices = r.indices[:0]
		}
		base := uint16(len(r.vertices))
		for i := 0; i < 3; i++ {
			p := tri.pts[i]
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p.x),
				DstY:   float32(p.y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(math.Min(p.col.R, 1)),
				ColorG: float32(math.Min(p.col.G, 1)),
				ColorB: float32(math.Min(p.col.B, 1)),
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

func (r *Renderer) drawWireframe(screen *ebiten.Image, mat Material) {
	col := color.RGBA{
		R: uint8(math.Min(mat.Color.R, 1) * 255),
		G: uint8(math.Min(mat.Color.G, 1) * 255),
		B: uint8(math.Min(mat.Color.B, 1) * 255),
		A: 255,
	}
	for _, tri := range r.tris {
		for i := 0; i < 3; i++ {
			a := tri.pts[i]
			b := tri.pts[(i+1)%3]
			vector.StrokeLine(screen,
				float32(a.x), float32(a.y),
				float32(b.x), float32(b.y),
				1, col, true)
		}
	}
}
