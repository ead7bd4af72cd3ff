// Package geodesic builds icosphere terrain meshes by recursive subdivision
// of an icosahedron.
package geodesic

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/pkg/math"
)

// MaxSubdivisionLevel is the deepest supported subdivision. Level 6 yields
// 40962 vertices; level 7 would overflow the 16-bit index space.
const MaxSubdivisionLevel = 6

// SphericalWorld describes a planet as an icosphere. It is pure
// configuration; GenerateMesh produces the geometry on demand.
type SphericalWorld struct {
	Radius           float32
	SubdivisionLevel int
	Center           math.Vec3
}

// New returns a world centered at the origin.
func New(radius float32, subdivisionLevel int) *SphericalWorld {
	return &SphericalWorld{
		Radius:           radius,
		SubdivisionLevel: subdivisionLevel,
	}
}

// GenerateMesh builds the icosphere mesh: 12 golden-ratio vertices on the
// unit sphere connected by 20 faces, each subdivided SubdivisionLevel times
// with edge midpoints re-normalized onto the sphere. Vertices are scaled by
// Radius and offset by Center; normals are the unit-sphere directions and
// UVs come from an equirectangular projection.
//
// The projection leaves a UV seam at u=0/1; seam vertices are deliberately
// not split.
func (w *SphericalWorld) GenerateMesh() (*model.Mesh, error) {
	if w.Radius <= 0 {
		return nil, fmt.Errorf("geodesic: radius must be positive, got %f", w.Radius)
	}
	if w.SubdivisionLevel < 0 || w.SubdivisionLevel > MaxSubdivisionLevel {
		return nil, fmt.Errorf("geodesic: subdivision level must be in [0, %d], got %d",
			MaxSubdivisionLevel, w.SubdivisionLevel)
	}

	positions, indices := icosahedron()
	positions, indices = subdivide(positions, indices, w.SubdivisionLevel)

	vertices := make([]model.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = model.Vertex{
			Position: p.Scale(w.Radius).Add(w.Center),
			Normal:   p, // Already unit length
			TexCoord: sphereToUV(p),
		}
	}

	out := make([]uint16, len(indices))
	for i, idx := range indices {
		out[i] = uint16(idx)
	}

	return model.New(vertices, out), nil
}

// icosahedron returns the 12 unit-sphere vertices and 20 faces of a regular
// icosahedron.
func icosahedron() ([]math.Vec3, []uint32) {
	t := float32((1.0 + gomath.Sqrt(5.0)) / 2.0) // Golden ratio

	positions := []math.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	for i := range positions {
		positions[i] = positions[i].Normalize()
	}

	indices := []uint32{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	return positions, indices
}

// subdivide splits every triangle into four, level times. Edge midpoints
// are cached by the unordered vertex-index pair so each edge contributes
// exactly one shared vertex.
func subdivide(positions []math.Vec3, indices []uint32, level int) ([]math.Vec3, []uint32) {
	if level == 0 {
		return positions, indices
	}

	cache := make(map[[2]uint32]uint32)
	newIndices := make([]uint32, 0, len(indices)*4)

	midpoint := func(v1, v2 uint32) uint32 {
		key := [2]uint32{v1, v2}
		if v2 < v1 {
			key = [2]uint32{v2, v1}
		}
		if idx, ok := cache[key]; ok {
			return idx
		}

		mid := positions[v1].Add(positions[v2]).Scale(0.5).Normalize()
		idx := uint32(len(positions))
		positions = append(positions, mid)
		cache[key] = idx
		return idx
	}

	for i := 0; i < len(indices); i += 3 {
		v1, v2, v3 := indices[i], indices[i+1], indices[i+2]

		a := midpoint(v1, v2)
		b := midpoint(v2, v3)
		c := midpoint(v3, v1)

		newIndices = append(newIndices,
			v1, a, c,
			v2, b, a,
			v3, c, b,
			a, b, c,
		)
	}

	return subdivide(positions, newIndices, level-1)
}

// sphereToUV maps a unit-sphere direction to equirectangular texture
// coordinates.
func sphereToUV(p math.Vec3) math.Vec2 {
	theta := gomath.Atan2(float64(p.Z), float64(p.X))
	phi := gomath.Asin(float64(p.Y))

	u := (theta + gomath.Pi) / (2 * gomath.Pi)
	v := (phi + gomath.Pi/2) / gomath.Pi

	return math.Vec2{X: float32(u), Y: float32(v)}
}

// SurfaceUV maps a point on the planet surface to equirectangular UVs.
// It is the same projection GenerateMesh uses for vertex texture
// coordinates, exposed for density-map sampling.
func (w *SphericalWorld) SurfaceUV(position math.Vec3) math.Vec2 {
	return sphereToUV(position.Sub(w.Center).Normalize())
}
