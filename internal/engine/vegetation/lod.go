// Package vegetation places procedural plant instances on the planet
// surface and assigns them distance-based levels of detail.
package vegetation

import (
	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/pkg/math"
)

// LODLevel is a discrete detail tier assigned to an instance by viewer
// distance.
type LODLevel int

const (
	// LODFull is full geometric detail (0-10 units).
	LODFull LODLevel = iota
	// LODReduced is reduced vertex count (10-30 units).
	LODReduced
	// LODBillboard is a flat quad representation (30-50 units).
	LODBillboard
	// LODFade is the billboard fading out (50-60 units and beyond).
	LODFade

	lodCount
)

// LODFromDistance maps a viewer distance to a detail tier. The four tiers
// partition [0, inf) with no gap or overlap.
func LODFromDistance(distance float32) LODLevel {
	switch {
	case distance < 10:
		return LODFull
	case distance < 30:
		return LODReduced
	case distance < 50:
		return LODBillboard
	default:
		return LODFade
	}
}

// MaxDistance returns the far edge of the tier's distance range.
func (l LODLevel) MaxDistance() float32 {
	switch l {
	case LODFull:
		return 10
	case LODReduced:
		return 30
	case LODBillboard:
		return 50
	default:
		return 60
	}
}

func (l LODLevel) startDistance() float32 {
	switch l {
	case LODFull:
		return 0
	case LODReduced:
		return 10
	case LODBillboard:
		return 30
	default:
		return 50
	}
}

// FadeFactor returns how far through the tier's distance range the given
// distance lies, clamped to [0, 1].
func (l LODLevel) FadeFactor(distance float32) float32 {
	start := l.startDistance()
	f := (distance - start) / (l.MaxDistance() - start)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (l LODLevel) String() string {
	switch l {
	case LODFull:
		return "full"
	case LODReduced:
		return "reduced"
	case LODBillboard:
		return "billboard"
	case LODFade:
		return "fade"
	default:
		return "unknown"
	}
}

// GrassLODMeshes holds one mesh per tier, in decreasing detail.
type GrassLODMeshes struct {
	meshes [lodCount]*model.Mesh
}

// GenerateGrassLODMeshes builds the per-tier grass blade meshes: a curved
// 5-segment blade, a 2-segment blade, and a quad billboard shared by the
// billboard and fade tiers.
func GenerateGrassLODMeshes() *GrassLODMeshes {
	billboard := grassBillboardMesh()
	return &GrassLODMeshes{
		meshes: [lodCount]*model.Mesh{
			grassBladeMesh(5, 0.1),
			grassBladeMesh(2, 0.08),
			billboard,
			billboard,
		},
	}
}

// Mesh returns the mesh for a tier.
func (g *GrassLODMeshes) Mesh(level LODLevel) *model.Mesh {
	return g.meshes[level]
}

// grassBladeMesh builds a curved, tapered blade of the given segment count.
func grassBladeMesh(segments int, curveAmount float32) *model.Mesh {
	const (
		width  = 0.05
		height = 0.6
	)

	var vertices []model.Vertex
	var indices []uint16

	normal := math.Vec3{Z: 1}

	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		y := t * height

		// Lean the blade sideways, narrowing towards the tip
		curveX := curveAmount * t * t
		currentWidth := width * (1 - t*0.8)

		vertices = append(vertices,
			model.Vertex{
				Position: math.Vec3{X: -currentWidth + curveX, Y: y},
				Normal:   normal,
				TexCoord: math.Vec2{X: 0, Y: 1 - t},
			},
			model.Vertex{
				Position: math.Vec3{X: currentWidth + curveX, Y: y},
				Normal:   normal,
				TexCoord: math.Vec2{X: 1, Y: 1 - t},
			},
		)
	}

	for i := 0; i < segments; i++ {
		base := uint16(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	return model.New(vertices, indices)
}

func grassBillboardMesh() *model.Mesh {
	const (
		width  = 0.1
		height = 0.6
	)

	normal := math.Vec3{Z: 1}
	vertices := []model.Vertex{
		{Position: math.Vec3{X: -width / 2}, Normal: normal, TexCoord: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: width / 2}, Normal: normal, TexCoord: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -width / 2, Y: height}, Normal: normal, TexCoord: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: width / 2, Y: height}, Normal: normal, TexCoord: math.Vec2{X: 1, Y: 0}},
	}
	indices := []uint16{0, 1, 2, 1, 3, 2}

	return model.New(vertices, indices)
}

// LODSystem recomputes instance detail tiers from the viewer position.
// The rescan is O(N) per update with no spatial structure; fine for
// thousands of instances.
type LODSystem struct {
	grassMeshes  *GrassLODMeshes
	viewPosition math.Vec3
}

// NewLODSystem builds the per-tier meshes and an initial viewer at origin.
func NewLODSystem() *LODSystem {
	return &LODSystem{
		grassMeshes: GenerateGrassLODMeshes(),
	}
}

// SetViewPosition records the viewer position for subsequent LOD queries.
func (s *LODSystem) SetViewPosition(position math.Vec3) {
	s.viewPosition = position
}

// Classify returns the tier and fade factor for an instance position.
func (s *LODSystem) Classify(instancePosition math.Vec3) (LODLevel, float32) {
	distance := instancePosition.Distance(s.viewPosition)
	level := LODFromDistance(distance)
	return level, level.FadeFactor(distance)
}

// GrassMesh returns the grass mesh for a tier.
func (s *LODSystem) GrassMesh(level LODLevel) *model.Mesh {
	return s.grassMeshes.Mesh(level)
}
