package vegetation

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/internal/engine/road"
	"github.com/Faultbox/orbis/pkg/math"
)

// attemptBudgetFactor bounds the tree rejection loop: placement gives up
// after this many attempts per requested tree and returns fewer instances.
const attemptBudgetFactor = 10

// Trees owns the placed tree instances and their shared low-poly mesh.
type Trees struct {
	mesh      *model.Mesh
	instances []Instance
}

// NewTrees places trees across the planet, keeping them off the road: any
// candidate inside the equatorial clearing band whose longitude falls in
// the road span is rejected. Placement is deterministic for a given seed
// and degrades gracefully when the attempt budget runs out.
func NewTrees(planetRadius float32, count int, roadSpan road.Span, clearing float32, seed int64) (*Trees, error) {
	if planetRadius <= 0 {
		return nil, fmt.Errorf("vegetation: planet radius must be positive, got %f", planetRadius)
	}
	if count < 0 {
		return nil, fmt.Errorf("vegetation: tree count must be non-negative, got %d", count)
	}

	return &Trees{
		mesh:      treeMesh(),
		instances: placeTrees(planetRadius, count, roadSpan, clearing, seed),
	}, nil
}

func placeTrees(planetRadius float32, count int, roadSpan road.Span, clearing float32, seed int64) []Instance {
	rng := rand.New(rand.NewSource(seed))
	instances := make([]Instance, 0, count)

	attempts := 0
	for len(instances) < count && attempts < count*attemptBudgetFactor {
		attempts++

		position := randomSurfacePoint(rng, planetRadius)

		// Keep the road clear: skip candidates inside the equatorial band
		// that fall within the road's angular span.
		if abs32(position.Y) < clearing && roadSpan.Contains(road.Longitude(position)) {
			continue
		}

		scale := 1.0 + rng.Float32()*0.5 // 1.0 to 1.5
		transform := placementTransform(rng, position, scale)

		instances = append(instances, Instance{
			Transform: transform,
			// Trunk/foliage coloring is resolved per-vertex downstream
			ColorVariation: math.Vec3{},
			LOD:            LODFull,
			FadeAlpha:      1,
		})
	}

	return instances
}

// treeMesh builds the shared low-poly tree: a six-sided tapered trunk
// topped with an eight-sided foliage cone.
func treeMesh() *model.Mesh {
	var vertices []model.Vertex
	var indices []uint16

	const (
		trunkSides        = 6
		trunkRadiusBottom = 0.4
		trunkRadiusTop    = 0.2
		trunkHeight       = 3.0

		foliageSides      = 8
		foliageBaseRadius = 2.5
		foliageHeight     = 4.0
	)

	for i := 0; i < trunkSides; i++ {
		angle := float64(i) / trunkSides * 2 * gomath.Pi
		cos := float32(gomath.Cos(angle))
		sin := float32(gomath.Sin(angle))

		normal := math.Vec3{X: cos, Z: sin}
		u := float32(i) / trunkSides

		vertices = append(vertices,
			model.Vertex{
				Position: math.Vec3{X: trunkRadiusBottom * cos, Z: trunkRadiusBottom * sin},
				Normal:   normal,
				TexCoord: math.Vec2{X: u, Y: 1},
			},
			model.Vertex{
				Position: math.Vec3{X: trunkRadiusTop * cos, Y: trunkHeight, Z: trunkRadiusTop * sin},
				Normal:   normal,
				TexCoord: math.Vec2{X: u, Y: 0},
			},
		)
	}

	for i := 0; i < trunkSides; i++ {
		currentBottom := uint16(i * 2)
		currentTop := currentBottom + 1
		nextBottom := uint16((i + 1) % trunkSides * 2)
		nextTop := nextBottom + 1

		indices = append(indices,
			currentBottom, nextBottom, currentTop,
			currentTop, nextBottom, nextTop,
		)
	}

	// Foliage cone overlaps the trunk slightly
	foliageYOffset := float32(trunkHeight - 0.5)
	tipIndex := uint16(len(vertices))

	vertices = append(vertices, model.Vertex{
		Position: math.Vec3{Y: foliageYOffset + foliageHeight},
		Normal:   math.Vec3{Y: 1},
		TexCoord: math.Vec2{X: 0.5, Y: 0},
	})

	for i := 0; i < foliageSides; i++ {
		angle := float64(i) / foliageSides * 2 * gomath.Pi
		cos := float32(gomath.Cos(angle))
		sin := float32(gomath.Sin(angle))

		vertices = append(vertices, model.Vertex{
			Position: math.Vec3{X: foliageBaseRadius * cos, Y: foliageYOffset, Z: foliageBaseRadius * sin},
			Normal:   math.Vec3{X: cos, Y: 0.5, Z: sin}.Normalize(),
			TexCoord: math.Vec2{X: float32(i) / foliageSides, Y: 1},
		})
	}

	for i := 0; i < foliageSides; i++ {
		currentBase := tipIndex + 1 + uint16(i)
		nextBase := tipIndex + 1 + uint16((i+1)%foliageSides)
		indices = append(indices, tipIndex, nextBase, currentBase)
	}

	return model.New(vertices, indices)
}

// Mesh returns the shared tree geometry.
func (t *Trees) Mesh() *model.Mesh {
	return t.mesh
}

// Instances returns all placed instances.
func (t *Trees) Instances() []Instance {
	return t.instances
}

// Count returns the number of placed instances.
func (t *Trees) Count() int {
	return len(t.instances)
}

// RenderInstances returns the per-instance records for instanced drawing.
func (t *Trees) RenderInstances() []RenderInstance {
	out := make([]RenderInstance, len(t.instances))
	for i := range t.instances {
		inst := &t.instances[i]
		out[i] = RenderInstance{
			Transform:      inst.Transform,
			ColorVariation: inst.ColorVariation,
			FadeAlpha:      inst.FadeAlpha,
			TextureIndex:   inst.TextureIndex,
		}
	}
	return out
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
