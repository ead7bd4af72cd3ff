package vegetation

import (
	"fmt"
	gomath "math"
	"math/rand"

	"github.com/Faultbox/orbis/internal/engine/density"
	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/pkg/math"
)

// grassTextureVariants is the number of texture variations a grass blade
// can pick from.
const grassTextureVariants = 8

// Grass owns the placed grass instances and their LOD state. Instances are
// append-only; nothing is removed or reordered after placement.
type Grass struct {
	lod       *LODSystem
	instances []Instance
}

// NewGrass places grass across the planet. density is the target instance
// count per unit of surface area; the density map modulates where
// candidates survive. Placement is deterministic for a given seed.
func NewGrass(planetRadius, targetDensity float32, densityMap *density.Map, seed int64) (*Grass, error) {
	if planetRadius <= 0 {
		return nil, fmt.Errorf("vegetation: planet radius must be positive, got %f", planetRadius)
	}
	if targetDensity < 0 {
		return nil, fmt.Errorf("vegetation: density must be non-negative, got %f", targetDensity)
	}

	return &Grass{
		lod:       NewLODSystem(),
		instances: placeGrass(planetRadius, targetDensity, densityMap, seed),
	}, nil
}

// placeGrass rejection-samples candidate points against the density map:
// each uniformly drawn surface point survives with probability equal to
// the local density.
func placeGrass(planetRadius, targetDensity float32, densityMap *density.Map, seed int64) []Instance {
	rng := rand.New(rand.NewSource(seed))

	surfaceArea := 4 * gomath.Pi * float64(planetRadius) * float64(planetRadius)
	// Oversample so the density filter still reaches the target count
	numCandidates := int(surfaceArea * float64(targetDensity) * 2)

	instances := make([]Instance, 0, numCandidates/2)

	for c := 0; c < numCandidates; c++ {
		position := randomSurfacePoint(rng, planetRadius)

		d := densityMap.SampleSpherical(position, planetRadius)
		if rng.Float32() >= d {
			continue
		}

		scale := 0.5 + rng.Float32()*1.0 // 0.5 to 1.5
		transform := placementTransform(rng, position, scale)

		// Correlated jitter: red and blue shift in opposite directions
		colorVar := rng.Float32()
		colorVariation := math.Vec3{
			X: -0.05 + colorVar*0.1,
			Y: -0.1 + rng.Float32()*0.3,
			Z: -0.05 + (1-colorVar)*0.05,
		}

		instances = append(instances, Instance{
			Transform:      transform,
			ColorVariation: colorVariation,
			LOD:            LODFull, // Recomputed on the first update
			FadeAlpha:      1,
			TextureIndex:   int32(rng.Intn(grassTextureVariants)),
		})
	}

	return instances
}

// Update recomputes every instance's tier and fade alpha for the given
// viewer position. Only the fade tier drives transparency; the other
// tiers render opaque.
func (g *Grass) Update(viewPosition math.Vec3) {
	g.lod.SetViewPosition(viewPosition)

	for i := range g.instances {
		inst := &g.instances[i]
		level, fadeFactor := g.lod.Classify(inst.Position())

		inst.LOD = level
		if level == LODFade {
			inst.FadeAlpha = 1 - fadeFactor
		} else {
			inst.FadeAlpha = 1
		}
	}
}

// InstancesByLOD returns the render records for all instances currently in
// the given tier, in placement order.
func (g *Grass) InstancesByLOD(level LODLevel) []RenderInstance {
	var out []RenderInstance
	for i := range g.instances {
		inst := &g.instances[i]
		if inst.LOD != level {
			continue
		}
		out = append(out, RenderInstance{
			Transform:      inst.Transform,
			ColorVariation: inst.ColorVariation,
			FadeAlpha:      inst.FadeAlpha,
			TextureIndex:   inst.TextureIndex,
		})
	}
	return out
}

// Instances returns all placed instances.
func (g *Grass) Instances() []Instance {
	return g.instances
}

// Count returns the number of placed instances.
func (g *Grass) Count() int {
	return len(g.instances)
}

// Mesh returns the grass geometry for a tier.
func (g *Grass) Mesh(level LODLevel) *model.Mesh {
	return g.lod.GrassMesh(level)
}
