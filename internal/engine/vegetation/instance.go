package vegetation

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/orbis/pkg/math"
)

// Instance is one placed plant. Transform and the visual-variety fields
// are fixed at placement time; only LOD and FadeAlpha change afterwards,
// once per frame.
type Instance struct {
	Transform      math.Mat4
	ColorVariation math.Vec3
	LOD            LODLevel
	FadeAlpha      float32
	TextureIndex   int32
}

// Position returns the instance's world position.
func (i *Instance) Position() math.Vec3 {
	return i.Transform.Translation()
}

// RenderInstance is the per-instance record handed to the renderer for
// batched instanced drawing. The renderer never mutates it.
type RenderInstance struct {
	Transform      math.Mat4
	ColorVariation math.Vec3
	FadeAlpha      float32
	TextureIndex   int32
}

// randomSurfacePoint draws a uniformly distributed point on a sphere of
// the given radius using the inverse-CDF method. Naive latitude/longitude
// sampling would pile points up at the poles.
func randomSurfacePoint(rng *rand.Rand, radius float32) math.Vec3 {
	u := rng.Float64()
	v := rng.Float64()

	theta := 2 * gomath.Pi * u
	phi := gomath.Acos(1 - 2*v)

	sinPhi := gomath.Sin(phi)
	return math.Vec3{
		X: radius * float32(sinPhi*gomath.Cos(theta)),
		Y: radius * float32(gomath.Cos(phi)),
		Z: radius * float32(sinPhi*gomath.Sin(theta)),
	}
}

// surfaceFrame builds an orthonormal tangent frame at a surface position.
// When the radial up is nearly parallel to world up, the cross product
// degenerates and a fixed fallback axis is substituted.
func surfaceFrame(position math.Vec3) (up, right, forward math.Vec3) {
	up = position.Normalize()

	worldUp := math.Vec3{Y: 1}
	if d := up.Dot(worldUp); d > 0.99 || d < -0.99 {
		right = math.Vec3{X: 1}
	} else {
		right = worldUp.Cross(up).Normalize()
	}
	forward = up.Cross(right).Normalize()
	return up, right, forward
}

// placementTransform composes the instance matrix: a random yaw about the
// surface normal, uniform scale, and translation to the surface point.
func placementTransform(rng *rand.Rand, position math.Vec3, scale float32) math.Mat4 {
	up, right, forward := surfaceFrame(position)

	yaw := rng.Float32() * 2 * gomath.Pi
	rotatedForward := forward.RotateAround(up, yaw)
	rotatedRight := right.RotateAround(up, yaw)

	return math.FromBasis(
		rotatedRight.Scale(scale),
		up.Scale(scale),
		rotatedForward.Scale(scale),
		position,
	)
}
