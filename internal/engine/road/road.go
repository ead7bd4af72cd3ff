// Package road builds road strip meshes that follow the planet surface.
package road

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/pkg/math"
)

const segments = 50

// Span is the angular extent of a road along the equator, in radians
// normalized to [0, 2pi).
type Span struct {
	StartAngle float32
	EndAngle   float32
}

// Contains reports whether a longitude (radians, any range) falls inside
// the span.
func (s Span) Contains(longitude float32) bool {
	a := normalizeAngle(longitude)
	return a >= s.StartAngle && a <= s.EndAngle
}

// Longitude returns the equatorial angle of a surface position in [0, 2pi).
func Longitude(position math.Vec3) float32 {
	return normalizeAngle(float32(gomath.Atan2(float64(position.Z), float64(position.X))))
}

func normalizeAngle(a float32) float32 {
	twoPi := float32(2 * gomath.Pi)
	a = float32(gomath.Mod(float64(a), float64(twoPi)))
	if a < 0 {
		a += twoPi
	}
	return a
}

// Road is a strip mesh laid on the planet surface along the equator.
type Road struct {
	mesh         *model.Mesh
	span         Span
	planetRadius float32
}

// New builds an equatorial road covering the given span.
func New(planetRadius float32, span Span, width float32) (*Road, error) {
	if planetRadius <= 0 {
		return nil, fmt.Errorf("road: planet radius must be positive, got %f", planetRadius)
	}
	if width <= 0 {
		return nil, fmt.Errorf("road: width must be positive, got %f", width)
	}

	mesh := generateEquatorialMesh(planetRadius, span, width)
	return &Road{mesh: mesh, span: span, planetRadius: planetRadius}, nil
}

// Mesh returns the road geometry.
func (r *Road) Mesh() *model.Mesh {
	return r.mesh
}

// Span returns the angular extent of the road.
func (r *Road) Span() Span {
	return r.span
}

func generateEquatorialMesh(planetRadius float32, span Span, width float32) *model.Mesh {
	var vertices []model.Vertex
	var indices []uint16

	halfWidth := width / 2

	for i := 0; i <= segments; i++ {
		t := float32(i) / segments
		angle := span.StartAngle + (span.EndAngle-span.StartAngle)*t

		cos := float32(gomath.Cos(float64(angle)))
		sin := float32(gomath.Sin(float64(angle)))

		center := math.Vec3{X: planetRadius * cos, Z: planetRadius * sin}
		up := center.Normalize()

		// Tangent along the equator at this angle
		forward := math.Vec3{X: -sin, Z: cos}
		right := forward.Cross(up).Normalize()

		left := center.Add(right.Scale(-halfWidth))
		rightEdge := center.Add(right.Scale(halfWidth))

		vertices = append(vertices,
			model.Vertex{Position: left, Normal: up, TexCoord: math.Vec2{X: 0, Y: t}},
			model.Vertex{Position: rightEdge, Normal: up, TexCoord: math.Vec2{X: 1, Y: t}},
		)
	}

	for i := 0; i < segments; i++ {
		base := uint16(i * 2)
		indices = append(indices,
			base, base+2, base+1,
			base+1, base+2, base+3,
		)
	}

	return model.New(vertices, indices)
}

// GenerateCurved builds a road strip along the great circle between two
// surface positions, with the given number of segments. Nearly coincident
// endpoints fall back to linear interpolation.
func GenerateCurved(planetRadius float32, start, end math.Vec3, width float32, curveSegments int) (*model.Mesh, error) {
	if planetRadius <= 0 {
		return nil, fmt.Errorf("road: planet radius must be positive, got %f", planetRadius)
	}
	if curveSegments < 1 {
		return nil, fmt.Errorf("road: need at least one segment, got %d", curveSegments)
	}

	var vertices []model.Vertex
	var indices []uint16

	halfWidth := width / 2

	sn := start.Normalize()
	en := end.Normalize()

	angle := sn.AngleBetween(en)
	sinAngle := float32(gomath.Sin(float64(angle)))

	// Point on the great circle at parameter t
	at := func(t float32) math.Vec3 {
		if gomath.Abs(float64(sinAngle)) < 0.001 {
			// Endpoints nearly parallel: slerp is degenerate, lerp instead
			return sn.Scale(1 - t).Add(en.Scale(t)).Normalize()
		}
		a := float32(gomath.Sin(float64((1-t)*angle))) / sinAngle
		b := float32(gomath.Sin(float64(t*angle))) / sinAngle
		return sn.Scale(a).Add(en.Scale(b))
	}

	for i := 0; i <= curveSegments; i++ {
		t := float32(i) / float32(curveSegments)
		up := at(t)
		center := up.Scale(planetRadius)

		// Path tangent from a neighboring sample
		var forward math.Vec3
		if i == curveSegments {
			prev := at(float32(i-1) / float32(curveSegments))
			forward = up.Sub(prev).Normalize()
		} else {
			next := at(float32(i+1) / float32(curveSegments))
			forward = next.Sub(up).Normalize()
		}

		right := forward.Cross(up).Normalize()

		left := center.Add(right.Scale(-halfWidth))
		rightEdge := center.Add(right.Scale(halfWidth))

		vertices = append(vertices,
			model.Vertex{Position: left, Normal: up, TexCoord: math.Vec2{X: 0, Y: t}},
			model.Vertex{Position: rightEdge, Normal: up, TexCoord: math.Vec2{X: 1, Y: t}},
		)
	}

	for i := 0; i < curveSegments; i++ {
		base := uint16(i * 2)
		indices = append(indices,
			base, base+2, base+1,
			base+1, base+2, base+3,
		)
	}

	return model.New(vertices, indices), nil
}
