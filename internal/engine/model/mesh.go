// Package model provides the mesh data contract shared by the world
// generators and the renderer boundary.
package model

import (
	"sync/atomic"

	"github.com/Faultbox/orbis/pkg/math"
)

// MeshID is an opaque handle assigned at mesh creation. External consumers
// key GPU resources by MeshID, never by pointer identity.
type MeshID uint64

var nextMeshID atomic.Uint64

// Vertex is a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Mesh holds triangle-list geometry. Indices are 16-bit, three per face,
// wound counter-clockwise as seen from outside. A Mesh is immutable after
// creation.
type Mesh struct {
	ID       MeshID
	Vertices []Vertex
	Indices  []uint16
	Bounds   Bounds
}

// New wraps vertex and index data into a Mesh, assigning a fresh ID and
// computing bounds.
func New(vertices []Vertex, indices []uint16) *Mesh {
	m := &Mesh{
		ID:       MeshID(nextMeshID.Add(1)),
		Vertices: vertices,
		Indices:  indices,
	}
	m.Bounds = computeBounds(vertices)
	return m
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func computeBounds(vertices []Vertex) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		p := v.Position
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b
}
