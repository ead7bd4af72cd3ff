package model

import (
	"testing"

	"github.com/Faultbox/orbis/pkg/math"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(nil, nil)
	b := New(nil, nil)
	if a.ID == b.ID {
		t.Errorf("expected distinct mesh IDs, both are %d", a.ID)
	}
	if a.ID == 0 || b.ID == 0 {
		t.Error("mesh IDs should be non-zero")
	}
}

func TestComputeBounds(t *testing.T) {
	vertices := []Vertex{
		{Position: math.Vec3{X: -1, Y: 2, Z: 0}},
		{Position: math.Vec3{X: 3, Y: -4, Z: 5}},
		{Position: math.Vec3{X: 0, Y: 0, Z: -6}},
	}
	m := New(vertices, nil)

	wantMin := math.Vec3{X: -1, Y: -4, Z: -6}
	wantMax := math.Vec3{X: 3, Y: 2, Z: 5}
	if m.Bounds.Min != wantMin {
		t.Errorf("bounds min = %v, want %v", m.Bounds.Min, wantMin)
	}
	if m.Bounds.Max != wantMax {
		t.Errorf("bounds max = %v, want %v", m.Bounds.Max, wantMax)
	}
}

func TestCube(t *testing.T) {
	m := Cube()

	if len(m.Vertices) != 24 {
		t.Errorf("expected 24 cube vertices, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("expected 36 cube indices, got %d", len(m.Indices))
	}
	if m.TriangleCount() != 12 {
		t.Errorf("expected 12 cube triangles, got %d", m.TriangleCount())
	}

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range at position %d", idx, i)
		}
	}
}

func TestPlane(t *testing.T) {
	m := Plane(4, 2)

	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("expected 4 vertices / 6 indices, got %d / %d",
			len(m.Vertices), len(m.Indices))
	}

	if m.Bounds.Min.X != -2 || m.Bounds.Max.X != 2 {
		t.Errorf("plane X bounds = [%f, %f], want [-2, 2]",
			m.Bounds.Min.X, m.Bounds.Max.X)
	}
	if m.Bounds.Min.Z != -1 || m.Bounds.Max.Z != 1 {
		t.Errorf("plane Z bounds = [%f, %f], want [-1, 1]",
			m.Bounds.Min.Z, m.Bounds.Max.Z)
	}

	for _, v := range m.Vertices {
		if v.Normal != (math.Vec3{Y: 1}) {
			t.Errorf("plane normal = %v, want +Y", v.Normal)
		}
	}
}
