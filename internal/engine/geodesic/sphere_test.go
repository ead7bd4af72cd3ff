package geodesic

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/orbis/pkg/math"
)

func TestIcosphereLevel0(t *testing.T) {
	w := New(1.0, 0)
	mesh, err := w.GenerateMesh()
	if err != nil {
		t.Fatalf("GenerateMesh failed: %v", err)
	}

	// An icosahedron has 12 vertices and 20 faces.
	if len(mesh.Vertices) != 12 {
		t.Errorf("expected 12 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 60 {
		t.Errorf("expected 60 indices, got %d", len(mesh.Indices))
	}
}

func TestIcosphereLevel1(t *testing.T) {
	w := New(1.0, 1)
	mesh, err := w.GenerateMesh()
	if err != nil {
		t.Fatalf("GenerateMesh failed: %v", err)
	}

	// One subdivision turns each of the 20 faces into 4.
	if len(mesh.Indices) != 80*3 {
		t.Errorf("expected 240 indices, got %d", len(mesh.Indices))
	}

	// Shared midpoints: 12 originals + 30 edges = 42 vertices, not 72.
	if len(mesh.Vertices) != 42 {
		t.Errorf("expected 42 vertices, got %d", len(mesh.Vertices))
	}
}

func TestVerticesOnSphere(t *testing.T) {
	const radius = 50.0
	center := math.Vec3{X: 10, Y: -5, Z: 3}

	for level := 0; level <= 3; level++ {
		w := New(radius, level)
		w.Center = center
		mesh, err := w.GenerateMesh()
		if err != nil {
			t.Fatalf("level %d: GenerateMesh failed: %v", level, err)
		}

		for i, v := range mesh.Vertices {
			d := v.Position.Distance(center)
			if gomath.Abs(float64(d-radius)) > 1e-4*radius {
				t.Fatalf("level %d vertex %d at distance %f, want %f", level, i, d, radius)
			}
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	w := New(1.0, 3)
	mesh, err := w.GenerateMesh()
	if err != nil {
		t.Fatalf("GenerateMesh failed: %v", err)
	}

	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range at position %d", idx, i)
		}
	}
}

func TestWindingCCWFromOutside(t *testing.T) {
	w := New(1.0, 1)
	mesh, err := w.GenerateMesh()
	if err != nil {
		t.Fatalf("GenerateMesh failed: %v", err)
	}

	// For every face the geometric normal must point away from the center.
	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]].Position
		b := mesh.Vertices[mesh.Indices[i+1]].Position
		c := mesh.Vertices[mesh.Indices[i+2]].Position

		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3.0)
		if normal.Dot(centroid) <= 0 {
			t.Fatalf("face %d wound clockwise as seen from outside", i/3)
		}
	}
}

func TestNormalsAreUnitRadial(t *testing.T) {
	w := New(25.0, 2)
	mesh, err := w.GenerateMesh()
	if err != nil {
		t.Fatalf("GenerateMesh failed: %v", err)
	}

	for i, v := range mesh.Vertices {
		l := v.Normal.Length()
		if gomath.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("vertex %d normal length %f, want 1", i, l)
		}
		if v.Normal.Dot(v.Position.Normalize()) < 0.9999 {
			t.Fatalf("vertex %d normal not radial", i)
		}
	}
}

func TestSphereToUV(t *testing.T) {
	w := New(1.0, 0)

	// Equator point on +X: atan2(0,1)=0 -> u=0.5, asin(0)=0 -> v=0.5.
	uv := w.SurfaceUV(math.Vec3{X: 1})
	if gomath.Abs(float64(uv.X-0.5)) > 0.01 {
		t.Errorf("equator u = %f, want 0.5", uv.X)
	}
	if gomath.Abs(float64(uv.Y-0.5)) > 0.01 {
		t.Errorf("equator v = %f, want 0.5", uv.Y)
	}

	// North pole maps to the top of the V range.
	uvNorth := w.SurfaceUV(math.Vec3{Y: 1})
	if gomath.Abs(float64(uvNorth.Y-1.0)) > 0.01 {
		t.Errorf("north pole v = %f, want 1", uvNorth.Y)
	}
}

func TestInvalidParameters(t *testing.T) {
	if _, err := New(0, 2).GenerateMesh(); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := New(-5, 2).GenerateMesh(); err == nil {
		t.Error("expected error for negative radius")
	}
	if _, err := New(1, -1).GenerateMesh(); err == nil {
		t.Error("expected error for negative subdivision level")
	}
	if _, err := New(1, MaxSubdivisionLevel+1).GenerateMesh(); err == nil {
		t.Error("expected error for subdivision level past the index budget")
	}
}
