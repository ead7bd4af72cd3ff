package gravity

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/orbis/pkg/math"
)

func TestUpIsRadial(t *testing.T) {
	sys := New(math.Vec3{}, 9.8)

	up := sys.Up(math.Vec3{Y: 10})
	if up != (math.Vec3{Y: 1}) {
		t.Errorf("Up((0,10,0)) = %v, want (0,1,0)", up)
	}

	up = sys.Up(math.Vec3{X: -5})
	if up != (math.Vec3{X: -1}) {
		t.Errorf("Up((-5,0,0)) = %v, want (-1,0,0)", up)
	}
}

func TestUpAtCenter(t *testing.T) {
	sys := New(math.Vec3{X: 3, Y: 4, Z: 5}, 9.8)

	up := sys.Up(math.Vec3{X: 3, Y: 4, Z: 5})
	if up != (math.Vec3{Y: 1}) {
		t.Errorf("Up at center = %v, want world up", up)
	}
}

func TestUpWithOffsetCenter(t *testing.T) {
	sys := New(math.Vec3{X: 100}, 9.8)

	up := sys.Up(math.Vec3{X: 100, Y: 25})
	if up != (math.Vec3{Y: 1}) {
		t.Errorf("Up = %v, want (0,1,0)", up)
	}
}

func TestGravityPointsAtCenter(t *testing.T) {
	sys := New(math.Vec3{}, 9.8)

	g := sys.Gravity(math.Vec3{Y: 10})
	want := math.Vec3{Y: -9.8}
	if g.Sub(want).Length() > 1e-5 {
		t.Errorf("Gravity((0,10,0)) = %v, want %v", g, want)
	}

	if l := sys.Gravity(math.Vec3{X: 7, Y: -2, Z: 3}).Length(); stdmath.Abs(float64(l-9.8)) > 1e-4 {
		t.Errorf("gravity magnitude = %v, want 9.8", l)
	}
}

func TestGravityAtCenter(t *testing.T) {
	sys := New(math.Vec3{}, 9.8)

	if g := sys.Gravity(math.Vec3{}); g != (math.Vec3{}) {
		t.Errorf("Gravity at center = %v, want zero", g)
	}
}

func TestSurfaceDistance(t *testing.T) {
	sys := New(math.Vec3{}, 9.8)

	tests := []struct {
		position math.Vec3
		radius   float32
		want     float32
	}{
		{math.Vec3{Y: 60}, 50, 10},
		{math.Vec3{Y: 50}, 50, 0},
		{math.Vec3{Y: 40}, 50, -10},
	}

	for _, tt := range tests {
		got := sys.SurfaceDistance(tt.position, tt.radius)
		if stdmath.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("SurfaceDistance(%v, %v) = %v, want %v", tt.position, tt.radius, got, tt.want)
		}
	}
}
