package game

import (
	stdmath "math"
	"testing"

	"github.com/Faultbox/orbis/internal/config"
	"github.com/Faultbox/orbis/internal/engine/scene"
	"github.com/Faultbox/orbis/pkg/math"
)

func testConfig() *config.Config {
	cfg := config.Default()
	// Keep generation fast under test.
	cfg.World.SubdivisionLevel = 2
	cfg.Vegetation.GrassDensity = 0.05
	cfg.Vegetation.TreeCount = 20
	cfg.Vegetation.DensityMapWidth = 64
	cfg.Vegetation.DensityMapHeight = 32
	return cfg
}

func TestNewWorld(t *testing.T) {
	w, err := NewWorld(testConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if w.PlanetMesh == nil || len(w.PlanetMesh.Vertices) == 0 {
		t.Fatal("planet mesh is empty")
	}
	if w.Grass.Count() == 0 {
		t.Error("no grass placed")
	}
	if w.Trees.Count() == 0 {
		t.Error("no trees placed")
	}

	// Player starts on the surface at the configured height.
	want := float64(testConfig().World.Radius + testConfig().Player.Height)
	if got := float64(w.Player.Position.Length()); stdmath.Abs(got-want) > 1e-3 {
		t.Errorf("player start distance = %v, want %v", got, want)
	}
}

func TestNewWorldInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.World.Radius = -1
	if _, err := NewWorld(cfg); err == nil {
		t.Error("expected error for negative radius")
	}

	cfg = testConfig()
	cfg.Vegetation.DensityMapWidth = 0
	if _, err := NewWorld(cfg); err == nil {
		t.Error("expected error for zero density map width")
	}
}

func TestWorldDeterministicForSeeds(t *testing.T) {
	a, err := NewWorld(testConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	b, err := NewWorld(testConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	if a.Grass.Count() != b.Grass.Count() {
		t.Errorf("grass counts differ: %d vs %d", a.Grass.Count(), b.Grass.Count())
	}
	if a.Trees.Count() != b.Trees.Count() {
		t.Errorf("tree counts differ: %d vs %d", a.Trees.Count(), b.Trees.Count())
	}
	for i := range a.Grass.Instances() {
		pa := a.Grass.Instances()[i].Position()
		pb := b.Grass.Instances()[i].Position()
		if pa != pb {
			t.Fatalf("grass instance %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestWorldSceneLayout(t *testing.T) {
	w, err := NewWorld(testConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	names := map[string]bool{}
	w.Scene.Traverse(func(_ scene.NodeID, node *scene.Node, _ math.Mat4) {
		names[node.Name] = true
	})
	for _, want := range []string{"planet", "road", "player"} {
		if !names[want] {
			t.Errorf("scene is missing node %q", want)
		}
	}

	// The player node tracks the controller.
	node, ok := w.Scene.Node(w.playerNode)
	if !ok {
		t.Fatal("player node missing")
	}
	if node.Transform.Translation != w.Player.Position {
		t.Errorf("player node at %v, controller at %v", node.Transform.Translation, w.Player.Position)
	}
}

func TestWorldStepKeepsConstraints(t *testing.T) {
	cfg := testConfig()
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	in := InputState{Forward: 1, Running: true}
	for i := 0; i < 300; i++ {
		w.Step(in, 1.0/60.0)
	}

	want := float64(cfg.World.Radius + cfg.Player.Height)
	if got := float64(w.Player.Position.Length()); stdmath.Abs(got-want) > 1e-3 {
		t.Errorf("player distance after walking = %v, want %v", got, want)
	}
	if d := w.Player.Forward.Dot(w.Player.Up); stdmath.Abs(float64(d)) > 1e-3 {
		t.Errorf("forward.up = %v, want ~0", d)
	}
}

func TestWorldStepClampsInput(t *testing.T) {
	w, err := NewWorld(testConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	// Oversized axes must behave like full deflection, not faster.
	w.Step(InputState{Forward: 100}, 1.0/60.0)
	if speed := w.Player.Velocity.Length(); speed > w.Player.Tuning.MoveSpeed {
		t.Errorf("one step reached speed %v, above max %v", speed, w.Player.Tuning.MoveSpeed)
	}
}

func TestInputNormalized(t *testing.T) {
	in := InputState{Forward: 3, Right: -2, Running: true}
	got := in.Normalized()
	if got.Forward != 1 || got.Right != -1 {
		t.Errorf("Normalized = %+v", got)
	}
	if !got.Running {
		t.Error("Normalized dropped Running")
	}
}
