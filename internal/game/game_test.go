package game

import (
	"context"
	stdmath "math"
	"testing"
	"time"

	"github.com/Faultbox/orbis/pkg/math"
)

func TestNewGame(t *testing.T) {
	g, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if g.World() == nil {
		t.Fatal("game has no world")
	}
	if g.Camera() == nil {
		t.Fatal("game has no camera")
	}

	cfg := testConfig()
	if g.Camera().Settings.ArmLength != cfg.Camera.ArmLength {
		t.Errorf("camera arm = %v, want %v", g.Camera().Settings.ArmLength, cfg.Camera.ArmLength)
	}
}

func TestGameStepCameraFollows(t *testing.T) {
	g, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := InputState{Forward: 1, Running: true}
	for i := 0; i < 300; i++ {
		g.Step(in, 1.0/60.0)
	}

	// After walking, the camera rig tracks the character frame.
	if g.Camera().CharacterPosition != g.World().Player.Position {
		t.Errorf("camera tracks %v, player at %v", g.Camera().CharacterPosition, g.World().Player.Position)
	}

	// And the camera itself has followed the character around the
	// planet.
	dist := g.Camera().CameraPosition.Sub(g.World().Player.Position).Length()
	if dist > 3*g.Camera().Settings.ArmLength {
		t.Errorf("camera lagged %v units behind, arm is %v", dist, g.Camera().Settings.ArmLength)
	}
}

func TestGameStepLookInput(t *testing.T) {
	g, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	before := g.Camera().Pitch
	for i := 0; i < 200; i++ {
		g.Step(InputState{PitchDelta: 0.01}, 1.0/60.0)
	}
	if g.Camera().Pitch <= before {
		t.Error("pitch input had no effect")
	}
	limit := stdmath.Pi/2 - 0.1
	if float64(g.Camera().Pitch) > limit+1e-4 {
		t.Errorf("pitch %v exceeds clamp %v", g.Camera().Pitch, limit)
	}
}

func TestGameStepUpdatesGrassLOD(t *testing.T) {
	g, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.Step(InputState{}, 1.0/60.0)

	total := 0
	for _, tier := range grassTiers {
		total += len(g.World().Grass.InstancesByLOD(tier))
	}
	// Instances beyond the fade distance are culled, so the tiers hold
	// at most every instance.
	if total > g.World().Grass.Count() {
		t.Errorf("tiers hold %d instances, world has %d", total, g.World().Grass.Count())
	}
}

func TestGameRunStopsOnCancel(t *testing.T) {
	g, err := New(testConfig(), func() InputState {
		return InputState{Forward: 1}
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// The scripted input moved the character off its spawn.
	cfg := testConfig()
	spawn := math.Vec3{Y: cfg.World.Radius + cfg.Player.Height}
	if g.World().Player.Position == spawn && g.World().Player.Velocity.Length() == 0 {
		t.Error("loop never advanced the character")
	}
}
