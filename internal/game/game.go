// Package game implements the frame-stepped simulation loop and world
// assembly.
//
// Each frame runs a fixed ordering: input, locomotion, LOD
// classification, render-data handoff. The loop owns no input devices;
// callers provide an InputFunc.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Faultbox/orbis/internal/config"
	"github.com/Faultbox/orbis/internal/engine/camera"
	"github.com/Faultbox/orbis/internal/viewer"
)

// InputFunc supplies the input state for one frame.
type InputFunc func() InputState

// Game drives the simulation.
type Game struct {
	cfg    *config.Config
	world  *World
	camera *camera.ThirdPerson
	viewer *viewer.Server
	input  InputFunc

	// publishEvery throttles viewer frames; the simulation steps at
	// 60Hz but viewers only need a fraction of that.
	publishEvery int
}

// New assembles a game from configuration. input may be nil, in which
// case the character stands still.
func New(cfg *config.Config, input InputFunc) (*Game, error) {
	slog.Info("initializing world",
		"radius", cfg.World.Radius,
		"subdivision", cfg.World.SubdivisionLevel,
	)

	world, err := NewWorld(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	cam := camera.NewThirdPerson(world.Player.Position, 16.0/9.0)
	cam.Settings.FOV = cfg.Camera.FOV
	cam.Settings.ArmLength = cfg.Camera.ArmLength
	cam.Settings.ElevationAngle = cfg.Camera.ElevationAngle
	cam.Settings.PositionLag = cfg.Camera.PositionLag
	cam.Settings.RotationLag = cfg.Camera.RotationLag

	if input == nil {
		input = func() InputState { return InputState{} }
	}

	g := &Game{
		cfg:          cfg,
		world:        world,
		camera:       cam,
		input:        input,
		publishEvery: 6, // 10 snapshots per second at 60Hz
	}

	if cfg.Viewer.Enabled {
		g.viewer = viewer.New(cfg.Viewer.Listen, viewerLogger())
		g.viewer.SetMeshes(worldMeshes(world))
	}

	return g, nil
}

// World exposes the assembled world.
func (g *Game) World() *World { return g.world }

// Camera exposes the follow camera.
func (g *Game) Camera() *camera.ThirdPerson { return g.camera }

// Step advances the simulation one frame.
func (g *Game) Step(in InputState, dt float32) {
	// 1. Input feeds locomotion and look.
	g.world.Step(in, dt)
	if in.YawDelta != 0 || in.PitchDelta != 0 {
		g.camera.Rotate(in.YawDelta, in.PitchDelta)
	}

	// 2. Camera follows the updated character frame.
	pos, forward, up := g.world.Player.TransformVectors()
	g.camera.SetCharacterTransform(pos, forward, up)
	g.camera.Update(dt)
}

// Run steps the simulation at 60Hz until the context is canceled.
func (g *Game) Run(ctx context.Context) error {
	if g.viewer != nil {
		go func() {
			if err := g.viewer.ListenAndServe(ctx); err != nil {
				slog.Error("viewer server stopped", "error", err)
			}
		}()
		defer g.viewer.Close()
	}

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	slog.Info("starting simulation loop")

	lastTime := time.Now()
	frameCount := 0
	totalFrames := 0
	fpsTimer := time.Now()

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopped")
			return nil
		case now := <-ticker.C:
			dt := float32(now.Sub(lastTime).Seconds())
			lastTime = now

			g.Step(g.input(), dt)

			totalFrames++
			if g.viewer != nil && totalFrames%g.publishEvery == 0 {
				g.viewer.PublishFrame(worldFrame(g.world))
			}

			frameCount++
			if time.Since(fpsTimer) >= time.Second {
				slog.Debug("fps", "count", frameCount, "dt", fmt.Sprintf("%.2fms", dt*1000))
				frameCount = 0
				fpsTimer = time.Now()
			}
		}
	}
}
