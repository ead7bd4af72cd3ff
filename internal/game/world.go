package game

import (
	"fmt"
	"log/slog"

	"github.com/Faultbox/orbis/internal/config"
	"github.com/Faultbox/orbis/internal/engine/character"
	"github.com/Faultbox/orbis/internal/engine/density"
	"github.com/Faultbox/orbis/internal/engine/geodesic"
	"github.com/Faultbox/orbis/internal/engine/gravity"
	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/internal/engine/road"
	"github.com/Faultbox/orbis/internal/engine/scene"
	"github.com/Faultbox/orbis/internal/engine/vegetation"
	"github.com/Faultbox/orbis/pkg/math"
)

// World is the assembled simulation: planet geometry, vegetation, road,
// gravity and the player walking on it all.
type World struct {
	Planet     *geodesic.SphericalWorld
	PlanetMesh *model.Mesh
	Density    *density.Map
	Road       *road.Road
	Grass      *vegetation.Grass
	Trees      *vegetation.Trees
	Gravity    *gravity.System
	Player     *character.Controller
	Scene      *scene.Scene

	playerNode scene.NodeID
}

// NewWorld builds a world from configuration. Generation is
// deterministic for fixed seeds.
func NewWorld(cfg *config.Config) (*World, error) {
	planet := geodesic.New(cfg.World.Radius, cfg.World.SubdivisionLevel)
	planetMesh, err := planet.GenerateMesh()
	if err != nil {
		return nil, fmt.Errorf("failed to generate planet mesh: %w", err)
	}
	slog.Info("planet mesh generated",
		"radius", cfg.World.Radius,
		"subdivision", cfg.World.SubdivisionLevel,
		"vertices", len(planetMesh.Vertices),
		"triangles", planetMesh.TriangleCount(),
	)

	densityMap, err := density.GenerateNatural(cfg.Vegetation.DensityMapWidth, cfg.Vegetation.DensityMapHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to generate density map: %w", err)
	}

	span := road.Span{StartAngle: cfg.Road.StartAngle, EndAngle: cfg.Road.EndAngle}
	roadMesh, err := road.New(cfg.World.Radius, span, cfg.Road.Width)
	if err != nil {
		return nil, fmt.Errorf("failed to generate road: %w", err)
	}

	grass, err := vegetation.NewGrass(cfg.World.Radius, cfg.Vegetation.GrassDensity, densityMap, cfg.Vegetation.GrassSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to place grass: %w", err)
	}
	trees, err := vegetation.NewTrees(cfg.World.Radius, cfg.Vegetation.TreeCount, span, cfg.Vegetation.EquatorialClearing, cfg.Vegetation.TreeSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to place trees: %w", err)
	}
	slog.Info("vegetation placed", "grass", grass.Count(), "trees", trees.Count())

	grav := gravity.New(math.Vec3{}, cfg.World.GravityStrength)

	start := math.Vec3{Y: cfg.World.Radius + cfg.Player.Height}
	player := character.New(start, character.Tuning{
		MoveSpeed:     cfg.Player.MoveSpeed,
		RunMultiplier: cfg.Player.RunMultiplier,
		RotationSpeed: cfg.Player.RotationSpeed,
		Acceleration:  cfg.Player.Acceleration,
		Deceleration:  cfg.Player.Deceleration,
		Height:        cfg.Player.Height,
	})

	w := &World{
		Planet:     planet,
		PlanetMesh: planetMesh,
		Density:    densityMap,
		Road:       roadMesh,
		Grass:      grass,
		Trees:      trees,
		Gravity:    grav,
		Player:     player,
	}
	w.buildScene()
	return w, nil
}

// buildScene assembles the static object graph: planet at the root,
// road and player under it.
func (w *World) buildScene() {
	s := scene.New()
	planet := s.AddNode("planet", w.PlanetMesh)
	if _, err := s.AddChild(planet, "road", w.Road.Mesh()); err != nil {
		slog.Warn("failed to attach road node", "error", err)
	}
	playerNode, err := s.AddChild(planet, "player", nil)
	if err != nil {
		slog.Warn("failed to attach player node", "error", err)
	}
	w.Scene = s
	w.playerNode = playerNode
	w.syncPlayerNode()
}

// syncPlayerNode copies the controller frame into the scene node.
func (w *World) syncPlayerNode() {
	node, ok := w.Scene.Node(w.playerNode)
	if !ok {
		return
	}
	pos, forward, up := w.Player.TransformVectors()
	node.Transform.Translation = pos
	right := forward.Cross(up).Normalize()
	node.Transform.Rotation = math.QuatFromBasis(right, up, forward)
}

// Step advances the player by dt seconds under the given input and
// refreshes the grass LOD classification from the player position.
func (w *World) Step(in InputState, dt float32) {
	in = in.Normalized()
	w.Player.Update(in.Forward, in.Right, in.Running, dt, w.Gravity.PlanetCenter, w.Planet.Radius)
	w.syncPlayerNode()
	w.Grass.Update(w.Player.Position)
}
