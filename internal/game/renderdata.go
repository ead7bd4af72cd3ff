package game

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/internal/engine/vegetation"
	"github.com/Faultbox/orbis/internal/logger"
	"github.com/Faultbox/orbis/internal/viewer"
	"github.com/Faultbox/orbis/pkg/math"
)

func viewerLogger() *zap.Logger {
	if logger.Log != nil {
		return logger.Log
	}
	return zap.NewNop()
}

// grassTiers are the LOD levels published to viewers, keyed by their
// wire names in worldFrame.
var grassTiers = []vegetation.LODLevel{
	vegetation.LODFull,
	vegetation.LODReduced,
	vegetation.LODBillboard,
	vegetation.LODFade,
}

// worldMeshes collects the static geometry sent to each viewer once.
func worldMeshes(w *World) []viewer.MeshData {
	meshes := []viewer.MeshData{
		meshData("planet", w.PlanetMesh),
		meshData("road", w.Road.Mesh()),
		meshData("tree", w.Trees.Mesh()),
	}
	for _, tier := range grassTiers {
		meshes = append(meshes, meshData("grass_"+tier.String(), w.Grass.Mesh(tier)))
	}
	return meshes
}

// worldFrame snapshots the dynamic state: player frame plus per-tier
// vegetation instances.
func worldFrame(w *World) viewer.FrameData {
	pos, forward, up := w.Player.TransformVectors()

	tiers := make(map[string][]viewer.InstanceData, len(grassTiers))
	for _, tier := range grassTiers {
		tiers[tier.String()] = instanceData(w.Grass.InstancesByLOD(tier))
	}

	return viewer.FrameData{
		Player: viewer.PlayerData{
			Position: vec3Array(pos),
			Forward:  vec3Array(forward),
			Up:       vec3Array(up),
		},
		GrassTiers: tiers,
		Trees:      instanceData(w.Trees.RenderInstances()),
	}
}

func meshData(name string, mesh *model.Mesh) viewer.MeshData {
	data := viewer.MeshData{
		Name:      name,
		ID:        uint64(mesh.ID),
		Positions: make([][3]float32, len(mesh.Vertices)),
		Normals:   make([][3]float32, len(mesh.Vertices)),
		UVs:       make([][2]float32, len(mesh.Vertices)),
		Indices:   mesh.Indices,
	}
	for i, v := range mesh.Vertices {
		data.Positions[i] = vec3Array(v.Position)
		data.Normals[i] = vec3Array(v.Normal)
		data.UVs[i] = [2]float32{v.TexCoord.X, v.TexCoord.Y}
	}
	return data
}

func instanceData(instances []vegetation.RenderInstance) []viewer.InstanceData {
	out := make([]viewer.InstanceData, len(instances))
	for i, inst := range instances {
		out[i] = viewer.InstanceData{
			Transform:    [16]float32(inst.Transform),
			Color:        vec3Array(inst.ColorVariation),
			FadeAlpha:    inst.FadeAlpha,
			TextureIndex: inst.TextureIndex,
		}
	}
	return out
}

func vec3Array(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
