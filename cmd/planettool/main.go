// planettool is a CLI utility for inspecting and exporting generated
// planet data: meshes, density maps and vegetation placements.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/orbis/internal/engine/density"
	"github.com/Faultbox/orbis/internal/engine/geodesic"
	"github.com/Faultbox/orbis/internal/engine/model"
	"github.com/Faultbox/orbis/internal/engine/road"
	"github.com/Faultbox/orbis/internal/engine/vegetation"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "mesh":
		cmdMesh(args)
	case "density":
		cmdDensity(args)
	case "vegetation", "veg":
		cmdVegetation(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`planettool - planet generation inspection utility

Usage:
  planettool <command> [options]

Commands:
  info [-radius R] [-level N]               Show mesh statistics per subdivision level
  mesh [-radius R] [-level N] <out.obj>     Export the planet mesh as Wavefront OBJ
  density [-width W] [-height H] <out.pgm>  Export the natural density map as PGM
  vegetation [-radius R] [-grass D] [-trees N] <out.csv>
                                            Export vegetation placements as CSV

Examples:
  planettool info -level 4
  planettool mesh -radius 50 -level 4 planet.obj
  planettool density -width 256 -height 128 density.pgm
  planettool vegetation -radius 50 -grass 0.5 -trees 200 vegetation.csv`)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	radius := fs.Float64("radius", 50, "Planet radius")
	level := fs.Int("level", -1, "Subdivision level (-1 = all levels)")
	fs.Parse(args)

	lo, hi := 0, geodesic.MaxSubdivisionLevel
	if *level >= 0 {
		lo, hi = *level, *level
	}

	fmt.Printf("Planet radius: %.2f\n\n", *radius)
	fmt.Printf("%-6s %-10s %-10s %-10s\n", "level", "vertices", "indices", "triangles")
	for l := lo; l <= hi; l++ {
		mesh, err := geodesic.New(float32(*radius), l).GenerateMesh()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%-6d %-10d %-10d %-10d\n", l, len(mesh.Vertices), len(mesh.Indices), mesh.TriangleCount())
	}
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	radius := fs.Float64("radius", 50, "Planet radius")
	level := fs.Int("level", 4, "Subdivision level")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: planettool mesh [-radius R] [-level N] <out.obj>")
		os.Exit(1)
	}

	mesh, err := geodesic.New(float32(*radius), *level).GenerateMesh()
	if err != nil {
		fatal(err)
	}
	if err := writeOBJ(fs.Arg(0), mesh); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s: %d vertices, %d triangles\n", fs.Arg(0), len(mesh.Vertices), mesh.TriangleCount())
}

func cmdDensity(args []string) {
	fs := flag.NewFlagSet("density", flag.ExitOnError)
	width := fs.Int("width", 256, "Map width")
	height := fs.Int("height", 128, "Map height")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: planettool density [-width W] [-height H] <out.pgm>")
		os.Exit(1)
	}

	m, err := density.GenerateNatural(*width, *height)
	if err != nil {
		fatal(err)
	}
	if err := writePGM(fs.Arg(0), m); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s: %dx%d\n", fs.Arg(0), *width, *height)
}

func cmdVegetation(args []string) {
	fs := flag.NewFlagSet("vegetation", flag.ExitOnError)
	radius := fs.Float64("radius", 50, "Planet radius")
	grassDensity := fs.Float64("grass", 0.5, "Grass density (instances per unit area)")
	treeCount := fs.Int("trees", 200, "Tree count")
	grassSeed := fs.Int64("grass-seed", 42, "Grass placement seed")
	treeSeed := fs.Int64("tree-seed", 123, "Tree placement seed")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: planettool vegetation [options] <out.csv>")
		os.Exit(1)
	}

	densityMap, err := density.GenerateNatural(256, 128)
	if err != nil {
		fatal(err)
	}
	grass, err := vegetation.NewGrass(float32(*radius), float32(*grassDensity), densityMap, *grassSeed)
	if err != nil {
		fatal(err)
	}
	trees, err := vegetation.NewTrees(float32(*radius), *treeCount, road.Span{EndAngle: 1.5707964}, 2.5, *treeSeed)
	if err != nil {
		fatal(err)
	}

	if err := writeCSV(fs.Arg(0), grass, trees); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %s: %d grass, %d trees\n", fs.Arg(0), grass.Count(), trees.Count())
}

func writeOBJ(path string, mesh *model.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# exported by planettool")
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(w, "vt %g %g\n", v.TexCoord.X, v.TexCoord.Y)
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		// OBJ indices are 1-based.
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return w.Flush()
}

func writePGM(path string, m *density.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	width, height := m.Dimensions()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "P5\n%d %d\n255\n", width, height)
	if _, err := w.Write(m.TextureData()); err != nil {
		return err
	}
	return w.Flush()
}

func writeCSV(path string, grass *vegetation.Grass, trees *vegetation.Trees) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "kind,x,y,z,texture")
	for _, inst := range grass.Instances() {
		p := inst.Position()
		fmt.Fprintf(w, "grass,%g,%g,%g,%d\n", p.X, p.Y, p.Z, inst.TextureIndex)
	}
	for _, inst := range trees.Instances() {
		p := inst.Position()
		fmt.Fprintf(w, "tree,%g,%g,%g,%d\n", p.X, p.Y, p.Z, inst.TextureIndex)
	}
	return w.Flush()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
