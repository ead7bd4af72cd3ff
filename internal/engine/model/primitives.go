package model

import "github.com/Faultbox/orbis/pkg/math"

// Cube returns a unit cube centered at the origin with per-face normals.
func Cube() *Mesh {
	type face struct {
		normal math.Vec3
		// Corner order: BL, BR, TR, TL as seen facing the normal.
		corners [4]math.Vec3
	}

	h := float32(0.5)
	faces := []face{
		{math.Vec3{Z: 1}, [4]math.Vec3{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{math.Vec3{Z: -1}, [4]math.Vec3{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{math.Vec3{Y: 1}, [4]math.Vec3{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{math.Vec3{Y: -1}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
		{math.Vec3{X: 1}, [4]math.Vec3{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{math.Vec3{X: -1}, [4]math.Vec3{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	var vertices []Vertex
	var indices []uint16
	for _, f := range faces {
		base := uint16(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, Vertex{
				Position: c,
				Normal:   f.normal,
				TexCoord: uvs[i],
			})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return New(vertices, indices)
}

// Plane returns a flat quad in the XZ plane facing +Y.
func Plane(width, depth float32) *Mesh {
	hw := width / 2
	hd := depth / 2
	up := math.Vec3{Y: 1}

	vertices := []Vertex{
		{Position: math.Vec3{X: -hw, Y: 0, Z: -hd}, Normal: up, TexCoord: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: hw, Y: 0, Z: -hd}, Normal: up, TexCoord: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: hw, Y: 0, Z: hd}, Normal: up, TexCoord: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -hw, Y: 0, Z: hd}, Normal: up, TexCoord: math.Vec2{X: 0, Y: 1}},
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	return New(vertices, indices)
}
