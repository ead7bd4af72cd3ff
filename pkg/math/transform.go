package math

// Transform is a translation + rotation + scale triple that composes into
// a Mat4. Scale is uniform per axis.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// TransformIdentity returns a transform that maps every point to itself.
func TransformIdentity() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// ToMatrix composes the transform as translate * rotate * scale.
func (t Transform) ToMatrix() Mat4 {
	m := t.Rotation.ToMat4()
	s := t.Scale

	// Fold the scale into the rotation columns, then set translation.
	m[0] *= s.X
	m[1] *= s.X
	m[2] *= s.X
	m[4] *= s.Y
	m[5] *= s.Y
	m[6] *= s.Y
	m[8] *= s.Z
	m[9] *= s.Z
	m[10] *= s.Z

	m[12] = t.Translation.X
	m[13] = t.Translation.Y
	m[14] = t.Translation.Z
	return m
}
