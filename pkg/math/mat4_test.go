package math

import (
	gomath "math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	v := Vec3{1, 2, 3}
	got := m.TransformVec3(v)
	if got != v {
		t.Errorf("Identity().TransformVec3(%v) = %v, want %v", v, got, v)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformVec3(Vec3{0, 0, 0})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Translate.TransformVec3() = %v, want %v", got, want)
	}
}

func TestScaleMatrix(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformVec3(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Scale.TransformVec3() = %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale: scale applies to the already-translated point.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.TransformVec3(Vec3{0, 0, 0})
	want := Vec3{2, 0, 0}
	if got != want {
		t.Errorf("Mul().TransformVec3() = %v, want %v", got, want)
	}
}

func TestRotateAxis(t *testing.T) {
	m := RotateAxis(Vec3{0, 0, 1}, float32(gomath.Pi/2))
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if got.Distance(want) > 1e-6 {
		t.Errorf("RotateAxis.TransformVec3() = %v, want %v", got, want)
	}
}

func TestFromBasis(t *testing.T) {
	right := Vec3{1, 0, 0}
	up := Vec3{0, 1, 0}
	forward := Vec3{0, 0, 1}
	pos := Vec3{5, 6, 7}

	m := FromBasis(right, up, forward, pos)

	if got := m.Translation(); got != pos {
		t.Errorf("FromBasis translation = %v, want %v", got, pos)
	}
	if got := m.TransformVec3(Vec3{1, 0, 0}); got != (Vec3{6, 6, 7}) {
		t.Errorf("FromBasis local X = %v, want {6 6 7}", got)
	}
	if got := m.TransformDirection(Vec3{0, 1, 0}); got != up {
		t.Errorf("FromBasis local Y direction = %v, want %v", got, up)
	}
}

func TestLookAtForward(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	// The eye maps to the origin in view space.
	got := m.TransformVec3(eye)
	if got.Length() > 1e-5 {
		t.Errorf("LookAt eye in view space = %v, want origin", got)
	}

	// The look target lies on the negative Z axis in view space.
	tgt := m.TransformVec3(center)
	if tgt.Z >= 0 || gomath.Abs(float64(tgt.X)) > 1e-5 || gomath.Abs(float64(tgt.Y)) > 1e-5 {
		t.Errorf("LookAt target in view space = %v, want on -Z axis", tgt)
	}
}

func TestTransformToMatrix(t *testing.T) {
	tr := TransformIdentity()
	tr.Translation = Vec3{1, 2, 3}
	tr.Scale = Vec3{2, 2, 2}

	m := tr.ToMatrix()
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{3, 2, 3}
	if got.Distance(want) > 1e-6 {
		t.Errorf("Transform.ToMatrix().TransformVec3() = %v, want %v", got, want)
	}
}
