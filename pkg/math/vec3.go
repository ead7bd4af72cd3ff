// Package math provides math types and functions for game development.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector. A zero vector normalizes to zero, never NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp returns the linear interpolation between v and other at t.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		v.X + t*(other.X-v.X),
		v.Y + t*(other.Y-v.Y),
		v.Z + t*(other.Z-v.Z),
	}
}

// ProjectOnPlane returns v projected onto the plane with the given unit normal.
func (v Vec3) ProjectOnPlane(normal Vec3) Vec3 {
	return v.Sub(normal.Scale(v.Dot(normal)))
}

// RotateAround rotates v about a unit axis by angle radians using
// Rodrigues' rotation formula.
func (v Vec3) RotateAround(axis Vec3, angle float32) Vec3 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))

	// v*cos + (axis x v)*sin + axis*(axis.v)*(1-cos)
	return v.Scale(c).
		Add(axis.Cross(v).Scale(s)).
		Add(axis.Scale(axis.Dot(v) * (1 - c)))
}

// AngleBetween returns the angle in radians between v and other.
func (v Vec3) AngleBetween(other Vec3) float32 {
	d := v.Normalize().Dot(other.Normalize())
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return float32(math.Acos(float64(d)))
}
