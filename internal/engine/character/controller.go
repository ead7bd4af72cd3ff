// Package character implements walking on the surface of a spherical
// planet. The controller keeps its forward vector in the local tangent
// plane and its feet pinned to a fixed height above the surface.
package character

import (
	stdmath "math"

	"github.com/Faultbox/orbis/pkg/math"
)

// Tuning holds the movement parameters of a controller.
type Tuning struct {
	MoveSpeed     float32
	RunMultiplier float32
	RotationSpeed float32
	Acceleration  float32
	Deceleration  float32
	Height        float32
}

// DefaultTuning returns the stock movement feel.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:     5.0,
		RunMultiplier: 2.0,
		RotationSpeed: 2.0,
		Acceleration:  10.0,
		Deceleration:  15.0,
		Height:        1.0,
	}
}

// Controller is a surface-walking character. Position is kept at
// planetRadius+Height from the planet center, forward stays tangent to
// the sphere and up stays radial.
type Controller struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
	Velocity math.Vec3
	Tuning   Tuning
}

// New creates a controller at the given surface position. The initial
// forward is an arbitrary tangent direction.
func New(position math.Vec3, tuning Tuning) *Controller {
	up := position.Normalize()
	var forward math.Vec3
	if abs32(up.Y) > 0.9 {
		forward = math.Vec3{X: 1}
	} else {
		forward = (math.Vec3{Y: 1}).Cross(up).Normalize()
	}
	return &Controller{
		Position: position,
		Forward:  forward,
		Up:       up,
		Tuning:   tuning,
	}
}

// Update advances the controller by dt seconds. inputForward and
// inputRight are the movement axes in [-1,1], expressed relative to the
// character's current facing.
func (c *Controller) Update(inputForward, inputRight float32, running bool, dt float32, planetCenter math.Vec3, planetRadius float32) {
	c.Up = c.Position.Sub(planetCenter).Normalize()
	right := c.Forward.Cross(c.Up).Normalize()

	var desired math.Vec3
	if abs32(inputForward) > 0.01 || abs32(inputRight) > 0.01 {
		desired = c.Forward.Scale(inputForward).Add(right.Scale(inputRight))
		desired = desired.ProjectOnPlane(c.Up).Normalize()

		if desired.Length() > 0.1 {
			c.turnToward(desired, dt)
		}
	}

	speed := c.Tuning.MoveSpeed
	if running {
		speed *= c.Tuning.RunMultiplier
	}

	if desired.Length() > 0.1 {
		target := desired.Scale(speed)
		diff := target.Sub(c.Velocity)
		step := c.Tuning.Acceleration * dt
		if diff.Length() > step {
			c.Velocity = c.Velocity.Add(diff.Normalize().Scale(step))
		} else {
			c.Velocity = target
		}
	} else {
		step := c.Tuning.Deceleration * dt
		if c.Velocity.Length() > step {
			c.Velocity = c.Velocity.Sub(c.Velocity.Normalize().Scale(step))
		} else {
			c.Velocity = math.Vec3{}
		}
	}

	if c.Velocity.Length() > 0.01 {
		c.Position = c.Position.Add(c.Velocity.Scale(dt))

		fromCenter := c.Position.Sub(planetCenter)
		if dist := fromCenter.Length(); dist > 0 {
			want := planetRadius + c.Tuning.Height
			c.Position = planetCenter.Add(fromCenter.Scale(want / dist))
		}
	}

	// Keep forward tangent after the position changed.
	c.Forward = c.Forward.ProjectOnPlane(c.Up).Normalize()
}

// turnToward rotates forward toward the target direction at most
// RotationSpeed radians per second.
func (c *Controller) turnToward(target math.Vec3, dt float32) {
	dot := clamp32(c.Forward.Dot(target), -1, 1)
	angle := float32(stdmath.Acos(float64(dot)))
	if angle <= 0.01 {
		return
	}
	amount := c.Tuning.RotationSpeed * dt
	if amount > angle {
		amount = angle
	}
	axis := c.Forward.Cross(target).Normalize()
	c.Forward = c.Forward.RotateAround(axis, amount).Normalize()
}

// TransformVectors returns the position, forward and up of the character
// for camera and scene consumers.
func (c *Controller) TransformVectors() (position, forward, up math.Vec3) {
	return c.Position, c.Forward, c.Up
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
