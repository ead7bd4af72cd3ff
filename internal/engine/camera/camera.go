// Package camera provides the view-side of surface locomotion: a
// free-look first-person camera and a spring-arm third-person follow
// camera, both aware of the local radial up of a spherical planet.
package camera

import (
	stdmath "math"

	"github.com/Faultbox/orbis/pkg/math"
)

// Settings tunes follow-camera behavior. Lag values are exponential
// smoothing rates; small values keep camera motion gentle.
type Settings struct {
	FOV              float32
	MaxRotationSpeed float32
	InvertX          bool
	InvertY          bool
	ArmLength        float32
	ElevationAngle   float32
	PositionLag      float32
	RotationLag      float32
}

// DefaultSettings returns a 90 degree FOV rig with an 8 unit arm raised
// 30 degrees above the character.
func DefaultSettings() Settings {
	return Settings{
		FOV:              stdmath.Pi / 2,
		MaxRotationSpeed: 2.0,
		ArmLength:        8.0,
		ElevationAngle:   0.523,
		PositionLag:      0.1,
		RotationLag:      0.15,
	}
}

// Camera is a first-person camera storing yaw and pitch relative to its
// current up vector, so it keeps working anywhere on the planet.
type Camera struct {
	position math.Vec3
	yaw      float32
	pitch    float32
	up       math.Vec3

	fovY        float32
	aspectRatio float32
	near        float32
	far         float32
}

// NewCamera creates a first-person camera looking from position at
// target.
func NewCamera(position, target math.Vec3, aspectRatio float32) *Camera {
	direction := target.Sub(position).Normalize()
	yaw := float32(stdmath.Atan2(float64(direction.Z), float64(direction.X)))
	pitch := float32(stdmath.Asin(float64(-direction.Y)))

	return &Camera{
		position:    position,
		yaw:         yaw,
		pitch:       pitch,
		up:          math.Vec3{Y: 1},
		fovY:        stdmath.Pi / 4,
		aspectRatio: aspectRatio,
		near:        0.1,
		far:         1000.0,
	}
}

// Forward derives the view direction from yaw/pitch in the frame of the
// current up vector.
func (c *Camera) Forward() math.Vec3 {
	worldUp := math.Vec3{Y: 1}
	var right math.Vec3
	if abs32(abs32(c.up.Dot(worldUp))-1) < 0.01 {
		// Up is (anti)parallel to world up, pick a fixed tangent.
		right = math.Vec3{X: 1}
	} else {
		right = worldUp.Cross(c.up).Normalize()
	}
	forwardFlat := c.up.Cross(right).Normalize()

	cosYaw := cos32(c.yaw)
	sinYaw := sin32(c.yaw)
	yawed := forwardFlat.Scale(cosYaw).Add(right.Scale(sinYaw))

	cosPitch := cos32(c.pitch)
	sinPitch := sin32(c.pitch)
	return yawed.Scale(cosPitch).Add(c.up.Scale(-sinPitch))
}

// Right returns the camera-space right direction.
func (c *Camera) Right() math.Vec3 {
	return c.up.Cross(c.Forward()).Normalize()
}

// Rotate applies look deltas. Pitch is clamped just short of vertical.
func (c *Camera) Rotate(yawDelta, pitchDelta float32) {
	c.yaw += yawDelta
	c.pitch = clamp32(c.pitch+pitchDelta, -stdmath.Pi/2+0.01, stdmath.Pi/2-0.01)
}

// MoveForward translates along the current view direction.
func (c *Camera) MoveForward(distance float32) {
	c.position = c.position.Add(c.Forward().Scale(distance))
}

// MoveRight translates along the camera right direction.
func (c *Camera) MoveRight(distance float32) {
	c.position = c.position.Add(c.Right().Scale(distance))
}

func (c *Camera) ViewMatrix() math.Mat4 {
	target := c.position.Add(c.Forward())
	return math.LookAt(c.position, target, c.up)
}

func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.fovY, c.aspectRatio, c.near, c.far)
}

func (c *Camera) ViewProjectionMatrix() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

func (c *Camera) Position() math.Vec3          { return c.position }
func (c *Camera) SetPosition(p math.Vec3)      { c.position = p }
func (c *Camera) UpVector() math.Vec3          { return c.up }
func (c *Camera) SetUpVector(up math.Vec3)     { c.up = up.Normalize() }
func (c *Camera) SetAspectRatio(ratio float32) { c.aspectRatio = ratio }

// SpringArm keeps the follow distance of a third-person camera,
// shortened when something blocks the line of sight.
type SpringArm struct {
	CurrentLength   float32
	TargetLength    float32
	LengthSmoothing float32
}

// NewSpringArm returns an arm at rest at the given length.
func NewSpringArm(length float32) *SpringArm {
	return &SpringArm{
		CurrentLength:   length,
		TargetLength:    length,
		LengthSmoothing: 0.2,
	}
}

// Update eases the current length toward the target.
func (a *SpringArm) Update(dt float32) {
	k := 1 - exp32(-a.LengthSmoothing*dt)
	a.CurrentLength += (a.TargetLength - a.CurrentLength) * k
}

// SetCollisionDistance shortens the arm when an obstruction is closer
// than the current length.
func (a *SpringArm) SetCollisionDistance(distance float32) {
	if distance < a.CurrentLength {
		a.TargetLength = distance
	} else {
		a.TargetLength = a.CurrentLength
	}
}

// Reset restores the unobstructed arm length.
func (a *SpringArm) Reset(baseLength float32) {
	a.TargetLength = baseLength
}

// ThirdPerson is a follow camera on a spring arm. Yaw, pitch and
// position are all smoothed independently to keep motion gentle.
type ThirdPerson struct {
	CharacterPosition math.Vec3
	CharacterForward  math.Vec3
	CharacterUp       math.Vec3

	CameraPosition       math.Vec3
	targetCameraPosition math.Vec3

	Yaw         float32
	Pitch       float32
	targetYaw   float32
	targetPitch float32

	Arm      *SpringArm
	Settings Settings

	aspectRatio float32
	near        float32
	far         float32
}

// NewThirdPerson creates a follow camera behind the character at the
// default elevation.
func NewThirdPerson(characterPosition math.Vec3, aspectRatio float32) *ThirdPerson {
	settings := DefaultSettings()
	characterUp := characterPosition.Normalize()
	characterForward := math.Vec3{X: 1}
	cameraPosition := characterPosition.
		Sub(characterForward.Scale(settings.ArmLength)).
		Add(characterUp.Scale(sin32(settings.ElevationAngle) * settings.ArmLength))

	return &ThirdPerson{
		CharacterPosition:    characterPosition,
		CharacterForward:     characterForward,
		CharacterUp:          characterUp,
		CameraPosition:       cameraPosition,
		targetCameraPosition: cameraPosition,
		Pitch:                settings.ElevationAngle,
		targetPitch:          settings.ElevationAngle,
		Arm:                  NewSpringArm(settings.ArmLength),
		Settings:             settings,
		aspectRatio:          aspectRatio,
		near:                 0.1,
		far:                  1000.0,
	}
}

// Update advances arm length, rotation smoothing and position smoothing
// by dt seconds.
func (t *ThirdPerson) Update(dt float32) {
	t.Arm.Update(dt)

	rotK := 1 - exp32(-t.Settings.RotationLag*dt)
	t.Yaw += (t.targetYaw - t.Yaw) * rotK
	t.Pitch += (t.targetPitch - t.Pitch) * rotK

	horizontal := cos32(t.Pitch) * t.Arm.CurrentLength
	vertical := sin32(t.Pitch) * t.Arm.CurrentLength

	right := t.CharacterForward.Cross(t.CharacterUp).Normalize()
	forwardFlat := t.CharacterUp.Cross(right).Normalize()
	yawed := forwardFlat.Scale(cos32(t.Yaw)).Add(right.Scale(sin32(t.Yaw)))

	t.targetCameraPosition = t.CharacterPosition.
		Sub(yawed.Scale(horizontal)).
		Add(t.CharacterUp.Scale(vertical))

	posK := 1 - exp32(-t.Settings.PositionLag*dt)
	diff := t.targetCameraPosition.Sub(t.CameraPosition)
	t.CameraPosition = t.CameraPosition.Add(diff.Scale(posK))
}

// Rotate applies look deltas, clamping per-call yaw change to the
// configured rotation speed and keeping pitch off true vertical.
func (t *ThirdPerson) Rotate(yawDelta, pitchDelta float32) {
	yawMult := float32(1)
	if t.Settings.InvertX {
		yawMult = -1
	}
	pitchMult := float32(1)
	if t.Settings.InvertY {
		pitchMult = -1
	}

	// Rotation speed clamp assumes a 60Hz input cadence.
	maxDelta := t.Settings.MaxRotationSpeed * 0.016
	t.targetYaw += clamp32(yawDelta*yawMult, -maxDelta, maxDelta)
	t.targetPitch = clamp32(t.targetPitch+pitchDelta*pitchMult, -0.1, stdmath.Pi/2-0.1)
}

// SetCharacterTransform feeds the followed character's frame into the
// camera rig.
func (t *ThirdPerson) SetCharacterTransform(position, forward, up math.Vec3) {
	t.CharacterPosition = position
	t.CharacterForward = forward.Normalize()
	t.CharacterUp = up.Normalize()
}

func (t *ThirdPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(t.CameraPosition, t.CharacterPosition, t.CharacterUp)
}

func (t *ThirdPerson) ProjectionMatrix() math.Mat4 {
	return math.Perspective(t.Settings.FOV, t.aspectRatio, t.near, t.far)
}

func (t *ThirdPerson) ViewProjectionMatrix() math.Mat4 {
	return t.ProjectionMatrix().Mul(t.ViewMatrix())
}

// ForwardDirection points from the camera to the character.
func (t *ThirdPerson) ForwardDirection() math.Vec3 {
	return t.CharacterPosition.Sub(t.CameraPosition).Normalize()
}

// RightDirection is camera right in the character's up frame.
func (t *ThirdPerson) RightDirection() math.Vec3 {
	return t.ForwardDirection().Cross(t.CharacterUp).Normalize()
}

func (t *ThirdPerson) SetAspectRatio(ratio float32) { t.aspectRatio = ratio }

// System is the active camera mode, either free-look first-person or
// the spring-arm follow rig.
type System struct {
	first *Camera
	third *ThirdPerson
}

// NewFirstPersonSystem wraps a first-person camera.
func NewFirstPersonSystem(position, target math.Vec3, aspectRatio float32) *System {
	return &System{first: NewCamera(position, target, aspectRatio)}
}

// NewThirdPersonSystem wraps a follow camera.
func NewThirdPersonSystem(characterPosition math.Vec3, aspectRatio float32) *System {
	return &System{third: NewThirdPerson(characterPosition, aspectRatio)}
}

func (s *System) ViewMatrix() math.Mat4 {
	if s.third != nil {
		return s.third.ViewMatrix()
	}
	return s.first.ViewMatrix()
}

func (s *System) ProjectionMatrix() math.Mat4 {
	if s.third != nil {
		return s.third.ProjectionMatrix()
	}
	return s.first.ProjectionMatrix()
}

func (s *System) ViewProjectionMatrix() math.Mat4 {
	if s.third != nil {
		return s.third.ViewProjectionMatrix()
	}
	return s.first.ViewProjectionMatrix()
}

func (s *System) Position() math.Vec3 {
	if s.third != nil {
		return s.third.CameraPosition
	}
	return s.first.Position()
}

func (s *System) SetAspectRatio(ratio float32) {
	if s.third != nil {
		s.third.SetAspectRatio(ratio)
		return
	}
	s.first.SetAspectRatio(ratio)
}

func (s *System) Update(dt float32) {
	if s.third != nil {
		s.third.Update(dt)
	}
}

// ThirdPersonCamera exposes the follow rig when that mode is active.
func (s *System) ThirdPersonCamera() (*ThirdPerson, bool) {
	return s.third, s.third != nil
}

// FirstPersonCamera exposes the free-look camera when that mode is
// active.
func (s *System) FirstPersonCamera() (*Camera, bool) {
	return s.first, s.first != nil
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

func sin32(v float32) float32 { return float32(stdmath.Sin(float64(v))) }
func cos32(v float32) float32 { return float32(stdmath.Cos(float64(v))) }
func exp32(v float32) float32 { return float32(stdmath.Exp(float64(v))) }
