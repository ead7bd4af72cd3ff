// Package gravity provides radial gravity queries for a spherical planet.
package gravity

import "github.com/Faultbox/orbis/pkg/math"

// System is a stateless query object: gravity and up are pure functions of
// a queried position.
type System struct {
	PlanetCenter math.Vec3
	Strength     float32
}

// New returns a gravity system for a planet at center with the given
// strength.
func New(planetCenter math.Vec3, strength float32) *System {
	return &System{PlanetCenter: planetCenter, Strength: strength}
}

// Up returns the radial up direction at a position. At the exact center
// there is no radial direction; world up is returned so callers never see
// a NaN.
func (s *System) Up(position math.Vec3) math.Vec3 {
	fromCenter := position.Sub(s.PlanetCenter)
	if fromCenter.Length() == 0 {
		return math.Vec3{Y: 1}
	}
	return fromCenter.Normalize()
}

// Gravity returns the gravity vector at a position: toward the planet
// center, scaled by strength. Zero at the exact center.
func (s *System) Gravity(position math.Vec3) math.Vec3 {
	toCenter := s.PlanetCenter.Sub(position)
	if toCenter.Length() == 0 {
		return math.Vec3{}
	}
	return toCenter.Normalize().Scale(s.Strength)
}

// SurfaceDistance returns the signed height of a position above the
// surface of a planet with the given radius.
func (s *System) SurfaceDistance(position math.Vec3, planetRadius float32) float32 {
	return position.Sub(s.PlanetCenter).Length() - planetRadius
}
