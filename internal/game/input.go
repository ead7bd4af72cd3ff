package game

// InputState is the per-frame input contract consumed by the
// simulation. Callers fill it from whatever device layer they own; the
// core never reads raw input devices.
type InputState struct {
	// Forward and Right are normalized movement axes in [-1, 1],
	// relative to the character's facing.
	Forward float32
	Right   float32
	// Running requests the run speed multiplier.
	Running bool
	// YawDelta and PitchDelta are look deltas in radians for this
	// frame.
	YawDelta   float32
	PitchDelta float32
}

// clampAxis keeps a movement axis inside [-1, 1].
func clampAxis(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalized returns a copy with both movement axes clamped.
func (s InputState) Normalized() InputState {
	s.Forward = clampAxis(s.Forward)
	s.Right = clampAxis(s.Right)
	return s
}
