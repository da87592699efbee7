package core

// RawKeys is the held-state of the physical controls as sampled by the
// platform layer. It carries no edge information; edges are derived by the
// Sampler so that game code never compares consecutive hardware reads itself.
type RawKeys struct {
	Left  bool
	Right bool
	Up    bool
	Fire  bool
	Pause bool
}

// InputState is the immutable per-tick input snapshot handed to game
// controllers. Held booleans report level state; the *Pressed booleans fire
// only on the tick a key transitions from released to held.
type InputState struct {
	Left     bool
	Right    bool
	Up       bool
	FireHeld bool

	JumpPressed  bool
	FirePressed  bool
	PausePressed bool
}

// Sampler derives edge-detected InputState values from successive RawKeys
// samples. Exactly one Sample call is expected per simulation tick:
// pressed = current && !previous.
type Sampler struct {
	prevUp    bool
	prevFire  bool
	prevPause bool
}

// Sample computes the InputState for this tick and records the raw state for
// the next tick's edge detection.
func (s *Sampler) Sample(raw RawKeys) InputState {
	state := InputState{
		Left:         raw.Left,
		Right:        raw.Right,
		Up:           raw.Up,
		FireHeld:     raw.Fire,
		JumpPressed:  raw.Up && !s.prevUp,
		FirePressed:  raw.Fire && !s.prevFire,
		PausePressed: raw.Pause && !s.prevPause,
	}

	s.prevUp = raw.Up
	s.prevFire = raw.Fire
	s.prevPause = raw.Pause

	return state
}

// Reset clears the remembered previous-tick state, so the next held key
// registers as a fresh press. Used when entering a new screen.
func (s *Sampler) Reset() {
	s.prevUp = false
	s.prevFire = false
	s.prevPause = false
}
