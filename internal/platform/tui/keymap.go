package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-arcade/cavern/internal/core"
)

// holdTicks is how many simulation ticks a directional key stays "held" after
// its last key event. Terminals deliver discrete key events with an
// auto-repeat gap of roughly 30-35ms once repeat kicks in, plus an initial
// delay of up to ~500ms. The window has to bridge both so that a physically
// held key reads as continuously held by the sampler.
const holdTicks = 12

// KeyTracker reconstructs held-key state from terminal key events. Terminals
// report presses, not releases, so each directional event arms a countdown
// that Decay ticks down; the key reads as held while its countdown is
// positive. One-shot keys (fire edge, pause) are latched until the next Raw
// call consumes them.
type KeyTracker struct {
	left  int
	right int
	up    int
	fire  int

	pauseLatch bool
}

// NewKeyTracker creates a tracker with all keys released.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{}
}

// HandleKey feeds a key message into the tracker. Returns true for quit
// requests, which the model handles itself.
func (kt *KeyTracker) HandleKey(msg tea.KeyMsg) (isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case "a", "left":
		kt.left = holdTicks
		kt.right = 0
	case "d", "right":
		kt.right = holdTicks
		kt.left = 0
	case "w", "up", "k":
		kt.up = holdTicks
	case " ", "z":
		kt.fire = holdTicks
	case "p", "esc":
		kt.pauseLatch = true
	}
	return false
}

// Decay advances the tracker by one simulation tick, expiring hold windows.
func (kt *KeyTracker) Decay() {
	if kt.left > 0 {
		kt.left--
	}
	if kt.right > 0 {
		kt.right--
	}
	if kt.up > 0 {
		kt.up--
	}
	if kt.fire > 0 {
		kt.fire--
	}
}

// Raw reports the reconstructed held state for this tick. The pause latch is
// consumed so a single keypress yields exactly one held sample.
func (kt *KeyTracker) Raw() core.RawKeys {
	raw := core.RawKeys{
		Left:  kt.left > 0,
		Right: kt.right > 0,
		Up:    kt.up > 0,
		Fire:  kt.fire > 0,
		Pause: kt.pauseLatch,
	}
	kt.pauseLatch = false
	return raw
}

// Reset releases every key. Used when entering or leaving a game screen.
func (kt *KeyTracker) Reset() {
	*kt = KeyTracker{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
