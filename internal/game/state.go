// Package game provides the interactive dungeon viewer loop.
package game

import "slices"

// State represents what the viewer is showing.
type State int

const (
	// StateViewing shows a generated dungeon.
	StateViewing State = iota
	// StateEmpty means the current seed produced no dungeon.
	StateEmpty
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// seedAt derives the seed shown after step presses of "next": the last
// element of base is offset by step. An empty base yields [step].
func seedAt(base []int, step int) []int {
	if len(base) == 0 {
		return []int{step}
	}
	seed := slices.Clone(base)
	seed[len(seed)-1] += step
	return seed
}
