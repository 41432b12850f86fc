// Package grid provides the integer coordinate and cardinal direction types
// that rooms are laid out on.
package grid

import (
	"fmt"
	"slices"
)

// offsetStride is the row multiplier of LinearKey. Normalized dungeons never
// come close to this many columns.
const offsetStride = 1 << 20

// Offset is an integer grid coordinate. It identifies a room.
type Offset struct {
	X, Y int
}

// Add returns o translated by other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o translated by the negation of other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Step returns the neighbouring offset in direction d.
func (o Offset) Step(d Direction) Offset {
	return o.Add(d.Delta())
}

// LinearKey folds the offset into a single sortable integer (x + y*stride).
func (o Offset) LinearKey() int {
	return o.X + o.Y*offsetStride
}

// String returns the offset as "(x,y)".
func (o Offset) String() string {
	return fmt.Sprintf("(%d,%d)", o.X, o.Y)
}

// SortOffsets orders offsets in place by LinearKey.
func SortOffsets(offsets []Offset) {
	slices.SortFunc(offsets, func(a, b Offset) int {
		return a.LinearKey() - b.LinearKey()
	})
}
