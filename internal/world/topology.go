package world

import "github.com/samdwyer/dungeonforge/internal/grid"

// classify types every room by its door count and returns the dead-end rooms
// in ascending LinearKey order.
func (a *attempt) classify() []grid.Offset {
	var ends []grid.Offset
	for o, r := range a.dungeon.rooms {
		r.Type = typeForDegree(r.Degree())
		if r.Type == TypeEnd {
			ends = append(ends, o)
		}
	}
	grid.SortOffsets(ends)
	return ends
}
