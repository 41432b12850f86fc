package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonforge/internal/grid"
)

// Path is a sequence of adjacent room offsets.
type Path []grid.Offset

// Edge is a single step of a path.
type Edge struct {
	From, To grid.Offset
}

// Edges returns the consecutive pairs of p.
func (p Path) Edges() []Edge {
	if len(p) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		edges = append(edges, Edge{From: p[i], To: p[i+1]})
	}
	return edges
}

// RoomMatcher decides whether a room reached along path ends a search.
type RoomMatcher func(room *Room, path Path) bool

// DoorFilter decides whether a search may cross door out of room.
type DoorFilter func(room *Room, door *Door) bool

type searchNode struct {
	offset grid.Offset
	path   Path
}

// FindPath runs a breadth-first search from start, expanding doors in room
// order and ignoring locks, and returns the path to the first room match
// accepts. The start room is tested first.
func (d *Dungeon) FindPath(start grid.Offset, match RoomMatcher) (Path, bool) {
	if _, ok := d.rooms[start]; !ok {
		return nil, false
	}
	visited := mapset.New[grid.Offset]()
	visited.Put(start)
	queue := []searchNode{{offset: start, path: Path{start}}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room := d.mustRoom(current.offset)
		if match(room, current.path) {
			return current.path, true
		}
		for i := range room.Doors {
			to := room.Doors[i].To
			if visited.Has(to) {
				continue
			}
			visited.Put(to)
			next := make(Path, len(current.path), len(current.path)+1)
			copy(next, current.path)
			queue = append(queue, searchNode{offset: to, path: append(next, to)})
		}
	}
	return nil, false
}

// Reachable returns every room reachable from start through doors pass
// accepts, in breadth-first order with start first.
func (d *Dungeon) Reachable(start grid.Offset, pass DoorFilter) []grid.Offset {
	if _, ok := d.rooms[start]; !ok {
		return nil
	}
	visited := mapset.New[grid.Offset]()
	visited.Put(start)
	queue := []grid.Offset{start}
	var out []grid.Offset

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		room := d.mustRoom(current)
		out = append(out, current)
		for i := range room.Doors {
			door := &room.Doors[i]
			if visited.Has(door.To) || !pass(room, door) {
				continue
			}
			visited.Put(door.To)
			queue = append(queue, door.To)
		}
	}
	return out
}

// Distance returns the number of doors between two rooms, ignoring locks.
func (d *Dungeon) Distance(from, to grid.Offset) (int, bool) {
	path, ok := d.FindPath(from, roomAt(to))
	if !ok {
		return 0, false
	}
	return len(path) - 1, true
}

// AnyDoor is a DoorFilter accepting every door.
func AnyDoor(*Room, *Door) bool { return true }

// roomAt returns a RoomMatcher accepting only the room at target.
func roomAt(target grid.Offset) RoomMatcher {
	return func(r *Room, _ Path) bool { return r.Offset == target }
}
