// Package world generates lock-and-key dungeons: a tree of rooms on an
// integer grid with an entrance, a boss guarding the exit, and keys placed so
// that every locked door can be opened in some order.
package world

import (
	"fmt"
	"math"

	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// Dungeon is a generated room graph. A dungeon returned by Generate is never
// mutated again and may be shared between goroutines.
type Dungeon struct {
	rooms map[grid.Offset]*Room

	entrance   *grid.Offset
	exit       *grid.Offset
	boss       *grid.Offset
	bossKey    *grid.Offset
	lockTarget int
}

func newDungeon() *Dungeon {
	return &Dungeon{rooms: make(map[grid.Offset]*Room)}
}

// Len returns the number of rooms.
func (d *Dungeon) Len() int {
	return len(d.rooms)
}

// Room returns the room at offset, or nil.
func (d *Dungeon) Room(offset grid.Offset) *Room {
	return d.rooms[offset]
}

// Rooms returns every room offset in ascending LinearKey order.
func (d *Dungeon) Rooms() []grid.Offset {
	offsets := make([]grid.Offset, 0, len(d.rooms))
	for o := range d.rooms {
		offsets = append(offsets, o)
	}
	grid.SortOffsets(offsets)
	return offsets
}

// Each calls fn for every room in ascending LinearKey order until fn returns false.
func (d *Dungeon) Each(fn func(grid.Offset, *Room) bool) {
	for _, o := range d.Rooms() {
		if !fn(o, d.rooms[o]) {
			return
		}
	}
}

// Entrance returns the entrance room offset.
func (d *Dungeon) Entrance() (grid.Offset, bool) { return deref(d.entrance) }

// Exit returns the exit room offset.
func (d *Dungeon) Exit() (grid.Offset, bool) { return deref(d.exit) }

// Boss returns the offset of the room guarding the exit.
func (d *Dungeon) Boss() (grid.Offset, bool) { return deref(d.boss) }

// BossKeyRoom returns the offset of the room whose chest holds the boss key.
func (d *Dungeon) BossKeyRoom() (grid.Offset, bool) { return deref(d.bossKey) }

func deref(o *grid.Offset) (grid.Offset, bool) {
	if o == nil {
		return grid.Offset{}, false
	}
	return *o, true
}

// Bounds returns the width and height of the smallest box holding every room.
// Offsets of a generated dungeon start at (0,0).
func (d *Dungeon) Bounds() (width, height int) {
	if len(d.rooms) == 0 {
		return 0, 0
	}
	maxX, maxY := math.MinInt, math.MinInt
	for o := range d.rooms {
		maxX = max(maxX, o.X)
		maxY = max(maxY, o.Y)
	}
	return maxX + 1, maxY + 1
}

// LockCount returns how many doors carry lock.
func (d *Dungeon) LockCount(lock Lock) int {
	n := 0
	for _, r := range d.rooms {
		for i := range r.Doors {
			if r.Doors[i].Lock == lock {
				n++
			}
		}
	}
	return n
}

// LockTarget returns the small-key lock budget the lock stage settled on.
func (d *Dungeon) LockTarget() int {
	return d.lockTarget
}

// KeyCount returns how many rooms yield a small key.
func (d *Dungeon) KeyCount() int {
	n := 0
	for _, r := range d.rooms {
		if r.Key() == entity.ItemSmallKey {
			n++
		}
	}
	return n
}

// mustRoom returns the room at offset. Doors only ever point at existing
// rooms, so a miss is a bug.
func (d *Dungeon) mustRoom(offset grid.Offset) *Room {
	r, ok := d.rooms[offset]
	if !ok {
		panic(fmt.Sprintf("world: no room at %s", offset))
	}
	return r
}

// mustDoor returns the door from one room to an adjacent one.
func (d *Dungeon) mustDoor(from, to grid.Offset) *Door {
	door := d.mustRoom(from).DoorTo(to)
	if door == nil {
		panic(fmt.Sprintf("world: no door from %s to %s", from, to))
	}
	return door
}

func (d *Dungeon) addRoom(offset grid.Offset) *Room {
	r := newRoom(offset)
	d.rooms[offset] = r
	return r
}

// connect adds the mirrored door pair between two adjacent rooms.
func (d *Dungeon) connect(a, b grid.Offset) {
	ra, rb := d.mustRoom(a), d.mustRoom(b)
	rb.Doors = append(rb.Doors, newDoor(b, a))
	ra.Doors = append(ra.Doors, newDoor(a, b))
}

// emptyRooms returns the offsets of non-exit rooms without an occupant,
// in ascending LinearKey order.
func (d *Dungeon) emptyRooms() []grid.Offset {
	var out []grid.Offset
	for o, r := range d.rooms {
		if r.empty() {
			out = append(out, o)
		}
	}
	grid.SortOffsets(out)
	return out
}

// normalize translates every room and door so the minimum x and y are zero.
func (d *Dungeon) normalize() {
	if len(d.rooms) == 0 {
		return
	}
	minX, minY := math.MaxInt, math.MaxInt
	for o := range d.rooms {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
	}
	shift := grid.Offset{X: minX, Y: minY}
	rooms := make(map[grid.Offset]*Room, len(d.rooms))
	for o, r := range d.rooms {
		r.Offset = o.Sub(shift)
		for i := range r.Doors {
			r.Doors[i].From = r.Doors[i].From.Sub(shift)
			r.Doors[i].To = r.Doors[i].To.Sub(shift)
		}
		rooms[r.Offset] = r
	}
	d.rooms = rooms
}
