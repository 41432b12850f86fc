package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonforge/internal/grid"
)

func TestFindPath(t *testing.T) {
	d := star(t)

	path, ok := d.FindPath(off(2, 6), roomAt(off(5, 2)))
	require.True(t, ok)
	assert.Equal(t, Path{off(2, 6), off(2, 5), off(2, 4), off(2, 3), off(2, 2), off(3, 2), off(4, 2), off(5, 2)}, path)

	path, ok = d.FindPath(off(2, 0), func(*Room, Path) bool { return true })
	require.True(t, ok)
	assert.Equal(t, Path{off(2, 0)}, path, "start room is tested first")

	path, ok = d.FindPath(off(0, 2), func(r *Room, _ Path) bool { return r.Degree() > 2 })
	require.True(t, ok)
	assert.Equal(t, Path{off(0, 2), off(1, 2), off(2, 2)}, path)

	_, ok = d.FindPath(off(0, 2), roomAt(off(9, 9)))
	assert.False(t, ok)

	_, ok = d.FindPath(off(9, 9), roomAt(off(0, 2)))
	assert.False(t, ok)
}

func TestFindPathIgnoresLocks(t *testing.T) {
	d := star(t)
	d.mustDoor(off(2, 2), off(3, 2)).Lock = LockBossKey

	n, ok := d.Distance(off(2, 2), off(5, 2))
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestReachable(t *testing.T) {
	d := star(t)
	d.mustDoor(off(2, 2), off(3, 2)).Lock = LockSmallKey

	noLocks := func(_ *Room, door *Door) bool { return door.Lock == LockNone }
	reach := d.Reachable(off(2, 6), noLocks)

	assert.Equal(t, off(2, 6), reach[0])
	assert.Len(t, reach, 9)
	assert.NotContains(t, reach, off(3, 2))
	assert.NotContains(t, reach, off(5, 2))

	// The mirrored door on the far side is unlocked.
	back := d.Reachable(off(5, 2), noLocks)
	assert.Len(t, back, d.Len())

	assert.Len(t, d.Reachable(off(2, 6), AnyDoor), d.Len())
	assert.Nil(t, d.Reachable(off(9, 9), AnyDoor))
}

func TestPathEdges(t *testing.T) {
	assert.Nil(t, Path{off(0, 0)}.Edges())
	assert.Equal(t,
		[]Edge{{From: off(0, 0), To: off(1, 0)}, {From: off(1, 0), To: off(1, 1)}},
		Path{off(0, 0), off(1, 0), off(1, 1)}.Edges(),
	)
}

func TestDoorToMatchesTarget(t *testing.T) {
	d := star(t)
	center := d.Room(off(2, 2))
	require.Equal(t, 4, center.Degree())
	for _, dir := range grid.AllDirections() {
		door := center.DoorTo(off(2, 2).Step(dir))
		require.NotNil(t, door)
		assert.Equal(t, dir, door.Side)
		assert.Equal(t, off(2, 2).Step(dir), door.To)
	}
	assert.Nil(t, d.Room(off(2, 0)).DoorTo(off(3, 0)))
}

func TestDoorToIgnoresDistantRooms(t *testing.T) {
	d := corridors(t, [2]grid.Offset{off(0, 0), off(1, 0)})
	room := d.Room(off(0, 0))
	require.NotNil(t, room.DoorTo(off(1, 0)))

	assert.Nil(t, room.DoorTo(off(5, 3)), "same side, not adjacent")
	assert.Nil(t, room.DoorTo(off(2, 0)), "two cells east")
	assert.Nil(t, room.DoorTo(off(0, 0)), "itself")
}
