package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specialStar(t *testing.T) (*Dungeon, *attempt) {
	t.Helper()
	d := star(t)
	a := testAttempt(t, d, zeroRand{})
	require.NoError(t, a.placeSpecialRooms(a.classify()))
	return d, a
}

func TestPlaceLocks(t *testing.T) {
	d, a := specialStar(t)

	// Nine empty rooms: 9/4 + 0 locks, both drawn from the shared stretch
	// from the entrance to the crossing.
	locked, err := a.placeLocks()
	require.NoError(t, err)
	assert.Equal(t, 2, locked)
	assert.Equal(t, 2, d.LockTarget())
	assert.Equal(t, 2, d.LockCount(LockSmallKey))

	assert.Equal(t, LockSmallKey, d.Room(off(2, 6)).DoorTo(off(2, 5)).Lock)
	assert.Equal(t, LockSmallKey, d.Room(off(2, 5)).DoorTo(off(2, 4)).Lock)
	assert.Equal(t, LockNone, d.Room(off(2, 5)).DoorTo(off(2, 6)).Lock, "mirror stays open")
}

func TestPlaceLocksDoubleLock(t *testing.T) {
	d, a := specialStar(t)
	d.mustDoor(off(2, 6), off(2, 5)).Lock = LockTrigger

	_, err := a.placeLocks()
	assert.ErrorIs(t, err, ErrDoubleLock)
}

func TestPlaceLocksShortfall(t *testing.T) {
	_, a := specialStar(t)
	a.tuning.LockDivisor = 1

	locked, err := a.placeLocks()
	assert.ErrorIs(t, err, ErrLockShortfall)
	assert.Less(t, locked, 9)
}
