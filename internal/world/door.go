package world

import (
	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// Lock is what keeps a door shut.
type Lock int

const (
	LockNone Lock = iota
	LockSmallKey
	LockBossKey
	// LockTrigger doors open when a trigger fires.
	LockTrigger
)

// String returns the lock name.
func (l Lock) String() string {
	switch l {
	case LockNone:
		return "None"
	case LockSmallKey:
		return "SmallKey"
	case LockBossKey:
		return "BossKey"
	case LockTrigger:
		return "Trigger"
	default:
		return "Unknown"
	}
}

// Door connects From to the adjacent room To. Every door has a mirror in To
// pointing back; a lock sits only on the side the player approaches from.
type Door struct {
	From     grid.Offset
	To       grid.Offset
	Side     grid.Direction
	Lock     Lock
	Triggers []entity.Trigger
}

func newDoor(from, to grid.Offset) Door {
	return Door{
		From: from,
		To:   to,
		Side: grid.DirectionBetween(from, to),
	}
}

// doorKey identifies one side of a door pair.
type doorKey struct {
	from, to grid.Offset
}

func (d *Door) key() doorKey {
	return doorKey{from: d.From, to: d.To}
}
