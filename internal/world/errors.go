package world

import "errors"

// Reasons an attempt is discarded. The orchestrator retries on any of them.
var (
	// ErrInsufficientTopology: fewer than three end rooms lead to a junction.
	ErrInsufficientTopology = errors.New("fewer than three dead-end paths")
	// ErrExitArmTooShort: the exit path cannot hold an exit, a boss room and
	// an approach room.
	ErrExitArmTooShort = errors.New("exit path too short")
	// ErrBossJunction: the room chosen for the boss is itself a junction.
	ErrBossJunction = errors.New("boss room has more than two doors")
	// ErrDoubleLock: a door picked for a small-key lock is already locked.
	ErrDoubleLock = errors.New("door already locked")
	// ErrLockShortfall: the paths ran out before the lock budget was spent.
	ErrLockShortfall = errors.New("lock budget not met")
	// ErrKeyShortfall: a round opened more doors than it has empty rooms for keys.
	ErrKeyShortfall = errors.New("not enough empty rooms for keys")
)
