package world

import (
	"fmt"
	"slices"
)

// lockLane is a run of doors the lock distributor draws from.
type lockLane struct {
	edges []Edge
	locks int
}

// placeLocks puts small-key locks on doors along the routes from the entrance
// to the boss key and to the boss door, and returns how many it placed.
//
// The two routes share a prefix. The shared prefix (minus its last room) is
// cut from both, leaving three lanes: the shared stretch, the branch to the
// boss key and the branch to the boss door. Lanes are served longest first,
// round-robin, moving on once a lane's remaining doors per lock drop below
// DoorRatio. A lane with one edge left is retired.
func (a *attempt) placeLocks() (int, error) {
	d := a.dungeon
	entrance, _ := d.Entrance()
	boss, _ := d.Boss()
	bossKey, _ := d.BossKeyRoom()

	keyPath, ok := d.FindPath(entrance, roomAt(bossKey))
	if !ok {
		return 0, fmt.Errorf("%w: boss key unreachable", ErrInsufficientTopology)
	}
	doorPath, ok := d.FindPath(entrance, roomAt(boss))
	if !ok {
		return 0, fmt.Errorf("%w: boss unreachable", ErrInsufficientTopology)
	}
	doorPath = doorPath[:len(doorPath)-1]

	var shared Path
	for i := 0; i < min(len(keyPath), len(doorPath)); i++ {
		if keyPath[i] == doorPath[i] {
			shared = append(shared, keyPath[i])
		}
	}
	cut := len(shared) - 1
	keyPath = keyPath[cut:]
	doorPath = doorPath[cut:]

	target := len(d.emptyRooms())/a.tuning.LockDivisor + a.rng.Intn(a.tuning.LockJitter+1)
	d.lockTarget = target

	lanes := []*lockLane{
		{edges: shared.Edges()},
		{edges: keyPath.Edges()},
		{edges: doorPath.Edges()},
	}
	slices.SortStableFunc(lanes, func(x, y *lockLane) int { return len(y.edges) - len(x.edges) })

	index, locked := 0, 0
	for len(lanes) > 0 && locked < target {
		i := index % len(lanes)
		lane := lanes[i]
		if len(lane.edges) > 1 {
			k := a.rng.Intn(len(lane.edges))
			edge := lane.edges[k]
			door := d.mustDoor(edge.From, edge.To)
			if door.Lock != LockNone {
				return locked, fmt.Errorf("%w: %s to %s is %s", ErrDoubleLock, edge.From, edge.To, door.Lock)
			}
			door.Lock = LockSmallKey
			lane.locks++
			locked++
			lane.edges = slices.Delete(lane.edges, k, k+1)
			if len(lane.edges)/lane.locks < a.tuning.DoorRatio {
				index++
			}
		}
		if len(lane.edges) <= 1 {
			lanes = slices.Delete(lanes, i, i+1)
		}
	}

	if locked != target {
		return locked, fmt.Errorf("%w: placed %d of %d", ErrLockShortfall, locked, target)
	}
	return locked, nil
}
