package world

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// placeKeys hands out one small key per small-key door, in rounds.
//
// Each round floods from the entrance through open doors and doors already
// paid for. Every new small-key door on the frontier is paid for with a key
// placed in a room the round could reach, so keys never sit behind the doors
// they open. Rounds repeat until no new door turns up.
func (a *attempt) placeKeys() error {
	d := a.dungeon
	entrance, _ := d.Entrance()
	unlocked := mapset.New[doorKey]()
	var keyRooms []grid.Offset

	pass := func(_ *Room, door *Door) bool {
		switch door.Lock {
		case LockBossKey, LockTrigger:
			return false
		case LockSmallKey:
			return unlocked.Has(door.key())
		default:
			return true
		}
	}

	for {
		reach := d.Reachable(entrance, pass)

		newly := 0
		for _, o := range reach {
			room := d.mustRoom(o)
			for i := range room.Doors {
				door := &room.Doors[i]
				if door.Lock == LockSmallKey && !unlocked.Has(door.key()) {
					unlocked.Put(door.key())
					newly++
				}
			}
		}
		if newly == 0 {
			return nil
		}

		var candidates []grid.Offset
		for _, o := range reach {
			if !d.mustRoom(o).Occupied() {
				candidates = append(candidates, o)
			}
		}
		if len(candidates) < newly {
			return fmt.Errorf("%w: %d doors, %d rooms", ErrKeyShortfall, newly, len(candidates))
		}
		grid.SortOffsets(candidates)
		a.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		ordered := a.orderKeyRooms(candidates, keyRooms)
		bag := a.holders.Bag()
		a.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

		for i := 0; i < newly; i++ {
			a.giveKey(d.mustRoom(ordered[i]), bag[i%len(bag)])
			keyRooms = append(keyRooms, ordered[i])
		}
	}
}

// orderKeyRooms ranks candidates for the next keys. One dead end comes first,
// preferring the last one at least KeySpacing from every key so far. Then come
// the other rooms far from existing keys, then those near them, then the
// remaining dead ends.
func (a *attempt) orderKeyRooms(candidates, keyRooms []grid.Offset) []grid.Offset {
	d := a.dungeon
	spacing := a.tuning.KeySpacing
	dist := make(map[grid.Offset]int, len(candidates))
	for _, o := range candidates {
		nearest := math.MaxInt
		for _, k := range keyRooms {
			if n, ok := d.Distance(o, k); ok {
				nearest = min(nearest, n)
			}
		}
		dist[o] = nearest
	}

	var ends, far, near, farEnds []grid.Offset
	for _, o := range candidates {
		switch {
		case d.mustRoom(o).Type == TypeEnd:
			ends = append(ends, o)
			if dist[o] >= spacing {
				farEnds = append(farEnds, o)
			}
		case dist[o] >= spacing:
			far = append(far, o)
		default:
			near = append(near, o)
		}
	}

	ordered := make([]grid.Offset, 0, len(candidates))
	if len(ends) == 0 {
		return append(append(ordered, far...), near...)
	}
	pick := ends[len(ends)-1]
	if len(farEnds) > 0 {
		pick = farEnds[len(farEnds)-1]
	}
	ordered = append(ordered, pick)
	ordered = append(ordered, far...)
	ordered = append(ordered, near...)
	for _, o := range ends {
		if o != pick {
			ordered = append(ordered, o)
		}
	}
	return ordered
}

// giveKey puts a small key into room held by the given kind of occupant.
func (a *attempt) giveKey(room *Room, holder gamedata.KeyHolderKind) {
	switch holder {
	case gamedata.HolderSwitch:
		room.Switch = entity.NewSwitch(entity.GrantItem(entity.ItemSmallKey))
	case gamedata.HolderEnemy:
		def := a.enemies.SpawnRandom(a.rng)
		room.Enemy = entity.NewEnemyFromDef(def, entity.ItemSmallKey)
	default:
		room.Chest = entity.NewChest(entity.ItemSmallKey)
	}
}
