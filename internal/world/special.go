package world

import (
	"fmt"
	"slices"

	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// placeSpecialRooms picks the entrance, exit, boss and boss-key rooms from the
// three longest dead-end arms.
//
// Each arm runs from an end room to its nearest junction. Of the three
// longest arms, in shuffled order, the first end room becomes the entrance,
// the second arm holds the exit with the boss room right behind it, and the
// third end room gets the boss key chest.
func (a *attempt) placeSpecialRooms(ends []grid.Offset) error {
	d := a.dungeon

	var arms []Path
	for _, end := range ends {
		arm, ok := d.FindPath(end, func(r *Room, _ Path) bool { return r.Type.IsJunction() })
		if ok {
			arms = append(arms, arm)
		}
	}
	slices.SortStableFunc(arms, func(x, y Path) int { return len(y) - len(x) })
	if len(arms) < 3 {
		return fmt.Errorf("%w: found %d", ErrInsufficientTopology, len(arms))
	}
	head := arms[:3]
	a.rng.Shuffle(len(head), func(i, j int) { head[i], head[j] = head[j], head[i] })

	entrance := d.mustRoom(arms[0][0])
	entrance.Type = TypeEntrance
	d.entrance = &entrance.Offset

	exitArm := arms[1]
	if len(exitArm) <= 1 {
		return fmt.Errorf("%w: %d rooms", ErrExitArmTooShort, len(exitArm))
	}
	exit := d.mustRoom(exitArm[0])
	boss := d.mustRoom(exitArm[1])
	if boss.Degree() > 2 {
		return fmt.Errorf("%w: %s has %d", ErrBossJunction, boss.Offset, boss.Degree())
	}
	if len(exitArm) < 3 {
		return fmt.Errorf("%w: %d rooms", ErrExitArmTooShort, len(exitArm))
	}

	exit.Type = TypeExit
	d.exit = &exit.Offset
	boss.Enemy = entity.NewBoss(a.bossDef(), entity.OpenDoor(exit.Offset))
	d.boss = &boss.Offset
	d.mustDoor(boss.Offset, exit.Offset).Lock = LockTrigger
	d.mustDoor(exitArm[2], boss.Offset).Lock = LockBossKey

	keyRoom := d.mustRoom(arms[2][0])
	keyRoom.Chest = entity.NewChest(entity.ItemBossKey)
	d.bossKey = &keyRoom.Offset
	return nil
}
