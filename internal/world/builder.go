package world

import "github.com/samdwyer/dungeonforge/internal/grid"

// buildRooms random-walks target rooms into the dungeon. The walk extends
// corridors from the top of a stack of placed rooms; a corridor ends when
// it boxes itself in or a variance roll aborts it, and the walk then
// backtracks a random depth down the stack and branches from there. Each new
// room is joined to the room it was extended from, so the result is a tree.
// The walk can stop short of target when the stack empties.
func (a *attempt) buildRooms(target int) {
	d := a.dungeon
	dir := a.randomDirection()
	length := a.corridorLength()
	var offset grid.Offset
	stack := make([]grid.Offset, 0, target)
	placed := 0

	for placed < target {
		deadEnd := false
		for placed < target {
			next := offset.Step(dir)
			if _, taken := d.rooms[next]; taken {
				dir = a.freeDirection(offset)
				if dir == grid.DirectionNone {
					deadEnd = true
					break
				}
				next = offset.Step(dir)
			}

			variance := a.rng.Intn(256)
			if variance < a.tuning.AbortVariance && len(stack) > 0 {
				break
			}

			offset = next
			length--
			d.addRoom(offset)
			if len(stack) > 0 {
				d.connect(stack[len(stack)-1], offset)
			}
			stack = append(stack, offset)
			placed++

			if length <= 0 || variance < a.tuning.TurnVariance {
				dir = a.randomDirection()
				length = a.corridorLength()
			}
		}
		if placed >= target {
			break
		}

		if deadEnd {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			drop := a.rng.Intn(1 + len(stack)/2)
			stack = stack[:len(stack)-drop]
		}
		if len(stack) == 0 {
			break
		}
		offset = stack[len(stack)-1]
		dir = a.randomDirection()
		length = a.corridorLength()
	}

	d.normalize()
}

func (a *attempt) randomDirection() grid.Direction {
	return grid.Direction(a.rng.Intn(4))
}

func (a *attempt) corridorLength() int {
	return 1 + a.rng.Intn(a.tuning.MaxCorridorLength)
}

// freeDirection tries the four directions in shuffled order and returns the
// first one leading to an unoccupied cell, or DirectionNone.
func (a *attempt) freeDirection(from grid.Offset) grid.Direction {
	dirs := grid.AllDirections()
	a.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, dir := range dirs {
		if _, taken := a.dungeon.rooms[from.Step(dir)]; !taken {
			return dir
		}
	}
	return grid.DirectionNone
}
