package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// zeroRand always draws 0 and leaves shuffled slices untouched.
type zeroRand struct{}

func (zeroRand) Intn(n int) int {
	if n <= 0 {
		panic("zeroRand: n <= 0")
	}
	return 0
}

func (zeroRand) Shuffle(int, func(i, j int)) {}

func off(x, y int) grid.Offset { return grid.Offset{X: x, Y: y} }

// line returns the offsets from a to b inclusive along one axis.
func line(a, b grid.Offset) []grid.Offset {
	dir := grid.DirectionBetween(a, b)
	out := []grid.Offset{a}
	for o := a; o != b; {
		o = o.Step(dir)
		out = append(out, o)
	}
	return out
}

// corridors builds a dungeon from straight corridors, each given by its end
// points. Corridors may share rooms.
func corridors(t *testing.T, segments ...[2]grid.Offset) *Dungeon {
	t.Helper()
	d := newDungeon()
	for _, seg := range segments {
		rooms := line(seg[0], seg[1])
		for i, o := range rooms {
			if d.Room(o) == nil {
				d.addRoom(o)
			}
			if i > 0 {
				require.Nil(t, d.Room(rooms[i-1]).DoorTo(o), "duplicate door %s-%s", rooms[i-1], o)
				d.connect(rooms[i-1], o)
			}
		}
	}
	return d
}

// star is a crossing at (2,2) with arms of 2 (north), 2 (west), 3 (east)
// and 4 (south) rooms.
func star(t *testing.T) *Dungeon {
	return corridors(t,
		[2]grid.Offset{off(2, 2), off(2, 0)},
		[2]grid.Offset{off(2, 2), off(0, 2)},
		[2]grid.Offset{off(2, 2), off(5, 2)},
		[2]grid.Offset{off(2, 2), off(2, 6)},
	)
}

func testAttempt(t *testing.T, d *Dungeon, rng Rand) *attempt {
	t.Helper()
	holders, err := gamedata.LoadKeyHolderTable()
	require.NoError(t, err)
	enemies, err := gamedata.LoadEnemyRegistry()
	require.NoError(t, err)
	return &attempt{
		dungeon: d,
		rng:     rng,
		tuning:  DefaultTuning(),
		holders: holders,
		enemies: enemies,
	}
}
