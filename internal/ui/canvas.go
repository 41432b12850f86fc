package ui

import (
	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/grid"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Each room is drawn as a box inside a CellWidth x CellHeight block. The box
// leaves a two-column and one-row gap to the next block where passages go.
const (
	CellWidth  = 19
	CellHeight = 8

	boxRight  = CellWidth - 3  // column of the right wall
	boxBottom = CellHeight - 2 // row of the bottom wall
	doorCol   = 8              // column of north and south doors
	doorRow   = 3              // row of east and west doors
	labelRow  = 2
	labelMax  = boxRight - 1
)

// cellKind tells renderers how to style a cell.
type cellKind uint8

const (
	kindBlank cellKind = iota
	kindWall
	kindPassage
	kindLock
	kindRole
	kindChest
	kindEnemy
	kindSwitch
)

type cell struct {
	r     rune
	kind  cellKind
	lock  world.Lock
	enemy *gamedata.EnemyDef
}

// canvas is a character grid holding a drawn dungeon.
type canvas struct {
	width, height int
	cells         []cell
}

// drawDungeon lays every room of d onto a new canvas.
func drawDungeon(d *world.Dungeon) *canvas {
	w, h := d.Bounds()
	c := &canvas{
		width:  w * CellWidth,
		height: h * CellHeight,
	}
	c.cells = make([]cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	d.Each(func(o grid.Offset, room *world.Room) bool {
		c.drawRoom(o, room)
		return true
	})
	return c
}

func (c *canvas) set(x, y int, r rune, kind cellKind) *cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	p := &c.cells[y*c.width+x]
	p.r, p.kind = r, kind
	return p
}

func (c *canvas) at(x, y int) cell {
	return c.cells[y*c.width+x]
}

// line returns row y as a string.
func (c *canvas) line(y int) string {
	runes := make([]rune, c.width)
	for x := 0; x < c.width; x++ {
		runes[x] = c.at(x, y).r
	}
	return string(runes)
}

func (c *canvas) drawRoom(o grid.Offset, room *world.Room) {
	x0, y0 := o.X*CellWidth, o.Y*CellHeight

	for x := x0; x < x0+boxRight; x++ {
		c.set(x, y0, '━', kindWall)
		c.set(x, y0+boxBottom, '━', kindWall)
	}
	for y := y0; y < y0+boxBottom+1; y++ {
		c.set(x0, y, '┃', kindWall)
		c.set(x0+boxRight, y, '┃', kindWall)
	}
	c.set(x0, y0, '┏', kindWall)
	c.set(x0+boxRight, y0, '┓', kindWall)
	c.set(x0, y0+boxBottom, '┗', kindWall)
	c.set(x0+boxRight, y0+boxBottom, '┛', kindWall)

	for i := range room.Doors {
		c.drawDoor(x0, y0, &room.Doors[i])
	}

	row := y0 + labelRow
	for _, l := range roomLabels(room) {
		if row == y0+doorRow {
			row++
		}
		runes := []rune(l.text)
		if len(runes) > labelMax {
			runes = runes[:labelMax]
		}
		for i, r := range runes {
			if p := c.set(x0+1+i, row, r, l.kind); p != nil {
				p.enemy = l.enemy
			}
		}
		row++
	}
}

func (c *canvas) drawDoor(x0, y0 int, door *world.Door) {
	mark := lockGlyph(door.Lock)
	var p *cell
	switch door.Side {
	case grid.North:
		c.set(x0+doorCol, y0, '▀', kindPassage)
		c.set(x0+doorCol, y0-1, '█', kindPassage)
		p = c.set(x0+doorCol, y0+1, mark, kindLock)
	case grid.East:
		p = c.set(x0+boxRight-1, y0+doorRow, mark, kindLock)
		c.set(x0+boxRight, y0+doorRow, '▐', kindPassage)
		c.set(x0+boxRight+1, y0+doorRow, '█', kindPassage)
	case grid.South:
		c.set(x0+doorCol, y0+boxBottom, '▄', kindPassage)
		p = c.set(x0+doorCol, y0+boxBottom-1, mark, kindLock)
	case grid.West:
		p = c.set(x0+1, y0+doorRow, mark, kindLock)
		c.set(x0, y0+doorRow, '▌', kindPassage)
		c.set(x0-1, y0+doorRow, '█', kindPassage)
	}
	if p != nil {
		p.lock = door.Lock
	}
}

// lockGlyph returns the marker drawn inside a door.
func lockGlyph(l world.Lock) rune {
	switch l {
	case world.LockSmallKey:
		return 'S'
	case world.LockBossKey:
		return 'B'
	case world.LockTrigger:
		return 'T'
	default:
		return ' '
	}
}
