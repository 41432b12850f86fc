package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// View is the top-left character of the dungeon drawing shown on screen.
type View struct {
	X, Y int
}

// Renderer handles drawing a dungeon to the screen.
type Renderer struct {
	screen *Screen
	cached *world.Dungeon
	canvas *canvas
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the part of the dungeon visible from view, leaving the last
// row for status.
func (r *Renderer) Render(d *world.Dungeon, view View, status string) {
	r.screen.Clear()

	if r.cached != d {
		r.cached, r.canvas = d, drawDungeon(d)
	}
	c := r.canvas

	width, height := r.screen.Size()
	for sy := 0; sy < height-1; sy++ {
		y := sy + view.Y
		if y < 0 || y >= c.height {
			continue
		}
		for sx := 0; sx < width; sx++ {
			x := sx + view.X
			if x < 0 || x >= c.width {
				continue
			}
			cl := c.at(x, y)
			r.screen.SetContent(sx, sy, cl.r, cellStyle(cl))
		}
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// Extent returns the size of the drawing of d in characters.
func (r *Renderer) Extent(d *world.Dungeon) (width, height int) {
	w, h := d.Bounds()
	return w * CellWidth, h * CellHeight
}

// cellStyle returns the tcell style for a drawn cell.
func cellStyle(cl cell) tcell.Style {
	base := tcell.StyleDefault
	switch cl.kind {
	case kindWall:
		return base.Foreground(tcell.ColorDarkGray)
	case kindPassage:
		return base.Foreground(tcell.ColorGray)
	case kindLock:
		switch cl.lock {
		case world.LockSmallKey:
			return base.Foreground(tcell.ColorYellow).Bold(true)
		case world.LockBossKey:
			return base.Foreground(tcell.ColorRed).Bold(true)
		case world.LockTrigger:
			return base.Foreground(tcell.ColorFuchsia).Bold(true)
		}
	case kindRole:
		return base.Foreground(tcell.ColorGreen).Bold(true)
	case kindChest:
		return base.Foreground(tcell.ColorOlive)
	case kindEnemy:
		if cl.enemy != nil {
			return base.Foreground(cl.enemy.TCellColor())
		}
		return base.Foreground(tcell.ColorRed)
	case kindSwitch:
		return base.Foreground(tcell.ColorTeal)
	}
	return base
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
