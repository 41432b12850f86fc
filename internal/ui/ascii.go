package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/dungeonforge/internal/world"
)

// ASCIIRenderer draws a dungeon as box-drawing text.
type ASCIIRenderer struct {
	colors bool

	colorWall     color.Style
	colorPassage  color.Style
	colorSmallKey color.Style
	colorBossKey  color.Style
	colorTrigger  color.Style
	colorRole     color.Style
	colorChest    color.Style
	colorEnemy    color.Style
	colorSwitch   color.Style
	colorHeadline color.Style
}

// NewASCIIRenderer creates a renderer. With colors off the output is plain text.
func NewASCIIRenderer(colors bool) *ASCIIRenderer {
	return &ASCIIRenderer{
		colors:        colors,
		colorWall:     color.Style{color.FgGray},
		colorPassage:  color.Style{color.FgGray, color.OpBold},
		colorSmallKey: color.Style{color.FgYellow, color.OpBold},
		colorBossKey:  color.Style{color.FgRed, color.OpBold},
		colorTrigger:  color.Style{color.FgMagenta, color.OpBold},
		colorRole:     color.Style{color.FgGreen, color.OpBold},
		colorChest:    color.Style{color.FgYellow},
		colorEnemy:    color.Style{color.FgRed},
		colorSwitch:   color.Style{color.FgCyan},
		colorHeadline: color.Style{color.FgWhite, color.OpBold},
	}
}

// Lines returns the drawn dungeon, one string per text row. Empty dungeons
// have no lines.
func (r *ASCIIRenderer) Lines(d *world.Dungeon) []string {
	c := drawDungeon(d)
	lines := make([]string, c.height)
	for y := range lines {
		if r.colors {
			lines[y] = r.styledLine(c, y)
		} else {
			lines[y] = c.line(y)
		}
	}
	return lines
}

// Width returns the number of columns Lines produces for d.
func (r *ASCIIRenderer) Width(d *world.Dungeon) int {
	w, _ := d.Bounds()
	return w * CellWidth
}

// Render writes a summary line followed by the drawn dungeon to w.
func (r *ASCIIRenderer) Render(w io.Writer, d *world.Dungeon) error {
	headline := gotext.Get("Dungeon with %d rooms", d.Len())
	if r.colors {
		headline = r.colorHeadline.Sprint(headline)
	}
	if _, err := fmt.Fprintln(w, headline); err != nil {
		return err
	}
	for _, line := range r.Lines(d) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// sprinter is satisfied by both basic and true-colour gookit styles.
type sprinter interface {
	Sprint(a ...any) string
}

// styledLine colours row y run by run.
func (r *ASCIIRenderer) styledLine(c *canvas, y int) string {
	var b strings.Builder
	var run []rune
	var runStyle sprinter
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runStyle == nil {
			b.WriteString(string(run))
		} else {
			b.WriteString(runStyle.Sprint(string(run)))
		}
		run = run[:0]
	}
	for x := 0; x < c.width; x++ {
		cl := c.at(x, y)
		style := r.style(cl)
		if style != runStyle {
			flush()
			runStyle = style
		}
		run = append(run, cl.r)
	}
	flush()
	return b.String()
}

func (r *ASCIIRenderer) style(cl cell) sprinter {
	switch cl.kind {
	case kindWall:
		return &r.colorWall
	case kindPassage:
		return &r.colorPassage
	case kindLock:
		switch cl.lock {
		case world.LockSmallKey:
			return &r.colorSmallKey
		case world.LockBossKey:
			return &r.colorBossKey
		case world.LockTrigger:
			return &r.colorTrigger
		}
	case kindRole:
		return &r.colorRole
	case kindChest:
		return &r.colorChest
	case kindEnemy:
		if cl.enemy != nil && cl.enemy.Color != "" {
			return color.RGB(cl.enemy.RGB())
		}
		return &r.colorEnemy
	case kindSwitch:
		return &r.colorSwitch
	}
	return nil
}
