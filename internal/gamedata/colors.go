package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor resolves a table colour. It accepts "#RRGGBB", bare "RRGGBB"
// and the colour names tcell knows ("red", "darkolivegreen").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}
	if len(s) == 6 && !strings.HasPrefix(s, "#") {
		if c := tcell.GetColor("#" + s); c != tcell.ColorDefault {
			return c, nil
		}
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// RGB splits c into 8-bit channels. Colours without an RGB value are white.
func RGB(c tcell.Color) (r, g, b uint8) {
	cr, cg, cb := c.RGB()
	if cr < 0 {
		return 255, 255, 255
	}
	return uint8(cr), uint8(cg), uint8(cb)
}
