package ui

import (
	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/gamedata"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// dynamicGet looks up translation keys that are only known at runtime, such
// as enemy names from the data tables.
var dynamicGet = gotext.Get

type label struct {
	text  string
	kind  cellKind
	enemy *gamedata.EnemyDef
}

// roomLabels returns the text lines drawn inside a room box: its role for the
// entrance and exit, then its occupant.
func roomLabels(room *world.Room) []label {
	var out []label
	switch room.Type {
	case world.TypeEntrance:
		out = append(out, label{text: gotext.Get("Entrance"), kind: kindRole})
	case world.TypeExit:
		out = append(out, label{text: gotext.Get("Exit"), kind: kindRole})
	}
	if room.Chest != nil {
		out = append(out, label{text: withItem(gotext.Get("Chest"), room.Chest.Item), kind: kindChest})
	}
	if room.Enemy != nil {
		out = append(out, label{
			text:  withItem(dynamicGet(room.Enemy.Name()), room.Enemy.Item),
			kind:  kindEnemy,
			enemy: room.Enemy.Def,
		})
	}
	if room.Switch != nil {
		out = append(out, label{text: withItem(gotext.Get("Switch"), room.Switch.Key()), kind: kindSwitch})
	}
	return out
}

func withItem(name string, item entity.Item) string {
	if item == entity.ItemNone {
		return name
	}
	return name + " " + dynamicGet(item.String())
}
