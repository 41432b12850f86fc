package entity

import (
	"fmt"

	"github.com/samdwyer/dungeonforge/internal/gamedata"
)

// EnemyKind is the strength class of an enemy.
type EnemyKind int

const (
	EnemySmall EnemyKind = iota
	EnemyBig
	EnemyBoss
)

// String returns the enemy kind name.
func (k EnemyKind) String() string {
	switch k {
	case EnemySmall:
		return "Small"
	case EnemyBig:
		return "Big"
	case EnemyBoss:
		return "Boss"
	default:
		return "Unknown"
	}
}

// ParseEnemyKind maps a data-file kind ("small", "big", "boss") to an EnemyKind.
func ParseEnemyKind(s string) (EnemyKind, error) {
	switch s {
	case "small":
		return EnemySmall, nil
	case "big":
		return EnemyBig, nil
	case "boss":
		return EnemyBoss, nil
	default:
		return EnemySmall, fmt.Errorf("unknown enemy kind %q", s)
	}
}

// Enemy guards a room. It may drop an item and fires its triggers when defeated.
type Enemy struct {
	Def      *gamedata.EnemyDef // Display definition (nil when none was loaded)
	Kind     EnemyKind
	Item     Item      // Dropped on defeat
	Triggers []Trigger // Fired on defeat
}

// NewEnemyFromDef creates an enemy from a data-driven definition that drops item.
// Unknown kinds fall back to EnemySmall.
func NewEnemyFromDef(def *gamedata.EnemyDef, item Item) *Enemy {
	kind := EnemySmall
	if def != nil {
		if k, err := ParseEnemyKind(def.Kind); err == nil {
			kind = k
		}
	}
	return &Enemy{
		Def:  def,
		Kind: kind,
		Item: item,
	}
}

// NewBoss creates the boss enemy. def may be nil.
func NewBoss(def *gamedata.EnemyDef, triggers ...Trigger) *Enemy {
	return &Enemy{
		Def:      def,
		Kind:     EnemyBoss,
		Triggers: triggers,
	}
}

// Name returns the display name, falling back to the kind.
func (e *Enemy) Name() string {
	if e.Def != nil && e.Def.Name != "" {
		return e.Def.Name
	}
	return e.Kind.String()
}

// Key returns the key dropped or granted on defeat, or ItemNone.
func (e *Enemy) Key() Item {
	if e.Item.IsKey() {
		return e.Item
	}
	return grantedKey(e.Triggers)
}

// String returns the enemy as "E(kind,item)".
func (e *Enemy) String() string {
	return fmt.Sprintf("E(%s,%s)", e.Kind, e.Item)
}
