package entity

import (
	"fmt"

	"github.com/samdwyer/dungeonforge/internal/grid"
)

// TriggerKind is the effect a trigger has when it fires.
type TriggerKind int

const (
	// TriggerGrantItem hands an item to the player.
	TriggerGrantItem TriggerKind = iota
	// TriggerLockDoor locks the door of the room at Target.
	TriggerLockDoor
	// TriggerOpenDoor opens the door into the room at Target.
	TriggerOpenDoor
)

// Trigger is an event fired by an occupant or a door. It is always owned by
// exactly one occupant or door.
type Trigger struct {
	Kind   TriggerKind
	Item   Item        // granted item, TriggerGrantItem only
	Target grid.Offset // affected room, door triggers only
}

// GrantItem returns a trigger that hands out item.
func GrantItem(item Item) Trigger {
	return Trigger{Kind: TriggerGrantItem, Item: item}
}

// LockDoor returns a trigger that locks the door into target.
func LockDoor(target grid.Offset) Trigger {
	return Trigger{Kind: TriggerLockDoor, Target: target}
}

// OpenDoor returns a trigger that opens the door into target.
func OpenDoor(target grid.Offset) Trigger {
	return Trigger{Kind: TriggerOpenDoor, Target: target}
}

// String returns a compact description such as "Open(3,4)".
func (t Trigger) String() string {
	switch t.Kind {
	case TriggerGrantItem:
		return "Grant(" + t.Item.String() + ")"
	case TriggerLockDoor:
		return fmt.Sprintf("Lock%s", t.Target)
	case TriggerOpenDoor:
		return fmt.Sprintf("Open%s", t.Target)
	default:
		return "Unknown"
	}
}

// grantedKey returns the first key handed out by triggers, or ItemNone.
func grantedKey(triggers []Trigger) Item {
	for _, t := range triggers {
		if t.Kind == TriggerGrantItem && t.Item.IsKey() {
			return t.Item
		}
	}
	return ItemNone
}
