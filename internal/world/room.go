package world

import (
	"github.com/samdwyer/dungeonforge/internal/entity"
	"github.com/samdwyer/dungeonforge/internal/grid"
)

// Type classifies a room by its doors or its role.
type Type int

const (
	TypeInvalid Type = iota
	TypeEnd
	TypeHallway
	TypeIntersection
	TypeCrossing
	TypeEntrance
	TypeExit
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeEnd:
		return "End"
	case TypeHallway:
		return "Hallway"
	case TypeIntersection:
		return "Intersection"
	case TypeCrossing:
		return "Crossing"
	case TypeEntrance:
		return "Entrance"
	case TypeExit:
		return "Exit"
	default:
		return "Invalid"
	}
}

// typeForDegree maps a door count to the structural room type.
func typeForDegree(doors int) Type {
	switch doors {
	case 1:
		return TypeEnd
	case 2:
		return TypeHallway
	case 3:
		return TypeIntersection
	case 4:
		return TypeCrossing
	default:
		return TypeInvalid
	}
}

// IsJunction reports whether the type joins three or more corridors.
func (t Type) IsJunction() bool {
	return t == TypeIntersection || t == TypeCrossing
}

// Room is a node of the dungeon graph. It holds at most one occupant.
type Room struct {
	Offset grid.Offset
	Doors  []Door // in creation order
	Type   Type
	Chest  *entity.Chest
	Enemy  *entity.Enemy
	Switch *entity.Switch
}

func newRoom(offset grid.Offset) *Room {
	return &Room{Offset: offset}
}

// DoorTo returns the door leading to the room at to, or nil when the two
// rooms are not connected.
func (r *Room) DoorTo(to grid.Offset) *Door {
	for i := range r.Doors {
		if r.Doors[i].To == to {
			return &r.Doors[i]
		}
	}
	return nil
}

// Degree returns the number of doors.
func (r *Room) Degree() int {
	return len(r.Doors)
}

// Occupied reports whether the room holds a chest, an enemy or a switch.
func (r *Room) Occupied() bool {
	return r.Chest != nil || r.Enemy != nil || r.Switch != nil
}

// Key returns the key the occupant yields, or entity.ItemNone.
func (r *Room) Key() entity.Item {
	switch {
	case r.Chest != nil:
		return r.Chest.Key()
	case r.Enemy != nil:
		return r.Enemy.Key()
	case r.Switch != nil:
		return r.Switch.Key()
	}
	return entity.ItemNone
}

// HasKey reports whether the occupant yields a small key.
func (r *Room) HasKey() bool {
	return r.Key() == entity.ItemSmallKey
}

// empty reports whether the room may receive an occupant.
func (r *Room) empty() bool {
	return r.Type != TypeExit && !r.Occupied()
}
