// Package entity provides the occupants a room can hold (chests, enemies and
// switches) and the items and triggers they carry.
package entity

// Item is something an occupant can hold or hand out.
type Item int

const (
	ItemNone Item = iota
	ItemSmallKey
	ItemBossKey
)

// String returns the item name.
func (i Item) String() string {
	switch i {
	case ItemSmallKey:
		return "SmallKey"
	case ItemBossKey:
		return "BossKey"
	default:
		return "None"
	}
}

// IsKey reports whether the item opens a locked door.
func (i Item) IsKey() bool {
	return i == ItemSmallKey || i == ItemBossKey
}
