package entity

// Chest holds a single item.
type Chest struct {
	Item Item
}

// NewChest creates a chest holding item.
func NewChest(item Item) *Chest {
	return &Chest{Item: item}
}

// Key returns the key inside the chest, or ItemNone.
func (c *Chest) Key() Item {
	if c.Item.IsKey() {
		return c.Item
	}
	return ItemNone
}

// String returns the chest as "C(item)".
func (c *Chest) String() string {
	return "C(" + c.Item.String() + ")"
}
