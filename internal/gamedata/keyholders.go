package gamedata

import "fmt"

// KeyHolderKind names an occupant that can carry a small key.
type KeyHolderKind string

const (
	HolderChest  KeyHolderKind = "chest"
	HolderSwitch KeyHolderKind = "switch"
	HolderEnemy  KeyHolderKind = "enemy"
)

// KeyHolderDef is one weighted entry of keyholders.yaml.
type KeyHolderDef struct {
	Kind   KeyHolderKind `yaml:"kind"`
	Weight int           `yaml:"weight"`
}

// KeyHoldersFile represents the structure of keyholders.yaml.
type KeyHoldersFile struct {
	KeyHolders []KeyHolderDef `yaml:"keyHolders"`
}

// KeyHolderTable is the weighted set of occupants small keys are handed to.
type KeyHolderTable struct {
	defs []KeyHolderDef
}

// NewKeyHolderTable validates defs and builds a table from them.
func NewKeyHolderTable(defs []KeyHolderDef) (*KeyHolderTable, error) {
	total := 0
	for _, d := range defs {
		switch d.Kind {
		case HolderChest, HolderSwitch, HolderEnemy:
		default:
			return nil, fmt.Errorf("unknown key holder kind %q", d.Kind)
		}
		if d.Weight < 0 {
			return nil, fmt.Errorf("key holder %s has negative weight %d", d.Kind, d.Weight)
		}
		total += d.Weight
	}
	if total == 0 {
		return nil, fmt.Errorf("key holder table has no weight")
	}
	return &KeyHolderTable{defs: defs}, nil
}

// LoadKeyHolderTable loads the embedded keyholders.yaml.
func LoadKeyHolderTable() (*KeyHolderTable, error) {
	file, err := Load[KeyHoldersFile]("keyholders.yaml")
	if err != nil {
		return nil, err
	}
	return NewKeyHolderTable(file.KeyHolders)
}

// MustLoadKeyHolderTable loads the table, panicking on error.
func MustLoadKeyHolderTable() *KeyHolderTable {
	table, err := LoadKeyHolderTable()
	if err != nil {
		panic(err)
	}
	return table
}

// Bag returns a fresh slice holding each kind Weight times, in table order.
// Callers shuffle it before drawing.
func (t *KeyHolderTable) Bag() []KeyHolderKind {
	var bag []KeyHolderKind
	for _, d := range t.defs {
		for i := 0; i < d.Weight; i++ {
			bag = append(bag, d.Kind)
		}
	}
	return bag
}

// All returns the table entries.
func (t *KeyHolderTable) All() []KeyHolderDef {
	return t.defs
}
