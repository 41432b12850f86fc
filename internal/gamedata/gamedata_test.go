package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 3 {
		t.Errorf("Expected 3 enemies, got %d", len(enemies))
	}

	expectedKinds := map[string]bool{"small": false, "big": false, "boss": false}
	for _, e := range enemies {
		if _, ok := expectedKinds[e.Kind]; ok {
			expectedKinds[e.Kind] = true
		}
	}

	for kind, found := range expectedKinds {
		if !found {
			t.Errorf("Expected an enemy of kind %q", kind)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	goblin := registry.GetByID("goblin")
	if goblin == nil {
		t.Fatal("Goblin not found by ID")
	}
	if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}

	if boss := registry.FirstOfKind("boss"); boss == nil || boss.SpawnWeight != 0 {
		t.Errorf("Expected a boss definition with zero spawn weight, got %+v", boss)
	}

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 50; i++ {
		a := registry.SpawnRandom(rng1)
		b := registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
		if a.Kind == "boss" {
			t.Errorf("Spawn %d picked the boss", i)
		}
	}
}

// fixedRoll returns the same value for every draw.
type fixedRoll int

func (f fixedRoll) Intn(n int) int { return int(f) % n }

func TestSpawnRandomWeights(t *testing.T) {
	registry := NewEnemyRegistry([]EnemyDef{
		{ID: "a", SpawnWeight: 3},
		{ID: "b", SpawnWeight: 1},
		{ID: "c", SpawnWeight: 0},
	})

	tests := []struct {
		roll int
		want string
	}{
		{0, "a"},
		{2, "a"},
		{3, "b"},
	}
	for _, tt := range tests {
		if got := registry.SpawnRandom(fixedRoll(tt.roll)).ID; got != tt.want {
			t.Errorf("roll %d: expected %s, got %s", tt.roll, tt.want, got)
		}
	}

	empty := NewEnemyRegistry(nil)
	if empty.SpawnRandom(fixedRoll(0)) != nil {
		t.Error("Expected nil from an empty registry")
	}
}

func TestKeyHolderTable(t *testing.T) {
	table, err := LoadKeyHolderTable()
	if err != nil {
		t.Fatalf("Failed to load key holders: %v", err)
	}

	bag := table.Bag()
	want := []KeyHolderKind{HolderChest, HolderChest, HolderSwitch, HolderEnemy}
	if len(bag) != len(want) {
		t.Fatalf("Expected bag of %d, got %v", len(want), bag)
	}
	for i := range want {
		if bag[i] != want[i] {
			t.Errorf("bag[%d]: expected %s, got %s", i, want[i], bag[i])
		}
	}

	bag[0] = HolderEnemy
	if table.Bag()[0] != HolderChest {
		t.Error("Bag should return a fresh slice")
	}
}

func TestNewKeyHolderTableRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		defs []KeyHolderDef
	}{
		{"unknown kind", []KeyHolderDef{{Kind: "barrel", Weight: 1}}},
		{"negative weight", []KeyHolderDef{{Kind: HolderChest, Weight: -1}}},
		{"no weight", []KeyHolderDef{{Kind: HolderChest, Weight: 0}}},
		{"empty", nil},
	}
	for _, tt := range tests {
		if _, err := NewKeyHolderTable(tt.defs); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewHexColor(0xFF0000), true},
		{"FF0000", tcell.NewHexColor(0xFF0000), true},
		{"#6abe30", tcell.NewHexColor(0x6ABE30), true},
		{"Red", tcell.ColorRed, true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false},
		{"#GG0000", tcell.ColorDefault, false},
		{"", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
		if tt.valid && got.Hex() != tt.want.Hex() {
			t.Errorf("ParseColor(%q) = %06x, want %06x", tt.input, got.Hex(), tt.want.Hex())
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(tcell.NewHexColor(0x6ABE30))
	if r != 0x6A || g != 0xBE || b != 0x30 {
		t.Errorf("RGB = %02x%02x%02x, want 6abe30", r, g, b)
	}
	r, g, b = RGB(tcell.ColorDefault)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("RGB(default) = %d,%d,%d, want white", r, g, b)
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}

	blank := EnemyDef{}
	if blank.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", blank.GlyphRune())
	}
}
