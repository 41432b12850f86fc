package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy type loaded from enemies.yaml.
type EnemyDef struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `yaml:"name"`        // Display name (e.g., "Goblin")
	Kind        string `yaml:"kind"`        // Strength class: small, big or boss
	Glyph       string `yaml:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `yaml:"color"`       // Hex code or colour name (e.g., "#00FF00", "olive")
	SpawnWeight int    `yaml:"spawnWeight"` // Relative frequency as a key holder; 0 never spawns
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// RGB returns the color as 8-bit channels for true-colour text output.
func (e *EnemyDef) RGB() (r, g, b uint8) {
	return RGB(e.TCellColor())
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.yaml file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
