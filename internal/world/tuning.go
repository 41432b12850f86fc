package world

import "fmt"

// Tuning holds the knobs of the generation stages.
type Tuning struct {
	// MaxCorridorLength bounds how many rooms are laid in one direction
	// before a new direction is rolled.
	MaxCorridorLength int `mapstructure:"max_corridor_length"`
	// AbortVariance: a variance roll below it ends the current corridor
	// (out of 256).
	AbortVariance int `mapstructure:"abort_variance"`
	// TurnVariance: a variance roll below it rerolls the direction after
	// placing a room (out of 256).
	TurnVariance int `mapstructure:"turn_variance"`
	// LockDivisor and LockJitter size the lock budget:
	// empty rooms / LockDivisor + [0, LockJitter].
	LockDivisor int `mapstructure:"lock_divisor"`
	LockJitter  int `mapstructure:"lock_jitter"`
	// DoorRatio is the remaining-doors per lock ratio below which the lock
	// distributor moves on to the next path.
	DoorRatio int `mapstructure:"door_ratio"`
	// KeySpacing is the preferred minimum distance between key holders.
	KeySpacing int `mapstructure:"key_spacing"`
}

// DefaultTuning returns the standard generation parameters.
func DefaultTuning() Tuning {
	return Tuning{
		MaxCorridorLength: 2,
		AbortVariance:     25,
		TurnVariance:      100,
		LockDivisor:       4,
		LockJitter:        1,
		DoorRatio:         2,
		KeySpacing:        2,
	}
}

// Validate reports the first parameter that would make generation misbehave.
func (t Tuning) Validate() error {
	switch {
	case t.MaxCorridorLength < 1:
		return fmt.Errorf("max corridor length must be at least 1, got %d", t.MaxCorridorLength)
	case t.AbortVariance < 0 || t.AbortVariance > 256:
		return fmt.Errorf("abort variance must be in [0, 256], got %d", t.AbortVariance)
	case t.TurnVariance < 0 || t.TurnVariance > 256:
		return fmt.Errorf("turn variance must be in [0, 256], got %d", t.TurnVariance)
	case t.LockDivisor < 1:
		return fmt.Errorf("lock divisor must be at least 1, got %d", t.LockDivisor)
	case t.LockJitter < 0:
		return fmt.Errorf("lock jitter must not be negative, got %d", t.LockJitter)
	case t.DoorRatio < 1:
		return fmt.Errorf("door ratio must be at least 1, got %d", t.DoorRatio)
	case t.KeySpacing < 0:
		return fmt.Errorf("key spacing must not be negative, got %d", t.KeySpacing)
	}
	return nil
}
