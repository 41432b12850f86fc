package game

// Config holds viewer options.
type Config struct {
	// Seed is the first seed shown. Later seeds are derived from it.
	Seed []int
	// RoomCount and MaxTries are passed to the generator unchanged.
	RoomCount int
	MaxTries  int
}
