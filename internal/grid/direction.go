package grid

// Direction is a cardinal direction.
type Direction int

// Direction constants. DirectionNone signals that no free neighbour exists.
const (
	North Direction = iota
	East
	South
	West
	DirectionNone
)

// AllDirections returns the four cardinal directions in fixed order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the offset of one step in this direction. North decreases Y.
func (d Direction) Delta() Offset {
	switch d {
	case North:
		return Offset{X: 0, Y: -1}
	case East:
		return Offset{X: 1, Y: 0}
	case South:
		return Offset{X: 0, Y: 1}
	case West:
		return Offset{X: -1, Y: 0}
	default:
		return Offset{}
	}
}

// DirectionBetween returns the side of from that faces to.
// A difference in x wins over a difference in y; equal offsets yield North.
func DirectionBetween(from, to Offset) Direction {
	switch {
	case from.X < to.X:
		return East
	case from.X > to.X:
		return West
	case from.Y < to.Y:
		return South
	default:
		return North
	}
}
