package snake

import "fmt"

// Position is a grid cell. Valid positions satisfy 0 <= X, Y < AreaSize.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is the snake's heading.
type Direction uint8

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Delta returns the unit velocity for the direction. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool { return d <= Left }

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("snake: cannot encode %v", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name produced by MarshalText.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(name string) (Direction, error) {
	for d := None; d <= Left; d++ {
		if d.String() == name {
			return d, nil
		}
	}
	return None, fmt.Errorf("snake: unknown direction %q", name)
}
