package model

import (
	"fmt"
	"slices"
)

// Coordinates identifies a cell on the board
type Coordinates struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left; EndOfGameCol is the end-of-game column
}

// Add steps the coordinates by an offset
func (c Coordinates) Add(o Offset) Coordinates {
	return Coordinates{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Less orders coordinates row-major
func (c Coordinates) Less(other Coordinates) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Offset is a single-cell step in one of the eight compass directions
type Offset struct {
	Row int
	Col int
}

// Neg returns the opposite offset
func (o Offset) Neg() Offset {
	return Offset{Row: -o.Row, Col: -o.Col}
}

// IsDiagonal returns true if both components are nonzero
func (o Offset) IsDiagonal() bool {
	return o.Row != 0 && o.Col != 0
}

// Rotate turns the offset clockwise by the given rotation
func (o Offset) Rotate(r Rotation) Offset {
	switch r {
	case Rotation90:
		return Offset{Row: o.Col, Col: -o.Row}
	case Rotation180:
		return Offset{Row: -o.Row, Col: -o.Col}
	case Rotation270:
		return Offset{Row: -o.Col, Col: o.Row}
	default:
		return o
	}
}

// Direction returns the compass direction of the offset
func (o Offset) Direction() (Direction, bool) {
	for _, d := range AllDirections() {
		if d.Offset() == o {
			return d, true
		}
	}
	return 0, false
}

func (o Offset) String() string {
	if d, ok := o.Direction(); ok {
		return d.String()
	}
	return fmt.Sprintf("<%d, %d>", o.Row, o.Col)
}

// Direction is one of the eight compass directions
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionOffsets = [...]Offset{
	North:     {Row: -1, Col: 0},
	NorthEast: {Row: -1, Col: 1},
	East:      {Row: 0, Col: 1},
	SouthEast: {Row: 1, Col: 1},
	South:     {Row: 1, Col: 0},
	SouthWest: {Row: 1, Col: -1},
	West:      {Row: 0, Col: -1},
	NorthWest: {Row: -1, Col: -1},
}

var directionNames = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// AllDirections returns the eight directions clockwise from north
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// Offset returns the single-cell step for the direction
func (d Direction) Offset() Offset {
	return directionOffsets[d]
}

func (d Direction) String() string {
	if d < North || d > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Rotation is a clockwise quarter-turn orientation
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// AllRotations returns the four rotations in increasing order
func AllRotations() []Rotation {
	return []Rotation{Rotation0, Rotation90, Rotation180, Rotation270}
}

// Degrees returns the rotation in degrees
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Valid returns true for one of the four fixed orientations
func (r Rotation) Valid() bool {
	return r >= Rotation0 && r <= Rotation270
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// ParseRotation accepts 0, 90, 180 or 270
func ParseRotation(s string) (Rotation, error) {
	switch s {
	case "0":
		return Rotation0, nil
	case "90":
		return Rotation90, nil
	case "180":
		return Rotation180, nil
	case "270":
		return Rotation270, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}
}

// Anchor is the last placement on the path: where it is and which way it exits
type Anchor struct {
	Coordinates Coordinates
	Offset      Offset
}

// Forward returns the coordinates the next tile must occupy
func (a Anchor) Forward() Coordinates {
	return a.Coordinates.Add(a.Offset)
}

// CoordinateSet is an unordered set of coordinates
type CoordinateSet map[Coordinates]struct{}

// NewCoordinateSet builds a set from the given coordinates
func NewCoordinateSet(coords ...Coordinates) CoordinateSet {
	set := make(CoordinateSet, len(coords))
	for _, c := range coords {
		set[c] = struct{}{}
	}
	return set
}

func (s CoordinateSet) Add(c Coordinates) {
	s[c] = struct{}{}
}

func (s CoordinateSet) Remove(c Coordinates) {
	delete(s, c)
}

func (s CoordinateSet) Has(c Coordinates) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy
func (s CoordinateSet) Clone() CoordinateSet {
	clone := make(CoordinateSet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// Sorted returns the members in row-major order
func (s CoordinateSet) Sorted() []Coordinates {
	coords := make([]Coordinates, 0, len(s))
	for c := range s {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b Coordinates) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return coords
}
