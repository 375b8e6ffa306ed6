package model

import (
	"fmt"
	"strings"
)

// TilePath is one of the eight two-exit shapes a tile can form
type TilePath int

const (
	Straight TilePath = iota
	Diagonal
	Center90
	Corner90
	Left45
	Right45
	Left135
	Right135
)

type tilePathInfo struct {
	name       string
	directions [2]Direction
	points     int
}

// Exits are given at Rotation0
var tilePaths = [...]tilePathInfo{
	Straight: {name: "Straight", directions: [2]Direction{West, East}, points: 1},
	Diagonal: {name: "Diagonal", directions: [2]Direction{NorthWest, SouthEast}, points: 1},
	Center90: {name: "Center90", directions: [2]Direction{West, North}, points: 2},
	Corner90: {name: "Corner90", directions: [2]Direction{NorthWest, NorthEast}, points: 2},
	Left45:   {name: "Left45", directions: [2]Direction{West, NorthEast}, points: 2},
	Right45:  {name: "Right45", directions: [2]Direction{West, SouthEast}, points: 2},
	Left135:  {name: "Left135", directions: [2]Direction{West, NorthWest}, points: 3},
	Right135: {name: "Right135", directions: [2]Direction{West, SouthWest}, points: 3},
}

// AllTilePaths returns every shape
func AllTilePaths() []TilePath {
	return []TilePath{Straight, Diagonal, Center90, Corner90, Left45, Right45, Left135, Right135}
}

// Directions returns the two exits of the shape at Rotation0
func (p TilePath) Directions() [2]Direction {
	return tilePaths[p].directions
}

// Offsets returns the two exits of the shape turned by r
func (p TilePath) Offsets(r Rotation) [2]Offset {
	dirs := p.Directions()
	return [2]Offset{dirs[0].Offset().Rotate(r), dirs[1].Offset().Rotate(r)}
}

// Points is the intrinsic score of a tile with this shape
func (p TilePath) Points() int {
	return tilePaths[p].points
}

// Rotations returns the rotations that give distinct orientations.
// Shapes symmetric under 180° only need two.
func (p TilePath) Rotations() []Rotation {
	if p == Straight || p == Diagonal {
		return []Rotation{Rotation0, Rotation90}
	}
	return AllRotations()
}

func (p TilePath) String() string {
	if p < Straight || p > Right135 {
		return fmt.Sprintf("TilePath(%d)", int(p))
	}
	return tilePaths[p].name
}

// PlacementFor finds the shape and rotation whose exits are exactly a and b
func PlacementFor(a, b Offset) (TilePath, Rotation, bool) {
	for _, p := range AllTilePaths() {
		for _, r := range p.Rotations() {
			offsets := p.Offsets(r)
			if (offsets[0] == a && offsets[1] == b) || (offsets[0] == b && offsets[1] == a) {
				return p, r, true
			}
		}
	}
	return 0, 0, false
}

// Tile is a piece a player holds in their rack
type Tile int

const (
	TileStraight Tile = iota
	TileDiagonal
	TileCenter90
	TileCorner90
	TileLeft45
	TileRight45
	TileLeft135
	TileRight135
	TileUniversal
)

// UniversalPoints is the score of a universal tile wherever it is placed
const UniversalPoints = 0

// AllTiles returns every tile kind
func AllTiles() []Tile {
	return []Tile{
		TileStraight, TileDiagonal, TileCenter90, TileCorner90,
		TileLeft45, TileRight45, TileLeft135, TileRight135, TileUniversal,
	}
}

// TileFor returns the normal tile with the given shape
func TileFor(p TilePath) Tile {
	return Tile(p)
}

// IsUniversal returns true for the wildcard tile
func (t Tile) IsUniversal() bool {
	return t == TileUniversal
}

// Paths returns the shapes the tile can represent
func (t Tile) Paths() []TilePath {
	if t.IsUniversal() {
		return AllTilePaths()
	}
	return []TilePath{TilePath(t)}
}

// Points is the intrinsic score of the tile
func (t Tile) Points() int {
	if t.IsUniversal() {
		return UniversalPoints
	}
	return TilePath(t).Points()
}

// PathType returns the tile as placed with shape p
func (t Tile) PathType(p TilePath) TilePathType {
	if t.IsUniversal() {
		return UniversalPath(p)
	}
	return NormalPath(TilePath(t))
}

func (t Tile) String() string {
	if t.IsUniversal() {
		return "Universal"
	}
	return TilePath(t).String()
}

// ParseTile accepts a tile name, case-insensitively
func ParseTile(s string) (Tile, error) {
	for _, t := range AllTiles() {
		if strings.EqualFold(t.String(), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTile, s)
}

// ParseTilePath accepts a shape name, case-insensitively
func ParseTilePath(s string) (TilePath, error) {
	for _, p := range AllTilePaths() {
		if strings.EqualFold(p.String(), strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTile, s)
}

// TilePathType is a placed shape, either fixed or a universal tile committed
// to a shape. The committed shape of a universal tile only changes through
// Board.UpdateUniversalPath.
type TilePathType struct {
	universal bool
	path      TilePath
}

// NormalPath is a tile with a fixed shape
func NormalPath(p TilePath) TilePathType {
	return TilePathType{path: p}
}

// UniversalPath is a universal tile committed to shape p
func UniversalPath(p TilePath) TilePathType {
	return TilePathType{universal: true, path: p}
}

// TilePath returns the shape used for adjacency
func (t TilePathType) TilePath() TilePath {
	return t.path
}

// IsUniversal returns true for a committed wildcard
func (t TilePathType) IsUniversal() bool {
	return t.universal
}

// Tile returns the rack tile this placement came from
func (t TilePathType) Tile() Tile {
	if t.universal {
		return TileUniversal
	}
	return TileFor(t.path)
}

// Points is the intrinsic score of the placed tile
func (t TilePathType) Points() int {
	return t.Tile().Points()
}

func (t TilePathType) String() string {
	if t.universal {
		return fmt.Sprintf("Universal(%s)", t.path)
	}
	return t.path.String()
}

// withPath re-tags a universal tile
func (t TilePathType) withPath(p TilePath) TilePathType {
	return TilePathType{universal: t.universal, path: p}
}

// Placement is what a cell holds once a tile is laid on it
type Placement struct {
	PathType TilePathType
	Rotation Rotation
}

// Offsets returns the two exits of the placed tile
func (p Placement) Offsets() [2]Offset {
	return p.PathType.TilePath().Offsets(p.Rotation)
}

// TilePlacement is a placement at specific coordinates
type TilePlacement struct {
	Coordinates Coordinates
	PathType    TilePathType
	Rotation    Rotation
}

// Placement returns the cell content for this tile placement
func (tp TilePlacement) Placement() Placement {
	return Placement{PathType: tp.PathType, Rotation: tp.Rotation}
}

func (tp TilePlacement) String() string {
	return fmt.Sprintf("%s %s @ %s", tp.PathType, tp.Rotation, tp.Coordinates)
}
