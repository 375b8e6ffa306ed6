package model

// Board dimensions. The end-of-game column sits one past the last column.
const (
	BoardRows    = 20
	BoardCols    = 20
	EndOfGameCol = BoardCols
	StartRow     = BoardRows / 2
)

// InitialAnchor is the start arrow: just off the left edge, flowing east
var InitialAnchor = Anchor{
	Coordinates: Coordinates{Row: StartRow, Col: -1},
	Offset:      East.Offset(),
}

// Cell is a board square with a fixed bonus and at most one tile.
// Placements are replaced, never mutated, so board clones can share them.
type Cell struct {
	Bonus int
	Tile  *Placement
}

// IsEmpty returns true if no tile has been laid on the cell
func (c *Cell) IsEmpty() bool {
	return c.Tile == nil
}

// Score returns the bonus plus the tile's points, or just the bonus if empty
func (c *Cell) Score() int {
	if c.Tile == nil {
		return c.Bonus
	}
	return c.Bonus + c.Tile.PathType.Points()
}

// Board is the game grid, the end-of-game column and the river's anchor
type Board struct {
	Cells     [BoardRows][BoardCols]Cell
	EndOfGame [BoardRows]Cell

	lastPlacement Anchor
}

// NewBoard creates an empty board with the standard bonus layout
func NewBoard() *Board {
	b := &Board{lastPlacement: InitialAnchor}
	for _, bonus := range bonusCells() {
		b.Cells[bonus.Row][bonus.Col].Bonus = bonus.Value
	}
	for row, value := range endOfGameBonuses() {
		b.EndOfGame[row].Bonus = value
	}
	return b
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// LastPlacement returns the anchor the next tile must continue from
func (b *Board) LastPlacement() Anchor {
	return b.lastPlacement
}

// SetLastPlacement moves the anchor. Only a validated turn should call this.
func (b *Board) SetLastPlacement(a Anchor) {
	b.lastPlacement = a
}

// IsEndOfGameColumn returns true for coordinates in the end-of-game column
func IsEndOfGameColumn(c Coordinates) bool {
	return c.Col == EndOfGameCol && c.Row >= 0 && c.Row < BoardRows
}

// InBounds returns true for main grid coordinates and the end-of-game column
func (b *Board) InBounds(c Coordinates) bool {
	return (c.Row >= 0 && c.Row < BoardRows && c.Col >= 0 && c.Col < BoardCols) || IsEndOfGameColumn(c)
}

// Cell returns the cell at c, or nil if c is out of bounds
func (b *Board) Cell(c Coordinates) *Cell {
	if IsEndOfGameColumn(c) {
		return &b.EndOfGame[c.Row]
	}
	if !b.InBounds(c) {
		return nil
	}
	return &b.Cells[c.Row][c.Col]
}

// HasTile returns true if there is a tile at c
func (b *Board) HasTile(c Coordinates) bool {
	cell := b.Cell(c)
	return cell != nil && cell.Tile != nil
}

// PlaceTile lays a tile and returns the cell's score contribution
func (b *Board) PlaceTile(c Coordinates, p Placement) (TurnScore, error) {
	cell := b.Cell(c)
	if cell == nil {
		return TurnScore{}, NewCellError(ErrInvalidCoordinates, c)
	}
	if cell.Tile != nil {
		return TurnScore{}, NewCellError(ErrCellOccupied, c)
	}
	placed := p
	cell.Tile = &placed
	return NewTurnScore(p.PathType.Points(), cell.Bonus), nil
}

// RemoveTile takes the tile off c, returning it and the negation of the
// score it contributed. ok is false if there was nothing to remove.
func (b *Board) RemoveTile(c Coordinates) (p Placement, score TurnScore, ok bool) {
	cell := b.Cell(c)
	if cell == nil || cell.Tile == nil {
		return Placement{}, TurnScore{}, false
	}
	p = *cell.Tile
	cell.Tile = nil
	return p, NewTurnScore(p.PathType.Points(), cell.Bonus).Neg(), true
}

// RotateTile changes the rotation of the tile at c. Score is unaffected.
func (b *Board) RotateTile(c Coordinates, r Rotation) error {
	cell := b.Cell(c)
	if cell == nil {
		return NewCellError(ErrInvalidCoordinates, c)
	}
	if cell.Tile == nil {
		return NewCellError(ErrNoTile, c)
	}
	if !r.Valid() {
		return NewCellError(ErrInvalidRotation, c)
	}
	cell.Tile = &Placement{PathType: cell.Tile.PathType, Rotation: r}
	return nil
}

// MoveTile moves a tile from old to new. If it can't be placed at new it is
// put back at old and the board is unchanged.
func (b *Board) MoveTile(old, new Coordinates) (TurnScore, error) {
	p, removed, ok := b.RemoveTile(old)
	if !ok {
		if b.Cell(old) == nil {
			return TurnScore{}, NewCellError(ErrInvalidCoordinates, old)
		}
		return TurnScore{}, NewCellError(ErrNoTile, old)
	}
	placed, err := b.PlaceTile(new, p)
	if err != nil {
		// old was just emptied so this can't fail
		_, _ = b.PlaceTile(old, p)
		return TurnScore{}, err
	}
	return removed.Plus(placed), nil
}

// UpdateUniversalPath re-tags the universal tile at c and returns its previous shape
func (b *Board) UpdateUniversalPath(c Coordinates, path TilePath) (TilePath, error) {
	cell := b.Cell(c)
	if cell == nil {
		return 0, NewCellError(ErrInvalidCoordinates, c)
	}
	if cell.Tile == nil {
		return 0, NewCellError(ErrNoTile, c)
	}
	if !cell.Tile.PathType.IsUniversal() {
		return 0, NewCellError(ErrNotUniversal, c)
	}
	old := cell.Tile.PathType.TilePath()
	cell.Tile = &Placement{PathType: cell.Tile.PathType.withPath(path), Rotation: cell.Tile.Rotation}
	return old, nil
}

// EndOfGameTiles returns the coordinates of occupied end-of-game cells
func (b *Board) EndOfGameTiles() []Coordinates {
	var coords []Coordinates
	for row := range b.EndOfGame {
		if b.EndOfGame[row].Tile != nil {
			coords = append(coords, Coordinates{Row: row, Col: EndOfGameCol})
		}
	}
	return coords
}

// TileCount returns the number of tiles on the board, end-of-game column included
func (b *Board) TileCount() int {
	count := len(b.EndOfGameTiles())
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			if b.Cells[row][col].Tile != nil {
				count++
			}
		}
	}
	return count
}
