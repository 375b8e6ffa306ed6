package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

func straight(r Rotation) Placement {
	return Placement{PathType: NormalPath(Straight), Rotation: r}
}

// Layout tests

func (s *BoardSuite) TestNewBoardStartsAtInitialAnchor() {
	s.Equal(InitialAnchor, s.board.LastPlacement())
	s.Equal(Coordinates{Row: StartRow, Col: 0}, s.board.LastPlacement().Forward())
	s.Equal(0, s.board.TileCount())
}

func (s *BoardSuite) TestBonusLayoutIsMirrored() {
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			bonus := s.board.Cells[row][col].Bonus
			s.Equal(bonus, s.board.Cells[BoardRows-1-row][col].Bonus, "row mirror of (%d, %d)", row, col)
			s.Equal(bonus, s.board.Cells[row][BoardCols-1-col].Bonus, "column mirror of (%d, %d)", row, col)
		}
		s.Equal(s.board.EndOfGame[row].Bonus, s.board.EndOfGame[BoardRows-1-row].Bonus)
	}
	s.Equal(3, s.board.Cells[1][1].Bonus)
	s.Equal(3, s.board.Cells[18][18].Bonus)
}

// Bounds tests

func (s *BoardSuite) TestCellBounds() {
	s.NotNil(s.board.Cell(Coordinates{Row: 0, Col: 0}))
	s.NotNil(s.board.Cell(Coordinates{Row: BoardRows - 1, Col: BoardCols - 1}))
	s.NotNil(s.board.Cell(Coordinates{Row: 3, Col: EndOfGameCol}))
	s.Nil(s.board.Cell(Coordinates{Row: -1, Col: 0}))
	s.Nil(s.board.Cell(Coordinates{Row: 0, Col: -1}))
	s.Nil(s.board.Cell(Coordinates{Row: BoardRows, Col: 0}))
	s.Nil(s.board.Cell(Coordinates{Row: 0, Col: EndOfGameCol + 1}))
	s.Nil(s.board.Cell(Coordinates{Row: BoardRows, Col: EndOfGameCol}))
}

func (s *BoardSuite) TestEndOfGameCellIsTheColumnCell() {
	c := Coordinates{Row: 4, Col: EndOfGameCol}
	s.Same(&s.board.EndOfGame[4], s.board.Cell(c))
	s.True(s.board.InBounds(c))
	s.True(IsEndOfGameColumn(c))
	s.False(IsEndOfGameColumn(Coordinates{Row: 4, Col: BoardCols - 1}))
}

// PlaceTile tests

func (s *BoardSuite) TestPlaceTileScoresTileAndBonus() {
	score, err := s.board.PlaceTile(Coordinates{Row: 0, Col: 0}, straight(Rotation0))
	s.Require().NoError(err)
	s.Equal(TurnScore{Add: 1}, score)

	score, err = s.board.PlaceTile(Coordinates{Row: 1, Col: 1}, Placement{PathType: NormalPath(Left135)})
	s.Require().NoError(err)
	s.Equal(TurnScore{Add: 6}, score)

	score, err = s.board.PlaceTile(Coordinates{Row: 1, Col: 7}, straight(Rotation90))
	s.Require().NoError(err)
	s.Equal(TurnScore{Add: 1, Sub: -2}, score)
	s.Equal(-1, score.Total())
}

func (s *BoardSuite) TestPlaceUniversalScoresOnlyBonus() {
	score, err := s.board.PlaceTile(Coordinates{Row: 1, Col: 1}, Placement{PathType: UniversalPath(Left135)})
	s.Require().NoError(err)
	s.Equal(TurnScore{Add: 3}, score)
}

func (s *BoardSuite) TestPlaceTileInvalidCoordinates() {
	_, err := s.board.PlaceTile(Coordinates{Row: -1, Col: 0}, straight(Rotation0))
	s.ErrorIs(err, ErrInvalidCoordinates)
	s.Equal([]Coordinates{{Row: -1, Col: 0}}, ErrorCoordinates(err))

	_, err = s.board.PlaceTile(Coordinates{Row: 0, Col: EndOfGameCol + 1}, straight(Rotation0))
	s.ErrorIs(err, ErrInvalidCoordinates)
}

func (s *BoardSuite) TestPlaceTileInEndOfGameColumn() {
	_, err := s.board.PlaceTile(Coordinates{Row: 0, Col: EndOfGameCol}, straight(Rotation0))
	s.Require().NoError(err)
	s.Equal([]Coordinates{{Row: 0, Col: EndOfGameCol}}, s.board.EndOfGameTiles())
}

func (s *BoardSuite) TestPlaceTileCellOccupied() {
	c := Coordinates{Row: 2, Col: 2}
	_, _ = s.board.PlaceTile(c, straight(Rotation0))

	_, err := s.board.PlaceTile(c, straight(Rotation90))
	s.ErrorIs(err, ErrCellOccupied)
	s.Equal(Rotation0, s.board.Cell(c).Tile.Rotation)
}

// RemoveTile tests

func (s *BoardSuite) TestRemoveTileReversesScore() {
	for _, c := range []Coordinates{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 7}, {Row: 5, Col: EndOfGameCol}} {
		placed, err := s.board.PlaceTile(c, Placement{PathType: NormalPath(Center90), Rotation: Rotation180})
		s.Require().NoError(err)

		p, removed, ok := s.board.RemoveTile(c)
		s.Require().True(ok)
		s.Equal(placed.Neg(), removed)
		s.True(placed.Plus(removed).IsZero())
		s.Equal(NormalPath(Center90), p.PathType)
		s.Equal(Rotation180, p.Rotation)
		s.True(s.board.Cell(c).IsEmpty())
	}
}

func (s *BoardSuite) TestRemoveTileEmpty() {
	_, _, ok := s.board.RemoveTile(Coordinates{Row: 0, Col: 0})
	s.False(ok)

	_, _, ok = s.board.RemoveTile(Coordinates{Row: -5, Col: 0})
	s.False(ok)
}

// RotateTile tests

func (s *BoardSuite) TestRotateTile() {
	c := Coordinates{Row: 1, Col: 1}
	_, _ = s.board.PlaceTile(c, straight(Rotation0))

	s.Require().NoError(s.board.RotateTile(c, Rotation90))
	s.Equal(Rotation90, s.board.Cell(c).Tile.Rotation)
	s.Equal(4, s.board.Cell(c).Score())
}

func (s *BoardSuite) TestRotateTileErrors() {
	s.ErrorIs(s.board.RotateTile(Coordinates{Row: 0, Col: 0}, Rotation90), ErrNoTile)
	s.ErrorIs(s.board.RotateTile(Coordinates{Row: 0, Col: -1}, Rotation90), ErrInvalidCoordinates)
}

func (s *BoardSuite) TestRotateDoesNotLeakIntoClone() {
	c := Coordinates{Row: 3, Col: 3}
	_, _ = s.board.PlaceTile(c, straight(Rotation0))
	clone := s.board.Clone()

	s.Require().NoError(s.board.RotateTile(c, Rotation90))
	s.Equal(Rotation0, clone.Cell(c).Tile.Rotation)
}

// MoveTile tests

func (s *BoardSuite) TestMoveTileBetweenPlainCellsIsNeutral() {
	_, _ = s.board.PlaceTile(Coordinates{Row: 0, Col: 0}, straight(Rotation0))

	delta, err := s.board.MoveTile(Coordinates{Row: 0, Col: 0}, Coordinates{Row: 0, Col: 5})
	s.Require().NoError(err)
	s.Equal(0, delta.Total())
	s.True(s.board.Cell(Coordinates{Row: 0, Col: 0}).IsEmpty())
	s.False(s.board.Cell(Coordinates{Row: 0, Col: 5}).IsEmpty())
}

func (s *BoardSuite) TestMoveTileOntoBonusAddsBonus() {
	_, _ = s.board.PlaceTile(Coordinates{Row: 0, Col: 0}, straight(Rotation0))
	delta, err := s.board.MoveTile(Coordinates{Row: 0, Col: 0}, Coordinates{Row: 1, Col: 1})
	s.Require().NoError(err)
	s.Equal(3, delta.Total())

	delta, err = s.board.MoveTile(Coordinates{Row: 1, Col: 1}, Coordinates{Row: 1, Col: 7})
	s.Require().NoError(err)
	s.Equal(-5, delta.Total())
}

func (s *BoardSuite) TestMoveTileFailureRestores() {
	from := Coordinates{Row: 0, Col: 0}
	to := Coordinates{Row: 0, Col: 1}
	_, _ = s.board.PlaceTile(from, straight(Rotation90))
	_, _ = s.board.PlaceTile(to, straight(Rotation0))

	_, err := s.board.MoveTile(from, to)
	s.ErrorIs(err, ErrCellOccupied)
	s.Require().NotNil(s.board.Cell(from).Tile)
	s.Equal(Rotation90, s.board.Cell(from).Tile.Rotation)
	s.Equal(Rotation0, s.board.Cell(to).Tile.Rotation)

	_, err = s.board.MoveTile(from, Coordinates{Row: -1, Col: 0})
	s.ErrorIs(err, ErrInvalidCoordinates)
	s.NotNil(s.board.Cell(from).Tile)
}

func (s *BoardSuite) TestMoveTileNothingToMove() {
	_, err := s.board.MoveTile(Coordinates{Row: 0, Col: 0}, Coordinates{Row: 0, Col: 1})
	s.ErrorIs(err, ErrNoTile)
}

// UpdateUniversalPath tests

func (s *BoardSuite) TestUpdateUniversalPath() {
	c := Coordinates{Row: 4, Col: 4}
	_, _ = s.board.PlaceTile(c, Placement{PathType: UniversalPath(Straight), Rotation: Rotation90})

	old, err := s.board.UpdateUniversalPath(c, Right45)
	s.Require().NoError(err)
	s.Equal(Straight, old)
	s.Equal(UniversalPath(Right45), s.board.Cell(c).Tile.PathType)
	s.Equal(Rotation90, s.board.Cell(c).Tile.Rotation)
}

func (s *BoardSuite) TestUpdateUniversalPathErrors() {
	c := Coordinates{Row: 4, Col: 4}
	_, err := s.board.UpdateUniversalPath(c, Right45)
	s.ErrorIs(err, ErrNoTile)

	_, _ = s.board.PlaceTile(c, straight(Rotation0))
	_, err = s.board.UpdateUniversalPath(c, Right45)
	s.ErrorIs(err, ErrNotUniversal)
	s.Equal(NormalPath(Straight), s.board.Cell(c).Tile.PathType)
}
