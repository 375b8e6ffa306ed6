package bot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/board"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
	"github.com/threecgreen/nile-sub000/internal/testutil"
)

type BruteForceSuite struct {
	suite.Suite
	board    *model.Board
	strategy *bot.BruteForce
}

func TestBruteForceSuite(t *testing.T) {
	suite.Run(t, new(BruteForceSuite))
}

func (s *BruteForceSuite) SetupTest() {
	s.board = model.NewBoard()
	s.strategy = bot.NewBruteForce(bot.DefaultSearchConfig(), testutil.NopLogger())
}

func at(row, col int) model.Coordinates {
	return model.Coordinates{Row: row, Col: col}
}

func (s *BruteForceSuite) TestRankingIsMonotonic() {
	hand := []model.Tile{model.TileCenter90, model.TileStraight, model.TileLeft45, model.TileRight135, model.TileDiagonal}

	candidates := s.strategy.TakeTurn(hand, s.board, 0, []int{0})
	s.Require().NotEmpty(candidates)
	for i := 1; i < len(candidates); i++ {
		s.GreaterOrEqual(candidates[i-1].Score, candidates[i].Score)
	}
}

func (s *BruteForceSuite) TestCandidatesAreLegal() {
	hand := []model.Tile{model.TileCenter90, model.TileStraight, model.TileLeft45, model.TileRight135, model.TileDiagonal}
	validator := board.New(testutil.NopLogger())

	candidates := s.strategy.TakeTurn(hand, s.board, 0, []int{0})
	s.Require().NotEmpty(candidates)

	for _, c := range candidates {
		clone := s.board.Clone()
		moves := model.NewCoordinateSet()
		anchor := clone.LastPlacement()
		for _, tp := range c.Placements {
			s.True(clone.InBounds(tp.Coordinates), "%s", tp)
			s.False(moves.Has(tp.Coordinates), "reused %s", tp.Coordinates)

			next, err := board.EvalPlacement(anchor, tp)
			s.Require().NoError(err, "%v", c.Placements)
			s.Require().NoError(board.NoCrossover(clone, next), "%v", c.Placements)

			_, err = clone.PlaceTile(tp.Coordinates, tp.Placement())
			s.Require().NoError(err)
			moves.Add(tp.Coordinates)
			anchor = next
		}

		// Every candidate also passes the full turn check, encirclement included
		_, err := validator.ValidateTurnsMoves(clone, moves)
		s.NoError(err, "%v", c.Placements)
	}
}

// trap walls in (5, 9) with straights so a river running east along row 5
// from (5, 5) is encircled once it reaches (5, 8)
func trap(t *testing.T, b *model.Board) {
	t.Helper()
	for _, c := range []model.Coordinates{at(4, 8), at(4, 9), at(4, 10), at(5, 10), at(6, 8), at(6, 9), at(6, 10)} {
		_, err := b.PlaceTile(c, model.Placement{PathType: model.NormalPath(model.Straight)})
		require.NoError(t, err)
	}
	b.SetLastPlacement(model.Anchor{Coordinates: at(5, 5), Offset: model.East.Offset()})
}

func (s *BruteForceSuite) TestEncircledSequencesAreDropped() {
	trap(s.T(), s.board)
	hand := []model.Tile{model.TileStraight, model.TileStraight, model.TileStraight}

	candidates := s.strategy.TakeTurn(hand, s.board, 0, []int{0})

	// One or two straights; the third leaves the river at (5, 8) facing the trap
	s.Require().Len(candidates, 2)
	for _, c := range candidates {
		s.Less(len(c.Placements), 3)
	}
	s.Equal(7, s.board.TileCount())
}

func (s *BruteForceSuite) TestBoardIsNotModified() {
	hand := []model.Tile{model.TileCenter90, model.TileStraight, model.TileStraight}

	_ = s.strategy.TakeTurn(hand, s.board, 0, []int{0})
	s.Equal(0, s.board.TileCount())
	s.Equal(model.InitialAnchor, s.board.LastPlacement())
}

func (s *BruteForceSuite) TestBestCandidateEmptiesRack() {
	hand := []model.Tile{model.TileCenter90, model.TileStraight, model.TileStraight, model.TileStraight, model.TileStraight}

	candidates := s.strategy.TakeTurn(hand, s.board, 0, []int{0})
	s.Require().NotEmpty(candidates)

	best := candidates[0]
	s.Len(best.Placements, 5)
	s.Equal(at(10, 0), best.Placements[0].Coordinates)

	bestFour := 0
	found := false
	for _, c := range candidates {
		if len(c.Placements) == 4 && (!found || c.Score > bestFour) {
			bestFour = c.Score
			found = true
		}
	}
	s.Require().True(found)
	s.Greater(best.Score, bestFour)
}

func (s *BruteForceSuite) TestIdenticalTilesEnumeratedOnce() {
	candidates := s.strategy.TakeTurn([]model.Tile{model.TileStraight, model.TileStraight}, s.board, 0, []int{0})

	// One straight, or two straights in a row
	s.Len(candidates, 2)
	s.Len(candidates[0].Placements, 2)
	s.Equal(model.Rotation0, candidates[0].Placements[1].Rotation)
}

func (s *BruteForceSuite) TestStepScoring() {
	candidates := s.strategy.TakeTurn([]model.Tile{model.TileStraight}, s.board, 0, []int{0})

	s.Require().Len(candidates, 1)
	// Tile point plus the empty rack bonus; (10, 1) has no bonus to give away
	s.Equal(21, candidates[0].Score)
}

func (s *BruteForceSuite) TestLookAheadPenalisesBonusForOpponent() {
	// (8, 8) holds +5: leaving the river pointing at it hands it to the next player
	s.board.SetLastPlacement(model.Anchor{Coordinates: at(8, 6), Offset: model.East.Offset()})

	twoPlayer := s.strategy.TakeTurn([]model.Tile{model.TileStraight}, s.board, 0, []int{0})
	s.Require().Len(twoPlayer, 1)
	s.Equal(1+20-5, twoPlayer[0].Score)

	solo := s.strategy.TakeTurn([]model.Tile{model.TileStraight}, s.board, 0, nil)
	s.Require().Len(solo, 1)
	s.Equal(1+20, solo[0].Score)
}

func (s *BruteForceSuite) TestUniversalTriesEveryShape() {
	candidates := s.strategy.TakeTurn([]model.Tile{model.TileUniversal}, s.board, 0, []int{0})

	// NW and SW leave the board, W is the entry
	s.Len(candidates, 5)
	for _, c := range candidates {
		s.True(c.Placements[0].PathType.IsUniversal())
		s.Equal(model.TileUniversal, c.Placements[0].PathType.Tile())
	}
}

func (s *BruteForceSuite) TestEndGameWhenRankedFirst() {
	s.board.SetLastPlacement(model.Anchor{Coordinates: at(0, model.BoardCols-1), Offset: model.East.Offset()})
	hand := []model.Tile{model.TileStraight, model.TileCenter90}

	candidates := s.strategy.TakeTurn(hand, s.board, 0, []int{5})

	// Only the straight enters the column aligned; nothing follows an ending move
	s.Require().Len(candidates, 1)
	s.Len(candidates[0].Placements, 1)
	s.Equal(at(0, model.EndOfGameCol), candidates[0].Placements[0].Coordinates)
	s.Equal(1+10+1000, candidates[0].Score)
}

func (s *BruteForceSuite) TestEndGamePenalisedWhenNotFirst() {
	s.board.SetLastPlacement(model.Anchor{Coordinates: at(0, model.BoardCols-1), Offset: model.East.Offset()})

	candidates := s.strategy.TakeTurn([]model.Tile{model.TileStraight, model.TileCenter90}, s.board, 0, []int{50})
	s.Require().Len(candidates, 1)
	s.Equal(1+10-1000, candidates[0].Score)

	// A tie for first is not first
	candidates = s.strategy.TakeTurn([]model.Tile{model.TileStraight, model.TileCenter90}, s.board, 0, []int{11})
	s.Require().Len(candidates, 1)
	s.Equal(1+10-1000, candidates[0].Score)
}

func (s *BruteForceSuite) TestNoLegalMove() {
	s.board.SetLastPlacement(model.Anchor{Coordinates: at(0, 5), Offset: model.North.Offset()})

	s.Empty(s.strategy.TakeTurn([]model.Tile{model.TileStraight, model.TileUniversal}, s.board, 0, []int{0}))
}

func (s *BruteForceSuite) TestForwardCellOccupied() {
	_, err := s.board.PlaceTile(at(10, 0), model.Placement{PathType: model.NormalPath(model.Straight)})
	s.Require().NoError(err)

	s.Empty(s.strategy.TakeTurn([]model.Tile{model.TileStraight}, s.board, 0, []int{0}))
}

func (s *BruteForceSuite) TestEmptyHand() {
	s.Empty(s.strategy.TakeTurn(nil, s.board, 0, []int{0}))
}

func (s *BruteForceSuite) TestStateBudget() {
	var logs bytes.Buffer
	strategy := bot.NewBruteForce(bot.SearchConfig{MaxStates: 3}, testutil.BufferLogger(&logs))

	candidates := strategy.TakeTurn([]model.Tile{model.TileUniversal, model.TileUniversal}, s.board, 0, []int{0})
	s.LessOrEqual(len(candidates), 3)
	s.Contains(logs.String(), "search stopped early")
	s.Contains(logs.String(), "max_states=3")
}
