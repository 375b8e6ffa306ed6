package bot

import (
	"log/slog"
	"sort"

	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/board"
	"github.com/threecgreen/nile-sub000/internal/services/scoring"
)

// BruteForce tries every ordering, shape and rotation of the hand from the
// board's anchor and ranks the results
type BruteForce struct {
	config SearchConfig
	logger *slog.Logger
}

// NewBruteForce creates a BruteForce strategy
func NewBruteForce(config SearchConfig, logger *slog.Logger) *BruteForce {
	return &BruteForce{
		config: config.withDefaults(),
		logger: logger.With(slog.String("component", "brute-force")),
	}
}

var _ Strategy = (*BruteForce)(nil)

// TakeTurn returns every legal placement sequence, including ones that leave
// tiles in hand, sorted by score. Sequences that would leave the river
// encircled are not returned. Ties keep enumeration order.
func (s *BruteForce) TakeTurn(hand []model.Tile, b *model.Board, ownScore int, otherScores []int) []Candidate {
	search := &search{
		config:      s.config,
		board:       b.Clone(),
		used:        model.NewCoordinateSet(),
		endTiles:    len(b.EndOfGameTiles()),
		ownScore:    ownScore,
		otherScores: otherScores,
	}
	search.run(hand, b.LastPlacement(), nil, 0)

	if search.exhausted {
		s.logger.Warn("search stopped early",
			slog.Int("max_states", s.config.MaxStates),
			slog.Int("hand", len(hand)),
			slog.Int("candidates", len(search.results)),
		)
	}

	sort.SliceStable(search.results, func(i, j int) bool {
		return search.results[i].Score > search.results[j].Score
	})

	s.logger.Debug("search complete",
		slog.Int("states", search.states),
		slog.Int("candidates", len(search.results)),
	)
	return search.results
}

// search holds the state of one TakeTurn call. Tiles of the sequence being
// built are laid on board and picked up again on the way out.
type search struct {
	config      SearchConfig
	board       *model.Board
	used        model.CoordinateSet
	endTiles    int
	ownScore    int
	otherScores []int

	states    int
	exhausted bool
	results   []Candidate
}

func (s *search) run(hand []model.Tile, anchor model.Anchor, placed []model.TilePlacement, running int) {
	forward := anchor.Forward()
	cell := s.board.Cell(forward)
	if cell == nil || cell.Tile != nil || s.used.Has(forward) {
		return
	}

	tried := make(map[model.Tile]bool, len(hand))
	for i, tile := range hand {
		if tried[tile] {
			continue
		}
		tried[tile] = true
		rest := without(hand, i)

		for _, path := range tile.Paths() {
			for _, rotation := range path.Rotations() {
				if s.states >= s.config.MaxStates {
					s.exhausted = true
					return
				}
				s.states++

				tp := model.TilePlacement{
					Coordinates: forward,
					PathType:    tile.PathType(path),
					Rotation:    rotation,
				}
				s.try(tp, cell.Bonus, rest, anchor, placed, running)
			}
		}
	}
}

// try scores one placement, records it and searches onwards from it
func (s *search) try(tp model.TilePlacement, bonus int, rest []model.Tile, anchor model.Anchor, placed []model.TilePlacement, running int) {
	next, err := board.EvalPlacement(anchor, tp)
	if err != nil {
		return
	}
	if board.NoCrossover(s.board, next) != nil {
		return
	}

	step := tp.PathType.Points() + bonus
	if len(rest) == 0 {
		step += s.config.EmptyRackBonus
	}
	total := running + step

	ended := false
	adjustment := 0
	if model.IsEndOfGameColumn(tp.Coordinates) {
		ok, err := board.EvaluateEndOfGame(s.endTiles+1, next)
		if err != nil || !ok {
			return
		}
		ended = true
		adjustment = s.endGameAdjustment(total)
	}

	sequence := make([]model.TilePlacement, len(placed)+1)
	copy(sequence, placed)
	sequence[len(placed)] = tp

	if ended {
		s.record(sequence, total+adjustment)
		return
	}

	nextCell := s.board.Cell(next.Forward())
	if nextCell == nil || nextCell.Tile != nil {
		// The validator would reject this as a dead end, and no tile can be
		// laid past it
		return
	}

	if _, err := s.board.PlaceTile(tp.Coordinates, tp.Placement()); err != nil {
		return
	}
	s.used.Add(tp.Coordinates)
	// Encircled sequences are not candidates but are still extended
	if board.NoEncircles(s.board, next) == nil {
		s.record(sequence, total+s.lookAhead(nextCell))
	}
	if len(rest) > 0 {
		s.run(rest, next, sequence, total)
	}
	s.used.Remove(tp.Coordinates)
	s.board.RemoveTile(tp.Coordinates)
}

// endGameAdjustment rewards ending the game only when it leaves the player
// ranked first
func (s *search) endGameAdjustment(total int) int {
	if scoring.IsRankedFirst(s.ownScore+total, s.otherScores) {
		return s.config.EndGameWinBonus
	}
	return s.config.EndGameLossPenalty
}

// lookAhead values the cell the next player is forced to play into. Whatever
// it is worth to them counts against us, shared among the other players.
func (s *search) lookAhead(next *model.Cell) int {
	opponents := len(s.otherScores)
	if opponents == 0 {
		return 0
	}
	return -next.Bonus / opponents
}

func (s *search) record(sequence []model.TilePlacement, score int) {
	s.results = append(s.results, Candidate{Placements: sequence, Score: score})
}

// without returns a copy of tiles with index i removed
func without(tiles []model.Tile, i int) []model.Tile {
	rest := make([]model.Tile, 0, len(tiles)-1)
	rest = append(rest, tiles[:i]...)
	return append(rest, tiles[i+1:]...)
}
