package bot

import (
	"github.com/threecgreen/nile-sub000/internal/dependencies/random"
	"github.com/threecgreen/nile-sub000/internal/model"
)

// RandomStrategy plays any legal move, ignoring score
type RandomStrategy struct {
	search Strategy
	random random.Random
}

// NewRandomStrategy creates a RandomStrategy that draws its moves from search
func NewRandomStrategy(search Strategy, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{search: search, random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// TakeTurn returns the legal moves in random order
func (s *RandomStrategy) TakeTurn(hand []model.Tile, b *model.Board, ownScore int, otherScores []int) []Candidate {
	candidates := s.search.TakeTurn(hand, b, ownScore, otherScores)
	for i := len(candidates) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates
}
