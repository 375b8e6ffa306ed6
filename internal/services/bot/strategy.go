package bot

import "github.com/threecgreen/nile-sub000/internal/model"

// Candidate is one way to play some or all of a hand
type Candidate struct {
	Placements []model.TilePlacement // In river order, starting at the board's anchor
	Score      int
}

// Strategy defines how a bot ranks the moves available to it
type Strategy interface {
	// TakeTurn returns every candidate the strategy is willing to play, best
	// first. An empty result means the bot can't play. The board is not
	// modified.
	TakeTurn(hand []model.Tile, b *model.Board, ownScore int, otherScores []int) []Candidate
}
