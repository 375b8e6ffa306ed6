package tilebox

import (
	"github.com/threecgreen/nile-sub000/internal/dependencies/random"
	"github.com/threecgreen/nile-sub000/internal/model"
)

// Distribution is how many of each tile a new box holds
var Distribution = map[model.Tile]int{
	model.TileStraight:  40,
	model.TileDiagonal:  12,
	model.TileCenter90:  10,
	model.TileCorner90:  10,
	model.TileLeft45:    10,
	model.TileRight45:   10,
	model.TileLeft135:   8,
	model.TileRight135:  8,
	model.TileUniversal: 4,
}

// Service fills, shuffles and deals from a game's tile box
type Service struct {
	random random.Random
}

// New creates a new tile box Service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Size returns the number of tiles in a full box
func Size() int {
	n := 0
	for _, count := range Distribution {
		n += count
	}
	return n
}

// NewBox returns a full, shuffled box
func (s *Service) NewBox() []model.Tile {
	box := make([]model.Tile, 0, Size())
	// Fill in a fixed order so a seeded shuffle is reproducible
	for _, t := range model.AllTiles() {
		for range Distribution[t] {
			box = append(box, t)
		}
	}
	s.Shuffle(box)
	return box
}

// Shuffle permutes tiles in place (Fisher-Yates)
func (s *Service) Shuffle(tiles []model.Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// Draw takes up to n tiles from the front of the box and returns them along
// with what is left
func (s *Service) Draw(box []model.Tile, n int) (drawn, rest []model.Tile) {
	if n <= 0 {
		return nil, box
	}
	n = min(n, len(box))
	drawn = append([]model.Tile(nil), box[:n]...)
	return drawn, box[n:]
}

// Refill tops a rack up to capacity from the box
func (s *Service) Refill(rack, box []model.Tile) (newRack, rest []model.Tile) {
	drawn, rest := s.Draw(box, model.RackCapacity-len(rack))
	return append(rack, drawn...), rest
}

// Return puts tiles back in the box and reshuffles it
func (s *Service) Return(box, tiles []model.Tile) []model.Tile {
	box = append(box, tiles...)
	s.Shuffle(box)
	return box
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBox() []model.Tile
	Shuffle(tiles []model.Tile)
	Draw(box []model.Tile, n int) (drawn, rest []model.Tile)
	Refill(rack, box []model.Tile) (newRack, rest []model.Tile)
	Return(box, tiles []model.Tile) []model.Tile
}

var _ ServiceInterface = (*Service)(nil)
