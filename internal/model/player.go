package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// RackCapacity is the number of tiles a player holds after drawing
const RackCapacity = 5

// Player is a game participant and the tiles they hold
type Player struct {
	ID          PlayerID
	DisplayName string
	IsBot       bool
	BotStrategy string // Only set for bots
	Rack        []Tile
	Score       TurnScore
}

// RackIndex returns the first rack position holding tile t, or -1
func (p *Player) RackIndex(t Tile) int {
	for i, held := range p.Rack {
		if held == t {
			return i
		}
	}
	return -1
}

// TakeFromRack removes and returns the tile at index i
func (p *Player) TakeFromRack(i int) (Tile, error) {
	if i < 0 || i >= len(p.Rack) {
		return 0, ErrRackIndex
	}
	t := p.Rack[i]
	p.Rack = append(p.Rack[:i:i], p.Rack[i+1:]...)
	return t, nil
}

// ReturnToRack puts a tile back at index i, or at the end if i is out of range
func (p *Player) ReturnToRack(t Tile, i int) {
	if i < 0 || i >= len(p.Rack) {
		p.Rack = append(p.Rack, t)
		return
	}
	p.Rack = append(p.Rack[:i:i], append([]Tile{t}, p.Rack[i:]...)...)
}

// PlayerConfig describes a player joining a new game
type PlayerConfig struct {
	DisplayName string
	IsBot       bool
	BotStrategy string
}
