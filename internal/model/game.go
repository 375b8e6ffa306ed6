package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying   GameState = "playing"   // Players taking turns
	GameStateFinished  GameState = "finished"  // River reached the end, or nobody can play
	GameStateAbandoned GameState = "abandoned" // Game ended early
)

// TurnState tracks what the current player has done since their turn began
type TurnState struct {
	Placed CoordinateSet // Tiles laid this turn
	Score  TurnScore

	// Undoable actions for this turn, oldest first
	Actions []Event
	Undone  []Event
}

// NewTurnState creates an empty turn
func NewTurnState() TurnState {
	return TurnState{Placed: NewCoordinateSet()}
}

// Game represents a single game of Nile
type Game struct {
	ID    GameID
	State GameState
	Board *Board

	Players          []*Player
	CurrentPlayerIdx int
	TileBox          []Tile

	TurnNumber        int
	ConsecutivePasses int
	Turn              TurnState

	Events []Event
	Winner PlayerID // Empty while playing or on a tie

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIdx]
}

// IsComplete returns true once the game has finished or been abandoned
func (g *Game) IsComplete() bool {
	return g.State == GameStateFinished || g.State == GameStateAbandoned
}

// Player returns the player with the given ID, or nil
func (g *Game) Player(id PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// OtherScores returns the totals of every player except id
func (g *Game) OtherScores(id PlayerID) []int {
	scores := make([]int, 0, len(g.Players))
	for _, p := range g.Players {
		if p.ID != id {
			scores = append(scores, p.Score.Total())
		}
	}
	return scores
}
