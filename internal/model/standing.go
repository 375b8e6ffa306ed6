package model

// Standing is a player's place in the final or running results
type Standing struct {
	PlayerID    PlayerID
	DisplayName string
	Score       int
	Rank        int // 1-based; tied players share a rank
}
