package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted EventType = "game_started"
	EventGameEnded   EventType = "game_ended"

	// Actions within a turn; these can be undone until the turn ends
	EventTilePlaced           EventType = "tile_placed"
	EventTileRemoved          EventType = "tile_removed"
	EventTileRotated          EventType = "tile_rotated"
	EventTileMoved            EventType = "tile_moved"
	EventUniversalPathUpdated EventType = "universal_path_updated"

	EventTurnEnded EventType = "turn_ended"
	EventCantPlay  EventType = "cant_play"
)

// Event is the base structure for all events
type Event struct {
	Type       EventType
	Timestamp  time.Time
	GameID     GameID
	PlayerID   PlayerID // The player who triggered the event
	TurnNumber int
	Payload    any // Type-specific data
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players []PlayerID
}

// TilePlacedPayload contains data for tile placed events
type TilePlacedPayload struct {
	RackIndex int
	Placement TilePlacement
	Score     TurnScore
}

// TileRemovedPayload contains data for tile removed events
type TileRemovedPayload struct {
	RackIndex int // Where the tile went back into the rack
	Placement TilePlacement
	Score     TurnScore
}

// TileRotatedPayload contains data for tile rotated events
type TileRotatedPayload struct {
	Coordinates Coordinates
	Old         Rotation
	New         Rotation
}

// TileMovedPayload contains data for tile moved events
type TileMovedPayload struct {
	From  Coordinates
	To    Coordinates
	Score TurnScore
}

// UniversalPathUpdatedPayload contains data for universal path events
type UniversalPathUpdatedPayload struct {
	Coordinates Coordinates
	Old         TilePath
	New         TilePath
}

// TurnEndedPayload contains data for turn ended events
type TurnEndedPayload struct {
	Placed    []Coordinates
	Score     TurnScore
	GameEnded bool
}

// CantPlayPayload contains data for can't play events
type CantPlayPayload struct {
	Returned []Tile
}

// GameEndedPayload contains data for game ended events
type GameEndedPayload struct {
	Scores map[PlayerID]int
	Winner PlayerID // Empty if tie
}
