package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Parse errors
	ErrInvalidTile     = errors.New("invalid tile")
	ErrInvalidRotation = errors.New("invalid rotation")

	// Cell errors
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrNoTile             = errors.New("no tile at coordinates")
	ErrNotUniversal       = errors.New("tile is not a universal tile")

	// Path errors
	ErrNotAligned     = errors.New("tile doesn't align with the river")
	ErrTileMisaligned = errors.New("tile and rotation don't align with the river")
	ErrCrossover      = errors.New("river can't cross over itself")
	ErrDisconnected   = errors.New("tiles aren't connected to the river")
	ErrTileReused     = errors.New("river can't reuse a tile from an earlier turn")
	ErrDeadEnd        = errors.New("river runs into an existing tile")
	ErrEncircled      = errors.New("river is encircled with no escape to the end of the game")

	// End-of-game column errors
	ErrEndOfGameMisaligned   = errors.New("end of game tile must flow straight into the end of the game")
	ErrEndOfGameNotTerminal  = errors.New("end of game tile must be the last tile of the river")
	ErrTooManyEndOfGameTiles = errors.New("only one tile is allowed in the end of game column")

	// Game errors
	ErrGameComplete        = errors.New("game is already complete")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrRackIndex           = errors.New("no tile at rack position")
	ErrNotPlacedThisTurn   = errors.New("tile wasn't placed this turn")
	ErrNoTilesPlaced       = errors.New("no tiles placed this turn")
	ErrTilesPlacedThisTurn = errors.New("tiles were already placed this turn")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrNothingToRedo       = errors.New("nothing to redo")
	ErrNotBot              = errors.New("player is not a bot")
	ErrUnknownStrategy     = errors.New("unknown bot strategy")
	ErrGameNotFound        = errors.New("game not found")
	ErrNotPlayerTurn       = errors.New("not this player's turn")
	ErrPlayerNotFound      = errors.New("player not found")
)

// CellError is a rule violation implicating one or more cells
type CellError struct {
	Coordinates []Coordinates
	Err         error
}

// NewCellError wraps err with the offending coordinates
func NewCellError(err error, coords ...Coordinates) *CellError {
	return &CellError{Coordinates: coords, Err: err}
}

func (e *CellError) Error() string {
	parts := make([]string, len(e.Coordinates))
	for i, c := range e.Coordinates {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s at %s", e.Err, strings.Join(parts, ", "))
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// ErrorCoordinates returns the coordinates carried by a CellError in err's chain
func ErrorCoordinates(err error) []Coordinates {
	var cellErr *CellError
	if errors.As(err, &cellErr) {
		return cellErr.Coordinates
	}
	return nil
}
