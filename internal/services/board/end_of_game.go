package board

import (
	"fmt"

	"github.com/threecgreen/nile-sub000/internal/model"
)

// EndOfGameEntry is the only exit a tile in the end-of-game column may have
var EndOfGameEntry = model.East.Offset()

// EvaluateEndOfGame decides whether the turn ending at last finishes the
// game, given how many end-of-game cells are occupied
func EvaluateEndOfGame(occupied int, last model.Anchor) (bool, error) {
	switch {
	case occupied == 0:
		return false, nil
	case occupied > 1:
		return false, fmt.Errorf("%w: found %d", model.ErrTooManyEndOfGameTiles, occupied)
	case !model.IsEndOfGameColumn(last.Coordinates):
		return false, model.NewCellError(model.ErrEndOfGameNotTerminal, last.Coordinates)
	case last.Offset != EndOfGameEntry:
		return false, model.NewCellError(model.ErrEndOfGameMisaligned, last.Coordinates)
	default:
		return true, nil
	}
}
