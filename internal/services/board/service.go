package board

import (
	"log/slog"

	"github.com/threecgreen/nile-sub000/internal/model"
)

// Service validates and commits turns against a board
type Service struct {
	logger *slog.Logger
}

// New creates a new board Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// ValidateTurnsMoves walks the river from the board's anchor through every
// tile placed this turn. If the turn is legal the anchor is moved to the new
// end of the river and the result says whether the game has ended. On error
// the board is left untouched.
func (s *Service) ValidateTurnsMoves(b *model.Board, moves model.CoordinateSet) (bool, error) {
	remaining := moves.Clone()
	anchor := b.LastPlacement()

	for len(remaining) > 0 {
		next := anchor.Forward()
		cell := b.Cell(next)
		if cell == nil || cell.Tile == nil {
			return false, model.NewCellError(model.ErrDisconnected, remaining.Sorted()...)
		}
		if !remaining.Has(next) {
			return false, model.NewCellError(model.ErrTileReused, next)
		}

		placement := model.TilePlacement{
			Coordinates: next,
			PathType:    cell.Tile.PathType,
			Rotation:    cell.Tile.Rotation,
		}
		newAnchor, err := EvalPlacement(anchor, placement)
		if err != nil {
			return false, err
		}
		if err := NoCrossover(b, newAnchor); err != nil {
			return false, err
		}

		remaining.Remove(next)
		anchor = newAnchor
	}

	forward := anchor.Forward()
	if b.HasTile(forward) {
		return false, model.NewCellError(model.ErrDeadEnd, anchor.Coordinates, forward)
	}
	if err := NoEncircles(b, anchor); err != nil {
		return false, err
	}

	ended, err := EvaluateEndOfGame(len(b.EndOfGameTiles()), anchor)
	if err != nil {
		return false, err
	}

	b.SetLastPlacement(anchor)
	s.logger.Debug("turn validated",
		slog.Int("tiles", len(moves)),
		slog.String("anchor", anchor.Coordinates.String()),
		slog.String("exit", anchor.Offset.String()),
		slog.Bool("game_ended", ended),
	)
	return ended, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidateTurnsMoves(b *model.Board, moves model.CoordinateSet) (bool, error)
}

var _ ServiceInterface = (*Service)(nil)
