package storage

import (
	"context"

	"github.com/threecgreen/nile-sub000/internal/model"
)

// Storage defines the interface for keeping games between actions
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
