package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/threecgreen/nile-sub000/internal/dependencies/clock"
	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/board"
	"github.com/threecgreen/nile-sub000/internal/services/scoring"
	"github.com/threecgreen/nile-sub000/internal/services/tilebox"
	"github.com/threecgreen/nile-sub000/internal/storage"
)

// Controller manages turn flow: the actions a player takes during their turn,
// committing it, and ending the game
type Controller struct {
	storage        storage.Storage
	boardService   board.ServiceInterface
	scoringService scoring.ServiceInterface
	tileBox        tilebox.ServiceInterface
	clock          clock.Clock
	logger         *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService board.ServiceInterface,
	scoringService scoring.ServiceInterface,
	tileBox tilebox.ServiceInterface,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		boardService:   boardService,
		scoringService: scoringService,
		tileBox:        tileBox,
		clock:          clock,
		logger:         logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame deals racks from a fresh tile box and starts the first turn
func (c *Controller) CreateGame(ctx context.Context, players []model.PlayerConfig) (*model.Game, error) {
	if len(players) == 0 {
		return nil, model.ErrInsufficientPlayers
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		State:      model.GameStatePlaying,
		Board:      model.NewBoard(),
		TileBox:    c.tileBox.NewBox(),
		TurnNumber: 1,
		Turn:       model.NewTurnState(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	ids := make([]model.PlayerID, 0, len(players))
	for _, cfg := range players {
		player := &model.Player{
			ID:          model.PlayerID(uuid.NewString()),
			DisplayName: cfg.DisplayName,
			IsBot:       cfg.IsBot,
		}
		if cfg.IsBot {
			player.BotStrategy = cfg.BotStrategy
			if player.BotStrategy == "" {
				player.BotStrategy = model.BotStrategyBruteForce
			}
			if !slices.Contains(model.ValidBotStrategies(), player.BotStrategy) {
				return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, player.BotStrategy)
			}
		}
		player.Rack, game.TileBox = c.tileBox.Refill(nil, game.TileBox)
		game.Players = append(game.Players, player)
		ids = append(ids, player.ID)
	}

	game.Events = append(game.Events, c.newEvent(game, ids[0], model.EventGameStarted, model.GameStartedPayload{Players: ids}))

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(players)),
		slog.Int("tile_box", len(game.TileBox)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// EndTurn validates every tile placed this turn as one extension of the river.
// A rejected turn stays open so the player can fix it.
func (c *Controller) EndTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.TurnEndedPayload, error) {
	game, player, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if len(game.Turn.Placed) == 0 {
		return nil, model.ErrNoTilesPlaced
	}

	ended, err := c.boardService.ValidateTurnsMoves(game.Board, game.Turn.Placed)
	if err != nil {
		c.logger.Debug("turn rejected",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	result := &model.TurnEndedPayload{
		Placed:    game.Turn.Placed.Sorted(),
		Score:     game.Turn.Score,
		GameEnded: ended,
	}
	player.Score = player.Score.Plus(game.Turn.Score)
	player.Rack, game.TileBox = c.tileBox.Refill(player.Rack, game.TileBox)
	game.ConsecutivePasses = 0

	game.Events = append(game.Events, game.Turn.Actions...)
	game.Events = append(game.Events, c.newEvent(game, playerID, model.EventTurnEnded, *result))

	c.logger.Info("turn ended",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("turn", game.TurnNumber),
		slog.Int("tiles", len(result.Placed)),
		slog.Int("score", result.Score.Total()),
	)

	if ended {
		c.finishGame(game, playerID)
	} else {
		c.advanceTurn(game)
	}

	return result, c.storage.SaveGame(ctx, game)
}

// CantPlay passes the turn: the player's rack goes back in the box and they
// draw a new one. A full round of passes ends the game.
func (c *Controller) CantPlay(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Tile, error) {
	game, player, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if len(game.Turn.Placed) > 0 {
		return nil, model.ErrTilesPlacedThisTurn
	}

	returned := player.Rack
	game.TileBox = c.tileBox.Return(game.TileBox, returned)
	player.Rack, game.TileBox = c.tileBox.Refill(nil, game.TileBox)
	game.ConsecutivePasses++

	game.Events = append(game.Events, c.newEvent(game, playerID, model.EventCantPlay, model.CantPlayPayload{Returned: returned}))

	c.logger.Info("player can't play",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("consecutive_passes", game.ConsecutivePasses),
	)

	if game.ConsecutivePasses >= len(game.Players) {
		c.finishGame(game, playerID)
	} else {
		c.advanceTurn(game)
	}

	return returned, c.storage.SaveGame(ctx, game)
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsComplete() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("turn", game.TurnNumber),
	)

	return c.storage.SaveGame(ctx, game)
}

// Standings returns the players ranked by score
func (c *Controller) Standings(ctx context.Context, gameID model.GameID) ([]model.Standing, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.scoringService.Standings(game.Players), nil
}

// turnFor loads a game in progress and checks it is playerID's turn
func (c *Controller) turnFor(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, *model.Player, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if game.IsComplete() {
		return nil, nil, model.ErrGameComplete
	}
	if game.Player(playerID) == nil {
		return nil, nil, model.ErrPlayerNotFound
	}
	player := game.CurrentPlayer()
	if player.ID != playerID {
		return nil, nil, model.ErrNotPlayerTurn
	}
	return game, player, nil
}

// advanceTurn hands the turn to the next player
func (c *Controller) advanceTurn(game *model.Game) {
	game.CurrentPlayerIdx = (game.CurrentPlayerIdx + 1) % len(game.Players)
	game.TurnNumber++
	game.Turn = model.NewTurnState()
	game.UpdatedAt = c.clock.Now()
}

func (c *Controller) finishGame(game *model.Game, playerID model.PlayerID) {
	standings := c.scoringService.Standings(game.Players)
	game.State = model.GameStateFinished
	game.Winner = c.scoringService.DetermineWinner(standings)
	game.Turn = model.NewTurnState()
	game.UpdatedAt = c.clock.Now()

	scores := make(map[model.PlayerID]int, len(standings))
	for _, st := range standings {
		scores[st.PlayerID] = st.Score
	}
	game.Events = append(game.Events, c.newEvent(game, playerID, model.EventGameEnded, model.GameEndedPayload{
		Scores: scores,
		Winner: game.Winner,
	}))

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("winner", string(game.Winner)),
		slog.Int("total_turns", game.TurnNumber),
	)
}

func (c *Controller) newEvent(game *model.Game, playerID model.PlayerID, eventType model.EventType, payload any) model.Event {
	return model.Event{
		Type:       eventType,
		Timestamp:  c.clock.Now(),
		GameID:     game.ID,
		PlayerID:   playerID,
		TurnNumber: game.TurnNumber,
		Payload:    payload,
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, players []model.PlayerConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	PlaceTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, rackIndex int, coords model.Coordinates, rotation model.Rotation) (model.TurnScore, error)
	RemoveTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates) (model.TurnScore, error)
	RotateTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates, rotation model.Rotation) error
	MoveTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, from, to model.Coordinates) (model.TurnScore, error)
	UpdateUniversalPath(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates, path model.TilePath) error
	Undo(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	Redo(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	ResetTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	EndTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.TurnEndedPayload, error)
	CantPlay(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Tile, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	Standings(ctx context.Context, gameID model.GameID) ([]model.Standing, error)
}

var _ ControllerInterface = (*Controller)(nil)
