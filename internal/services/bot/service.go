package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/game"
)

const (
	// MaxBotIterations is a safety limit for the ProcessBotTurns loop
	MaxBotIterations = 1000
	// MaxCandidateAttempts bounds how many ranked candidates a bot tries to
	// commit before giving up on its turn
	MaxCandidateAttempts = 50
)

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionPlay         BotActionType = "play"
	ActionCantPlay     BotActionType = "cant_play"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during ProcessBotTurns
type BotAction struct {
	Type       BotActionType
	PlayerID   model.PlayerID
	Placements []model.TilePlacement
	Score      model.TurnScore
	Returned   []model.Tile
}

// Service plays the turns of bot players through the game controller
type Service struct {
	gameController game.ControllerInterface
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController game.ControllerInterface,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// TakeBotTurn plays the current player's turn, who must be a bot. Candidates
// are tried best first; one the validator rejects is rolled back and the next
// is tried. With nothing playable the bot passes.
func (s *Service) TakeBotTurn(ctx context.Context, gameID model.GameID) (*BotAction, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.IsComplete() {
		return nil, model.ErrGameComplete
	}

	player := g.CurrentPlayer()
	if !player.IsBot {
		return nil, model.ErrNotBot
	}
	strategy, ok := s.strategies[player.BotStrategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, player.BotStrategy)
	}

	hand := append([]model.Tile(nil), player.Rack...)
	candidates := strategy.TakeTurn(hand, g.Board, player.Score.Total(), g.OtherScores(player.ID))

	for i, candidate := range candidates {
		if i >= MaxCandidateAttempts {
			break
		}
		result, err := s.play(ctx, gameID, player.ID, candidate)
		if err == nil {
			return &BotAction{
				Type:       ActionPlay,
				PlayerID:   player.ID,
				Placements: candidate.Placements,
				Score:      result.Score,
			}, nil
		}
		if resetErr := s.gameController.ResetTurn(ctx, gameID, player.ID); resetErr != nil {
			return nil, resetErr
		}
	}

	returned, err := s.gameController.CantPlay(ctx, gameID, player.ID)
	if err != nil {
		return nil, err
	}
	return &BotAction{
		Type:     ActionCantPlay,
		PlayerID: player.ID,
		Returned: returned,
	}, nil
}

// play lays a candidate's tiles and commits the turn
func (s *Service) play(ctx context.Context, gameID model.GameID, playerID model.PlayerID, candidate Candidate) (*model.TurnEndedPayload, error) {
	for _, tp := range candidate.Placements {
		if err := s.place(ctx, gameID, playerID, tp); err != nil {
			// Search output should always be placeable
			s.logger.Error("illegal candidate placement",
				slog.String("game_id", string(gameID)),
				slog.String("player_id", string(playerID)),
				slog.String("placement", tp.String()),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	}

	result, err := s.gameController.EndTurn(ctx, gameID, playerID)
	if err != nil {
		s.logger.Debug("candidate rejected",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(playerID)),
			slog.Int("score", candidate.Score),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return result, nil
}

func (s *Service) place(ctx context.Context, gameID model.GameID, playerID model.PlayerID, tp model.TilePlacement) error {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	player := g.Player(playerID)
	idx := player.RackIndex(tp.PathType.Tile())
	if idx < 0 {
		return fmt.Errorf("%w: %s not in rack", model.ErrRackIndex, tp.PathType.Tile())
	}

	if _, err := s.gameController.PlaceTile(ctx, gameID, playerID, idx, tp.Coordinates, tp.Rotation); err != nil {
		return err
	}
	if tp.PathType.IsUniversal() && tp.PathType.TilePath() != model.Straight {
		return s.gameController.UpdateUniversalPath(ctx, gameID, playerID, tp.Coordinates, tp.PathType.TilePath())
	}
	return nil
}

// ProcessBotTurns plays bot turns until a human is up or the game is over.
// It returns all actions taken so callers can report them.
func (s *Service) ProcessBotTurns(ctx context.Context, gameID model.GameID) ([]BotAction, error) {
	var actions []BotAction

	for range MaxBotIterations {
		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		// Stop if game is finished
		if g.IsComplete() {
			if len(actions) > 0 {
				actions = append(actions, BotAction{Type: ActionGameComplete})
			}
			break
		}

		if !g.CurrentPlayer().IsBot {
			break // Human's turn
		}

		action, err := s.TakeBotTurn(ctx, gameID)
		if err != nil {
			return actions, err
		}
		actions = append(actions, *action)

		s.logger.Info("bot took turn",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(action.PlayerID)),
			slog.String("action", string(action.Type)),
			slog.Int("tiles", len(action.Placements)),
		)
	}

	return actions, nil
}
