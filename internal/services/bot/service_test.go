package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/threecgreen/nile-sub000/internal/dependencies/mocks"
	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/board"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
	"github.com/threecgreen/nile-sub000/internal/services/game"
	"github.com/threecgreen/nile-sub000/internal/services/scoring"
	"github.com/threecgreen/nile-sub000/internal/services/tilebox"
	"github.com/threecgreen/nile-sub000/internal/storage/memory"
	"github.com/threecgreen/nile-sub000/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom

	gameController *game.Controller
	botService     *bot.Service

	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.ctx = context.Background()

	s.gameController = game.NewController(
		s.store,
		board.New(logger),
		scoring.New(),
		tilebox.New(s.mockRandom),
		s.mockClock,
		logger,
	)

	bruteForce := bot.NewBruteForce(bot.DefaultSearchConfig(), logger)
	s.botService = bot.NewService(s.gameController, map[string]bot.Strategy{
		model.BotStrategyBruteForce: bruteForce,
		model.BotStrategyRandom:     bot.NewRandomStrategy(bruteForce, s.mockRandom),
	}, logger)
}

func (s *ServiceSuite) createGame(players ...model.PlayerConfig) *model.Game {
	g, err := s.gameController.CreateGame(s.ctx, players)
	s.Require().NoError(err)
	return g
}

func botConfig(name string) model.PlayerConfig {
	return model.PlayerConfig{DisplayName: name, IsBot: true}
}

func humanConfig(name string) model.PlayerConfig {
	return model.PlayerConfig{DisplayName: name}
}

func (s *ServiceSuite) TestTakeBotTurn_PlaysBestCandidate() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	botPlayer := g.Players[0]
	botPlayer.Rack = []model.Tile{
		model.TileStraight, model.TileStraight, model.TileStraight, model.TileStraight, model.TileStraight,
	}

	action, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(bot.ActionPlay, action.Type)
	s.Equal(botPlayer.ID, action.PlayerID)
	s.Len(action.Placements, 5)
	s.Equal(5, action.Score.Total())

	s.Equal(5, botPlayer.Score.Total())
	s.Len(botPlayer.Rack, model.RackCapacity)
	s.Equal(g.Players[1].ID, g.CurrentPlayer().ID)
	for col := range 5 {
		s.True(g.Board.HasTile(at(model.StartRow, col)))
	}
	s.Equal(at(model.StartRow, 4), g.Board.LastPlacement().Coordinates)
}

func (s *ServiceSuite) TestTakeBotTurn_UniversalTileReshaped() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	g.Players[0].Rack = []model.Tile{model.TileUniversal}
	// Turning south-east hands Alice the -2 at (1, 7)
	g.Board.SetLastPlacement(model.Anchor{Coordinates: at(0, 5), Offset: model.East.Offset()})

	action, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(bot.ActionPlay, action.Type)

	cell := g.Board.Cell(at(0, 6))
	s.Require().NotNil(cell.Tile)
	s.Equal(model.UniversalPath(model.Right45), cell.Tile.PathType)
	s.Equal(model.SouthEast.Offset(), g.Board.LastPlacement().Offset)
}

func (s *ServiceSuite) TestTakeBotTurn_CantPlay() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	rack := []model.Tile{model.TileStraight, model.TileDiagonal}
	g.Players[0].Rack = rack
	g.Board.SetLastPlacement(model.Anchor{Coordinates: at(0, 5), Offset: model.North.Offset()})

	action, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(bot.ActionCantPlay, action.Type)
	s.Equal(rack, action.Returned)
	s.Empty(action.Placements)
	s.Equal(1, g.ConsecutivePasses)
	s.Equal(g.Players[1].ID, g.CurrentPlayer().ID)
	s.Equal(0, g.Board.TileCount())
}

func straightsAlongRow5(cols ...int) bot.Candidate {
	var c bot.Candidate
	for _, col := range cols {
		c.Placements = append(c.Placements, model.TilePlacement{
			Coordinates: at(5, col),
			PathType:    model.NormalPath(model.Straight),
			Rotation:    model.Rotation0,
		})
	}
	return c
}

func (s *ServiceSuite) fixedBotService(candidates ...bot.Candidate) (*bot.Service, *fixedStrategy) {
	strategy := &fixedStrategy{candidates: candidates}
	return bot.NewService(s.gameController, map[string]bot.Strategy{
		model.BotStrategyBruteForce: strategy,
	}, testutil.NopLogger()), strategy
}

func (s *ServiceSuite) TestTakeBotTurn_RejectedCandidateRolledBack() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	trap(s.T(), g.Board)
	botPlayer := g.Players[0]
	botPlayer.Rack = []model.Tile{model.TileStraight, model.TileStraight, model.TileStraight}

	// The first candidate runs into the trap and is encircled
	service, strategy := s.fixedBotService(straightsAlongRow5(6, 7, 8), straightsAlongRow5(6))

	action, err := service.TakeBotTurn(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(1, strategy.calls)
	s.Equal(bot.ActionPlay, action.Type)
	s.Equal(straightsAlongRow5(6).Placements, action.Placements)
	s.Equal(action.Score.Total(), botPlayer.Score.Total())

	s.True(g.Board.HasTile(at(5, 6)))
	s.False(g.Board.HasTile(at(5, 7)))
	s.False(g.Board.HasTile(at(5, 8)))
	s.Equal(8, g.Board.TileCount())
	s.Equal(at(5, 6), g.Board.LastPlacement().Coordinates)
	s.Equal(g.Players[1].ID, g.CurrentPlayer().ID)
}

func (s *ServiceSuite) TestTakeBotTurn_EveryCandidateRejected() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	trap(s.T(), g.Board)
	g.Players[0].Rack = []model.Tile{model.TileStraight, model.TileStraight, model.TileStraight}

	service, _ := s.fixedBotService(straightsAlongRow5(6, 7, 8))

	action, err := service.TakeBotTurn(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(bot.ActionCantPlay, action.Type)
	s.Equal([]model.Tile{model.TileStraight, model.TileStraight, model.TileStraight}, action.Returned)
	s.Equal(7, g.Board.TileCount())
	s.Equal(at(5, 5), g.Board.LastPlacement().Coordinates)
	s.Equal(0, g.Players[0].Score.Total())
}

func (s *ServiceSuite) TestTakeBotTurn_NotBot() {
	g := s.createGame(humanConfig("Alice"), botConfig("Botty"))

	_, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrNotBot)
}

func (s *ServiceSuite) TestTakeBotTurn_UnknownStrategy() {
	g := s.createGame(botConfig("Botty"))
	g.Players[0].BotStrategy = "telepathy"

	_, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *ServiceSuite) TestTakeBotTurn_GameComplete() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	s.Require().NoError(s.gameController.AbandonGame(s.ctx, g.ID))

	_, err := s.botService.TakeBotTurn(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ServiceSuite) TestTakeBotTurn_GameNotFound() {
	_, err := s.botService.TakeBotTurn(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestProcessBotTurns_StopsAtHuman() {
	g := s.createGame(botConfig("Botty"), humanConfig("Alice"))
	g.Players[0].Rack = []model.Tile{model.TileStraight, model.TileStraight}

	actions, err := s.botService.ProcessBotTurns(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Require().Len(actions, 1)
	s.Equal(bot.ActionPlay, actions[0].Type)
	s.Equal(g.Players[1].ID, g.CurrentPlayer().ID)
	s.False(g.IsComplete())
}

func (s *ServiceSuite) TestProcessBotTurns_HumanFirst() {
	g := s.createGame(humanConfig("Alice"), botConfig("Botty"))

	actions, err := s.botService.ProcessBotTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Empty(actions)
	s.Equal(1, g.TurnNumber)
}

func (s *ServiceSuite) TestProcessBotTurns_AllBotsPassUntilGameEnds() {
	g := s.createGame(botConfig("Botty"), botConfig("Robo"))
	g.Board.SetLastPlacement(model.Anchor{Coordinates: at(0, 5), Offset: model.North.Offset()})

	actions, err := s.botService.ProcessBotTurns(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Require().Len(actions, 3)
	s.Equal(bot.ActionCantPlay, actions[0].Type)
	s.Equal(bot.ActionCantPlay, actions[1].Type)
	s.Equal(bot.ActionGameComplete, actions[2].Type)
	s.Equal(model.GameStateFinished, g.State)
	s.Empty(g.Winner)
}

func (s *ServiceSuite) TestProcessBotTurns_BotsFinishTheRiver() {
	g := s.createGame(botConfig("Botty"), botConfig("Robo"))
	g.Players[0].Rack = []model.Tile{model.TileStraight}
	g.Board.SetLastPlacement(model.Anchor{Coordinates: at(0, model.BoardCols-1), Offset: model.East.Offset()})

	actions, err := s.botService.ProcessBotTurns(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Require().Len(actions, 2)
	s.Equal(bot.ActionPlay, actions[0].Type)
	s.Equal(bot.ActionGameComplete, actions[1].Type)
	s.Equal(g.Players[0].ID, g.Winner)
	s.Equal(11, g.Players[0].Score.Total())
}
