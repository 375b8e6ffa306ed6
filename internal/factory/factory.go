package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/threecgreen/nile-sub000/internal/dependencies/clock"
	"github.com/threecgreen/nile-sub000/internal/dependencies/random"
	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/board"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
	"github.com/threecgreen/nile-sub000/internal/services/game"
	"github.com/threecgreen/nile-sub000/internal/services/scoring"
	"github.com/threecgreen/nile-sub000/internal/services/tilebox"
	"github.com/threecgreen/nile-sub000/internal/storage"
	"github.com/threecgreen/nile-sub000/internal/storage/memory"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	ScoringService *scoring.Service
	TileBoxService *tilebox.Service
	GameController *game.Controller
	Strategies     map[string]bot.Strategy
	BotService     *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "memory"
	StorageType string
	// Seed makes tile draws and random bots reproducible (optional). Game and
	// player IDs are random UUIDs and differ between runs regardless.
	// If zero, crypto/rand is used
	Seed uint64
	// Search holds the brute-force weights (optional)
	// Zero fields take their defaults
	Search bot.SearchConfig
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	default:
		return nil, errors.New("invalid StorageType: must be 'memory'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(store, clk, rnd, cfg.Search, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, search bot.SearchConfig, logger *slog.Logger) *App {
	// Create services
	boardService := board.New(logger)
	scoringService := scoring.New()
	tileBoxService := tilebox.New(rnd)
	gameController := game.NewController(store, boardService, scoringService, tileBoxService, clk, logger)

	bruteForce := bot.NewBruteForce(search, logger)
	strategies := map[string]bot.Strategy{
		model.BotStrategyBruteForce: bruteForce,
		model.BotStrategyRandom:     bot.NewRandomStrategy(bruteForce, rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		ScoringService: scoringService,
		TileBoxService: tileBoxService,
		GameController: gameController,
		Strategies:     strategies,
		BotService:     botService,
	}
}
