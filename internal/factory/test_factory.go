package factory

import (
	"time"

	"github.com/threecgreen/nile-sub000/internal/dependencies/mocks"
	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
	"github.com/threecgreen/nile-sub000/internal/storage/memory"
	"github.com/threecgreen/nile-sub000/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, bot.DefaultSearchConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SetRack replaces a player's rack so tests don't depend on the draw order
func (t *TestApp) SetRack(game *model.Game, playerIdx int, tiles ...model.Tile) {
	game.Players[playerIdx].Rack = append([]model.Tile(nil), tiles...)
}
