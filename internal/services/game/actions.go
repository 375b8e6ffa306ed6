package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/threecgreen/nile-sub000/internal/model"
)

// Every action a player takes during their turn is an event in the turn's
// log. apply performs an event and revert exactly reverses it, which is all
// undo and redo need.

// PlaceTile lays the tile at rackIndex. A universal tile starts out as a
// Straight; change its shape with UpdateUniversalPath.
func (c *Controller) PlaceTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, rackIndex int, coords model.Coordinates, rotation model.Rotation) (model.TurnScore, error) {
	game, player, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return model.TurnScore{}, err
	}
	if rackIndex < 0 || rackIndex >= len(player.Rack) {
		return model.TurnScore{}, model.ErrRackIndex
	}
	if !rotation.Valid() {
		return model.TurnScore{}, model.ErrInvalidRotation
	}

	tile := player.Rack[rackIndex]
	return c.act(ctx, game, model.EventTilePlaced, model.TilePlacedPayload{
		RackIndex: rackIndex,
		Placement: model.TilePlacement{
			Coordinates: coords,
			PathType:    tile.PathType(model.Straight),
			Rotation:    rotation,
		},
	})
}

// RemoveTile picks a tile placed this turn back up into the rack
func (c *Controller) RemoveTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates) (model.TurnScore, error) {
	game, player, err := c.placedThisTurn(ctx, gameID, playerID, coords)
	if err != nil {
		return model.TurnScore{}, err
	}
	return c.act(ctx, game, model.EventTileRemoved, model.TileRemovedPayload{
		RackIndex: len(player.Rack),
		Placement: model.TilePlacement{Coordinates: coords},
	})
}

// RotateTile turns a tile placed this turn
func (c *Controller) RotateTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates, rotation model.Rotation) error {
	game, _, err := c.placedThisTurn(ctx, gameID, playerID, coords)
	if err != nil {
		return err
	}
	if !rotation.Valid() {
		return model.ErrInvalidRotation
	}
	_, err = c.act(ctx, game, model.EventTileRotated, model.TileRotatedPayload{
		Coordinates: coords,
		Old:         game.Board.Cell(coords).Tile.Rotation,
		New:         rotation,
	})
	return err
}

// MoveTile moves a tile placed this turn to another cell
func (c *Controller) MoveTile(ctx context.Context, gameID model.GameID, playerID model.PlayerID, from, to model.Coordinates) (model.TurnScore, error) {
	game, _, err := c.placedThisTurn(ctx, gameID, playerID, from)
	if err != nil {
		return model.TurnScore{}, err
	}
	return c.act(ctx, game, model.EventTileMoved, model.TileMovedPayload{From: from, To: to})
}

// UpdateUniversalPath changes the shape of a universal tile placed this turn
func (c *Controller) UpdateUniversalPath(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates, path model.TilePath) error {
	game, _, err := c.placedThisTurn(ctx, gameID, playerID, coords)
	if err != nil {
		return err
	}
	_, err = c.act(ctx, game, model.EventUniversalPathUpdated, model.UniversalPathUpdatedPayload{
		Coordinates: coords,
		New:         path,
	})
	return err
}

// Undo reverses the most recent action of this turn
func (c *Controller) Undo(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, _, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	actions := game.Turn.Actions
	if len(actions) == 0 {
		return model.ErrNothingToUndo
	}

	last := actions[len(actions)-1]
	if err := c.revert(game, last); err != nil {
		return err
	}
	game.Turn.Actions = actions[:len(actions)-1]
	game.Turn.Undone = append(game.Turn.Undone, last)
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// Redo replays the most recently undone action
func (c *Controller) Redo(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, _, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	undone := game.Turn.Undone
	if len(undone) == 0 {
		return model.ErrNothingToRedo
	}

	ev, _, err := c.apply(game, undone[len(undone)-1])
	if err != nil {
		return err
	}
	game.Turn.Undone = undone[:len(undone)-1]
	game.Turn.Actions = append(game.Turn.Actions, ev)
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// ResetTurn undoes every action of this turn
func (c *Controller) ResetTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, _, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return err
	}
	for i := len(game.Turn.Actions) - 1; i >= 0; i-- {
		if err := c.revert(game, game.Turn.Actions[i]); err != nil {
			return err
		}
	}
	game.Turn = model.NewTurnState()
	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

func (c *Controller) placedThisTurn(ctx context.Context, gameID model.GameID, playerID model.PlayerID, coords model.Coordinates) (*model.Game, *model.Player, error) {
	game, player, err := c.turnFor(ctx, gameID, playerID)
	if err != nil {
		return nil, nil, err
	}
	if !game.Turn.Placed.Has(coords) {
		return nil, nil, model.NewCellError(model.ErrNotPlacedThisTurn, coords)
	}
	return game, player, nil
}

// act applies a new action, records it and clears the redo stack
func (c *Controller) act(ctx context.Context, game *model.Game, eventType model.EventType, payload any) (model.TurnScore, error) {
	ev, score, err := c.apply(game, c.newEvent(game, game.CurrentPlayer().ID, eventType, payload))
	if err != nil {
		return model.TurnScore{}, err
	}
	game.Turn.Actions = append(game.Turn.Actions, ev)
	game.Turn.Undone = nil
	game.UpdatedAt = c.clock.Now()
	return score, c.storage.SaveGame(ctx, game)
}

// apply performs the action described by ev and returns it with its outcome
// filled in. On error nothing has changed.
func (c *Controller) apply(game *model.Game, ev model.Event) (model.Event, model.TurnScore, error) {
	player := game.CurrentPlayer()
	b := game.Board
	var score model.TurnScore

	switch p := ev.Payload.(type) {
	case model.TilePlacedPayload:
		tile, err := player.TakeFromRack(p.RackIndex)
		if err != nil {
			return ev, score, err
		}
		score, err = b.PlaceTile(p.Placement.Coordinates, p.Placement.Placement())
		if err != nil {
			player.ReturnToRack(tile, p.RackIndex)
			return ev, score, err
		}
		game.Turn.Placed.Add(p.Placement.Coordinates)
		p.Score = score
		ev.Payload = p

	case model.TileRemovedPayload:
		placement, removed, ok := b.RemoveTile(p.Placement.Coordinates)
		if !ok {
			return ev, score, model.NewCellError(model.ErrNoTile, p.Placement.Coordinates)
		}
		player.ReturnToRack(placement.PathType.Tile(), p.RackIndex)
		game.Turn.Placed.Remove(p.Placement.Coordinates)
		score = removed
		p.Placement.PathType = placement.PathType
		p.Placement.Rotation = placement.Rotation
		p.Score = score
		ev.Payload = p

	case model.TileRotatedPayload:
		if err := b.RotateTile(p.Coordinates, p.New); err != nil {
			return ev, score, err
		}

	case model.TileMovedPayload:
		delta, err := b.MoveTile(p.From, p.To)
		if err != nil {
			return ev, score, err
		}
		game.Turn.Placed.Remove(p.From)
		game.Turn.Placed.Add(p.To)
		score = delta
		p.Score = score
		ev.Payload = p

	case model.UniversalPathUpdatedPayload:
		old, err := b.UpdateUniversalPath(p.Coordinates, p.New)
		if err != nil {
			return ev, score, err
		}
		p.Old = old
		ev.Payload = p

	default:
		return ev, score, fmt.Errorf("unexpected turn action %s", ev.Type)
	}

	game.Turn.Score = game.Turn.Score.Plus(score)
	return ev, score, nil
}

// revert exactly reverses an action previously returned by apply
func (c *Controller) revert(game *model.Game, ev model.Event) error {
	player := game.CurrentPlayer()
	b := game.Board
	var err error

	switch p := ev.Payload.(type) {
	case model.TilePlacedPayload:
		placement, _, ok := b.RemoveTile(p.Placement.Coordinates)
		if !ok {
			err = model.NewCellError(model.ErrNoTile, p.Placement.Coordinates)
			break
		}
		player.ReturnToRack(placement.PathType.Tile(), p.RackIndex)
		game.Turn.Placed.Remove(p.Placement.Coordinates)

	case model.TileRemovedPayload:
		if _, err = player.TakeFromRack(p.RackIndex); err != nil {
			break
		}
		if _, err = b.PlaceTile(p.Placement.Coordinates, p.Placement.Placement()); err != nil {
			break
		}
		game.Turn.Placed.Add(p.Placement.Coordinates)

	case model.TileRotatedPayload:
		err = b.RotateTile(p.Coordinates, p.Old)

	case model.TileMovedPayload:
		if _, err = b.MoveTile(p.To, p.From); err != nil {
			break
		}
		game.Turn.Placed.Remove(p.To)
		game.Turn.Placed.Add(p.From)

	case model.UniversalPathUpdatedPayload:
		_, err = b.UpdateUniversalPath(p.Coordinates, p.Old)

	default:
		err = fmt.Errorf("unexpected turn action %s", ev.Type)
	}

	if err != nil {
		c.logger.Error("failed to revert turn action",
			slog.String("game_id", string(game.ID)),
			slog.String("action", string(ev.Type)),
			slog.String("error", err.Error()),
		)
		return err
	}

	game.Turn.Score = game.Turn.Score.Plus(actionScore(ev).Neg())
	return nil
}

func actionScore(ev model.Event) model.TurnScore {
	switch p := ev.Payload.(type) {
	case model.TilePlacedPayload:
		return p.Score
	case model.TileRemovedPayload:
		return p.Score
	case model.TileMovedPayload:
		return p.Score
	default:
		return model.TurnScore{}
	}
}
