package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threecgreen/nile-sub000/internal/model"
	"github.com/threecgreen/nile-sub000/internal/services/bot"
)

const playHelp = `Commands:
  place <rack> <row> <col> [rotation]  lay a tile from your rack
  remove <row> <col>                   take back a tile placed this turn
  rotate <row> <col> <rotation>        rotation is 0, 90, 180 or 270
  move <row> <col> <row> <col>         move a tile placed this turn
  path <row> <col> <shape>             reshape a universal tile
  undo | redo | reset                  step through this turn's actions
  end                                  commit the turn
  pass                                 can't play: swap your rack
  hint                                 show the best moves for your rack
  board | scores | help | quit`

var errQuit = errors.New("quit")

func newPlayCmd() *cobra.Command {
	var (
		players     []string
		bots        int
		botStrategy string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game on the terminal",
		Long: `play starts a game between the named players and any number of bots. Humans
take turns typing commands; bots move automatically.

` + playHelp,
		Example: "  nile play --players alice,bob --bots 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := make([]model.PlayerConfig, 0, len(players)+bots)
			for _, name := range players {
				configs = append(configs, model.PlayerConfig{DisplayName: name})
			}
			for i := range bots {
				configs = append(configs, model.PlayerConfig{
					DisplayName: fmt.Sprintf("bot-%d", i+1),
					IsBot:       true,
					BotStrategy: botStrategy,
				})
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			game, err := app.GameController.CreateGame(ctx, configs)
			if err != nil {
				return err
			}

			s := &session{out: newOutput(cmd), w: cmd.OutOrStdout(), game: game}
			return s.run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"you"}, "Human player names, comma separated")
	cmd.Flags().IntVar(&bots, "bots", 1, "Number of bot players")
	cmd.Flags().StringVar(&botStrategy, "bot-strategy", model.BotStrategyBruteForce, "Bot strategy: brute-force, random")

	return cmd
}

// session runs one interactive game
type session struct {
	out  *Output
	w    io.Writer
	game *model.Game
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	if err := s.runBots(ctx); err != nil {
		return err
	}
	s.out.Print(newGameView(s.game))

	scanner := bufio.NewScanner(in)
	for !s.game.IsComplete() {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		err := s.handle(ctx, strings.ToLower(fields[0]), fields[1:])
		if errors.Is(err, errQuit) {
			if err := app.GameController.AbandonGame(ctx, s.game.ID); err != nil {
				return err
			}
			break
		}
		if err != nil {
			s.out.PrintError(err)
		}
		if err := s.refresh(ctx); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if s.game.State == model.GameStatePlaying {
		// Input ran out mid-game
		if err := app.GameController.AbandonGame(ctx, s.game.ID); err != nil {
			return err
		}
	}
	if err := s.printFinal(ctx); err != nil {
		return err
	}
	return app.Storage.DeleteGame(ctx, s.game.ID)
}

func (s *session) prompt() {
	if s.out.format != OutputText {
		return
	}
	player := s.game.CurrentPlayer()
	fmt.Fprintf(s.w, "%s %s> ", player.DisplayName, rackText(tileNames(player.Rack)))
}

func (s *session) refresh(ctx context.Context) error {
	game, err := app.GameController.GetGame(ctx, s.game.ID)
	if err != nil {
		return err
	}
	s.game = game
	return nil
}

func (s *session) handle(ctx context.Context, command string, args []string) error {
	gc := app.GameController
	gameID := s.game.ID
	player := s.game.CurrentPlayer()
	playerID := player.ID

	switch command {
	case "place", "p":
		if len(args) != 3 && len(args) != 4 {
			return usage("place <rack> <row> <col> [rotation]")
		}
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid rack index %q", args[0])
		}
		coords, err := parseCoordinates(args[1:3])
		if err != nil {
			return err
		}
		rotation := model.Rotation0
		if len(args) == 4 {
			if rotation, err = model.ParseRotation(args[3]); err != nil {
				return err
			}
		}
		if _, err := gc.PlaceTile(ctx, gameID, playerID, idx, coords, rotation); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "remove", "rm":
		if len(args) != 2 {
			return usage("remove <row> <col>")
		}
		coords, err := parseCoordinates(args)
		if err != nil {
			return err
		}
		if _, err := gc.RemoveTile(ctx, gameID, playerID, coords); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "rotate", "r":
		if len(args) != 3 {
			return usage("rotate <row> <col> <rotation>")
		}
		coords, err := parseCoordinates(args[:2])
		if err != nil {
			return err
		}
		rotation, err := model.ParseRotation(args[2])
		if err != nil {
			return err
		}
		if err := gc.RotateTile(ctx, gameID, playerID, coords, rotation); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "move", "mv":
		if len(args) != 4 {
			return usage("move <row> <col> <row> <col>")
		}
		from, err := parseCoordinates(args[:2])
		if err != nil {
			return err
		}
		to, err := parseCoordinates(args[2:])
		if err != nil {
			return err
		}
		if _, err := gc.MoveTile(ctx, gameID, playerID, from, to); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "path":
		if len(args) != 3 {
			return usage("path <row> <col> <shape>")
		}
		coords, err := parseCoordinates(args[:2])
		if err != nil {
			return err
		}
		path, err := model.ParseTilePath(args[2])
		if err != nil {
			return err
		}
		if err := gc.UpdateUniversalPath(ctx, gameID, playerID, coords, path); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "undo", "u":
		if err := gc.Undo(ctx, gameID, playerID); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "redo":
		if err := gc.Redo(ctx, gameID, playerID); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "reset":
		if err := gc.ResetTurn(ctx, gameID, playerID); err != nil {
			return err
		}
		return s.turnStatus(ctx)

	case "end", "e":
		result, err := gc.EndTurn(ctx, gameID, playerID)
		if err != nil {
			return err
		}
		s.out.Print(TurnResult{
			Player:    player.DisplayName,
			Tiles:     len(result.Placed),
			Score:     result.Score.Total(),
			GameEnded: result.GameEnded,
		})
		return s.nextTurn(ctx)

	case "pass":
		if _, err := gc.CantPlay(ctx, gameID, playerID); err != nil {
			return err
		}
		s.out.PrintMessage(fmt.Sprintf("%s can't play and draws a new rack", player.DisplayName))
		return s.nextTurn(ctx)

	case "hint", "h":
		return s.hint()

	case "board", "b":
		s.out.Print(newGameView(s.game))
		return nil

	case "scores":
		standings, err := gc.Standings(ctx, gameID)
		if err != nil {
			return err
		}
		s.out.Print(standingViews(standings))
		return nil

	case "help", "?":
		s.out.PrintMessage(playHelp)
		return nil

	case "quit", "exit", "q":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q; type help for a list", command)
	}
}

// turnStatus shows the board after an action within the turn
func (s *session) turnStatus(ctx context.Context) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	s.out.Print(newGameView(s.game))
	return nil
}

// nextTurn lets the bots move, then shows the board to whoever is up
func (s *session) nextTurn(ctx context.Context) error {
	if err := s.runBots(ctx); err != nil {
		return err
	}
	if err := s.refresh(ctx); err != nil {
		return err
	}
	if !s.game.IsComplete() {
		s.out.Print(newGameView(s.game))
	}
	return nil
}

func (s *session) runBots(ctx context.Context) error {
	actions, err := app.BotService.ProcessBotTurns(ctx, s.game.ID)
	for _, action := range actions {
		if action.Type == bot.ActionGameComplete {
			continue
		}
		name := string(action.PlayerID)
		if p := s.game.Player(action.PlayerID); p != nil {
			name = p.DisplayName
		}
		s.out.Print(BotTurnView{
			Player:     name,
			Action:     string(action.Type),
			Score:      action.Score.Total(),
			Placements: tileViews(action.Placements),
			Returned:   tileNames(action.Returned),
		})
	}
	return err
}

func (s *session) hint() error {
	if len(s.game.Turn.Placed) > 0 {
		return fmt.Errorf("%w: reset the turn to get a hint", model.ErrTilesPlacedThisTurn)
	}
	player := s.game.CurrentPlayer()
	candidates := app.Strategies[model.BotStrategyBruteForce].TakeTurn(
		player.Rack, s.game.Board, player.Score.Total(), s.game.OtherScores(player.ID),
	)

	result := SuggestResult{Hand: tileNames(player.Rack), Total: len(candidates)}
	for i, c := range candidates {
		if i >= 3 {
			break
		}
		result.Suggestions = append(result.Suggestions, SuggestionView{
			Rank:       i + 1,
			Score:      c.Score,
			Placements: tileViews(c.Placements),
		})
	}
	s.out.Print(result)
	return nil
}

func (s *session) printFinal(ctx context.Context) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	s.out.Print(newGameView(s.game))

	standings, err := app.GameController.Standings(ctx, s.game.ID)
	if err != nil {
		return err
	}
	s.out.Print(standingViews(standings))

	switch {
	case s.game.State == model.GameStateAbandoned:
		s.out.PrintMessage("Game abandoned")
	case s.game.Winner != "":
		s.out.PrintMessage(fmt.Sprintf("%s wins!", s.game.Player(s.game.Winner).DisplayName))
	default:
		s.out.PrintMessage("The game is a tie")
	}
	return nil
}

func parseCoordinates(args []string) (model.Coordinates, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("invalid row: %w", err)
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("invalid col: %w", err)
	}
	return model.Coordinates{Row: row, Col: col}, nil
}

func usage(syntax string) error {
	return fmt.Errorf("usage: %s", syntax)
}
