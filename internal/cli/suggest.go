package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/threecgreen/nile-sub000/internal/model"
)

func newSuggestCmd() *cobra.Command {
	var (
		hand      []string
		score     int
		opponents []int
		top       int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank the opening moves for a hand",
		Long: `suggest runs the brute-force search for a hand on an empty board and
prints the best candidates. --score and --opponents feed the end-of-game
heuristic and split the look-ahead penalty between opponents.`,
		Example: "  nile suggest --hand Center90,Straight,Straight --opponents 0 --top 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(hand) == 0 {
				return fmt.Errorf("--hand is required")
			}
			if len(hand) > model.RackCapacity {
				return fmt.Errorf("a hand holds at most %d tiles, got %d", model.RackCapacity, len(hand))
			}
			tiles := make([]model.Tile, 0, len(hand))
			for _, name := range hand {
				t, err := model.ParseTile(name)
				if err != nil {
					return err
				}
				tiles = append(tiles, t)
			}

			strategy := app.Strategies[model.BotStrategyBruteForce]
			candidates := strategy.TakeTurn(tiles, model.NewBoard(), score, opponents)

			result := SuggestResult{
				Hand:  tileNames(tiles),
				Total: len(candidates),
			}
			for i, c := range candidates {
				if i >= top {
					break
				}
				result.Suggestions = append(result.Suggestions, SuggestionView{
					Rank:       i + 1,
					Score:      c.Score,
					Placements: tileViews(c.Placements),
				})
			}

			out := newOutput(cmd)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&hand, "hand", nil, "Tiles in hand, comma separated (e.g. Center90,Straight,Universal)")
	cmd.Flags().IntVar(&score, "score", 0, "Your current score")
	cmd.Flags().IntSliceVar(&opponents, "opponents", []int{0}, "Opponents' current scores")
	cmd.Flags().IntVar(&top, "top", 5, "Number of candidates to show")

	return cmd
}
