package cli

import (
	"github.com/spf13/cobra"

	"github.com/threecgreen/nile-sub000/internal/model"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print the board layout with its bonuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd)
			out.Print(newBoardView(model.NewBoard(), nil))
			return nil
		},
	}
}
