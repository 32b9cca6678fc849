package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available games",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			st := ui.NewStyles(app.Out, app.Cfg.NoColor)
			fmt.Fprintln(app.Out, "Available Games:")
			for _, t := range game.Types {
				fmt.Fprintln(app.Out, st.Game(t, string(t)))
			}
		},
	}
}
