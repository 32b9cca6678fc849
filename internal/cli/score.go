package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
	"github.com/varunvasudeva1/wordplay/internal/ui"
)

func newScoreCmd(app *App) *cobra.Command {
	var num int
	cmd := &cobra.Command{
		Use:       "score <game>",
		Short:     "Show your best scorecards for a game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: gameNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := game.ParseType(args[0])
			if err != nil {
				return err
			}
			if num < 1 {
				return fmt.Errorf("--num must be at least 1, got %d", num)
			}
			st, closeStore, err := openStore(app.Cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			top, err := scorecard.TopN(cmd.Context(), st, t, num)
			if err != nil {
				return err
			}
			styles := ui.NewStyles(app.Out, app.Cfg.NoColor)
			if len(top) == 0 {
				fmt.Fprintf(app.Out, "No %s scorecards yet. Run `wordplay play %s` to make one.\n", styles.Game(t, string(t)), t)
				return nil
			}
			fmt.Fprintf(app.Out, "Top %d %s scorecards:\n", len(top), styles.Game(t, string(t)))
			for i, sc := range top {
				printScorecard(app.Out, styles, i+1, sc)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&num, "num", "n", 5, "Number of scorecards to show")
	return cmd
}

func printScorecard(w io.Writer, st *ui.Styles, rank int, sc scorecard.Scorecard) {
	switch v := sc.(type) {
	case scorecard.Trivia:
		fmt.Fprintf(w, "%2d. %s  %d/%d correct  (%s, %s)\n",
			rank, st.Good(fmt.Sprintf("%3d", v.Score)), v.CorrectQuestions, v.TotalQuestions, v.Difficulty, v.Topic)
	case scorecard.Scramble:
		fmt.Fprintf(w, "%2d. %s  %s  (correct %d, unique %d, missed %d)\n",
			rank, st.Good(fmt.Sprintf("%3d", v.Score)), v.Word, v.Correct, v.Unique, v.Missed)
	case scorecard.Hunt:
		outcome := st.Bad(string(v.Outcome))
		if v.Outcome == scorecard.OutcomeWon {
			outcome = st.Good(string(v.Outcome))
		}
		fmt.Fprintf(w, "%2d. %s  %s\n", rank, outcome, v.Summary)
	}
}
