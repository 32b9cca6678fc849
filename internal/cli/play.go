package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/games"
	"github.com/varunvasudeva1/wordplay/internal/ui"
	"github.com/varunvasudeva1/wordplay/internal/words"
)

func newPlayCmd(app *App) *cobra.Command {
	var opts games.Options
	cmd := &cobra.Command{
		Use:       "play <game>",
		Short:     "Play a game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: gameNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := game.ParseType(args[0])
			if err != nil {
				return err
			}
			if err := app.Cfg.RequireLLM(); err != nil {
				return err
			}
			client, err := app.NewClient(app.Cfg)
			if err != nil {
				return err
			}

			runner := &games.Runner{
				LLM:         client,
				Console:     ui.NewConsole(app.In, app.Out, app.Cfg.NoColor),
				Model:       app.Cfg.Model,
				Temperature: app.Cfg.Temperature,
				DailySalt:   app.Cfg.DailySalt,
			}
			if t == game.Scramble {
				if runner.Dict, err = words.Open(app.Cfg.WordsFile); err != nil {
					return err
				}
				log.Debug().Int("words", runner.Dict.Len()).Msg("dictionary loaded")
			}

			st, closeStore, err := openStore(app.Cfg)
			if err != nil {
				log.Warn().Err(err).Msg("scorecard store unavailable; results will not be saved")
			} else {
				runner.Store = st
				defer closeStore()
			}

			fmt.Fprint(app.Out, runner.Console.Banner())
			return runner.Play(cmd.Context(), t, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Daily, "daily", false, "scramble: play the word of the day")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", "", "trivia: easy, medium, hard or hardcore")
	cmd.Flags().StringVar(&opts.Topic, "topic", "", "trivia: quiz topic (\"random\" lets the model pick)")
	return cmd
}

func gameNames() []string {
	out := make([]string, len(game.Types))
	for i, t := range game.Types {
		out[i] = string(t)
	}
	return out
}
