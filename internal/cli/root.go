package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/varunvasudeva1/wordplay/internal/config"
	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

// App carries the loaded configuration and I/O streams into every command.
type App struct {
	Cfg config.Config
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// NewClient builds the LLM client; tests replace it.
	NewClient func(config.Config) (llm.Client, error)
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	if app.NewClient == nil {
		app.NewClient = newClient
	}
	root := &cobra.Command{
		Use:   "wordplay",
		Short: "On-demand, LM-powered collection of text-based games",
		Long: `wordplay - word and trivia games generated on demand by a language model.

Quick Start:
  1. Point at a model:  wordplay config --base_url http://localhost:11434 --provider ollama --model llama3
  2. See the games:     wordplay list
  3. Play one:          wordplay play scramble
  4. Check your best:   wordplay score scramble --num 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.AddCommand(
		newPlayCmd(app),
		newConfigCmd(app),
		newListCmd(app),
		newScoreCmd(app),
		newServeCmd(app),
	)
	return root
}

// Execute runs the CLI against the process streams and returns the exit code.
func Execute(cfg config.Config) int {
	app := &App{Cfg: cfg, In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := NewRootCmd(app).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(app.Err, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newClient(cfg config.Config) (llm.Client, error) {
	provider, err := llm.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}
	c, err := llm.New(llm.Options{
		Provider: provider,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}
	return llm.WithTimeout(c, cfg.Timeout), nil
}

// openStore picks the SQLite backend when SCORES_DSN is set, otherwise the
// JSON scoresheet. The returned func releases the store.
func openStore(cfg config.Config) (scorecard.Store, func(), error) {
	if cfg.ScoresDSN != "" {
		st, err := scorecard.OpenSQLite(cfg.ScoresDSN)
		if err != nil {
			return nil, func() {}, err
		}
		return st, func() {
			if err := st.Close(); err != nil {
				log.Warn().Err(err).Msg("close scorecard db")
			}
		}, nil
	}
	return scorecard.NewFileStore(cfg.ScoresFile), func() {}, nil
}
