// internal/games/runner.go
//
// Game session orchestration.
// Responsibilities:
//   - Dispatch a play request to the trivia, hunt, or scramble loop.
//   - Send chat requests through the configured llm.Client.
//   - Persist the finished scorecard; a failed save is logged, never fatal.
//   - Treat the player's exit phrase as a clean end of the session.

package games

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
	"github.com/varunvasudeva1/wordplay/internal/ui"
	"github.com/varunvasudeva1/wordplay/internal/words"
)

// ErrNoDictionary is returned when scramble is played without a dictionary.
var ErrNoDictionary = errors.New("games: scramble needs a dictionary")

// Runner holds everything a session needs. Zero-valued optional fields fall
// back to sensible defaults.
type Runner struct {
	LLM         llm.Client
	Store       scorecard.Store
	Console     *ui.Console
	Dict        *words.Dictionary // scramble only
	Model       string
	Temperature *float64
	DailySalt   string
	Now         func() time.Time
	Rand        *rand.Rand
}

// Options tune a single session.
type Options struct {
	Daily      bool   // scramble: use the word of the day
	Difficulty string // trivia: skip the difficulty prompt
	Topic      string // trivia: skip the topic prompt
}

// Play runs one session of t to completion.
func (r *Runner) Play(ctx context.Context, t game.Type, opts Options) error {
	if r.LLM == nil || r.Console == nil {
		return errors.New("games: runner needs an LLM client and a console")
	}
	r.Console.Println(r.Console.Title(t))

	var err error
	switch t {
	case game.Trivia:
		err = r.trivia(ctx, opts)
	case game.Hunt:
		err = r.hunt(ctx)
	case game.Scramble:
		err = r.scramble(ctx, opts)
	default:
		_, err = game.ParseType(string(t))
	}
	if errors.Is(err, ui.ErrAborted) {
		r.Console.Println("\n" + r.Console.Dim("Leaving the game. See you next time!"))
		return nil
	}
	return err
}

func (r *Runner) chat(ctx context.Context, msgs []llm.Message, temp *float64) (llm.Response, error) {
	return r.LLM.SendChat(ctx, llm.Request{Model: r.Model, Messages: msgs, Temperature: temp})
}

// generated prints the timing line and ready badge after the first response.
func (r *Runner) generated(what string, d time.Duration) {
	r.Console.Printf("Generated %s successfully (took %.2fs).\n\n", what, d.Seconds())
	r.Console.Printf("%s\n\n", r.Console.Ready())
}

func (r *Runner) save(ctx context.Context, sc scorecard.Scorecard) {
	if r.Store == nil {
		return
	}
	if err := r.Store.Append(ctx, sc); err != nil {
		log.Warn().Err(err).Str("game", string(sc.Game())).Msg("scorecard not saved")
	}
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Runner) rng() *rand.Rand {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Rand
}

// malformed wraps a structurally wrong (but valid JSON) model reply.
func malformed(resp llm.Response, format string, args ...any) error {
	return &llm.ParseError{Body: resp.Message.Content, Err: fmt.Errorf(format, args...)}
}
