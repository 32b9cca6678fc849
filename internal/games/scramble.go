package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/varunvasudeva1/wordplay/internal/game"
	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

type scrambleWord struct {
	Word         string   `json:"word"`
	Permutations []string `json:"permutations"`
}

func (r *Runner) scramble(ctx context.Context, opts Options) error {
	c := r.Console
	if r.Dict == nil {
		return ErrNoDictionary
	}

	prompt := scrambleSystemPrompt
	daily := ""
	if opts.Daily {
		w, err := r.Dict.DailyWord(r.now(), r.DailySalt)
		if err != nil {
			return err
		}
		daily = w
		prompt = dailyScramblePrompt(w)
	}

	c.Println("Generating word and permutations...")
	resp, err := r.chat(ctx, []llm.Message{{Role: llm.RoleSystem, Content: prompt}}, r.Temperature)
	if err != nil {
		return fmt.Errorf("generating word/permutations: %w", err)
	}
	var data scrambleWord
	if err := llm.Decode(resp, &data); err != nil {
		return fmt.Errorf("generating word/permutations: %w", err)
	}
	if daily != "" {
		data.Word = daily
	}
	data.Word = strings.ToLower(strings.TrimSpace(data.Word))
	if data.Word == "" {
		return fmt.Errorf("generating word/permutations: %w", malformed(resp, "missing word"))
	}
	r.generated("word and permutations", resp.Duration)

	c.Printf("letters: %s\n\n", strings.Join(r.shuffle(data.Word), " "))
	answers, err := c.AskList("Type comma-separated answers")
	if err != nil {
		return err
	}

	generated, genRejected := game.Validate(data.Permutations, data.Word, r.Dict)
	user, userRejected := game.Validate(answers, data.Word, r.Dict)
	logRejections("generated", genRejected)
	logRejections("player", userRejected)

	res := game.Reconcile(generated, user)
	c.Printf("\n%s%s\n", c.Good("You got: "), strings.Join(res.Common, ", "))
	c.Printf("%s%s\n", c.Unique("You uniquely got: "), strings.Join(res.Unique, ", "))
	if len(res.Missed) > 0 {
		c.Printf("%s%s\n", c.Bad("You missed: "), strings.Join(res.Missed, ", "))
	}

	score, err := game.Score(res, len(generated))
	if errors.Is(err, game.ErrNoGeneratedAnswers) {
		log.Warn().Str("word", data.Word).Int("declared", len(data.Permutations)).Msg("no valid generated answers; scoring 0")
		c.Println(c.Dim("None of the generated answers were valid words, so this round scores 0."))
	}
	c.Printf("\nScore: %s out of %d!\n", c.Good(fmt.Sprint(res.Points())), len(generated))

	r.save(ctx, scorecard.Scramble{
		Word:    data.Word,
		Correct: len(res.Common),
		Unique:  len(res.Unique),
		Missed:  len(res.Missed),
		Score:   score,
	})
	return nil
}

// shuffle returns the letters of w in random order.
func (r *Runner) shuffle(w string) []string {
	letters := strings.Split(w, "")
	r.rng().Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
	return letters
}

func logRejections(source string, rs []game.Rejection) {
	for _, rj := range rs {
		log.Debug().Str("source", source).Str("word", rj.Word).Str("reason", string(rj.Reason)).Msg("answer rejected")
	}
}
