package games

import (
	"context"
	"fmt"
	"strings"

	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

// huntTemperature is used when no TEMPERATURE is configured.
const huntTemperature = 0.7

type huntTurn struct {
	Plot    string            `json:"plot"`
	Choices []string          `json:"choices"`
	Outcome scorecard.Outcome `json:"outcome"`
	Summary string            `json:"summary,omitempty"`
}

func (t huntTurn) validate(resp llm.Response) error {
	if !t.Outcome.Valid() {
		return malformed(resp, "unknown outcome %q", t.Outcome)
	}
	if t.Outcome == scorecard.OutcomeUndecided && len(t.Choices) == 0 {
		return malformed(resp, "undecided turn without choices")
	}
	return nil
}

// hunt asks for turns until the model declares the player won or died. Every
// turn and the player's pick are fed back as conversation history.
func (r *Runner) hunt(ctx context.Context) error {
	c := r.Console
	temp := r.Temperature
	if temp == nil {
		v := huntTemperature
		temp = &v
	}

	msgs := []llm.Message{{Role: llm.RoleSystem, Content: huntSystemPrompt}}
	c.Println("Generating hunt...")
	for first := true; ; first = false {
		resp, err := r.chat(ctx, msgs, temp)
		if err != nil {
			return fmt.Errorf("generating choices: %w", err)
		}
		var turn huntTurn
		if err := llm.Decode(resp, &turn); err != nil {
			return fmt.Errorf("generating choices: %w", err)
		}
		if err := turn.validate(resp); err != nil {
			return fmt.Errorf("generating choices: %w", err)
		}
		if first {
			r.generated("hunt", resp.Duration)
		}

		if turn.Outcome != scorecard.OutcomeUndecided {
			if turn.Outcome == scorecard.OutcomeWon {
				c.Println(c.Good(turn.Plot))
			} else {
				c.Println(c.Bad(turn.Plot))
			}
			if turn.Summary != "" {
				c.Printf("\n%s\n", c.Dim(turn.Summary))
			}
			r.save(ctx, scorecard.Hunt{Outcome: turn.Outcome, Summary: turn.Summary})
			return nil
		}

		msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: strings.TrimSpace(resp.Message.Content)})
		c.Println(turn.Plot)
		pick, err := c.Choose("Make your choice.", turn.Choices)
		if err != nil {
			return err
		}
		msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: turn.Choices[pick]})
		c.Println()
	}
}
