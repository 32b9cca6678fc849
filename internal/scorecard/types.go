// internal/scorecard/types.go
//
// Persisted records of finished game sessions.
// Defines:
//   - Scorecard: the variant interface implemented by each game's record.
//   - Trivia, Hunt, Scramble: per-game record shapes (JSON field names match
//     the scoresheet file).
//   - Outcome: hunt end states.

package scorecard

import (
	"encoding/json"
	"fmt"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

// Scorecard is one finished game session.
type Scorecard interface {
	Game() game.Type
}

// Outcome of a treasure hunt turn.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeDied      Outcome = "died"
	OutcomeUndecided Outcome = "undecided"
)

// Valid reports whether o is one of the known outcomes.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeWon, OutcomeDied, OutcomeUndecided:
		return true
	}
	return false
}

// Trivia records a finished quiz. Score is the percentage of questions
// answered correctly.
type Trivia struct {
	Difficulty       string `json:"difficulty"`
	Topic            string `json:"topic"`
	CorrectQuestions int    `json:"correctQuestions"`
	TotalQuestions   int    `json:"totalQuestions"`
	Score            int    `json:"score"`
}

// Hunt records how a treasure hunt ended. Hunts have no numeric score.
type Hunt struct {
	Outcome Outcome `json:"outcome"`
	Summary string  `json:"summary"`
}

// Scramble records a finished word scramble.
type Scramble struct {
	Word    string `json:"word"`
	Correct int    `json:"correct"`
	Unique  int    `json:"unique"`
	Missed  int    `json:"missed"`
	Score   int    `json:"score"`
}

func (Trivia) Game() game.Type   { return game.Trivia }
func (Hunt) Game() game.Type     { return game.Hunt }
func (Scramble) Game() game.Type { return game.Scramble }

// decode parses one stored record of game type t.
func decode(t game.Type, raw []byte) (Scorecard, error) {
	switch t {
	case game.Trivia:
		var sc Trivia
		err := json.Unmarshal(raw, &sc)
		return sc, err
	case game.Hunt:
		var sc Hunt
		err := json.Unmarshal(raw, &sc)
		return sc, err
	case game.Scramble:
		var sc Scramble
		err := json.Unmarshal(raw, &sc)
		return sc, err
	}
	return nil, fmt.Errorf("unknown game type %q", t)
}

// deref flattens pointer scorecards so stores always hold values.
func deref(sc Scorecard) Scorecard {
	switch v := sc.(type) {
	case *Trivia:
		return *v
	case *Hunt:
		return *v
	case *Scramble:
		return *v
	}
	return sc
}
