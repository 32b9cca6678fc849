package scorecard

import (
	"cmp"
	"context"
	"slices"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

// Comparator returns the ordering used to rank t's scorecards.
//
//   - trivia, scramble: descending score.
//   - hunt: "won" before anything else; no tiebreak within an outcome.
//
// Ties compare equal; Rank relies on a stable sort to keep creation order.
func Comparator(t game.Type) func(a, b Scorecard) int {
	if t == game.Hunt {
		return func(a, b Scorecard) int {
			return cmp.Compare(huntClass(a), huntClass(b))
		}
	}
	return func(a, b Scorecard) int {
		return cmp.Compare(points(b), points(a))
	}
}

// Rank returns a stably sorted copy of cards.
func Rank(t game.Type, cards []Scorecard) []Scorecard {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, Comparator(t))
	return out
}

// TopN loads t's scorecards from st and returns the best min(n, count).
// No scorecards is an empty result, not an error.
func TopN(ctx context.Context, st Store, t game.Type, n int) ([]Scorecard, error) {
	cards, err := st.LoadAll(ctx, t)
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(cards) == 0 {
		return []Scorecard{}, nil
	}
	ranked := Rank(t, cards)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

func points(sc Scorecard) int {
	switch v := deref(sc).(type) {
	case Trivia:
		return v.Score
	case Scramble:
		return v.Score
	}
	return 0
}

func huntClass(sc Scorecard) int {
	if h, ok := deref(sc).(Hunt); ok && h.Outcome == OutcomeWon {
		return 0
	}
	return 1
}
