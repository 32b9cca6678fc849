package scorecard

import (
	"context"
	"testing"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

func TestTopNTriviaDescending(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	for _, s := range []int{4, 9, 2} {
		_ = st.Append(ctx, Trivia{Score: s})
	}
	top, err := TopN(ctx, st, game.Trivia, 2)
	if err != nil {
		t.Fatalf("TopN returned error: %v", err)
	}
	if len(top) != 2 || top[0].(Trivia).Score != 9 || top[1].(Trivia).Score != 4 {
		t.Fatalf("TopN=%+v want scores [9 4]", top)
	}
}

func TestTopNScrambleTiesKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	for _, w := range []string{"first", "second", "third"} {
		_ = st.Append(ctx, Scramble{Word: w, Score: 50})
	}
	top, _ := TopN(ctx, st, game.Scramble, 3)
	for i, w := range []string{"first", "second", "third"} {
		if top[i].(Scramble).Word != w {
			t.Fatalf("position %d=%q want %q", i, top[i].(Scramble).Word, w)
		}
	}
}

func TestTopNHuntWonFirstStable(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Append(ctx, Hunt{Outcome: OutcomeDied, Summary: "d1"})
	_ = st.Append(ctx, Hunt{Outcome: OutcomeWon, Summary: "w"})
	_ = st.Append(ctx, Hunt{Outcome: OutcomeDied, Summary: "d2"})

	top, err := TopN(ctx, st, game.Hunt, 3)
	if err != nil {
		t.Fatalf("TopN returned error: %v", err)
	}
	want := []string{"w", "d1", "d2"}
	for i, s := range want {
		if got := top[i].(Hunt).Summary; got != s {
			t.Fatalf("position %d=%q want %q", i, got, s)
		}
	}
}

func TestTopNMoreThanAvailable(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Append(ctx, Trivia{Score: 1})
	top, err := TopN(ctx, st, game.Trivia, 10)
	if err != nil {
		t.Fatalf("TopN returned error: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 card, got %d", len(top))
	}
}

func TestTopNEmpty(t *testing.T) {
	top, err := TopN(context.Background(), NewMemoryStore(), game.Hunt, 5)
	if err != nil {
		t.Fatalf("TopN returned error: %v", err)
	}
	if len(top) != 0 {
		t.Fatalf("expected no cards, got %v", top)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []Scorecard{Trivia{Score: 1}, Trivia{Score: 3}}
	_ = Rank(game.Trivia, in)
	if in[0].(Trivia).Score != 1 {
		t.Fatalf("Rank reordered its input")
	}
}
