package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

func TestMatchChoice(t *testing.T) {
	labeled := []string{"A) Go left into the cave", "B) Climb the cliff", "C) Swim across"}
	plain := []string{"9 billion", "12 billion", "4.5 billion", "1990"}

	tests := []struct {
		in      string
		choices []string
		want    int
		ok      bool
	}{
		{in: "2", choices: labeled, want: 1, ok: true},
		{in: "c", choices: labeled, want: 2, ok: true},
		{in: "C", choices: labeled, want: 2, ok: true},
		{in: "climb the cliff", choices: labeled, want: 1, ok: true},
		{in: "swim acros", choices: labeled, want: 2, ok: true},
		{in: "b", choices: plain, want: 1, ok: true},
		{in: "1990", choices: plain, want: 3, ok: true},
		{in: "4.5 bilion", choices: plain, want: 2, ok: true},
		{in: "9", choices: labeled, ok: false},
		{in: "fly away", choices: labeled, ok: false},
		{in: "", choices: labeled, ok: false},
	}
	for _, tc := range tests {
		got, ok := MatchChoice(tc.in, tc.choices)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("MatchChoice(%q)=(%d,%v) want=(%d,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestChooseRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("nonsense\n3\n"), &out, true)
	got, err := c.Choose("Make your choice.", []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Choose returned error: %v", err)
	}
	if got != 2 {
		t.Fatalf("Choose=%d want 2", got)
	}
	if !strings.Contains(out.String(), "Pick 1-3") {
		t.Fatalf("expected re-prompt hint, got %q", out.String())
	}
}

func TestExitPhraseAborts(t *testing.T) {
	c := NewConsole(strings.NewReader("Get Me Out\n"), &bytes.Buffer{}, true)
	if _, err := c.Ask("TOPIC", "random"); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestEOFAborts(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{}, true)
	if _, err := c.Choose("?", []string{"x"}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAskDefaultAndLastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("\nastronomy"), &bytes.Buffer{}, true)
	first, err := c.Ask("TOPIC", "random")
	if err != nil || first != "random" {
		t.Fatalf("Ask=%q,%v want random", first, err)
	}
	second, err := c.Ask("TOPIC", "random")
	if err != nil || second != "astronomy" {
		t.Fatalf("Ask=%q,%v want astronomy", second, err)
	}
}

func TestAskList(t *testing.T) {
	c := NewConsole(strings.NewReader(" cat, Dog ,, act \n"), &bytes.Buffer{}, true)
	got, err := c.AskList("Type comma-separated answers")
	if err != nil {
		t.Fatalf("AskList returned error: %v", err)
	}
	if strings.Join(got, "|") != "cat|Dog|act" {
		t.Fatalf("AskList=%q", got)
	}
}

func TestTitleWithoutColor(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)
	if !strings.Contains(s.Title(game.Scramble), "WELCOME TO SCRAMBLE") {
		t.Fatalf("unexpected title: %q", s.Title(game.Scramble))
	}
	if s.Good("ok") != "ok" {
		t.Fatalf("noColor should render plain text")
	}
}
