package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/varunvasudeva1/wordplay/internal/config"
	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

type stubClient struct{ content string }

func (s stubClient) SendChat(context.Context, llm.Request) (llm.Response, error) {
	return llm.Response{Message: llm.Message{Role: llm.RoleAssistant, Content: s.content}}, nil
}

func run(t *testing.T, app *App, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app.In = strings.NewReader(in)
	app.Out = &out
	app.Err = &out
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		EnvFile:    filepath.Join(dir, ".env"),
		ScoresFile: filepath.Join(dir, "scoresheet.json"),
		NoColor:    true,
	}
}

func TestList(t *testing.T) {
	out, err := run(t, &App{Cfg: testConfig(t)}, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "Available Games:\ntrivia\nhunt\nscramble\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestConfigWritesEnvFile(t *testing.T) {
	cfg := testConfig(t)
	out, err := run(t, &App{Cfg: cfg}, "", "config", "--provider", "Ollama", "--model", "Llama3")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "Environment variable MODEL set to llama3") ||
		!strings.Contains(out, "Environment variable PROVIDER set to ollama") {
		t.Fatalf("unexpected output %q", out)
	}
	env, err := config.Read(cfg.EnvFile)
	if err != nil {
		t.Fatalf("read env: %v", err)
	}
	if env["PROVIDER"] != "ollama" || env["MODEL"] != "llama3" {
		t.Fatalf("env file = %v", env)
	}
}

func TestConfigRejectsUnknownProvider(t *testing.T) {
	cfg := testConfig(t)
	_, err := run(t, &App{Cfg: cfg}, "", "config", "--provider", "anthropic")
	if err == nil || !strings.Contains(err.Error(), "unrecognized provider") {
		t.Fatalf("want provider error, got %v", err)
	}
	if _, statErr := os.Stat(cfg.EnvFile); !os.IsNotExist(statErr) {
		t.Fatalf("env file should not be written, stat err = %v", statErr)
	}
}

func TestPlayRequiresConnection(t *testing.T) {
	cfg := testConfig(t)
	cfg.BaseURL = "http://localhost:11434"
	_, err := run(t, &App{Cfg: cfg}, "", "play", "trivia")
	var missing *config.MissingError
	if !errors.As(err, &missing) || missing.Key != "PROVIDER" {
		t.Fatalf("want missing PROVIDER, got %v", err)
	}
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := run(t, &App{Cfg: testConfig(t)}, "", "play", "chess")
	if err == nil || !strings.Contains(err.Error(), "invalid game type") {
		t.Fatalf("want invalid game error, got %v", err)
	}
}

func TestPlayScrambleSavesScorecard(t *testing.T) {
	cfg := testConfig(t)
	cfg.BaseURL, cfg.Provider, cfg.Model = "http://localhost:11434", "ollama", "llama3"
	app := &App{
		Cfg: cfg,
		NewClient: func(config.Config) (llm.Client, error) {
			return stubClient{content: `{"word":"planet","permutations":["plane","plant"]}`}, nil
		},
	}
	out, err := run(t, app, "plane, plant\n", "play", "scramble")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "Score: 2 out of 2!") {
		t.Fatalf("missing score line in %q", out)
	}

	cards, err := scorecard.NewFileStore(cfg.ScoresFile).LoadAll(context.Background(), "scramble")
	if err != nil || len(cards) != 1 {
		t.Fatalf("LoadAll = %v, %v", cards, err)
	}
	if sc := cards[0].(scorecard.Scramble); sc.Word != "planet" || sc.Score != 100 {
		t.Fatalf("saved %+v", sc)
	}
}

func TestScoreShowsRanked(t *testing.T) {
	cfg := testConfig(t)
	st := scorecard.NewFileStore(cfg.ScoresFile)
	for _, s := range []int{40, 90, 20} {
		if err := st.Append(context.Background(), scorecard.Scramble{Word: "planet", Score: s}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	out, err := run(t, &App{Cfg: cfg}, "", "score", "scramble", "--num", "2")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	first, second := strings.Index(out, " 90"), strings.Index(out, " 40")
	if first < 0 || second < 0 || first > second || strings.Contains(out, " 20 ") {
		t.Fatalf("unexpected ranking output %q", out)
	}
}

func TestScoreRejectsBadNum(t *testing.T) {
	_, err := run(t, &App{Cfg: testConfig(t)}, "", "score", "trivia", "--num", "0")
	if err == nil || !strings.Contains(err.Error(), "--num") {
		t.Fatalf("want --num error, got %v", err)
	}
}

func TestScoreEmpty(t *testing.T) {
	out, err := run(t, &App{Cfg: testConfig(t)}, "", "score", "hunt")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out, "No hunt scorecards yet") {
		t.Fatalf("unexpected output %q", out)
	}
}
