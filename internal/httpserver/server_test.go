package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

func seeded(t *testing.T) *Server {
	t.Helper()
	st := scorecard.NewMemoryStore()
	ctx := context.Background()
	for _, s := range []int{4, 9, 2} {
		if err := st.Append(ctx, scorecard.Trivia{Topic: "t", Score: s}); err != nil {
			t.Fatal(err)
		}
	}
	return New(st)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestScoresRanked(t *testing.T) {
	rec := get(t, seeded(t), "/scores/trivia?num=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body)
	}
	var body struct {
		Game   string `json:"game"`
		Scores []struct {
			Score int `json:"score"`
		} `json:"scores"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if body.Game != "trivia" || len(body.Scores) != 2 || body.Scores[0].Score != 9 || body.Scores[1].Score != 4 {
		t.Fatalf("unexpected body: %s", rec.Body)
	}
}

func TestScoresEmptyGame(t *testing.T) {
	rec := get(t, seeded(t), "/scores/hunt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body struct {
		Scores []json.RawMessage `json:"scores"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Scores == nil || len(body.Scores) != 0 {
		t.Fatalf("expected an empty array, got %s", rec.Body)
	}
}

func TestScoresBadInput(t *testing.T) {
	s := seeded(t)
	if rec := get(t, s, "/scores/chess"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown game status=%d", rec.Code)
	}
	if rec := get(t, s, "/scores/trivia?num=zero"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad num status=%d", rec.Code)
	}
}

func TestHealthAndGames(t *testing.T) {
	s := seeded(t)
	if rec := get(t, s, "/health"); rec.Code != http.StatusOK || rec.Header().Get("Content-Type") == "" {
		t.Fatalf("health status=%d headers=%v", rec.Code, rec.Header())
	}
	rec := get(t, s, "/games")
	var body map[string][]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body["games"]) != 3 {
		t.Fatalf("unexpected games: %s", rec.Body)
	}
}
