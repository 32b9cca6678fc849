package games

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/varunvasudeva1/wordplay/internal/llm"
	"github.com/varunvasudeva1/wordplay/internal/scorecard"
)

// TriviaQuestions is the size of every quiz.
const TriviaQuestions = 10

// RandomTopic lets the model pick the subject.
const RandomTopic = "random"

// Difficulties in increasing order.
var Difficulties = []string{"easy", "medium", "hard", "hardcore"}

type triviaQuestion struct {
	Message       string   `json:"message"`
	Choices       []string `json:"choices"`
	CorrectChoice *int     `json:"correctChoice"`
}

type triviaQuiz struct {
	Quiz []triviaQuestion `json:"quiz"`
}

func (q triviaQuiz) validate(resp llm.Response) error {
	if len(q.Quiz) == 0 {
		return malformed(resp, "missing quiz")
	}
	for i, qq := range q.Quiz {
		if strings.TrimSpace(qq.Message) == "" || len(qq.Choices) == 0 {
			return malformed(resp, "question %d has no message or choices", i+1)
		}
		if qq.CorrectChoice == nil || *qq.CorrectChoice < 0 || *qq.CorrectChoice >= len(qq.Choices) {
			return malformed(resp, "question %d has no valid correctChoice", i+1)
		}
	}
	return nil
}

func (r *Runner) trivia(ctx context.Context, opts Options) error {
	c := r.Console

	difficulty := strings.ToLower(strings.TrimSpace(opts.Difficulty))
	if !validDifficulty(difficulty) {
		c.Println("DIFFICULTY")
		i, err := c.Choose(">", Difficulties)
		if err != nil {
			return err
		}
		difficulty = Difficulties[i]
	}
	topic := strings.TrimSpace(opts.Topic)
	if topic == "" {
		var err error
		if topic, err = c.Ask("TOPIC", RandomTopic); err != nil {
			return err
		}
	}

	c.Println("Generating quiz...")
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: triviaSystemPrompt(topic, difficulty)}}
	resp, err := r.chat(ctx, msgs, r.Temperature)
	if err != nil {
		return fmt.Errorf("creating questions: %w", err)
	}
	var quiz triviaQuiz
	if err := llm.Decode(resp, &quiz); err != nil {
		return fmt.Errorf("creating questions: %w", err)
	}
	if err := quiz.validate(resp); err != nil {
		return fmt.Errorf("creating questions: %w", err)
	}
	r.generated("quiz", resp.Duration)

	correct := 0
	for i, q := range quiz.Quiz {
		c.Printf("%s %s\n", c.Dim(fmt.Sprintf("[%d/%d]", i+1, len(quiz.Quiz))), q.Message)
		pick, err := c.Choose("Your answer:", q.Choices)
		if err != nil {
			return err
		}
		if pick == *q.CorrectChoice {
			correct++
			c.Println(c.Good("Correct."))
		} else {
			c.Printf("%s Correct answer: %s\n", c.Bad("Incorrect."), c.Good(q.Choices[*q.CorrectChoice]))
		}
		c.Println()
	}

	total := len(quiz.Quiz)
	c.Printf("\nYour total score is %s/%d. %s\n", c.Good(fmt.Sprint(correct)), total, goodbyeMessage(correct))

	r.save(ctx, scorecard.Trivia{
		Difficulty:       difficulty,
		Topic:            topic,
		CorrectQuestions: correct,
		TotalQuestions:   total,
		Score:            percent(correct, total),
	})
	return nil
}

func validDifficulty(d string) bool {
	for _, k := range Difficulties {
		if k == d {
			return true
		}
	}
	return false
}

func goodbyeMessage(score int) string {
	switch {
	case score < 2:
		return "Better luck next time!"
	case score < 5:
		return "Not a bad try. There's some room for improvement."
	case score < 7:
		return "Nice! Getting close to a full score."
	default:
		return "You're a pro!"
	}
}

func percent(n, of int) int {
	if of <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(of)))
}
