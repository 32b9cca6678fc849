// internal/ui/console.go
//
// Line-oriented prompts over an io.Reader / io.Writer pair.
//
// Responsibilities:
//   - Free-text questions with a default value.
//   - Comma-separated answer lists.
//   - Picking one of several choices by number, letter label, or text, with
//     small typos forgiven (levenshtein distance).
//
// Typing the exit phrase at any prompt, or closing input, returns ErrAborted.

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ExitPhrase aborts the current game when typed at any prompt.
const ExitPhrase = "get me out"

// ErrAborted is returned when the player leaves a prompt early.
var ErrAborted = errors.New("game aborted by player")

// Console reads player input and writes game output.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	*Styles
}

// NewConsole wires a console to in/out.
func NewConsole(in io.Reader, out io.Writer, noColor bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, Styles: NewStyles(out, noColor)}
}

// Out exposes the output stream.
func (c *Console) Out() io.Writer { return c.out }

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// readLine returns one trimmed line. EOF with no data and the exit phrase
// both yield ErrAborted.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, ExitPhrase) {
		return "", ErrAborted
	}
	return line, nil
}

// Ask prompts for free text; blank input returns def.
func (c *Console) Ask(prompt, def string) (string, error) {
	if def != "" {
		c.Printf("%s %s: ", prompt, c.Dim("("+def+")"))
	} else {
		c.Printf("%s: ", prompt)
	}
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// AskList prompts for comma-separated values and returns the non-blank entries.
func (c *Console) AskList(prompt string) ([]string, error) {
	c.Printf("%s: ", prompt)
	line, err := c.readLine()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, part := range strings.Split(line, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// Choose lists choices and returns the index picked. Unrecognized input
// re-prompts until a choice matches or input ends.
func (c *Console) Choose(prompt string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("ui: no choices to pick from")
	}
	for i, ch := range choices {
		c.Printf("  %d) %s\n", i+1, ch)
	}
	for {
		c.Printf("%s ", prompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if i, ok := MatchChoice(line, choices); ok {
			return i, nil
		}
		c.Printf("%s\n", c.Bad(fmt.Sprintf("Pick 1-%d, a listed letter, or type the choice.", len(choices))))
	}
}

// MatchChoice resolves input against choices:
//  1. a 1-based number,
//  2. a letter label, either printed on the choice ("A) go left") or by position,
//  3. the choice text, ignoring case and any label,
//  4. the closest choice text within a small edit distance.
func MatchChoice(input string, choices []string) (int, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= len(choices) {
		return n - 1, true
	}
	if len(in) == 1 && in[0] >= 'a' && in[0] <= 'z' {
		for i, ch := range choices {
			if label, _ := splitLabel(ch); label == in {
				return i, true
			}
		}
		if idx := int(in[0] - 'a'); idx < len(choices) {
			return idx, true
		}
		return 0, false
	}

	best, bestDist := -1, 0
	for i, ch := range choices {
		_, text := splitLabel(ch)
		if in == text || in == strings.ToLower(strings.TrimSpace(ch)) {
			return i, true
		}
		if len(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, text)
		if dist > levenshteinLimit(len(text)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}

// splitLabel separates a leading "A)", "a.", "A:" or "(a)" label from the
// choice text. Both parts come back lowercased.
func splitLabel(choice string) (label, text string) {
	s := strings.ToLower(strings.TrimSpace(choice))
	s = strings.TrimPrefix(s, "(")
	if len(s) >= 2 && s[0] >= 'a' && s[0] <= 'z' && strings.ContainsRune(").:", rune(s[1])) {
		return s[:1], strings.TrimSpace(s[2:])
	}
	return "", strings.ToLower(strings.TrimSpace(choice))
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
