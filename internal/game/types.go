// internal/game/types.go
//
// Core type definitions shared by every game.
// Defines:
//   - Type: the game identifiers used on the command line and as scoresheet keys.
//   - Reason / Rejection: why a scramble answer was filtered out.
//   - CharCount: per-letter occurrence counts of a word.
//   - Result: the overlap between generated and player answer sets.

package game

import (
	"fmt"
	"strings"
)

// Type identifies a game.
type Type string

const (
	Trivia   Type = "trivia"
	Hunt     Type = "hunt"
	Scramble Type = "scramble"
)

// Types lists every playable game in display order.
var Types = []Type{Trivia, Hunt, Scramble}

// ParseType maps user input onto a known game.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid game type %q. Run `wordplay list` to see available games", s)
	}
	return t, nil
}

// Valid reports whether t is one of Types.
func (t Type) Valid() bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

func (t Type) String() string { return string(t) }

// Reason explains why a candidate answer was rejected.
// Possible values:
//   - "empty":               blank after trimming.
//   - "duplicate":           already accepted earlier in the same list.
//   - "not_in_dictionary":   not a dictionary word.
//   - "too_long":            longer than the source word.
//   - "letters_unavailable": needs letters (or repeats) the source lacks.
type Reason string

const (
	ReasonEmpty              Reason = "empty"
	ReasonDuplicate          Reason = "duplicate"
	ReasonNotInDictionary    Reason = "not_in_dictionary"
	ReasonTooLong            Reason = "too_long"
	ReasonLettersUnavailable Reason = "letters_unavailable"
)

// Rejection is one filtered-out candidate.
type Rejection struct {
	Word   string
	Reason Reason
}

// CharCount maps a letter to how many times it occurs in a word.
type CharCount map[rune]int

// Result holds the three answer sets produced by Reconcile.
type Result struct {
	Common []string // generated ∩ user
	Unique []string // user − generated
	Missed []string // generated − user
}
