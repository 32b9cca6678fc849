// internal/game/engine.go
//
// Scramble answer validation and reconciliation.
// Responsibilities:
//   - Count letters of a word and compare counts as multisets.
//   - Filter candidate answers against a dictionary and a source word.
//   - Split generated vs. player answers into common / unique / missed sets.
//   - Turn a Result into a percentage score.
//
// Notes:
//   - All comparisons run on lowercased, trimmed forms.
//   - Invalid answers are dropped silently by ValidateAnswers; Validate also
//     returns the dropped entries with a Reason.
package game

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// ErrNoGeneratedAnswers is returned by Score when the generated answer set is
// empty, so no percentage can be computed.
var ErrNoGeneratedAnswers = errors.New("game: no generated answers to score against")

// Dictionary answers word membership queries.
type Dictionary interface {
	IsValid(word string) bool
}

// CharacterCount counts occurrences per character in a single pass.
func CharacterCount(word string) CharCount {
	counts := make(CharCount, len(word))
	for _, r := range word {
		counts[r]++
	}
	return counts
}

// IsSubsetMultiset reports whether every character in candidate occurs in
// source at least as many times.
func IsSubsetMultiset(candidate, source CharCount) bool {
	for r, n := range candidate {
		if n > 0 && n > source[r] {
			return false
		}
	}
	return true
}

// Validate filters candidates down to dictionary words that can be spelled
// from the letters of source. Accepted words keep first-seen order with
// duplicates collapsed; everything else is returned as a Rejection.
//
// Checks run in order: dictionary membership, length, letter availability.
func Validate(candidates []string, source string, dict Dictionary) ([]string, []Rejection) {
	source = normalize(source)
	sourceLen := utf8.RuneCountInString(source)
	sourceCounts := CharacterCount(source)

	var (
		accepted []string
		rejected []Rejection
		seen     = make(map[string]struct{}, len(candidates))
	)
	for _, raw := range candidates {
		w := normalize(raw)
		switch {
		case w == "":
			rejected = append(rejected, Rejection{Word: raw, Reason: ReasonEmpty})
			continue
		case dict == nil || !dict.IsValid(w):
			rejected = append(rejected, Rejection{Word: w, Reason: ReasonNotInDictionary})
			continue
		case utf8.RuneCountInString(w) > sourceLen:
			rejected = append(rejected, Rejection{Word: w, Reason: ReasonTooLong})
			continue
		case !IsSubsetMultiset(CharacterCount(w), sourceCounts):
			rejected = append(rejected, Rejection{Word: w, Reason: ReasonLettersUnavailable})
			continue
		}
		if _, dup := seen[w]; dup {
			rejected = append(rejected, Rejection{Word: w, Reason: ReasonDuplicate})
			continue
		}
		seen[w] = struct{}{}
		accepted = append(accepted, w)
	}
	return accepted, rejected
}

// ValidateAnswers is Validate without the diagnostics.
func ValidateAnswers(candidates []string, source string, dict Dictionary) []string {
	accepted, _ := Validate(candidates, source, dict)
	return accepted
}

// Reconcile compares the generated answer set with the player's.
// Common and Missed follow generated order; Unique follows user order.
func Reconcile(generated, user []string) Result {
	gen := toSet(generated)
	usr := toSet(user)

	var r Result
	for _, w := range dedupe(generated) {
		if _, ok := usr[w]; ok {
			r.Common = append(r.Common, w)
		} else {
			r.Missed = append(r.Missed, w)
		}
	}
	for _, w := range dedupe(user) {
		if _, ok := gen[w]; !ok {
			r.Unique = append(r.Unique, w)
		}
	}
	return r
}

// Points is the numerator of the score: answers the player found, whether or
// not the generator listed them.
func (r Result) Points() int { return len(r.Common) + len(r.Unique) }

// Score returns round(100 * (common + unique) / generated). With no
// generated answers it returns 0 and ErrNoGeneratedAnswers.
func Score(r Result, generated int) (int, error) {
	if generated <= 0 {
		return 0, ErrNoGeneratedAnswers
	}
	return int(math.Round(100 * float64(r.Points()) / float64(generated))), nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// toSet converts a list of words into a lookup set of normalized forms.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[normalize(w)] = struct{}{}
	}
	return m
}

// dedupe normalizes list and drops repeats, keeping first occurrences.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, raw := range list {
		w := normalize(raw)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
