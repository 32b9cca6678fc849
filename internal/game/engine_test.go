package game

import (
	"errors"
	"strings"
	"testing"
)

type dict map[string]bool

func (d dict) IsValid(w string) bool { return d[strings.ToLower(w)] }

func TestCharacterCountSumsToLength(t *testing.T) {
	for _, w := range []string{"", "a", "tin", "letter", "mississippi"} {
		sum := 0
		for _, n := range CharacterCount(w) {
			sum += n
		}
		if sum != len(w) {
			t.Fatalf("CharacterCount(%q) sums to %d, want %d", w, sum, len(w))
		}
	}
}

func TestIsSubsetMultisetIsReflexive(t *testing.T) {
	for _, w := range []string{"", "tin", "letter", "aardvark"} {
		c := CharacterCount(w)
		if !IsSubsetMultiset(c, c) {
			t.Fatalf("IsSubsetMultiset(%q, %q) = false", w, w)
		}
	}
}

func TestIsSubsetMultisetRespectsRepeats(t *testing.T) {
	tests := []struct {
		candidate, source string
		want              bool
	}{
		{"tin", "tin", true},
		{"tint", "tin", false},
		{"net", "tenet", true},
		{"tenet", "net", false},
		{"ox", "fox", true},
		{"zoo", "fox", false},
	}
	for _, tc := range tests {
		got := IsSubsetMultiset(CharacterCount(tc.candidate), CharacterCount(tc.source))
		if got != tc.want {
			t.Fatalf("IsSubsetMultiset(%q, %q)=%v want=%v", tc.candidate, tc.source, got, tc.want)
		}
	}
}

func TestValidateAnswersExcludesRepeatedLetter(t *testing.T) {
	d := dict{"tint": true, "tin": true, "nit": true}
	got := ValidateAnswers([]string{"tint", "nit", "tin"}, "tin", d)
	if strings.Join(got, ",") != "nit,tin" {
		t.Fatalf("ValidateAnswers=%v want [nit tin]", got)
	}
}

func TestValidateAnswersDictionaryMembership(t *testing.T) {
	without := ValidateAnswers([]string{"ox"}, "fox", dict{"fox": true})
	if len(without) != 0 {
		t.Fatalf("expected ox to be rejected without dictionary entry, got %v", without)
	}
	with := ValidateAnswers([]string{"ox"}, "fox", dict{"ox": true})
	if len(with) != 1 || with[0] != "ox" {
		t.Fatalf("expected [ox], got %v", with)
	}
}

func TestValidateCollapsesDuplicatesAndLowercases(t *testing.T) {
	d := dict{"cat": true, "act": true}
	got, rejected := Validate([]string{"Cat", "cat ", "ACT", ""}, "Cats", d)
	if strings.Join(got, ",") != "cat,act" {
		t.Fatalf("accepted=%v want [cat act]", got)
	}
	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejections, got %+v", rejected)
	}
	if rejected[0].Reason != ReasonDuplicate || rejected[1].Reason != ReasonEmpty {
		t.Fatalf("unexpected reasons: %+v", rejected)
	}
}

func TestValidateReportsReasons(t *testing.T) {
	_, rejected := Validate([]string{"xyz", "tinny", "tint"}, "tint", dict{"tint": true, "tinny": true})
	want := []Reason{ReasonNotInDictionary, ReasonTooLong}
	if len(rejected) != len(want) {
		t.Fatalf("rejections=%+v want reasons %v", rejected, want)
	}
	for i, r := range want {
		if rejected[i].Reason != r {
			t.Fatalf("rejection %d reason=%q want %q", i, rejected[i].Reason, r)
		}
	}

	_, rejected = Validate([]string{"tint"}, "tins", dict{"tint": true})
	if len(rejected) != 1 || rejected[0].Reason != ReasonLettersUnavailable {
		t.Fatalf("expected letters_unavailable, got %+v", rejected)
	}
}

func TestValidateEmptyCandidates(t *testing.T) {
	got, rejected := Validate(nil, "word", dict{})
	if len(got) != 0 || len(rejected) != 0 {
		t.Fatalf("expected empty results, got %v %v", got, rejected)
	}
}

func TestReconcile(t *testing.T) {
	r := Reconcile([]string{"cat", "car"}, []string{"cat", "dog"})
	if strings.Join(r.Common, ",") != "cat" {
		t.Fatalf("Common=%v", r.Common)
	}
	if strings.Join(r.Unique, ",") != "dog" {
		t.Fatalf("Unique=%v", r.Unique)
	}
	if strings.Join(r.Missed, ",") != "car" {
		t.Fatalf("Missed=%v", r.Missed)
	}
}

func TestReconcileAfterValidationDropsInvalidUserAnswers(t *testing.T) {
	d := dict{"cat": true, "car": true, "dog": true, "arc": true}
	gen := ValidateAnswers([]string{"cat", "car"}, "cart", d)
	usr := ValidateAnswers([]string{"cat", "dog", "arc"}, "cart", d)
	r := Reconcile(gen, usr)
	if strings.Join(r.Unique, ",") != "arc" {
		t.Fatalf("Unique=%v want [arc]", r.Unique)
	}
	if strings.Join(r.Missed, ",") != "car" {
		t.Fatalf("Missed=%v want [car]", r.Missed)
	}
}

func TestScore(t *testing.T) {
	r := Result{Common: []string{"a", "b"}, Unique: []string{"c"}}
	got, err := Score(r, 4)
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if got != 75 {
		t.Fatalf("Score=%d want 75", got)
	}

	got, _ = Score(Result{Common: []string{"a"}}, 3)
	if got != 33 {
		t.Fatalf("Score=%d want 33", got)
	}
	got, _ = Score(Result{Common: []string{"a", "b"}}, 3)
	if got != 67 {
		t.Fatalf("Score=%d want 67", got)
	}
}

func TestScoreWithoutGeneratedAnswers(t *testing.T) {
	got, err := Score(Result{Unique: []string{"x"}}, 0)
	if !errors.Is(err, ErrNoGeneratedAnswers) {
		t.Fatalf("expected ErrNoGeneratedAnswers, got %v", err)
	}
	if got != 0 {
		t.Fatalf("Score=%d want 0", got)
	}
}

func TestParseType(t *testing.T) {
	for _, in := range []string{"trivia", " HUNT ", "Scramble"} {
		if _, err := ParseType(in); err != nil {
			t.Fatalf("ParseType(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseType("chess"); err == nil {
		t.Fatalf("expected error for unknown game")
	}
}
