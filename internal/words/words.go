// internal/words/words.go
//
// Dictionary loading and membership for the scramble game.
//
// Responsibilities:
//   - Load a newline-delimited word list from a reader, a file, or the
//     embedded fallback shipped in assets/words.txt.
//   - Normalize every entry (trim, lowercase) and keep a set for lookups.
//   - Answer exact, case-insensitive membership queries (no stemming, no
//     fuzzy matching).
//
// Environment:
//   WORDS_FILE=/path/to/words.txt  (read by the config package, passed to Open)

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/varunvasudeva1/wordplay/assets"
)

// LoadError reports a word list that could not be read.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dictionary is an immutable set of lowercase words.
type Dictionary struct {
	list []string            // first-seen order, duplicates removed
	set  map[string]struct{} // lookup set over list
}

// New builds a dictionary from literal words. Entries are normalized the same
// way Load normalizes file lines.
func New(ws ...string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		d.add(w)
	}
	return d
}

// Load reads one word per line from r.
func Load(r io.Reader) (*Dictionary, error) {
	return load(r, "reader")
}

// LoadFile reads a word list from path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return load(f, path)
}

// Default returns the embedded fallback dictionary.
func Default() (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, &LoadError{Source: "embedded", Err: err}
	}
	return New(list...), nil
}

// Open loads path, or the embedded dictionary when path is empty.
func Open(path string) (*Dictionary, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

func load(r io.Reader, source string) (*Dictionary, error) {
	if r == nil {
		return nil, &LoadError{Source: source, Err: errors.New("nil reader")}
	}
	d := &Dictionary{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return d, nil
}

func (d *Dictionary) add(raw string) {
	w := normalize(raw)
	if w == "" {
		return
	}
	if _, ok := d.set[w]; ok {
		return
	}
	d.set[w] = struct{}{}
	d.list = append(d.list, w)
}

// IsValid reports whether w (lowercased) is in the dictionary.
func (d *Dictionary) IsValid(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[normalize(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// Candidates returns the alphabetic words whose length lies in [minLen, maxLen],
// in load order.
func (d *Dictionary) Candidates(minLen, maxLen int) []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, w := range d.list {
		n := len(w)
		if n >= minLen && n <= maxLen && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
