package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

// words.txt is a small fallback dictionary shipped in the binary. A full list
// can be supplied at runtime through WORDS_FILE.
//
//go:embed words.txt
var FS embed.FS

// Words opens the embedded dictionary for reading.
func Words() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}

// WordList returns the embedded dictionary as lowercase, trimmed lines.
// Blank lines and lines starting with '#' are skipped.
func WordList() ([]string, error) {
	f, err := Words()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
