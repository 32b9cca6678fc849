// internal/scorecard/store.go
//
// Store interface and the default JSON-file implementation.
//
// File layout (one file, the "scoresheet"):
//
//	{"trivia": [ {...}, ... ], "hunt": [ ... ], "scramble": [ ... ]}
//
// Characteristics:
//   - Append order is creation order; nothing reorders on read.
//   - A missing file reads as an empty scoresheet.
//   - Writes go to a temp file in the same directory, then rename over the
//     target, so a crash mid-write leaves the previous sheet intact.
//   - No locking: two processes appending at once can lose an update.
//   - Keys this build does not know are carried through rewrites untouched.

package scorecard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

// Store persists scorecards grouped by game type.
// Implementations: FileStore (default), SQLiteStore, MemoryStore.
type Store interface {
	// Append adds sc to the end of its game's sequence.
	Append(ctx context.Context, sc Scorecard) error

	// LoadAll returns the game's scorecards in creation order, or an empty
	// slice when there are none.
	LoadAll(ctx context.Context, t game.Type) ([]Scorecard, error)
}

// sheet is the on-disk representation, decoded lazily per game type.
type sheet map[string][]json.RawMessage

// FileStore keeps every scorecard in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first Append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the scoresheet location.
func (s *FileStore) Path() string { return s.path }

// Append reads the sheet, adds sc, and writes the whole sheet back.
func (s *FileStore) Append(ctx context.Context, sc Scorecard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sc == nil {
		return &WriteError{Path: s.path, Err: errors.New("nil scorecard")}
	}
	sc = deref(sc)
	t := sc.Game()
	if !t.Valid() {
		return &WriteError{Path: s.path, Err: fmt.Errorf("unknown game type %q", t)}
	}

	sh, err := s.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(sc)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	sh[string(t)] = append(sh[string(t)], raw)
	return s.write(sh)
}

// LoadAll returns the stored scorecards for t.
func (s *FileStore) LoadAll(ctx context.Context, t game.Type) ([]Scorecard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sh, err := s.read()
	if err != nil {
		return nil, err
	}
	raws := sh[string(t)]
	out := make([]Scorecard, 0, len(raws))
	for i, raw := range raws {
		sc, err := decode(t, raw)
		if err != nil {
			return nil, &ReadError{Path: s.path, Err: fmt.Errorf("%s[%d]: %w", t, i, err)}
		}
		out = append(out, sc)
	}
	return out, nil
}

// read loads the sheet; a missing or empty file yields an empty sheet.
func (s *FileStore) read() (sheet, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return sheet{}, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	sh := sheet{}
	if len(data) == 0 {
		return sh, nil
	}
	if err := json.Unmarshal(data, &sh); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	if sh == nil {
		sh = sheet{}
	}
	return sh, nil
}

// write replaces the scoresheet atomically via temp file + rename.
func (s *FileStore) write(sh sheet) error {
	data, err := json.MarshalIndent(sh, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("mkdir %s: %w", dir, err)}
		}
	}
	tmp, err := os.CreateTemp(dir, ".scoresheet-*.tmp")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	cleanup = false
	return nil
}
