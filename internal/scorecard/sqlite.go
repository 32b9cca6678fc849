// internal/scorecard/sqlite.go
//
// SQLite-backed Store, selected when SCORES_DSN is set.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Appending and loading scorecards; each row holds the same JSON object
//     the file store would write, so both backends share one record shape.

package scorecard

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/varunvasudeva1/wordplay/internal/game"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLiteStore keeps scorecards in a single table ordered by rowid.
type SQLiteStore struct {
	db  *sql.DB
	dsn string
}

/**
 * OpenSQLite opens (and creates if missing) a SQLite database file and
 * applies pending migrations.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/scores.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, dsn: dsn}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

/**
 * migrate applies the embedded sql/*.sql files in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs inside its own transaction.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Append inserts sc as a new row.
func (s *SQLiteStore) Append(ctx context.Context, sc Scorecard) error {
	if sc == nil {
		return &WriteError{Path: s.dsn, Err: errors.New("nil scorecard")}
	}
	sc = deref(sc)
	body, err := json.Marshal(sc)
	if err != nil {
		return &WriteError{Path: s.dsn, Err: err}
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO scorecards (game, body) VALUES (?, ?)`,
		string(sc.Game()), string(body),
	); err != nil {
		return &WriteError{Path: s.dsn, Err: err}
	}
	return nil
}

// LoadAll returns t's scorecards in insertion order.
func (s *SQLiteStore) LoadAll(ctx context.Context, t game.Type) ([]Scorecard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM scorecards WHERE game=? ORDER BY id ASC`, string(t))
	if err != nil {
		return nil, &ReadError{Path: s.dsn, Err: err}
	}
	defer rows.Close()

	out := []Scorecard{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, &ReadError{Path: s.dsn, Err: err}
		}
		sc, err := decode(t, []byte(body))
		if err != nil {
			return nil, &ReadError{Path: s.dsn, Err: err}
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, &ReadError{Path: s.dsn, Err: err}
	}
	return out, nil
}
