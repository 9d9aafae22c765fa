// internal/lexicon/lexicon.go
//
// SQLite-backed dictionary for the words game.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing word lists and reading them back per language.
//
// The lexicon is read once at startup into an in-memory words.Dictionary;
// nothing queries SQLite while a round is being played.

package lexicon

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsgame/internal/words"
)

//go:embed sql/*.sql
var migrations embed.FS

// Lexicon is a word store keyed by language.
type Lexicon struct {
	db *sql.DB
}

// Open opens (and creates if missing) the database at dsn and migrates it.
func Open(dsn string) (*Lexicon, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Lexicon{db: db}, nil
}

// Close releases the database handle.
func (l *Lexicon) Close() error { return l.db.Close() }

/**
 * openDB opens a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/lexicon.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func openDB(dsn string) (*sql.DB, error) {
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
	return db, nil
}

/**
 * migrate applies the embedded sql/*.sql files in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs in its own transaction.
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
		if err != sql.ErrNoRows {
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
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import inserts list for language, ignoring words already present,
// and records the import. It returns the number of new words.
func (l *Lexicon) Import(ctx context.Context, language, source string, list []string) (int, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (language, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, language, w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (language, source, word_count) VALUES (?, ?, ?)`,
		language, source, added,
	); err != nil {
		return 0, fmt.Errorf("record import: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Count returns the number of words stored for language.
func (l *Lexicon) Count(ctx context.Context, language string) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE language=?`, language,
	).Scan(&n)
	return n, err
}

// Contains reports whether word is stored for language.
func (l *Lexicon) Contains(ctx context.Context, language, word string) (bool, error) {
	var one int
	err := l.db.QueryRowContext(ctx,
		`SELECT 1 FROM words WHERE language=? AND word=?`, language, strings.ToLower(word),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Words returns every word stored for language in lexical order.
func (l *Lexicon) Words(ctx context.Context, language string) ([]string, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT word FROM words WHERE language=? ORDER BY word`, language,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Dictionary loads the words stored for language into memory.
func (l *Lexicon) Dictionary(ctx context.Context, language string) (*words.Dictionary, error) {
	list, err := l.Words(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("load %s words: %w", language, err)
	}
	if len(list) == 0 {
		return nil, words.ErrEmptyList
	}
	return words.NewDictionary(language, list), nil
}

// Seed imports list for language when the lexicon holds no words for it yet.
func (l *Lexicon) Seed(ctx context.Context, language, source string, list []string) error {
	n, err := l.Count(ctx, language)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		log.Info().Int("words", n).Str("language", language).Msg("lexicon already seeded")
		return nil
	}
	added, err := l.Import(ctx, language, source, list)
	if err != nil {
		return err
	}
	log.Info().Int("words", added).Str("language", language).Str("source", source).Msg("lexicon seeded")
	return nil
}
