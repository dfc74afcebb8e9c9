// internal/cache/cache.go
// Package cache keeps rendered documents between builds in a SQLite
// database, keyed by source path. A cache is an accelerator only: every
// failure inside it degrades to a miss, never to a failed build.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"gazette/internal/content"
	"gazette/internal/log"
)

// FileName is the database file inside the cache directory.
const FileName = "content.db"

// schemaEpoch is folded into the options fingerprint so that layout changes
// of the stored document JSON invalidate old caches.
const schemaEpoch = "gazette-cache-1"

// Cache stores rendered documents keyed by their source path.
type Cache struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens or creates the cache under dir. fingerprint identifies the
// render options used this build; when it differs from the stored one, all
// entries are dropped.
func Open(dir, fingerprint string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}

	c := &Cache{db: db, log: log.WithComponent("cache")}
	if err := c.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := c.checkFingerprint(fingerprint); err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return c, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) ensureSchema() error {
	_, err := c.db.Exec(`
CREATE TABLE IF NOT EXISTS documents (
    source TEXT PRIMARY KEY,
    sum TEXT NOT NULL,
    size INTEGER NOT NULL,
    mtime INTEGER NOT NULL,
    doc TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

func (c *Cache) checkFingerprint(fingerprint string) error {
	var stored string
	err := c.db.QueryRow(`SELECT value FROM meta WHERE key = 'fingerprint'`).Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if stored == fingerprint {
		return nil
	}
	if stored != "" {
		c.log.Debug().Msg("render options changed, dropping cached documents")
	}
	if _, err := c.db.Exec(`DELETE FROM documents`); err != nil {
		return err
	}
	_, err = c.db.Exec(`INSERT INTO meta (key, value) VALUES ('fingerprint', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, fingerprint)
	return err
}

// Fingerprint reduces the render options to a short stable identifier.
func Fingerprint(opts content.Options) string {
	loc := "UTC"
	if opts.Location != nil {
		loc = opts.Location.String()
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%s|%d|%t",
		schemaEpoch, opts.DefaultAuthor, opts.DefaultLang, loc, opts.SummaryWords, opts.Unsafe))
	return hex.EncodeToString(sum[:8])
}

// Sum is the content hash stored with each entry.
func Sum(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached document for source if its recorded size and
// mtime still match, without touching the file contents.
func (c *Cache) Lookup(source string, size, mtime int64) (*content.Document, bool) {
	var docJSON string
	err := c.db.QueryRow(
		`SELECT doc FROM documents WHERE source = ? AND size = ? AND mtime = ?`,
		source, size, mtime).Scan(&docJSON)
	if err != nil {
		return nil, false
	}
	return c.decode(source, docJSON)
}

// LookupSum returns the cached document when the content hash still
// matches, refreshing the recorded size and mtime. It covers files that
// were touched but not changed.
func (c *Cache) LookupSum(source, sum string, size, mtime int64) (*content.Document, bool) {
	var docJSON string
	err := c.db.QueryRow(
		`SELECT doc FROM documents WHERE source = ? AND sum = ?`, source, sum).Scan(&docJSON)
	if err != nil {
		return nil, false
	}
	doc, ok := c.decode(source, docJSON)
	if !ok {
		return nil, false
	}
	if _, err := c.db.Exec(
		`UPDATE documents SET size = ?, mtime = ? WHERE source = ?`, size, mtime, source); err != nil {
		c.log.Debug().Err(err).Str("source", source).Msg("cache touch failed")
	}
	return doc, true
}

// Put stores a rendered document. Errors are logged and swallowed.
func (c *Cache) Put(source, sum string, size, mtime int64, doc *content.Document) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		c.log.Debug().Err(err).Str("source", source).Msg("cache encode failed")
		return
	}
	_, err = c.db.Exec(`INSERT INTO documents (source, sum, size, mtime, doc)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			sum = excluded.sum, size = excluded.size,
			mtime = excluded.mtime, doc = excluded.doc`,
		source, sum, size, mtime, string(docJSON))
	if err != nil {
		c.log.Debug().Err(err).Str("source", source).Msg("cache store failed")
	}
}

// Prune drops entries whose source files no longer exist.
func (c *Cache) Prune(live map[string]bool) {
	rows, err := c.db.Query(`SELECT source FROM documents`)
	if err != nil {
		return
	}
	var stale []string
	for rows.Next() {
		var source string
		if rows.Scan(&source) == nil && !live[source] {
			stale = append(stale, source)
		}
	}
	rows.Close()

	for _, source := range stale {
		if _, err := c.db.Exec(`DELETE FROM documents WHERE source = ?`, source); err != nil {
			c.log.Debug().Err(err).Str("source", source).Msg("cache prune failed")
		}
	}
}

func (c *Cache) decode(source, docJSON string) (*content.Document, bool) {
	var doc content.Document
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		c.log.Debug().Err(err).Str("source", source).Msg("cache entry unreadable, dropping")
		c.db.Exec(`DELETE FROM documents WHERE source = ?`, source)
		return nil, false
	}
	return &doc, true
}
