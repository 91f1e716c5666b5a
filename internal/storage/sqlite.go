// Package storage provides the SQLite-backed item store. Items live in a
// plain table; a separate FTS5 virtual table over title and description is
// the full-text index used for ranked search.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lotcat/internal/catalog"
)

// SimilarLimit caps similar-item results.
const SimilarLimit = 5

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

const selectItemFields = `id, title, description, start_price, reserve_price`

// Open opens or creates the catalog database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	// sql.Open is lazy; ping so a bad path fails here, not mid-operation
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			start_price REAL NOT NULL,
			reserve_price REAL NOT NULL
		);

		-- Full-text index over title and description
		CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
			id UNINDEXED,
			title,
			description
		);
	`

	_, err := db.Exec(schema)
	return err
}

// InsertOne validates and stores a single item, returning the assigned id.
// The FTS row is written in the same transaction, so the item is searchable
// immediately.
func (d *DB) InsertOne(item catalog.Item) (string, error) {
	if err := item.Validate(); err != nil {
		return "", err
	}
	item.ID = uuid.NewString()

	tx, err := d.db.Begin()
	if err != nil {
		return "", fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertItem(tx, item); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing insert: %w", err)
	}

	return item.ID, nil
}

// InsertMany validates and stores a batch of items. The first invalid item
// aborts the whole batch before anything is written.
func (d *DB) InsertMany(items []catalog.Item) (int, error) {
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range items {
		items[i].ID = uuid.NewString()
		if err := insertItem(tx, items[i]); err != nil {
			return 0, fmt.Errorf("inserting item %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch: %w", err)
	}

	return len(items), nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertItem(e execer, item catalog.Item) error {
	_, err := e.Exec(`
		INSERT INTO items (id, title, description, start_price, reserve_price)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.Title, item.Description, item.StartPrice, item.ReservePrice)
	if err != nil {
		return err
	}

	_, err = e.Exec(`
		INSERT INTO items_fts (id, title, description)
		VALUES (?, ?, ?)`,
		item.ID, item.Title, item.Description)
	return err
}

// DeleteAll removes every item and clears the text index. Returns the number
// of items removed.
func (d *DB) DeleteAll() (int, error) {
	count, err := d.Count()
	if err != nil {
		return 0, err
	}
	if _, err := d.db.Exec("DELETE FROM items"); err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM items_fts"); err != nil {
		return 0, fmt.Errorf("clearing text index: %w", err)
	}
	return count, nil
}

// DeleteByID removes the item with the given id. Reports whether a deletion
// actually occurred.
func (d *DB) DeleteByID(id string) (bool, error) {
	res, err := d.db.Exec("DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}
	if _, err := d.db.Exec("DELETE FROM items_fts WHERE id = ?", id); err != nil {
		return true, fmt.Errorf("deleting from text index: %w", err)
	}
	return true, nil
}

// FindAll returns every item in store order.
func (d *DB) FindAll() ([]catalog.Item, error) {
	rows, err := d.db.Query(`SELECT ` + selectItemFields + ` FROM items`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// FindByID returns the item with the given id, or catalog.ErrNotFound.
func (d *DB) FindByID(id string) (*catalog.Item, error) {
	row := d.db.QueryRow(`SELECT `+selectItemFields+` FROM items WHERE id = ?`, id)

	var item catalog.Item
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.StartPrice, &item.ReservePrice)
	if err == sql.ErrNoRows {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Count returns the total number of items.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	return count, err
}

// TextSearch matches the query's tokens against the title+description index
// and returns items ranked by descending relevance. A blank query is
// catalog.ErrEmptyQuery; no matches is an empty (non-nil) result.
func (d *DB) TextSearch(query string) ([]catalog.ScoredItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, catalog.ErrEmptyQuery
	}

	match := ftsQuery(query)
	if match == "" {
		// Tokens were all punctuation; nothing can match.
		return []catalog.ScoredItem{}, nil
	}

	return d.searchFTS(match, "", 0)
}

// PriceRange returns items whose start price falls within the given bounds.
// Nil bounds are unbounded; with both nil this is a full scan.
func (d *DB) PriceRange(min, max *float64) ([]catalog.Item, error) {
	query := `SELECT ` + selectItemFields + ` FROM items WHERE 1=1`
	var args []any

	if min != nil {
		query += " AND start_price >= ?"
		args = append(args, *min)
	}
	if max != nil {
		query += " AND start_price <= ?"
		args = append(args, *max)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("filtering by price: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// SimilarTo finds items similar to the referenced one by running a text
// search over the reference's title and description. The reference itself is
// excluded even when it matches its own terms. Returns catalog.ErrNotFound
// if the id is unknown.
func (d *DB) SimilarTo(id string, limit int) ([]catalog.ScoredItem, error) {
	ref, err := d.FindByID(id)
	if err != nil {
		return nil, err
	}

	match := ftsQuery(ref.Title + " " + ref.Description)
	if match == "" {
		return []catalog.ScoredItem{}, nil
	}

	return d.searchFTS(match, id, limit)
}

// RebuildTextIndex drops and repopulates the FTS table from the items table.
// Idempotent; used after seeding.
func (d *DB) RebuildTextIndex() error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM items_fts"); err != nil {
		return fmt.Errorf("clearing text index: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO items_fts (id, title, description)
		SELECT id, title, description FROM items`); err != nil {
		return fmt.Errorf("repopulating text index: %w", err)
	}
	return tx.Commit()
}

// searchFTS runs a prepared MATCH expression, joining back to the items
// table. FTS5 rank (bm25) is more negative for better matches, so ordering
// by rank ascending yields best-first; the exposed score is the negated rank.
func (d *DB) searchFTS(match, excludeID string, limit int) ([]catalog.ScoredItem, error) {
	query := `
		SELECT items.id, items.title, items.description,
			items.start_price, items.reserve_price, -items_fts.rank
		FROM items_fts
		JOIN items ON items.id = items_fts.id
		WHERE items_fts MATCH ?`
	args := []any{match}

	if excludeID != "" {
		query += " AND items.id != ?"
		args = append(args, excludeID)
	}

	query += " ORDER BY items_fts.rank"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	results := []catalog.ScoredItem{}
	for rows.Next() {
		var r catalog.ScoredItem
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.StartPrice, &r.ReservePrice, &r.Score); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// ftsQuery turns free text into an FTS5 MATCH expression. Each token is
// quoted (neutralizing FTS5 operators) and tokens are joined with OR, so a
// record matching any token is a hit, as with a document-store text index.
func ftsQuery(text string) string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(tokens) == 0 {
		return ""
	}

	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = `"` + tok + `"`
	}
	return strings.Join(terms, " OR ")
}

func scanItems(rows *sql.Rows) ([]catalog.Item, error) {
	items := []catalog.Item{}
	for rows.Next() {
		var item catalog.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.StartPrice, &item.ReservePrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
