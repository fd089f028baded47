// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const catalogFile = "catalog.db"

// ExportRecord is one row of the export catalog: which query produced
// which result files, and how many articles they hold.
type ExportRecord struct {
	ID           int64     `json:"id"`
	Query        string    `json:"query"`
	TxtFile      string    `json:"txt_file"`
	JSONFile     string    `json:"json_file"`
	ArticleCount int       `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Catalog records export runs in a SQLite database inside the results
// directory, so `litscope files` can show where each file came from.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens or creates the catalog database at dir/catalog.db,
// creating dir and the schema as needed.
func OpenCatalog(dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	dbPath := filepath.Join(dir, catalogFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS exports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		txt_file TEXT NOT NULL,
		json_file TEXT NOT NULL,
		article_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}

// Record inserts one export run and returns it with its assigned ID.
func (c *Catalog) Record(ctx context.Context, rec ExportRecord) (ExportRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO exports (query, txt_file, json_file, article_count, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Query, rec.TxtFile, rec.JSONFile, rec.ArticleCount,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return rec, fmt.Errorf("recording export: %w", err)
	}
	rec.ID, _ = res.LastInsertId()
	return rec, nil
}

// List returns all export records, newest first.
func (c *Catalog) List(ctx context.Context) ([]ExportRecord, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, query, txt_file, json_file, article_count, created_at
		 FROM exports ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []ExportRecord
	for rows.Next() {
		var (
			rec     ExportRecord
			created string
		)
		if err := rows.Scan(&rec.ID, &rec.Query, &rec.TxtFile, &rec.JSONFile,
			&rec.ArticleCount, &created); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		records = append(records, rec)
	}
	return records, rows.Err()
}
