package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/langswitch/internal/catalog"
)

// Export writes the catalog into a fresh SQLite database at dbPath. An
// existing file at that path is replaced.
func Export(table *catalog.Table, dbPath string) error {
	// Start from a clean file so stale schemas never leak through
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := insertCatalog(db, table); err != nil {
		return fmt.Errorf("failed to insert catalog: %w", err)
	}

	return nil
}

// createTables creates the catalog schema
func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE languages (
			pos integer PRIMARY KEY,
			code text NOT NULL
		)`,
		`CREATE TABLE entries (
			rownum integer NOT NULL,
			lang text NOT NULL,
			value text NOT NULL,
			PRIMARY KEY (rownum, lang)
		)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// insertCatalog writes all languages and entries inside one transaction
func insertCatalog(db *sql.DB, table *catalog.Table) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for pos, lang := range table.Languages() {
		if _, err := tx.Exec("INSERT INTO languages (pos, code) VALUES (?, ?)", pos, lang); err != nil {
			return fmt.Errorf("failed to insert language %q: %w", lang, err)
		}
	}

	for row := 0; row < table.Rows(); row++ {
		for _, lang := range table.Languages() {
			value, err := table.Value(row, lang)
			if err != nil {
				return err
			}
			if _, err := tx.Exec("INSERT INTO entries (rownum, lang, value) VALUES (?, ?, ?)",
				row, lang, value); err != nil {
				return fmt.Errorf("failed to insert entry %d/%s: %w", row, lang, err)
			}
		}
	}

	return tx.Commit()
}

// Import rebuilds a catalog from a SQLite database written by Export. The
// database rows are rendered back into catalog text and handed to
// catalog.Parse, so an imported table obeys exactly the same construction
// rules as one loaded from a file.
func Import(dbPath string) (*catalog.Table, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	languages, err := readLanguages(db)
	if err != nil {
		return nil, err
	}

	rows, err := readEntries(db)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(strings.Join(languages, ","))
	b.WriteByte('\n')
	for row := 0; row < len(rows); row++ {
		for i, lang := range languages {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(rows[row][lang]))
		}
		b.WriteByte('\n')
	}

	table, err := catalog.Parse(b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild catalog: %w", err)
	}
	return table, nil
}

// readLanguages returns the stored language codes in position order
func readLanguages(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT code FROM languages ORDER BY pos")
	if err != nil {
		return nil, fmt.Errorf("failed to read languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, code)
	}
	return languages, rows.Err()
}

// readEntries returns the stored values grouped by row index
func readEntries(db *sql.DB) ([]map[string]string, error) {
	rows, err := db.Query("SELECT rownum, lang, value FROM entries ORDER BY rownum")
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	defer rows.Close()

	var out []map[string]string
	for rows.Next() {
		var rownum int
		var lang, value string
		if err := rows.Scan(&rownum, &lang, &value); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		for len(out) <= rownum {
			out = append(out, make(map[string]string))
		}
		out[rownum][lang] = value
	}
	return out, rows.Err()
}

// quoteField wraps values containing a separator in the quoted field form
// so they survive the Parse on import. Values containing a double quote
// cannot be represented (the format has no escape mechanism) and are
// written bare.
func quoteField(value string) string {
	if strings.Contains(value, ",") && !strings.Contains(value, "\"") {
		return "\"" + value + "\""
	}
	return value
}
