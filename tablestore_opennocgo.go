//go:build !cgo

package diplotype

// If cgo is not enabled, we will use the modernc.org/sqlite non-cgo sqlite
// driver. It is slower than the sqlite3 cgo driver.

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

func openTableStore(path string) (*TableStore, error) {
	store := &TableStore{
		Metadata: &TableMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	store.DB = db

	_, err = db.DB.Exec(`
	PRAGMA journal_mode = OFF;
	PRAGMA synchronous = OFF;
	PRAGMA auto_vacuum = NONE;
	`)
	if err != nil {
		return nil, fmt.Errorf("unable to set pragmas: %w", err)
	}

	// A freshly created store has no metadata yet; ignore any error
	_ = store.DB.Get(store.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return store, nil
}
