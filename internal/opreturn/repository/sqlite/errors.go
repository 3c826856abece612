package sqlite

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// markUnavailable tags errors raised when the database file cannot be opened or read.
func markUnavailable(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() & 0xff {
	case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_NOTADB:
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	default:
		return err
	}
}
