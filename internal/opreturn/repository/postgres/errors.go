package postgres

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
	"github.com/lib/pq"
)

// markUnavailable tags errors whose SQLSTATE means the server connection is unusable.
func markUnavailable(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch {
	case pqErr.Code.Class() == "08",
		pqErr.Code == "57P01",
		pqErr.Code == "57P02",
		pqErr.Code == "57P03":
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	default:
		return err
	}
}
