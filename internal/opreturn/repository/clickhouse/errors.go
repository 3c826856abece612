package clickhouse

import (
	"errors"
	"fmt"
	"io"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"
)

// markUnavailable tags errors that mean no usable server connection was obtained.
func markUnavailable(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, clickhouse.ErrAcquireConnTimeout) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	return err
}
