package scanner

import "github.com/goodnatureofminers/opreturn-indexer/internal/opreturn/model"

// cursor is the walk state of a single pass. pending marks a persisted
// position inside the current block that has not been resumed from yet.
type cursor struct {
	block       uint64
	transaction uint32
	output      int64
	pending     bool
}

func newCursor(start uint64, persisted model.ScanPosition, found bool) cursor {
	c := cursor{block: start}
	if !found {
		return c
	}
	if persisted.BlockNumber > start {
		c.block = persisted.BlockNumber
	}
	if persisted.BlockNumber == c.block {
		c.transaction = persisted.TransactionIndex
		c.output = persisted.OutputIndex
		c.pending = true
	}
	return c
}

// firstTransaction returns the index the walk of height starts from.
func (c *cursor) firstTransaction(height uint64) uint32 {
	if c.pending && c.block == height {
		return c.transaction
	}
	return 0
}

// firstOutput returns the output the walk of transaction starts from and
// consumes the resume offset when it applies.
func (c *cursor) firstOutput(height uint64, transaction uint32) (start int64, resumed bool) {
	if !c.pending || c.block != height || c.transaction != transaction {
		return 0, false
	}
	c.pending = false
	return c.output + 1, true
}

// advance moves to the next block and forgets any unused resume state.
func (c *cursor) advance() {
	c.block++
	c.pending = false
}
