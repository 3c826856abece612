// Package model defines domain models for OP_RETURN indexing.
package model

import "fmt"

// NoOutput is the output index stored for a transaction without outputs.
const NoOutput int64 = -1

// ScanPosition is the durable location of the last examined output.
type ScanPosition struct {
	BlockNumber      uint64
	TransactionIndex uint32
	OutputIndex      int64
}

// Compare orders positions by block, then transaction, then output.
func (p ScanPosition) Compare(other ScanPosition) int {
	switch {
	case p.BlockNumber < other.BlockNumber:
		return -1
	case p.BlockNumber > other.BlockNumber:
		return 1
	case p.TransactionIndex < other.TransactionIndex:
		return -1
	case p.TransactionIndex > other.TransactionIndex:
		return 1
	case p.OutputIndex < other.OutputIndex:
		return -1
	case p.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}

func (p ScanPosition) String() string {
	return fmt.Sprintf("block %d tx %d vout %d", p.BlockNumber, p.TransactionIndex, p.OutputIndex)
}

// PositionRow is a persisted scan position together with its surrogate identity.
type PositionRow struct {
	ID       int64
	Position ScanPosition
}
