package scanner

import "fmt"

// UnavailableError reports a starting block the node has already pruned.
type UnavailableError struct {
	Requested    uint64
	PrunedHeight uint64
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("block %d is no longer available, node is pruned up to height %d", e.Requested, e.PrunedHeight)
}
