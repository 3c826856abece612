package scanner

import "time"

const (
	// DefaultMarker is the script opcode that identifies data carrier outputs.
	DefaultMarker = "OP_RETURN"

	// DefaultBlockRetryDelay is the pause before fetching a failed block again.
	DefaultBlockRetryDelay = time.Second
)
