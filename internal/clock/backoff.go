package clock

import "time"

// Backoff yields retry delays. With Max at or below Initial every delay equals Initial;
// otherwise delays double per attempt up to Max. The number of attempts is never bounded.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	attempt int
}

// NewBackoff returns a Backoff starting at initial and capped at maxDelay.
func NewBackoff(initial, maxDelay time.Duration) *Backoff {
	return &Backoff{Initial: initial, Max: maxDelay}
}

// Next returns the delay for the current attempt and advances.
func (b *Backoff) Next() time.Duration {
	d := b.Initial
	if b.Max > b.Initial {
		for i := 0; i < b.attempt && d < b.Max; i++ {
			d *= 2
		}
		if d > b.Max {
			d = b.Max
		}
	}
	b.attempt++
	return d
}

// Reset restarts the sequence after a success.
func (b *Backoff) Reset() {
	b.attempt = 0
}
