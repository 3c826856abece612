package model

import "errors"

// ErrStoreUnavailable marks backend errors that mean the store could not be reached.
var ErrStoreUnavailable = errors.New("checkpoint store unavailable")
