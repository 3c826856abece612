package bitcoin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// ErrEmptyResult is returned when the daemon answers without a result.
var ErrEmptyResult = errors.New("empty result")

// TransportError reports a failure to reach the daemon or read its reply.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rpc %s transport: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports an error envelope or an unusable result from the daemon.
type ProtocolError struct {
	Method string
	Err    error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpc %s: %v", e.Method, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func classify(method string, err error) error {
	var (
		rpcErr       *btcjson.RPCError
		syntaxErr    *json.SyntaxError
		unmarshalErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &rpcErr),
		errors.As(err, &syntaxErr),
		errors.As(err, &unmarshalErr),
		errors.Is(err, ErrEmptyResult):
		return &ProtocolError{Method: method, Err: err}
	default:
		return &TransportError{Method: method, Err: err}
	}
}
