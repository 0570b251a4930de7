package evmlog

import "errors"

var (
	// ErrInvalidLogData reports a raw log that matches none of the candidate
	// event variants.
	ErrInvalidLogData = errors.New("invalid log data")

	// ErrSignatureMismatch reports a log whose first topic differs from the
	// expected event signature hash.
	ErrSignatureMismatch = errors.New("event signature mismatch")

	// ErrUnknownEvent reports an event name missing from the contract ABI.
	ErrUnknownEvent = errors.New("unknown event")
)
