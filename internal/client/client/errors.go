package client

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrConnectionClosed = errors.New("connection closed by server")
	// ErrRejected wraps a failed-status response; the server's message is
	// attached by the caller.
	ErrRejected = errors.New("request rejected")
)
