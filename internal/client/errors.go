package client

import "fmt"

// NetworkError wraps a transport-level failure: connection refused,
// timeout, cancelled context. The request may or may not have reached
// the server.
type NetworkError struct {
    Op  string // which call failed, e.g. "comprar"
    Err error
}

func (e *NetworkError) Error() string {
    return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a response the server produced on purpose: a non-2xx
// status or a success:false body. Message carries the server's error
// string when present, otherwise a generic fallback.
type ServerError struct {
    Op      string
    Status  int
    Message string
}

func (e *ServerError) Error() string {
    return fmt.Sprintf("server rejected %s (status %d): %s", e.Op, e.Status, e.Message)
}
