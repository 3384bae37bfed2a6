// Package repository persists seat occupancy and purchase orders. The
// sentinel error defined here lets handlers distinguish a genuine seat
// conflict from infrastructure failure without inspecting driver
// errors. ErrSeatsTaken in particular is the server-side rejection that
// resolves the race between a client's stale grid and a concurrent
// purchase: the transaction, not the UI, decides who gets a contested
// seat.
package repository

import "errors"

// ErrSeatsTaken is returned when one or more requested seats are
// already occupied at claim time. Handlers translate this into an HTTP
// 409; any other claim error is an internal failure, not a conflict.
var ErrSeatsTaken = errors.New("seats already taken")
