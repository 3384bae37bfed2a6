package model

import (
    "fmt"
    "strconv"
    "strings"
)

// SeatsPerRoom is the fixed number of seats rendered for every room.
// Rooms in this cinema all share the same 32-seat layout, numbered 1..32.
const SeatsPerRoom = 32

// SeatState describes the lifecycle of a single seat as seen by one
// client session.
//
// Transitions:
//  Available → Selected   (user toggles a free seat)
//  Selected  → Available  (user toggles it again)
//  Selected  → Occupied   (own purchase confirmed by the server)
//  Available → Occupied   (another client bought it; reported by the
//                          occupancy poll)
//
// Occupied is authoritative and terminal for a session; Selected exists
// only locally and is never reported by the server.
type SeatState uint8

const (
    SeatAvailable SeatState = iota // free and selectable
    SeatSelected                   // chosen locally, unconfirmed
    SeatOccupied                   // confirmed taken by the server
)

// String returns a lowercase label for logging and rendering.
func (s SeatState) String() string {
    switch s {
    case SeatAvailable:
        return "available"
    case SeatSelected:
        return "selected"
    case SeatOccupied:
        return "occupied"
    }
    return "unknown"
}

// Seat is one bookable unit in a room's grid.
//
// Fields:
//  ID     – "{roomID}-{number}", unique within a room.
//  Number – position within the room, 1..SeatsPerRoom.
//  State  – current SeatState.
type Seat struct {
    ID     string
    Number int
    State  SeatState
}

// SeatID builds the wire identifier for a seat: "{roomID}-{number}".
func SeatID(roomID string, number int) string {
    return fmt.Sprintf("%s-%d", roomID, number)
}

// SplitSeatID breaks a seat identifier into its room and number parts.
// Room identifiers may themselves contain dashes, so the split happens
// at the last dash. Returns ok=false when the identifier is malformed
// or the number falls outside 1..SeatsPerRoom.
func SplitSeatID(id string) (roomID string, number int, ok bool) {
    i := strings.LastIndexByte(id, '-')
    if i <= 0 || i == len(id)-1 {
        return "", 0, false
    }
    n, err := strconv.Atoi(id[i+1:])
    if err != nil || n < 1 || n > SeatsPerRoom {
        return "", 0, false
    }
    return id[:i], n, true
}
