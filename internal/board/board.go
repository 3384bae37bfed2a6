// Package board implements the seat board for one room: a fixed grid
// of seats, the client-local selection set, and the merge of
// server-reported occupancy into both. All state lives in a single
// Board value guarded by one mutex, so handlers and the occupancy
// poller never see a half-applied update.
package board

import (
    "context"
    "log"
    "sync"

    "github.com/cinestructura/taquilla/internal/client"
    "github.com/cinestructura/taquilla/internal/model"
)

// Board tracks the seats of one room for one session.
type Board struct {
    mu       sync.Mutex
    roomID   string
    pricing  model.Pricing
    api      client.API
    seats    []*model.Seat          // fixed grid, seats[i] is seat number i+1
    byID     map[string]*model.Seat // lookup by "{roomID}-{n}"
    selected []string               // selection set in toggle order, unique
}

// New builds the grid for a room: SeatsPerRoom seats numbered 1..N, all
// Available until Initialize merges server occupancy.
func New(roomID string, pricing model.Pricing, api client.API) *Board {
    b := &Board{
        roomID:  roomID,
        pricing: pricing,
        api:     api,
        seats:   make([]*model.Seat, model.SeatsPerRoom),
        byID:    make(map[string]*model.Seat, model.SeatsPerRoom),
    }
    for i := 0; i < model.SeatsPerRoom; i++ {
        s := &model.Seat{
            ID:     model.SeatID(roomID, i+1),
            Number: i + 1,
            State:  model.SeatAvailable,
        }
        b.seats[i] = s
        b.byID[s.ID] = s
    }
    return b
}

// RoomID returns the room this board renders.
func (b *Board) RoomID() string { return b.roomID }

// Initialize fetches the occupied-seat list and marks those seats
// Occupied. A fetch failure is logged and treated as an empty list;
// the periodic refresh will pick the real occupancy up on its next
// tick.
func (b *Board) Initialize(ctx context.Context) {
    occupied, err := b.api.OccupiedSeats(ctx, b.roomID)
    if err != nil {
        log.Printf("board: loading occupied seats for %s failed: %v", b.roomID, err)
        return
    }
    b.mu.Lock()
    defer b.mu.Unlock()
    b.markOccupied(occupied)
}

// Toggle flips a seat between Available and Selected, maintaining the
// selection set. Toggling an Occupied seat is a no-op: the server has
// confirmed it sold and no stale reference may reselect it. It returns
// the seat's state after the call and whether anything changed.
func (b *Board) Toggle(seatID string) (model.SeatState, bool) {
    b.mu.Lock()
    defer b.mu.Unlock()
    s, ok := b.byID[seatID]
    if !ok {
        return model.SeatAvailable, false
    }
    switch s.State {
    case model.SeatOccupied:
        return model.SeatOccupied, false
    case model.SeatAvailable:
        s.State = model.SeatSelected
        b.selected = append(b.selected, s.ID)
        return model.SeatSelected, true
    default: // SeatSelected
        s.State = model.SeatAvailable
        b.dropSelected(s.ID)
        return model.SeatAvailable, true
    }
}

// Refresh re-fetches occupancy and force-marks newly occupied seats,
// including evicting them from the selection set when another buyer got
// there first. Re-marking an already-Occupied seat is a no-op, so the
// merge is idempotent. The error is returned for the poller to log;
// board state is untouched on failure.
func (b *Board) Refresh(ctx context.Context) error {
    occupied, err := b.api.OccupiedSeats(ctx, b.roomID)
    if err != nil {
        return err
    }
    b.mu.Lock()
    defer b.mu.Unlock()
    b.markOccupied(occupied)
    return nil
}

// ConfirmSelection promotes every Selected seat to Occupied and clears
// the selection set. Called after the server accepts the purchase, so
// the seats are authoritatively sold. Returns the promoted seats.
func (b *Board) ConfirmSelection() []string {
    b.mu.Lock()
    defer b.mu.Unlock()
    promoted := b.selected
    for _, id := range promoted {
        if s, ok := b.byID[id]; ok {
            s.State = model.SeatOccupied
        }
    }
    b.selected = nil
    return promoted
}

// Selected returns a copy of the selection set in toggle order.
func (b *Board) Selected() []string {
    b.mu.Lock()
    defer b.mu.Unlock()
    out := make([]string, len(b.selected))
    copy(out, b.selected)
    return out
}

// Count returns the number of selected seats.
func (b *Board) Count() int {
    b.mu.Lock()
    defer b.mu.Unlock()
    return len(b.selected)
}

// Subtotal returns the running total for the selection in minor units.
func (b *Board) Subtotal() int64 {
    b.mu.Lock()
    defer b.mu.Unlock()
    return b.pricing.Total(len(b.selected))
}

// Seats returns a snapshot of the grid for rendering.
func (b *Board) Seats() []model.Seat {
    b.mu.Lock()
    defer b.mu.Unlock()
    out := make([]model.Seat, len(b.seats))
    for i, s := range b.seats {
        out[i] = *s
    }
    return out
}

// markOccupied applies a server occupancy list. Caller holds b.mu.
func (b *Board) markOccupied(ids []string) {
    for _, id := range ids {
        s, ok := b.byID[id]
        if !ok || s.State == model.SeatOccupied {
            continue
        }
        if s.State == model.SeatSelected {
            // Lost the seat to another buyer between selection and
            // purchase; the selection must not keep a sold seat.
            b.dropSelected(id)
        }
        s.State = model.SeatOccupied
    }
}

// dropSelected removes one id from the selection set. Caller holds b.mu.
func (b *Board) dropSelected(id string) {
    for i, sel := range b.selected {
        if sel == id {
            b.selected = append(b.selected[:i], b.selected[i+1:]...)
            return
        }
    }
}
