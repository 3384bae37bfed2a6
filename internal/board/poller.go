package board

import (
    "context"
    "log"
    "time"
)

// Poller refreshes a board's occupancy on a fixed interval. Failures
// are logged and swallowed; the next tick tries again with no backoff.
// The Skip hook lets the checkout pause refreshes while a purchase is
// in flight, so a poll result cannot interleave with the submit's own
// seat promotion.
type Poller struct {
    Board    *Board
    Interval time.Duration
    Skip     func() bool // optional; true suppresses the current tick
}

// Run polls until ctx is cancelled. It performs one refresh per tick,
// never concurrently with itself.
func (p *Poller) Run(ctx context.Context) {
    interval := p.Interval
    if interval <= 0 {
        interval = 5 * time.Second
    }
    t := time.NewTicker(interval)
    defer t.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-t.C:
            if p.Skip != nil && p.Skip() {
                continue
            }
            if err := p.Board.Refresh(ctx); err != nil {
                log.Printf("board: occupancy refresh for %s failed: %v", p.Board.RoomID(), err)
            }
        }
    }
}
