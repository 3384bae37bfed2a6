package repository // repository for seat occupancy persistence

import (
    "context"      // context for deadlines on queries
    "database/sql" // sql provides DB interfaces
    "errors"       // errors.As to inspect driver errors

    "github.com/go-sql-driver/mysql" // driver error type for duplicate-key detection
)

// SeatRepo encapsulates database operations on the occupied_seats
// table. A row exists for every seat that has been sold; absence of a
// row means the seat is free. Rows reference the order that claimed
// them through order_ref.
//
// Schema:
//  occupied_seats(
//      seat_id    VARCHAR(64) PRIMARY KEY,   -- "{roomID}-{n}"
//      room_id    VARCHAR(48) NOT NULL,
//      order_ref  CHAR(36)    NOT NULL,
//      created_at DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
//      INDEX (room_id)
//  )
type SeatRepo struct {
    db *sql.DB
}

// NewSeatRepo constructs a SeatRepo given a DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
    return &SeatRepo{db: db}
}

// DB exposes the underlying handle so handlers can open transactions
// spanning seats and orders.
func (r *SeatRepo) DB() *sql.DB {
    return r.db
}

// ListOccupied returns the identifiers of every occupied seat in a
// room, in seat-id order. An empty room yields an empty (non-nil)
// slice so the handler always serializes a JSON array.
func (r *SeatRepo) ListOccupied(ctx context.Context, roomID string) ([]string, error) {
    rows, err := r.db.QueryContext(ctx,
        `SELECT seat_id FROM occupied_seats WHERE room_id = ? ORDER BY seat_id`, roomID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]string, 0, 8)
    for rows.Next() {
        var id string
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        out = append(out, id)
    }
    return out, rows.Err()
}

// FilterTakenTx returns which of the given seats are already occupied,
// locking the matching rows for the duration of the transaction so a
// concurrent claim on the same seats serializes behind this one.
func (r *SeatRepo) FilterTakenTx(ctx context.Context, tx *sql.Tx, roomID string, seatIDs []string) ([]string, error) {
    if len(seatIDs) == 0 {
        return nil, nil
    }
    query := `SELECT seat_id FROM occupied_seats WHERE room_id = ? AND seat_id IN (`
    args := make([]interface{}, 0, len(seatIDs)+1)
    args = append(args, roomID)
    for i, id := range seatIDs {
        if i > 0 {
            query += ","
        }
        query += "?"
        args = append(args, id)
    }
    query += `) FOR UPDATE`

    rows, err := tx.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    taken := []string{}
    for rows.Next() {
        var id string
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        taken = append(taken, id)
    }
    return taken, rows.Err()
}

// mysqlDupEntry is the MySQL error number for a duplicate-key insert
// (ER_DUP_ENTRY).
const mysqlDupEntry = 1062

// ClaimTx marks every given seat as occupied under the supplied order
// reference. Callers must have verified availability with
// FilterTakenTx inside the same transaction; the primary key on
// seat_id is the final guard against a double claim, and a duplicate
// key comes back as ErrSeatsTaken. Every other error is an
// infrastructure failure and is returned as-is.
func (r *SeatRepo) ClaimTx(ctx context.Context, tx *sql.Tx, roomID, orderRef string, seatIDs []string) error {
    if len(seatIDs) == 0 {
        return nil
    }
    query := `INSERT INTO occupied_seats (seat_id, room_id, order_ref) VALUES `
    args := make([]interface{}, 0, len(seatIDs)*3)
    for i, id := range seatIDs {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?)"
        args = append(args, id, roomID, orderRef)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    var me *mysql.MySQLError
    if errors.As(err, &me) && me.Number == mysqlDupEntry {
        return ErrSeatsTaken
    }
    return err
}
