package repository

import (
    "context"
    "database/sql"
)

// Order kinds stored in the orders table.
const (
    OrderKindSeats = "SEATS"
    OrderKindCombo = "COMBO"
)

// Order records one completed purchase, either a set of seats or a
// snack combo. Seat orders link to their seats through
// occupied_seats.order_ref.
//
// Schema:
//  orders(
//      id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
//      ref         CHAR(36)     NOT NULL UNIQUE,
//      kind        ENUM('SEATS','COMBO') NOT NULL,
//      room_id     VARCHAR(48)  NULL,
//      combo_id    VARCHAR(16)  NULL,
//      seat_count  INT UNSIGNED NOT NULL DEFAULT 0,
//      total       BIGINT       NOT NULL,
//      created_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP
//  )
type Order struct {
    ID        uint64
    Ref       string
    Kind      string
    RoomID    string
    ComboID   string
    SeatCount int
    Total     int64
}

// OrderRepo encapsulates database operations for orders.
type OrderRepo struct {
    db *sql.DB
}

// NewOrderRepo constructs an OrderRepo given a DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
    return &OrderRepo{db: db}
}

// CreateTx inserts an order inside an existing transaction and fills
// in its generated ID.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *Order) error {
    res, err := tx.ExecContext(ctx,
        `INSERT INTO orders (ref, kind, room_id, combo_id, seat_count, total) VALUES (?, ?, ?, ?, ?, ?)`,
        o.Ref, o.Kind, nullable(o.RoomID), nullable(o.ComboID), o.SeatCount, o.Total)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err == nil {
        o.ID = uint64(id)
    }
    return nil
}

// Create inserts an order outside any transaction. Combo purchases use
// this path since they touch no seat rows.
func (r *OrderRepo) Create(ctx context.Context, o *Order) error {
    res, err := r.db.ExecContext(ctx,
        `INSERT INTO orders (ref, kind, room_id, combo_id, seat_count, total) VALUES (?, ?, ?, ?, ?, ?)`,
        o.Ref, o.Kind, nullable(o.RoomID), nullable(o.ComboID), o.SeatCount, o.Total)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err == nil {
        o.ID = uint64(id)
    }
    return nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) interface{} {
    if s == "" {
        return nil
    }
    return s
}
