// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketIssuedEvent is published whenever a purchase completes, seat or
// combo alike. It carries enough for downstream consumers to log or
// notify without querying the database.
type TicketIssuedEvent struct {
    OrderRef  string   `json:"order_ref"`
    Kind      string   `json:"kind"` // SEATS or COMBO
    RoomID    string   `json:"room_id,omitempty"`
    Seats     []string `json:"seats,omitempty"`
    ComboID   string   `json:"combo_id,omitempty"`
    ComboName string   `json:"combo_name,omitempty"`
    Total     int64    `json:"total"`
    IssuedAt  string   `json:"issued_at"`
}
