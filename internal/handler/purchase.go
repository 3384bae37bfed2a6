package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/cinestructura/taquilla/internal/model"
    "github.com/cinestructura/taquilla/internal/queue"
    "github.com/cinestructura/taquilla/internal/repository"
    queuepublisher "github.com/cinestructura/taquilla/internal/service/queue_publisher"
    "github.com/cinestructura/taquilla/internal/ticket"
)

// PurchaseHandler processes seat purchases. The claim runs inside one
// transaction with row locks, which is the authoritative resolution of
// the race between a client's possibly-stale grid and concurrent
// buyers: whoever commits first gets the seats, the loser receives the
// contested identifiers back.
type PurchaseHandler struct {
    SeatRepo  *repository.SeatRepo
    OrderRepo *repository.OrderRepo
    Issuer    *ticket.Issuer
    Pricing   model.Pricing
}

// NewPurchaseHandler constructs a PurchaseHandler with its repositories.
func NewPurchaseHandler(seatRepo *repository.SeatRepo, orderRepo *repository.OrderRepo, issuer *ticket.Issuer, pricing model.Pricing) *PurchaseHandler {
    if seatRepo == nil || orderRepo == nil || issuer == nil {
        panic("nil dependency passed to NewPurchaseHandler")
    }
    return &PurchaseHandler{SeatRepo: seatRepo, OrderRepo: orderRepo, Issuer: issuer, Pricing: pricing}
}

// purchaseRequest mirrors the body the checkout submits.
type purchaseRequest struct {
    Asientos    []string          `json:"asientos"`
    Total       int64             `json:"total"`
    PaymentData model.PaymentData `json:"paymentData"`
}

// Purchase handles POST /comprar (also registered at /procesar_compra
// for older clients). On success it claims the seats, records the
// order, returns the rendered ticket and publishes a ticket.issued
// event; the event is best-effort and its failure never fails the
// purchase.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
    var req purchaseRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "datos inválidos"})
    }
    if len(req.Asientos) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "no se seleccionaron asientos"})
    }

    // All seats must be well-formed and belong to the same room.
    roomID, _, ok := model.SplitSeatID(req.Asientos[0])
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identificador de asiento inválido"})
    }
    seen := make(map[string]struct{}, len(req.Asientos))
    seats := make([]string, 0, len(req.Asientos))
    for _, id := range req.Asientos {
        r, _, ok := model.SplitSeatID(id)
        if !ok || r != roomID {
            return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "identificador de asiento inválido"})
        }
        if _, dup := seen[id]; dup {
            continue
        }
        seen[id] = struct{}{}
        seats = append(seats, id)
    }

    if !req.PaymentData.Accepted() {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "datos de pago inválidos"})
    }

    // The server's price list wins; a client computing a different
    // total is either stale or tampering.
    total := h.Pricing.Total(len(seats))
    if req.Total != total {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "el total no coincide con el precio vigente"})
    }

    ctx := c.Request().Context()
    tx, err := h.SeatRepo.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error interno"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    taken, err := h.SeatRepo.FilterTakenTx(ctx, tx, roomID, seats)
    if err != nil {
        log.Printf("purchase: availability check failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error interno"})
    }
    if len(taken) > 0 {
        return c.JSON(http.StatusConflict, echo.Map{
            "success":     false,
            "error":       "algunos asientos ya no están disponibles",
            "unavailable": taken,
        })
    }

    ref := ticket.NewOrderRef()
    if err := h.SeatRepo.ClaimTx(ctx, tx, roomID, ref, seats); err != nil {
        if errors.Is(err, repository.ErrSeatsTaken) {
            return c.JSON(http.StatusConflict, echo.Map{"success": false, "error": "algunos asientos ya no están disponibles"})
        }
        log.Printf("purchase: seat claim failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error interno"})
    }
    order := &repository.Order{
        Ref:       ref,
        Kind:      repository.OrderKindSeats,
        RoomID:    roomID,
        SeatCount: len(seats),
        Total:     total,
    }
    if err := h.OrderRepo.CreateTx(ctx, tx, order); err != nil {
        log.Printf("purchase: order insert failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error interno"})
    }
    if err := tx.Commit(); err != nil {
        log.Printf("purchase: commit failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error interno"})
    }
    committed = true

    markup, err := h.Issuer.Seats(ref, roomID, seats, total)
    if err != nil {
        // The seats are sold at this point; a render failure must not
        // look like a failed purchase.
        log.Printf("purchase: ticket render failed for %s: %v", ref, err)
        markup = "<div class='ticket-web'><p>Ref: " + ref + "</p></div>"
    }

    _ = queuepublisher.PublishTicketIssued(context.WithoutCancel(ctx), queue.TicketIssuedEvent{
        OrderRef: ref,
        Kind:     repository.OrderKindSeats,
        RoomID:   roomID,
        Seats:    seats,
        Total:    total,
        IssuedAt: time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusOK, echo.Map{"success": true, "ticket": markup})
}
