package handler

import (
    "context"
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

// ComboHandler serves the snack menu and processes combo purchases.
// Combos have no seat inventory, so a combo order is a plain insert
// with no claim transaction.
type ComboHandler struct {
    OrderRepo *repository.OrderRepo
    Issuer    *ticket.Issuer
}

// NewComboHandler constructs a ComboHandler.
func NewComboHandler(orderRepo *repository.OrderRepo, issuer *ticket.Issuer) *ComboHandler {
    if orderRepo == nil || issuer == nil {
        panic("nil dependency passed to NewComboHandler")
    }
    return &ComboHandler{OrderRepo: orderRepo, Issuer: issuer}
}

// GetMenu handles GET /menu and returns the combo menu.
func (h *ComboHandler) GetMenu(c echo.Context) error {
    return c.JSON(http.StatusOK, model.Menu)
}

// comboRequest mirrors the combo purchase body. The payment field name
// is snake_case for compatibility with the combo front end.
type comboRequest struct {
    Combo       string            `json:"combo"`
    PaymentData model.PaymentData `json:"payment_data"`
}

// PurchaseCombo handles POST /comprar-combo. It validates the combo
// against the menu and the payment against the test card, records the
// order and returns the combo ticket.
func (h *ComboHandler) PurchaseCombo(c echo.Context) error {
    var req comboRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "datos inválidos"})
    }
    if req.Combo == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "datos incompletos"})
    }
    combo, ok := model.ComboByID(req.Combo)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "combo no válido"})
    }
    if !req.PaymentData.Accepted() {
        return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "datos de pago inválidos"})
    }

    ref := ticket.NewOrderRef()
    order := &repository.Order{
        Ref:     ref,
        Kind:    repository.OrderKindCombo,
        ComboID: combo.ID,
        Total:   combo.Price,
    }
    ctx := c.Request().Context()
    if err := h.OrderRepo.Create(ctx, order); err != nil {
        log.Printf("combo: order insert failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "error procesando la compra"})
    }

    markup, err := h.Issuer.Combo(ref, combo)
    if err != nil {
        log.Printf("combo: ticket render failed for %s: %v", ref, err)
        markup = "<div class='ticket-web'><p>Ref: " + ref + "</p></div>"
    }

    _ = queuepublisher.PublishTicketIssued(context.WithoutCancel(ctx), queue.TicketIssuedEvent{
        OrderRef:  ref,
        Kind:      repository.OrderKindCombo,
        ComboID:   combo.ID,
        ComboName: combo.Name,
        Total:     combo.Price,
        IssuedAt:  time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusOK, echo.Map{"success": true, "ticket": markup})
}
