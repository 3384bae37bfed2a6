package checkout

import (
    "context"

    "github.com/cinestructura/taquilla/internal/client"
    "github.com/cinestructura/taquilla/internal/model"
)

// BuyCombo purchases a snack combo outside the seat wizard, the way
// the menu page sells combos directly. The same client-side card gate
// applies: no request is issued unless the test card matches.
func BuyCombo(ctx context.Context, api client.API, comboID string, form model.PaymentData) (string, error) {
    if comboID == "" {
        return "", &ValidationError{Field: "combo", Message: "selecciona un combo"}
    }
    form = form.Normalized()
    if err := validateCard(form); err != nil {
        return "", err
    }
    resp, err := api.PurchaseCombo(ctx, client.ComboRequest{Combo: comboID, PaymentData: form})
    if err != nil {
        return "", err
    }
    return resp.Ticket, nil
}
