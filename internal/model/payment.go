package model

import "strings"

// Test card accepted by the whole system. Payments are not real; both
// the client gate and the server gate compare against this one triple.
const (
    TestCardNumber = "4242424242424242"
    TestCardExpiry = "12/25"
    TestCardCVV    = "123"
)

// PaymentData carries the card fields entered at checkout. It is
// transient: validated, sent with the purchase request and then
// discarded, never persisted.
type PaymentData struct {
    CardNumber string `json:"cardNumber"`
    CardName   string `json:"cardName"`
    CardExpiry string `json:"cardExpiry"`
    CardCVV    string `json:"cardCvv"`
}

// Normalized returns a copy with whitespace stripped from the card
// number and surrounding spaces trimmed from the other fields, so
// "4242 4242 4242 4242" compares equal to the accepted test number.
func (p PaymentData) Normalized() PaymentData {
    p.CardNumber = strings.ReplaceAll(p.CardNumber, " ", "")
    p.CardExpiry = strings.TrimSpace(p.CardExpiry)
    p.CardCVV = strings.TrimSpace(p.CardCVV)
    p.CardName = strings.TrimSpace(p.CardName)
    return p
}

// Accepted reports whether the normalized payment data matches the test
// triple exactly.
func (p PaymentData) Accepted() bool {
    n := p.Normalized()
    return n.CardNumber == TestCardNumber &&
        n.CardExpiry == TestCardExpiry &&
        n.CardCVV == TestCardCVV
}
