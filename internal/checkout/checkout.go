// Package checkout drives the three-step purchase wizard: pick seats,
// enter payment, see the confirmation. The wizard owns the step state
// and the submission guard; seat state stays in the board it wraps.
package checkout

import (
    "context"
    "sync"

    "github.com/cinestructura/taquilla/internal/board"
    "github.com/cinestructura/taquilla/internal/client"
    "github.com/cinestructura/taquilla/internal/model"
)

// Step is one of the three linear checkout phases.
type Step uint8

const (
    StepSeatPick Step = iota + 1
    StepPayment
    StepConfirmation
)

// String returns the step label used in prompts and logs.
func (s Step) String() string {
    switch s {
    case StepSeatPick:
        return "seat-pick"
    case StepPayment:
        return "payment"
    case StepConfirmation:
        return "confirmation"
    }
    return "unknown"
}

// Wizard is the checkout state machine for one session.
//
// Transitions:
//  SeatPick --Advance (selection non-empty)--> Payment
//  Payment  --Back------------------------->  SeatPick (selection kept)
//  Payment  --Submit, accepted------------->  Confirmation
//  Payment  --Submit, rejected------------->  Payment (error surfaced)
type Wizard struct {
    mu       sync.Mutex
    step     Step
    board    *board.Board
    api      client.API
    pricing  model.Pricing
    inFlight bool
    ticket   string // markup returned by the last accepted purchase
}

// New builds a wizard at the seat-picking step.
func New(b *board.Board, api client.API, pricing model.Pricing) *Wizard {
    return &Wizard{step: StepSeatPick, board: b, api: api, pricing: pricing}
}

// Step returns the current wizard step.
func (w *Wizard) Step() Step {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.step
}

// Board returns the seat board this wizard drives.
func (w *Wizard) Board() *board.Board { return w.board }

// Total returns what the current selection costs, in minor units.
func (w *Wizard) Total() int64 {
    return w.pricing.Total(w.board.Count())
}

// InFlight reports whether a submission is awaiting its response. The
// occupancy poller uses this to pause refreshes during a purchase.
func (w *Wizard) InFlight() bool {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.inFlight
}

// Ticket returns the markup of the confirmed purchase, empty until the
// wizard reaches Confirmation.
func (w *Wizard) Ticket() string {
    w.mu.Lock()
    defer w.mu.Unlock()
    return w.ticket
}

// Advance moves SeatPick → Payment. With an empty selection the step
// is unchanged and a ValidationError prompts the user to pick a seat.
func (w *Wizard) Advance() error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.step != StepSeatPick {
        return ErrInvalidTransition
    }
    if w.board.Count() == 0 {
        return &ValidationError{Field: "asientos", Message: "por favor selecciona al menos un asiento"}
    }
    w.step = StepPayment
    return nil
}

// Back moves Payment → SeatPick without touching the selection.
func (w *Wizard) Back() error {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.step != StepPayment {
        return ErrInvalidTransition
    }
    w.step = StepSeatPick
    return nil
}

// Submit validates the card and posts the purchase.
//
// Validation happens before any network call: an empty selection or a
// card field that differs from the test card returns a ValidationError
// and issues zero requests. The first failing field wins.
//
// Exactly one submission may be in flight; a second Submit while the
// first awaits its response fails with ErrSubmitInFlight regardless of
// what any UI shows. On acceptance the selected seats are promoted to
// Occupied, the selection is cleared and the wizard advances to
// Confirmation. On any rejection the wizard stays at Payment and seat
// state is untouched.
func (w *Wizard) Submit(ctx context.Context, form model.PaymentData) (string, error) {
    w.mu.Lock()
    if w.step != StepPayment {
        w.mu.Unlock()
        return "", ErrInvalidTransition
    }
    if w.inFlight {
        w.mu.Unlock()
        return "", ErrSubmitInFlight
    }
    seats := w.board.Selected()
    if len(seats) == 0 {
        w.mu.Unlock()
        return "", &ValidationError{Field: "asientos", Message: "por favor selecciona al menos un asiento"}
    }
    form = form.Normalized()
    if err := validateCard(form); err != nil {
        w.mu.Unlock()
        return "", err
    }
    w.inFlight = true
    w.mu.Unlock()

    defer func() {
        w.mu.Lock()
        w.inFlight = false
        w.mu.Unlock()
    }()

    resp, err := w.api.Purchase(ctx, client.PurchaseRequest{
        Asientos:    seats,
        Total:       w.pricing.Total(len(seats)),
        PaymentData: form,
    })
    if err != nil {
        // Rejected or unreachable: stay at Payment, seat state as-is.
        return "", err
    }

    w.board.ConfirmSelection()
    w.mu.Lock()
    w.ticket = resp.Ticket
    w.step = StepConfirmation
    w.mu.Unlock()
    return resp.Ticket, nil
}

// validateCard compares normalized card data against the accepted test
// triple, one field at a time.
func validateCard(form model.PaymentData) error {
    if form.CardNumber != model.TestCardNumber {
        return &ValidationError{Field: "cardNumber", Message: "por favor usa la tarjeta de prueba proporcionada"}
    }
    if form.CardExpiry != model.TestCardExpiry {
        return &ValidationError{Field: "cardExpiry", Message: "por favor usa la fecha de vencimiento de prueba"}
    }
    if form.CardCVV != model.TestCardCVV {
        return &ValidationError{Field: "cardCvv", Message: "por favor usa el CVV de prueba"}
    }
    return nil
}
