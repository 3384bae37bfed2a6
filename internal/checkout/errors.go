package checkout

import (
    "errors"
    "fmt"

    "github.com/cinestructura/taquilla/internal/client"
)

// ValidationError reports input rejected before any network call: an
// empty selection or a card field that does not match the test card.
// Field names the offending input so a form can highlight it.
type ValidationError struct {
    Field   string
    Message string
}

func (e *ValidationError) Error() string {
    return e.Message
}

// ErrInvalidTransition is returned when a wizard operation is invoked
// at a step where it is not defined, e.g. Back from the seat picker.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission is still awaiting its response. The in-flight flag, not
// any UI affordance, is the guard against double purchases.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// DisplayMessage converts any error out of the wizard into the string
// shown inline near the form. Errors never propagate past this
// boundary in a front end.
func DisplayMessage(err error) string {
    if err == nil {
        return ""
    }
    var ve *ValidationError
    if errors.As(err, &ve) {
        return ve.Message
    }
    var se *client.ServerError
    if errors.As(err, &se) {
        return se.Message
    }
    var ne *client.NetworkError
    if errors.As(err, &ne) {
        return "error de conexión, intenta de nuevo"
    }
    return fmt.Sprintf("error inesperado: %v", err)
}
