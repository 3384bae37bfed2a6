// Package ticket renders the markup returned to clients after a
// successful purchase. The markup is opaque to clients: they inject it
// into the confirmation view without interpreting it.
package ticket

import (
    "html/template"
    "strings"

    "github.com/google/uuid"

    "github.com/cinestructura/taquilla/internal/model"
)

var seatTmpl = template.Must(template.New("seat").Parse(`<div class='ticket-web'>
  <h3>🎟️ Ticket Virtual</h3>
  <p>Sala: {{.Room}}</p>
  <p>Asientos: {{range $i, $s := .Seats}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
  <p>Total: {{.Total}}</p>
  <p class='ref'>Ref: {{.Ref}}</p>
</div>`))

var comboTmpl = template.Must(template.New("combo").Parse(`<div class='ticket-web'>
  <h3>🍿 Ticket Combo</h3>
  <h4>{{.Name}}</h4>
  <ul>
{{range .Items}}    <li>{{.}}</li>
{{end}}  </ul>
  <p>Total: {{.Total}}</p>
  <p class='ref'>Ref: {{.Ref}}</p>
</div>`))

// Issuer renders tickets with amounts formatted under one pricing
// scheme. The reference on every ticket is the order reference, so a
// printed ticket can be matched to its row in the orders table.
type Issuer struct {
    pricing model.Pricing
}

// NewIssuer returns an Issuer formatting amounts with the given pricing.
func NewIssuer(p model.Pricing) *Issuer {
    return &Issuer{pricing: p}
}

// NewOrderRef returns a fresh order reference.
func NewOrderRef() string {
    return uuid.NewString()
}

// Seats renders the ticket for a confirmed seat purchase.
func (i *Issuer) Seats(ref, roomID string, seats []string, total int64) (string, error) {
    var b strings.Builder
    err := seatTmpl.Execute(&b, struct {
        Room  string
        Seats []string
        Total string
        Ref   string
    }{roomID, seats, i.pricing.Format(total), ref})
    if err != nil {
        return "", err
    }
    return b.String(), nil
}

// Combo renders the ticket for a snack combo purchase.
func (i *Issuer) Combo(ref string, c model.Combo) (string, error) {
    var b strings.Builder
    err := comboTmpl.Execute(&b, struct {
        Name  string
        Items []string
        Total string
        Ref   string
    }{c.Name, c.Items, i.pricing.Format(c.Price), ref})
    if err != nil {
        return "", err
    }
    return b.String(), nil
}
