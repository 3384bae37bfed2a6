package model

import "strings"

// Pricing captures the unit ticket price and how amounts are displayed.
// Amounts are integers in minor currency units; Exponent says how many
// of the trailing digits are decimals. The Colombian deployment uses
// UnitPrice=15000, Exponent=0, Code="COP"; a generic deployment can run
// with UnitPrice=1500, Exponent=2 instead. Floats are never used for
// money.
type Pricing struct {
    UnitPrice int64  // price per seat in minor units
    Exponent  int    // decimal places shown when formatting
    Code      string // ISO-ish currency label, e.g. "COP"
}

// Total returns the price for n seats in minor units.
func (p Pricing) Total(n int) int64 {
    return p.UnitPrice * int64(n)
}

// Format renders an amount of minor units as "$15.000 COP" (exponent 0,
// dot-grouped thousands, matching es-CO formatting) or "$15,00 COP"
// style when the exponent is positive.
func (p Pricing) Format(amount int64) string {
    neg := amount < 0
    if neg {
        amount = -amount
    }
    digits := []byte{}
    for amount > 0 {
        digits = append([]byte{byte('0' + amount%10)}, digits...)
        amount /= 10
    }
    if len(digits) == 0 {
        digits = []byte{'0'}
    }
    for len(digits) <= p.Exponent {
        digits = append([]byte{'0'}, digits...)
    }
    whole := string(digits[:len(digits)-p.Exponent])
    frac := string(digits[len(digits)-p.Exponent:])

    var b strings.Builder
    if neg {
        b.WriteByte('-')
    }
    b.WriteByte('$')
    // group the whole part with dots every three digits
    for i, c := range whole {
        if i > 0 && (len(whole)-i)%3 == 0 {
            b.WriteByte('.')
        }
        b.WriteRune(c)
    }
    if p.Exponent > 0 {
        b.WriteByte(',')
        b.WriteString(frac)
    }
    if p.Code != "" {
        b.WriteByte(' ')
        b.WriteString(p.Code)
    }
    return b.String()
}
