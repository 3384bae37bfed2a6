package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingTotal(t *testing.T) {
	cop := Pricing{UnitPrice: 15000, Exponent: 0, Code: "COP"}
	assert.Equal(t, int64(45000), cop.Total(3))
	assert.Equal(t, int64(0), cop.Total(0))

	generic := Pricing{UnitPrice: 1500, Exponent: 2, Code: "USD"}
	assert.Equal(t, int64(4500), generic.Total(3))
}

func TestPricingFormat(t *testing.T) {
	cop := Pricing{UnitPrice: 15000, Exponent: 0, Code: "COP"}
	assert.Equal(t, "$15.000 COP", cop.Format(15000))
	assert.Equal(t, "$45.000 COP", cop.Format(45000))
	assert.Equal(t, "$1.234.567 COP", cop.Format(1234567))
	assert.Equal(t, "$0 COP", cop.Format(0))

	generic := Pricing{UnitPrice: 1500, Exponent: 2, Code: "USD"}
	assert.Equal(t, "$45,00 USD", generic.Format(4500))
	assert.Equal(t, "$0,05 USD", generic.Format(5))
}

func TestSeatID(t *testing.T) {
	assert.Equal(t, "Sala_IMAX-7", SeatID("Sala_IMAX", 7))

	room, n, ok := SplitSeatID("Sala_IMAX-7")
	assert.True(t, ok)
	assert.Equal(t, "Sala_IMAX", room)
	assert.Equal(t, 7, n)

	// room ids may contain dashes; the split is at the last one
	room, n, ok = SplitSeatID("sala-2-31")
	assert.True(t, ok)
	assert.Equal(t, "sala-2", room)
	assert.Equal(t, 31, n)

	for _, bad := range []string{"", "Sala_IMAX", "Sala_IMAX-", "-5", "Sala_IMAX-0", "Sala_IMAX-33", "Sala_IMAX-abc"} {
		_, _, ok := SplitSeatID(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestPaymentDataNormalized(t *testing.T) {
	p := PaymentData{
		CardNumber: "4242 4242 4242 4242",
		CardName:   "  Ana María  ",
		CardExpiry: " 12/25 ",
		CardCVV:    "123",
	}
	n := p.Normalized()
	assert.Equal(t, "4242424242424242", n.CardNumber)
	assert.Equal(t, "Ana María", n.CardName)
	assert.Equal(t, "12/25", n.CardExpiry)
}

func TestPaymentDataAccepted(t *testing.T) {
	good := PaymentData{CardNumber: "4242 4242 4242 4242", CardExpiry: "12/25", CardCVV: "123"}
	assert.True(t, good.Accepted())

	bad := good
	bad.CardNumber = "4111111111111111"
	assert.False(t, bad.Accepted())

	bad = good
	bad.CardExpiry = "01/30"
	assert.False(t, bad.Accepted())

	bad = good
	bad.CardCVV = "999"
	assert.False(t, bad.Accepted())
}

func TestComboByID(t *testing.T) {
	c, ok := ComboByID("combo2")
	assert.True(t, ok)
	assert.Equal(t, "Combo Pareja", c.Name)
	assert.Equal(t, int64(45000), c.Price)

	_, ok = ComboByID("combo9")
	assert.False(t, ok)
}
