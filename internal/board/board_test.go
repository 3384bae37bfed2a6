package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinestructura/taquilla/internal/client"
	"github.com/cinestructura/taquilla/internal/model"
)

var pricing = model.Pricing{UnitPrice: 15000, Exponent: 0, Code: "COP"}

// stubAPI serves canned occupancy lists; purchases are not used here.
type stubAPI struct {
	occupied []string
	err      error
	calls    int
}

func (s *stubAPI) OccupiedSeats(ctx context.Context, roomID string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.occupied, nil
}

func (s *stubAPI) Purchase(ctx context.Context, req client.PurchaseRequest) (*client.PurchaseResponse, error) {
	panic("not used")
}

func (s *stubAPI) PurchaseCombo(ctx context.Context, req client.ComboRequest) (*client.PurchaseResponse, error) {
	panic("not used")
}

func TestNewBuildsFullGrid(t *testing.T) {
	b := New("Sala_IMAX", pricing, &stubAPI{})
	seats := b.Seats()
	require.Len(t, seats, model.SeatsPerRoom)

	ids := map[string]bool{}
	for i, s := range seats {
		assert.Equal(t, i+1, s.Number)
		assert.Equal(t, model.SeatAvailable, s.State)
		assert.False(t, ids[s.ID], "duplicate seat id %s", s.ID)
		ids[s.ID] = true
	}
	assert.Equal(t, "Sala_IMAX-1", seats[0].ID)
	assert.Equal(t, "Sala_IMAX-32", seats[31].ID)
}

func TestInitializeMergesOccupancy(t *testing.T) {
	api := &stubAPI{occupied: []string{"Sala_IMAX-3", "Sala_IMAX-7"}}
	b := New("Sala_IMAX", pricing, api)
	b.Initialize(context.Background())

	seats := b.Seats()
	assert.Equal(t, model.SeatOccupied, seats[2].State)
	assert.Equal(t, model.SeatOccupied, seats[6].State)
	assert.Equal(t, model.SeatAvailable, seats[0].State)
}

func TestInitializeFetchFailureAssumesEmpty(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	b := New("Sala_IMAX", pricing, api)
	b.Initialize(context.Background())

	for _, s := range b.Seats() {
		assert.Equal(t, model.SeatAvailable, s.State)
	}
}

func TestToggleSelectAndDeselect(t *testing.T) {
	b := New("Sala_IMAX", pricing, &stubAPI{})

	state, changed := b.Toggle("Sala_IMAX-5")
	assert.True(t, changed)
	assert.Equal(t, model.SeatSelected, state)
	assert.Equal(t, 1, b.Count())
	assert.Equal(t, int64(15000), b.Subtotal())

	state, changed = b.Toggle("Sala_IMAX-5")
	assert.True(t, changed)
	assert.Equal(t, model.SeatAvailable, state)
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, int64(0), b.Subtotal())
}

func TestToggleOccupiedIsNoOp(t *testing.T) {
	api := &stubAPI{occupied: []string{"Sala_IMAX-4"}}
	b := New("Sala_IMAX", pricing, api)
	b.Initialize(context.Background())

	state, changed := b.Toggle("Sala_IMAX-4")
	assert.False(t, changed)
	assert.Equal(t, model.SeatOccupied, state)
	assert.Equal(t, 0, b.Count())
}

func TestToggleUnknownSeat(t *testing.T) {
	b := New("Sala_IMAX", pricing, &stubAPI{})
	_, changed := b.Toggle("Otra_Sala-1")
	assert.False(t, changed)
}

func TestTogglePreservesOrder(t *testing.T) {
	b := New("Sala_IMAX", pricing, &stubAPI{})
	b.Toggle("Sala_IMAX-9")
	b.Toggle("Sala_IMAX-2")
	b.Toggle("Sala_IMAX-14")
	b.Toggle("Sala_IMAX-2") // deselect the middle one

	assert.Equal(t, []string{"Sala_IMAX-9", "Sala_IMAX-14"}, b.Selected())
}

func TestRefreshEvictsLostSeats(t *testing.T) {
	api := &stubAPI{}
	b := New("Sala_IMAX", pricing, api)
	b.Toggle("Sala_IMAX-6")
	b.Toggle("Sala_IMAX-8")

	// another buyer takes seat 6 between selection and purchase
	api.occupied = []string{"Sala_IMAX-6"}
	require.NoError(t, b.Refresh(context.Background()))

	assert.Equal(t, []string{"Sala_IMAX-8"}, b.Selected())
	assert.Equal(t, model.SeatOccupied, b.Seats()[5].State)

	// re-marking an occupied seat is harmless
	require.NoError(t, b.Refresh(context.Background()))
	assert.Equal(t, []string{"Sala_IMAX-8"}, b.Selected())
	assert.Equal(t, model.SeatOccupied, b.Seats()[5].State)
}

func TestRefreshFailureLeavesStateUntouched(t *testing.T) {
	api := &stubAPI{occupied: []string{"Sala_IMAX-1"}}
	b := New("Sala_IMAX", pricing, api)
	b.Initialize(context.Background())
	b.Toggle("Sala_IMAX-2")

	api.err = errors.New("down")
	assert.Error(t, b.Refresh(context.Background()))
	assert.Equal(t, []string{"Sala_IMAX-2"}, b.Selected())
	assert.Equal(t, model.SeatOccupied, b.Seats()[0].State)
}

func TestConfirmSelection(t *testing.T) {
	b := New("Sala_IMAX", pricing, &stubAPI{})
	b.Toggle("Sala_IMAX-10")
	b.Toggle("Sala_IMAX-11")

	promoted := b.ConfirmSelection()
	assert.Equal(t, []string{"Sala_IMAX-10", "Sala_IMAX-11"}, promoted)
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, model.SeatOccupied, b.Seats()[9].State)
	assert.Equal(t, model.SeatOccupied, b.Seats()[10].State)
}
