package handler

import (
    "log"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinestructura/taquilla/internal/repository"
)

// SeatsHandler serves seat occupancy queries. Clients poll this
// endpoint on a fixed interval, so responses must stay cheap; the
// Redis cache in front of it absorbs most of the traffic.
type SeatsHandler struct {
    SeatRepo *repository.SeatRepo
}

// NewSeatsHandler constructs a SeatsHandler.
func NewSeatsHandler(seatRepo *repository.SeatRepo) *SeatsHandler {
    if seatRepo == nil {
        panic("nil repository passed to NewSeatsHandler")
    }
    return &SeatsHandler{SeatRepo: seatRepo}
}

// GetOccupied handles GET /asientos-ocupados/:salaID. It returns a
// bare JSON array of occupied seat identifiers for the room, matching
// what the seat board expects to merge into its grid. Failures return
// an empty array with a 500 so polling clients can treat any non-array
// body uniformly.
func (h *SeatsHandler) GetOccupied(c echo.Context) error {
    roomID := c.Param("salaID")
    if roomID == "" {
        return c.JSON(http.StatusBadRequest, []string{})
    }
    seats, err := h.SeatRepo.ListOccupied(c.Request().Context(), roomID)
    if err != nil {
        log.Printf("seats: list occupied for %s failed: %v", roomID, err)
        return c.JSON(http.StatusInternalServerError, []string{})
    }
    return c.JSON(http.StatusOK, seats)
}
