package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/cinestructura/taquilla/internal/model"
)

// GetBillboard handles GET /cartelera and returns the day's programme.
// Front ends render it however they like; the rooms listed here are
// the valid targets for seat purchases.
func GetBillboard(c echo.Context) error {
    return c.JSON(http.StatusOK, model.TodayBillboard())
}
