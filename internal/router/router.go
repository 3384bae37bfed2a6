package router // package router defines how HTTP routes are registered for the API

import (
    "net/http"

    "github.com/labstack/echo/v4" // Echo web framework handles routing
    "github.com/redis/go-redis/v9"

    "github.com/cinestructura/taquilla/internal/config"
    "github.com/cinestructura/taquilla/internal/handler"
    "github.com/cinestructura/taquilla/internal/middleware"
)

// Register wires every route of the booking service onto the provided
// Echo instance. The occupied-seats endpoint sits behind the Redis
// response cache (clients poll it every few seconds) and both purchase
// endpoints sit behind the token-bucket rate limiter. A nil Redis
// client disables both middlewares.
func Register(e *echo.Echo, seats *handler.SeatsHandler, purchase *handler.PurchaseHandler, combos *handler.ComboHandler, rdb *redis.Client) {
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
    limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    // Health check for load balancers and monitoring.
    e.GET("/healthz", handler.Health)

    // Seat occupancy, polled by every open seat board.
    e.GET("/asientos-ocupados/:salaID", seats.GetOccupied, cache)

    // Seat purchase. The /procesar_compra alias serves clients built
    // against the earlier route name; both run the same handler.
    e.POST("/comprar", purchase.Purchase, limit)
    e.POST("/procesar_compra", purchase.Purchase, limit)

    // Snack combos.
    e.GET("/menu", combos.GetMenu)
    e.POST("/comprar-combo", combos.PurchaseCombo, limit)

    // The day's programme.
    e.GET("/cartelera", handler.GetBillboard)

    // JSON error bodies for unknown routes and unhandled errors, so a
    // client never has to parse an HTML error page.
    e.HTTPErrorHandler = func(err error, c echo.Context) {
        if c.Response().Committed {
            return
        }
        code := http.StatusInternalServerError
        msg := "error interno del servidor"
        if he, ok := err.(*echo.HTTPError); ok {
            code = he.Code
            if s, ok := he.Message.(string); ok {
                msg = s
            }
        }
        _ = c.JSON(code, echo.Map{"error": msg})
    }
}
