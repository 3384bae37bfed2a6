package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/cinestructura/taquilla/internal/config"
	"github.com/cinestructura/taquilla/internal/database"
	"github.com/cinestructura/taquilla/internal/handler"
	"github.com/cinestructura/taquilla/internal/queue"
	"github.com/cinestructura/taquilla/internal/repository"
	"github.com/cinestructura/taquilla/internal/router"
	"github.com/cinestructura/taquilla/internal/ticket"
)

func main() {
	_ = godotenv.Load() // best-effort; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	seatRepo := repository.NewSeatRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	issuer := ticket.NewIssuer(cfg.Pricing)

	seats := handler.NewSeatsHandler(seatRepo)
	purchase := handler.NewPurchaseHandler(seatRepo, orderRepo, issuer, cfg.Pricing)
	combos := handler.NewComboHandler(orderRepo, issuer)

	rdb := config.NewRedisClient() // nil disables cache and rate limiting
	if rdb == nil {
		log.Printf("redis unavailable; running without response cache or rate limits")
	}

	// Audit trail of issued tickets; runs for the life of the process.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, seats, purchase, combos, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, price=%s)", addr, cfg.Env, cfg.Pricing.Format(cfg.Pricing.UnitPrice))

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
