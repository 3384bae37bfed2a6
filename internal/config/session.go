package config

import (
    "os"
    "strconv"
    "time"

    "github.com/cinestructura/taquilla/internal/model"
)

// SessionConfig configures a client-side purchase session (the kiosk or
// any other front end driving the seat board and checkout wizard).
// Every network call made by the session applies RequestTimeout; the
// occupancy poll fires every PollInterval.
type SessionConfig struct {
    ServerURL      string        // base URL of the booking service
    RoomID         string        // room whose grid the session renders
    PollInterval   time.Duration // occupancy refresh cadence
    RequestTimeout time.Duration // per-request deadline on all fetches
    Pricing        model.Pricing // must match the server's pricing
}

// LoadSession builds a SessionConfig from the environment with working
// defaults for a local server. Unlike the server config nothing here is
// fatal: a kiosk pointed at the wrong server fails visibly on its first
// fetch.
func LoadSession() SessionConfig {
    return SessionConfig{
        ServerURL:      getenv("SERVER_URL", "http://localhost:8080"),
        RoomID:         getenv("ROOM_ID", "Sala_IMAX"),
        PollInterval:   envDur("POLL_INTERVAL", 5*time.Second),
        RequestTimeout: envDur("REQUEST_TIMEOUT", 10*time.Second),
        Pricing: model.Pricing{
            UnitPrice: envInt64("TICKET_PRICE", 15000),
            Exponent:  envIntDef("CURRENCY_EXPONENT", 0),
            Code:      getenv("CURRENCY_CODE", "COP"),
        },
    }
}

func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if dur, err := time.ParseDuration(v); err == nil {
        return dur
    }
    return d
}

func envInt64(k string, d int64) int64 {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.ParseInt(v, 10, 64); err == nil {
        return n
    }
    return d
}

func envIntDef(k string, d int) int {
    v := os.Getenv(k)
    if v == "" {
        return d
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return d
}
