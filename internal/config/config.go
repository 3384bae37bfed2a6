package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types

    "github.com/cinestructura/taquilla/internal/model"
)

// Config holds all runtime configuration for the booking service. Each
// field corresponds to an environment variable. Ticket pricing is part
// of configuration because deployments disagree on currency: the COP
// deployment prices a seat at 15000 with no decimals, others may use a
// two-decimal currency.
type Config struct {
    Env    string // application environment (e.g. "dev", "prod")
    Port   string // HTTP port to listen on
    DBUser string // database username
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name

    Pricing model.Pricing // unit seat price and display currency
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// Pricing has defaults so a bare environment still runs the COP setup.
func Load() Config {
    return Config{
        Env:    must("APP_ENV"),      // environment (dev/test/prod)
        Port:   must("APP_PORT"),     // port to bind the HTTP server
        DBUser: must("DB_USER"),      // database user
        DBPass: os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost: must("DB_HOST"),      // database host
        DBPort: must("DB_PORT"),      // database port
        DBName: must("DB_NAME"),      // database name
        Pricing: model.Pricing{
            UnitPrice: int64(atoi(getenv("TICKET_PRICE", "15000"))),
            Exponent:  atoi(getenv("CURRENCY_EXPONENT", "0")),
            Code:      getenv("CURRENCY_CODE", "COP"),
        },
    }
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// getenv returns the value of an optional variable or a default.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// atoi converts s to an int, exiting on malformed input so a typo in
// pricing never silently becomes zero.
func atoi(s string) int {
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int in config: %q", s)
    }
    return n
}
