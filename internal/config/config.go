package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The database is addressed by a single DSN so the
// same binary runs against any reachable postgres instance.
type Config struct {
	Env                string // application environment (e.g. "dev", "prod")
	Port               string // HTTP port to listen on
	DatabaseURL        string // postgres connection string
	MaxOpenConns       int    // connection pool: max open connections
	MaxIdleConns       int    // connection pool: max idle connections
	ConnMaxLifetimeMin int    // connection pool: max connection lifetime in minutes
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is loaded first when it
// exists; a missing file is not an error.  Required variables are enforced
// by must() and missing values cause the program to exit with a fatal log
// message.
func Load() Config {
	_ = godotenv.Load() // best effort; real deployments set the environment directly

	return Config{
		Env:                must("APP_ENV"),      // environment (dev/test/prod)
		Port:               must("APP_PORT"),     // port to bind the HTTP server
		DatabaseURL:        must("DATABASE_URL"), // postgres DSN
		MaxOpenConns:       intOr("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:       intOr("DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetimeMin: intOr("DB_CONN_MAX_LIFETIME_MIN", 30),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// intOr retrieves an optional integer environment variable, falling back to
// def when the variable is unset.  An unparseable value is fatal rather than
// silently ignored.
func intOr(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
