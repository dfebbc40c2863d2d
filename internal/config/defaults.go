package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Built-in defaults applied before any other configuration source.
const (
	defaultTokenIssuer       = "go-api-hub"
	defaultTokenPrefixLength = 10
	defaultPasswordMinLength = 6
	defaultDefaultPageSize   = 20
	defaultMaxPageSize       = 100
	defaultDriver            = DriverPostgres
	defaultQueryTimeout      = 5 * time.Second
	defaultCacheTTL          = 30 * time.Second
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultAuthRateLimit     = 1
	defaultAuthRateBurst     = 5
	defaultEventsExchange    = "auth.events"
	defaultLastUsedBuffer    = 256
	defaultLogLevel          = "info"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func newDefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:       defaultTokenIssuer,
			TokenPrefixLength: defaultTokenPrefixLength,
			PasswordMinLength: defaultPasswordMinLength,
			BcryptCost:        bcrypt.DefaultCost,
			DefaultPageSize:   defaultDefaultPageSize,
			MaxPageSize:       defaultMaxPageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:       defaultDriver,
				QueryTimeout: defaultQueryTimeout,
			},
			Cache: Cache{
				TTL: defaultCacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AuthRateLimit:  defaultAuthRateLimit,
			AuthRateBurst:  defaultAuthRateBurst,
		},
		Events: Events{
			Exchange: defaultEventsExchange,
		},
		Workers: Workers{
			LastUsedBuffer: defaultLastUsedBuffer,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
