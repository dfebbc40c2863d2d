package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client. It is read
// from the environment only; command-line flags of the client override it
// in cmd/client.
type ClientConfig struct {
	// BaseURL is the root URL of the API server.
	// Env: APIHUB_URL
	BaseURL string `env:"APIHUB_URL" envDefault:"http://localhost:8080"`

	// Token is the bearer token used for authenticated commands.
	// Env: APIHUB_TOKEN
	Token string `env:"APIHUB_TOKEN"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: APIHUB_TIMEOUT
	RequestTimeout time.Duration `env:"APIHUB_TIMEOUT" envDefault:"15s"`
}

// GetClientConfig loads the client configuration from the environment
// (seeded from a .env file when present) and validates it.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	return clientCfg, clientCfg.validate()
}

// Validate checks a client configuration assembled outside of
// [GetClientConfig] (e.g. after flag overrides).
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
