package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string `json:"token_sign_key"`
		TokenIssuer       string `json:"token_issuer"`
		TokenPrefixLength int    `json:"token_prefix_length"`
		PasswordMinLength int    `json:"password_min_length"`
		BcryptCost        int    `json:"bcrypt_cost"`
		DefaultPageSize   int    `json:"default_page_size"`
		MaxPageSize       int    `json:"max_page_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string   `json:"driver"`
			DSN          string   `json:"dsn"`
			QueryTimeout Duration `json:"query_timeout"`
			Migrate      bool     `json:"migrate"`
		} `json:"db,omitempty"`

		Cache struct {
			RedisAddress  string   `json:"redis_address"`
			RedisPassword string   `json:"redis_password"`
			RedisDB       int      `json:"redis_db"`
			TTL           Duration `json:"ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthRateLimit  float64  `json:"auth_rate_limit"`
		AuthRateBurst  int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Events struct {
		AMQPURL  string `json:"amqp_url"`
		Exchange string `json:"exchange"`
	} `json:"events,omitempty"`

	Workers struct {
		LastUsedBuffer int `json:"last_used_buffer"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenPrefixLength: jsonCfg.App.TokenPrefixLength,
			PasswordMinLength: jsonCfg.App.PasswordMinLength,
			BcryptCost:        jsonCfg.App.BcryptCost,
			DefaultPageSize:   jsonCfg.App.DefaultPageSize,
			MaxPageSize:       jsonCfg.App.MaxPageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				QueryTimeout: time.Duration(jsonCfg.Storage.DB.QueryTimeout),
				Migrate:      jsonCfg.Storage.DB.Migrate,
			},
			Cache: Cache{
				RedisAddress:  jsonCfg.Storage.Cache.RedisAddress,
				RedisPassword: jsonCfg.Storage.Cache.RedisPassword,
				RedisDB:       jsonCfg.Storage.Cache.RedisDB,
				TTL:           time.Duration(jsonCfg.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AuthRateLimit:  jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:  jsonCfg.Server.AuthRateBurst,
		},
		Events: Events{
			AMQPURL:  jsonCfg.Events.AMQPURL,
			Exchange: jsonCfg.Events.Exchange,
		},
		Workers: Workers{
			LastUsedBuffer: jsonCfg.Workers.LastUsedBuffer,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
