package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sharedlists/internal/flagx"
	"github.com/dmitrijs2005/sharedlists/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	Issuer                      string         `json:"issuer"`
	Audience                    string         `json:"audience"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDays    int            `json:"refresh_token_validity_days"`
	RefreshTokenSize            int            `json:"refresh_token_size"`
	RedisAddr                   string         `json:"redis_addr"`
	LoginAttempts               int            `json:"login_attempts"`
	LoginWindow                 timex.Duration `json:"login_window"`
	AMQPURL                     string         `json:"amqp_url"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// field present (non-zero) in it into config. A missing file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.SecretKey, c.SecretKey)
	overlay(&config.Issuer, c.Issuer)
	overlay(&config.Audience, c.Audience)
	overlay(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	overlay(&config.RefreshTokenValidityDays, c.RefreshTokenValidityDays)
	overlay(&config.RefreshTokenSize, c.RefreshTokenSize)
	overlay(&config.RedisAddr, c.RedisAddr)
	overlay(&config.LoginAttempts, c.LoginAttempts)
	overlay(&config.LoginWindow, c.LoginWindow.Duration)
	overlay(&config.AMQPURL, c.AMQPURL)
	overlay(&config.LogLevel, c.LogLevel)
}

func overlay[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
