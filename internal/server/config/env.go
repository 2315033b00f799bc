package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names read by parseEnv.
const (
	envGRPCAddr        = "SL_GRPC_ADDR"
	envDatabaseDSN     = "SL_DATABASE_DSN"
	envSecretKey       = "SL_SECRET_KEY"
	envIssuer          = "SL_ISSUER"
	envAudience        = "SL_AUDIENCE"
	envAccessSeconds   = "SL_ACCESS_TOKEN_SECONDS"
	envRefreshDays     = "SL_REFRESH_TOKEN_DAYS"
	envRefreshSize     = "SL_REFRESH_TOKEN_SIZE"
	envRedisAddr       = "SL_REDIS_ADDR"
	envLoginAttempts   = "SL_LOGIN_ATTEMPTS"
	envLoginWindowSecs = "SL_LOGIN_WINDOW"
	envAMQPURL         = "SL_AMQP_URL"
	envLogLevel        = "SL_LOG_LEVEL"
)

// parseEnv loads a dotenv file into the process environment and then copies
// every SL_* variable that is set into config.
//
// The dotenv path comes from -e/-env; without it ".env" in the working
// directory is tried and silently skipped when absent. Variables already
// present in the environment win over the file. Unparseable numbers panic,
// matching how a broken JSON config is treated.
func parseEnv(config *Config) {
	path := flagx.EnvFileFlags()
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	} else if err := godotenv.Load(path); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, envGRPCAddr)
	setString(&config.DatabaseDSN, envDatabaseDSN)
	setString(&config.SecretKey, envSecretKey)
	setString(&config.Issuer, envIssuer)
	setString(&config.Audience, envAudience)
	setString(&config.RedisAddr, envRedisAddr)
	setString(&config.AMQPURL, envAMQPURL)
	setString(&config.LogLevel, envLogLevel)

	setInt(&config.RefreshTokenValidityDays, envRefreshDays)
	setInt(&config.RefreshTokenSize, envRefreshSize)
	setInt(&config.LoginAttempts, envLoginAttempts)

	setSeconds(&config.AccessTokenValidityDuration, envAccessSeconds)
	setSeconds(&config.LoginWindow, envLoginWindowSecs)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func setSeconds(dst *time.Duration, key string) {
	if _, ok := os.LookupEnv(key); !ok {
		return
	}
	var n int
	setInt(&n, key)
	*dst = time.Duration(n) * time.Second
}
