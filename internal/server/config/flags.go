package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sharedlists/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   access token HMAC secret
//	-i string   access token issuer
//	-o string   access token audience
//	-t int      access token validity, seconds
//	-r int      refresh token validity, days
//	-n int      refresh token size, bytes
//	-m string   Redis address for login throttling
//	-l int      login attempts per window
//	-w int      login window, seconds
//	-q string   AMQP URL for events
//	-v string   log level
//
// Args are pre-filtered with flagx.FilterArgs so -c/-e and foreign flags do
// not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-i", "-o", "-t", "-r", "-n", "-m", "-l", "-w", "-q", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "access token issuer")
	fs.StringVar(&config.Audience, "o", config.Audience, "access token audience")

	accessTokenSeconds := fs.Int("t", int(config.AccessTokenValidityDuration.Seconds()), "access token validity (in seconds)")
	fs.IntVar(&config.RefreshTokenValidityDays, "r", config.RefreshTokenValidityDays, "refresh token validity (in days)")
	fs.IntVar(&config.RefreshTokenSize, "n", config.RefreshTokenSize, "refresh token size (in bytes)")

	fs.StringVar(&config.RedisAddr, "m", config.RedisAddr, "redis address for login throttling")
	fs.IntVar(&config.LoginAttempts, "l", config.LoginAttempts, "login attempts per window")
	loginWindowSeconds := fs.Int("w", int(config.LoginWindow.Seconds()), "login window (in seconds)")

	fs.StringVar(&config.AMQPURL, "q", config.AMQPURL, "AMQP URL for events")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenSeconds) * time.Second
	config.LoginWindow = time.Duration(*loginWindowSeconds) * time.Second
}
